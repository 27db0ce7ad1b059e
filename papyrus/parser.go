package papyrus

import "strings"

// Parser performs recursive-descent syntax analysis on Papyrus source,
// driving a Lexer one token at a time. It mirrors the teacher's Parser
// (internal/syntax/parser.go) - a struct caching the current token and
// advancing via next/got/want - but abandons on the first error instead
// of synchronizing and continuing (spec §7's propagation policy), so
// there is no advance()/sync-token-set analogue here.
type Parser struct {
	lex      *Lexer
	opts     Options
	filename string

	tok   TokenKind
	value string
	num   Number
	start int
	end   int

	inFunction bool
	inEvent    bool
	inState    bool

	scriptName *ScriptNameStatement

	err *Error
}

// Parse parses content into a Program, or returns a structured Error on
// the first malformed construct encountered. filename, when non-empty,
// is checked against the ScriptName identifier when
// Options.ThrowScriptnameMismatch is set.
func Parse(content string, opts Options, filename string) (*Program, *Error) {
	p := &Parser{lex: NewLexer(content), opts: opts, filename: filename}
	p.next()
	if p.err != nil {
		return nil, p.err
	}

	prog := &Program{baseNode: baseNode{start: 0}}
	for p.tok != Eof && p.err == nil {
		stmt := p.parseStatement()
		if p.err != nil {
			return nil, p.err
		}
		if stmt != nil {
			if len(prog.Body) == 0 && opts.ThrowScriptnameMissing {
				if _, ok := stmt.(*ScriptNameStatement); !ok {
					return nil, errorf(ScriptNameError, stmt.Start(), stmt.End(), "script must begin with a ScriptName statement")
				}
			}
			prog.Body = append(prog.Body, stmt)
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	prog.end = len(content)
	return prog, nil
}

// ----------------------------------------------------------------------
// Token navigation

func (p *Parser) next() {
	if p.err != nil {
		return
	}
	if err := p.lex.Next(); err != nil {
		p.err = err
		p.tok = Eof
		return
	}
	p.tok = p.lex.Kind
	p.value = p.lex.Value
	p.num = p.lex.Num
	p.start = p.lex.Start
	p.end = p.lex.End
}

// got consumes the current token and reports true if it matches kind.
func (p *Parser) got(kind TokenKind) bool {
	if p.tok == kind {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches kind, else fails with
// UnexpectedToken.
func (p *Parser) want(kind TokenKind) {
	if p.err != nil {
		return
	}
	if !p.got(kind) {
		p.fail(UnexpectedToken, "expected %s, got %s", kind, p.tok)
	}
}

// newlineBeforeCurrent reports whether a newline separates the previous
// token from the current one.
func (p *Parser) newlineBeforeCurrent() bool {
	return p.lex.HasNewlineBeforeCurrent()
}

// ----------------------------------------------------------------------
// Error handling

func (p *Parser) fail(kind ErrorKind, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	p.err = errorf(kind, p.start, p.end, format, args...)
}

func (p *Parser) failAt(kind ErrorKind, start, end int, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	p.err = errorf(kind, start, end, format, args...)
}

// ----------------------------------------------------------------------
// Identifiers

func (p *Parser) identifier() *Identifier {
	if p.tok != Name {
		p.fail(UnexpectedToken, "expected identifier, got %s", p.tok)
		return nil
	}
	id := &Identifier{baseNode: baseNode{start: p.start, end: p.end}, Name: p.value}
	p.next()
	return id
}

// typeIdentifier parses a type name in a position where a primitive type
// keyword (bool/int/float/string) is just as legal as a user-defined
// type Name - e.g. `New Int[5]` - unlike identifier, which only accepts
// user-defined names.
func (p *Parser) typeIdentifier() *Identifier {
	if p.tok != Name && !isTypeKeyword(p.tok) {
		p.fail(UnexpectedToken, "expected a type name, got %s", p.tok)
		return nil
	}
	id := &Identifier{baseNode: baseNode{start: p.start, end: p.end}, Name: p.value}
	p.next()
	return id
}

// ----------------------------------------------------------------------
// Statement dispatch (spec §4.3.1)

func (p *Parser) parseStatement() Node {
	switch {
	case p.err != nil:
		return nil

	case p.tok == KwScriptName:
		return p.scriptNameStatement()

	case p.tok == KwFunction:
		return p.functionStatement(p.start, "")

	case p.tok == KwIf:
		return p.ifStatement()

	case p.tok == KwWhile:
		return p.whileStatement()

	case p.tok == KwState:
		return p.stateStatement(false)

	case p.tok == KwAuto:
		return p.autoDispatch()

	case p.tok == KwReturn:
		return p.returnStatement()

	case p.tok == KwEvent:
		return p.eventStatement()

	case p.tok == KwImport:
		return p.importStatement()

	case p.tok == Name || isTypeKeyword(p.tok):
		return p.nameLedStatement()

	default:
		return p.fallbackStatement()
	}
}

// autoDispatch handles the `Auto` keyword: `Auto State ...` begins an
// auto state; anything else is reported as an UnexpectedToken error at
// Auto's position. Auto is never treated as a name here.
func (p *Parser) autoDispatch() Node {
	start := p.start
	p.next()
	if p.err != nil {
		return nil
	}
	if p.tok == KwState {
		return p.stateStatementFrom(start, true)
	}
	// Not followed by State: Auto isn't otherwise a valid statement
	// opener, so report it as an unexpected token at its own position.
	p.failAt(UnexpectedToken, start, p.end, "unexpected token Auto")
	return nil
}

// fallbackStatement handles any current token not covered by an explicit
// dispatch case (Self, Parent, a literal, New, a parenthesized or unary
// expression, ...): all of these only ever begin a plain expression
// statement, newline or not.
func (p *Parser) fallbackStatement() Node {
	return p.expressionStatement()
}

func (p *Parser) importStatement() Node {
	start := p.start
	p.next() // consume Import
	id := p.identifier()
	if p.err != nil {
		return nil
	}
	return &ImportStatement{baseNode: baseNode{start: start, end: id.End()}, Id: id}
}

func (p *Parser) returnStatement() Node {
	start := p.start
	end := p.end
	p.next() // consume Return
	if p.err != nil {
		return nil
	}
	if !p.inFunction && !p.inEvent && p.opts.ThrowReturnOutside {
		p.failAt(UnexpectedToken, start, p.end, "Return outside of a function or event")
		return nil
	}
	var arg Node
	if p.canStartExpression() {
		arg = p.parseExpression()
		if p.err != nil {
			return nil
		}
		end = arg.End()
	}
	return &ReturnStatement{baseNode: baseNode{start: start, end: end}, Argument: arg}
}

// canStartExpression reports whether the current token could begin an
// expression, used to decide whether Return has a trailing argument.
func (p *Parser) canStartExpression() bool {
	if p.newlineBeforeCurrent() {
		return false
	}
	switch p.tok {
	case Eof, KwEndFunction, KwEndEvent, KwEndIf, KwEndWhile, KwEndState, KwElse, KwElseIf:
		return false
	default:
		return true
	}
}

// ifStatement parses a full If/ElseIf*/Else?/EndIf chain. ifClause builds
// the (possibly nested) IfStatement tree; EndIf always belongs to the
// outermost If and is consumed exactly once here, after the recursion
// through any ElseIf clauses has unwound.
func (p *Parser) ifStatement() Node {
	stmt := p.ifClause()
	if p.err != nil {
		return nil
	}
	endTok := p.end
	p.want(KwEndIf)
	if p.err != nil {
		return nil
	}
	stmt.end = endTok
	return stmt
}

func (p *Parser) ifClause() *IfStatement {
	start := p.start
	p.next() // consume If/ElseIf
	if p.err != nil {
		return nil
	}
	if !p.inFunction && !p.inEvent && p.opts.ThrowIfOutside {
		p.failAt(UnexpectedToken, start, p.end, "If outside of a function or event")
		return nil
	}
	test := p.parseExpression()
	if p.err != nil {
		return nil
	}
	closing := map[TokenKind]bool{KwElseIf: true, KwElse: true, KwEndIf: true}
	consequent := p.blockStatement(closing)
	if p.err != nil {
		return nil
	}

	stmt := &IfStatement{baseNode: baseNode{start: start, end: consequent.End()}, Test: test, Consequent: consequent}

	switch p.tok {
	case KwElseIf:
		alt := p.ifClause()
		if p.err != nil {
			return nil
		}
		stmt.Alternate = alt
		stmt.end = alt.End()

	case KwElse:
		p.next()
		if p.err != nil {
			return nil
		}
		altBlock := p.blockStatement(map[TokenKind]bool{KwEndIf: true})
		if p.err != nil {
			return nil
		}
		stmt.Alternate = altBlock
		stmt.end = altBlock.End()
	}
	// On KwEndIf: nothing further to do here - the outermost ifStatement
	// call consumes it once the recursion has returned.
	return stmt
}

func (p *Parser) whileStatement() Node {
	start := p.start
	p.next() // consume While
	if p.err != nil {
		return nil
	}
	if !p.inFunction && !p.inEvent && p.opts.ThrowWhileOutside {
		p.failAt(UnexpectedToken, start, p.end, "While outside of a function or event")
		return nil
	}
	test := p.parseExpression()
	if p.err != nil {
		return nil
	}
	consequent := p.blockStatement(map[TokenKind]bool{KwEndWhile: true})
	if p.err != nil {
		return nil
	}
	endTok := p.end
	p.want(KwEndWhile)
	if p.err != nil {
		return nil
	}
	return &WhileStatement{baseNode: baseNode{start: start, end: endTok}, Test: test, Consequent: consequent}
}

func (p *Parser) expressionStatement() Node {
	start := p.start
	expr := p.parseExpression()
	if p.err != nil {
		return nil
	}
	return &ExpressionStatement{baseNode: baseNode{start: start, end: expr.End()}, Expression: expr}
}

// scriptNameStatement parses §4.3.2.
func (p *Parser) scriptNameStatement() Node {
	start := p.start
	if p.scriptName != nil {
		p.failAt(ScriptNameError, start, p.end, "a script may only have one ScriptName statement")
		return nil
	}
	p.next() // consume ScriptName

	id := p.identifier()
	if p.err != nil {
		return nil
	}

	if p.opts.ThrowScriptnameMismatch && p.filename != "" &&
		!strings.EqualFold(id.Name, p.filename) {
		p.failAt(ScriptNameError, id.Start(), id.End(),
			"ScriptName %q does not match filename %q", id.Name, p.filename)
		return nil
	}

	stmt := &ScriptNameStatement{baseNode: baseNode{start: start, end: id.End()}, Id: id}

	var extends *ExtendsDeclaration
	if p.tok == KwExtends {
		extStart := p.start
		p.next()
		if p.err != nil {
			return nil
		}
		if p.newlineBeforeCurrent() {
			p.failAt(ScriptNameError, extStart, p.end, "newline not allowed between Extends and its identifier")
			return nil
		}
		extended := p.identifier()
		if p.err != nil {
			return nil
		}
		extends = &ExtendsDeclaration{baseNode: baseNode{start: extStart, end: extended.End()}, Extended: extended}
		stmt.Extends = extends
		stmt.end = extends.End()
	}

	for {
		switch p.tok {
		case KwConditional:
			stmt.Flags = append(stmt.Flags, ScriptNameConditional)
			stmt.end = p.end
			p.next()
		case KwHidden:
			stmt.Flags = append(stmt.Flags, ScriptNameHidden)
			stmt.end = p.end
			p.next()
		default:
			p.scriptName = stmt
			return stmt
		}
		if p.err != nil {
			return nil
		}
	}
}
