package papyrus

import "strings"

// functionStatement parses a FunctionStatement (spec §4.3.3):
//
//	[<Kind>] Function <Name>(<params>) [Global] [Native]
//	  <body>
//	EndFunction
//
// start is the byte offset the resulting node should start at - the
// Function keyword itself when there is no return type, or the return
// type name's own start when the caller already consumed one via
// nameLedStatement. kind is that return type name, or "" for none.
func (p *Parser) functionStatement(start int, kind string) Node {
	p.want(KwFunction)
	if p.err != nil {
		return nil
	}
	id := p.identifier()
	if p.err != nil {
		return nil
	}
	params := p.parameterList()
	if p.err != nil {
		return nil
	}

	var flags []FunctionFlag
	seenGlobal, seenNative := false, false
	flagsEnd := p.end
	for p.tok == KwGlobal || p.tok == KwNative {
		if p.newlineBeforeCurrent() {
			p.fail(FunctionFlagError, "Global/Native flags must appear on the same line as the parameter list")
			return nil
		}
		if p.tok == KwGlobal {
			if seenGlobal {
				p.fail(FunctionFlagError, "duplicate Global flag")
				return nil
			}
			seenGlobal = true
			flags = append(flags, FunctionGlobal)
		} else {
			if seenNative {
				p.fail(FunctionFlagError, "duplicate Native flag")
				return nil
			}
			seenNative = true
			flags = append(flags, FunctionNative)
		}
		flagsEnd = p.end
		p.next()
		if p.err != nil {
			return nil
		}
	}

	fn := &FunctionStatement{
		baseNode: baseNode{start: start, end: flagsEnd},
		Id:       id, Kind: kind, Params: params, Flags: flags,
	}

	if seenNative {
		// Native functions have no body; EndFunction is omitted. Some
		// sources still carry a trailing EndFunction anyway - accept and
		// consume it if present rather than leaving it dangling.
		if p.tok == KwEndFunction {
			endTok := p.end
			p.next()
			if p.err != nil {
				return nil
			}
			fn.end = endTok
		}
		return fn
	}

	prevInFunction := p.inFunction
	p.inFunction = true
	body := p.blockStatement(map[TokenKind]bool{KwEndFunction: true})
	p.inFunction = prevInFunction
	if p.err != nil {
		return nil
	}
	fn.Body = body
	endTok := p.end
	p.want(KwEndFunction)
	if p.err != nil {
		return nil
	}
	fn.end = endTok
	return fn
}

// eventStatement parses an EventStatement (spec §4.3.4): the same shape
// as a FunctionStatement but without a return type, and only Native
// among its flags.
func (p *Parser) eventStatement() Node {
	start := p.start
	p.want(KwEvent)
	if p.err != nil {
		return nil
	}
	id := p.identifier()
	if p.err != nil {
		return nil
	}
	params := p.parameterList()
	if p.err != nil {
		return nil
	}

	var flags []EventFlag
	seenNative := false
	flagsEnd := p.end
	for p.tok == KwNative {
		if p.newlineBeforeCurrent() {
			p.fail(EventFlagError, "Native flag must appear on the same line as the parameter list")
			return nil
		}
		if seenNative {
			p.fail(EventFlagError, "duplicate Native flag")
			return nil
		}
		seenNative = true
		flags = append(flags, EventNative)
		flagsEnd = p.end
		p.next()
		if p.err != nil {
			return nil
		}
	}

	ev := &EventStatement{
		baseNode: baseNode{start: start, end: flagsEnd},
		Id:       id, Params: params, Flags: flags,
	}

	if seenNative {
		if p.tok == KwEndEvent {
			endTok := p.end
			p.next()
			if p.err != nil {
				return nil
			}
			ev.end = endTok
		}
		return ev
	}

	prevInEvent := p.inEvent
	p.inEvent = true
	body := p.blockStatement(map[TokenKind]bool{KwEndEvent: true})
	p.inEvent = prevInEvent
	if p.err != nil {
		return nil
	}
	ev.Body = body
	endTok := p.end
	p.want(KwEndEvent)
	if p.err != nil {
		return nil
	}
	ev.end = endTok
	return ev
}

// stateStatement parses `State <Name> ... EndState` (spec §4.3.5).
func (p *Parser) stateStatement(auto bool) Node {
	return p.stateStatementFrom(p.start, auto)
}

// stateStatementFrom is factored out so autoDispatch can supply Auto's
// own start position when it precedes State.
func (p *Parser) stateStatementFrom(start int, auto bool) Node {
	p.want(KwState)
	if p.err != nil {
		return nil
	}
	id := p.identifier()
	if p.err != nil {
		return nil
	}

	prevInState := p.inState
	p.inState = true
	body := p.blockStatement(map[TokenKind]bool{KwEndState: true})
	p.inState = prevInState
	if p.err != nil {
		return nil
	}
	for _, child := range body.Body {
		switch child.(type) {
		case *FunctionStatement, *EventStatement:
		default:
			p.failAt(StateStatementError, child.Start(), child.End(),
				"a state may only contain Function or Event declarations, got %s", child.NodeType())
			return nil
		}
	}

	endTok := p.end
	p.want(KwEndState)
	if p.err != nil {
		return nil
	}
	return &StateStatement{baseNode: baseNode{start: start, end: endTok}, Id: id, Auto: auto, Body: body}
}

// nameLedStatement implements spec §4.3.1's lookahead-driven dispatch for
// a statement that begins with a Name or a primitive type keyword: the
// same token sequence is a variable/function/property declaration's
// type name in one program and the start of a plain expression
// (`foo.Bar()`, `foo = 1`) in another. It peeks past the identifier
// without consuming it to decide which.
func (p *Parser) nameLedStatement() Node {
	start := p.start
	typeName := p.value
	typeEnd := p.end

	pos, c := p.lex.peekFrom(p.end)
	switch c {
	case '=', '+', '-', '*', '/', '%', '.', '(':
		return p.expressionStatement()
	case '[':
		_, c2 := p.lex.peekFrom(pos + 1)
		if c2 != ']' {
			return p.expressionStatement()
		}
		p.next() // consume the type-name token
		if p.err != nil {
			return nil
		}
		p.want(BracketL)
		if p.err != nil {
			return nil
		}
		p.want(BracketR)
		if p.err != nil {
			return nil
		}
		return p.typeLedStatement(start, typeEnd, typeName+"[]", true)
	}

	p.next() // consume the type-name token
	if p.err != nil {
		return nil
	}
	return p.typeLedStatement(start, typeEnd, typeName, false)
}

// typeLedStatement branches on the token immediately following a
// consumed type name (and, for array types, its trailing `[]`) per
// spec §4.3.1's dispatch table.
func (p *Parser) typeLedStatement(start, idEnd int, kind string, isArray bool) Node {
	switch p.tok {
	case KwAs, ParenL:
		id := &Identifier{baseNode: baseNode{start: start, end: idEnd}, Name: kind}
		expr := p.parseSubscriptsFrom(id)
		if p.err != nil {
			return nil
		}
		return p.finishExpressionOrAssign(start, expr)

	case KwFunction:
		return p.functionStatement(start, kind)

	case KwProperty:
		return p.propertyDeclaration(start, kind)

	case Name:
		return p.variableDeclarationStatement(start, kind, isArray)

	default:
		p.fail(UnexpectedToken, "unexpected token %s after type name %q", p.tok, kind)
		return nil
	}
}

// finishExpressionOrAssign wraps expr as an ExpressionStatement, folding
// in a trailing assignment if one follows - mirrors the tail of
// parseExpression, needed here because the leading operand was built by
// hand from an already-consumed type name rather than by atom().
func (p *Parser) finishExpressionOrAssign(start int, expr Node) Node {
	if isAssignOp(p.tok) {
		op := p.value
		p.next()
		if p.err != nil {
			return nil
		}
		right := p.parseExpression()
		if p.err != nil {
			return nil
		}
		expr = &AssignExpression{baseNode: baseNode{start: expr.Start(), end: right.End()}, Left: expr, Operator: op, Right: right}
	}
	return &ExpressionStatement{baseNode: baseNode{start: start, end: expr.End()}, Expression: expr}
}

func (p *Parser) variableDeclarationStatement(start int, kind string, isArray bool) Node {
	id := p.identifier()
	if p.err != nil {
		return nil
	}
	variable := Variable{Id: id, Kind: kind, IsArray: isArray}
	end := id.End()
	if p.tok == Assign && p.value == "=" {
		p.next()
		if p.err != nil {
			return nil
		}
		init := p.parseExpression()
		if p.err != nil {
			return nil
		}
		variable.Init = init
		end = init.End()
	}
	return &VariableDeclaration{baseNode: baseNode{start: start, end: end}, Variable: variable}
}

// propertyDeclaration parses spec §4.3.6's property grammar: an
// optional literal initializer, then a run of flags (Hidden, Auto,
// Conditional, AutoReadOnly), validated against each other and against
// the enclosing ScriptName, and switching to a Get/Set full-property
// body when no auto-backing flag is present.
func (p *Parser) propertyDeclaration(start int, kind string) Node {
	p.want(KwProperty)
	if p.err != nil {
		return nil
	}
	if p.inFunction || p.inEvent {
		p.failAt(PropertyError, start, p.end, "Property declarations are not allowed inside a function or event")
		return nil
	}
	id := p.identifier()
	if p.err != nil {
		return nil
	}

	var init *Literal
	end := id.End()
	if p.tok == Assign && p.value == "=" {
		p.next()
		if p.err != nil {
			return nil
		}
		lit, ok := p.atom().(*Literal)
		if p.err != nil {
			return nil
		}
		if !ok {
			p.fail(PropertyError, "property initializer must be a literal")
			return nil
		}
		init = lit
		end = lit.End()
	}

	var flags []PropertyFlag
	seen := map[PropertyFlag]bool{}
	for {
		var flag PropertyFlag
		switch p.tok {
		case KwHidden:
			flag = PropertyHidden
		case KwAuto:
			flag = PropertyAuto
		case KwConditional:
			flag = PropertyConditional
		case KwAutoReadOnly:
			flag = PropertyAutoReadOnly
		default:
			goto doneFlags
		}
		if seen[flag] {
			p.fail(PropertyError, "duplicate %s flag", flag)
			return nil
		}
		seen[flag] = true
		flags = append(flags, flag)
		end = p.end
		p.next()
		if p.err != nil {
			return nil
		}
	}
doneFlags:

	prop := &PropertyDeclaration{baseNode: baseNode{start: start, end: end}, Id: id, Kind: kind, Init: init, Flags: flags}

	if p.scriptName != nil && p.scriptName.HasFlag(ScriptNameConditional) && !seen[PropertyConditional] {
		p.failAt(PropertyError, start, end, "every property must be Conditional when the ScriptName is Conditional")
		return nil
	}
	if seen[PropertyAutoReadOnly] && init == nil {
		p.failAt(PropertyError, start, end, "AutoReadOnly property requires an initializer")
		return nil
	}
	if seen[PropertyConditional] && !seen[PropertyAuto] && !seen[PropertyAutoReadOnly] {
		p.failAt(PropertyError, start, end, "Conditional property requires Auto or AutoReadOnly")
		return nil
	}
	if seen[PropertyConditional] && init == nil {
		p.failAt(PropertyError, start, end, "Conditional property requires an initializer")
		return nil
	}

	if prop.HasNoFlags() {
		p.failAt(PropertyError, start, end, "Missing Hidden flag for Full Property")
		return nil
	}

	if !seen[PropertyAuto] && !seen[PropertyAutoReadOnly] && !seen[PropertyConditional] {
		return p.fullPropertyBody(start, prop)
	}
	return prop
}

// fullPropertyBody parses the Get/Set body of a full (Hidden) property,
// per spec §4.3.6 steps 5-6.
func (p *Parser) fullPropertyBody(start int, base *PropertyDeclaration) Node {
	rest := p.lex.src.content[p.start:]
	if !strings.Contains(strings.ToLower(rest), "endproperty") {
		p.failAt(PropertyError, start, p.end, "EndProperty not found for property %q", base.Id.Name)
		return nil
	}

	body := p.blockStatement(map[TokenKind]bool{KwEndProperty: true})
	if p.err != nil {
		return nil
	}
	if len(body.Body) == 0 {
		p.failAt(PropertyError, body.Start(), body.End(), "full property body must not be empty")
		return nil
	}

	full := &PropertyFullDeclaration{PropertyDeclaration: *base}
	for _, child := range body.Body {
		fn, ok := child.(*FunctionStatement)
		if !ok {
			p.failAt(PropertyError, child.Start(), child.End(), "full property body may only contain Get/Set functions")
			return nil
		}
		switch {
		case strings.EqualFold(fn.Id.Name, "Get"):
			if full.Getter != nil {
				p.failAt(PropertyError, fn.Start(), fn.End(), "duplicate property getter")
				return nil
			}
			if len(fn.Params) != 0 {
				p.failAt(PropertyError, fn.Start(), fn.End(), "property getter must take no parameters")
				return nil
			}
			if fn.Kind != base.Kind {
				p.failAt(PropertyError, fn.Start(), fn.End(), "property getter must return %s", base.Kind)
				return nil
			}
			full.Getter = fn

		case strings.EqualFold(fn.Id.Name, "Set"):
			if full.Setter != nil {
				p.failAt(PropertyError, fn.Start(), fn.End(), "duplicate property setter")
				return nil
			}
			if len(fn.Params) != 1 {
				p.failAt(PropertyError, fn.Start(), fn.End(), "property setter must take exactly one parameter")
				return nil
			}
			full.Setter = fn

		default:
			p.failAt(PropertyError, fn.Start(), fn.End(), "full property body may only contain Get/Set functions")
			return nil
		}
	}

	endTok := p.end
	p.want(KwEndProperty)
	if p.err != nil {
		return nil
	}
	full.end = endTok
	return full
}
