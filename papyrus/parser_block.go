package papyrus

import (
	"sort"
	"strings"
)

// blockStatement parses statements until the current token is one of
// closing or EOF (spec §4.3.9). It does not consume the closing token -
// callers want() the specific terminator they expect, since which one
// was actually seen often carries meaning (If/ElseIf/Else chains).
func (p *Parser) blockStatement(closing map[TokenKind]bool) *BlockStatement {
	start := p.start
	blk := &BlockStatement{baseNode: baseNode{start: start, end: start}}
	for p.err == nil && !closing[p.tok] && p.tok != Eof {
		stmt := p.parseStatement()
		if p.err != nil {
			return nil
		}
		if stmt != nil {
			blk.Body = append(blk.Body, stmt)
			blk.end = stmt.End()
		}
	}
	if p.err != nil {
		return nil
	}
	if p.tok == Eof {
		p.failAt(BlockStatementError, p.start, p.end,
			"unexpected end of file, expected one of: %s", closingNames(closing))
		return nil
	}
	return blk
}

func closingNames(closing map[TokenKind]bool) string {
	names := make([]string, 0, len(closing))
	for k := range closing {
		names = append(names, k.String())
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// parameterList parses a parenthesized, comma-separated binding list
// (spec §4.3.8): `<TypeName> [[]] <Name> [= <constant-expr>]`.
func (p *Parser) parameterList() []*VariableDeclaration {
	p.want(ParenL)
	if p.err != nil {
		return nil
	}
	var params []*VariableDeclaration
	for p.tok != ParenR && p.err == nil {
		param := p.parameter()
		if p.err != nil {
			return nil
		}
		params = append(params, param)
		if !p.got(Comma) {
			break
		}
	}
	if p.err != nil {
		return nil
	}
	p.want(ParenR)
	if p.err != nil {
		return nil
	}
	return params
}

func (p *Parser) parameter() *VariableDeclaration {
	start := p.start
	if p.tok != Name && !isTypeKeyword(p.tok) {
		p.fail(UnexpectedToken, "expected a parameter type, got %s", p.tok)
		return nil
	}
	kind := p.value
	p.next()
	if p.err != nil {
		return nil
	}

	isArray := false
	if p.tok == BracketL {
		bracketStart := p.start
		p.next()
		if p.tok == BracketR {
			p.next()
			isArray = true
			kind += "[]"
		} else {
			p.failAt(UnexpectedToken, bracketStart, p.end, "expected ']' to close array type")
			return nil
		}
	}
	if p.err != nil {
		return nil
	}

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
