package papyrus

// Precedence levels for the binary/logical ladder (spec §4.3.7 point 2).
// StarStar is grouped with the other multiplicative operators - the
// prose table omits it, but the lexer's operator-tokenization table
// (§4.2) places `**` in the same family as `*`, and no other tier fits
// it; see DESIGN.md.
func precedenceOf(tok TokenKind) int {
	switch tok {
	case LogicalOr:
		return 1
	case LogicalAnd:
		return 2
	case Equality:
		return 3
	case Relational:
		return 4
	case PlusMinus:
		return 5
	case Star, StarStar, Slash, Modulo:
		return 6
	default:
		return 0
	}
}

func isAssignOp(tok TokenKind) bool {
	return tok == Assign
}

// parseExpression parses a full expression: right-associative assignment
// over the left-associative binary/logical ladder, over unary, over
// subscripted atoms (spec §4.3.7).
func (p *Parser) parseExpression() Node {
	left := p.parseBinary(0)
	if p.err != nil {
		return nil
	}
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
		return &AssignExpression{baseNode: baseNode{start: left.Start(), end: right.End()}, Left: left, Operator: op, Right: right}
	}
	return left
}

func (p *Parser) parseBinary(minPrec int) Node {
	left := p.unaryExpr()
	if p.err != nil {
		return nil
	}
	for {
		prec := precedenceOf(p.tok)
		if prec <= minPrec {
			return left
		}
		if !p.inFunction && !p.inEvent && p.opts.ThrowBinaryOutside {
			p.fail(UnexpectedToken, "binary/logical expression outside of a function or event")
			return nil
		}
		opTok := p.tok
		opText := p.value
		p.next()
		if p.err != nil {
			return nil
		}
		right := p.parseBinary(prec)
		if p.err != nil {
			return nil
		}
		logical := opTok == LogicalOr || opTok == LogicalAnd
		left = &BinaryExpression{
			baseNode: baseNode{start: left.Start(), end: right.End()},
			Left:     left, Right: right, Operator: opText, Logical: logical,
		}
	}
}

func (p *Parser) unaryExpr() Node {
	if p.tok == Prefix || (p.tok == PlusMinus && p.value == "-") {
		start := p.start
		op := p.value
		p.next()
		if p.err != nil {
			return nil
		}
		arg := p.unaryExpr()
		if p.err != nil {
			return nil
		}
		return &UnaryExpression{baseNode: baseNode{start: start, end: arg.End()}, Operator: op, Argument: arg, IsPrefix: true}
	}
	atom := p.atom()
	if p.err != nil {
		return nil
	}
	return p.parseSubscriptsFrom(atom)
}

// parseSubscriptsFrom applies the postfix chain - indexing, member
// access, calls, and casts - described in spec §4.3.7 point 4.
func (p *Parser) parseSubscriptsFrom(x Node) Node {
	for p.err == nil {
		switch p.tok {
		case BracketL:
			p.next()
			if p.err != nil {
				return nil
			}
			index := p.parseExpression()
			if p.err != nil {
				return nil
			}
			end := p.end
			p.want(BracketR)
			if p.err != nil {
				return nil
			}
			x = &MemberExpression{baseNode: baseNode{start: x.Start(), end: end}, Object: x, Property: index, Computed: true}

		case Dot:
			p.next()
			if p.err != nil {
				return nil
			}
			if parentMember, ok := x.(*MemberExpression); ok {
				if _, ok := parentMember.Object.(*ParentExpression); ok {
					p.fail(ParentMemberError, "cannot chain a member off Parent.%s", identifierText(parentMember.Property))
					return nil
				}
			}
			prop := p.identifier()
			if p.err != nil {
				return nil
			}
			x = &MemberExpression{baseNode: baseNode{start: x.Start(), end: prop.End()}, Object: x, Property: prop, Computed: false}

		case ParenL:
			if !p.inFunction && !p.inEvent && p.opts.ThrowCallOutside {
				p.fail(UnexpectedToken, "call expression outside of a function or event")
				return nil
			}
			if _, ok := x.(*ParentExpression); ok {
				p.fail(ParentMemberError, "Parent cannot be called directly")
				return nil
			}
			args, end := p.parseArgList()
			if p.err != nil {
				return nil
			}
			x = &CallExpression{baseNode: baseNode{start: x.Start(), end: end}, Callee: x, Arguments: args}

		case KwAs:
			if !p.inFunction && !p.inEvent && p.opts.ThrowCastOutside {
				p.fail(UnexpectedToken, "cast expression outside of a function or event")
				return nil
			}
			p.next()
			if p.err != nil {
				return nil
			}
			kind := p.typeIdentifier()
			if p.err != nil {
				return nil
			}
			x = &CastExpression{baseNode: baseNode{start: x.Start(), end: kind.End()}, Id: x, Kind: kind}

		default:
			return x
		}
	}
	return nil
}

func identifierText(n Node) string {
	if id, ok := n.(*Identifier); ok {
		return id.Name
	}
	return "?"
}

// parseArgList parses a parenthesized, comma-separated argument list and
// returns the arguments plus the byte offset just past the closing `)`.
func (p *Parser) parseArgList() ([]Node, int) {
	p.want(ParenL)
	if p.err != nil {
		return nil, 0
	}
	var args []Node
	if p.tok != ParenR {
		for {
			arg := p.parseExpression()
			if p.err != nil {
				return nil, 0
			}
			args = append(args, arg)
			if !p.got(Comma) {
				break
			}
		}
	}
	end := p.end
	p.want(ParenR)
	if p.err != nil {
		return nil, 0
	}
	return args, end
}

// atom parses an operand per spec §4.3.7 point 5.
func (p *Parser) atom() Node {
	switch p.tok {
	case KwSelf:
		n := &SelfExpression{baseNode{start: p.start, end: p.end}}
		p.next()
		return n

	case KwParent:
		if p.scriptName == nil || p.scriptName.Extends == nil {
			p.fail(ParentMemberError, "Parent may only be used in a script that Extends another")
			return nil
		}
		n := &ParentExpression{baseNode{start: p.start, end: p.end}}
		p.next()
		return n

	case Name:
		n := &Identifier{baseNode: baseNode{start: p.start, end: p.end}, Name: p.value}
		p.next()
		return n

	case Num:
		raw := p.lex.src.content[p.start:p.end]
		var value interface{}
		if p.num.IsFloat {
			value = p.num.Float
		} else {
			value = p.num.Int
		}
		n := &Literal{baseNode: baseNode{start: p.start, end: p.end}, Value: value, Raw: raw}
		p.next()
		return n

	case String:
		raw := p.lex.src.content[p.start:p.end]
		n := &Literal{baseNode: baseNode{start: p.start, end: p.end}, Value: p.value, Raw: raw}
		p.next()
		return n

	case Char:
		raw := p.lex.src.content[p.start:p.end]
		n := &Literal{baseNode: baseNode{start: p.start, end: p.end}, Value: p.value, Raw: raw}
		p.next()
		return n

	case KwTrue:
		raw := p.lex.src.content[p.start:p.end]
		n := &Literal{baseNode: baseNode{start: p.start, end: p.end}, Value: true, Raw: raw}
		p.next()
		return n

	case KwFalse:
		raw := p.lex.src.content[p.start:p.end]
		n := &Literal{baseNode: baseNode{start: p.start, end: p.end}, Value: false, Raw: raw}
		p.next()
		return n

	case KwNone:
		raw := p.lex.src.content[p.start:p.end]
		n := &Literal{baseNode: baseNode{start: p.start, end: p.end}, Value: nil, Raw: raw}
		p.next()
		return n

	case ParenL:
		p.next()
		if p.err != nil {
			return nil
		}
		inner := p.parseExpression()
		if p.err != nil {
			return nil
		}
		p.want(ParenR)
		if p.err != nil {
			return nil
		}
		return inner

	case KwNew:
		return p.newExpression()

	default:
		p.fail(UnexpectedToken, "expected an operand, got %s", p.tok)
		return nil
	}
}

// newExpression parses `New <Type>[<size>]` (spec §4.3.7's NewExpression
// rule): the subscripts are applied to the type name itself, and the
// resulting argument must be a MemberExpression whose property is a
// Literal. Per spec §9's open question, that literal is not additionally
// required to be an integer; only the shape is checked.
func (p *Parser) newExpression() Node {
	start := p.start
	p.next() // consume New
	if p.err != nil {
		return nil
	}
	if !p.inFunction && !p.inEvent && p.opts.ThrowNewOutside {
		p.failAt(UnexpectedToken, start, p.end, "New outside of a function or event")
		return nil
	}
	meta := p.typeIdentifier()
	if p.err != nil {
		return nil
	}
	argument := p.parseSubscriptsFrom(meta)
	if p.err != nil {
		return nil
	}
	member, ok := argument.(*MemberExpression)
	if !ok {
		p.failAt(UnexpectedToken, start, argument.End(), "New requires an array-size expression")
		return nil
	}
	if _, ok := member.Property.(*Literal); !ok {
		p.failAt(UnexpectedToken, start, argument.End(), "New requires a literal array size")
		return nil
	}
	return &NewExpression{baseNode: baseNode{start: start, end: member.End()}, Meta: meta, Argument: member}
}
