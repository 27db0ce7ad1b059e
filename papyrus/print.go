package papyrus

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program [%d:%d]\n", n.Start(), n.End())
		p.indent++
		for _, stmt := range n.Body {
			p.print(stmt)
		}
		p.indent--

	case *ScriptNameStatement:
		p.printf("ScriptNameStatement %s\n", n.Id.Name)
		p.indent++
		if n.Extends != nil {
			p.printf("Extends: %s\n", n.Extends.Extended.Name)
		}
		for _, f := range n.Flags {
			p.printf("Flag: %s\n", f)
		}
		p.indent--

	case *ImportStatement:
		p.printf("ImportStatement %s\n", n.Id.Name)

	case *PropertyDeclaration:
		p.printf("PropertyDeclaration %s %s\n", n.Kind, n.Id.Name)
		p.indent++
		for _, f := range n.Flags {
			p.printf("Flag: %s\n", f)
		}
		if n.Init != nil {
			p.printf("Init:\n")
			p.indent++
			p.print(n.Init)
			p.indent--
		}
		p.indent--

	case *PropertyFullDeclaration:
		p.printf("PropertyFullDeclaration %s %s\n", n.Kind, n.Id.Name)
		p.indent++
		for _, f := range n.Flags {
			p.printf("Flag: %s\n", f)
		}
		if n.Getter != nil {
			p.printf("Getter:\n")
			p.indent++
			p.print(n.Getter)
			p.indent--
		}
		if n.Setter != nil {
			p.printf("Setter:\n")
			p.indent++
			p.print(n.Setter)
			p.indent--
		}
		p.indent--

	case *FunctionStatement:
		kind := n.Kind
		if kind == "" {
			kind = "<none>"
		}
		p.printf("FunctionStatement %s -> %s\n", n.Id.Name, kind)
		p.indent++
		for _, param := range n.Params {
			p.print(param)
		}
		for _, f := range n.Flags {
			p.printf("Flag: %s\n", f)
		}
		if n.Body != nil {
			p.print(n.Body)
		}
		p.indent--

	case *EventStatement:
		p.printf("EventStatement %s\n", n.Id.Name)
		p.indent++
		for _, param := range n.Params {
			p.print(param)
		}
		for _, f := range n.Flags {
			p.printf("Flag: %s\n", f)
		}
		if n.Body != nil {
			p.print(n.Body)
		}
		p.indent--

	case *StateStatement:
		p.printf("StateStatement %s auto=%v\n", n.Id.Name, n.Auto)
		p.indent++
		p.print(n.Body)
		p.indent--

	case *BlockStatement:
		for _, stmt := range n.Body {
			p.print(stmt)
		}

	case *IfStatement:
		p.printf("IfStatement\n")
		p.indent++
		p.printf("Test:\n")
		p.indent++
		p.print(n.Test)
		p.indent--
		p.printf("Consequent:\n")
		p.indent++
		p.print(n.Consequent)
		p.indent--
		if n.Alternate != nil {
			p.printf("Alternate:\n")
			p.indent++
			p.print(n.Alternate)
			p.indent--
		}
		p.indent--

	case *WhileStatement:
		p.printf("WhileStatement\n")
		p.indent++
		p.printf("Test:\n")
		p.indent++
		p.print(n.Test)
		p.indent--
		p.printf("Consequent:\n")
		p.indent++
		p.print(n.Consequent)
		p.indent--
		p.indent--

	case *ReturnStatement:
		p.printf("ReturnStatement\n")
		if n.Argument != nil {
			p.indent++
			p.print(n.Argument)
			p.indent--
		}

	case *VariableDeclaration:
		p.printf("VariableDeclaration %s %s\n", n.Variable.Kind, n.Variable.Id.Name)
		if n.Variable.Init != nil {
			p.indent++
			p.printf("Init:\n")
			p.indent++
			p.print(n.Variable.Init)
			p.indent--
			p.indent--
		}

	case *ExpressionStatement:
		p.printf("ExpressionStatement\n")
		p.indent++
		p.print(n.Expression)
		p.indent--

	case *AssignExpression:
		p.printf("AssignExpression %s\n", n.Operator)
		p.indent++
		p.print(n.Left)
		p.print(n.Right)
		p.indent--

	case *BinaryExpression:
		p.printf("%s %s\n", n.NodeType(), n.Operator)
		p.indent++
		p.print(n.Left)
		p.print(n.Right)
		p.indent--

	case *UnaryExpression:
		p.printf("UnaryExpression %s\n", n.Operator)
		p.indent++
		p.print(n.Argument)
		p.indent--

	case *CallExpression:
		p.printf("CallExpression\n")
		p.indent++
		p.printf("Callee:\n")
		p.indent++
		p.print(n.Callee)
		p.indent--
		for _, arg := range n.Arguments {
			p.print(arg)
		}
		p.indent--

	case *MemberExpression:
		p.printf("MemberExpression computed=%v\n", n.Computed)
		p.indent++
		p.print(n.Object)
		p.print(n.Property)
		p.indent--

	case *CastExpression:
		p.printf("CastExpression -> %s\n", n.Kind.Name)
		p.indent++
		p.print(n.Id)
		p.indent--

	case *NewExpression:
		p.printf("NewExpression %s\n", n.Meta.Name)
		p.indent++
		p.print(n.Argument)
		p.indent--

	case *Literal:
		p.printf("Literal %q\n", n.Raw)

	case *Identifier:
		p.printf("Identifier %q\n", n.Name)

	case *SelfExpression:
		p.printf("SelfExpression\n")

	case *ParentExpression:
		p.printf("ParentExpression\n")

	default:
		p.printf("<%T>\n", node)
	}
}
