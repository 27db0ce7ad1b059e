package papyrus

// Visitor is called for each node during Walk. If it returns false, the
// node's children are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order. If v returns false for a
// node, that node's children are skipped.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Body {
			Walk(stmt, v)
		}

	case *ScriptNameStatement:
		Walk(n.Id, v)
		if n.Extends != nil {
			Walk(n.Extends, v)
		}

	case *ExtendsDeclaration:
		Walk(n.Extended, v)

	case *ImportStatement:
		Walk(n.Id, v)

	case *PropertyDeclaration:
		Walk(n.Id, v)
		if n.Init != nil {
			Walk(n.Init, v)
		}

	case *PropertyFullDeclaration:
		Walk(n.Id, v)
		if n.Init != nil {
			Walk(n.Init, v)
		}
		if n.Getter != nil {
			Walk(n.Getter, v)
		}
		if n.Setter != nil {
			Walk(n.Setter, v)
		}

	case *FunctionStatement:
		Walk(n.Id, v)
		for _, param := range n.Params {
			Walk(param, v)
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}

	case *EventStatement:
		Walk(n.Id, v)
		for _, param := range n.Params {
			Walk(param, v)
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}

	case *StateStatement:
		Walk(n.Id, v)
		if n.Body != nil {
			Walk(n.Body, v)
		}

	case *BlockStatement:
		for _, stmt := range n.Body {
			Walk(stmt, v)
		}

	case *IfStatement:
		Walk(n.Test, v)
		Walk(n.Consequent, v)
		if n.Alternate != nil {
			Walk(n.Alternate, v)
		}

	case *WhileStatement:
		Walk(n.Test, v)
		Walk(n.Consequent, v)

	case *ReturnStatement:
		if n.Argument != nil {
			Walk(n.Argument, v)
		}

	case *VariableDeclaration:
		Walk(n.Variable.Id, v)
		if n.Variable.Init != nil {
			Walk(n.Variable.Init, v)
		}

	case *ExpressionStatement:
		Walk(n.Expression, v)

	case *AssignExpression:
		Walk(n.Left, v)
		Walk(n.Right, v)

	case *BinaryExpression:
		Walk(n.Left, v)
		Walk(n.Right, v)

	case *UnaryExpression:
		Walk(n.Argument, v)

	case *CallExpression:
		Walk(n.Callee, v)
		for _, arg := range n.Arguments {
			Walk(arg, v)
		}

	case *MemberExpression:
		Walk(n.Object, v)
		Walk(n.Property, v)

	case *CastExpression:
		Walk(n.Id, v)
		Walk(n.Kind, v)

	case *NewExpression:
		Walk(n.Meta, v)
		Walk(n.Argument, v)

		// Leaf nodes: Literal, Identifier, SelfExpression, ParentExpression -
		// no children to visit.
	}
}

// Inspect is a convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
