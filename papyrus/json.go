package papyrus

import (
	"encoding/json"
	"io"
)

// FprintJSON writes the §6.4 JSON representation of node to w: every
// node is an object carrying its type tag, byte-offset span, and its
// own fields, nested the same way the AST is.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	m := map[string]interface{}{
		"type":  node.NodeType(),
		"start": node.Start(),
		"end":   node.End(),
	}

	switch n := node.(type) {
	case *Program:
		m["body"] = mapSlice(n.Body, toJSON)

	case *ScriptNameStatement:
		m["id"] = toJSON(n.Id)
		if n.Extends != nil {
			m["extends"] = toJSON(n.Extends)
		}
		m["flags"] = mapSlice(n.Flags, func(f ScriptNameFlag) interface{} { return f.String() })

	case *ExtendsDeclaration:
		m["extended"] = toJSON(n.Extended)

	case *ImportStatement:
		m["id"] = toJSON(n.Id)

	case *PropertyDeclaration:
		m["id"] = toJSON(n.Id)
		m["kind"] = n.Kind
		if n.Init != nil {
			m["init"] = toJSON(n.Init)
		}
		m["flags"] = mapSlice(n.Flags, func(f PropertyFlag) interface{} { return f.String() })

	case *PropertyFullDeclaration:
		m["id"] = toJSON(n.Id)
		m["kind"] = n.Kind
		if n.Init != nil {
			m["init"] = toJSON(n.Init)
		}
		m["flags"] = mapSlice(n.Flags, func(f PropertyFlag) interface{} { return f.String() })
		if n.Getter != nil {
			m["getter"] = toJSON(n.Getter)
		}
		if n.Setter != nil {
			m["setter"] = toJSON(n.Setter)
		}

	case *FunctionStatement:
		m["id"] = toJSON(n.Id)
		m["kind"] = n.Kind
		m["params"] = mapSlice(n.Params, func(vd *VariableDeclaration) interface{} { return toJSON(vd) })
		m["flags"] = mapSlice(n.Flags, func(f FunctionFlag) interface{} { return f.String() })
		if n.Body != nil {
			m["body"] = toJSON(n.Body)
		}

	case *EventStatement:
		m["id"] = toJSON(n.Id)
		m["params"] = mapSlice(n.Params, func(vd *VariableDeclaration) interface{} { return toJSON(vd) })
		m["flags"] = mapSlice(n.Flags, func(f EventFlag) interface{} { return f.String() })
		if n.Body != nil {
			m["body"] = toJSON(n.Body)
		}

	case *StateStatement:
		m["id"] = toJSON(n.Id)
		m["auto"] = n.Auto
		m["body"] = toJSON(n.Body)

	case *BlockStatement:
		m["body"] = mapSlice(n.Body, toJSON)

	case *IfStatement:
		m["test"] = toJSON(n.Test)
		m["consequent"] = toJSON(n.Consequent)
		if n.Alternate != nil {
			m["alternate"] = toJSON(n.Alternate)
		}

	case *WhileStatement:
		m["test"] = toJSON(n.Test)
		m["consequent"] = toJSON(n.Consequent)

	case *ReturnStatement:
		if n.Argument != nil {
			m["argument"] = toJSON(n.Argument)
		}

	case *VariableDeclaration:
		m["id"] = toJSON(n.Variable.Id)
		m["kind"] = n.Variable.Kind
		m["isArray"] = n.Variable.IsArray
		if n.Variable.Init != nil {
			m["init"] = toJSON(n.Variable.Init)
		}

	case *ExpressionStatement:
		m["expression"] = toJSON(n.Expression)

	case *AssignExpression:
		m["left"] = toJSON(n.Left)
		m["operator"] = n.Operator
		m["right"] = toJSON(n.Right)

	case *BinaryExpression:
		m["left"] = toJSON(n.Left)
		m["operator"] = n.Operator
		m["right"] = toJSON(n.Right)

	case *UnaryExpression:
		m["operator"] = n.Operator
		m["argument"] = toJSON(n.Argument)
		m["prefix"] = n.IsPrefix

	case *CallExpression:
		m["callee"] = toJSON(n.Callee)
		m["arguments"] = mapSlice(n.Arguments, toJSON)

	case *MemberExpression:
		m["object"] = toJSON(n.Object)
		m["property"] = toJSON(n.Property)
		m["computed"] = n.Computed

	case *CastExpression:
		m["id"] = toJSON(n.Id)
		m["kind"] = toJSON(n.Kind)

	case *NewExpression:
		m["meta"] = toJSON(n.Meta)
		m["argument"] = toJSON(n.Argument)

	case *Literal:
		m["value"] = n.Value
		m["raw"] = n.Raw

	case *Identifier:
		m["name"] = n.Name

	case *SelfExpression, *ParentExpression:
		// no fields beyond type/start/end
	}

	return m
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
