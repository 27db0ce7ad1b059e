package papyrus

// Node is the common interface implemented by every AST node. Every node
// carries its kind tag (NodeType) and its byte-offset span into the
// source it was parsed from.
type Node interface {
	NodeType() string
	Start() int
	End() int
}

// baseNode is embedded in every concrete node type to supply Start/End.
type baseNode struct {
	start, end int
}

func (n *baseNode) Start() int { return n.start }
func (n *baseNode) End() int   { return n.end }

// Program is the root node produced by a successful parse.
type Program struct {
	baseNode
	Body []Node
}

func (*Program) NodeType() string { return "Program" }

// ScriptNameFlag is a flag on a ScriptNameStatement.
type ScriptNameFlag int

const (
	ScriptNameConditional ScriptNameFlag = iota
	ScriptNameHidden
)

func (f ScriptNameFlag) String() string {
	switch f {
	case ScriptNameConditional:
		return "Conditional"
	case ScriptNameHidden:
		return "Hidden"
	default:
		return "Unknown"
	}
}

type ScriptNameStatement struct {
	baseNode
	Id      *Identifier
	Extends *ExtendsDeclaration
	Flags   []ScriptNameFlag
}

func (*ScriptNameStatement) NodeType() string { return "ScriptNameStatement" }

func (s *ScriptNameStatement) HasFlag(f ScriptNameFlag) bool {
	for _, got := range s.Flags {
		if got == f {
			return true
		}
	}
	return false
}

type ExtendsDeclaration struct {
	baseNode
	Extended *Identifier
}

func (*ExtendsDeclaration) NodeType() string { return "ExtendsDeclaration" }

type ImportStatement struct {
	baseNode
	Id *Identifier
}

func (*ImportStatement) NodeType() string { return "ImportStatement" }

// PropertyFlag is a flag on a PropertyDeclaration.
type PropertyFlag int

const (
	PropertyAuto PropertyFlag = iota
	PropertyAutoReadOnly
	PropertyConditional
	PropertyHidden
)

func (f PropertyFlag) String() string {
	switch f {
	case PropertyAuto:
		return "Auto"
	case PropertyAutoReadOnly:
		return "AutoReadOnly"
	case PropertyConditional:
		return "Conditional"
	case PropertyHidden:
		return "Hidden"
	default:
		return "Unknown"
	}
}

type PropertyDeclaration struct {
	baseNode
	Id    *Identifier
	Kind  string
	Init  *Literal
	Flags []PropertyFlag
}

func (*PropertyDeclaration) NodeType() string { return "PropertyDeclaration" }

func (p *PropertyDeclaration) HasFlag(f PropertyFlag) bool {
	for _, got := range p.Flags {
		if got == f {
			return true
		}
	}
	return false
}

// HasNoFlags reports whether the declaration carries no flags at all, per
// spec §9's definition of the implicit PropertyDeclaration.hasNoFlags.
func (p *PropertyDeclaration) HasNoFlags() bool {
	return len(p.Flags) == 0
}

// PropertyFullDeclaration is a property with an explicit body terminated
// by EndProperty, carrying getter and/or setter functions. It embeds
// PropertyDeclaration rather than duplicating its fields; spec §9
// explicitly allows this in place of a sum-type "extends" relationship.
type PropertyFullDeclaration struct {
	PropertyDeclaration
	Getter *FunctionStatement
	Setter *FunctionStatement
}

func (*PropertyFullDeclaration) NodeType() string { return "PropertyFullDeclaration" }

// FunctionFlag is a flag on a FunctionStatement.
type FunctionFlag int

const (
	FunctionGlobal FunctionFlag = iota
	FunctionNative
)

func (f FunctionFlag) String() string {
	switch f {
	case FunctionGlobal:
		return "Global"
	case FunctionNative:
		return "Native"
	default:
		return "Unknown"
	}
}

type FunctionStatement struct {
	baseNode
	Id     *Identifier
	Kind   string // return type; "" if none
	Params []*VariableDeclaration
	Flags  []FunctionFlag
	Body   *BlockStatement
}

func (*FunctionStatement) NodeType() string { return "FunctionStatement" }

func (f *FunctionStatement) HasFlag(flag FunctionFlag) bool {
	for _, got := range f.Flags {
		if got == flag {
			return true
		}
	}
	return false
}

// EventFlag is a flag on an EventStatement.
type EventFlag int

const (
	EventNative EventFlag = iota
)

func (f EventFlag) String() string {
	switch f {
	case EventNative:
		return "Native"
	default:
		return "Unknown"
	}
}

type EventStatement struct {
	baseNode
	Id     *Identifier
	Params []*VariableDeclaration
	Flags  []EventFlag
	Body   *BlockStatement
}

func (*EventStatement) NodeType() string { return "EventStatement" }

func (e *EventStatement) HasFlag(flag EventFlag) bool {
	for _, got := range e.Flags {
		if got == flag {
			return true
		}
	}
	return false
}

type StateStatement struct {
	baseNode
	Id   *Identifier
	Auto bool
	Body *BlockStatement
}

func (*StateStatement) NodeType() string { return "StateStatement" }

type BlockStatement struct {
	baseNode
	Body []Node
}

func (*BlockStatement) NodeType() string { return "BlockStatement" }

// IfStatement's Alternate is nil, a *BlockStatement (the else branch), or
// an *IfStatement (an elseif branch).
type IfStatement struct {
	baseNode
	Test       Node
	Consequent *BlockStatement
	Alternate  Node
}

func (*IfStatement) NodeType() string { return "IfStatement" }

type WhileStatement struct {
	baseNode
	Test       Node
	Consequent *BlockStatement
}

func (*WhileStatement) NodeType() string { return "WhileStatement" }

type ReturnStatement struct {
	baseNode
	Argument Node
}

func (*ReturnStatement) NodeType() string { return "ReturnStatement" }

// Variable is the payload of a VariableDeclaration: a name, a type name
// (which already ends in "[]" for an array type, with IsArray also set),
// and an optional initializer.
type Variable struct {
	Id      *Identifier
	Kind    string
	IsArray bool
	Init    Node
}

type VariableDeclaration struct {
	baseNode
	Variable Variable
}

func (*VariableDeclaration) NodeType() string { return "VariableDeclaration" }

type ExpressionStatement struct {
	baseNode
	Expression Node
}

func (*ExpressionStatement) NodeType() string { return "ExpressionStatement" }

// AssignExpression.Operator is one of "=" "+=" "-=" "*=" "/=" "%=".
type AssignExpression struct {
	baseNode
	Left     Node
	Operator string
	Right    Node
}

func (*AssignExpression) NodeType() string { return "AssignExpression" }

// BinaryExpression covers both the spec's BinaryExpression and
// LogicalExpression kinds, distinguished only by Logical (operator is
// "||" or "&&"). NodeType reports the spec-visible tag dynamically
// rather than splitting into two otherwise-identical Go types.
type BinaryExpression struct {
	baseNode
	Left, Right Node
	Operator    string
	Logical     bool
}

func (b *BinaryExpression) NodeType() string {
	if b.Logical {
		return "LogicalExpression"
	}
	return "BinaryExpression"
}

// UnaryExpression.Operator is "-", "!", or "~"; IsPrefix is always true
// (Papyrus has no postfix unary operators).
type UnaryExpression struct {
	baseNode
	Operator string
	Argument Node
	IsPrefix bool
}

func (*UnaryExpression) NodeType() string { return "UnaryExpression" }

type CallExpression struct {
	baseNode
	Callee    Node
	Arguments []Node
}

func (*CallExpression) NodeType() string { return "CallExpression" }

type MemberExpression struct {
	baseNode
	Object   Node
	Property Node
	Computed bool
}

func (*MemberExpression) NodeType() string { return "MemberExpression" }

type CastExpression struct {
	baseNode
	Id   Node
	Kind *Identifier
}

func (*CastExpression) NodeType() string { return "CastExpression" }

// NewExpression.Argument is always a *MemberExpression whose Property is
// a Literal (the array size); the parser does not check that the literal
// is an integer.
type NewExpression struct {
	baseNode
	Meta     *Identifier
	Argument *MemberExpression
}

func (*NewExpression) NodeType() string { return "NewExpression" }

// Literal.Value holds a bool, nil (for None), int64, float64, or string.
// Raw is the exact source slice the literal was scanned from.
type Literal struct {
	baseNode
	Value interface{}
	Raw   string
}

func (*Literal) NodeType() string { return "Literal" }

type Identifier struct {
	baseNode
	Name string
}

func (*Identifier) NodeType() string { return "Identifier" }

type SelfExpression struct {
	baseNode
}

func (*SelfExpression) NodeType() string { return "SelfExpression" }

type ParentExpression struct {
	baseNode
}

func (*ParentExpression) NodeType() string { return "ParentExpression" }
