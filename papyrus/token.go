package papyrus

import "fmt"

// TokenKind identifies the lexical class of a Token.
type TokenKind int

const (
	// Special
	Eof TokenKind = iota
	Name
	Num
	String
	Char

	// Punctuation
	ParenL
	ParenR
	BracketL
	BracketR
	Comma
	Dot
	Colon

	// Operators
	Assign
	Equality
	Relational
	PlusMinus
	Star
	StarStar
	Slash
	Modulo
	LogicalAnd
	LogicalOr
	Prefix

	// Binary is a reserved grouping tag carried over from the upstream
	// token set (spec §6.3); nothing the lexer emits ever has this kind -
	// multiplicative/additive operators always resolve to one of Star,
	// StarStar, Slash, Modulo, or PlusMinus.
	Binary

	// Block is a reserved marker kind (spec §6.3) for block-boundary
	// bookkeeping; like Binary, the lexer never emits it.
	Block

	// Keywords (case-insensitive; see keywords table below)
	KwAs
	KwAuto
	KwAutoReadOnly
	KwBool
	KwConditional
	KwElse
	KwElseIf
	KwEndEvent
	KwEndFunction
	KwEndIf
	KwEndProperty
	KwEndState
	KwEndWhile
	KwEvent
	KwExtends
	KwFalse
	KwFloat
	KwFunction
	KwGlobal
	KwHidden
	KwIf
	KwImport
	KwInt
	KwNative
	KwNew
	KwNone
	KwParent
	KwProperty
	KwReturn
	KwScriptName
	KwSelf
	KwState
	KwString
	KwTrue
	KwWhile

	tokenKindCount
)

var tokenKindNames = [...]string{
	Eof:        "Eof",
	Name:       "Name",
	Num:        "Num",
	String:     "String",
	Char:       "Char",
	ParenL:     "ParenL",
	ParenR:     "ParenR",
	BracketL:   "BracketL",
	BracketR:   "BracketR",
	Comma:      "Comma",
	Dot:        "Dot",
	Colon:      "Colon",
	Assign:     "Assign",
	Equality:   "Equality",
	Relational: "Relational",
	PlusMinus:  "PlusMinus",
	Star:       "Star",
	StarStar:   "StarStar",
	Slash:      "Slash",
	Modulo:     "Modulo",
	LogicalAnd: "LogicalAnd",
	LogicalOr:  "LogicalOr",
	Prefix:     "Prefix",
	Binary:     "Binary",
	Block:      "Block",

	KwAs:           "As",
	KwAuto:         "Auto",
	KwAutoReadOnly: "AutoReadOnly",
	KwBool:         "Bool",
	KwConditional:  "Conditional",
	KwElse:         "Else",
	KwElseIf:       "ElseIf",
	KwEndEvent:     "EndEvent",
	KwEndFunction:  "EndFunction",
	KwEndIf:        "EndIf",
	KwEndProperty:  "EndProperty",
	KwEndState:     "EndState",
	KwEndWhile:     "EndWhile",
	KwEvent:        "Event",
	KwExtends:      "Extends",
	KwFalse:        "False",
	KwFloat:        "Float",
	KwFunction:     "Function",
	KwGlobal:       "Global",
	KwHidden:       "Hidden",
	KwIf:           "If",
	KwImport:       "Import",
	KwInt:          "Int",
	KwNative:       "Native",
	KwNew:          "New",
	KwNone:         "None",
	KwParent:       "Parent",
	KwProperty:     "Property",
	KwReturn:       "Return",
	KwScriptName:   "ScriptName",
	KwSelf:         "Self",
	KwState:        "State",
	KwString:       "String",
	KwTrue:         "True",
	KwWhile:        "While",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenKindNames) && tokenKindNames[k] != "" {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// IsKeyword reports whether k is one of the Papyrus keyword kinds.
func (k TokenKind) IsKeyword() bool {
	return k >= KwAs && k < tokenKindCount
}

// keywords maps the lowercased keyword text to its token kind. Papyrus
// keywords are case-insensitive (spec §6.2).
var keywords = map[string]TokenKind{
	"as":           KwAs,
	"auto":         KwAuto,
	"autoreadonly": KwAutoReadOnly,
	"bool":         KwBool,
	"conditional":  KwConditional,
	"else":         KwElse,
	"elseif":       KwElseIf,
	"endevent":     KwEndEvent,
	"endfunction":  KwEndFunction,
	"endif":        KwEndIf,
	"endproperty":  KwEndProperty,
	"endstate":     KwEndState,
	"endwhile":     KwEndWhile,
	"event":        KwEvent,
	"extends":      KwExtends,
	"false":        KwFalse,
	"float":        KwFloat,
	"function":     KwFunction,
	"global":       KwGlobal,
	"hidden":       KwHidden,
	"if":           KwIf,
	"import":       KwImport,
	"int":          KwInt,
	"native":       KwNative,
	"new":          KwNew,
	"none":         KwNone,
	"parent":       KwParent,
	"property":     KwProperty,
	"return":       KwReturn,
	"scriptname":   KwScriptName,
	"self":         KwSelf,
	"state":        KwState,
	"string":       KwString,
	"true":         KwTrue,
	"while":        KwWhile,
}

// lookupKeyword returns the keyword kind for the lowercased identifier
// text, or (Name, false) if it isn't a keyword.
func lookupKeyword(lower string) (TokenKind, bool) {
	k, ok := keywords[lower]
	if !ok {
		return Name, false
	}
	return k, true
}

// isTypeKeyword reports whether k is one of the primitive type-name
// keywords (bool, int, float, string). These behave exactly like a
// user-defined type Name wherever a type name is expected - the only
// place they can legally appear is in type position (variable/parameter/
// property/function-return-type), never as a statement keyword in their
// own right. The parser's top-level statement dispatch (spec §4.3.1)
// therefore routes them through the same lookahead-driven path as Name.
func isTypeKeyword(k TokenKind) bool {
	switch k {
	case KwBool, KwInt, KwFloat, KwString:
		return true
	}
	return false
}

// Token is a single lexical token: its kind, literal value (if any), and
// byte-offset span [Start, End) into the source.
type Token struct {
	Kind  TokenKind
	Value string // identifier/keyword text, operator text, raw string/char contents
	Num   Number // populated when Kind == Num
	Start int
	End   int
}

// Number holds a numeric literal's decoded value. Exactly one of IsFloat
// selects which field is meaningful.
type Number struct {
	IsFloat bool
	Int     int64
	Float   float64
}
