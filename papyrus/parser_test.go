package papyrus

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := Parse(src, DefaultOptions(), "")
	if err != nil {
		t.Fatalf("unexpected parse error: %v\nsource:\n%s", err, src)
	}
	return prog
}

func mustFail(t *testing.T, src string, opts Options, filename string) *Error {
	t.Helper()
	prog, err := Parse(src, opts, filename)
	if err == nil {
		t.Fatalf("expected a parse error, got a program with %d statements", len(prog.Body))
	}
	return err
}

func TestParseScriptNameWithExtendsAndFlags(t *testing.T) {
	prog := mustParse(t, "ScriptName MyQuest Extends Quest Conditional Hidden\n")
	if len(prog.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Body))
	}
	sn, ok := prog.Body[0].(*ScriptNameStatement)
	if !ok {
		t.Fatalf("expected a ScriptNameStatement, got %T", prog.Body[0])
	}
	if sn.Id.Name != "MyQuest" {
		t.Fatalf("Id.Name = %q, want MyQuest", sn.Id.Name)
	}
	if sn.Extends == nil || sn.Extends.Extended.Name != "Quest" {
		t.Fatalf("expected Extends Quest, got %#v", sn.Extends)
	}
	if !sn.HasFlag(ScriptNameConditional) || !sn.HasFlag(ScriptNameHidden) {
		t.Fatalf("expected both Conditional and Hidden flags, got %v", sn.Flags)
	}
}

func TestParseScriptNameMustBeFirstStatement(t *testing.T) {
	err := mustFail(t, "Int Function F()\nEndFunction\n", DefaultOptions(), "")
	if err.Kind != ScriptNameError {
		t.Fatalf("error kind = %s, want ScriptName", err.Kind)
	}
}

func TestParseScriptNameMismatchedFilename(t *testing.T) {
	err := mustFail(t, "ScriptName MyQuest\n", DefaultOptions(), "OtherQuest")
	if err.Kind != ScriptNameError {
		t.Fatalf("error kind = %s, want ScriptName", err.Kind)
	}
}

func TestParseScriptNameFilenameCheckIsCaseInsensitive(t *testing.T) {
	mustParse2 := func(src, filename string) {
		t.Helper()
		if _, err := Parse(src, DefaultOptions(), filename); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	mustParse2("ScriptName MyQuest\n", "myquest")
}

func TestParseScriptNameDisallowsSecondDeclaration(t *testing.T) {
	err := mustFail(t, "ScriptName A\nScriptName B\n", DefaultOptions(), "")
	if err.Kind != ScriptNameError {
		t.Fatalf("error kind = %s, want ScriptName", err.Kind)
	}
}

func TestParseAutoProperty(t *testing.T) {
	prog := mustParse(t, "ScriptName Foo\n\nInt Property Count = 5 Auto\n")
	prop, ok := prog.Body[1].(*PropertyDeclaration)
	if !ok {
		t.Fatalf("expected a PropertyDeclaration, got %T", prog.Body[1])
	}
	if prop.Kind != "Int" || prop.Id.Name != "Count" {
		t.Fatalf("unexpected property shape: %+v", prop)
	}
	if prop.Init == nil || prop.Init.Value != int64(5) {
		t.Fatalf("expected initializer 5, got %#v", prop.Init)
	}
	if !prop.HasFlag(PropertyAuto) {
		t.Fatalf("expected Auto flag")
	}
}

func TestParseAutoReadOnlyPropertyRequiresInitializer(t *testing.T) {
	err := mustFail(t, "ScriptName Foo\n\nInt Property Count AutoReadOnly\n", DefaultOptions(), "")
	if err.Kind != PropertyError {
		t.Fatalf("error kind = %s, want Property", err.Kind)
	}
}

func TestParseConditionalPropertyRequiresAutoAndInitializer(t *testing.T) {
	err := mustFail(t, "ScriptName Foo\n\nInt Property Count Conditional\n", DefaultOptions(), "")
	if err.Kind != PropertyError {
		t.Fatalf("error kind = %s, want Property", err.Kind)
	}
}

func TestParseConditionalScriptNamePropagatesToProperties(t *testing.T) {
	err := mustFail(t, "ScriptName Foo Conditional\n\nInt Property Count = 1 Auto\n", DefaultOptions(), "")
	if err.Kind != PropertyError {
		t.Fatalf("error kind = %s, want Property", err.Kind)
	}
}

func TestParseFullPropertyWithGetSet(t *testing.T) {
	src := `ScriptName Foo

Int Property Count Hidden
	Int Function Get()
		return 5
	EndFunction
	Function Set(Int value)
	EndFunction
EndProperty
`
	prog := mustParse(t, src)
	full, ok := prog.Body[1].(*PropertyFullDeclaration)
	if !ok {
		t.Fatalf("expected a PropertyFullDeclaration, got %T", prog.Body[1])
	}
	if full.Getter == nil {
		t.Fatalf("expected a getter")
	}
	if full.Getter.Kind != "Int" {
		t.Fatalf("getter return kind = %q, want Int", full.Getter.Kind)
	}
	if full.Setter == nil {
		t.Fatalf("expected a setter")
	}
	if len(full.Setter.Params) != 1 {
		t.Fatalf("setter params = %d, want 1", len(full.Setter.Params))
	}
}

func TestParseFullPropertyMissingEndPropertyIsAnError(t *testing.T) {
	src := "ScriptName Foo\n\nInt Property Count Hidden\nFunction Get()\nEndFunction\n"
	err := mustFail(t, src, DefaultOptions(), "")
	if err.Kind != PropertyError {
		t.Fatalf("error kind = %s, want Property", err.Kind)
	}
}

func TestParsePropertyWithNoFlagsIsAnError(t *testing.T) {
	err := mustFail(t, "ScriptName Foo\n\nInt Property Count\nEndProperty\n", DefaultOptions(), "")
	if err.Kind != PropertyError {
		t.Fatalf("error kind = %s, want Property", err.Kind)
	}
}

func TestParseFunctionWithParamsAndReturnType(t *testing.T) {
	src := "ScriptName Foo\n\nInt Function Add(Int a, Int b = 1)\n\treturn a + b\nEndFunction\n"
	prog := mustParse(t, src)
	fn, ok := prog.Body[1].(*FunctionStatement)
	if !ok {
		t.Fatalf("expected a FunctionStatement, got %T", prog.Body[1])
	}
	if fn.Kind != "Int" || fn.Id.Name != "Add" {
		t.Fatalf("unexpected function shape: %+v", fn)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("params = %d, want 2", len(fn.Params))
	}
	if fn.Params[1].Variable.Init == nil {
		t.Fatalf("expected a default value on the second parameter")
	}
	if fn.Body == nil || len(fn.Body.Body) != 1 {
		t.Fatalf("expected a single-statement body")
	}
}

func TestParseNativeFunctionHasNoBody(t *testing.T) {
	prog := mustParse(t, "ScriptName Foo\n\nFunction DoThing() Global Native\n")
	fn, ok := prog.Body[1].(*FunctionStatement)
	if !ok {
		t.Fatalf("expected a FunctionStatement, got %T", prog.Body[1])
	}
	if !fn.HasFlag(FunctionGlobal) || !fn.HasFlag(FunctionNative) {
		t.Fatalf("expected Global and Native flags, got %v", fn.Flags)
	}
	if fn.Body != nil {
		t.Fatalf("expected a nil body for a Native function")
	}
}

func TestParseDuplicateFunctionFlagIsAnError(t *testing.T) {
	err := mustFail(t, "ScriptName Foo\n\nFunction F() Global Global\nEndFunction\n", DefaultOptions(), "")
	if err.Kind != FunctionFlagError {
		t.Fatalf("error kind = %s, want FunctionFlag", err.Kind)
	}
}

func TestParseEventWithParams(t *testing.T) {
	src := "ScriptName Foo\n\nEvent OnInit(Int a)\nEndEvent\n"
	prog := mustParse(t, src)
	ev, ok := prog.Body[1].(*EventStatement)
	if !ok {
		t.Fatalf("expected an EventStatement, got %T", prog.Body[1])
	}
	if ev.Id.Name != "OnInit" || len(ev.Params) != 1 {
		t.Fatalf("unexpected event shape: %+v", ev)
	}
}

func TestParseIfElseIfElseChain(t *testing.T) {
	src := `ScriptName Foo

Function F()
	If a
	ElseIf b
	ElseIf c
	Else
	EndIf
EndFunction
`
	prog := mustParse(t, src)
	fn := prog.Body[1].(*FunctionStatement)
	ifStmt, ok := fn.Body.Body[0].(*IfStatement)
	if !ok {
		t.Fatalf("expected an IfStatement, got %T", fn.Body.Body[0])
	}
	elseIf1, ok := ifStmt.Alternate.(*IfStatement)
	if !ok {
		t.Fatalf("expected the first alternate to be an IfStatement (ElseIf), got %T", ifStmt.Alternate)
	}
	elseIf2, ok := elseIf1.Alternate.(*IfStatement)
	if !ok {
		t.Fatalf("expected the second alternate to be an IfStatement (ElseIf), got %T", elseIf1.Alternate)
	}
	elseBlock, ok := elseIf2.Alternate.(*BlockStatement)
	if !ok {
		t.Fatalf("expected the innermost alternate to be the Else block, got %T", elseIf2.Alternate)
	}
	if elseBlock == nil {
		t.Fatalf("expected a non-nil else block")
	}
}

func TestParseIfWithoutElse(t *testing.T) {
	src := "ScriptName Foo\n\nFunction F()\n\tIf a\n\tEndIf\nEndFunction\n"
	prog := mustParse(t, src)
	fn := prog.Body[1].(*FunctionStatement)
	ifStmt := fn.Body.Body[0].(*IfStatement)
	if ifStmt.Alternate != nil {
		t.Fatalf("expected a nil Alternate, got %#v", ifStmt.Alternate)
	}
}

func TestParseWhileLoop(t *testing.T) {
	src := "ScriptName Foo\n\nFunction F()\n\tWhile a\n\tEndWhile\nEndFunction\n"
	prog := mustParse(t, src)
	fn := prog.Body[1].(*FunctionStatement)
	if _, ok := fn.Body.Body[0].(*WhileStatement); !ok {
		t.Fatalf("expected a WhileStatement, got %T", fn.Body.Body[0])
	}
}

func TestParseStateWithFunctionsAndEvents(t *testing.T) {
	src := `ScriptName Foo

Auto State Idle
	Function F()
	EndFunction
	Event OnInit()
	EndEvent
EndState
`
	prog := mustParse(t, src)
	st, ok := prog.Body[1].(*StateStatement)
	if !ok {
		t.Fatalf("expected a StateStatement, got %T", prog.Body[1])
	}
	if !st.Auto {
		t.Fatalf("expected Auto to be true")
	}
	if len(st.Body.Body) != 2 {
		t.Fatalf("expected 2 state members, got %d", len(st.Body.Body))
	}
}

func TestParseStateRejectsNonFunctionMembers(t *testing.T) {
	src := "ScriptName Foo\n\nState Idle\n\tInt x = 1\nEndState\n"
	err := mustFail(t, src, DefaultOptions(), "")
	if err.Kind != StateStatementError {
		t.Fatalf("error kind = %s, want StateStatement", err.Kind)
	}
}

func TestParseImportStatement(t *testing.T) {
	prog := mustParse(t, "ScriptName Foo\n\nImport OtherScript\n")
	imp, ok := prog.Body[1].(*ImportStatement)
	if !ok {
		t.Fatalf("expected an ImportStatement, got %T", prog.Body[1])
	}
	if imp.Id.Name != "OtherScript" {
		t.Fatalf("Id.Name = %q, want OtherScript", imp.Id.Name)
	}
}

func TestParseVariableDeclarationWithArrayType(t *testing.T) {
	src := "ScriptName Foo\n\nFunction F()\n\tInt[] values\nEndFunction\n"
	prog := mustParse(t, src)
	fn := prog.Body[1].(*FunctionStatement)
	vd, ok := fn.Body.Body[0].(*VariableDeclaration)
	if !ok {
		t.Fatalf("expected a VariableDeclaration, got %T", fn.Body.Body[0])
	}
	if !vd.Variable.IsArray {
		t.Fatalf("expected IsArray to be true")
	}
	if vd.Variable.Kind != "Int[]" {
		t.Fatalf("Kind = %q, want Int[]", vd.Variable.Kind)
	}
}

func TestParseNewExpression(t *testing.T) {
	src := "ScriptName Foo\n\nFunction F()\n\tInt[] values = New Int[5]\nEndFunction\n"
	prog := mustParse(t, src)
	fn := prog.Body[1].(*FunctionStatement)
	vd := fn.Body.Body[0].(*VariableDeclaration)
	newExpr, ok := vd.Variable.Init.(*NewExpression)
	if !ok {
		t.Fatalf("expected a NewExpression, got %T", vd.Variable.Init)
	}
	if newExpr.Meta.Name != "Int" {
		t.Fatalf("Meta.Name = %q, want Int", newExpr.Meta.Name)
	}
}

func TestParseCastExpression(t *testing.T) {
	src := "ScriptName Foo\n\nFunction F()\n\tForm f = obj As Form\nEndFunction\n"
	prog := mustParse(t, src)
	fn := prog.Body[1].(*FunctionStatement)
	vd := fn.Body.Body[0].(*VariableDeclaration)
	cast, ok := vd.Variable.Init.(*CastExpression)
	if !ok {
		t.Fatalf("expected a CastExpression, got %T", vd.Variable.Init)
	}
	if cast.Kind.Name != "Form" {
		t.Fatalf("Kind.Name = %q, want Form", cast.Kind.Name)
	}
}

func TestParseMemberAndCallChain(t *testing.T) {
	src := "ScriptName Foo\n\nFunction F()\n\tself.Helper().Value = 1\nEndFunction\n"
	prog := mustParse(t, src)
	fn := prog.Body[1].(*FunctionStatement)
	exprStmt := fn.Body.Body[0].(*ExpressionStatement)
	assign, ok := exprStmt.Expression.(*AssignExpression)
	if !ok {
		t.Fatalf("expected an AssignExpression, got %T", exprStmt.Expression)
	}
	member, ok := assign.Left.(*MemberExpression)
	if !ok {
		t.Fatalf("expected a MemberExpression, got %T", assign.Left)
	}
	if _, ok := member.Object.(*CallExpression); !ok {
		t.Fatalf("expected the member's object to be a CallExpression, got %T", member.Object)
	}
}

func TestParseParentRequiresExtends(t *testing.T) {
	err := mustFail(t, "ScriptName Foo\n\nFunction F()\n\tParent.DoThing()\nEndFunction\n", DefaultOptions(), "")
	if err.Kind != ParentMemberError {
		t.Fatalf("error kind = %s, want ParentMember", err.Kind)
	}
}

func TestParseParentAllowedWhenExtending(t *testing.T) {
	src := "ScriptName Foo Extends Bar\n\nFunction F()\n\tParent.DoThing()\nEndFunction\n"
	mustParse(t, src)
}

func TestParseParentCannotBeCalledDirectly(t *testing.T) {
	src := "ScriptName Foo Extends Bar\n\nFunction F()\n\tParent()\nEndFunction\n"
	err := mustFail(t, src, DefaultOptions(), "")
	if err.Kind != ParentMemberError {
		t.Fatalf("error kind = %s, want ParentMember", err.Kind)
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	src := "ScriptName Foo\n\nFunction F()\n\tInt x = 1 + 2 * 3\nEndFunction\n"
	prog := mustParse(t, src)
	fn := prog.Body[1].(*FunctionStatement)
	vd := fn.Body.Body[0].(*VariableDeclaration)
	top, ok := vd.Variable.Init.(*BinaryExpression)
	if !ok {
		t.Fatalf("expected a BinaryExpression, got %T", vd.Variable.Init)
	}
	if top.Operator != "+" {
		t.Fatalf("top operator = %q, want +", top.Operator)
	}
	right, ok := top.Right.(*BinaryExpression)
	if !ok {
		t.Fatalf("expected the right side to be a BinaryExpression, got %T", top.Right)
	}
	if right.Operator != "*" {
		t.Fatalf("right operator = %q, want *", right.Operator)
	}
}

func TestParseLogicalExpressionHasLogicalNodeType(t *testing.T) {
	src := "ScriptName Foo\n\nFunction F()\n\tbool b = a && b\nEndFunction\n"
	prog := mustParse(t, src)
	fn := prog.Body[1].(*FunctionStatement)
	vd := fn.Body.Body[0].(*VariableDeclaration)
	bin, ok := vd.Variable.Init.(*BinaryExpression)
	if !ok {
		t.Fatalf("expected a BinaryExpression, got %T", vd.Variable.Init)
	}
	if bin.NodeType() != "LogicalExpression" {
		t.Fatalf("NodeType() = %q, want LogicalExpression", bin.NodeType())
	}
}

func TestParseIfOutsideFunctionIsAnErrorByDefault(t *testing.T) {
	err := mustFail(t, "ScriptName Foo\n\nIf a\nEndIf\n", DefaultOptions(), "")
	if err.Kind != UnexpectedToken {
		t.Fatalf("error kind = %s, want UnexpectedToken", err.Kind)
	}
}

func TestParseOptionsCanDisableOutsideChecks(t *testing.T) {
	opts := Options{ThrowScriptnameMissing: true}
	if _, err := Parse("ScriptName Foo\n\nIf a\nEndIf\n", opts, ""); err != nil {
		t.Fatalf("unexpected error with outside-checks disabled: %v", err)
	}
}

func TestParseUnterminatedBlockReportsExpectedTerminators(t *testing.T) {
	err := mustFail(t, "ScriptName Foo\n\nFunction F()\n\tIf a\n", DefaultOptions(), "")
	if err.Kind != BlockStatementError {
		t.Fatalf("error kind = %s, want BlockStatement", err.Kind)
	}
	if !strings.Contains(err.Message, "ElseIf") {
		t.Fatalf("expected the error to list ElseIf among the expected terminators, got %q", err.Message)
	}
}
