package papyrus

import "testing"

func TestWalkVisitsEveryNode(t *testing.T) {
	src := "ScriptName Foo\n\nInt Function Add(Int a, Int b)\n\treturn a + b\nEndFunction\n"
	prog := mustParse(t, src)

	var types []string
	Walk(prog, func(n Node) bool {
		types = append(types, n.NodeType())
		return true
	})

	want := []string{"Program", "ScriptNameStatement", "Identifier", "FunctionStatement"}
	for _, w := range want {
		found := false
		for _, got := range types {
			if got == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Walk did not visit a %s node; visited %v", w, types)
		}
	}
}

func TestWalkStopsDescendingWhenVisitorReturnsFalse(t *testing.T) {
	src := "ScriptName Foo\n\nFunction F()\n\tInt x = 1\nEndFunction\n"
	prog := mustParse(t, src)

	var sawBody bool
	Walk(prog, func(n Node) bool {
		if _, ok := n.(*FunctionStatement); ok {
			return false // skip descending into the function body
		}
		if _, ok := n.(*VariableDeclaration); ok {
			sawBody = true
		}
		return true
	})

	if sawBody {
		t.Fatalf("expected Walk to skip the function body once the visitor returned false")
	}
}

func TestInspectIsAnAliasForWalk(t *testing.T) {
	src := "ScriptName Foo\n"
	prog := mustParse(t, src)

	count := 0
	Inspect(prog, func(Node) bool {
		count++
		return true
	})

	if count == 0 {
		t.Fatalf("expected Inspect to visit at least the Program and ScriptNameStatement nodes")
	}
}
