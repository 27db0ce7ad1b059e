package main

import (
	"io"
	"os"
	"strings"
	"testing"
)

func TestRunEmitASTPrintsTextTree(t *testing.T) {
	src := "ScriptName MyQuest\n\nInt Function Add(Int a, Int b)\n\treturn a + b\nEndFunction\n"
	code, out, errOut := captureOutput(t, func() int {
		return runEmitAST(src, "MyQuest.psc")
	})

	if code != 0 {
		t.Fatalf("runEmitAST exit=%d\nstderr:\n%s\nstdout:\n%s", code, errOut, out)
	}
	if errOut != "" {
		t.Fatalf("unexpected stderr:\n%s", errOut)
	}
	if !strings.Contains(out, "ScriptNameStatement MyQuest") {
		t.Fatalf("AST text missing ScriptNameStatement:\n%s", out)
	}
	if !strings.Contains(out, "FunctionStatement Add -> Int") {
		t.Fatalf("AST text missing FunctionStatement:\n%s", out)
	}
}

func TestRunEmitASTReportsParseError(t *testing.T) {
	src := "Int Function F(\n"
	code, _, errOut := captureOutput(t, func() int {
		return runEmitAST(src, "F.psc")
	})

	if code == 0 {
		t.Fatalf("expected non-zero exit for malformed input")
	}
	if !strings.Contains(errOut, "UnexpectedToken") && !strings.Contains(errOut, "BlockStatement") {
		t.Fatalf("expected a structured parse error on stderr, got:\n%s", errOut)
	}
}

func TestRunEmitTokensListsTokenStream(t *testing.T) {
	code, out, errOut := captureOutput(t, func() int {
		return runEmitTokens("ScriptName Foo\n")
	})

	if code != 0 {
		t.Fatalf("runEmitTokens exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.Contains(out, "ScriptName") {
		t.Fatalf("token stream missing ScriptName keyword:\n%s", out)
	}
	if !strings.Contains(out, "Name") {
		t.Fatalf("token stream missing Foo identifier:\n%s", out)
	}
	if !strings.Contains(out, "Eof") {
		t.Fatalf("token stream missing trailing Eof:\n%s", out)
	}
}

func captureOutput(t *testing.T, fn func() int) (code int, stdout string, stderr string) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stdout: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stderr: %v", err)
	}

	os.Stdout = wOut
	os.Stderr = wErr

	code = fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	outBytes, _ := io.ReadAll(rOut)
	errBytes, _ := io.ReadAll(rErr)
	_ = rOut.Close()
	_ = rErr.Close()

	return code, string(outBytes), string(errBytes)
}
