package papyrus

import "testing"

func TestSourceCodeUnit(t *testing.T) {
	s := newSource("ab")
	if s.codeUnit(0) != 'a' {
		t.Fatalf("codeUnit(0) = %d, want 'a'", s.codeUnit(0))
	}
	if s.codeUnit(1) != 'b' {
		t.Fatalf("codeUnit(1) = %d, want 'b'", s.codeUnit(1))
	}
	if s.codeUnit(-1) != -1 {
		t.Fatalf("codeUnit(-1) = %d, want -1", s.codeUnit(-1))
	}
	if s.codeUnit(2) != -1 {
		t.Fatalf("codeUnit(len) = %d, want -1", s.codeUnit(2))
	}
}

func TestSourceFullCodeUnitNonSurrogatePassesThrough(t *testing.T) {
	s := newSource("x")
	if got := s.fullCodeUnit(0); got != 'x' {
		t.Fatalf("fullCodeUnit = %d, want 'x'", got)
	}
}

func TestSourceHasNewlineBetween(t *testing.T) {
	s := newSource("abc\ndef")
	if !s.hasNewlineBetween(0, 7) {
		t.Fatalf("expected a newline in range")
	}
	if s.hasNewlineBetween(0, 3) {
		t.Fatalf("expected no newline before the break")
	}
	if !s.hasNewlineBetween(3, 4) {
		t.Fatalf("expected the newline itself to count")
	}
}

func TestSkipSpaceLineComment(t *testing.T) {
	s := newSource("  ; comment\nnext")
	pos, _ := s.skipSpace(0, func(int, string) { t.Fatalf("unexpected report") })
	if s.content[pos:] != "next" {
		t.Fatalf("skipSpace stopped at %q, want \"next\"", s.content[pos:])
	}
}

func TestSkipSpaceBlockComment(t *testing.T) {
	s := newSource(";/ block \n comment /;rest")
	pos, _ := s.skipSpace(0, func(int, string) { t.Fatalf("unexpected report") })
	if s.content[pos:] != "rest" {
		t.Fatalf("skipSpace stopped at %q, want \"rest\"", s.content[pos:])
	}
}

func TestSkipSpaceUnterminatedBlockComment(t *testing.T) {
	s := newSource(";/ never closes")
	var msg string
	pos, _ := s.skipSpace(0, func(start int, m string) { msg = m })
	if msg == "" {
		t.Fatalf("expected a report for an unterminated block comment")
	}
	if pos != 0 {
		t.Fatalf("skipSpace should stop at the comment's start, got %d", pos)
	}
}

func TestSkipSpaceDocComment(t *testing.T) {
	s := newSource("{ a doc comment }rest")
	pos, _ := s.skipSpace(0, func(int, string) { t.Fatalf("unexpected report") })
	if s.content[pos:] != "rest" {
		t.Fatalf("skipSpace stopped at %q, want \"rest\"", s.content[pos:])
	}
}

func TestSkipSpaceUnterminatedDocComment(t *testing.T) {
	s := newSource("{ never closes")
	var msg string
	s.skipSpace(0, func(start int, m string) { msg = m })
	if msg == "" {
		t.Fatalf("expected a report for an unterminated doc comment")
	}
}

func TestSkipSpaceSingleLineContinuation(t *testing.T) {
	s := newSource("\\\nrest")
	pos, n := s.skipSpace(0, func(int, string) { t.Fatalf("unexpected report") })
	if n != 1 {
		t.Fatalf("backslash count = %d, want 1", n)
	}
	if s.content[pos:] != "rest" {
		t.Fatalf("skipSpace stopped at %q, want \"rest\"", s.content[pos:])
	}
}

func TestSkipSpaceDoubleContinuationReports(t *testing.T) {
	s := newSource("\\\n\\\nrest")
	var msg string
	s.skipSpace(0, func(start int, m string) { msg = m })
	if msg == "" {
		t.Fatalf("expected a report for a second line continuation")
	}
}

func TestIsIdentStartAndPart(t *testing.T) {
	cases := []struct {
		c     int
		start bool
		part  bool
	}{
		{'a', true, true},
		{'Z', true, true},
		{'_', true, true},
		{'$', true, true},
		{'3', false, true},
		{' ', false, false},
	}
	for _, c := range cases {
		if got := isIdentStart(c.c); got != c.start {
			t.Errorf("isIdentStart(%q) = %v, want %v", rune(c.c), got, c.start)
		}
		if got := isIdentPart(c.c); got != c.part {
			t.Errorf("isIdentPart(%q) = %v, want %v", rune(c.c), got, c.part)
		}
	}
}
