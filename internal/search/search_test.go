package search

import "testing"

func TestFindNext(t *testing.T) {
	text := "the cat sat on the mat"

	m, ok := FindNext(text, "the", 0)
	if !ok || m.Start != 0 || m.End != 3 {
		t.Errorf("FindNext = %+v,%v, want (0,3),true", m, ok)
	}

	// From past the first occurrence
	m, ok = FindNext(text, "the", 1)
	if !ok || m.Start != 15 {
		t.Errorf("FindNext from 1 = %+v,%v, want start 15", m, ok)
	}
}

func TestFindNext_WrapsAround(t *testing.T) {
	text := "alpha beta gamma"

	m, ok := FindNext(text, "alpha", 6)
	if !ok || m.Start != 0 {
		t.Errorf("FindNext should wrap to start, got %+v,%v", m, ok)
	}
}

func TestFindNext_CaseInsensitive(t *testing.T) {
	m, ok := FindNext("Hello World", "hello", 0)
	if !ok || m.Start != 0 || m.End != 5 {
		t.Errorf("FindNext = %+v,%v, want case-insensitive hit at 0..5", m, ok)
	}
}

func TestFindNext_LiteralMetacharacters(t *testing.T) {
	text := "a.b a*b a.c"

	m, ok := FindNext(text, "a.b", 0)
	if !ok || m.Start != 0 || m.End != 3 {
		t.Errorf("query 'a.b' should match only the literal text, got %+v,%v", m, ok)
	}
	if _, ok := FindNext(text, "a+b", 0); ok {
		t.Error("query 'a+b' has no literal occurrence and should miss")
	}
}

func TestFindNext_Misses(t *testing.T) {
	if _, ok := FindNext("abc", "zzz", 0); ok {
		t.Error("absent query should miss")
	}
	if _, ok := FindNext("abc", "", 0); ok {
		t.Error("empty query should miss")
	}
}

func TestReplace(t *testing.T) {
	out, m, ok := Replace("one two one", "one", "1", 1)
	if !ok {
		t.Fatal("Replace should find the second occurrence")
	}
	if out != "one two 1" {
		t.Errorf("Replace = %q, want 'one two 1'", out)
	}
	if m.Start != 8 {
		t.Errorf("match start = %d, want 8", m.Start)
	}

	// Wraps like FindNext
	out, _, ok = Replace("one two", "one", "1", 5)
	if !ok || out != "1 two" {
		t.Errorf("Replace with wrap = %q,%v, want '1 two',true", out, ok)
	}

	out, _, ok = Replace("abc", "zzz", "x", 0)
	if ok || out != "abc" {
		t.Errorf("missed Replace must leave text unchanged, got %q,%v", out, ok)
	}
}

func TestReplaceAll(t *testing.T) {
	out, n := ReplaceAll("The cat and THE dog and the bird", "the", "a")
	if n != 3 {
		t.Errorf("ReplaceAll count = %d, want 3 (case-insensitive)", n)
	}
	if out != "a cat and a dog and a bird" {
		t.Errorf("ReplaceAll = %q", out)
	}

	out, n = ReplaceAll("abc", "zzz", "x")
	if n != 0 || out != "abc" {
		t.Errorf("ReplaceAll miss = %q,%d, want unchanged,0", out, n)
	}

	// Replacement containing metacharacters is inserted literally
	out, n = ReplaceAll("aa", "a", "$1")
	if n != 2 || out != "$1$1" {
		t.Errorf("ReplaceAll literal replacement = %q,%d", out, n)
	}
}

func TestCount(t *testing.T) {
	if n := Count("aAaA", "a"); n != 4 {
		t.Errorf("Count = %d, want 4", n)
	}
	if n := Count("abc", ""); n != 0 {
		t.Errorf("Count with empty query = %d, want 0", n)
	}
}

func TestLineColumn(t *testing.T) {
	text := "first\nsecond\nthird"

	tests := []struct {
		offset int
		line   int
		col    int
	}{
		{0, 1, 1},
		{5, 1, 6},
		{6, 2, 1},
		{12, 2, 7},
		{13, 3, 1},
		{18, 3, 6},
		{99, 3, 6}, // clamped past the end
		{-1, 1, 1}, // clamped before the start
	}

	for _, tt := range tests {
		line, col := LineColumn(text, tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("LineColumn(%d) = (%d,%d), want (%d,%d)", tt.offset, line, col, tt.line, tt.col)
		}
	}
}

func TestLineColumnGraphemes(t *testing.T) {
	// e plus a combining accent is three bytes but a single column
	text := "he\u0301llo"
	line, col := LineColumn(text, len(text))
	if line != 1 || col != 6 {
		t.Errorf("LineColumn = (%d,%d), want (1,6)", line, col)
	}
}
