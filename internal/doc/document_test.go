package doc_test

import (
	"testing"

	"vblex/internal/doc"
	"vblex/internal/vb"
)

func TestLineIndexMixedTerminators(t *testing.T) {
	// CRLF, lone CR and lone LF all terminate lines in place.
	d := doc.New("mixed.vb", []byte("a\r\nb\rc\nd"))

	if got := d.LineCount(); got != 4 {
		t.Fatalf("line count: got %d, want 4", got)
	}
	wantStarts := []int{0, 3, 5, 7}
	for line, want := range wantStarts {
		if got := d.LineStart(line); got != want {
			t.Errorf("LineStart(%d): got %d, want %d", line, got, want)
		}
	}
	// Past-the-end lines map to the buffer length.
	if got := d.LineStart(4); got != d.Length() {
		t.Errorf("LineStart past end: got %d, want %d", got, d.Length())
	}
}

func TestLineOf(t *testing.T) {
	d := doc.New("mixed.vb", []byte("a\r\nb\rc\nd"))
	cases := []struct{ pos, line int }{
		{0, 0}, {2, 0}, {3, 1}, {4, 1}, {5, 2}, {7, 3}, {-1, 0},
	}
	for _, c := range cases {
		if got := d.LineOf(c.pos); got != c.line {
			t.Errorf("LineOf(%d): got %d, want %d", c.pos, got, c.line)
		}
	}
}

func TestBOMStripped(t *testing.T) {
	d := doc.New("bom.vb", []byte("\xEF\xBB\xBFx"))
	if d.Length() != 1 || d.CharAt(0) != 'x' {
		t.Errorf("BOM not stripped: length %d, first %q", d.Length(), d.CharAt(0))
	}
}

func TestCharAtOutOfRange(t *testing.T) {
	d := doc.New("t.vb", []byte("ab"))
	if got := d.CharAt(-1); got != ' ' {
		t.Errorf("CharAt(-1): got %q, want space", got)
	}
	if got := d.CharAt(2); got != ' ' {
		t.Errorf("CharAt(2): got %q, want space", got)
	}
}

func TestMatchLowercase(t *testing.T) {
	d := doc.New("t.vb", []byte("End If"))
	if !d.MatchLowercase(0, "end") {
		t.Error("case-insensitive prefix should match")
	}
	if d.MatchLowercase(0, "endif") {
		t.Error("match must not skip the space")
	}
	if !d.MatchLowercase(4, "if") {
		t.Error("offset match should succeed")
	}
	// Probing past the end sees virtual spaces, never panics.
	if d.MatchLowercase(5, "iffy") {
		t.Error("match past the end should fail")
	}
}

func TestSkipSpaceTab(t *testing.T) {
	d := doc.New("t.vb", []byte(" \t x"))
	if got := d.SkipSpaceTab(0, d.Length()); got != 3 {
		t.Errorf("SkipSpaceTab: got %d, want 3", got)
	}
	if got := d.SkipSpaceTab(0, 2); got != 2 {
		t.Errorf("SkipSpaceTab bounded: got %d, want 2", got)
	}
}

func TestRestoreShapeMismatch(t *testing.T) {
	d := doc.New("t.vb", []byte("ab\ncd"))
	err := d.Restore(make([]vb.Style, 1), make([]vb.LineState, 2), make([]vb.FoldLevel, 2))
	if err == nil {
		t.Fatal("restore with wrong style length must fail")
	}
}
