package lexer_test

import (
	"strings"
	"testing"

	"vblex/internal/doc"
	"vblex/internal/lexer"
	"vblex/internal/vb"
)

// scanSource scans src from scratch under the given dialect.
func scanSource(t *testing.T, src string, dialect vb.Dialect) *doc.Document {
	t.Helper()
	d := doc.New("test.vb", []byte(src))
	lexer.ScanDocument(d, lexer.Options{Dialect: dialect})
	return d
}

// expectStyle checks the style of a single position.
func expectStyle(t *testing.T, d *doc.Document, pos int, want vb.Style) {
	t.Helper()
	if got := d.StyleAt(pos); got != want {
		t.Errorf("style at %d (%q): got %v, want %v", pos, d.CharAt(pos), got, want)
	}
}

// expectStyleRange checks that [start, end) share one style.
func expectStyleRange(t *testing.T, d *doc.Document, start, end int, want vb.Style) {
	t.Helper()
	for pos := start; pos < end; pos++ {
		expectStyle(t, d, pos, want)
	}
}

func TestHexNumber(t *testing.T) {
	d := scanSource(t, "&H1F", vb.DialectDotNet)
	expectStyleRange(t, d, 0, 4, vb.StyleNumber)
}

func TestAmpersandConcat(t *testing.T) {
	// After an identifier, & is concatenation even before a radix letter.
	d := scanSource(t, `x & "y"`, vb.DialectDotNet)
	expectStyle(t, d, 0, vb.StyleIdentifier)
	expectStyle(t, d, 2, vb.StyleOperator)
	expectStyleRange(t, d, 4, 7, vb.StyleString)

	d = scanSource(t, "x &H1", vb.DialectDotNet)
	expectStyle(t, d, 2, vb.StyleOperator)

	d = scanSource(t, "y = &H1", vb.DialectDotNet)
	expectStyleRange(t, d, 4, 7, vb.StyleNumber)
}

func TestKeywordAndTypeStyles(t *testing.T) {
	src := "Dim x As Integer\n"
	d := scanSource(t, src, vb.DialectDotNet)
	expectStyleRange(t, d, 0, 3, vb.StyleKeyword)   // Dim
	expectStyle(t, d, 4, vb.StyleIdentifier)        // x
	expectStyleRange(t, d, 6, 8, vb.StyleKeyword)   // As
	expectStyleRange(t, d, 9, 16, vb.StyleTypeKeyword)

	if got := d.LineState(0).FoldType(); got != vb.LineTypeDim {
		t.Errorf("Dim line type: got %d, want %d", got, vb.LineTypeDim)
	}
}

func TestConstLineState(t *testing.T) {
	d := scanSource(t, "Const N = 1\n", vb.DialectDotNet)
	if got := d.LineState(0).FoldType(); got != vb.LineTypeConst {
		t.Errorf("Const line type: got %d, want %d", got, vb.LineTypeConst)
	}
}

func TestVB6TypeLineState(t *testing.T) {
	d := scanSource(t, "Private Type Rec\n", vb.DialectVBA)
	if !d.LineState(0).IsVB6Type() {
		t.Error("Private Type line should carry the VB6 type tag")
	}
	// TypeOf-style member access must not tag the line.
	d = scanSource(t, "y = x.Type\n", vb.DialectVBA)
	if d.LineState(0).IsVB6Type() {
		t.Error("member access .Type must not tag the line")
	}
}

func TestRemComment(t *testing.T) {
	src := "Rem whole line\n"
	d := scanSource(t, src, vb.DialectVBA)
	expectStyleRange(t, d, 0, len(src)-1, vb.StyleComment)
	// Only apostrophe comments classify the line; Rem never has.
	if got := d.LineState(0).FoldType(); got != vb.LineTypeNone {
		t.Errorf("rem line type: got %d, want none", got)
	}
}

func TestQuoteComment(t *testing.T) {
	src := "x = 1 ' tail\n"
	d := scanSource(t, src, vb.DialectDotNet)
	expectStyleRange(t, d, 6, len(src)-1, vb.StyleComment)
	// Code precedes the comment, so the line is not comment-classified.
	if got := d.LineState(0).FoldType(); got != vb.LineTypeNone {
		t.Errorf("mixed line type: got %d, want none", got)
	}
}

func TestStringEscapesAndSuffix(t *testing.T) {
	src := `s = "a""b"c`
	d := scanSource(t, src, vb.DialectDotNet)
	// The doubled quote stays inside, the c suffix is consumed.
	expectStyleRange(t, d, 4, 11, vb.StyleString)
}

func TestMultilineStringByDialect(t *testing.T) {
	src := "s = \"abc\nx = 1\n"
	d := scanSource(t, src, vb.DialectDotNet)
	expectStyle(t, d, 9, vb.StyleString) // still open on the next line

	d = scanSource(t, src, vb.DialectVBA)
	expectStyle(t, d, 9, vb.StyleIdentifier) // force-closed at line start
}

func TestInterpolatedNestedParens(t *testing.T) {
	src := `$"Value: {a + (b)}"`
	d := scanSource(t, src, vb.DialectDotNet)
	expectStyleRange(t, d, 0, 9, vb.StyleInterpolated)
	expectStyle(t, d, 9, vb.StyleNestedOperator)  // {
	expectStyle(t, d, 10, vb.StyleIdentifier)     // a
	expectStyle(t, d, 12, vb.StyleNestedOperator) // +
	expectStyle(t, d, 14, vb.StyleNestedOperator) // (
	expectStyle(t, d, 15, vb.StyleIdentifier)     // b
	expectStyle(t, d, 16, vb.StyleNestedOperator) // )
	expectStyle(t, d, 17, vb.StyleNestedOperator) // } closes the expression
	expectStyle(t, d, 18, vb.StyleInterpolated)   // closing quote

	// Balanced again after the expression closes.
	if got := d.LineState(0).ParenCount(); got != 0 {
		t.Errorf("paren count after interpolation: got %d, want 0", got)
	}
	if d.LineState(0).HasInterpolation() {
		t.Error("interpolation flag must clear once the expression closes")
	}
}

func TestInterpolatedFormatClause(t *testing.T) {
	src := `$"{x:N2}"`
	d := scanSource(t, src, vb.DialectDotNet)
	expectStyle(t, d, 2, vb.StyleNestedOperator)          // {
	expectStyle(t, d, 3, vb.StyleIdentifier)              // x
	expectStyleRange(t, d, 4, 7, vb.StyleFormatSpecifier) // :N2
	expectStyle(t, d, 7, vb.StyleNestedOperator)          // }
	expectStyle(t, d, 8, vb.StyleInterpolated)
}

func TestInterpolatedBraceEscape(t *testing.T) {
	src := `$"a{{b}}c"`
	d := scanSource(t, src, vb.DialectDotNet)
	expectStyleRange(t, d, 0, len(src), vb.StyleInterpolated)
}

func TestInterpolationOnlyForDotNet(t *testing.T) {
	src := `$"{x}"`
	d := scanSource(t, src, vb.DialectVBA)
	expectStyle(t, d, 0, vb.StyleOperator) // $ is just punctuation
	expectStyle(t, d, 1, vb.StyleString)
}

func TestScriptHasNoTypeCharacters(t *testing.T) {
	src := "a$ = 1"
	d := scanSource(t, src, vb.DialectScript)
	expectStyle(t, d, 0, vb.StyleIdentifier)
	expectStyle(t, d, 1, vb.StyleOperator)

	d = scanSource(t, src, vb.DialectVBA)
	expectStyleRange(t, d, 0, 2, vb.StyleIdentifier) // suffix consumed
}

func TestFileNumberForms(t *testing.T) {
	d := scanSource(t, "Close #1\n", vb.DialectVBA)
	expectStyleRange(t, d, 6, 8, vb.StyleNumber)

	d = scanSource(t, "d = #10/1/2003#\n", vb.DialectVBA)
	expectStyleRange(t, d, 4, 15, vb.StyleDate)

	// More than three digits cannot be a file handle.
	d = scanSource(t, "d = #1234\n", vb.DialectVBA)
	expectStyle(t, d, 8, vb.StyleDate)
}

func TestLabels(t *testing.T) {
	d := scanSource(t, "again:\nGoTo again\n", vb.DialectVBA)
	expectStyleRange(t, d, 0, 5, vb.StyleLabel)

	d = scanSource(t, "[end]:\n", vb.DialectDotNet)
	expectStyleRange(t, d, 0, 5, vb.StyleLabel)
}

func TestBracketedIdentifier(t *testing.T) {
	d := scanSource(t, "x = [end]\n", vb.DialectDotNet)
	expectStyleRange(t, d, 4, 9, vb.StyleIdentifier)
}

func TestIfOperatorDemotion(t *testing.T) {
	d := scanSource(t, "y = If(a, b, c)\n", vb.DialectDotNet)
	expectStyleRange(t, d, 4, 6, vb.StyleLibrary)

	// Statement position keeps the keyword style.
	d = scanSource(t, "If a Then\n", vb.DialectDotNet)
	expectStyleRange(t, d, 0, 2, vb.StyleKeyword)
}

func TestMemberAccessDemotion(t *testing.T) {
	d := scanSource(t, "x.Stop\n", vb.DialectDotNet)
	expectStyleRange(t, d, 2, 6, vb.StyleLibrary)
}

func TestArgumentPositionDemotion(t *testing.T) {
	d := scanSource(t, "f(Stop)\n", vb.DialectDotNet)
	expectStyleRange(t, d, 2, 6, vb.StyleLibrary)
}

func TestFunctionDefinitionName(t *testing.T) {
	d := scanSource(t, "Sub Greet()\n", vb.DialectDotNet)
	expectStyleRange(t, d, 4, 9, vb.StyleFunctionDef)

	// End Sub names nothing.
	d = scanSource(t, "End Sub\n", vb.DialectDotNet)
	expectStyleRange(t, d, 4, 7, vb.StyleKeyword)
}

func TestPreprocessor(t *testing.T) {
	src := "#If DEBUG Then\n#End If\n"
	d := scanSource(t, src, vb.DialectDotNet)
	expectStyleRange(t, d, 0, 3, vb.StylePreprocessor)   // #If
	expectStyle(t, d, 4, vb.StyleIdentifier)             // DEBUG
	expectStyleRange(t, d, 10, 14, vb.StylePreprocessor) // Then
	expectStyleRange(t, d, 15, 19, vb.StylePreprocessor) // #End
	expectStyleRange(t, d, 20, 22, vb.StylePreprocessor) // If

	// VBScript has no preprocessor; the words scan as identifiers.
	d = scanSource(t, src, vb.DialectScript)
	expectStyleRange(t, d, 0, 3, vb.StyleIdentifier)
}

func TestVBACommentContinuation(t *testing.T) {
	src := "' first _\nstill comment\nx = 1\n"
	d := scanSource(t, src, vb.DialectVBA)
	if !d.LineState(0).HasContinuation() {
		t.Error("continued comment line must persist the continuation flag")
	}
	expectStyle(t, d, 8, vb.StyleLineContinuation)
	expectStyleRange(t, d, 10, 23, vb.StyleComment)
	if got := d.LineState(1).FoldType(); got != vb.LineTypeComment {
		t.Errorf("continued line type: got %d, want comment", got)
	}
	expectStyle(t, d, 24, vb.StyleIdentifier)

	// VB.NET comments do not continue.
	d = scanSource(t, src, vb.DialectDotNet)
	expectStyle(t, d, 10, vb.StyleIdentifier)
}

func TestLineContinuationMarker(t *testing.T) {
	src := "x = 1 + _\n    2\n"
	d := scanSource(t, src, vb.DialectDotNet)
	expectStyle(t, d, 8, vb.StyleLineContinuation)
	expectStyle(t, d, 14, vb.StyleNumber)
}

func TestParenCountPersists(t *testing.T) {
	src := "f(a,\nb)\n"
	d := scanSource(t, src, vb.DialectDotNet)
	if got := d.LineState(0).ParenCount(); got != 1 {
		t.Errorf("open paren count on line 0: got %d, want 1", got)
	}
	if got := d.LineState(1).ParenCount(); got != 0 {
		t.Errorf("paren count on line 1: got %d, want 0", got)
	}
	// The keyword inside the open parens demotes to a library call.
	src = "f(a,\nStop)\n"
	d = scanSource(t, src, vb.DialectDotNet)
	expectStyleRange(t, d, 5, 9, vb.StyleLibrary)
}

func TestTypeSuffixedIdentifierIsNotKeyword(t *testing.T) {
	// dim$ carries a type character, so it cannot be the Dim keyword.
	d := scanSource(t, "dim$ = 1\n", vb.DialectVBA)
	expectStyleRange(t, d, 0, 4, vb.StyleIdentifier)
	if got := d.LineState(0).FoldType(); got != vb.LineTypeNone {
		t.Errorf("dim$ must not mark a Dim line, got %d", got)
	}
}

func TestRemWithTypeSuffix(t *testing.T) {
	// rem$ still opens a comment; the truncated word is compared.
	src := "rem$ note\n"
	d := scanSource(t, src, vb.DialectVBA)
	expectStyleRange(t, d, 0, len(src)-1, vb.StyleComment)
}

func TestConstantsAndAttributes(t *testing.T) {
	d := scanSource(t, "x = vbCrLf\n", vb.DialectVBA)
	expectStyleRange(t, d, 4, 10, vb.StyleConstant)

	d = scanSource(t, "Attribute VB_Name = \"Module1\"\n", vb.DialectVBA)
	expectStyleRange(t, d, 10, 17, vb.StyleAttribute)
}

const splitSample = "Module Sample\n" +
	"    Sub Greet(name As String)\n" +
	"        Dim msg = $\"Hello {name & (suffix)} done\"\n" +
	"        Dim n = &HFF\n" +
	"        If n > 0 Then\n" +
	"            Print msg\n" +
	"        End If\n" +
	"    End Sub\n" +
	"End Module\n"

// TestSplitScanIdempotence re-scans the sample split at every line boundary
// and requires styles and line states identical to the one-pass scan.
func TestSplitScanIdempotence(t *testing.T) {
	opts := lexer.Options{Dialect: vb.DialectDotNet}

	full := doc.New("full.vb", []byte(splitSample))
	lexer.ScanDocument(full, opts)

	for line := 1; line < full.LineCount(); line++ {
		split := doc.New("split.vb", []byte(splitSample))
		at := split.LineStart(line)
		lexer.Scan(split, 0, at, vb.StyleDefault, opts)
		initStyle := split.StyleAt(at - 1)
		lexer.Scan(split, at, split.Length()-at, initStyle, opts)

		for pos := 0; pos < full.Length(); pos++ {
			if full.StyleAt(pos) != split.StyleAt(pos) {
				t.Fatalf("split at line %d: style mismatch at %d (%q): %v vs %v",
					line, pos, full.CharAt(pos), full.StyleAt(pos), split.StyleAt(pos))
			}
		}
		for ln := 0; ln < full.LineCount(); ln++ {
			if full.LineState(ln) != split.LineState(ln) {
				t.Fatalf("split at line %d: line state mismatch on line %d: %#x vs %#x",
					line, ln, full.LineState(ln), split.LineState(ln))
			}
		}
	}
}

// TestRescanRoundTrip re-scans an already styled document from offset 0 and
// requires byte-identical annotations.
func TestRescanRoundTrip(t *testing.T) {
	opts := lexer.Options{Dialect: vb.DialectDotNet}
	d := doc.New("round.vb", []byte(splitSample))
	lexer.ScanDocument(d, opts)

	before := make([]vb.Style, d.Length())
	copy(before, d.Styles())
	states := make([]vb.LineState, d.LineCount())
	copy(states, d.LineStates())

	lexer.ScanDocument(d, opts)
	for pos, want := range before {
		if d.StyleAt(pos) != want {
			t.Fatalf("style changed at %d after rescan", pos)
		}
	}
	for ln, want := range states {
		if d.LineState(ln) != want {
			t.Fatalf("line state changed on line %d after rescan", ln)
		}
	}
}

func TestInterpolationSpansLines(t *testing.T) {
	src := "s = $\"total {a + (\nb)} end\"\nx = 1\n"
	opts := lexer.Options{Dialect: vb.DialectDotNet}
	d := doc.New("span.vb", []byte(src))
	lexer.ScanDocument(d, opts)

	if !d.LineState(0).HasInterpolation() {
		t.Fatal("line 0 must carry the interpolation flag")
	}
	closeBrace := strings.Index(src, "}")
	expectStyle(t, d, closeBrace, vb.StyleNestedOperator)
	expectStyle(t, d, closeBrace+1, vb.StyleInterpolated)

	// Resuming on the second line must recover the open expression.
	split := doc.New("span.vb", []byte(src))
	lexer.Scan(split, 0, split.LineStart(1), vb.StyleDefault, opts)
	lexer.Scan(split, split.LineStart(1), split.Length()-split.LineStart(1),
		split.StyleAt(split.LineStart(1)-1), opts)
	for pos := 0; pos < d.Length(); pos++ {
		if d.StyleAt(pos) != split.StyleAt(pos) {
			t.Fatalf("style mismatch at %d (%q): %v vs %v",
				pos, d.CharAt(pos), d.StyleAt(pos), split.StyleAt(pos))
		}
	}
}
