package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"vblex/internal/doc"
	"vblex/internal/vb"
)

// FoldDump writes one row per line: line number, depth at start and end, a
// header marker, an indent guide and the (truncated) line text.
func FoldDump(w io.Writer, d *doc.Document) error {
	const textWidth = 60
	for line := 0; line < d.LineCount(); line++ {
		lev := d.Level(line)
		start := lev.Level() - vb.FoldLevelBase
		end := lev.Next() - vb.FoldLevelBase
		marker := " "
		if lev.IsHeader() {
			marker = "+"
		}

		text := lineText(d, line)
		text = runewidth.Truncate(text, textWidth, "…")
		guide := strings.Repeat("| ", max(start, 0))
		if _, err := fmt.Fprintf(w, "%4d %2d→%-2d %s %s%s\n",
			line+1, start, end, marker, guide, text); err != nil {
			return err
		}
	}
	return nil
}

func lineText(d *doc.Document, line int) string {
	start := d.LineStart(line)
	end := d.LineStart(line + 1)
	return strings.TrimRight(string(d.Content[start:end]), "\r\n")
}
