// Package render formats scanned documents for terminals and tooling.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"vblex/internal/doc"
	"vblex/internal/vb"
)

var styleColors = map[vb.Style]*color.Color{
	vb.StyleComment:          color.New(color.FgGreen),
	vb.StyleLineContinuation: color.New(color.FgHiBlack),
	vb.StyleNumber:           color.New(color.FgRed),
	vb.StyleString:           color.New(color.FgYellow),
	vb.StyleInterpolated:     color.New(color.FgYellow),
	vb.StyleFormatSpecifier:  color.New(color.FgHiYellow),
	vb.StyleDate:             color.New(color.FgHiYellow),
	vb.StyleFileNumber:       color.New(color.FgRed),
	vb.StyleKeyword:          color.New(color.FgBlue, color.Bold),
	vb.StyleTypeKeyword:      color.New(color.FgCyan),
	vb.StyleLibrary:          color.New(color.FgBlue),
	vb.StylePreprocessor:     color.New(color.FgMagenta),
	vb.StyleAttribute:        color.New(color.FgHiMagenta),
	vb.StyleConstant:         color.New(color.FgHiRed),
	vb.StyleFunctionDef:      color.New(color.FgHiBlue, color.Bold),
	vb.StyleLabel:            color.New(color.FgHiCyan),
	vb.StyleOperator:         color.New(color.FgHiBlack),
	vb.StyleNestedOperator:   color.New(color.FgMagenta),
}

// Highlight writes the document's text with one color per style run.
// Without useColor the text comes out unchanged.
func Highlight(w io.Writer, d *doc.Document, useColor bool) error {
	if !useColor {
		_, err := w.Write(d.Content)
		return err
	}
	for start := 0; start < d.Length(); {
		style := d.StyleAt(start)
		end := start + 1
		for end < d.Length() && d.StyleAt(end) == style {
			end++
		}
		text := string(d.Content[start:end])
		if c, ok := styleColors[style]; ok {
			if _, err := c.Fprint(w, text); err != nil {
				return err
			}
		} else if _, err := io.WriteString(w, text); err != nil {
			return err
		}
		start = end
	}
	return nil
}

// Runs writes one line per style run: offsets, style name, text excerpt.
func Runs(w io.Writer, d *doc.Document) error {
	n := 0
	for start := 0; start < d.Length(); {
		style := d.StyleAt(start)
		end := start + 1
		for end < d.Length() && d.StyleAt(end) == style {
			end++
		}
		n++
		if _, err := fmt.Fprintf(w, "%4d: %-16s [%d:%d) %q\n",
			n, style.String(), start, end, excerpt(d.Content[start:end])); err != nil {
			return err
		}
		start = end
	}
	return nil
}

func excerpt(b []byte) string {
	const limit = 40
	if len(b) > limit {
		return string(b[:limit]) + "…"
	}
	return string(b)
}
