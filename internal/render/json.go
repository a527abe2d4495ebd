package render

import (
	"encoding/json"
	"io"

	"vblex/internal/doc"
	"vblex/internal/vb"
)

// RunOutput is one style run in JSON output.
type RunOutput struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Style string `json:"style"`
}

// LineOutput is one line's fold and state info in JSON output.
type LineOutput struct {
	Line       int  `json:"line"`
	FoldStart  int  `json:"foldStart"`
	FoldEnd    int  `json:"foldEnd"`
	Header     bool `json:"header,omitempty"`
	LineType   int  `json:"lineType,omitempty"`
	ParenCount int  `json:"parenCount,omitempty"`
}

// DocumentOutput is the whole JSON payload for a scanned document.
type DocumentOutput struct {
	Path    string       `json:"path"`
	Dialect string       `json:"dialect"`
	Runs    []RunOutput  `json:"runs"`
	Lines   []LineOutput `json:"lines"`
}

// JSON writes the document's style runs and per-line fold data.
func JSON(w io.Writer, d *doc.Document, dialect vb.Dialect) error {
	out := DocumentOutput{
		Path:    d.Path,
		Dialect: dialect.String(),
	}
	for start := 0; start < d.Length(); {
		style := d.StyleAt(start)
		end := start + 1
		for end < d.Length() && d.StyleAt(end) == style {
			end++
		}
		out.Runs = append(out.Runs, RunOutput{Start: start, End: end, Style: style.String()})
		start = end
	}
	for line := 0; line < d.LineCount(); line++ {
		lev := d.Level(line)
		state := d.LineState(line)
		out.Lines = append(out.Lines, LineOutput{
			Line:       line + 1,
			FoldStart:  lev.Level() - vb.FoldLevelBase,
			FoldEnd:    lev.Next() - vb.FoldLevelBase,
			Header:     lev.IsHeader(),
			LineType:   state.FoldType(),
			ParenCount: state.ParenCount(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
