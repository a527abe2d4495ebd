// Package doc holds the in-memory text buffer the scanner reads from and the
// annotation stores it writes back: one style tag per character, one packed
// state word and one fold-level word per line.
package doc

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"

	"vblex/internal/vb"
)

// Document is a single source buffer plus its annotations. Offsets are byte
// offsets into Content and are never shifted: CR, LF and CRLF are all
// recognized as line terminators in place instead of being normalized away.
type Document struct {
	Path    string
	Content []byte
	Hash    [32]byte

	lineStarts []uint32 // start offset of every line; len == line count
	styles     []vb.Style
	lineStates []vb.LineState
	levels     []vb.FoldLevel
}

// New builds a Document from raw bytes. A UTF-8 BOM is stripped.
func New(path string, content []byte) *Document {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}
	d := &Document{
		Path:       path,
		Content:    content,
		Hash:       sha256.Sum256(content),
		lineStarts: buildLineStarts(content),
	}
	d.styles = make([]vb.Style, len(content))
	d.lineStates = make([]vb.LineState, len(d.lineStarts))
	d.levels = make([]vb.FoldLevel, len(d.lineStarts))
	return d
}

// Load reads a file from disk into a Document.
func Load(path string) (*Document, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, content), nil
}

func buildLineStarts(content []byte) []uint32 {
	starts := []uint32{0}
	for i := 0; i < len(content); i++ {
		b := content[i]
		if b == '\r' {
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
		} else if b != '\n' {
			continue
		}
		if i+1 < len(content) {
			off, err := safecast.Conv[uint32](i + 1)
			if err != nil {
				panic(fmt.Errorf("line start overflow: %w", err))
			}
			starts = append(starts, off)
		}
	}
	return starts
}

// Length returns the buffer length in bytes.
func (d *Document) Length() int {
	return len(d.Content)
}

// LineCount returns the number of lines; an empty buffer has one line.
func (d *Document) LineCount() int {
	return len(d.lineStarts)
}

// CharAt returns the byte at pos, or a space when pos is out of range. The
// space default matches what the scanner's lookahead probes expect at the
// ends of the buffer.
func (d *Document) CharAt(pos int) byte {
	if pos < 0 || pos >= len(d.Content) {
		return ' '
	}
	return d.Content[pos]
}

// LineStart returns the offset of the first character of line. Lines past
// the end map to the buffer length, so LineStart(line+1) is always a valid
// exclusive bound for line.
func (d *Document) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(d.lineStarts) {
		return len(d.Content)
	}
	return int(d.lineStarts[line])
}

// LineOf returns the line number containing pos.
func (d *Document) LineOf(pos int) int {
	if pos <= 0 {
		return 0
	}
	lo, hi := 0, len(d.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) >> 1
		if int(d.lineStarts[mid]) <= pos {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// StyleAt returns the style at pos, StyleDefault when out of range.
func (d *Document) StyleAt(pos int) vb.Style {
	if pos < 0 || pos >= len(d.styles) {
		return vb.StyleDefault
	}
	return d.styles[pos]
}

// SetStyleRange tags [start, end) with style s.
func (d *Document) SetStyleRange(start, end int, s vb.Style) {
	if start < 0 {
		start = 0
	}
	if end > len(d.styles) {
		end = len(d.styles)
	}
	for i := start; i < end; i++ {
		d.styles[i] = s
	}
}

// LineState returns the persisted state word for line, zero out of range.
func (d *Document) LineState(line int) vb.LineState {
	if line < 0 || line >= len(d.lineStates) {
		return 0
	}
	return d.lineStates[line]
}

// SetLineState overwrites the persisted state word for line.
func (d *Document) SetLineState(line int, s vb.LineState) {
	if line >= 0 && line < len(d.lineStates) {
		d.lineStates[line] = s
	}
}

// Level returns the fold-level word for line, zero when out of range.
func (d *Document) Level(line int) vb.FoldLevel {
	if line < 0 || line >= len(d.levels) {
		return 0
	}
	return d.levels[line]
}

// SetLevel overwrites the fold-level word for line.
func (d *Document) SetLevel(line int, lev vb.FoldLevel) {
	if line >= 0 && line < len(d.levels) {
		d.levels[line] = lev
	}
}

// MatchLowercase reports whether the lowercase ASCII word occurs at pos.
// The match is a prefix match; callers that need a whole word check the
// following character themselves.
func (d *Document) MatchLowercase(pos int, word string) bool {
	for i := 0; i < len(word); i++ {
		if toLower(d.CharAt(pos+i)) != word[i] {
			return false
		}
	}
	return true
}

// SkipSpaceTab returns the first position in [pos, end) that is not a space
// or tab, or end.
func (d *Document) SkipSpaceTab(pos, end int) int {
	for pos < end {
		ch := d.CharAt(pos)
		if ch != ' ' && ch != '\t' {
			break
		}
		pos++
	}
	return pos
}

// Styles exposes the style store for snapshotting.
func (d *Document) Styles() []vb.Style {
	return d.styles
}

// LineStates exposes the per-line state store for snapshotting.
func (d *Document) LineStates() []vb.LineState {
	return d.lineStates
}

// Levels exposes the fold-level store for snapshotting.
func (d *Document) Levels() []vb.FoldLevel {
	return d.levels
}

// Restore replaces all annotation stores, used when re-seeding a document
// from a cached snapshot. Lengths must match the current content.
func (d *Document) Restore(styles []vb.Style, states []vb.LineState, levels []vb.FoldLevel) error {
	if len(styles) != len(d.styles) || len(states) != len(d.lineStates) || len(levels) != len(d.levels) {
		return fmt.Errorf("annotation snapshot does not match document shape")
	}
	copy(d.styles, styles)
	copy(d.lineStates, states)
	copy(d.levels, levels)
	return nil
}

func toLower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + 'a' - 'A'
	}
	return ch
}
