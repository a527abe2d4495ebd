package lexer

import (
	"vblex/internal/doc"
	"vblex/internal/vb"
)

// styleContext walks a byte range of a document one position at a time,
// carrying the previous/current/next characters and flushing styles for the
// current segment whenever the state changes. It is the scanner's cursor:
// the main loop only ever looks at ch/chPrev/chNext plus the line flags.
type styleContext struct {
	d      *doc.Document
	endPos int

	pos      int
	startSeg int
	state    vb.Style

	line          int
	lineStartNext int
	atLineStart   bool
	atLineEnd     bool

	chPrev byte
	ch     byte
	chNext byte
}

func newStyleContext(d *doc.Document, startPos, length int, initStyle vb.Style) *styleContext {
	sc := &styleContext{
		d:        d,
		endPos:   startPos + length,
		pos:      startPos,
		startSeg: startPos,
		state:    initStyle,
	}
	if sc.endPos > d.Length() {
		sc.endPos = d.Length()
	}
	sc.line = d.LineOf(startPos)
	sc.lineStartNext = d.LineStart(sc.line + 1)
	sc.atLineStart = d.LineStart(sc.line) == startPos
	sc.atLineEnd = sc.pos >= sc.lineStartNext-1
	if startPos > 0 {
		sc.chPrev = d.CharAt(startPos - 1)
	}
	sc.ch = d.CharAt(startPos)
	sc.chNext = d.CharAt(startPos + 1)
	return sc
}

// more reports whether the current position is still inside the range.
func (sc *styleContext) more() bool {
	return sc.pos < sc.endPos
}

// forward advances one position, updating line bookkeeping.
func (sc *styleContext) forward() {
	if sc.pos < sc.endPos {
		sc.atLineStart = sc.atLineEnd
		if sc.atLineStart {
			sc.line++
			sc.lineStartNext = sc.d.LineStart(sc.line + 1)
		}
		sc.chPrev = sc.ch
		sc.pos++
		sc.ch = sc.chNext
		sc.chNext = sc.d.CharAt(sc.pos + 1)
		sc.atLineEnd = sc.pos >= sc.lineStartNext-1
	} else {
		sc.atLineStart = false
		sc.chPrev = ' '
		sc.ch = ' '
		sc.chNext = ' '
		sc.atLineEnd = true
	}
}

// setState flushes the pending segment with the old state and starts a new
// segment at the current position.
func (sc *styleContext) setState(state vb.Style) {
	sc.flush()
	sc.state = state
}

// changeState retags the pending segment without flushing it.
func (sc *styleContext) changeState(state vb.Style) {
	sc.state = state
}

// forwardSetState advances past the current character, keeping it in the old
// segment, then switches state.
func (sc *styleContext) forwardSetState(state vb.Style) {
	sc.forward()
	sc.setState(state)
}

// complete flushes the final segment.
func (sc *styleContext) complete() {
	sc.flush()
}

func (sc *styleContext) flush() {
	if sc.pos > sc.startSeg {
		sc.d.SetStyleRange(sc.startSeg, sc.pos, sc.state)
		sc.startSeg = sc.pos
	}
}

// match reports whether the current and next characters are a and b.
func (sc *styleContext) match(a, b byte) bool {
	return sc.ch == a && sc.chNext == b
}

// getRelative returns the character n positions ahead of the current one.
func (sc *styleContext) getRelative(n int) byte {
	return sc.d.CharAt(sc.pos + n)
}

// lengthCurrent returns the length of the segment built so far.
func (sc *styleContext) lengthCurrent() int {
	return sc.pos - sc.startSeg
}

// currentLowered returns the pending segment lowercased, truncated to
// maxWordLength bytes.
func (sc *styleContext) currentLowered() string {
	end := sc.pos
	if end-sc.startSeg > maxWordLength {
		end = sc.startSeg + maxWordLength
	}
	buf := make([]byte, end-sc.startSeg)
	for i := range buf {
		buf[i] = toLower(sc.d.Content[sc.startSeg+i])
	}
	return string(buf)
}

// lineNextChar returns the first character after optional space/tab runs on
// the rest of the current line, zero when the line ends first. With
// skipCurrent the current character is not considered.
func (sc *styleContext) lineNextChar(skipCurrent bool) byte {
	pos := sc.pos
	if skipCurrent {
		pos++
	}
	for pos < sc.lineStartNext {
		ch := sc.d.CharAt(pos)
		if ch == ' ' || ch == '\t' {
			pos++
			continue
		}
		if ch == '\r' || ch == '\n' {
			break
		}
		return ch
	}
	return 0
}
