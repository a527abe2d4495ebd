package lexer

import (
	"vblex/internal/doc"
	"vblex/internal/vb"
)

// resumeContext is the state reconstructed before an incremental scan may
// start. Restarting mid-buffer loses two things that are not recoverable
// from the immediately preceding character alone: whether the restart point
// sits inside an interpolated-string expression that opened on an earlier
// line, and what the last visually significant character before the restart
// was. Both are recovered here, up front, so the main loop never reads
// backward itself.
type resumeContext struct {
	startPos  int
	length    int
	initStyle vb.Style

	chPrevNonWhite    byte
	stylePrevNonWhite vb.Style
}

// recoverContext widens and seeds the scan range for a resume at startPos.
func recoverContext(d *doc.Document, startPos, length int, initStyle vb.Style) resumeContext {
	rc := resumeContext{
		startPos:          startPos,
		length:            length,
		initStyle:         initStyle,
		stylePrevNonWhite: vb.StyleDefault,
	}
	if startPos == 0 {
		return rc
	}

	// Pull the start back to the line that opened the innermost interpolated
	// string expression: the nesting stack cannot be reconstructed from line
	// states, so those lines are scanned again.
	line := d.LineOf(startPos)
	if line > 0 {
		back := line - 1
		for back > 0 && d.LineState(back).HasInterpolation() {
			back--
		}
		if !d.LineState(back).HasInterpolation() {
			back++
		}
		if back != line {
			newStart := d.LineStart(back)
			rc.length += startPos - newStart
			rc.startPos = newStart
			if newStart == 0 {
				rc.initStyle = vb.StyleDefault
			} else {
				rc.initStyle = d.StyleAt(newStart - 1)
			}
		}
	}

	// If the restart style is space equivalent, the token decisions that
	// depend on the previous significant character (the `&` prefix rule)
	// need a lookback past whitespace, comments and continuations.
	if rc.startPos != 0 && rc.initStyle.IsSpaceEquiv() {
		rc.chPrevNonWhite, rc.stylePrevNonWhite = lookbackNonWhite(d, rc.startPos)
	}
	return rc
}

// lookbackNonWhite scans backward from startPos for the last character whose
// style is not space equivalent.
func lookbackNonWhite(d *doc.Document, startPos int) (byte, vb.Style) {
	for pos := startPos - 1; pos >= 0; pos-- {
		style := d.StyleAt(pos)
		if !style.IsSpaceEquiv() {
			return d.CharAt(pos), style
		}
	}
	return 0, vb.StyleDefault
}
