// Package folder computes per-line fold levels for scanned Basic source.
// It is strictly downstream of the scanner: it reads the styles and line
// states the scanner wrote and never feeds anything back.
package folder

import (
	"vblex/internal/doc"
	"vblex/internal/vb"
)

// pending records a reason to suppress the fold-open of the next block
// keyword: the keyword closes a block (End Sub), exits one (Exit Function)
// or declares a bodyless one (Declare/Delegate). The reasons are mutually
// exclusive — each opener consumes the pending value before another keyword
// can set it.
type pending uint8

const (
	pendingNone pending = iota
	pendingEnd
	pendingExit
	pendingDeclare
)

// FoldDocument folds a whole document. The scanner must have run first.
func FoldDocument(d *doc.Document) {
	Fold(d, 0, d.Length())
}

// Fold computes fold levels for every line covered by [startPos,
// startPos+length). Levels of lines before the range seed the running depth
// so a partial fold continues where the previous one ended.
func Fold(d *doc.Document, startPos, length int) {
	endPos := startPos + length
	if endPos > d.Length() {
		endPos = d.Length()
	}
	lineCurrent := d.LineOf(startPos)
	foldPrev := vb.LineState(0)
	levelCurrent := vb.FoldLevelBase
	if lineCurrent > 0 {
		levelCurrent = d.Level(lineCurrent - 1).Next()
		foldPrev = d.LineState(lineCurrent - 1)
	}

	levelNext := levelCurrent
	foldCurrent := d.LineState(lineCurrent)
	lineStartNext := d.LineStart(lineCurrent + 1)
	if lineStartNext > endPos {
		lineStartNext = endPos
	}

	style := d.StyleAt(startPos - 1)
	styleNext := d.StyleAt(startPos)

	visibleChars := 0
	numBegin := 0 // nested Begin ... End in VB6 forms
	susp := pendingNone
	isInterface := false // inside Interface ... End Interface
	isProperty := false  // Property block with Get/Set accessors
	isCustom := false    // Custom Event
	isIf := false        // If ... Then spanning lines
	lineIf := -1         // line of the last If keyword
	lineThen := -1       // line of the last Then keyword

	for startPos < endPos {
		i := startPos
		stylePrev := style
		style = styleNext
		ch := d.CharAt(startPos)
		startPos++
		styleNext = d.StyleAt(startPos)

		switch {
		case style == vb.StyleKeyword && stylePrev != vb.StyleKeyword:
			// Not a member access, not a bracketed [keyword] identifier.
			switch {
			case visibleChars == 0 && (match(d, i, "for") ||
				(match(d, i, "do") && isSpace(d.CharAt(i+2))) || // not Double
				match(d, i, "while") ||
				(match(d, i, "try") && isSpace(d.CharAt(i+3))) || // not TryCast
				(match(d, i, "select") && matchNextWord(d, i+6, endPos, "case")) ||
				(match(d, i, "with") && isSpace(d.CharAt(i+4))) || // not WithEvents, not With {...}
				match(d, i, "namespace") || match(d, i, "synclock") || match(d, i, "using") ||
				(isProperty && (match(d, i, "set") ||
					(match(d, i, "get") && isSpace(d.CharAt(i+3))))) || // not GetType
				(isCustom && (match(d, i, "raiseevent") ||
					match(d, i, "addhandler") || match(d, i, "removehandler")))):
				levelNext++
			case visibleChars == 0 && (match(d, i, "next") || match(d, i, "loop") || match(d, i, "wend")):
				levelNext--
			case match(d, i, "exit") && (matchNextWord(d, i+4, endPos, "function") ||
				matchNextWord(d, i+4, endPos, "sub") || matchNextWord(d, i+4, endPos, "property")):
				susp = pendingExit
			case match(d, i, "begin"):
				levelNext++
				if isSpace(d.CharAt(i + 5)) {
					numBegin++
				}
			case match(d, i, "end"):
				levelNext--
				chEnd := d.CharAt(i + 3)
				if chEnd == ' ' || chEnd == '\t' {
					pos := d.SkipSpaceTab(i+3, endPos)
					chEnd = d.CharAt(pos)
					// Check whether End terminates a block statement.
					if isAlpha(chEnd) && (matchNextWord(d, pos, endPos, "function") ||
						matchNextWord(d, pos, endPos, "sub") || matchNextWord(d, pos, endPos, "if") ||
						matchNextWord(d, pos, endPos, "class") || matchNextWord(d, pos, endPos, "structure") ||
						matchNextWord(d, pos, endPos, "module") || matchNextWord(d, pos, endPos, "enum") ||
						matchNextWord(d, pos, endPos, "interface") || matchNextWord(d, pos, endPos, "operator") ||
						matchNextWord(d, pos, endPos, "property") || matchNextWord(d, pos, endPos, "event") ||
						matchNextWord(d, pos, endPos, "type")) { // VB6
						susp = pendingEnd
					}
				}
				if chEnd == '\r' || chEnd == '\n' || chEnd == '\'' {
					// A bare End is a statement, not a terminator, unless it
					// closes a VB6 Begin.
					if susp == pendingEnd {
						susp = pendingNone
					}
					if numBegin == 0 {
						levelNext++
					} else {
						numBegin--
					}
				}
				if match(d, i, "endif") { // same as End If
					isIf = false
				}
				// One line: If ... Then ... End If
				if lineCurrent == lineIf && lineCurrent == lineThen {
					levelNext++
				}
			case match(d, i, "if"):
				isIf = true
				lineIf = lineCurrent
				if susp == pendingEnd {
					susp = pendingNone
					isIf = false
				} else {
					levelNext++
				}
			case match(d, i, "then"):
				if isIf {
					isIf = false
					pos := d.SkipSpaceTab(i+4, endPos)
					chEnd := d.CharAt(pos)
					if !(chEnd == '\r' || chEnd == '\n' || chEnd == '\'') {
						// Single-line If ... Then has no matching End If.
						levelNext--
					}
				}
				lineThen = lineCurrent
			case (!isInterface && (match(d, i, "class") || match(d, i, "structure"))) ||
				match(d, i, "module") || match(d, i, "enum") || match(d, i, "operator"):
				if susp == pendingEnd {
					susp = pendingNone
				} else {
					levelNext++
				}
			case match(d, i, "interface"):
				if susp != pendingEnd && !isInterface {
					levelNext++
				}
				isInterface = true
				if susp == pendingEnd {
					susp = pendingNone
					isInterface = false
				}
			case match(d, i, "declare") || match(d, i, "delegate"):
				susp = pendingDeclare
			case !isInterface && (match(d, i, "sub") || match(d, i, "function")):
				if susp == pendingNone {
					levelNext++
				}
				susp = pendingNone
			case !isInterface && match(d, i, "property"):
				isProperty = true
				if susp != pendingEnd && susp != pendingExit {
					result := propertyShape(d, lineCurrent, i+8)
					if result != 0 {
						levelNext++
					}
					isProperty = result == 1
				}
				if susp == pendingEnd {
					susp = pendingNone
					isProperty = false
				} else if susp == pendingExit {
					susp = pendingNone
				}
			case match(d, i, "custom"):
				isCustom = true
			case !isInterface && isCustom && match(d, i, "event"):
				if susp == pendingEnd {
					susp = pendingNone
					isCustom = false
				} else {
					levelNext++
				}
			case match(d, i, "type") && isSpace(d.CharAt(i+4)):
				// Not TypeOf; VB6: [Private|Public] Type ... End Type
				if susp != pendingEnd && foldCurrent.IsVB6Type() {
					levelNext++
				}
				if susp == pendingEnd {
					susp = pendingNone
				}
			}

		case style == vb.StylePreprocessor:
			if match(d, i, "#if") || match(d, i, "#region") || match(d, i, "#externalsource") {
				levelNext++
			} else if match(d, i, "#end") {
				levelNext--
			}

		case style == vb.StyleOperator:
			// Anonymous With { ... } object initializer braces.
			if ch == '{' {
				levelNext++
			} else if ch == '}' {
				levelNext--
			}
		}

		if visibleChars == 0 && !isSpace(ch) {
			visibleChars++
		}
		if startPos == lineStartNext {
			foldNext := d.LineState(lineCurrent + 1)
			if levelNext < vb.FoldLevelBase {
				levelNext = vb.FoldLevelBase
			}
			if foldCurrent.FoldType() != 0 {
				// Runs of same-kind simple lines (comments, Dim, Const) fold
				// as one synthetic block.
				if foldCurrent.FoldType() != foldPrev.FoldType() {
					levelNext++
				}
				if foldCurrent.FoldType() != foldNext.FoldType() {
					levelNext--
				}
			}

			d.SetLevel(lineCurrent, vb.PackFoldLevel(levelCurrent, levelNext))

			lineCurrent++
			lineStartNext = d.LineStart(lineCurrent + 1)
			if lineStartNext > endPos {
				lineStartNext = endPos
			}
			levelCurrent = levelNext
			foldPrev = foldCurrent
			foldCurrent = foldNext
			visibleChars = 0
		}
	}
}

// match reports the lowercase word at position i.
func match(d *doc.Document, i int, word string) bool {
	return d.MatchLowercase(i, word)
}

// matchNextWord skips space/tab from startPos and matches word as a whole
// word there.
func matchNextWord(d *doc.Document, startPos, endPos int, word string) bool {
	pos := d.SkipSpaceTab(startPos, endPos)
	return isSpace(d.CharAt(pos+len(word))) && d.MatchLowercase(pos, word)
}

// propertyShape inspects the rest of a Property line: 1 for a property with
// accessor blocks (an opening paren follows), 2 for the one-line
// Property Get/Let/Set procedure form, 0 for neither.
func propertyShape(d *doc.Document, line, startPos int) int {
	endPos := d.LineStart(line+1) - 1
	visible := false
	for i := startPos; i < endPos; i++ {
		ch := lower(d.CharAt(i))
		style := d.StyleAt(i)
		if style == vb.StyleOperator && ch == '(' {
			return 1
		}
		if style == vb.StyleKeyword && !visible &&
			(ch == 'g' || ch == 'l' || ch == 's') &&
			lower(d.CharAt(i+1)) == 'e' && lower(d.CharAt(i+2)) == 't' &&
			isSpace(d.CharAt(i+3)) {
			return 2
		}
		if ch > ' ' {
			visible = true
		}
	}
	return 0
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func lower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + 'a' - 'A'
	}
	return ch
}
