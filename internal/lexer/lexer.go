// Package lexer is a single-pass, resumable scanner for the Basic family
// (VB.NET, VBA, VBScript). It classifies every character of a range into a
// style and persists a packed state word per line, so an editor can re-scan
// only the region an edit touched.
package lexer

import (
	"vblex/internal/doc"
	"vblex/internal/vb"
)

// keywordType tracks the most recently seen core keyword when it changes how
// the next identifier is classified. Reset at line boundaries and by any
// non-keyword token.
type keywordType uint8

const (
	kwNone keywordType = iota
	kwEnd
	kwAccessModifier
	kwFunction
)

// maxWordLength bounds keyword lookups; longer identifiers cannot be
// keywords and are compared truncated.
const maxWordLength = 63

// ScanDocument scans a whole document from scratch.
func ScanDocument(d *doc.Document, opts Options) {
	Scan(d, 0, d.Length(), vb.StyleDefault, opts)
}

// Scan styles the byte range [startPos, startPos+length) given the style in
// effect at startPos, and rewrites the state word of every line it finishes.
// When startPos is nonzero the range may be widened backward first to
// recover context lost at the resume boundary.
func Scan(d *doc.Document, startPos, length int, initStyle vb.Style, opts Options) {
	kw := opts.keywordSets()
	dialect := opts.Dialect

	rc := recoverContext(d, startPos, length, initStyle)
	sc := newStyleContext(d, rc.startPos, rc.length, rc.initStyle)

	kwType := kwNone
	lineState := 0
	parenCount := 0
	fileNbDigits := 0
	visibleChars := 0
	var chBefore byte
	chPrevNonWhite := rc.chPrevNonWhite
	stylePrevNonWhite := rc.stylePrevNonWhite
	isIfThenPreprocessor := false
	isEndPreprocessor := false
	var nestedState []int

	if sc.line > 0 {
		prev := d.LineState(sc.line - 1)
		parenCount = prev.ParenCount()
		lineState = int(prev) & vb.LineFlagContinuation
	}

	for sc.more() {
		switch sc.state {
		case vb.StyleOperator, vb.StyleNestedOperator, vb.StyleLineContinuation:
			sc.setState(vb.StyleDefault)

		case vb.StyleIdentifier:
			if !isIdentCharEx(sc.ch) {
				// Outside VBScript a name may end with a type character
				// naming the value's type; a bracketed [name] ends with ']'.
				skipType := false
				if sc.ch == ']' || (dialect != vb.DialectScript && isTypeCharacter(sc.ch)) {
					skipType = sc.ch != ']'
					visibleChars++ // bracketed [keyword] identifier
					sc.forward()
				}
				s := sc.currentLowered()
				wordLen := sc.lengthCurrent()
				if skipType && wordLen == 4 { // for a type character after rem
					s = s[:3]
				}
				if s == "rem" {
					sc.changeState(vb.StyleComment)
				} else {
					if !skipType {
						chNext := sc.lineNextChar(false)
						switch {
						case s[0] == '[':
							if visibleChars == wordLen && chNext == ':' {
								sc.changeState(vb.StyleLabel)
							}
						case (isIfThenPreprocessor && s == "then") ||
							(isEndPreprocessor && (s == "if" || s == "region" || s == "externalsource")):
							sc.changeState(vb.StylePreprocessor)
						case kw.Core.Contains(s):
							sc.changeState(vb.StyleLibrary)
							if chBefore != '.' && parenCount == 0 {
								sc.changeState(vb.StyleKeyword)
								switch s {
								case "if":
									if dialect == vb.DialectDotNet && visibleChars > 2 && chNext == '(' {
										sc.changeState(vb.StyleLibrary) // If operator
									}
								case "dim":
									lineState = vb.LineTypeDim
								case "const":
									lineState = vb.LineTypeConst
								case "type":
									if visibleChars == wordLen || kwType == kwAccessModifier {
										lineState = vb.LineTypeVB6Type
									}
								case "end":
									kwType = kwEnd
								case "sub", "function":
									if kwType != kwEnd {
										kwType = kwFunction
									}
								case "public", "protected", "private", "friend":
									kwType = kwAccessModifier
								}
							}
						case kw.Types.Contains(s):
							sc.changeState(vb.StyleTypeKeyword)
						case visibleChars == wordLen && chNext == ':':
							sc.changeState(vb.StyleLabel)
						case kw.Library.Contains(s):
							sc.changeState(vb.StyleLibrary)
						case dialect != vb.DialectScript && s[0] == '#' && kw.Preprocessor.Contains(s[1:]):
							sc.changeState(vb.StylePreprocessor)
							isIfThenPreprocessor = s == "#if" || s == "#elseif"
							isEndPreprocessor = s == "#end"
						case kw.Attributes.Contains(s):
							sc.changeState(vb.StyleAttribute)
						case kw.Constants.Contains(s):
							sc.changeState(vb.StyleConstant)
						case kwType == kwFunction:
							sc.changeState(vb.StyleFunctionDef)
						}
						stylePrevNonWhite = sc.state
						if sc.state != vb.StyleKeyword {
							kwType = kwNone
						}
					}
					sc.setState(vb.StyleDefault)
				}
			}

		case vb.StyleNumber:
			if !isNumberContinue(sc.ch, sc.chPrev) {
				sc.setState(vb.StyleDefault)
			}

		case vb.StyleString, vb.StyleInterpolated:
			if sc.atLineStart && dialect != vb.DialectDotNet {
				// Multi-line strings exist only in VB.NET; elsewhere a line
				// start force-closes a likely unterminated literal.
				sc.setState(vb.StyleDefault)
			} else if sc.ch == '"' {
				if sc.chNext == '"' {
					sc.forward()
				} else {
					if sc.chNext == 'c' || sc.chNext == 'C' || sc.chNext == '$' {
						sc.forward()
					}
					sc.forwardSetState(vb.StyleDefault)
				}
			} else if sc.state == vb.StyleInterpolated {
				if sc.ch == '{' {
					if sc.chNext == '{' {
						sc.forward()
					} else {
						parenCount++
						nestedState = append(nestedState, 0)
						sc.setState(vb.StyleNestedOperator)
						sc.forwardSetState(vb.StyleDefault)
					}
				} else if sc.ch == '}' {
					if len(nestedState) > 0 {
						parenCount--
						nestedState = nestedState[:len(nestedState)-1]
						sc.setState(vb.StyleNestedOperator)
						sc.forwardSetState(vb.StyleInterpolated)
						continue
					}
					if sc.chNext == '}' {
						sc.forward()
					}
				}
			}

		case vb.StyleComment:
			if sc.atLineStart {
				if lineState == vb.LineFlagContinuation {
					lineState = vb.LineTypeComment
				} else {
					sc.setState(vb.StyleDefault)
				}
			} else if dialect == vb.DialectVBA && sc.ch == '_' && sc.chPrev <= ' ' {
				if sc.lineNextChar(true) == 0 {
					lineState |= vb.LineFlagContinuation
					sc.setState(vb.StyleLineContinuation)
					sc.forwardSetState(vb.StyleComment)
				}
			}

		case vb.StyleFileNumber:
			if isDigit(sc.ch) {
				fileNbDigits++
				if fileNbDigits > 3 {
					sc.changeState(vb.StyleDate)
				}
			} else if sc.ch == '\r' || sc.ch == '\n' || sc.ch == ',' {
				// Regular uses: Close #1; Put #1, ...; Get #1, ... etc.
				// A date written #27, Oct, 2003# is misread here.
				sc.changeState(vb.StyleNumber)
				sc.setState(vb.StyleDefault)
			} else if sc.ch == '#' {
				sc.changeState(vb.StyleDate)
				sc.forwardSetState(vb.StyleDefault)
			} else {
				sc.changeState(vb.StyleDate)
			}
			if sc.state != vb.StyleFileNumber {
				fileNbDigits = 0
			}

		case vb.StyleDate:
			if sc.atLineStart {
				sc.setState(vb.StyleDefault)
			} else if sc.ch == '#' {
				sc.forwardSetState(vb.StyleDefault)
			}

		case vb.StyleFormatSpecifier:
			if isInvalidFormatSpecifier(sc.ch) {
				sc.setState(vb.StyleInterpolated)
				continue
			}
		}

		if sc.state == vb.StyleDefault {
			switch {
			case sc.ch == '\'':
				sc.setState(vb.StyleComment)
				if visibleChars == 0 {
					lineState = vb.LineTypeComment
				}
			case sc.ch == '"':
				sc.setState(vb.StyleString)
			case dialect == vb.DialectDotNet && sc.match('$', '"'):
				sc.setState(vb.StyleInterpolated)
				sc.forward()
			case sc.ch == '#':
				// #if/#end/#region/#const and friends scan as identifiers;
				// any other # starts the file-number/date guesswork.
				chNext := toLower(sc.chNext)
				if chNext == 'e' || chNext == 'i' || chNext == 'r' || chNext == 'c' {
					sc.setState(vb.StyleIdentifier)
				} else {
					sc.setState(vb.StyleFileNumber)
				}
			case sc.ch == '&' && isNumberPrefix(sc.chNext) && !preferStringConcat(chPrevNonWhite, stylePrevNonWhite):
				sc.setState(vb.StyleNumber)
				sc.forward()
			case isNumberStart(sc.ch, sc.chNext):
				sc.setState(vb.StyleNumber)
			case sc.ch == '_' && sc.chNext <= ' ':
				sc.setState(vb.StyleLineContinuation)
			case isIdentStartEx(sc.ch) || sc.ch == '[': // bracketed [keyword] identifier
				chBefore = chPrevNonWhite
				sc.setState(vb.StyleIdentifier)
			case isGraphic(sc.ch):
				sc.setState(vb.StyleOperator)
				if len(nestedState) == 0 {
					if sc.ch == '(' {
						parenCount++
					} else if sc.ch == ')' && parenCount > 0 {
						parenCount--
					}
				} else {
					sc.changeState(vb.StyleNestedOperator)
					top := len(nestedState) - 1
					if sc.ch == '(' {
						nestedState[top]++
					} else if sc.ch == ')' {
						nestedState[top]--
					}
					if nestedState[top] <= 0 && isInterpolatedEnd(sc) {
						if sc.ch == '}' {
							sc.changeState(vb.StyleInterpolated)
						} else {
							sc.changeState(vb.StyleFormatSpecifier)
						}
						continue
					}
				}
			}
		}

		if !isSpaceChar(sc.ch) {
			visibleChars++
			if !sc.state.IsSpaceEquiv() {
				chPrevNonWhite = sc.ch
				stylePrevNonWhite = sc.state
			}
		}
		if sc.atLineEnd {
			if len(nestedState) > 0 {
				lineState |= vb.LineFlagInterpolation
			}
			d.SetLineState(sc.line, vb.PackLineState(lineState, parenCount))
			lineState &= vb.LineFlagContinuation
			isIfThenPreprocessor = false
			isEndPreprocessor = false
			visibleChars = 0
			kwType = kwNone
		}
		sc.forward()
	}

	sc.complete()
}

// isInterpolatedEnd recognizes the characters that can close an embedded
// expression once its paren balance is gone: the closing brace, an alignment
// ':' or a ',' followed by a (possibly negative) width.
func isInterpolatedEnd(sc *styleContext) bool {
	return sc.ch == '}' || sc.ch == ':' ||
		(sc.ch == ',' && (isDigit(sc.chNext) || (sc.chNext == '-' && isDigit(sc.getRelative(2)))))
}
