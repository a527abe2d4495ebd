package lexer

import "vblex/internal/vb"

// Character classification for the Basic family. These mirror the lexical
// grammar notes for VB.NET type characters and the VBA data-type summary.

func isSpaceChar(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// isGraphic reports a printable non-space character.
func isGraphic(ch byte) bool {
	return ch > ' ' && ch < 0x7F
}

func isIdentChar(ch byte) bool {
	return isAlpha(ch) || isDigit(ch) || ch == '_'
}

// Identifier characters, extended: bytes >= 0x80 are accepted so multi-byte
// letters scan as identifier text without decoding.
func isIdentCharEx(ch byte) bool {
	return isIdentChar(ch) || ch >= 0x80
}

func isIdentStartEx(ch byte) bool {
	return isAlpha(ch) || ch == '_' || ch >= 0x80
}

func toLower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + 'a' - 'A'
	}
	return ch
}

// isTypeCharacter matches the suffix characters that name the type of a
// variable or function: % Integer, & Long, ^ LongLong, @ Decimal/Currency,
// ! Single, # Double, $ String.
func isTypeCharacter(ch byte) bool {
	return ch == '%' || ch == '&' || ch == '^' || ch == '@' || ch == '!' || ch == '#' || ch == '$'
}

// isNumberPrefix matches the radix letters of &H &O &B literals.
func isNumberPrefix(ch byte) bool {
	ch = toLower(ch)
	return ch == 'h' || ch == 'o' || ch == 'b'
}

// preferStringConcat decides the `&` ambiguity: after a closing quote,
// bracket or a non-keyword identifier character, `&` is the concatenation
// operator rather than a radix prefix.
func preferStringConcat(chPrevNonWhite byte, stylePrevNonWhite vb.Style) bool {
	return chPrevNonWhite == '"' || chPrevNonWhite == ')' || chPrevNonWhite == ']' ||
		(stylePrevNonWhite != vb.StyleKeyword && isIdentChar(chPrevNonWhite))
}

// isNumberContinue extends a number: hex digits, digit separators, one
// decimal point, an exponent sign after E, integer-size suffixes after a
// digit, type or hex suffixes after a digit.
func isNumberContinue(ch, chPrev byte) bool {
	lch := toLower(ch)
	lprev := toLower(chPrev)
	return isHexDigit(ch) || ch == '_' ||
		(ch == '.' && chPrev != '.') ||
		((ch == '+' || ch == '-') && lprev == 'e') ||
		((lch == 's' || lch == 'i' || lch == 'l') && (isDigit(chPrev) || lprev == 'u')) ||
		((lch == 'r' || ch == '%' || ch == '@' || ch == '!' || ch == '#') && isDigit(chPrev)) ||
		(ch == '&' && isHexDigit(chPrev))
}

func isNumberStart(ch, chNext byte) bool {
	return isDigit(ch) || (ch == '.' && isDigit(chNext))
}

// isInvalidFormatSpecifier ends a composite-format clause; custom format
// strings otherwise allow any character.
func isInvalidFormatSpecifier(ch byte) bool {
	return ch < ' ' || ch == '"' || ch == '{' || ch == '}'
}
