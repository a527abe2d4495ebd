package vb

// Style is the classification assigned to every character position.
//
// Ordering matters: styles up to and including StyleLineContinuation count as
// "space equivalent" — they never carry the last significant character a
// resumed scan looks back for.
type Style uint8

const (
	// StyleDefault is unstyled text: whitespace and anything not yet classified.
	StyleDefault Style = iota
	// StyleComment is a single-quote or Rem comment running to end of line.
	StyleComment
	// StyleLineContinuation is the trailing "_" continuation marker.
	StyleLineContinuation

	// StyleNumber covers integer, floating point, hex/octal/binary literals.
	StyleNumber
	// StyleString is a double-quoted string literal.
	StyleString
	// StyleInterpolated is the literal text of a $"..." interpolated string.
	StyleInterpolated
	// StyleFormatSpecifier is the format clause after ':' inside an
	// interpolated-string placeholder.
	StyleFormatSpecifier
	// StyleDate is a #...# date literal.
	StyleDate
	// StyleFileNumber is a #n file handle; ambiguous prefixes start here and
	// are reclassified as the following characters disambiguate.
	StyleFileNumber
	// StyleIdentifier is a plain identifier.
	StyleIdentifier
	// StyleKeyword is a core keyword in statement position.
	StyleKeyword
	// StyleTypeKeyword is a built-in type name.
	StyleTypeKeyword
	// StyleLibrary is a runtime-library name, or a core keyword demoted by
	// member-access or argument position.
	StyleLibrary
	// StylePreprocessor is a #-directive and its continuation words.
	StylePreprocessor
	// StyleAttribute is a VBA attribute name.
	StyleAttribute
	// StyleConstant is a predefined constant such as vbCrLf.
	StyleConstant
	// StyleFunctionDef is the identifier naming a Sub/Function being declared.
	StyleFunctionDef
	// StyleLabel is an identifier followed by ':' at the start of a line.
	StyleLabel
	// StyleOperator is punctuation outside interpolation.
	StyleOperator
	// StyleNestedOperator is punctuation inside an interpolated-string
	// embedded expression.
	StyleNestedOperator

	styleCount
)

var styleNames = [...]string{
	StyleDefault:          "Default",
	StyleComment:          "Comment",
	StyleLineContinuation: "LineContinuation",
	StyleNumber:           "Number",
	StyleString:           "String",
	StyleInterpolated:     "Interpolated",
	StyleFormatSpecifier:  "FormatSpecifier",
	StyleDate:             "Date",
	StyleFileNumber:       "FileNumber",
	StyleIdentifier:       "Identifier",
	StyleKeyword:          "Keyword",
	StyleTypeKeyword:      "TypeKeyword",
	StyleLibrary:          "Library",
	StylePreprocessor:     "Preprocessor",
	StyleAttribute:        "Attribute",
	StyleConstant:         "Constant",
	StyleFunctionDef:      "FunctionDef",
	StyleLabel:            "Label",
	StyleOperator:         "Operator",
	StyleNestedOperator:   "NestedOperator",
}

func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "Style(?)"
}

// IsSpaceEquiv reports whether s is invisible for lookback purposes:
// whitespace, comments and continuation markers never decide how the next
// token is read.
func (s Style) IsSpaceEquiv() bool {
	return s <= StyleLineContinuation
}
