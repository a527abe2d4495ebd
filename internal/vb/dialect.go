package vb

import (
	"fmt"
	"strings"
)

// Dialect selects the language-variant behavior profile for a whole scan:
// type-suffix characters, multi-line strings, interpolated strings and
// comment continuation all vary between the three Basics.
type Dialect uint8

const (
	// DialectDotNet is VB.NET: interpolated strings, multi-line string
	// literals, the If(...) conditional operator.
	DialectDotNet Dialect = iota
	// DialectVBA is VBA: type characters, line continuation inside comments.
	DialectVBA
	// DialectScript is VBScript: no type characters, no preprocessor.
	DialectScript
)

func (d Dialect) String() string {
	switch d {
	case DialectDotNet:
		return "vbnet"
	case DialectVBA:
		return "vba"
	case DialectScript:
		return "vbscript"
	}
	return "dialect(?)"
}

// ParseDialect maps a configuration string to a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "vbnet", "vb.net", "dotnet", "":
		return DialectDotNet, nil
	case "vba", "vb6", "vb":
		return DialectVBA, nil
	case "vbscript", "vbs", "script":
		return DialectScript, nil
	}
	return DialectDotNet, fmt.Errorf("unknown dialect %q", name)
}
