package vb

// LineState is the packed per-line word that survives between incremental
// scans. Layout:
//
//	bits 0..2   line classification (LineTypeNone..LineTypeVB6Type)
//	bit  3      line ends with a continuation marker
//	bit  4      an interpolated-string expression is still open
//	bits 16..31 signed unmatched-paren count at end of line
type LineState int32

// Line classifications. The folder groups consecutive lines of the same
// nonzero low-two-bit type into one synthetic fold block.
const (
	LineTypeNone    = 0
	LineTypeComment = 1
	LineTypeDim     = 2
	LineTypeConst   = 3
	LineTypeVB6Type = 4

	LineFlagContinuation  = 1 << 3
	LineFlagInterpolation = 1 << 4

	parenShift = 16
)

// FoldType returns the classification used for synthetic run folds. Only the
// low two bits participate: VB6 Type lines group by their own flag instead.
func (s LineState) FoldType() int {
	return int(s) & 3
}

// IsVB6Type reports whether the line carried a VB6 Type block header.
func (s LineState) IsVB6Type() bool {
	return int(s)&LineTypeVB6Type != 0
}

// HasContinuation reports whether the line ended inside a continuation.
func (s LineState) HasContinuation() bool {
	return int(s)&LineFlagContinuation != 0
}

// HasInterpolation reports whether an interpolated-string expression was
// still open at end of line. Resumed scans backtrack past such lines.
func (s LineState) HasInterpolation() bool {
	return int(s)&LineFlagInterpolation != 0
}

// ParenCount returns the signed nesting depth carried in the high bits.
func (s LineState) ParenCount() int {
	return int(s >> parenShift)
}

// PackLineState combines the low flag bits with the paren depth.
func PackLineState(low int, parenCount int) LineState {
	return LineState(low) | LineState(parenCount)<<parenShift
}
