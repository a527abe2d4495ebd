package vb

// FoldLevel packs a line's fold information into one word:
// level at line start in the low 12 bits, header flag at bit 13, level at
// line end in the high half. A line is a fold header when its block opens on
// it, i.e. end level > start level.
type FoldLevel int32

const (
	// FoldLevelBase is the depth assigned to top-level lines. Keeping it
	// nonzero leaves room below for host-side whitespace levels.
	FoldLevelBase = 0x400

	foldLevelMask  = 0xFFF
	foldHeaderFlag = 0x2000
	foldNextShift  = 16
)

// PackFoldLevel builds the level word for a line from the running depth
// before and after the line's triggers.
func PackFoldLevel(level, levelNext int) FoldLevel {
	lev := (level & foldLevelMask) | levelNext<<foldNextShift
	if level < levelNext {
		lev |= foldHeaderFlag
	}
	return FoldLevel(lev)
}

// Level returns the depth at line start.
func (l FoldLevel) Level() int {
	return int(l) & foldLevelMask
}

// Next returns the depth at line end.
func (l FoldLevel) Next() int {
	return int(l) >> foldNextShift
}

// IsHeader reports whether the line opens a fold.
func (l FoldLevel) IsHeader() bool {
	return int(l)&foldHeaderFlag != 0
}
