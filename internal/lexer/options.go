package lexer

import "vblex/internal/vb"

// Options configures one scan. The zero value scans as VB.NET with the
// stock keyword sets.
type Options struct {
	Dialect  vb.Dialect
	Keywords *vb.KeywordSets
}

func (o Options) keywordSets() *vb.KeywordSets {
	if o.Keywords != nil {
		return o.Keywords
	}
	return vb.DefaultKeywords()
}
