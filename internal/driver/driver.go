// Package driver orchestrates the scanner for hosts: load a buffer, style
// it, fold it, and resume after edits.
package driver

import (
	"errors"

	"vblex/internal/doc"
	"vblex/internal/folder"
	"vblex/internal/lexer"
	"vblex/internal/statecache"
	"vblex/internal/vb"
)

// Result bundles a fully scanned document.
type Result struct {
	Doc     *doc.Document
	Dialect vb.Dialect
}

// ScanBytes styles and folds an in-memory buffer from scratch.
func ScanBytes(path string, content []byte, opts lexer.Options) *Result {
	d := doc.New(path, content)
	lexer.ScanDocument(d, opts)
	folder.FoldDocument(d)
	return &Result{Doc: d, Dialect: opts.Dialect}
}

// ScanFile loads path and scans it from scratch.
func ScanFile(path string, opts lexer.Options) (*Result, error) {
	d, err := doc.Load(path)
	if err != nil {
		return nil, err
	}
	lexer.ScanDocument(d, opts)
	folder.FoldDocument(d)
	return &Result{Doc: d, Dialect: opts.Dialect}, nil
}

// ScanFileCached is ScanFile backed by a snapshot cache: a snapshot for the
// exact file content skips the scan entirely, otherwise the fresh scan is
// saved for next time.
func ScanFileCached(path string, opts lexer.Options, cache *statecache.Cache) (*Result, error) {
	d, err := doc.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cache.Load(d); err == nil {
		return &Result{Doc: d, Dialect: opts.Dialect}, nil
	} else if !errors.Is(err, statecache.ErrMiss) {
		return nil, err
	}
	lexer.ScanDocument(d, opts)
	folder.FoldDocument(d)
	if err := cache.Save(d, opts.Dialect); err != nil {
		return nil, err
	}
	return &Result{Doc: d, Dialect: opts.Dialect}, nil
}

// Relex re-scans a document from the start of fromLine to the end of the
// buffer, resuming from the persisted annotations of earlier lines. The
// style in effect at the restart point is taken from the character before
// it, exactly as an editor re-styling a damaged region would.
func Relex(d *doc.Document, fromLine int, opts lexer.Options) {
	start := d.LineStart(fromLine)
	initStyle := vb.StyleDefault
	if start > 0 {
		initStyle = d.StyleAt(start - 1)
	}
	lexer.Scan(d, start, d.Length()-start, initStyle, opts)
	folder.Fold(d, start, d.Length()-start)
}
