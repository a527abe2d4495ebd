package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"vblex/internal/lexer"
)

// Basic source extensions recognized by ScanDir.
var sourceExts = map[string]bool{
	".bas": true,
	".vb":  true,
	".vbs": true,
	".cls": true,
	".frm": true,
	".ctl": true,
	".vba": true,
}

// listSourceFiles returns the sorted Basic source files under dir.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if sourceExts[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ScanDir scans every Basic source file under dir concurrently. Results come
// back in path order. Each scan owns its document outright; the keyword sets
// are shared but read-only while scanning.
func ScanDir(ctx context.Context, dir string, opts lexer.Options) ([]*Result, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, len(files))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			res, err := ScanFile(path, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
