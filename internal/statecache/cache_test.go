package statecache_test

import (
	"errors"
	"testing"

	"vblex/internal/doc"
	"vblex/internal/driver"
	"vblex/internal/lexer"
	"vblex/internal/statecache"
	"vblex/internal/vb"
)

const sampleSource = "Module M\nSub F()\nDim x = 1\nEnd Sub\nEnd Module\n"

func TestSaveLoadRoundTrip(t *testing.T) {
	cache, err := statecache.New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	scanned := driver.ScanBytes("m.vb", []byte(sampleSource), lexer.Options{}).Doc
	if err := cache.Save(scanned, vb.DialectDotNet); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fresh := doc.New("m.vb", []byte(sampleSource))
	if err := cache.Load(fresh); err != nil {
		t.Fatalf("Load: %v", err)
	}

	for pos := 0; pos < scanned.Length(); pos++ {
		if scanned.StyleAt(pos) != fresh.StyleAt(pos) {
			t.Fatalf("style mismatch at %d after round trip", pos)
		}
	}
	for line := 0; line < scanned.LineCount(); line++ {
		if scanned.LineState(line) != fresh.LineState(line) {
			t.Fatalf("line state mismatch on line %d", line)
		}
		if scanned.Level(line) != fresh.Level(line) {
			t.Fatalf("fold level mismatch on line %d", line)
		}
	}
}

func TestLoadMissForUnknownContent(t *testing.T) {
	cache, err := statecache.New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	d := doc.New("m.vb", []byte(sampleSource))
	if err := cache.Load(d); !errors.Is(err, statecache.ErrMiss) {
		t.Fatalf("Load of unknown content: got %v, want ErrMiss", err)
	}
}

func TestLoadMissAfterEdit(t *testing.T) {
	cache, err := statecache.New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	scanned := driver.ScanBytes("m.vb", []byte(sampleSource), lexer.Options{}).Doc
	if err := cache.Save(scanned, vb.DialectDotNet); err != nil {
		t.Fatalf("Save: %v", err)
	}

	edited := doc.New("m.vb", []byte(sampleSource+"' trailing\n"))
	if err := cache.Load(edited); !errors.Is(err, statecache.ErrMiss) {
		t.Fatalf("Load of edited content: got %v, want ErrMiss", err)
	}
}

func TestSnapshotApplyHashGuard(t *testing.T) {
	scanned := driver.ScanBytes("m.vb", []byte(sampleSource), lexer.Options{}).Doc
	p := statecache.Snapshot(scanned, vb.DialectDotNet)

	other := doc.New("m.vb", []byte("x = 1\n"))
	if err := p.Apply(other); err == nil {
		t.Fatal("applying a snapshot to different content must fail")
	}
}
