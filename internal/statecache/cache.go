// Package statecache persists a document's scan annotations between editor
// sessions: per-character styles, per-line state words and fold levels,
// keyed by the content hash so a stale snapshot can never be applied to
// edited text.
package statecache

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"vblex/internal/doc"
	"vblex/internal/vb"
)

// Bump when the payload layout changes; mismatched snapshots are discarded.
const schemaVersion uint16 = 1

// Cache stores snapshots under a directory, one file per content hash.
// Safe for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Payload is the serialized snapshot.
type Payload struct {
	Schema  uint16
	Hash    [32]byte
	Dialect uint8

	Styles     []uint8
	LineStates []int32
	Levels     []int32
}

// ErrMiss is returned when no usable snapshot exists for a document.
var ErrMiss = errors.New("statecache: no snapshot")

// New creates a cache rooted at dir, creating the directory if needed.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(hash [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".vblexstate")
}

// Snapshot captures the document's current annotations.
func Snapshot(d *doc.Document, dialect vb.Dialect) *Payload {
	styles := d.Styles()
	states := d.LineStates()
	levels := d.Levels()

	p := &Payload{
		Schema:     schemaVersion,
		Hash:       d.Hash,
		Dialect:    uint8(dialect),
		Styles:     make([]uint8, len(styles)),
		LineStates: make([]int32, len(states)),
		Levels:     make([]int32, len(levels)),
	}
	for i, s := range styles {
		p.Styles[i] = uint8(s)
	}
	for i, s := range states {
		p.LineStates[i] = int32(s)
	}
	for i, l := range levels {
		p.Levels[i] = int32(l)
	}
	return p
}

// Apply restores a payload onto a document with matching content.
func (p *Payload) Apply(d *doc.Document) error {
	if p.Schema != schemaVersion {
		return fmt.Errorf("statecache: schema %d does not match %d", p.Schema, schemaVersion)
	}
	if p.Hash != d.Hash {
		return fmt.Errorf("statecache: content hash mismatch")
	}
	styles := make([]vb.Style, len(p.Styles))
	for i, s := range p.Styles {
		styles[i] = vb.Style(s)
	}
	states := make([]vb.LineState, len(p.LineStates))
	for i, s := range p.LineStates {
		states[i] = vb.LineState(s)
	}
	levels := make([]vb.FoldLevel, len(p.Levels))
	for i, l := range p.Levels {
		levels[i] = vb.FoldLevel(l)
	}
	return d.Restore(styles, states, levels)
}

// Save writes the document's annotations to disk.
func (c *Cache) Save(d *doc.Document, dialect vb.Dialect) error {
	data, err := msgpack.Marshal(Snapshot(d, dialect))
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	path := c.pathFor(d.Hash)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to move snapshot into place: %w", err)
	}
	return nil
}

// Load restores a document's annotations from a previous Save. Returns
// ErrMiss when no snapshot for the exact content exists.
func (c *Cache) Load(d *doc.Document) error {
	c.mu.RLock()
	data, err := os.ReadFile(c.pathFor(d.Hash))
	c.mu.RUnlock()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrMiss
		}
		return fmt.Errorf("failed to read snapshot: %w", err)
	}
	var p Payload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		// A corrupt or older-schema snapshot is a miss, not a failure.
		return ErrMiss
	}
	if err := p.Apply(d); err != nil {
		return ErrMiss
	}
	return nil
}
