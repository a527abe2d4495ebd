// Package config loads scanner settings from a vblex.toml file: the dialect
// to scan as and optional extensions to the built-in keyword sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"vblex/internal/vb"
)

// FileName is the manifest searched for upward from the start directory.
const FileName = "vblex.toml"

// Config is the decoded manifest.
type Config struct {
	Dialect  string         `toml:"dialect"`
	Keywords KeywordsConfig `toml:"keywords"`
}

// KeywordsConfig extends the six built-in keyword sets; each field is a
// whitespace-separated word list.
type KeywordsConfig struct {
	Core         string `toml:"core"`
	Types        string `toml:"types"`
	Library      string `toml:"library"`
	Preprocessor string `toml:"preprocessor"`
	Attributes   string `toml:"attributes"`
	Constants    string `toml:"constants"`
}

// Default returns the configuration used when no manifest is present.
func Default() Config {
	return Config{Dialect: "vbnet"}
}

// Load decodes a manifest file.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode %q: %w", path, err)
	}
	return cfg, nil
}

// Find walks upward from startDir looking for a manifest. The second return
// value reports whether one was found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest manifest above startDir, or the defaults when
// there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return Default(), err
	}
	return Load(path)
}

// ResolveDialect parses the configured dialect name.
func (c Config) ResolveDialect() (vb.Dialect, error) {
	return vb.ParseDialect(c.Dialect)
}

// ResolveKeywords returns the stock keyword sets extended with the
// manifest's additions.
func (c Config) ResolveKeywords() *vb.KeywordSets {
	kw := vb.DefaultKeywords()
	kw.Core.Extend(c.Keywords.Core)
	kw.Types.Extend(c.Keywords.Types)
	kw.Library.Extend(c.Keywords.Library)
	kw.Preprocessor.Extend(c.Keywords.Preprocessor)
	kw.Attributes.Extend(c.Keywords.Attributes)
	kw.Constants.Extend(c.Keywords.Constants)
	return kw
}
