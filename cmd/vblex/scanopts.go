package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"vblex/internal/config"
	"vblex/internal/lexer"
)

// resolveOptions builds lexer options for a target file: the nearest
// vblex.toml (if any) supplies the dialect and keyword extensions, and the
// --dialect flag overrides the manifest.
func resolveOptions(cmd *cobra.Command, path string) (lexer.Options, error) {
	cfg, err := config.Discover(filepath.Dir(path))
	if err != nil {
		return lexer.Options{}, fmt.Errorf("failed to load config: %w", err)
	}

	if override, _ := cmd.Root().PersistentFlags().GetString("dialect"); override != "" {
		cfg.Dialect = override
	}
	dialect, err := cfg.ResolveDialect()
	if err != nil {
		return lexer.Options{}, err
	}
	return lexer.Options{
		Dialect:  dialect,
		Keywords: cfg.ResolveKeywords(),
	}, nil
}
