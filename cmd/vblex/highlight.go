package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vblex/internal/driver"
	"vblex/internal/render"
	"vblex/internal/statecache"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [flags] file...",
	Short: "Scan source files and print them with style annotations",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHighlight,
}

func init() {
	highlightCmd.Flags().String("format", "pretty", "output format (pretty|runs|json)")
	highlightCmd.Flags().String("cache-dir", "", "reuse scan snapshots from this directory")
}

func runHighlight(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	cacheDir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return fmt.Errorf("failed to get cache-dir flag: %w", err)
	}
	var cache *statecache.Cache
	if cacheDir != "" {
		if cache, err = statecache.New(cacheDir); err != nil {
			return err
		}
	}

	for _, path := range args {
		opts, err := resolveOptions(cmd, path)
		if err != nil {
			return err
		}
		var result *driver.Result
		if cache != nil {
			result, err = driver.ScanFileCached(path, opts, cache)
		} else {
			result, err = driver.ScanFile(path, opts)
		}
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", path, err)
		}

		switch format {
		case "pretty":
			err = render.Highlight(os.Stdout, result.Doc, useColor(cmd, os.Stdout))
		case "runs":
			err = render.Runs(os.Stdout, result.Doc)
		case "json":
			err = render.JSON(os.Stdout, result.Doc, result.Dialect)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
