package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vblex/internal/driver"
	"vblex/internal/vb"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] dir",
	Short: "Scan every Basic source file under a directory and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	dir := args[0]
	opts, err := resolveOptions(cmd, dir)
	if err != nil {
		return err
	}
	results, err := driver.ScanDir(cmd.Context(), dir, opts)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	for _, res := range results {
		d := res.Doc
		headers := 0
		maxDepth := 0
		for line := 0; line < d.LineCount(); line++ {
			lev := d.Level(line)
			if lev.IsHeader() {
				headers++
			}
			if depth := lev.Level() - vb.FoldLevelBase; depth > maxDepth {
				maxDepth = depth
			}
		}
		fmt.Fprintf(os.Stdout, "%s: %d lines, %d fold headers, max depth %d\n",
			d.Path, d.LineCount(), headers, maxDepth)
	}
	return nil
}
