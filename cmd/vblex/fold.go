package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vblex/internal/driver"
	"vblex/internal/render"
)

var foldCmd = &cobra.Command{
	Use:   "fold [flags] file",
	Short: "Scan a source file and print its fold structure",
	Args:  cobra.ExactArgs(1),
	RunE:  runFold,
}

func runFold(cmd *cobra.Command, args []string) error {
	path := args[0]
	opts, err := resolveOptions(cmd, path)
	if err != nil {
		return err
	}
	result, err := driver.ScanFile(path, opts)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", path, err)
	}
	return render.FoldDump(os.Stdout, result.Doc)
}
