package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"vblex/internal/driver"
	"vblex/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view [flags] file",
	Short: "Open a scanned source file in an interactive viewer",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func runView(cmd *cobra.Command, args []string) error {
	path := args[0]
	opts, err := resolveOptions(cmd, path)
	if err != nil {
		return err
	}
	result, err := driver.ScanFile(path, opts)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", path, err)
	}

	model := ui.NewViewer(fmt.Sprintf("%s (%s)", path, result.Dialect), result.Doc)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("viewer failed: %w", err)
	}
	return nil
}
