package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vblex/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "vblex",
	Short: "Syntax scanner and code folder for the Basic family",
	Long:  `vblex styles and folds VB.NET, VBA and VBScript source the way an editor would`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(foldCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("dialect", "", "dialect override (vbnet|vba|vbscript)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
