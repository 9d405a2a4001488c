package commands

import (
	"github.com/spf13/cobra"

	"github.com/wrensuite/wren"
	"github.com/wrensuite/wren/internal/output"
)

// RootCmd creates and returns the root command for the wren CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "wren",
		Short: "Dependency-consistency gate for renv-managed R projects",
		Long: `Wren proves that every package your R code uses is declared in
DESCRIPTION and resolvable in renv.lock, without ever starting R.

Designed as a pre-commit/CI gate:
• Scans source for library()/require() calls, :: access, and roxygen imports
• Compares against the Imports field and the lockfile
• Prunes Imports entries your code no longer references

Learn more: https://github.com/wrensuite/wren`,
		Version: wren.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
