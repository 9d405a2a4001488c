package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wrensuite/wren/internal/config"
	"github.com/wrensuite/wren/internal/output"
	"github.com/wrensuite/wren/internal/validate"
)

// CheckCmd creates and returns the 'check' command
func CheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate that every package used in source is declared",
		Long: `Scans the project's source directories for package references,
compares them against the Imports field of DESCRIPTION, and reports
anything used but undeclared. When validation passes, Imports entries
no longer referenced by code are pruned (protected packages excepted).

Exit status is 0 when every used package is declared, 1 otherwise.

Example:
  wren check
  wren check --strict`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(".")
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			runner := validate.NewRunner(cfg)
			runner.Strict = strict

			result, err := runner.Run()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			if !result.Passed() {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Also scan test, vignette, and inst directories")

	return cmd
}
