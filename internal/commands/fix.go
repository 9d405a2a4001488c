package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wrensuite/wren/internal/config"
	"github.com/wrensuite/wren/internal/input"
	"github.com/wrensuite/wren/internal/manifest"
	"github.com/wrensuite/wren/internal/output"
	"github.com/wrensuite/wren/internal/scanner"
	"github.com/wrensuite/wren/internal/validate"
)

// FixCmd creates and returns the 'fix' command
func FixCmd() *cobra.Command {
	var strict bool
	var yes bool

	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Add packages used in source but missing from DESCRIPTION",
		Long: `Computes the same missing set as 'wren check' and appends it to
the Imports field, creating DESCRIPTION when absent. Remember to run
renv::snapshot() afterwards so the lockfile catches up.

Example:
  wren fix
  wren fix --strict --yes`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(".")
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			roots := cfg.SourceDirs
			if strict {
				roots = append(roots, cfg.StrictDirs...)
			}
			tokens := scanner.Scan(scanner.Options{Roots: roots, Extensions: cfg.Extensions})
			used := scanner.Sanitize(tokens, cfg.Exclude)

			declared, err := manifest.ReadField(cfg.ManifestPath, manifest.Imports)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			missing := validate.Compare(used, declared)
			if missing.Len() == 0 {
				output.Success("Nothing to fix: every used package is declared")
				return
			}

			output.Info(fmt.Sprintf("%d package(s) to add to %s:", missing.Len(), cfg.ManifestPath))
			for _, name := range missing.Names() {
				output.Step(name)
			}

			if !yes && !input.Confirm(fmt.Sprintf("Add %d package(s) to Imports?", missing.Len()), true) {
				output.Info("Aborted, nothing written")
				return
			}

			if err := manifest.AddMissing(cfg.ManifestPath, manifest.Imports, missing); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Success(fmt.Sprintf("Added %d package(s) to %s", missing.Len(), cfg.ManifestPath))
			output.Info("Next steps:")
			output.Step("run renv::snapshot() to update renv.lock")
			output.Step("run: wren check")
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Also scan test, vignette, and inst directories")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
