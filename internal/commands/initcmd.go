package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wrensuite/wren/internal/output"
)

// defaultConfig mirrors the configuration defaults so 'wren init' writes
// a file users can edit instead of consulting the docs.
type defaultConfig struct {
	Scan struct {
		Dirs       []string `yaml:"dirs"`
		StrictDirs []string `yaml:"strict_dirs"`
		Extensions []string `yaml:"extensions"`
		Exclude    []string `yaml:"exclude"`
	} `yaml:"scan"`
	Manifest struct {
		Path string `yaml:"path"`
	} `yaml:"manifest"`
	Lockfile struct {
		Path string `yaml:"path"`
	} `yaml:"lockfile"`
	Prune struct {
		Protected []string `yaml:"protected"`
	} `yaml:"prune"`
}

// InitCmd creates and returns the 'init' command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default wren.yml to the current directory",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := os.Stat("wren.yml"); err == nil {
				output.Error("wren.yml already exists")
				os.Exit(1)
			}

			var cfg defaultConfig
			cfg.Scan.Dirs = []string{"R", "scripts"}
			cfg.Scan.StrictDirs = []string{"tests", "vignettes", "inst"}
			cfg.Scan.Extensions = []string{".R", ".r", ".Rmd", ".qmd"}
			cfg.Scan.Exclude = []string{}
			cfg.Manifest.Path = "DESCRIPTION"
			cfg.Lockfile.Path = "renv.lock"
			cfg.Prune.Protected = []string{"renv"}

			data, err := yaml.Marshal(&cfg)
			if err != nil {
				output.Error(fmt.Sprintf("rendering config: %v", err))
				os.Exit(1)
			}

			if err := os.WriteFile("wren.yml", data, 0644); err != nil {
				output.Error(fmt.Sprintf("writing wren.yml: %v", err))
				os.Exit(1)
			}

			output.Success("Created wren.yml")
			output.Info("Next steps:")
			output.Step("adjust scan.dirs to match your project layout")
			output.Step("run: wren check")
		},
	}

	return cmd
}
