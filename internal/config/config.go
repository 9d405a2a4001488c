// Package config loads wren.yml, the per-project configuration file.
// Every key has a sensible default, so projects without a config file
// get the standard renv layout.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every knob the validation pipeline reads. It is passed
// explicitly into the stages that need it; nothing here is process-wide
// state.
type Config struct {
	SourceDirs   []string // roots scanned in standard mode
	StrictDirs   []string // extra roots scanned with --strict
	Extensions   []string // file extensions eligible for scanning
	Exclude      []string // extra names treated like base packages
	ManifestPath string
	LockfilePath string
	Protected    []string // names the pruner must never remove
}

// Load reads wren.yml from dir, falling back to defaults for any key
// not set. A missing config file is fine; a malformed one is not.
func Load(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("wren")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("scan.dirs", []string{"R", "scripts"})
	v.SetDefault("scan.strict_dirs", []string{"tests", "vignettes", "inst"})
	v.SetDefault("scan.extensions", []string{".R", ".r", ".Rmd", ".qmd"})
	v.SetDefault("scan.exclude", []string{})
	v.SetDefault("manifest.path", "DESCRIPTION")
	v.SetDefault("lockfile.path", "renv.lock")
	v.SetDefault("prune.protected", []string{"renv"})

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading wren.yml: %w", err)
		}
	}

	return Config{
		SourceDirs:   v.GetStringSlice("scan.dirs"),
		StrictDirs:   v.GetStringSlice("scan.strict_dirs"),
		Extensions:   v.GetStringSlice("scan.extensions"),
		Exclude:      v.GetStringSlice("scan.exclude"),
		ManifestPath: v.GetString("manifest.path"),
		LockfilePath: v.GetString("lockfile.path"),
		Protected:    v.GetStringSlice("prune.protected"),
	}, nil
}
