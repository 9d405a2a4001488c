package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrensuite/wren/internal/config"
)

// newTestRunner builds a runner over dir with default configuration.
func newTestRunner(t *testing.T, dir string) *Runner {
	t.Helper()
	cfg, err := config.Load(dir)
	require.NoError(t, err)

	r := NewRunner(cfg)
	r.Dir = dir
	return r
}

func writeProjectFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRun_MissingManifest(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "R/analysis.R", "alpha::f()\n")

	res, err := newTestRunner(t, dir).Run()
	require.NoError(t, err)

	assert.Zero(t, res.Declared.Len())
	assert.Equal(t, []string{"alpha"}, res.Used.Names())
	assert.Equal(t, []string{"alpha"}, res.Missing.Names())
	assert.False(t, res.Passed())
}

func TestRun_VersionConstraintScenario(t *testing.T) {
	dir := t.TempDir()
	manifestText := "Imports: renv, dplyr (>= 1.0.0), ggplot2\n"
	writeProjectFile(t, dir, "DESCRIPTION", manifestText)
	writeProjectFile(t, dir, "R/analysis.R", "dplyr::mutate(df)\nggplot2::ggplot(df)\n")

	res, err := newTestRunner(t, dir).Run()
	require.NoError(t, err)

	assert.Equal(t, []string{"dplyr", "ggplot2", "renv"}, res.Declared.Names())
	assert.Equal(t, []string{"dplyr", "ggplot2"}, res.Used.Names())
	assert.True(t, res.Passed())
	assert.Zero(t, res.Unused.Len(), "renv is protected")

	// Manifest untouched: renv stays even though it is never used.
	data, err := os.ReadFile(filepath.Join(dir, "DESCRIPTION"))
	require.NoError(t, err)
	assert.Equal(t, manifestText, string(data))
}

func TestRun_PrunesUnprotectedUnused(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "DESCRIPTION", "Imports: renv, dplyr, stale\n")
	writeProjectFile(t, dir, "R/analysis.R", "dplyr::mutate(df)\n")

	res, err := newTestRunner(t, dir).Run()
	require.NoError(t, err)
	require.True(t, res.Passed())
	assert.Equal(t, []string{"stale"}, res.Unused.Names())

	data, err := os.ReadFile(filepath.Join(dir, "DESCRIPTION"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.Contains(t, string(data), "renv")
	assert.Contains(t, string(data), "dplyr")
}

func TestRun_NoPruneOnFailedValidation(t *testing.T) {
	dir := t.TempDir()
	manifestText := "Imports: stale\n"
	writeProjectFile(t, dir, "DESCRIPTION", manifestText)
	writeProjectFile(t, dir, "R/analysis.R", "httr::GET(url)\n")

	res, err := newTestRunner(t, dir).Run()
	require.NoError(t, err)
	require.False(t, res.Passed())

	// The unused entry is reported but not removed.
	assert.Equal(t, []string{"stale"}, res.Unused.Names())
	data, err := os.ReadFile(filepath.Join(dir, "DESCRIPTION"))
	require.NoError(t, err)
	assert.Equal(t, manifestText, string(data))
}

func TestRun_StrictMode(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "DESCRIPTION", "Imports: dplyr\n")
	writeProjectFile(t, dir, "R/analysis.R", "dplyr::mutate(df)\n")
	writeProjectFile(t, dir, "tests/testthat/test-analysis.R", "testthat::expect_equal(1, 1)\n")

	standard, err := newTestRunner(t, dir).Run()
	require.NoError(t, err)
	assert.True(t, standard.Passed(), "test-only usage is invisible in standard mode")

	strict := newTestRunner(t, dir)
	strict.Strict = true
	res, err := strict.Run()
	require.NoError(t, err)
	assert.False(t, res.Passed())
	assert.Equal(t, []string{"testthat"}, res.Missing.Names())
}

func TestRun_LockedSetReported(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "DESCRIPTION", "Imports: dplyr\n")
	writeProjectFile(t, dir, "R/analysis.R", "dplyr::mutate(df)\n")
	writeProjectFile(t, dir, "renv.lock", `{"Packages": {"dplyr": {"Version": "1.1.4"}, "renv": {"Version": "1.0.7"}}}`)

	res, err := newTestRunner(t, dir).Run()
	require.NoError(t, err)
	assert.Equal(t, []string{"dplyr", "renv"}, res.Locked.Names())
	assert.True(t, res.Passed())
}

func TestRun_SecondRunFindsNothingUnused(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "DESCRIPTION", "Imports:\n    renv,\n    dplyr,\n    stale\n")
	writeProjectFile(t, dir, "R/analysis.R", "library(dplyr)\n")

	first, err := newTestRunner(t, dir).Run()
	require.NoError(t, err)
	require.Equal(t, []string{"stale"}, first.Unused.Names())

	second, err := newTestRunner(t, dir).Run()
	require.NoError(t, err)
	assert.Zero(t, second.Unused.Len())
	assert.True(t, second.Passed())
}
