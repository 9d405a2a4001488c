package lockfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLockfile = `{
  "R": {"Version": "4.3.2"},
  "Packages": {
    "dplyr":   {"Package": "dplyr", "Version": "1.1.4", "Source": "Repository"},
    "ggplot2": {"Package": "ggplot2", "Version": "3.5.0", "Source": "Repository"},
    "renv":    {"Package": "renv", "Version": "1.0.7", "Source": "Repository"}
  }
}`

func writeLockfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "renv.lock")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestJSON_Read(t *testing.T) {
	locked, err := JSON{}.Read(writeLockfile(t, sampleLockfile))
	require.NoError(t, err)
	assert.Equal(t, []string{"dplyr", "ggplot2", "renv"}, locked.Names())
}

func TestJSON_MissingLockfile(t *testing.T) {
	locked, err := JSON{}.Read(filepath.Join(t.TempDir(), "renv.lock"))
	require.NoError(t, err)
	assert.Zero(t, locked.Len())
}

func TestJSON_MalformedJSON(t *testing.T) {
	locked, err := JSON{}.Read(writeLockfile(t, "{not json"))
	require.NoError(t, err, "a broken lockfile must not abort the run")
	assert.Zero(t, locked.Len())
}

func TestJSON_MissingPackagesMember(t *testing.T) {
	locked, err := JSON{}.Read(writeLockfile(t, `{"R": {"Version": "4.3.2"}}`))
	require.NoError(t, err)
	assert.Zero(t, locked.Len())
}

func TestJSON_PackagesWrongType(t *testing.T) {
	locked, err := JSON{}.Read(writeLockfile(t, `{"Packages": ["dplyr"]}`))
	require.NoError(t, err)
	assert.Zero(t, locked.Len())
}

func TestUnavailable_Read(t *testing.T) {
	locked, err := Unavailable{}.Read("renv.lock")
	require.NoError(t, err)
	assert.Zero(t, locked.Len())
}

func TestNewReader(t *testing.T) {
	_, ok := NewReader().(JSON)
	assert.True(t, ok)
}
