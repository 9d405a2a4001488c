// Package lockfile extracts the set of resolved packages from renv.lock.
//
// The lockfile is advisory: its contents are reported alongside the
// validation result but never decide pass/fail, so every failure mode
// here degrades to an empty set with a warning instead of an error.
package lockfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/wrensuite/wren/internal/depset"
	"github.com/wrensuite/wren/internal/output"
)

// Reader extracts the locked package set from a lockfile on disk.
type Reader interface {
	Read(path string) (depset.Set, error)
}

// lockfileSchema is the minimal shape a usable renv.lock must have: a
// top-level object whose Packages member is itself an object. The
// Packages keys are the locked set; everything else is ignored.
const lockfileSchema = `{
	"type": "object",
	"required": ["Packages"],
	"properties": {
		"Packages": {"type": "object"}
	}
}`

// JSON reads the lockfile with the native JSON decoder.
type JSON struct{}

// Read returns the keys of the lockfile's Packages object. A missing,
// unreadable, or ill-shaped lockfile yields an empty set, never an
// error.
func (JSON) Read(path string) (depset.Set, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return depset.New(), nil
	}
	if err != nil {
		output.Warning(fmt.Sprintf("cannot read %s: %v; locked set unavailable", path, err))
		return depset.New(), nil
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(lockfileSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		output.Warning(fmt.Sprintf("%s is not valid JSON; locked set unavailable", path))
		return depset.New(), nil
	}
	if !result.Valid() {
		output.Warning(fmt.Sprintf("%s has no Packages object; locked set unavailable", path))
		return depset.New(), nil
	}

	var doc struct {
		Packages map[string]json.RawMessage `json:"Packages"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		output.Warning(fmt.Sprintf("cannot decode %s: %v; locked set unavailable", path, err))
		return depset.New(), nil
	}

	locked := depset.New()
	for name := range doc.Packages {
		locked.Add(name)
	}
	return locked, nil
}

// Unavailable is the degraded reader for environments with no JSON
// capability wired in. It contributes nothing beyond install guidance.
type Unavailable struct{}

// Read warns once about the missing capability and returns an empty set.
func (Unavailable) Read(path string) (depset.Set, error) {
	output.Warning("no JSON reader available; install wren with lockfile support or add jq to PATH to include " + path + " in reports")
	return depset.New(), nil
}

// NewReader returns the native lockfile reader.
func NewReader() Reader {
	return JSON{}
}
