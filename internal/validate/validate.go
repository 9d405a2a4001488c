// Package validate sequences the dependency-consistency pipeline: scan
// source for used packages, parse the manifest and lockfile, compare,
// prune, and report.
package validate

import "github.com/wrensuite/wren/internal/depset"

// Result is the outcome of one validation run. It is rebuilt from
// scratch every run and never persisted.
type Result struct {
	Used     depset.Set // packages referenced in source
	Declared depset.Set // manifest Imports
	Optional depset.Set // manifest Suggests
	Locked   depset.Set // lockfile Packages keys, informational only
	Missing  depset.Set // used but not declared
	Unused   depset.Set // declared but neither used nor protected
}

// Compare computes the used-but-undeclared set. Membership is exact
// canonical-name equality; there is no fuzzy or case-insensitive match.
func Compare(used, declared depset.Set) depset.Set {
	return used.Diff(declared)
}

// Passed reports whether validation succeeded: every used package is
// declared. The locked set never influences this.
func (r *Result) Passed() bool {
	return r.Missing.Len() == 0
}
