package validate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wrensuite/wren/internal/config"
	"github.com/wrensuite/wren/internal/depset"
	"github.com/wrensuite/wren/internal/lockfile"
	"github.com/wrensuite/wren/internal/manifest"
	"github.com/wrensuite/wren/internal/output"
	"github.com/wrensuite/wren/internal/scanner"
)

// Runner executes the pipeline over one project directory.
type Runner struct {
	// Dir is the project root. Defaults to the working directory.
	Dir string
	// Strict adds the test/vignette/inst roots to the scan.
	Strict bool
	// Locks reads the lockfile; swap in lockfile.Unavailable to disable.
	Locks lockfile.Reader

	cfg   config.Config
	phase phase
}

// NewRunner creates a runner with the native lockfile reader.
func NewRunner(cfg config.Config) *Runner {
	return &Runner{
		Dir:   ".",
		Locks: lockfile.NewReader(),
		cfg:   cfg,
	}
}

// Run executes every pipeline stage in order and reports the result.
// Pruning runs only when validation passes, and its failure never flips
// the result.
func (r *Runner) Run() (*Result, error) {
	if err := r.enter(phaseScanning); err != nil {
		return nil, err
	}
	tokens := scanner.Scan(scanner.Options{
		Roots:      r.roots(),
		Extensions: r.cfg.Extensions,
	})
	used := scanner.Sanitize(tokens, r.cfg.Exclude)

	if err := r.enter(phaseParsing); err != nil {
		return nil, err
	}
	manifestPath := filepath.Join(r.Dir, r.cfg.ManifestPath)
	declared, err := manifest.ReadField(manifestPath, manifest.Imports)
	if err != nil {
		return nil, err
	}
	optional, err := manifest.ReadField(manifestPath, manifest.Suggests)
	if err != nil {
		return nil, err
	}
	locked, err := r.Locks.Read(filepath.Join(r.Dir, r.cfg.LockfilePath))
	if err != nil {
		return nil, err
	}

	if err := r.enter(phaseComparing); err != nil {
		return nil, err
	}
	protected := depset.New(r.cfg.Protected...)
	result := &Result{
		Used:     used,
		Declared: declared,
		Optional: optional,
		Locked:   locked,
		Missing:  Compare(used, declared),
		Unused:   declared.Diff(used).Diff(protected),
	}

	if result.Passed() {
		if err := r.enter(phasePruning); err != nil {
			return nil, err
		}
		r.pruneUnused(manifestPath, result)
	}

	if err := r.enter(phaseReported); err != nil {
		return nil, err
	}
	r.report(result)
	return result, nil
}

func (r *Runner) enter(next phase) error {
	if !r.phase.canEnter(next) {
		return fmt.Errorf("invalid phase transition from %s to %s", r.phase, next)
	}
	r.phase = next
	output.Verbose("phase: " + next.String())
	return nil
}

func (r *Runner) roots() []string {
	dirs := make([]string, 0, len(r.cfg.SourceDirs)+len(r.cfg.StrictDirs))
	dirs = append(dirs, r.cfg.SourceDirs...)
	if r.Strict {
		dirs = append(dirs, r.cfg.StrictDirs...)
	}

	roots := make([]string, len(dirs))
	for i, dir := range dirs {
		roots[i] = filepath.Join(r.Dir, dir)
	}
	return roots
}

// pruneUnused is best-effort cleanup: a manifest that cannot be
// rewritten is a warning, not a failure.
func (r *Runner) pruneUnused(path string, res *Result) {
	if res.Unused.Len() == 0 {
		return
	}
	if err := manifest.PruneFile(path, manifest.Imports, res.Unused); err != nil {
		output.Warning(fmt.Sprintf("could not prune %s: %v", r.cfg.ManifestPath, err))
		return
	}
	output.Info(fmt.Sprintf("pruned %d unused package(s) from %s: %s",
		res.Unused.Len(), r.cfg.ManifestPath, strings.Join(res.Unused.Names(), ", ")))
}
