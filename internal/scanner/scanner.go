// Package scanner extracts external package references from R source
// trees. It walks a configured set of roots, matches the four reference
// forms R code uses (library/require calls, :: access, and the two
// roxygen import annotations), and hands the raw tokens to Sanitize for
// canonicalization.
package scanner

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/wrensuite/wren/internal/output"
)

// defaultIgnoreDirs are directories never worth scanning for R source.
var defaultIgnoreDirs = []string{
	"renv", "packrat", ".git", ".svn", ".Rproj.user", "node_modules",
}

// Options configures a scan. Roots that do not exist are skipped
// silently; files are matched against Extensions case-insensitively.
type Options struct {
	Roots      []string
	Extensions []string
}

// fileKind classifies scannable files by extension.
type fileKind int

const (
	kindUnknown fileKind = iota
	kindScript           // plain R source (.R, .r)
	kindNotebook         // literate source with embedded chunks (.Rmd, .qmd)
)

func classify(path string) fileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".r":
		return kindScript
	case ".rmd", ".qmd":
		return kindNotebook
	default:
		return kindUnknown
	}
}

// The four extraction patterns, applied per line.
var (
	// library(pkg), require("pkg"), requireNamespace('pkg', quietly = TRUE).
	// A closing parenthesis is required so partial statements don't match.
	callPattern = regexp.MustCompile(`\b(?:library|require|requireNamespace)\s*\(\s*["']?([A-Za-z][A-Za-z0-9.]*)["']?[^()]*\)`)

	// pkg::fn and pkg:::fn.
	namespacePattern = regexp.MustCompile(`([A-Za-z][A-Za-z0-9.]*):{2,3}`)

	// roxygen single-package import: #' @import pkg
	importPattern = regexp.MustCompile(`#'\s*@import\s+([A-Za-z][A-Za-z0-9.]*)\s*$`)

	// roxygen namespace-qualified import: #' @importFrom pkg symbol
	importFromPattern = regexp.MustCompile(`#'\s*@importFrom\s+([A-Za-z][A-Za-z0-9.]*)\b`)
)

// Scan walks every configured root and returns the raw tokens found, in
// traversal order. Duplicates are preserved; Sanitize deduplicates.
// Unreadable files are reported and skipped, never fatal.
func Scan(opts Options) []string {
	var tokens []string

	for _, root := range opts.Roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			continue
		}

		filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				output.Warning(fmt.Sprintf("skipping %s: %v", path, err))
				return nil
			}
			if info.IsDir() {
				for _, ignore := range defaultIgnoreDirs {
					if info.Name() == ignore {
						return filepath.SkipDir
					}
				}
				return nil
			}
			if !matchesExtension(path, opts.Extensions) {
				return nil
			}

			fileTokens, err := scanFile(path)
			if err != nil {
				output.Warning(fmt.Sprintf("skipping %s: %v", path, err))
				return nil
			}
			tokens = append(tokens, fileTokens...)
			return nil
		})
	}

	return tokens
}

func matchesExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, want := range extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

func scanFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	output.Verbose("scanning " + path)

	var tokens []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		tokens = append(tokens, scanLine(sc.Text(), classify(path))...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// scanLine applies the extraction patterns to one line of source.
// Scripts and notebooks carry the same reference forms today; the kind
// switch keeps the dispatch exhaustive when that changes.
func scanLine(line string, kind fileKind) []string {
	switch kind {
	case kindScript, kindNotebook:
		return extract(line)
	default:
		return nil
	}
}

func extract(line string) []string {
	var tokens []string
	for _, m := range callPattern.FindAllStringSubmatch(line, -1) {
		tokens = append(tokens, m[1])
	}
	for _, m := range namespacePattern.FindAllStringSubmatch(line, -1) {
		tokens = append(tokens, m[1])
	}
	if m := importPattern.FindStringSubmatch(line); m != nil {
		tokens = append(tokens, m[1])
	}
	if m := importFromPattern.FindStringSubmatch(line); m != nil {
		tokens = append(tokens, m[1])
	}
	return tokens
}
