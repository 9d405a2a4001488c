// Package manifest reads and rewrites DESCRIPTION, the DCF-format
// dependency manifest of an R project.
//
// The format rules this package relies on: a field starts at column 0
// with "Name:", continues on subsequent lines that begin with
// whitespace, and ends at the next column-0 line that begins with an
// uppercase letter. Entries are comma-separated and may carry a
// parenthesized version constraint, which is metadata only.
package manifest

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/wrensuite/wren/internal/depset"
)

// Field identifies a dependency field in the manifest.
type Field int

const (
	// Imports is the required-dependency field.
	Imports Field = iota
	// Suggests is the optional-dependency field.
	Suggests
)

func (f Field) String() string {
	switch f {
	case Imports:
		return "Imports"
	case Suggests:
		return "Suggests"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// constraintPattern matches a parenthesized version constraint, e.g.
// "(>= 1.0.0)". Constraints never nest.
var constraintPattern = regexp.MustCompile(`\([^)]*\)`)

// ParseField extracts the entries of one dependency field from manifest
// text. Continuation lines are folded in, version constraints stripped,
// and the result is sorted and deduplicated.
func ParseField(text string, field Field) depset.Set {
	prefix := field.String() + ":"

	var block []string
	accumulating := false
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, prefix):
			block = append(block, strings.TrimPrefix(line, prefix))
			accumulating = true
		case accumulating && isContinuation(line):
			block = append(block, line)
		case accumulating && startsField(line):
			accumulating = false
		}
	}

	// Join before stripping constraints so a constraint split across
	// continuation lines is removed whole.
	joined := constraintPattern.ReplaceAllString(strings.Join(block, " "), "")
	joined = strings.Join(strings.Fields(joined), " ")

	entries := depset.New()
	for _, entry := range strings.Split(joined, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			entries.Add(entry)
		}
	}
	return entries
}

// ReadField parses one dependency field from the manifest at path.
// A missing manifest means nothing is declared, not an error.
func ReadField(path string, field Field) (depset.Set, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return depset.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseField(string(data), field), nil
}

func isContinuation(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

func startsField(line string) bool {
	return len(line) > 0 && line[0] >= 'A' && line[0] <= 'Z'
}

// entryName strips an entry's version constraint and surrounding space,
// leaving the bare package name.
func entryName(entry string) string {
	name := constraintPattern.ReplaceAllString(entry, "")
	return strings.TrimSpace(name)
}
