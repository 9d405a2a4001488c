package scanner

import (
	"regexp"
	"strings"

	"github.com/wrensuite/wren/internal/depset"
)

// basePackages are the packages bundled with every R distribution. They
// are always loadable, never belong in Imports, and are excluded from
// the used-set.
const basePackages = "base compiler datasets graphics grDevices grid methods parallel splines stats stats4 tcltk tools translations utils"

// namePattern is the canonical package-name grammar: a leading letter,
// then letters, digits, or dots, total length at least two.
var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9.]+$`)

var baseSet = depset.New(strings.Fields(basePackages)...)

// Sanitize converts raw scanner tokens into the canonical used-set:
// too-short and malformed names are dropped, base packages and any
// configured extra exclusions are removed, and the result is
// deduplicated. Idempotent over its own output.
func Sanitize(tokens []string, exclude []string) depset.Set {
	excluded := baseSet.Union(depset.New(exclude...))

	used := depset.New()
	for _, token := range tokens {
		if len(token) < 2 {
			continue
		}
		if excluded.Contains(token) {
			continue
		}
		if !namePattern.MatchString(token) {
			continue
		}
		if strings.HasPrefix(token, ".") || strings.HasSuffix(token, ".") {
			continue
		}
		used.Add(token)
	}
	return used
}
