package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/wrensuite/wren/internal/depset"
)

// Prune removes the unused entries from one field block of manifest
// text. Removal works at entry granularity: a line whose entries are all
// unused is dropped whole, a mixed line is re-emitted with its surviving
// entries, and every line without an unused entry — inside the block or
// out — is preserved byte-for-byte. The one exception is a dangling
// trailing comma left on the block's final line after removals, which is
// stripped so the manifest stays well-formed.
//
// Returns the rewritten text and whether anything changed.
func Prune(text string, field Field, unused depset.Set) (string, bool) {
	lines := strings.Split(text, "\n")
	start, end := fieldBlock(lines, field)
	if start < 0 || unused.Len() == 0 {
		return text, false
	}

	prefix := field.String() + ":"
	changed := false
	var block []string

	for i := start; i < end; i++ {
		line := lines[i]

		var lead, content string
		if i == start {
			lead = prefix
			content = line[len(prefix):]
		} else {
			content = strings.TrimLeft(line, " \t")
			lead = line[:len(line)-len(content)]
		}

		entries := splitEntries(content)
		var kept []string
		for _, entry := range entries {
			if !unused.Contains(entryName(entry)) {
				kept = append(kept, entry)
			}
		}

		if len(kept) == len(entries) {
			block = append(block, line)
			continue
		}
		changed = true

		if len(kept) == 0 {
			// The header survives even when every entry on it is pruned;
			// a bare continuation line does not.
			if i == start {
				block = append(block, prefix)
			}
			continue
		}

		rebuilt := lead
		if i == start {
			rebuilt += " "
		}
		rebuilt += strings.Join(kept, ", ")
		if strings.HasSuffix(strings.TrimRight(content, " \t"), ",") {
			rebuilt += ","
		}
		block = append(block, rebuilt)
	}

	if !changed {
		return text, false
	}

	// Removing the tail of the block can leave the new last line with a
	// trailing comma; strip it.
	for j := len(block) - 1; j >= 0; j-- {
		trimmed := strings.TrimRight(block[j], " \t")
		if trimmed == "" || trimmed == prefix {
			break
		}
		if strings.HasSuffix(trimmed, ",") {
			block[j] = strings.TrimSuffix(trimmed, ",")
		}
		break
	}

	var out []string
	out = append(out, lines[:start]...)
	out = append(out, block...)
	out = append(out, lines[end:]...)
	return strings.Join(out, "\n"), true
}

// PruneFile rewrites the manifest at path, removing the unused entries
// from the given field. Nothing is written — and no timestamp is touched
// — when there is nothing to remove.
func PruneFile(path string, field Field, unused depset.Set) error {
	if unused.Len() == 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	pruned, changed := Prune(string(data), field, unused)
	if !changed {
		return nil
	}
	return writeAtomic(path, []byte(pruned))
}

// fieldBlock locates the lines of one field: the header line plus its
// contiguous continuation lines. Returns start = -1 when the field is
// absent; end is exclusive.
func fieldBlock(lines []string, field Field) (start, end int) {
	prefix := field.String() + ":"
	start = -1
	for i, line := range lines {
		if strings.HasPrefix(line, prefix) {
			start = i
			break
		}
	}
	if start < 0 {
		return -1, -1
	}
	end = start + 1
	for end < len(lines) && isContinuation(lines[end]) {
		end++
	}
	return start, end
}

// splitEntries breaks one line's content into trimmed comma-separated
// entries, constraints included.
func splitEntries(content string) []string {
	var entries []string
	for _, entry := range strings.Split(content, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}
