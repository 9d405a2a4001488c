package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/wrensuite/wren/internal/depset"
)

// AddMissing appends the given packages to a dependency field, one per
// line, creating the field — or the manifest itself — when absent. The
// write is atomic, same discipline as the pruner.
func AddMissing(path string, field Field, missing depset.Set) error {
	if missing.Len() == 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	return writeAtomic(path, []byte(addEntries(string(data), field, missing)))
}

func addEntries(text string, field Field, missing depset.Set) string {
	prefix := field.String() + ":"
	names := missing.Names()

	lines := strings.Split(text, "\n")
	start, end := fieldBlock(lines, field)

	if start < 0 {
		block := []string{prefix}
		block = append(block, formatEntries(names)...)
		out := strings.TrimRight(text, "\n")
		if out != "" {
			out += "\n"
		}
		return out + strings.Join(block, "\n") + "\n"
	}

	out := make([]string, 0, len(lines)+len(names))
	out = append(out, lines[:end]...)

	// The current last entry line needs a trailing comma before more
	// entries follow it.
	for j := end - 1; j >= start; j-- {
		trimmed := strings.TrimRight(out[j], " \t")
		if trimmed == "" {
			continue
		}
		if trimmed != prefix && !strings.HasSuffix(trimmed, ",") {
			out[j] = trimmed + ","
		}
		break
	}

	out = append(out, formatEntries(names)...)
	out = append(out, lines[end:]...)
	return strings.Join(out, "\n")
}

func formatEntries(names []string) []string {
	entries := make([]string, len(names))
	for i, name := range names {
		entry := "    " + name
		if i < len(names)-1 {
			entry += ","
		}
		entries[i] = entry
	}
	return entries
}
