package conflict

import (
	"strings"

	"github.com/arthur-debert/modlauncher/pkg/types"
)

// Parse parses conflict-file text into entries in file order, duplicates
// included. Malformed lines are skipped. Input that ends inside an open
// brace block yields the partial value.
func Parse(text string) []types.ConflictEntry {
	var entries []types.ConflictEntry

	lines := splitLines(text)
	for i := 0; i < len(lines); i++ {
		s := strings.TrimSpace(lines[i])
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}

		key, value, found := strings.Cut(s, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		depth := braceBalance(value)
		if depth > 0 {
			var b strings.Builder
			b.WriteString(value)
			for depth > 0 && i+1 < len(lines) {
				i++
				b.WriteByte('\n')
				b.WriteString(lines[i])
				depth += braceBalance(lines[i])
			}
			value = strings.TrimSpace(b.String())
		}

		entries = append(entries, types.ConflictEntry{Key: key, Value: value})
	}

	return entries
}

func braceBalance(s string) int {
	return strings.Count(s, "{") - strings.Count(s, "}")
}

// splitLines splits on \n, \r\n and \r without producing a trailing empty
// line for text that ends with a line break.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
