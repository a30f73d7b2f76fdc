package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters data files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters data files by name pattern using wildcard matching
// Supports patterns like "mathematics.json" or "*math*"
func (f *Filter) FilterByName(files []string, pattern string) []string {
	if pattern == "" {
		return files
	}

	var filtered []string

	for _, file := range files {
		name := filepath.Base(file)

		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			filtered = append(filtered, file)
			continue
		}

		// Patterns like "*math*" reduce to a substring check on the
		// non-wildcard parts
		if strings.ContainsAny(pattern, "*?") {
			if matchesParts(name, strings.Split(pattern, "*")) {
				filtered = append(filtered, file)
			}
			continue
		}

		// No wildcards: plain substring match
		if strings.Contains(name, pattern) {
			filtered = append(filtered, file)
		}
	}

	return filtered
}

func matchesParts(name string, parts []string) bool {
	hasNonEmpty := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		hasNonEmpty = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return hasNonEmpty
}
