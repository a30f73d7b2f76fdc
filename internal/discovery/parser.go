package discovery

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"tdp/internal/domain"
)

// Parser enumerates the locations a data file defines
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// Locations lists every module/class/function location the data file holds,
// sorted for consistent output. A second-level entry is a free function when
// it carries an "arguments" object, otherwise a class grouping functions.
// Each location carries the file's directory, so later resolution reads the
// data file next to it rather than one at the data-path root.
func (p *Parser) Locations(path string) ([]domain.Location, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading data file %s: %w", path, err)
	}

	var document map[string]map[string]json.RawMessage
	if err := json.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("error parsing data file %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	var locations []domain.Location
	for module, entries := range document {
		for name, entry := range entries {
			if isSpec(entry) {
				locations = append(locations, domain.Location{
					Module:   module,
					Function: name,
					Dir:      dir,
				})
				continue
			}

			var functions map[string]json.RawMessage
			if err := json.Unmarshal(entry, &functions); err != nil {
				// Neither a spec nor a class grouping; skip the entry
				continue
			}
			for function := range functions {
				locations = append(locations, domain.Location{
					Module:   module,
					Class:    name,
					Function: function,
					Dir:      dir,
				})
			}
		}
	}

	sort.Slice(locations, func(i, j int) bool {
		return locations[i].String() < locations[j].String()
	})

	return locations, nil
}

// isSpec reports whether a raw entry looks like a parametrization spec
// rather than a class grouping.
func isSpec(raw json.RawMessage) bool {
	var probe struct {
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return len(probe.Arguments) > 0
}
