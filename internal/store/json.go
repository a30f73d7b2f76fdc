package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tdp/internal/config"
	"tdp/internal/domain"
)

// SharedDataFile is the per-directory fallback consulted when no per-module
// data file exists.
const SharedDataFile = "data.json"

// JSONStore resolves specs from JSON data files in the configured data
// directory. Every resolution reads the file fresh; nothing is cached across
// test functions.
type JSONStore struct {
	cfg *config.Config
}

// NewJSONStore returns a Store that reads the config's data path.
func NewJSONStore(cfg *config.Config) *JSONStore {
	return &JSONStore{cfg: cfg}
}

// Resolve looks up the spec for loc. Resolution order: <module>.json in the
// location's directory, then the shared data.json there, then
// ErrDataNotFound. Locations without a directory resolve against the
// configured data path. The lookup is pure and applies no defaulting beyond
// the spec's own zip strategy fallback.
func (s *JSONStore) Resolve(loc domain.Location) (*domain.Spec, error) {
	path, err := s.findDataFile(loc)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataUnreadableError{Path: path, Err: err}
	}

	var document map[string]json.RawMessage
	if err := json.Unmarshal(raw, &document); err != nil {
		return nil, &DataUnreadableError{Path: path, Err: err}
	}

	moduleRaw, ok := document[loc.Module]
	if !ok {
		return nil, fmt.Errorf("%w: module %q in %s", ErrSpecMismatch, loc.Module, path)
	}

	entries := make(map[string]json.RawMessage)
	if err := json.Unmarshal(moduleRaw, &entries); err != nil {
		return nil, &DataUnreadableError{Path: path, Err: err}
	}

	if loc.Class != "" {
		classRaw, ok := entries[loc.Class]
		if !ok {
			return nil, fmt.Errorf("%w: class %q in %s", ErrSpecMismatch, loc.Class, path)
		}
		entries = make(map[string]json.RawMessage)
		if err := json.Unmarshal(classRaw, &entries); err != nil {
			return nil, &DataUnreadableError{Path: path, Err: err}
		}
	}

	specRaw, ok := entries[loc.Function]
	if !ok {
		return nil, fmt.Errorf("%w: function %q in %s", ErrSpecMismatch, loc.Function, path)
	}

	var spec domain.Spec
	if err := json.Unmarshal(specRaw, &spec); err != nil {
		return nil, &DataUnreadableError{Path: path, Err: err}
	}
	return &spec, nil
}

// findDataFile returns the first existing candidate data file for a
// location, looked up in the directory its data file was discovered in.
func (s *JSONStore) findDataFile(loc domain.Location) (string, error) {
	dir := loc.Dir
	if dir == "" {
		dir = s.cfg.GetDataPath()
	}
	for _, name := range []string{loc.Module + ".json", SharedDataFile} {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: no %s.json or %s under %s", ErrDataNotFound, loc.Module, SharedDataFile, dir)
}
