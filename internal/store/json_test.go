package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tdp/internal/config"
	"tdp/internal/domain"
)

func newTestStore(t *testing.T) (*JSONStore, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.New()
	cfg.Flags.DataPath = dir
	return NewJSONStore(cfg), dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

const classDocument = `{
	"test_mathematics": {
		"TestMathematics": {
			"test_add": {
				"strategy": "product",
				"arguments": {"x": [1, 2], "y": [10, 20]}
			}
		}
	}
}`

const functionDocument = `{
	"test_mathematics": {
		"test_add": {
			"strategy": "zip",
			"arguments": {"x": [1, 2], "y": [10, 20]}
		}
	}
}`

func TestJSONStore_Resolve_ClassFunction(t *testing.T) {
	st, dir := newTestStore(t)
	writeFile(t, dir, "test_mathematics.json", classDocument)

	spec, err := st.Resolve(domain.Location{
		Module:   "test_mathematics",
		Class:    "TestMathematics",
		Function: "test_add",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if spec.Strategy != domain.Product {
		t.Errorf("expected product strategy, got %v", spec.Strategy)
	}
	names := spec.Arguments.Names()
	if len(names) != 2 || names[0] != "x" || names[1] != "y" {
		t.Errorf("unexpected argument names: %v", names)
	}
}

func TestJSONStore_Resolve_FreeFunction(t *testing.T) {
	st, dir := newTestStore(t)
	writeFile(t, dir, "test_mathematics.json", functionDocument)

	spec, err := st.Resolve(domain.Location{
		Module:   "test_mathematics",
		Function: "test_add",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Strategy != domain.Zip {
		t.Errorf("expected zip strategy, got %v", spec.Strategy)
	}
}

func TestJSONStore_Resolve_SharedDataFallback(t *testing.T) {
	st, dir := newTestStore(t)
	writeFile(t, dir, SharedDataFile, functionDocument)

	if _, err := st.Resolve(domain.Location{
		Module:   "test_mathematics",
		Function: "test_add",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJSONStore_Resolve_ModuleFileWinsOverShared(t *testing.T) {
	st, dir := newTestStore(t)
	// Shared file carries a different strategy so the winner is observable.
	writeFile(t, dir, "test_mathematics.json", functionDocument)
	writeFile(t, dir, SharedDataFile, `{
		"test_mathematics": {
			"test_add": {"strategy": "product", "arguments": {"x": [1]}}
		}
	}`)

	spec, err := st.Resolve(domain.Location{
		Module:   "test_mathematics",
		Function: "test_add",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Strategy != domain.Zip {
		t.Error("expected the per-module file to take precedence over data.json")
	}
}

func TestJSONStore_Resolve_LocationDirectory(t *testing.T) {
	st, dir := newTestStore(t)
	nested := filepath.Join(dir, "gamma")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, nested, "test_mathematics.json", functionDocument)

	// A location discovered in a subdirectory resolves against that
	// directory, not the data-path root.
	spec, err := st.Resolve(domain.Location{
		Module:   "test_mathematics",
		Function: "test_add",
		Dir:      nested,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Strategy != domain.Zip {
		t.Errorf("expected zip strategy, got %v", spec.Strategy)
	}

	// Without a directory the data-path root stays empty and the lookup
	// signals data-not-found.
	_, err = st.Resolve(domain.Location{Module: "test_mathematics", Function: "test_add"})
	if !errors.Is(err, ErrDataNotFound) {
		t.Errorf("expected ErrDataNotFound at the root, got %v", err)
	}
}

func TestJSONStore_Resolve_DataNotFound(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.Resolve(domain.Location{Module: "missing", Function: "test_add"})
	if !errors.Is(err, ErrDataNotFound) {
		t.Errorf("expected ErrDataNotFound, got %v", err)
	}
}

func TestJSONStore_Resolve_DataUnreadable(t *testing.T) {
	st, dir := newTestStore(t)
	writeFile(t, dir, "broken.json", `{"broken": `)

	_, err := st.Resolve(domain.Location{Module: "broken", Function: "test_add"})
	if !errors.Is(err, ErrDataUnreadable) {
		t.Fatalf("expected ErrDataUnreadable, got %v", err)
	}

	var unreadable *DataUnreadableError
	if !errors.As(err, &unreadable) {
		t.Fatal("expected a DataUnreadableError")
	}
	if unreadable.Path == "" {
		t.Error("expected the error to carry the file path")
	}
}

func TestJSONStore_Resolve_SpecMismatch(t *testing.T) {
	st, dir := newTestStore(t)
	writeFile(t, dir, "test_mathematics.json", classDocument)

	tests := []struct {
		name string
		loc  domain.Location
	}{
		{
			name: "unknown class",
			loc:  domain.Location{Module: "test_mathematics", Class: "TestOther", Function: "test_add"},
		},
		{
			name: "unknown function",
			loc:  domain.Location{Module: "test_mathematics", Class: "TestMathematics", Function: "test_divide"},
		},
		{
			name: "class entry looked up as free function",
			loc:  domain.Location{Module: "test_mathematics", Function: "test_add"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := st.Resolve(tt.loc)
			if !errors.Is(err, ErrSpecMismatch) {
				t.Errorf("expected ErrSpecMismatch, got %v", err)
			}
		})
	}
}

func TestJSONStore_Resolve_ModuleMissingFromSharedFile(t *testing.T) {
	st, dir := newTestStore(t)
	writeFile(t, dir, SharedDataFile, functionDocument)

	// data.json exists but holds no entry for this module.
	_, err := st.Resolve(domain.Location{Module: "test_other", Function: "test_add"})
	if !errors.Is(err, ErrSpecMismatch) {
		t.Errorf("expected ErrSpecMismatch, got %v", err)
	}
}
