package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tdp/internal/domain"
)

func TestParser_Locations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mixed.json")
	content := `{
		"test_mathematics": {
			"TestMathematics": {
				"test_add": {"strategy": "zip", "arguments": {"x": [1]}},
				"test_subtract": {"strategy": "zip", "arguments": {"x": [1]}}
			},
			"test_identity": {"strategy": "zip", "arguments": {"x": [1]}}
		},
		"test_geometry": {
			"test_area": {"strategy": "product", "arguments": {"w": [1], "h": [2]}}
		}
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	parser := NewParser()
	locations, err := parser.Locations(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []domain.Location{
		{Module: "test_geometry", Function: "test_area", Dir: dir},
		{Module: "test_mathematics", Class: "TestMathematics", Function: "test_add", Dir: dir},
		{Module: "test_mathematics", Class: "TestMathematics", Function: "test_subtract", Dir: dir},
		{Module: "test_mathematics", Function: "test_identity", Dir: dir},
	}
	if diff := cmp.Diff(expected, locations); diff != "" {
		t.Errorf("unexpected locations (-want +got):\n%s", diff)
	}
}

func TestParser_Locations_Unreadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte(`{"oops"`), 0644); err != nil {
		t.Fatal(err)
	}

	parser := NewParser()
	if _, err := parser.Locations(path); err == nil {
		t.Error("expected an error for a malformed data file")
	}
}

func TestParser_Locations_MissingFile(t *testing.T) {
	parser := NewParser()
	if _, err := parser.Locations(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing data file")
	}
}
