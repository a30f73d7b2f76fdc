package tdp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerate_SharedDataFile(t *testing.T) {
	// test_geometry has no per-module file; resolution falls back to the
	// shared data.json.
	result := Generate("testdata", Location{Module: "test_geometry", Function: "test_area"})

	if result.Kind != Parametrized {
		t.Fatalf("expected a parametrized result, got kind %v", result.Kind)
	}

	expected := &Table{
		Names: []string{"width", "height"},
		Rows: []Tuple{
			{1.0, 10.0}, {1.0, 20.0}, {2.0, 10.0}, {2.0, 20.0},
		},
	}
	if diff := cmp.Diff(expected, result.Table); diff != "" {
		t.Errorf("unexpected table (-want +got):\n%s", diff)
	}
}

func TestGenerate_Zip(t *testing.T) {
	result := Generate("testdata", Location{Module: "test_geometry", Function: "test_perimeter"})

	if result.Kind != Parametrized {
		t.Fatalf("expected a parametrized result, got kind %v", result.Kind)
	}
	expected := []Tuple{{1.0, 10.0}, {2.0, 20.0}}
	if diff := cmp.Diff(expected, result.Table.Rows); diff != "" {
		t.Errorf("unexpected rows (-want +got):\n%s", diff)
	}
}

func TestGenerate_MissingData(t *testing.T) {
	result := Generate("testdata", Location{Module: "test_missing", Function: "test_anything"})

	if result.Kind != Skipped {
		t.Fatalf("expected a skip, got kind %v", result.Kind)
	}
	if result.Skip == nil || result.Skip.Message == "" {
		t.Error("expected a descriptive skip reason")
	}
}

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation("test_geometry::test_area")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Module != "test_geometry" || loc.Function != "test_area" {
		t.Errorf("unexpected location: %+v", loc)
	}
}
