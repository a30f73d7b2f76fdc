package domain

import "testing"

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Location
		wantErr  bool
	}{
		{
			name:     "free function",
			input:    "test_mathematics::test_add",
			expected: Location{Module: "test_mathematics", Function: "test_add"},
		},
		{
			name:     "class function",
			input:    "test_mathematics::TestMathematics::test_add",
			expected: Location{Module: "test_mathematics", Class: "TestMathematics", Function: "test_add"},
		},
		{name: "too few segments", input: "test_add", wantErr: true},
		{name: "too many segments", input: "a::b::c::d", wantErr: true},
		{name: "empty segment", input: "a::::c", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := ParseLocation(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected an error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if loc != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, loc)
			}
		})
	}
}

func TestLocation_String(t *testing.T) {
	free := Location{Module: "m", Function: "f"}
	if free.String() != "m::f" {
		t.Errorf("unexpected free-function format: %s", free)
	}

	classed := Location{Module: "m", Class: "C", Function: "f"}
	if classed.String() != "m::C::f" {
		t.Errorf("unexpected class format: %s", classed)
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		token    string
		expected Strategy
		known    bool
	}{
		{token: "product", expected: Product, known: true},
		{token: "zip", expected: Zip, known: true},
		{token: "", expected: Zip, known: false},
		{token: "PRODUCT", expected: Zip, known: false},
		{token: "cartesian", expected: Zip, known: false},
	}

	for _, tt := range tests {
		t.Run("token "+tt.token, func(t *testing.T) {
			s, known := ParseStrategy(tt.token)
			if s != tt.expected || known != tt.known {
				t.Errorf("ParseStrategy(%q) = (%v, %v), want (%v, %v)",
					tt.token, s, known, tt.expected, tt.known)
			}
		})
	}
}
