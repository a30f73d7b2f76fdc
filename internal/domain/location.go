package domain

import (
	"fmt"
	"strings"
)

// Location identifies the test function a parametrization spec applies to.
// Class is empty for free functions. Dir is the directory the location's
// data file was discovered in; when empty, resolution falls back to the
// configured data path.
type Location struct {
	Module   string
	Class    string
	Function string
	Dir      string
}

// String formats the location as module::Class::function, with the class
// segment omitted for free functions.
func (l Location) String() string {
	if l.Class == "" {
		return l.Module + "::" + l.Function
	}
	return l.Module + "::" + l.Class + "::" + l.Function
}

// ParseLocation parses "module::function" or "module::Class::function"
func ParseLocation(s string) (Location, error) {
	parts := strings.Split(s, "::")
	for _, part := range parts {
		if part == "" {
			return Location{}, fmt.Errorf("invalid location %q: empty segment", s)
		}
	}

	switch len(parts) {
	case 2:
		return Location{Module: parts[0], Function: parts[1]}, nil
	case 3:
		return Location{Module: parts[0], Class: parts[1], Function: parts[2]}, nil
	}
	return Location{}, fmt.Errorf("invalid location %q: want module::function or module::Class::function", s)
}
