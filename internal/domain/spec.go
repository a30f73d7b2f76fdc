package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value is one literal from an argument value list. Data files carry JSON
// scalars, so a Value is a float64, string, bool or nil after decoding.
// String values may hold expressions the test evaluates itself; the engine
// never interprets them.
type Value = any

// Argument is one named value list of a spec.
type Argument struct {
	Name   string
	Values []Value
}

// Arguments preserves the order argument names appear in the data file.
// That order defines the positional order of every emitted tuple.
type Arguments []Argument

// UnmarshalJSON decodes a JSON object into an ordered argument list.
// encoding/json maps would lose key order, so the object is walked token by
// token. Duplicate argument names are rejected.
func (a *Arguments) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("arguments: expected an object, got %v", tok)
	}

	var out Arguments
	seen := make(map[string]bool)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name := keyTok.(string)
		if seen[name] {
			return fmt.Errorf("arguments: duplicate argument %q", name)
		}
		seen[name] = true

		var values []Value
		if err := dec.Decode(&values); err != nil {
			return fmt.Errorf("argument %q: %w", name, err)
		}
		out = append(out, Argument{Name: name, Values: values})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*a = out
	return nil
}

// Names returns the argument names in declaration order.
func (a Arguments) Names() []string {
	names := make([]string, len(a))
	for i, arg := range a {
		names[i] = arg.Name
	}
	return names
}

// Spec is the parametrization configuration for one test function. It is
// immutable once loaded and discarded after the function's parameter table
// is emitted.
type Spec struct {
	Strategy Strategy
	// StrategyKnown is false when the data file carried an unrecognized
	// strategy token and Strategy is the zip fallback.
	StrategyKnown bool
	Arguments     Arguments
	Exclude       *ExcludeSpec
	// Name is an optional human label, informational only.
	Name string
}

// ExcludeSpec describes combinations to subtract from the parent expansion.
type ExcludeSpec struct {
	Strategy      Strategy
	StrategyKnown bool
	Arguments     Arguments
}

func (s *Spec) UnmarshalJSON(data []byte) error {
	var raw struct {
		Strategy  string       `json:"strategy"`
		Arguments Arguments    `json:"arguments"`
		Exclude   *ExcludeSpec `json:"exclude"`
		Name      string       `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.Strategy, s.StrategyKnown = ParseStrategy(raw.Strategy)
	s.Arguments = raw.Arguments
	s.Exclude = raw.Exclude
	s.Name = raw.Name
	return nil
}

func (e *ExcludeSpec) UnmarshalJSON(data []byte) error {
	var raw struct {
		Strategy  string    `json:"strategy"`
		Arguments Arguments `json:"arguments"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.Strategy, e.StrategyKnown = ParseStrategy(raw.Strategy)
	e.Arguments = raw.Arguments
	return nil
}
