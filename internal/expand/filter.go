package expand

import (
	"encoding/json"
	"fmt"

	"tdp/internal/domain"
)

// Filter removes every combination whose value set contains all values of at
// least one excluded tuple, keeping survivors in their original order.
// Values compare by their JSON rendering, so tuples built outside the JSON
// loader may carry non-comparable values without breaking the match.
//
// Matching is by value set, not by argument position: an excluded tuple over
// fewer arguments than the parent still matches on its subset of values, and
// two unrelated arguments sharing a literal can make an exclusion broader
// than its author intended. Known limitation, kept for compatibility with
// existing data files.
func Filter(combinations, excluded []domain.Tuple) []domain.Tuple {
	if len(excluded) == 0 {
		return combinations
	}

	excludedSets := make([]map[string]struct{}, len(excluded))
	for i, tuple := range excluded {
		excludedSets[i] = valueSet(tuple)
	}

	var survivors []domain.Tuple
	for _, combination := range combinations {
		set := valueSet(combination)
		matched := false
		for _, excludedSet := range excludedSets {
			if isSubset(excludedSet, set) {
				matched = true
				break
			}
		}
		if !matched {
			survivors = append(survivors, combination)
		}
	}
	return survivors
}

func valueSet(tuple domain.Tuple) map[string]struct{} {
	set := make(map[string]struct{}, len(tuple))
	for _, value := range tuple {
		set[valueKey(value)] = struct{}{}
	}
	return set
}

// valueKey canonicalizes a value for set membership. JSON keeps scalar types
// distinct ("1" vs 1) and handles composite values that are not map keys.
func valueKey(value domain.Value) string {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(raw)
}

func isSubset(sub, super map[string]struct{}) bool {
	for value := range sub {
		if _, ok := super[value]; !ok {
			return false
		}
	}
	return true
}
