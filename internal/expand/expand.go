// Package expand turns a spec's ordered argument value lists into concrete
// argument tuples and subtracts excluded combinations from them.
package expand

import "tdp/internal/domain"

// Expand produces the tuples for the given arguments under the given
// strategy. Tuple positions follow the argument declaration order. Output is
// deterministic, value types are preserved and duplicate tuples are kept:
// a spec that produces duplicate combinations yields duplicate test
// invocations.
func Expand(args domain.Arguments, strategy domain.Strategy) []domain.Tuple {
	if len(args) == 0 {
		return nil
	}
	if strategy == domain.Product {
		return product(args)
	}
	return zip(args)
}

// product is the Cartesian product in nested-loop order: the right-most
// argument varies fastest. An empty value list for any argument yields an
// empty result.
func product(args domain.Arguments) []domain.Tuple {
	total := 1
	for _, arg := range args {
		total *= len(arg.Values)
	}
	if total == 0 {
		return nil
	}

	out := make([]domain.Tuple, 0, total)
	index := make([]int, len(args))
	for {
		tuple := make(domain.Tuple, len(args))
		for i, arg := range args {
			tuple[i] = arg.Values[index[i]]
		}
		out = append(out, tuple)

		pos := len(args) - 1
		for ; pos >= 0; pos-- {
			index[pos]++
			if index[pos] < len(args[pos].Values) {
				break
			}
			index[pos] = 0
		}
		if pos < 0 {
			return out
		}
	}
}

// zip pairs values positionally across the argument lists. Lists of unequal
// length truncate to the shortest; that silence is current behavior, not a
// guarantee (the validate command warns about it). An empty value list
// yields nil, same as product.
func zip(args domain.Arguments) []domain.Tuple {
	length := len(args[0].Values)
	for _, arg := range args[1:] {
		if len(arg.Values) < length {
			length = len(arg.Values)
		}
	}
	if length == 0 {
		return nil
	}

	out := make([]domain.Tuple, 0, length)
	for i := 0; i < length; i++ {
		tuple := make(domain.Tuple, len(args))
		for j, arg := range args {
			tuple[j] = arg.Values[i]
		}
		out = append(out, tuple)
	}
	return out
}

// ExpandExclude expands an exclusion spec into the tuples to subtract from
// the parent expansion. The declared exclude strategy is parsed but both
// branches expand with the product rule, so a zip exclusion behaves exactly
// like a product one.
func ExpandExclude(exclude *domain.ExcludeSpec) []domain.Tuple {
	if exclude == nil || len(exclude.Arguments) == 0 {
		return nil
	}
	return product(exclude.Arguments)
}
