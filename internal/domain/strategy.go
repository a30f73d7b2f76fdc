package domain

// Strategy selects how argument value lists combine into tuples.
type Strategy int

const (
	// Zip pairs values positionally across argument lists. It is also the
	// fallback for unrecognized strategy tokens.
	Zip Strategy = iota
	// Product expands every combination of argument values.
	Product
)

// ParseStrategy maps a strategy token from a data file to a Strategy.
// Unrecognized tokens (including the empty string) fall back to Zip; ok
// reports whether the token named a known strategy so callers can log the
// fallback instead of failing.
func ParseStrategy(token string) (s Strategy, ok bool) {
	switch token {
	case "product":
		return Product, true
	case "zip":
		return Zip, true
	}
	return Zip, false
}

func (s Strategy) String() string {
	if s == Product {
		return "product"
	}
	return "zip"
}
