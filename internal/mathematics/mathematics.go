// Package mathematics holds the trivial arithmetic helpers the engine's
// end-to-end tests parametrize against.
package mathematics

// Add returns the sum of the two numbers
func Add(first, second float64) float64 {
	return first + second
}

// Subtract returns the first number minus the second
func Subtract(first, second float64) float64 {
	return first - second
}
