package gobble

// Pair carries the two values kept by match.Divided once the divider
// between them is thrown away.
type Pair[L, R any] struct {
	Left  L
	Right R
}
