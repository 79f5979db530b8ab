package domain

// Rand is the source food placement draws from. *math/rand.Rand
// satisfies it.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}
