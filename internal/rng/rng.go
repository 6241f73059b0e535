package rng

// Generator provides random numbers for dealer selection and deck seeding
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int

	// Int63 will return a non-negative random 63-bit integer, suitable as a shuffle seed
	Int63() int64
}
