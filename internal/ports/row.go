package ports

// Row is one generated product/price pair.
type Row struct {
	Product string
	Price   float64
}

// RandomSource is the port for the integer draws behind every row.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}
