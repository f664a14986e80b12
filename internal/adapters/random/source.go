package random

import "math/rand/v2"

// New returns a PCG-backed source. A zero seed draws the PCG state from the
// runtime's entropy; any other seed yields the same stream on every run.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
