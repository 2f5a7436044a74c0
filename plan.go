package xcorr

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// planEntry bundles the FFT plan and scratch buffers for one transform
// size. Entries belong to the Correlator that created them and live for
// its lifetime; the scratch is reused across calls and never escapes.
type planEntry struct {
	size int
	plan *algofft.Plan[complex128]

	sigPad  []complex128 // zero-padded signal, reused as inverse output
	tmpPad  []complex128 // zero-padded time-reversed template
	sigFreq []complex128
	tmpFreq []complex128
}

func newPlanEntry(size int) (*planEntry, error) {
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("xcorr: failed to create FFT plan: %w", err)
	}

	return &planEntry{
		size:    size,
		plan:    plan,
		sigPad:  make([]complex128, size),
		tmpPad:  make([]complex128, size),
		sigFreq: make([]complex128, size),
		tmpFreq: make([]complex128, size),
	}, nil
}

// transformSize returns the FFT size used for a full correlation of
// length fullLen: the next power of 2 >= fullLen. Padding to at least
// fullLen is a correctness requirement, not an optimization; a smaller
// transform would alias through circular wrap-around.
func transformSize(fullLen int) int {
	return nextPowerOf2(fullLen)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
