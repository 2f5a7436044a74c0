package xcorr

import (
	"fmt"
	"sort"
)

// Correlator computes FFT-based cross-correlations and caches one
// transform plan per padded size, so repeated calls with recurring input
// lengths skip the planning cost.
//
// A Correlator is not safe for concurrent use. Give each goroutine its
// own instance; plans are never shared between instances, which removes
// any need for locking at the cost of duplicated plans.
type Correlator struct {
	plans map[int]*planEntry
}

// NewCorrelator returns a Correlator with an empty plan cache.
func NewCorrelator() *Correlator {
	return &Correlator{plans: make(map[int]*planEntry)}
}

// Sizes returns the transform sizes currently held in the plan cache,
// in ascending order.
func (c *Correlator) Sizes() []int {
	sizes := make([]int, 0, len(c.plans))
	for size := range c.plans {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}

// entry returns the cached plan for the given size, creating and
// inserting it on first use. The cache grows unbounded; typical usage
// touches only a handful of distinct sizes.
func (c *Correlator) entry(size int) (*planEntry, error) {
	if e, ok := c.plans[size]; ok {
		return e, nil
	}

	e, err := newPlanEntry(size)
	if err != nil {
		return nil, err
	}

	c.plans[size] = e
	return e, nil
}

// Correlate computes the cross-correlation of signal and template and
// returns the window selected by mode. The returned slice is freshly
// allocated and owned by the caller.
//
// Index k of the full result corresponds to lag k - (len(template) - 1);
// see the package documentation for the index convention. If either input
// is empty the result is empty for every mode, with a nil error.
func (c *Correlator) Correlate(signal, template []float64, mode Mode) ([]float64, error) {
	if !mode.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}

	n := len(signal)
	m := len(template)
	if n == 0 || m == 0 {
		return []float64{}, nil
	}

	fullLen := n + m - 1

	e, err := c.entry(transformSize(fullLen))
	if err != nil {
		return nil, err
	}

	// Zero-pad the signal and the time-reversed template to the transform
	// size. Cross-correlation is convolution with the reversed template.
	for i := range e.sigPad {
		e.sigPad[i] = 0
		e.tmpPad[i] = 0
	}
	for i, v := range signal {
		e.sigPad[i] = complex(v, 0)
	}
	for i := 0; i < m; i++ {
		e.tmpPad[i] = complex(template[m-1-i], 0)
	}

	err = e.plan.Forward(e.sigFreq, e.sigPad)
	if err != nil {
		return nil, fmt.Errorf("xcorr: forward FFT failed: %w", err)
	}

	err = e.plan.Forward(e.tmpFreq, e.tmpPad)
	if err != nil {
		return nil, fmt.Errorf("xcorr: forward FFT failed: %w", err)
	}

	// Pointwise multiply in the frequency domain.
	for i := range e.sigFreq {
		e.sigFreq[i] *= e.tmpFreq[i]
	}

	err = e.plan.Inverse(e.sigPad, e.sigFreq)
	if err != nil {
		return nil, fmt.Errorf("xcorr: inverse FFT failed: %w", err)
	}

	// The inverse transform is normalized by the transform size, so the
	// real parts are already at linear-convolution amplitude. Everything
	// past fullLen is padding.
	full := make([]float64, fullLen)
	for i := range full {
		full[i] = real(e.sigPad[i])
	}

	return sliceMode(full, n, m, mode), nil
}
