package xcorr

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// CorrelateDirect computes the full cross-correlation in the time domain.
//
// This is an O(N*M) algorithm. It is the better choice for very short
// templates, where a transform round trip costs more than the sliding dot
// products, and it introduces no FFT rounding, which also makes it the
// reference implementation in this package's tests.
func CorrelateDirect(signal, template []float64) ([]float64, error) {
	return CorrelateDirectMode(signal, template, ModeFull)
}

// CorrelateDirectMode computes time-domain cross-correlation with the
// specified output mode. Output lengths and the empty-input policy match
// [Correlator.Correlate] exactly.
func CorrelateDirectMode(signal, template []float64, mode Mode) ([]float64, error) {
	if !mode.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}

	n := len(signal)
	m := len(template)
	if n == 0 || m == 0 {
		return []float64{}, nil
	}

	reversed := make([]float64, m)
	for i := range template {
		reversed[i] = template[m-1-i]
	}

	full := make([]float64, n+m-1)
	directTo(full, signal, reversed)

	return sliceMode(full, n, m, mode), nil
}

// directTo convolves signal with the pre-reversed template into dst.
// dst must have length len(signal) + len(rev) - 1 and be zeroed.
func directTo(dst, signal, rev []float64) {
	m := len(rev)

	// SIMD-accelerated path for templates >= 4 samples
	const simdThreshold = 4
	if m >= simdThreshold {
		temp := make([]float64, m)
		for i, v := range signal {
			// temp = rev * signal[i], then dst[i:i+m] += temp
			vecmath.ScaleBlock(temp, rev, v)
			vecmath.AddBlockInPlace(dst[i:i+m], temp)
		}
		return
	}

	for i, v := range signal {
		for j := 0; j < m; j++ {
			dst[i+j] += v * rev[j]
		}
	}
}
