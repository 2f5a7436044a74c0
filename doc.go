// Package xcorr computes discrete cross-correlation of one-dimensional
// real-valued sequences using the Fast Fourier Transform.
//
// The package follows the output-length conventions of the established
// array-correlation APIs: the full correlation has length
// len(signal) + len(template) - 1, and the Same and Valid modes select
// contiguous windows of that result (see [Mode]).
//
// # Usage
//
// For one-shot correlation, use the package-level functions:
//
//	result, err := xcorr.Correlate(signal, template)                  // Full mode
//	result, err := xcorr.CorrelateMode(signal, template, xcorr.ModeValid)
//
// For repeated correlation, create a [Correlator]. It caches one FFT plan
// per padded transform size, so calls that share input lengths skip the
// planning cost:
//
//	c := xcorr.NewCorrelator()
//	for _, frame := range frames {
//		result, err := c.Correlate(frame, template, xcorr.ModeSame)
//		...
//	}
//
// A Correlator is not safe for concurrent use; give each goroutine its own
// instance.
//
// # Algorithm
//
// Cross-correlation is computed as convolution with the time-reversed
// template: both inputs are zero-padded to a power-of-2 transform size of
// at least len(signal)+len(template)-1, transformed, multiplied pointwise
// in the frequency domain, and transformed back. Padding to at least the
// full output length is what prevents circular wrap-around; the inverse
// transform is normalized, so the real part of its output is already at
// linear-convolution amplitude.
//
// For very short templates the time-domain [CorrelateDirect] is typically
// faster than a transform round trip and computes the same result without
// floating-point rounding from the FFT.
//
// # Index Convention
//
// Index k of a full result corresponds to lag k - (len(template) - 1): the
// value at k is the dot product of the signal with the template shifted so
// that its last sample aligns with signal[k]. [LagFromIndex] and
// [IndexFromLag] convert between the two. Correlating with the unit
// template [1] therefore reproduces the signal exactly.
//
// Inputs may contain NaN or infinities; they propagate through the
// arithmetic per the usual floating-point rules and are never filtered.
package xcorr
