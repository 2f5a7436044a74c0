package xcorr

import "errors"

// Errors returned by correlation functions.
var (
	ErrInvalidMode = errors.New("xcorr: invalid mode")
)

// Correlate computes the full cross-correlation of signal and template.
// The result has length len(signal) + len(template) - 1, or zero if
// either input is empty.
//
// This is a one-shot convenience wrapper; for repeated correlation,
// create a [Correlator] to reuse transform plans across calls.
func Correlate(signal, template []float64) ([]float64, error) {
	return NewCorrelator().Correlate(signal, template, ModeFull)
}

// CorrelateMode computes cross-correlation with the specified output mode.
func CorrelateMode(signal, template []float64, mode Mode) ([]float64, error) {
	return NewCorrelator().Correlate(signal, template, mode)
}

// AutoCorrelate computes the full auto-correlation of the signal.
// The result has length 2*len(signal) - 1; the zero-lag value sits at
// index len(signal) - 1.
func AutoCorrelate(signal []float64) ([]float64, error) {
	return Correlate(signal, signal)
}

// AutoCorrelateMode computes auto-correlation with the specified output
// mode. In ModeSame the zero-lag value sits at index len(signal)/2.
func AutoCorrelateMode(signal []float64, mode Mode) ([]float64, error) {
	return CorrelateMode(signal, signal, mode)
}

// LagFromIndex converts a full-result index to a lag value.
// For a template of length templateLen, the lag at index i is
// i - (templateLen - 1).
func LagFromIndex(index, templateLen int) int {
	return index - (templateLen - 1)
}

// IndexFromLag converts a lag value to its index in the full result.
func IndexFromLag(lag, templateLen int) int {
	return lag + (templateLen - 1)
}
