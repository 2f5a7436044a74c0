package xcorr

import "fmt"

// Mode specifies which slice of the full correlation is returned.
type Mode int

const (
	// ModeFull returns the complete correlation result with length
	// len(signal) + len(template) - 1.
	ModeFull Mode = iota

	// ModeSame returns a window with the same length as the signal,
	// centered on the full result.
	ModeSame

	// ModeValid returns only the lags where the template fully overlaps
	// the signal, with length max(len(signal)-len(template)+1, 0). The
	// result is empty when the template is longer than the signal.
	ModeValid
)

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// valid reports whether m is a member of the closed mode set.
func (m Mode) valid() bool {
	return m >= ModeFull && m <= ModeValid
}

// sliceMode extracts the window selected by mode from a full correlation
// result of a signal of length sigLen and a template of length tmpLen.
// This is pure index selection; no floating-point work happens here.
func sliceMode(full []float64, sigLen, tmpLen int, mode Mode) []float64 {
	switch mode {
	case ModeSame:
		start := (tmpLen - 1) / 2
		return full[start : start+sigLen]
	case ModeValid:
		if tmpLen > sigLen {
			return full[:0]
		}
		return full[tmpLen-1 : sigLen]
	default:
		return full
	}
}
