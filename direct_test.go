package xcorr

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-xcorr/internal/testutil"
)

func TestCorrelateDirect(t *testing.T) {
	tests := []struct {
		name     string
		signal   []float64
		template []float64
		expected []float64
	}{
		{
			name:     "unit impulse template is identity",
			signal:   []float64{1, 2, 3, 4, 5},
			template: []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "impulse at last template sample delays",
			signal:   []float64{1, 2, 3, 4, 5},
			template: []float64{1, 0, 0},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			// corr(a,b)[k] = sum_i a[i]*b[i-k+m-1]
			name:     "two-sample template",
			signal:   []float64{1, 2, 3},
			template: []float64{0, 1},
			expected: []float64{1, 2, 3, 0},
		},
		{
			name:     "box template",
			signal:   []float64{1, 2, 3},
			template: []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CorrelateDirect(tt.signal, tt.template)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 0)
		})
	}
}

// The SIMD inner loop kicks in at template length 4; sweep across that
// boundary against a plain sliding-window sum.
func TestCorrelateDirectAgainstSlidingWindow(t *testing.T) {
	signal := testutil.DeterministicNoise(11, 1.0, 40)

	for m := 1; m <= 12; m++ {
		template := testutil.DeterministicNoise(int64(m), 1.0, m)

		got, err := CorrelateDirect(signal, template)
		if err != nil {
			t.Fatalf("m=%d: unexpected error: %v", m, err)
		}

		want := slidingCorrelate(signal, template)
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
	}
}

// Valid[j] must equal the plain dot product of signal[j:j+m] with the
// template (full template overlap, no reversal at this alignment).
func TestCorrelateDirectValidDotProducts(t *testing.T) {
	signal := testutil.Ramp(9)
	template := []float64{2, -1, 0.5, 3}
	m := len(template)

	valid, err := CorrelateDirectMode(signal, template, ModeValid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for j := range valid {
		var want float64
		for i := 0; i < m; i++ {
			want += signal[j+i] * template[i]
		}
		if math.Abs(valid[j]-want) > 1e-12 {
			t.Errorf("valid[%d] = %v, want %v", j, valid[j], want)
		}
	}
}

// slidingCorrelate is the textbook O(N*M) full cross-correlation used as
// an oracle: out[k] = sum_i signal[i] * template[i-k+m-1].
func slidingCorrelate(signal, template []float64) []float64 {
	n := len(signal)
	m := len(template)
	out := make([]float64, n+m-1)
	for k := range out {
		var sum float64
		for i := 0; i < n; i++ {
			j := i - k + m - 1
			if j >= 0 && j < m {
				sum += signal[i] * template[j]
			}
		}
		out[k] = sum
	}
	return out
}
