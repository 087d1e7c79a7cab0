// Package stats provides the statistical helpers used by pitch analysis.
package stats

import (
	"math"
	"sort"
)

// Quantile returns the q-th quantile (0 <= q <= 1) of data using linear
// interpolation between closest ranks (h = (n-1)q + 1), the estimator
// spreadsheets and dataframe libraries default to. data is not modified.
// An empty input returns NaN.
func Quantile(data []float64, q float64) float64 {
	n := len(data)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return data[0]
	}

	values := make([]float64, n)
	copy(values, data)
	sort.Float64s(values)

	h := float64(n-1)*q + 1.0
	if h <= 1.0 {
		return values[0]
	}
	if h >= float64(n) {
		return values[n-1]
	}

	lower := int(math.Floor(h)) - 1
	upper := int(math.Ceil(h)) - 1
	if lower == upper {
		return values[lower]
	}
	frac := h - math.Floor(h)
	return values[lower] + frac*(values[upper]-values[lower])
}
