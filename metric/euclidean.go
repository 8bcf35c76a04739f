package metric

import "math"

// Euclidean returns the Euclidean distance between two fixed- or
// variable-length float64 coordinate slices, computed over as many
// dimensions as the shorter of the two inputs.
func Euclidean(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
