package metric

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical points", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"3-4-5 triangle", []float64{0, 0}, []float64{3, 4}, 5},
		{"single dimension", []float64{10}, []float64{4}, 6},
		{"mismatched length uses shorter", []float64{0, 0, 99}, []float64{3, 4}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, Euclidean(tt.a, tt.b), 1e-9)
			require.InDelta(t, tt.want, Euclidean(tt.b, tt.a), 1e-9)
		})
	}
}
