package metric

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical words", "kitten", "kitten", 0},
		{"classic kitten/sitting", "kitten", "sitting", 3},
		{"empty vs word", "", "gol", 3},
		{"one insertion", "bola", "bol", 1},
		{"unicode runes not bytes", "café", "cafe", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			require.Equal(t, tt.want, Levenshtein(tt.b, tt.a))
		})
	}
}
