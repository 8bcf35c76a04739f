package splitpolicy

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func abs1D(a, b int) float64 {
	return math.Abs(float64(a - b))
}

func TestSortedPromotion_PicksMinAndMax(t *testing.T) {
	promote := SortedPromotion(func(a, b int) bool { return a < b })
	p1, p2 := promote([]int{5, 1, 9, 3}, abs1D)
	require.Equal(t, 1, p1)
	require.Equal(t, 9, p2)
}

func TestBalancedPartition_AssignsPivotsAndCoversSet(t *testing.T) {
	s := []int{0, 1, 2, 8, 9, 10}
	p1, p2 := 0, 10

	s1, s2 := BalancedPartition(p1, p2, s, abs1D)

	require.Contains(t, s1, p1)
	require.Contains(t, s2, p2)

	combined := append(append([]int{}, s1...), s2...)
	require.ElementsMatch(t, s, combined)

	for _, x := range s1 {
		require.NotContains(t, s2, x)
	}
}

func TestBalancedPartition_RoughlyEvenSplit(t *testing.T) {
	s := []int{1, 2, 3, 4, 97, 98, 99, 100}
	s1, s2 := BalancedPartition(1, 100, s, abs1D)

	require.GreaterOrEqual(t, len(s1), 2)
	require.GreaterOrEqual(t, len(s2), 2)
	require.Equal(t, len(s), len(s1)+len(s2))
}

func TestSplit_ComposesPromoteAndPartition(t *testing.T) {
	policy := Policy[int]{
		Promote:   SortedPromotion(func(a, b int) bool { return a < b }),
		Partition: BalancedPartition[int],
	}

	p1, s1, p2, s2 := Split(policy, []int{5, 1, 9, 3, 2}, abs1D)
	require.Equal(t, 1, p1)
	require.Equal(t, 9, p2)
	require.Contains(t, s1, p1)
	require.Contains(t, s2, p2)
	require.Len(t, append(s1, s2...), 5)
}

func TestRandomPromotion_PicksTwoDistinctElements(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	promote := RandomPromotion[int](rng)

	s := []int{10, 20, 30, 40}
	for i := 0; i < 20; i++ {
		p1, p2 := promote(s, abs1D)
		require.NotEqual(t, p1, p2)
		require.Contains(t, s, p1)
		require.Contains(t, s, p2)
	}
}
