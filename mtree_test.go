package mtree

import (
	"errors"
	"testing"

	"github.com/scigolib/mtree/internal/errs"
	"github.com/scigolib/mtree/internal/splitpolicy"
	"github.com/stretchr/testify/require"
)

func newDeterministicTree(t *testing.T, minCap, maxCap int) *Tree[int] {
	t.Helper()
	tree, err := New[int](abs1D,
		WithMinNodeCapacity[int](minCap),
		WithMaxNodeCapacity[int](maxCap),
		WithSplitPolicy[int](splitpolicy.Policy[int]{
			Promote:   splitpolicy.SortedPromotion[int](func(a, b int) bool { return a < b }),
			Partition: splitpolicy.BalancedPartition[int],
		}),
	)
	require.NoError(t, err)
	return tree
}

func TestNew_ValidatesCapacities(t *testing.T) {
	tests := []struct {
		name   string
		minCap int
		maxCap int
	}{
		{"min below two", 1, 4},
		{"max equal to min", 3, 3},
		{"max below min", 4, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New[int](abs1D, WithMinNodeCapacity[int](tt.minCap), WithMaxNodeCapacity[int](tt.maxCap))
			require.Error(t, err)
			require.True(t, errors.Is(err, errs.ErrInvalidArgument))
		})
	}
}

func TestNew_DefaultsAreUsable(t *testing.T) {
	tree, err := New[int](abs1D)
	require.NoError(t, err)
	require.NoError(t, tree.Add(1))
	require.Equal(t, 1, tree.Len())
}

func TestTree_AddRejectsDuplicate(t *testing.T) {
	tree := newDeterministicTree(t, 2, 4)
	require.NoError(t, tree.Add(5))
	err := tree.Add(5)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestTree_RemoveNotFound(t *testing.T) {
	tree := newDeterministicTree(t, 2, 4)
	require.NoError(t, tree.Add(5))
	err := tree.Remove(99)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestTree_LenTracksAddAndRemove(t *testing.T) {
	tree := newDeterministicTree(t, 2, 3)
	values := []int{50, 10, 90, 30, 70, 20, 60, 40, 80, 0}
	for i, v := range values {
		require.NoError(t, tree.Add(v))
		require.Equal(t, i+1, tree.Len())
	}
	for i, v := range values {
		require.NoError(t, tree.Remove(v))
		require.Equal(t, len(values)-i-1, tree.Len())
	}
}

func TestTree_AddTriggersSplitAndGrowsHeight(t *testing.T) {
	tree := newDeterministicTree(t, 2, 3)
	for _, v := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10} {
		require.NoError(t, tree.Add(v))
	}
	stats := tree.Stats()
	require.Equal(t, 10, stats.EntryCount)
	require.Greater(t, stats.Height, 1)
	require.Greater(t, stats.NodeCount, 1)
}

func TestTree_StatsEmptyTree(t *testing.T) {
	tree := newDeterministicTree(t, 2, 4)
	require.Equal(t, TreeStats{}, tree.Stats())
}

func TestTree_RemoveDownToEmpty(t *testing.T) {
	tree := newDeterministicTree(t, 2, 3)
	for _, v := range []int{1, 2, 3, 4, 5} {
		require.NoError(t, tree.Add(v))
	}
	for _, v := range []int{1, 2, 3, 4, 5} {
		require.NoError(t, tree.Remove(v))
	}
	require.Equal(t, 0, tree.Len())
	require.Equal(t, TreeStats{}, tree.Stats())
}
