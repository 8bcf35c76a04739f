package mtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDelete_MaintainsInvariantsAcrossMergesAndDonations(t *testing.T) {
	tree := newDeterministicTree(t, 2, 3)
	values := []int{50, 10, 90, 30, 70, 20, 60, 40, 80, 0, 45, 55, 15, 85, 5}
	for _, v := range values {
		require.NoError(t, tree.Add(v))
	}

	for i, v := range values {
		require.NoError(t, tree.Remove(v))
		require.Equal(t, len(values)-i-1, tree.Len())
		if tree.root != nil {
			checkInvariants(t, tree, tree.root)
		}
	}
}

func TestDelete_NotFoundLeavesTreeUnchanged(t *testing.T) {
	tree := newDeterministicTree(t, 2, 3)
	for _, v := range []int{1, 2, 3} {
		require.NoError(t, tree.Add(v))
	}
	status, err := tree.root.removeData(&tree.cfg, 999, tree.cfg.distance(tree.root.data, 999))
	require.NoError(t, err)
	require.Equal(t, removeNotFound, status)
	require.Equal(t, 3, tree.Len())
}

func TestDonate_MovesClosestItemAndPreservesCounts(t *testing.T) {
	cfg := testConfig()
	parent := newNode[int](kindInternal, 0)

	sibling := newNode[int](kindLeaf, 0)
	sibling.addEntry(0, 0)
	sibling.addEntry(1, 1)
	sibling.addEntry(2, 2)
	require.NoError(t, parent.addChild(cfg, sibling, 0))

	child := newNode[int](kindLeaf, 100)
	child.addEntry(100, 0)
	require.NoError(t, parent.addChild(cfg, child, 100))

	require.NoError(t, parent.donate(cfg, sibling, child))

	require.Len(t, sibling.entries, 2)
	require.Len(t, child.entries, 2)
	_, stillThere := sibling.entries[2]
	require.False(t, stillThere, "the entry closest to child's representative should have moved")
}

func TestMerge_AbsorbsChildAndDropsItFromParent(t *testing.T) {
	cfg := testConfig()
	parent := newNode[int](kindInternal, 0)

	sibling := newNode[int](kindLeaf, 0)
	sibling.addEntry(0, 0)
	require.NoError(t, parent.addChild(cfg, sibling, 0))

	child := newNode[int](kindLeaf, 5)
	child.addEntry(5, 0)
	child.addEntry(6, 1)
	require.NoError(t, parent.addChild(cfg, child, 5))

	require.NoError(t, parent.merge(cfg, sibling, child))

	require.Len(t, parent.children, 1)
	require.Len(t, sibling.entries, 3)
}
