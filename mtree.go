// Package mtree implements an in-memory M-tree: a height-balanced
// index over an arbitrary metric space, supporting insertion, deletion,
// and best-first nearest-neighbor search without requiring the data to
// live in a coordinate space.
package mtree

import (
	"math/rand/v2"

	"github.com/scigolib/mtree/internal/errs"
	"github.com/scigolib/mtree/internal/splitpolicy"
	"github.com/scigolib/mtree/internal/telemetry"
	"github.com/rs/zerolog"
)

// Tree is an M-tree over values of type T, ordered by a caller-supplied
// Distance. A zero Tree is not usable; construct one with New.
type Tree[T comparable] struct {
	cfg   config[T]
	root  *node[T]
	index map[T]struct{}
}

// Option configures a Tree at construction time.
type Option[T comparable] func(*config[T])

// WithMinNodeCapacity sets the lower bound on non-root node occupancy
// (section 3). It must be at least 2.
func WithMinNodeCapacity[T comparable](n int) Option[T] {
	return func(c *config[T]) { c.minCap = n }
}

// WithMaxNodeCapacity sets the upper bound on node occupancy before a
// split is triggered. It must exceed the minimum capacity.
func WithMaxNodeCapacity[T comparable](n int) Option[T] {
	return func(c *config[T]) { c.maxCap = n }
}

// WithSplitPolicy overrides the default (random promotion, balanced
// partition) split policy. Tests needing reproducible tree shapes
// typically pair splitpolicy.SortedPromotion with BalancedPartition.
func WithSplitPolicy[T comparable](p splitpolicy.Policy[T]) Option[T] {
	return func(c *config[T]) { c.policy = p }
}

// WithLogger attaches a zerolog logger that the tree emits structured
// split/merge/donate events to. Omitting this option disables both
// logging and event counting. Stats does not report event counts.
func WithLogger[T comparable](logger *zerolog.Logger) Option[T] {
	return func(c *config[T]) { c.tel = telemetry.New(logger) }
}

// New constructs an empty Tree using distance as its metric. distance
// must be non-negative, symmetric, zero only for equal inputs, and
// satisfy the triangle inequality; New cannot verify this, and a
// violating function produces undefined query results.
func New[T comparable](distance Distance[T], opts ...Option[T]) (*Tree[T], error) {
	const defaultMinCap = 50
	cfg := config[T]{
		distance: distance,
		minCap:   defaultMinCap,
		maxCap:   2*defaultMinCap - 1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.minCap < 2 {
		return nil, errs.InvalidArgument("mtree.New", "min node capacity must be at least 2")
	}
	if cfg.maxCap <= cfg.minCap {
		return nil, errs.InvalidArgument("mtree.New", "max node capacity must exceed min node capacity")
	}
	if cfg.policy.Promote == nil {
		cfg.policy.Promote = splitpolicy.RandomPromotion[T](rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}
	if cfg.policy.Partition == nil {
		cfg.policy.Partition = splitpolicy.BalancedPartition[T]
	}

	return &Tree[T]{cfg: cfg, index: make(map[T]struct{})}, nil
}

// Add inserts x into the tree. It returns an error if x is already
// present.
func (t *Tree[T]) Add(x T) error {
	if _, exists := t.index[x]; exists {
		return errs.InvalidArgument("mtree.Add", "value already present in tree")
	}

	if t.root == nil {
		t.root = newNode[T](kindRootLeaf, x)
		t.root.addEntry(x, 0)
		t.index[x] = struct{}{}
		return nil
	}

	dist := t.cfg.distance(t.root.data, x)
	sp, err := t.root.addData(&t.cfg, x, dist)
	if err != nil {
		return err
	}
	if sp != nil {
		newRoot := newNode[T](kindRootInternal, t.root.data)
		if err := newRoot.addChild(&t.cfg, sp.n1, t.cfg.distance(newRoot.data, sp.n1.data)); err != nil {
			return err
		}
		if err := newRoot.addChild(&t.cfg, sp.n2, t.cfg.distance(newRoot.data, sp.n2.data)); err != nil {
			return err
		}
		t.root = newRoot
	}

	t.index[x] = struct{}{}
	return nil
}

// Remove deletes x from the tree. It returns an error wrapping
// ErrNotFound if x is not present.
func (t *Tree[T]) Remove(x T) error {
	if _, exists := t.index[x]; !exists {
		return errs.NotFound("mtree.Remove")
	}

	dist := t.cfg.distance(t.root.data, x)
	status, err := t.root.removeData(&t.cfg, x, dist)
	if err != nil {
		return err
	}
	if status == removeNotFound {
		return errs.NotFound("mtree.Remove")
	}
	delete(t.index, x)

	switch {
	case t.root.itemCount() == 0:
		t.root = nil
	case t.root.kind == kindRootInternal && t.root.itemCount() == 1:
		var only *node[T]
		for _, c := range t.root.children {
			only = c
		}
		if only.isLeafKind() {
			only.kind = kindRootLeaf
		} else {
			only.kind = kindRootInternal
		}
		only.parentDist = 0
		t.root = only
	}
	return nil
}

// Len reports the number of distinct values currently indexed.
func (t *Tree[T]) Len() int {
	return len(t.index)
}

// TreeStats summarizes the tree's current shape, useful for tuning
// capacity bounds and split policies.
type TreeStats struct {
	Height        int
	NodeCount     int
	EntryCount    int
	AvgFillFactor float64
}

// Stats walks the tree and reports its shape. It runs in O(n).
func (t *Tree[T]) Stats() TreeStats {
	if t.root == nil {
		return TreeStats{}
	}

	var nodeCount, entryCount int
	var fillSum float64
	maxDepth := 0

	var walk func(n *node[T], depth int)
	walk = func(n *node[T], depth int) {
		nodeCount++
		if depth > maxDepth {
			maxDepth = depth
		}
		fillSum += float64(n.itemCount()) / float64(t.cfg.maxCap)
		if n.isLeafKind() {
			entryCount += len(n.entries)
			return
		}
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	walk(t.root, 0)

	return TreeStats{
		Height:        maxDepth + 1,
		NodeCount:     nodeCount,
		EntryCount:    entryCount,
		AvgFillFactor: fillSum / float64(nodeCount),
	}
}
