package mtree

import (
	"github.com/scigolib/mtree/internal/splitpolicy"
	"github.com/scigolib/mtree/internal/telemetry"
)

// Distance is a user-supplied metric: non-negative, zero only for equal
// inputs, symmetric, and subadditive (the triangle inequality). The
// tree's correctness depends on these axioms; a violating function is
// undefined behavior per section 7.
type Distance[T any] func(a, b T) float64

// config bundles everything a node needs to perform a mutation but
// that the tree itself owns: the distance function, the split policy,
// capacity bounds, and the optional telemetry sink. Node methods take
// a *config[T] instead of reaching back into *Tree[T] so node.go has
// no dependency on the top-level type.
type config[T comparable] struct {
	distance Distance[T]
	policy   splitpolicy.Policy[T]
	minCap   int
	maxCap   int
	tel      *telemetry.Collector
}
