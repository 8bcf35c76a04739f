// Package distcache implements the per-split symmetric distance memoizer.
//
// Its lifetime is scoped to a single overflow handling: a cache is
// created fresh before a split and discarded once the split completes.
// It bounds the distance computations performed during a split to
// O(n^2) worst case while typically doing far fewer, since the default
// balanced partitioner only ever asks for distances to the two
// promoted pivots.
package distcache

type key[T comparable] struct {
	a, b T
}

// Cache memoizes a distance function over one split's lifetime.
type Cache[T comparable] struct {
	distance func(a, b T) float64
	values   map[key[T]]float64
}

// New wraps distance with a fresh, empty cache.
func New[T comparable](distance func(a, b T) float64) *Cache[T] {
	return &Cache[T]{
		distance: distance,
		values:   make(map[key[T]]float64),
	}
}

// Distance returns distance(a, b), computing and storing it (and its
// symmetric counterpart) on first request for the unordered pair.
func (c *Cache[T]) Distance(a, b T) float64 {
	if v, ok := c.values[key[T]{a, b}]; ok {
		return v
	}
	d := c.distance(a, b)
	c.values[key[T]{a, b}] = d
	c.values[key[T]{b, a}] = d
	return d
}
