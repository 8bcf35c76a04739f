package mtree

import (
	"iter"
	"math"

	mheap "github.com/scigolib/mtree/internal/heap"
)

// searchConfig holds the optional bounds a GetNearest call can be
// narrowed by (4.7.1): an inclusive result radius and a result count
// cap. Both default to unbounded.
type searchConfig struct {
	radius float64
	limit  int
}

// SearchOption narrows a GetNearest query.
type SearchOption func(*searchConfig)

// WithRange restricts results to those within radius of the query
// point, inclusive.
func WithRange(radius float64) SearchOption {
	return func(c *searchConfig) { c.radius = radius }
}

// WithLimit caps the number of results yielded. A negative or zero
// limit is treated as unbounded.
func WithLimit(limit int) SearchOption {
	return func(c *searchConfig) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

type pendingEntry[T comparable] struct {
	n    *node[T]
	dmin float64
}

type candidate[T comparable] struct {
	data T
	dist float64
}

// GetNearest performs a best-first nearest-neighbor search from query
// (4.7): a Pending queue of not-yet-expanded nodes, keyed by their
// lower-bound distance (dmin), and a Nearest queue of discovered but
// not-yet-yielded entries, keyed by exact distance. An entry is only
// yielded once no unexpanded node could possibly hold something
// closer, which is what guarantees the sequence comes out in
// nondecreasing distance order.
//
// The returned iterator is lazy: stopping the range early (via break,
// or the limit option) skips expanding the remainder of the tree.
func (t *Tree[T]) GetNearest(query T, opts ...SearchOption) iter.Seq2[T, float64] {
	cfg := searchConfig{radius: math.Inf(1), limit: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(yield func(T, float64) bool) {
		if t.root == nil {
			return
		}

		pending := mheap.New(func(p pendingEntry[T]) float64 { return p.dmin })
		nearest := mheap.New(func(c candidate[T]) float64 { return c.dist })

		rootDist := t.cfg.distance(t.root.data, query)
		rootDmin := rootDist - t.root.radius
		if rootDmin < 0 {
			rootDmin = 0
		}
		pending.Push(pendingEntry[T]{n: t.root, dmin: rootDmin})

		dk := cfg.radius
		yielded := 0

		for pending.Len() > 0 || nearest.Len() > 0 {
			for nearest.Len() > 0 && (pending.Len() == 0 || nearest.PeekKey() <= pending.PeekKey()) {
				c := nearest.Pop()
				if cfg.limit >= 0 && yielded >= cfg.limit {
					return
				}
				if !yield(c.data, c.dist) {
					return
				}
				yielded++
				if cfg.limit >= 0 && yielded >= cfg.limit {
					dk = c.dist
				}
			}

			if pending.Len() == 0 {
				break
			}
			top := pending.Pop()
			if top.dmin > dk {
				break
			}

			if top.n.isLeafKind() {
				for k := range top.n.entries {
					d := t.cfg.distance(k, query)
					if d <= dk {
						nearest.Push(candidate[T]{data: k, dist: d})
					}
				}
				continue
			}
			for k, c := range top.n.children {
				d := t.cfg.distance(k, query)
				dmin := d - c.radius
				if dmin < 0 {
					dmin = 0
				}
				if dmin <= dk {
					pending.Push(pendingEntry[T]{n: c, dmin: dmin})
				}
			}
		}
	}
}
