// Package splitpolicy implements the pluggable (promote, partition)
// pair that the insert engine uses to resolve node overflow.
//
// The default policy is random promotion plus balanced partition.
// Callers needing deterministic behavior (tests, reproducible
// fixtures) substitute SortedPromotion.
package splitpolicy

import (
	"math/rand/v2"

	mheap "github.com/scigolib/mtree/internal/heap"
)

// Distance is the (T, T) -> float64 shape used below. Callers pass
// their own distance function value directly; Go allows this without
// conversion because a value of the unnamed type func(a, b T) float64
// is assignable to Distance[T].
type Distance[T any] func(a, b T) float64

// Promote picks two distinct elements of s to become representatives
// of the two successor nodes.
type Promote[T any] func(s []T, d Distance[T]) (T, T)

// Partition assigns every element of s to exactly one of two subsets,
// with p1 in the first and p2 in the second.
type Partition[T any] func(p1, p2 T, s []T, d Distance[T]) (s1, s2 []T)

// Policy bundles a promotion and a partition strategy.
type Policy[T comparable] struct {
	Promote   Promote[T]
	Partition Partition[T]
}

// Split composes Promote and Partition: it picks the two pivots and
// then assigns every element of s to one of the two resulting sides.
func Split[T comparable](policy Policy[T], s []T, d Distance[T]) (p1 T, s1 []T, p2 T, s2 []T) {
	p1, p2 = policy.Promote(s, d)
	s1, s2 = policy.Partition(p1, p2, s, d)
	return p1, s1, p2, s2
}

// RandomPromotion returns a Promote that picks two distinct elements
// of s uniformly at random, using rng. Pass a seeded *rand.Rand for
// reproducible runs.
func RandomPromotion[T any](rng *rand.Rand) Promote[T] {
	return func(s []T, _ Distance[T]) (T, T) {
		i := rng.IntN(len(s))
		j := rng.IntN(len(s) - 1)
		if j >= i {
			j++
		}
		return s[i], s[j]
	}
}

// SortedPromotion returns a deterministic Promote that returns the
// (min, max) of s under less, found by one scan without reordering s.
// The test suite uses this in place of random
// promotion so scenarios are reproducible.
func SortedPromotion[T any](less func(a, b T) bool) Promote[T] {
	return func(s []T, _ Distance[T]) (T, T) {
		minI, maxI := 0, 0
		for i := 1; i < len(s); i++ {
			if less(s[i], s[minI]) {
				minI = i
			}
			if less(s[maxI], s[i]) {
				maxI = i
			}
		}
		return s[minI], s[maxI]
	}
}

// BalancedPartition is the default Partition strategy of 4.2: two
// priority queues, keyed by distance to each pivot, alternately
// contribute their nearest still-unassigned element to their side
// until both are exhausted.
func BalancedPartition[T comparable](p1, p2 T, s []T, d Distance[T]) (s1, s2 []T) {
	in1 := make(map[T]bool, len(s))
	in2 := make(map[T]bool, len(s))

	q1 := mheap.New(func(x T) float64 { return d(x, p1) })
	q2 := mheap.New(func(x T) float64 { return d(x, p2) })
	for _, x := range s {
		q1.Push(x)
		q2.Push(x)
	}

	for q1.Len() > 0 || q2.Len() > 0 {
		for q1.Len() > 0 {
			x := q1.Pop()
			if !in2[x] {
				in1[x] = true
				s1 = append(s1, x)
				break
			}
		}
		for q2.Len() > 0 {
			x := q2.Pop()
			if !in1[x] {
				in2[x] = true
				s2 = append(s2, x)
				break
			}
		}
	}
	return s1, s2
}
