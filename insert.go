package mtree

import (
	"fmt"

	"github.com/scigolib/mtree/internal/distcache"
	"github.com/scigolib/mtree/internal/splitpolicy"
	"github.com/scigolib/mtree/internal/telemetry"
)

// splitPair carries the two replacement nodes produced when a node
// overflows (section 4.5.4's SplitReplacement signal, modeled as an
// explicit return value per REDESIGN FLAGS instead of an exception).
type splitPair[T comparable] struct {
	n1, n2 *node[T]
}

// addData is the insert engine's node-level entry point (4.5.1/4.5.2):
// leaf nodes place the entry directly, internal nodes descend into the
// best child and absorb a SplitReplacement from below if one occurs.
func (n *node[T]) addData(cfg *config[T], x T, dist float64) (*splitPair[T], error) {
	if n.isLeafKind() {
		n.addEntry(x, dist)
	} else {
		child, childDist := n.chooseChild(cfg, x)
		sp, err := child.addData(cfg, x, childDist)
		if err != nil {
			return nil, err
		}
		if sp != nil {
			delete(n.children, child.data)
			if err := n.addChild(cfg, sp.n1, cfg.distance(n.data, sp.n1.data)); err != nil {
				return nil, err
			}
			if err := n.addChild(cfg, sp.n2, cfg.distance(n.data, sp.n2.data)); err != nil {
				return nil, err
			}
		} else {
			n.updateRadiusForChild(child)
		}
	}

	if n.itemCount() > cfg.maxCap {
		return n.split(cfg)
	}
	return nil, nil
}

// addChild attaches child to an internal node at the given precomputed
// distance (4.5.3). If child's representative collides with an
// existing child's — which happens when a split promotes a
// representative that is already a peer's representative — the two are
// merged: child's own children are absorbed into the existing one, its
// capacity is rechecked, and an overflow there is split and replayed.
// The replay loop is bounded because each split strictly shrinks the
// set being re-inserted.
func (n *node[T]) addChild(cfg *config[T], child *node[T], dist float64) error {
	if existing, ok := n.children[child.data]; ok {
		for k, c := range child.children {
			existing.children[k] = c
		}
		for k, e := range child.entries {
			existing.entries[k] = e
		}
		if child.radius > existing.radius {
			existing.radius = child.radius
		}
		cfg.tel.Record(telemetry.EventMerge, map[string]any{"representative": fmt.Sprint(existing.data)})

		if existing.itemCount() > cfg.maxCap {
			sp, err := existing.split(cfg)
			if err != nil {
				return err
			}
			delete(n.children, existing.data)
			if err := n.addChild(cfg, sp.n1, cfg.distance(n.data, sp.n1.data)); err != nil {
				return err
			}
			return n.addChild(cfg, sp.n2, cfg.distance(n.data, sp.n2.data))
		}
		n.updateRadiusForChild(existing)
		return nil
	}

	child.parentDist = dist
	n.children[child.data] = child
	n.updateRadiusForChild(child)
	return nil
}

// split handles node overflow (4.5.4): a fresh distance cache scopes
// the split policy's distance calls, the policy partitions the
// overflowing child set into two representative-anchored halves, and
// each half is moved into a freshly created node of the same kind.
func (n *node[T]) split(cfg *config[T]) (*splitPair[T], error) {
	keys := n.dataKeys()
	cache := distcache.New(cfg.distance)

	p1, s1, p2, s2 := splitpolicy.Split(cfg.policy, keys, cache.Distance)
	if len(s1) < cfg.minCap || len(s2) < cfg.minCap {
		return nil, fmt.Errorf("mtree: split policy produced an undersized partition (%d, %d), each side must hold at least %d", len(s1), len(s2), cfg.minCap)
	}

	newKind := kindLeaf
	if n.isInternalKind() {
		newKind = kindInternal
	}
	n1 := newNode[T](newKind, p1)
	n2 := newNode[T](newKind, p2)

	if n.isLeafKind() {
		for _, k := range s1 {
			n1.addEntry(k, cache.Distance(p1, k))
		}
		for _, k := range s2 {
			n2.addEntry(k, cache.Distance(p2, k))
		}
	} else {
		for _, k := range s1 {
			if err := n1.addChild(cfg, n.children[k], cache.Distance(p1, k)); err != nil {
				return nil, err
			}
		}
		for _, k := range s2 {
			if err := n2.addChild(cfg, n.children[k], cache.Distance(p2, k)); err != nil {
				return nil, err
			}
		}
	}

	cfg.tel.Record(telemetry.EventSplit, map[string]any{"left": len(s1), "right": len(s2)})
	return &splitPair[T]{n1: n1, n2: n2}, nil
}
