package mtree

import (
	"math"

	"github.com/scigolib/mtree/internal/telemetry"
)

// removeStatus reports how a removal left the node it completed in,
// modeled as an explicit enum (REDESIGN FLAGS: in place of the
// source's exception-carried RemoveOutcome) so callers can react
// without unwinding a panic.
type removeStatus uint8

const (
	removeOK removeStatus = iota
	removeUnderCapacity
	removeNotFound
)

// removeData implements the delete engine's node-level entry point
// (4.6.1): leaf nodes delete directly; internal nodes try every child
// whose covering disk could contain x, since overlapping regions mean
// more than one candidate may need to be tried before x is found.
func (n *node[T]) removeData(cfg *config[T], x T, dist float64) (removeStatus, error) {
	if n.isLeafKind() {
		if _, ok := n.entries[x]; !ok {
			return removeNotFound, nil
		}
		delete(n.entries, x)
		if n.itemCount() < n.minCapacity(cfg) {
			return removeUnderCapacity, nil
		}
		return removeOK, nil
	}

	for _, c := range n.children {
		d := cfg.distance(c.data, x)
		if d > c.radius {
			continue
		}
		status, err := c.removeData(cfg, x, d)
		if err != nil {
			return removeOK, err
		}
		if status == removeNotFound {
			continue
		}
		if status == removeUnderCapacity {
			if err := n.balanceChildren(cfg, c); err != nil {
				return removeOK, err
			}
		}
		if n.itemCount() < n.minCapacity(cfg) {
			return removeUnderCapacity, nil
		}
		return removeOK, nil
	}
	return removeNotFound, nil
}

// balanceChildren resolves an undercapacity child (4.6.2) by finding
// the nearest sibling able to donate (occupancy above its own minimum)
// and the nearest sibling that is only a merge candidate (at its
// minimum). A donor is preferred whenever one exists, however far,
// over a nearer sibling that can only merge; only the absence of any
// donor falls back to merging with the nearest merge candidate.
func (n *node[T]) balanceChildren(cfg *config[T], child *node[T]) error {
	var donor, mergeCandidate *node[T]
	donorDist, mergeDist := math.Inf(1), math.Inf(1)

	for k, c := range n.children {
		if k == child.data {
			continue
		}
		d := cfg.distance(c.data, child.data)
		if c.itemCount() > c.minCapacity(cfg) {
			if d < donorDist {
				donor, donorDist = c, d
			}
		} else {
			if d < mergeDist {
				mergeCandidate, mergeDist = c, d
			}
		}
	}

	if donor == nil {
		if mergeCandidate == nil {
			return nil
		}
		return n.merge(cfg, mergeCandidate, child)
	}
	return n.donate(cfg, donor, child)
}

// donate moves the single item of sibling closest to child's
// representative over to child. Sibling's radius is left as-is: the
// covering-radius invariant is an upper bound, so an overestimate
// after losing an item remains valid.
func (n *node[T]) donate(cfg *config[T], sibling, child *node[T]) error {
	if sibling.isLeafKind() {
		var bestKey T
		var bestDist float64
		found := false
		for k := range sibling.entries {
			d := cfg.distance(k, child.data)
			if !found || d < bestDist {
				bestKey, bestDist, found = k, d, true
			}
		}
		if !found {
			return nil
		}
		delete(sibling.entries, bestKey)
		child.addEntry(bestKey, bestDist)
	} else {
		var bestKey T
		var bestDist float64
		found := false
		for k := range sibling.children {
			d := cfg.distance(k, child.data)
			if !found || d < bestDist {
				bestKey, bestDist, found = k, d, true
			}
		}
		if !found {
			return nil
		}
		moved := sibling.children[bestKey]
		delete(sibling.children, bestKey)
		moved.parentDist = bestDist
		child.children[bestKey] = moved
		child.updateRadiusForChild(moved)
	}

	cfg.tel.Record(telemetry.EventDonate, nil)
	n.updateRadiusForChild(child)
	return nil
}

// merge absorbs every item of child into sibling and drops child from
// n. A resulting overflow in sibling is handled exactly as a normal
// insert overflow would be: split sibling and replace it with the two
// halves.
func (n *node[T]) merge(cfg *config[T], sibling, child *node[T]) error {
	if sibling.isLeafKind() {
		for k := range child.entries {
			sibling.addEntry(k, cfg.distance(k, sibling.data))
		}
	} else {
		for k, c := range child.children {
			if err := sibling.addChild(cfg, c, cfg.distance(k, sibling.data)); err != nil {
				return err
			}
		}
	}
	delete(n.children, child.data)
	cfg.tel.Record(telemetry.EventMerge, nil)

	if sibling.itemCount() > cfg.maxCap {
		sp, err := sibling.split(cfg)
		if err != nil {
			return err
		}
		delete(n.children, sibling.data)
		if err := n.addChild(cfg, sp.n1, cfg.distance(n.data, sp.n1.data)); err != nil {
			return err
		}
		return n.addChild(cfg, sp.n2, cfg.distance(n.data, sp.n2.data))
	}
	n.updateRadiusForChild(sibling)
	return nil
}
