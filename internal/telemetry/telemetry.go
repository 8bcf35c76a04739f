// Package telemetry provides optional, low-overhead instrumentation for
// tree mutations and search traversal.
//
// It is adapted from the counter/snapshot shape of a metrics collector:
// plain counters with no atomics and no mutex (mutation and search are
// already mutually exclusive per the tree's single-writer model, so a
// Collector does no locking and is not safe for concurrent use), plus
// an optional zerolog sink for anyone who wants a live event stream rather than a
// periodic snapshot. With no logger attached, Record is a cheap map
// increment; with neither a collector attached at all (the common case),
// the tree's call site does nothing.
package telemetry

import (
	"github.com/rs/zerolog"
)

// Event names one kind of structural change or traversal step recorded
// by a Collector.
type Event string

const (
	EventSplit       Event = "split"
	EventMerge       Event = "merge"
	EventDonate      Event = "donate"
	EventRootReplace Event = "root_replace"
	EventNodeVisited Event = "node_visited"
)

// Collector accumulates counts of structural events and, when a logger
// is attached, forwards each event as a debug-level structured log line.
type Collector struct {
	logger *zerolog.Logger
	counts map[Event]int64
}

// New creates a Collector. logger may be nil to disable log forwarding
// while still accumulating counts.
func New(logger *zerolog.Logger) *Collector {
	return &Collector{
		logger: logger,
		counts: make(map[Event]int64),
	}
}

// Record increments the count for event and, if a logger is attached,
// emits a debug-level log line carrying fields as key/value pairs.
func (c *Collector) Record(event Event, fields map[string]any) {
	if c == nil {
		return
	}
	c.counts[event]++
	if c.logger == nil {
		return
	}
	e := c.logger.Debug().Str("event", string(event))
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	e.Msg("mtree structural event")
}

// Snapshot returns a copy of the accumulated event counts.
func (c *Collector) Snapshot() map[Event]int64 {
	if c == nil {
		return nil
	}
	out := make(map[Event]int64, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}
