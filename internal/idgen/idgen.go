// Package idgen generates room identifiers.
//
// IDs are millisecond timestamps at creation time, which matches the format
// of identifiers already present in persisted snapshots. Because two rooms
// can be created within the same millisecond, the generator bumps past the
// last issued value to stay strictly monotonic within a session.
package idgen

import (
	"sync"
	"time"
)

// Generator issues unique, strictly increasing int64 identifiers.
// The zero value is not usable; construct with New.
type Generator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// New returns a Generator backed by the wall clock.
func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock returns a Generator backed by the given clock. Tests use this
// to make issued IDs deterministic.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Next returns a fresh identifier: the current time in milliseconds, or
// last+1 if the clock has not advanced since the previous call.
func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Seed raises the generator's floor so it never re-issues an identifier
// already present in loaded state. Calls with lower values are no-ops.
func (g *Generator) Seed(floor int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if floor > g.last {
		g.last = floor
	}
}
