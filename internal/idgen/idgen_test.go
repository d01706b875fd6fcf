package idgen_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/p-rusnak/supER/internal/idgen"
)

func TestGenerator_Next_Distinct(t *testing.T) {
	g := idgen.New()

	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		id := g.Next()
		assert.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
	}
}

func TestGenerator_Next_MonotonicWithFrozenClock(t *testing.T) {
	// A frozen clock forces every call into the last+1 branch.
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := idgen.NewWithClock(func() time.Time { return frozen })

	prev := g.Next()
	for i := 0; i < 100; i++ {
		next := g.Next()
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestGenerator_Next_TracksClock(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := idgen.NewWithClock(func() time.Time { return at })

	assert.Equal(t, at.UnixMilli(), g.Next())

	at = at.Add(5 * time.Millisecond)
	assert.Equal(t, at.UnixMilli(), g.Next())
}

func TestGenerator_Seed_RaisesFloor(t *testing.T) {
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := idgen.NewWithClock(func() time.Time { return frozen })

	// Pretend a loaded snapshot contained an ID far in the future.
	floor := frozen.UnixMilli() + 1_000_000
	g.Seed(floor)

	assert.Equal(t, floor+1, g.Next())
}

func TestGenerator_Seed_LowerValueIgnored(t *testing.T) {
	g := idgen.New()

	first := g.Next()
	g.Seed(first - 100) // must not rewind
	assert.Greater(t, g.Next(), first)
}
