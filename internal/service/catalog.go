// Package service contains the business logic for the escape-room trip planner.
// Services validate inputs, enforce business rules, and own the in-memory
// state. No serialization lives here — persistence goes through the snapshot
// adapter interface.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/p-rusnak/supER/internal/domain"
	"github.com/p-rusnak/supER/internal/idgen"
)

// Snapshotter is the persistence surface the catalog depends on.
// snapshot.Adapter satisfies it; tests may substitute a recording fake.
type Snapshotter interface {
	Save(ctx context.Context, rooms []domain.Room, selected []int64) error
	Load(ctx context.Context) ([]domain.Room, []int64, error)
}

// Catalog owns the room list and the trip selection set.
//
// There is exactly one logical writer (the user), but HTTP handlers run
// concurrently, so a mutex serializes all access — every operation still runs
// to completion atomically, preserving the single-writer contract. A snapshot
// is written synchronously after each mutation.
type Catalog struct {
	mu       sync.Mutex
	rooms    []domain.Room
	selected map[int64]struct{}
	ids      *idgen.Generator
	snaps    Snapshotter
	now      func() time.Time
}

// Option configures a Catalog at construction time.
type Option func(*Catalog)

// WithClock overrides the wall clock used for review timestamps. Tests use it
// for deterministic dates.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

// WithIDGenerator overrides the room ID generator.
func WithIDGenerator(g *idgen.Generator) Option {
	return func(c *Catalog) { c.ids = g }
}

// NewCatalog constructs an empty Catalog persisting through snaps.
// Call Load before serving requests to pick up prior state.
func NewCatalog(snaps Snapshotter, opts ...Option) *Catalog {
	c := &Catalog{
		selected: make(map[int64]struct{}),
		ids:      idgen.New(),
		snaps:    snaps,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load replaces in-memory state with the persisted snapshot. Invoked once at
// startup; absent or malformed entries come back as empty state from the
// adapter, so Load only fails on real store I/O errors.
//
// The ID generator is seeded past the highest loaded ID so new rooms can
// never collide with restored ones.
func (c *Catalog) Load(ctx context.Context) error {
	rooms, selected, err := c.snaps.Load(ctx)
	if err != nil {
		return fmt.Errorf("service.Catalog.Load: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.rooms = rooms
	c.selected = make(map[int64]struct{}, len(selected))
	for _, id := range selected {
		c.selected[id] = struct{}{}
	}
	for _, r := range rooms {
		c.ids.Seed(r.ID)
	}
	return nil
}

// AddRoom validates input, appends a new room to the catalog, and persists.
// Duplicate names are permitted. Returns domain.ErrValidation for an empty
// name or a difficulty outside 1–10.
func (c *Catalog) AddRoom(ctx context.Context, name, location string, difficulty int) (domain.Room, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Room{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if difficulty < 1 || difficulty > 10 {
		return domain.Room{}, fmt.Errorf("%w: difficulty must be between 1 and 10", domain.ErrValidation)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	room := domain.Room{
		ID:         c.ids.Next(),
		Name:       name,
		Location:   location,
		Difficulty: difficulty,
		Rating:     0,
		Reviews:    []domain.Review{},
	}
	c.rooms = append(c.rooms, room)

	if err := c.save(ctx); err != nil {
		return domain.Room{}, fmt.Errorf("service.Catalog.AddRoom: %w", err)
	}
	return room, nil
}

// GetRoom returns a single room by ID.
// Returns domain.ErrNotFound if no room with that ID exists.
func (c *Catalog) GetRoom(_ context.Context, id int64) (domain.Room, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(id); i >= 0 {
		return cloneRoom(c.rooms[i]), nil
	}
	return domain.Room{}, fmt.Errorf("service.Catalog.GetRoom: %w", domain.ErrNotFound)
}

// ListRooms returns all rooms in catalog (insertion) order.
// Always returns a non-nil slice so callers can safely range over it.
func (c *Catalog) ListRooms(_ context.Context) ([]domain.Room, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Room, len(c.rooms))
	for i, r := range c.rooms {
		out[i] = cloneRoom(r)
	}
	return out, nil
}

// Rate appends a star review to a room and recomputes its mean rating.
// Returns domain.ErrValidation when stars is outside 1–5.
//
// Rating a room that does not exist is a deliberate no-op: nothing changes
// and the second return is false. That mirrors long-standing behavior where
// a stale rating click simply does nothing.
func (c *Catalog) Rate(ctx context.Context, roomID int64, stars int) (domain.Room, bool, error) {
	if stars < 1 || stars > 5 {
		return domain.Room{}, false, fmt.Errorf("%w: rating must be between 1 and 5 stars", domain.ErrValidation)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(roomID)
	if i < 0 {
		return domain.Room{}, false, nil
	}

	c.rooms[i].AddReview(domain.NewReview(stars, c.now()))

	if err := c.save(ctx); err != nil {
		return domain.Room{}, false, fmt.Errorf("service.Catalog.Rate: %w", err)
	}
	return cloneRoom(c.rooms[i]), true, nil
}

// Toggle flips trip membership for roomID and returns the new state.
// It is its own inverse and performs no existence check: the selection set
// legally tolerates stale IDs, which SelectedRooms filters out.
func (c *Catalog) Toggle(ctx context.Context, roomID int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, present := c.selected[roomID]
	if present {
		delete(c.selected, roomID)
	} else {
		c.selected[roomID] = struct{}{}
	}

	if err := c.save(ctx); err != nil {
		return false, fmt.Errorf("service.Catalog.Toggle: %w", err)
	}
	return !present, nil
}

// IsSelected reports whether roomID is currently marked for the trip.
func (c *Catalog) IsSelected(roomID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.selected[roomID]
	return ok
}

// SelectedRooms returns the selected rooms in catalog order.
// IDs in the selection set without a matching room are skipped.
// Always returns a non-nil slice.
func (c *Catalog) SelectedRooms(_ context.Context) ([]domain.Room, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := []domain.Room{}
	for _, r := range c.rooms {
		if _, ok := c.selected[r.ID]; ok {
			out = append(out, cloneRoom(r))
		}
	}
	return out, nil
}

// save writes the full snapshot. Caller must hold c.mu.
func (c *Catalog) save(ctx context.Context) error {
	selected := make([]int64, 0, len(c.selected))
	for _, r := range c.rooms {
		if _, ok := c.selected[r.ID]; ok {
			selected = append(selected, r.ID)
		}
	}
	// Stale IDs still persist — they round-trip so the set is stable even if
	// a matching room only appears later (e.g. state merged from elsewhere).
	for id := range c.selected {
		if c.indexOf(id) < 0 {
			selected = append(selected, id)
		}
	}
	return c.snaps.Save(ctx, c.rooms, selected)
}

// indexOf returns the position of roomID in the catalog, or -1.
// Linear scan: the catalog is a small in-memory list with no delete.
func (c *Catalog) indexOf(id int64) int {
	for i, r := range c.rooms {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// cloneRoom copies a room deeply enough that callers cannot alias the
// catalog's review slice.
func cloneRoom(r domain.Room) domain.Room {
	out := r
	out.Reviews = append([]domain.Review(nil), r.Reviews...)
	if out.Reviews == nil {
		out.Reviews = []domain.Review{}
	}
	return out
}
