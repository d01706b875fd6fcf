// Package snapshot is the persistence adapter: it serializes the full room
// catalog and the trip selection set into two independent JSON entries of a
// key-value store and reads them back at startup.
//
// The wire format is the contract — byte-layout-compatible with the blobs the
// app has always written, so snapshots survive backend swaps unchanged:
//
//	escapeRooms          [{"id":...,"name":...,"location":...,"difficulty":...,"rating":...,"reviews":[{"rating":...,"date":"..."}]}]
//	selectedRoomsForTrip [id, id, ...]
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/p-rusnak/supER/internal/domain"
	"github.com/p-rusnak/supER/internal/store"
)

// Store keys. These names predate this implementation; do not rename.
const (
	roomsKey     = "escapeRooms"
	selectionKey = "selectedRoomsForTrip"
)

// Adapter saves and loads application state through a store.Store.
type Adapter struct {
	store store.Store
	log   *slog.Logger
}

// New constructs an Adapter over the given store.
// A nil logger falls back to slog.Default.
func New(s store.Store, log *slog.Logger) *Adapter {
	if log == nil {
		log = slog.Default()
	}
	return &Adapter{store: s, log: log}
}

// Save overwrites both entries with the current state.
// Called after every mutation; the two writes are independent, matching the
// original two-entry layout.
func (a *Adapter) Save(ctx context.Context, rooms []domain.Room, selected []int64) error {
	roomsJSON, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("snapshot.Adapter.Save: marshal rooms: %w", err)
	}
	if err := a.store.Set(ctx, roomsKey, string(roomsJSON)); err != nil {
		return fmt.Errorf("snapshot.Adapter.Save: %w", err)
	}

	selectedJSON, err := json.Marshal(selected)
	if err != nil {
		return fmt.Errorf("snapshot.Adapter.Save: marshal selection: %w", err)
	}
	if err := a.store.Set(ctx, selectionKey, string(selectedJSON)); err != nil {
		return fmt.Errorf("snapshot.Adapter.Save: %w", err)
	}
	return nil
}

// Load reads both entries. An absent or malformed entry yields its empty
// default rather than an error — there is no schema versioning, so a format
// drift degrades to a fresh state instead of refusing to start. Malformed
// data is logged at warn level before being discarded.
//
// Only genuine store I/O failures are returned as errors.
func (a *Adapter) Load(ctx context.Context) ([]domain.Room, []int64, error) {
	rooms := []domain.Room{}
	if raw, ok, err := a.store.Get(ctx, roomsKey); err != nil {
		return nil, nil, fmt.Errorf("snapshot.Adapter.Load: %w", err)
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &rooms); err != nil {
			a.log.Warn("discarding malformed rooms entry", "key", roomsKey, "error", err)
			rooms = []domain.Room{} // a partial decode must not leak through
		}
		if rooms == nil { // a stored JSON null also counts as empty
			rooms = []domain.Room{}
		}
	}

	selected := []int64{}
	if raw, ok, err := a.store.Get(ctx, selectionKey); err != nil {
		return nil, nil, fmt.Errorf("snapshot.Adapter.Load: %w", err)
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &selected); err != nil {
			a.log.Warn("discarding malformed selection entry", "key", selectionKey, "error", err)
			selected = []int64{}
		}
		if selected == nil {
			selected = []int64{}
		}
	}

	return rooms, selected, nil
}
