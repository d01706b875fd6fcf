package domain

import "github.com/google/uuid"

// ItineraryEntry is a derived schedule slot assigning a time window to one
// selected room. Entries are recomputed on every planning request and are
// never persisted.
type ItineraryEntry struct {
	Room Room `json:"room"`

	// StartTime and EndTime are pre-formatted 12-hour clock strings
	// (e.g. "9:00 AM"). Formatting lives with the planner so the entry is
	// ready for read-only rendering.
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	// DurationHours is this room's share of the total trip duration.
	DurationHours float64 `json:"duration_hours"`
}

// TripPlan is the full output of one planning request: a summary plus the
// ordered itinerary. Like its entries it is derived state only.
type TripPlan struct {
	// PlanID correlates a generated plan in logs and client state.
	// A fresh ID is assigned per request; plans are not stored.
	PlanID uuid.UUID `json:"plan_id"`

	TotalHours   float64 `json:"total_hours"`
	PerRoomHours float64 `json:"per_room_hours"`
	RoomCount    int     `json:"room_count"`

	// StartLocation is echoed from the request for the plan summary.
	// It does not influence scheduling.
	StartLocation string `json:"start_location,omitempty"`

	Entries []ItineraryEntry `json:"entries"`
}
