package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/p-rusnak/supER/internal/domain"
)

// tripStartHour is the fixed anchor for every itinerary: 9:00 AM on an
// abstract clock. Times are plain fractional hours, not calendar instants.
const tripStartHour = 9.0

// Planner builds trip itineraries from a selection of rooms. It is stateless
// and pure — plans are derived views, never persisted.
type Planner struct{}

// NewPlanner constructs a Planner.
func NewPlanner() *Planner {
	return &Planner{}
}

// Plan distributes totalHours evenly across the given rooms and assigns each
// a consecutive time slot starting at 9:00 AM.
//
// Rooms are visited best-rated first; equal ratings keep their catalog order
// (stable sort). Returns domain.ErrEmptySelection when rooms is empty and
// domain.ErrValidation when totalHours is not positive.
//
// A trip longer than 15 hours runs past midnight and the displayed hour just
// keeps counting — slots never wrap to a next day.
func (p *Planner) Plan(rooms []domain.Room, totalHours float64, startLocation string) (domain.TripPlan, error) {
	if len(rooms) == 0 {
		return domain.TripPlan{}, fmt.Errorf("%w: select at least one room to plan a trip", domain.ErrEmptySelection)
	}
	if totalHours <= 0 {
		return domain.TripPlan{}, fmt.Errorf("%w: trip duration must be a positive number of hours", domain.ErrValidation)
	}

	ordered := append([]domain.Room(nil), rooms...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Rating > ordered[j].Rating
	})

	perRoom := totalHours / float64(len(ordered))

	entries := make([]domain.ItineraryEntry, 0, len(ordered))
	current := tripStartHour
	for _, room := range ordered {
		entries = append(entries, domain.ItineraryEntry{
			Room:          room,
			StartTime:     FormatClock(current),
			EndTime:       FormatClock(current + perRoom),
			DurationHours: perRoom,
		})
		current += perRoom
	}

	return domain.TripPlan{
		PlanID:        uuid.New(),
		TotalHours:    totalHours,
		PerRoomHours:  perRoom,
		RoomCount:     len(ordered),
		StartLocation: startLocation,
		Entries:       entries,
	}, nil
}

// FormatClock renders fractional hours as a 12-hour clock string, e.g.
// 9.5 → "9:30 AM", 13.0 → "1:00 PM".
//
// Hour 0 renders as 12 so midnight never shows as "0:xx". Hours past 24 keep
// counting (25.0 → "13:00 PM") and minutes round to the nearest whole minute
// even when that lands on :60 — both quirks are preserved deliberately so
// rendered plans match historical output.
func FormatClock(hours float64) string {
	h := int(math.Floor(hours))
	m := int(math.Round((hours - float64(h)) * 60))

	period := "AM"
	if h >= 12 {
		period = "PM"
	}

	display := h
	if display > 12 {
		display -= 12
	}
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, m, period)
}
