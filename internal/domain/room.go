// Package domain contains the core data types for the escape-room trip planner.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (store, snapshot, service, handler).
package domain

import "time"

// ISOMillis is the timestamp layout used for review dates in the persisted
// snapshot: ISO-8601 with millisecond precision, always UTC. It matches the
// layout the stored blobs have always used, so existing data keeps loading.
const ISOMillis = "2006-01-02T15:04:05.000Z07:00"

// Room represents a single catalogued escape-room venue.
// A room is the top-level aggregate; reviews belong to a room.
// Rooms are never deleted or renamed — the only mutation is appending reviews.
//
// The json tags define the persisted snapshot format and must not change.
type Room struct {
	// ID is a session-monotonic integer derived from creation time.
	ID int64 `json:"id"`

	Name     string `json:"name"`
	Location string `json:"location"`

	// Difficulty is on a 1–10 scale, validated at the service boundary.
	Difficulty int `json:"difficulty"`

	// Rating is the arithmetic mean of all review ratings, or exactly 0.0
	// when the room has no reviews. Maintained by AddReview.
	Rating float64 `json:"rating"`

	Reviews []Review `json:"reviews"`
}

// Review is a single star rating contributed to a room.
// Immutable once created; owned exclusively by its parent room.
type Review struct {
	// Rating is 1–5 stars.
	Rating int `json:"rating"`

	// Date is the creation instant formatted with ISOMillis.
	// Kept as a string so the snapshot format stays byte-stable regardless
	// of Go's time marshalling defaults.
	Date string `json:"date"`
}

// NewReview builds a review stamped with the given instant.
func NewReview(rating int, at time.Time) Review {
	return Review{Rating: rating, Date: at.UTC().Format(ISOMillis)}
}

// AddReview appends a review and recomputes the mean rating.
// This is the only place Rating is written, which keeps the invariant
// "Rating == mean of Reviews" in one spot.
func (r *Room) AddReview(rev Review) {
	r.Reviews = append(r.Reviews, rev)

	sum := 0
	for _, v := range r.Reviews {
		sum += v.Rating
	}
	r.Rating = float64(sum) / float64(len(r.Reviews))
}
