package handler

import (
	"encoding/json"
	"net/http"
)

// ToggleTripResponse is the body for POST /rooms/{id}/trip.
type ToggleTripResponse struct {
	RoomID   int64 `json:"room_id"`
	Selected bool  `json:"selected"`
}

// PlanTripRequest is the body for POST /trip/plan.
type PlanTripRequest struct {
	DurationHours float64 `json:"duration_hours"`
	StartLocation string  `json:"start_location"`
}

// ToggleTrip handles POST /rooms/{id}/trip.
// It never returns 404: the selection set tolerates IDs without a room, so a
// toggle always succeeds and reports the new membership state.
func (s *Server) ToggleTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := roomID(w, r)
	if !ok {
		return
	}

	selected, err := s.catalog.Toggle(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ToggleTripResponse{RoomID: id, Selected: selected})
}

// GetSelection handles GET /trip/selection: the rooms currently marked for
// the trip, in catalog order, stale IDs filtered out.
func (s *Server) GetSelection(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.catalog.SelectedRooms(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rooms)
}

// PlanTrip handles POST /trip/plan.
// The plan is a derived view: nothing is persisted, and the selection is not
// cleared after planning.
func (s *Server) PlanTrip(w http.ResponseWriter, r *http.Request) {
	var req PlanTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondRequestError(w, "invalid request body: "+err.Error())
		return
	}

	rooms, err := s.catalog.SelectedRooms(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	plan, err := s.planner.Plan(rooms, req.DurationHours, req.StartLocation)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, plan)
}
