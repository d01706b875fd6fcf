package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// CreateRoomRequest is the body for POST /rooms.
// Difficulty arrives as a number and is range-checked by the service, so a
// decoding failure here only means non-numeric input.
type CreateRoomRequest struct {
	Name       string `json:"name"`
	Location   string `json:"location"`
	Difficulty int    `json:"difficulty"`
}

// RateRoomRequest is the body for POST /rooms/{id}/reviews.
type RateRoomRequest struct {
	Rating int `json:"rating"`
}

// CreateRoom handles POST /rooms.
func (s *Server) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondRequestError(w, "invalid request body: "+err.Error())
		return
	}

	room, err := s.catalog.AddRoom(r.Context(), req.Name, req.Location, req.Difficulty)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, room)
}

// ListRooms handles GET /rooms. The catalog is returned whole, in insertion
// order — it is a single-user list with no delete, so there is nothing to page.
func (s *Server) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.catalog.ListRooms(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rooms)
}

// GetRoom handles GET /rooms/{id}.
func (s *Server) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := roomID(w, r)
	if !ok {
		return
	}

	room, err := s.catalog.GetRoom(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, room)
}

// RateRoom handles POST /rooms/{id}/reviews.
// The catalog treats an unknown room as a no-op; over HTTP that surfaces as
// 404 because a remote caller has no other way to observe it.
func (s *Server) RateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := roomID(w, r)
	if !ok {
		return
	}

	var req RateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondRequestError(w, "invalid request body: "+err.Error())
		return
	}

	room, found, err := s.catalog.Rate(r.Context(), id, req.Rating)
	if err != nil {
		respondError(w, err)
		return
	}
	if !found {
		respondJSON(w, http.StatusNotFound, errorBody("not_found", "room not found"))
		return
	}

	respondJSON(w, http.StatusOK, room)
}

// roomID parses the {id} path parameter. A non-numeric ID cannot name any
// room, so the response is the same 404 an unknown numeric ID would get.
func roomID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondJSON(w, http.StatusNotFound, errorBody("not_found", "room not found"))
		return 0, false
	}
	return id, true
}
