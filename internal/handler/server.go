// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, room.go, trip.go) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/p-rusnak/supER/internal/domain"
)

// CatalogServicer defines the catalog operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service layer or a real store.
type CatalogServicer interface {
	AddRoom(ctx context.Context, name, location string, difficulty int) (domain.Room, error)
	GetRoom(ctx context.Context, id int64) (domain.Room, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
	Rate(ctx context.Context, roomID int64, stars int) (domain.Room, bool, error)
	Toggle(ctx context.Context, roomID int64) (bool, error)
	SelectedRooms(ctx context.Context) ([]domain.Room, error)
}

// PlannerServicer defines the planning operation the handlers depend on.
type PlannerServicer interface {
	Plan(rooms []domain.Room, totalHours float64, startLocation string) (domain.TripPlan, error)
}

// Server holds the dependencies shared by all endpoint methods.
type Server struct {
	catalog CatalogServicer
	planner PlannerServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(catalog CatalogServicer, planner PlannerServicer) *Server {
	return &Server{catalog: catalog, planner: planner}
}

// Routes registers every endpoint on a fresh chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/rooms", func(r chi.Router) {
		r.Post("/", s.CreateRoom)
		r.Get("/", s.ListRooms)
		r.Get("/{id}", s.GetRoom)
		r.Post("/{id}/reviews", s.RateRoom)
		r.Post("/{id}/trip", s.ToggleTrip)
	})

	r.Route("/trip", func(r chi.Router) {
		r.Get("/selection", s.GetSelection)
		r.Post("/plan", s.PlanTrip)
	})

	return r
}
