package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-rusnak/supER/internal/domain"
	"github.com/p-rusnak/supER/internal/handler"
)

// ---- POST /rooms/{id}/trip -------------------------------------------------

func TestToggleTrip_200_Selected(t *testing.T) {
	catalog := &mockCatalog{
		toggle: func(_ context.Context, roomID int64) (bool, error) {
			assert.Equal(t, int64(42), roomID)
			return true, nil
		},
	}

	rec := httptest.NewRecorder()
	newHTTPHandler(catalog, &mockPlanner{}).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPost, "/rooms/42/trip", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.ToggleTripResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(42), resp.RoomID)
	assert.True(t, resp.Selected)
}

func TestToggleTrip_200_StaleIDStillToggles(t *testing.T) {
	// No room with this ID exists; the toggle must succeed regardless.
	catalog := &mockCatalog{
		toggle: func(_ context.Context, _ int64) (bool, error) { return true, nil },
	}

	rec := httptest.NewRecorder()
	newHTTPHandler(catalog, &mockPlanner{}).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPost, "/rooms/999999/trip", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

// ---- GET /trip/selection ---------------------------------------------------

func TestGetSelection_200(t *testing.T) {
	catalog := &mockCatalog{
		selectedRooms: func(_ context.Context) ([]domain.Room, error) {
			return []domain.Room{roomFixture()}, nil
		},
	}

	rec := httptest.NewRecorder()
	newHTTPHandler(catalog, &mockPlanner{}).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/trip/selection", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.Room
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
}

// ---- POST /trip/plan -------------------------------------------------------

func TestPlanTrip_200(t *testing.T) {
	selected := []domain.Room{roomFixture()}
	plan := domain.TripPlan{
		PlanID:       uuid.New(),
		TotalHours:   6,
		PerRoomHours: 6,
		RoomCount:    1,
		Entries: []domain.ItineraryEntry{
			{Room: selected[0], StartTime: "9:00 AM", EndTime: "3:00 PM", DurationHours: 6},
		},
	}

	catalog := &mockCatalog{
		selectedRooms: func(_ context.Context) ([]domain.Room, error) { return selected, nil },
	}
	planner := &mockPlanner{
		plan: func(rooms []domain.Room, totalHours float64, startLocation string) (domain.TripPlan, error) {
			assert.Equal(t, selected, rooms)
			assert.Equal(t, 6.0, totalHours)
			assert.Equal(t, "Main Square", startLocation)
			return plan, nil
		},
	}

	body := jsonBody(t, map[string]any{"duration_hours": 6, "start_location": "Main Square"})
	req := httptest.NewRequest(http.MethodPost, "/trip/plan", body)
	rec := httptest.NewRecorder()

	newHTTPHandler(catalog, planner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.TripPlan
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, plan.PlanID, resp.PlanID)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "9:00 AM", resp.Entries[0].StartTime)
}

func TestPlanTrip_422_EmptySelection(t *testing.T) {
	catalog := &mockCatalog{
		selectedRooms: func(_ context.Context) ([]domain.Room, error) { return []domain.Room{}, nil },
	}
	planner := &mockPlanner{
		plan: func(_ []domain.Room, _ float64, _ string) (domain.TripPlan, error) {
			return domain.TripPlan{}, fmt.Errorf("%w: select at least one room to plan a trip", domain.ErrEmptySelection)
		},
	}

	body := jsonBody(t, map[string]any{"duration_hours": 6})
	rec := httptest.NewRecorder()
	newHTTPHandler(catalog, planner).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/trip/plan", body))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "empty_selection", resp.Error.Code)
	assert.Equal(t, "select at least one room to plan a trip", resp.Error.Message)
}

func TestPlanTrip_422_NonPositiveDuration(t *testing.T) {
	catalog := &mockCatalog{
		selectedRooms: func(_ context.Context) ([]domain.Room, error) {
			return []domain.Room{roomFixture()}, nil
		},
	}
	planner := &mockPlanner{
		plan: func(_ []domain.Room, _ float64, _ string) (domain.TripPlan, error) {
			return domain.TripPlan{}, fmt.Errorf("%w: trip duration must be a positive number of hours", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{"duration_hours": -2})
	rec := httptest.NewRecorder()
	newHTTPHandler(catalog, planner).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/trip/plan", body))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec).Error.Code)
}

func TestPlanTrip_422_MalformedBody(t *testing.T) {
	rec := httptest.NewRecorder()
	newHTTPHandler(&mockCatalog{}, &mockPlanner{}).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPost, "/trip/plan", bytes.NewBufferString("oops")))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
