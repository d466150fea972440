package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nomadland/go-trips-backend/internal/domain"
	"github.com/nomadland/go-trips-backend/internal/services"
)

// ---------- CreateTrip ----------

func TestCreateTrip_BadJSON_Validation_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(svc TripService) *gin.Engine {
		h := newTestHandlers(nil, svc, nil)
		r := gin.New()
		r.POST("/trips", h.CreateTrip)
		return r
	}

	// Bad JSON -> 400
	{
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/trips", bytes.NewBufferString("{bad"))
		newRouter(nil).ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("bad json -> %d", w.Code)
		}
	}

	// Service validation error -> 400 with the service's message
	{
		svc := stubTripSvc{create: func(context.Context, string, services.CreateTripInput) (*domain.Trip, error) {
			return nil, &services.ValidationError{Msg: "start date in the past: 2020-01-01"}
		}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/trips",
			bytes.NewBufferString(`{"start":"2020-01-01","end":"2020-01-05","city":"Paris","country":"France"}`))
		req.Header.Set(UserHeader, "US1")
		newRouter(svc).ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("validation -> %d", w.Code)
		}
		var out ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("json: %v", err)
		}
		if out.Message != "start date in the past: 2020-01-01" {
			t.Fatalf("message = %q", out.Message)
		}
	}

	// Success -> 201, trip wrapped under the "user" key, owner from header
	{
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/trips",
			bytes.NewBufferString(`{"start":"2026-01-10","end":"2026-01-14","city":"Paris","country":"France"}`))
		req.Header.Set(UserHeader, "US42")
		newRouter(nil).ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("create -> %d body=%s", w.Code, w.Body.String())
		}
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
			t.Fatalf("json: %v", err)
		}
		if _, hasUser := raw["user"]; !hasUser {
			t.Fatalf("missing user envelope key: %s", w.Body.String())
		}
		var out TripEnvelope
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("json: %v", err)
		}
		if out.User == nil || out.User.UserID != "US42" || out.User.City != "Paris" {
			t.Fatalf("unexpected trip: %#v", out.User)
		}
	}
}

// ---------- ListTrips ----------

func TestListTrips_MissingHeader_Success_Internal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(svc TripService) *gin.Engine {
		h := newTestHandlers(nil, svc, nil)
		r := gin.New()
		r.GET("/trips", h.ListTrips)
		return r
	}

	// Missing header -> 400
	{
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/trips", nil)
		newRouter(nil).ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("missing header -> %d", w.Code)
		}
	}

	// Success -> {result:{trips}}
	{
		svc := stubTripSvc{list: func(ctx context.Context, uid string) ([]domain.TripView, error) {
			if uid != "US1" {
				t.Fatalf("list uid = %q", uid)
			}
			return []domain.TripView{{
				ID: "TR1", Start: "Sat Jan 10 2026", End: "Wed Jan 14 2026",
				Location: "Paris, France", UserID: uid,
			}}, nil
		}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/trips", nil)
		req.Header.Set(UserHeader, "US1")
		newRouter(svc).ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("list -> %d body=%s", w.Code, w.Body.String())
		}
		var out ListTripsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("json: %v", err)
		}
		if len(out.Result.Trips) != 1 || out.Result.Trips[0].Location != "Paris, France" {
			t.Fatalf("unexpected listing: %#v", out.Result.Trips)
		}
	}

	// Storage error -> 500
	{
		svc := stubTripSvc{list: func(context.Context, string) ([]domain.TripView, error) {
			return nil, context.DeadlineExceeded
		}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/trips", nil)
		req.Header.Set(UserHeader, "US1")
		newRouter(svc).ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("internal -> %d", w.Code)
		}
	}
}

// ---------- GetTrip ----------

func TestGetTrip_NotFound_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(svc TripService) *gin.Engine {
		h := newTestHandlers(nil, svc, nil)
		r := gin.New()
		r.GET("/trips/:trip_id", h.GetTrip)
		return r
	}

	// Unknown trip -> 404
	{
		svc := stubTripSvc{detail: func(context.Context, string) (*services.TripDetail, error) {
			return nil, services.ErrTripNotFound
		}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/trips/TRnope", nil)
		newRouter(svc).ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("not found -> %d", w.Code)
		}
	}

	// Success -> {result:{trip, members, reccomended}}
	{
		svc := stubTripSvc{detail: func(ctx context.Context, id string) (*services.TripDetail, error) {
			return &services.TripDetail{
				Trip: domain.Trip{ID: id, Location: "Paris, France"},
				Members: []domain.Member{{
					User:    domain.User{ID: "US2", FirstName: "Bob"},
					Overlap: "Wed Jan 03 2024 - Thu Jan 04 2024",
				}},
				Recommended: []domain.Recommendation{{ID: "RE1", URL: "https://stay.example/paris"}},
			}, nil
		}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/trips/TR1", nil)
		newRouter(svc).ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("detail -> %d body=%s", w.Code, w.Body.String())
		}

		var raw struct {
			Result map[string]json.RawMessage `json:"result"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
			t.Fatalf("json: %v", err)
		}
		for _, key := range []string{"trip", "members", "reccomended"} {
			if _, has := raw.Result[key]; !has {
				t.Fatalf("missing %q in result: %s", key, w.Body.String())
			}
		}

		var out TripDetailResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("json: %v", err)
		}
		if out.Result.Trip.ID != "TR1" {
			t.Fatalf("trip id = %q", out.Result.Trip.ID)
		}
		if len(out.Result.Members) != 1 || out.Result.Members[0].Overlap == "" {
			t.Fatalf("unexpected members: %#v", out.Result.Members)
		}
		if len(out.Result.Reccomended) != 1 {
			t.Fatalf("unexpected housing: %#v", out.Result.Reccomended)
		}
	}
}
