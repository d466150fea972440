// Package services – TripService
//
// This file implements the TripService, which validates and persists trips
// and serves the trip read paths: single fetch, per-user listing, and the
// detail view combining overlapping members with recommended housing.
// The overlap resolver itself lives in overlap.go.
//
// Date handling: start and end are UTC calendar days. The day range of a
// trip is half-open, [start, end), and every code path that enumerates
// days goes through table.Days so the per-day index rows written at
// creation time and the per-day lookups at query time always cover the
// same set.
package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/nomadland/go-trips-backend/internal/domain"
	"github.com/nomadland/go-trips-backend/internal/table"
	"github.com/nomadland/go-trips-backend/internal/utils"
)

// MemberLookup is the user-service contract the trip detail path depends
// on: batch resolution of user ids into profiles.
type MemberLookup interface {
	Members(ctx context.Context, ids []string) ([]domain.User, error)
}

// HousingLookup is the recommendation-service contract the trip detail
// path depends on.
type HousingLookup interface {
	ForLocation(ctx context.Context, location string) ([]domain.Recommendation, error)
}

// TripService provides trip operations over the item table.
type TripService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Store is the storage adapter used by this service.
	Store Store
	// Users resolves member ids to profiles for the detail view.
	Users MemberLookup
	// Housing lists recommendations for the trip's location.
	Housing HousingLookup

	// Now is an optional clock override for tests; "not in the past"
	// validation is relative to its UTC calendar day.
	Now clock
}

// NewTripService constructs a TripService with its collaborators.
func NewTripService(db *gorm.DB, st Store, users MemberLookup, housing HousingLookup) *TripService {
	return &TripService{DB: db, Store: st, Users: users, Housing: housing}
}

// CreateTripInput carries the raw trip creation fields. Dates are strings
// in "2006-01-02" or RFC 3339 form.
type CreateTripInput struct {
	Start   string
	End     string
	City    string
	Country string
}

/// TripDetail is the trip detail view: the trip itself (location
// re-titlecased for display), the members whose trips overlap it, and the
// housing recommended for its location.
type TripDetail struct {
	Trip        domain.Trip
	Members     []domain.Member
	Recommended []domain.Recommendation
}

// Create validates and persists a new trip. All rows — marker rows and the
// per-day presence rows — are written in one atomic batch, so a failed
// creation leaves no partial overlap-index coverage behind.
//
// Validation: every field is required; dates must parse, must not lie
// before today's UTC date, and must satisfy start <= end. Violations are
// reported as ValidationError with no rows written.
func (s *TripService) Create(ctx context.Context, userID string, in CreateTripInput) (*domain.Trip, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, validationErr("user required")
	}
	switch {
	case strings.TrimSpace(in.Start) == "":
		return nil, validationErr("start required")
	case strings.TrimSpace(in.End) == "":
		return nil, validationErr("end required")
	case strings.TrimSpace(in.City) == "":
		return nil, validationErr("city required")
	case strings.TrimSpace(in.Country) == "":
		return nil, validationErr("country required")
	}

	start, err := parseDay(in.Start)
	if err != nil {
		return nil, validationErr("invalid start date: " + in.Start)
	}
	end, err := parseDay(in.End)
	if err != nil {
		return nil, validationErr("invalid end date: " + in.End)
	}

	today := table.Day(s.Now.now())
	if start.Before(today) {
		return nil, validationErr("start date in the past: " + in.Start)
	}
	if end.Before(today) {
		return nil, validationErr("end date in the past: " + in.End)
	}
	if start.After(end) {
		return nil, validationErr("start date after end date")
	}

	location := strings.ToLower(strings.TrimSpace(in.City)) + "," + strings.ToLower(strings.TrimSpace(in.Country))
	trip := domain.Trip{
		ID:       table.NewTripID(),
		Start:    start,
		End:      end,
		City:     in.City,
		Country:  in.Country,
		Location: location,
		UserID:   userID,
	}

	if err := s.Store.PutItems(ctx, s.DB, table.EncodeTrip(trip, s.Now.now())); err != nil {
		return nil, err
	}
	return &trip, nil
}

// Get fetches a trip by id from its partition. The canonical row carries
// the snapshot; the ownership row carries the owner. The location is
// returned in its canonical lowercase form — display titlecasing is the
// read path's concern, after the location has served as a lookup key.
func (s *TripService) Get(ctx context.Context, tripID string) (*domain.Trip, error) {
	rows, err := s.Store.QueryPartition(ctx, s.DB, table.TripKey(tripID))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrTripNotFound
	}
	trip, ok, err := table.DecodeTripRows(rows)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTripNotFound
	}
	return &trip, nil
}

// List returns the display projections of every open trip owned by
// userID, via the secondary index on the ownership rows.
func (s *TripService) List(ctx context.Context, userID string) ([]domain.TripView, error) {
	rows, err := s.Store.QueryIndexPrefix(ctx, s.DB, table.UserKey(userID), table.TripOpenPrefix, 0)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TripView, 0, len(rows))
	for _, it := range rows {
		trip, err := table.DecodeTrip(it)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.TripView{
			ID:       trip.ID,
			Start:    utils.HumanDay(trip.Start),
			End:      utils.HumanDay(trip.End),
			City:     trip.City,
			Country:  trip.Country,
			Location: utils.TitleLocation(trip.Location),
			UserID:   userID,
		})
	}
	return out, nil
}

// Detail returns the trip together with its overlapping members and the
// housing recommended for its location. Member and housing lookups run
// against the canonical location; only the returned trip's location is
// re-titlecased for display.
func (s *TripService) Detail(ctx context.Context, tripID string) (*TripDetail, error) {
	trip, err := s.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}

	members, err := s.overlappingMembers(ctx, *trip)
	if err != nil {
		return nil, err
	}
	recommended, err := s.Housing.ForLocation(ctx, trip.Location)
	if err != nil {
		return nil, err
	}

	view := *trip
	view.Location = utils.TitleLocation(view.Location)
	return &TripDetail{Trip: view, Members: members, Recommended: recommended}, nil
}

// parseDay parses a date string as "2006-01-02" or RFC 3339 and truncates
// it to its UTC calendar day.
func parseDay(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(table.DayFormat, v); err == nil {
		return table.Day(t), nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return table.Day(t), nil
}
