package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nomadland/go-trips-backend/internal/repo"
	"github.com/nomadland/go-trips-backend/internal/table"
)

var testToday = time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

func newTripService(st *fakeStore) *TripService {
	s := NewTripService(nil, st, nil, nil)
	s.Now = fixedClock(testToday)
	return s
}

func TestTripCreate_RequiredFields(t *testing.T) {
	cases := []struct {
		name string
		in   CreateTripInput
		msg  string
	}{
		{"missing start", CreateTripInput{End: "2024-01-05", City: "Paris", Country: "France"}, "start required"},
		{"missing end", CreateTripInput{Start: "2024-01-01", City: "Paris", Country: "France"}, "end required"},
		{"missing city", CreateTripInput{Start: "2024-01-01", End: "2024-01-05", Country: "France"}, "city required"},
		{"missing country", CreateTripInput{Start: "2024-01-01", End: "2024-01-05", City: "Paris"}, "country required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := &fakeStore{}
			s := newTripService(st)

			_, err := s.Create(context.Background(), "US1", tc.in)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if err.Error() != tc.msg {
				t.Fatalf("message = %q, want %q", err.Error(), tc.msg)
			}
			if len(st.putBatches) != 0 {
				t.Fatalf("no rows must be written on validation failure")
			}
		})
	}
}

func TestTripCreate_OwnerRequired(t *testing.T) {
	s := newTripService(&fakeStore{})
	_, err := s.Create(context.Background(), "  ", CreateTripInput{
		Start: "2024-01-01", End: "2024-01-05", City: "Paris", Country: "France",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTripCreate_DateValidation(t *testing.T) {
	cases := []struct {
		name    string
		in      CreateTripInput
		wantMsg string
	}{
		{"unparsable start", CreateTripInput{Start: "soon", End: "2024-01-05", City: "Paris", Country: "France"}, "invalid start date: soon"},
		{"unparsable end", CreateTripInput{Start: "2024-01-01", End: "later", City: "Paris", Country: "France"}, "invalid end date: later"},
		{"start in the past", CreateTripInput{Start: "2023-12-31", End: "2024-01-05", City: "Paris", Country: "France"}, "start date in the past: 2023-12-31"},
		{"end in the past", CreateTripInput{Start: "2024-01-01", End: "2023-12-30", City: "Paris", Country: "France"}, "end date in the past: 2023-12-30"},
		{"start after end", CreateTripInput{Start: "2024-01-09", End: "2024-01-05", City: "Paris", Country: "France"}, "start date after end date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := &fakeStore{}
			s := newTripService(st)

			_, err := s.Create(context.Background(), "US1", tc.in)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if err.Error() != tc.wantMsg {
				t.Fatalf("message = %q, want %q", err.Error(), tc.wantMsg)
			}
			if len(st.putBatches) != 0 {
				t.Fatalf("no rows must be written on validation failure")
			}
		})
	}
}

func TestTripCreate_TodayIsAccepted(t *testing.T) {
	// The clock sits mid-day; a trip starting "today" must pass the
	// not-in-the-past check.
	st := &fakeStore{}
	s := newTripService(st)

	trip, err := s.Create(context.Background(), "US1", CreateTripInput{
		Start: "2024-01-01", End: "2024-01-03", City: "Paris", Country: "France",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(trip.ID, "TR") {
		t.Fatalf("trip id %q missing TR tag", trip.ID)
	}
}

func TestTripCreate_SingleAtomicBatchIncludingPresenceRows(t *testing.T) {
	st := &fakeStore{}
	s := newTripService(st)

	trip, err := s.Create(context.Background(), "US1", CreateTripInput{
		Start: "2024-01-10", End: "2024-01-12", City: " Paris ", Country: " France ",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if trip.Location != "paris,france" {
		t.Fatalf("location = %q", trip.Location)
	}
	if trip.City != " Paris " || trip.Country != " France " {
		t.Fatalf("city/country must keep user casing and spacing: %+v", trip)
	}

	if len(st.putBatches) != 1 {
		t.Fatalf("expected exactly one atomic write, got %d", len(st.putBatches))
	}
	// 6 marker rows + 2 presence rows for [Jan 10, Jan 12).
	if len(st.putBatches[0]) != 8 {
		t.Fatalf("expected 8 rows in batch, got %d", len(st.putBatches[0]))
	}
	presence := 0
	for _, it := range st.putBatches[0] {
		if table.OwnerFromPresence(it.Data) == "US1" && strings.Contains(it.SK, "paris,france#") {
			presence++
		}
	}
	if presence != 2 {
		t.Fatalf("expected 2 presence rows, got %d", presence)
	}
}

func TestTripCreate_AcceptsRFC3339Dates(t *testing.T) {
	st := &fakeStore{}
	s := newTripService(st)

	trip, err := s.Create(context.Background(), "US1", CreateTripInput{
		Start: "2024-01-10T18:30:00Z", End: "2024-01-12T04:00:00Z", City: "Paris", Country: "France",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if trip.Start.Format(table.DayFormat) != "2024-01-10" || trip.End.Format(table.DayFormat) != "2024-01-12" {
		t.Fatalf("dates not truncated to days: %v - %v", trip.Start, trip.End)
	}
}

func TestTripGet_NotFound(t *testing.T) {
	st := &fakeStore{}
	s := newTripService(st)

	_, err := s.Get(context.Background(), "TRmissing")
	if !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
	if st.partitionPK != "TRIP#TRmissing" {
		t.Fatalf("queried pk %q", st.partitionPK)
	}
}

func TestTripGet_DecodesSnapshotAndOwner(t *testing.T) {
	st := &fakeStore{
		partItems: []repo.Item{
			{PK: "TRIP#TR1", SK: "CREATED", Data: "TRIP#OPEN#2024-01-01T00:00:00Z"},
			{PK: "TRIP#TR1", SK: "TRIP#TR1", Data: "#", Metadata: `{"id":"TR1","start":"2024-01-10T00:00:00Z","end":"2024-01-12T00:00:00Z","city":"Paris","country":"France","location":"paris,france"}`},
			{PK: "TRIP#TR1", SK: "USER#US1", Data: "TRIP#OPEN#2024-01-10#2024-01-12", Metadata: `{"id":"TR1"}`},
		},
	}
	s := newTripService(st)

	trip, err := s.Get(context.Background(), "TR1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if trip.ID != "TR1" || trip.UserID != "US1" || trip.Location != "paris,france" {
		t.Fatalf("unexpected trip: %+v", trip)
	}
}

func TestTripList_RendersViews(t *testing.T) {
	st := &fakeStore{
		prefixFn: func(sk, dataPrefix string) ([]repo.Item, error) {
			if sk != "USER#US1" || dataPrefix != table.TripOpenPrefix {
				t.Fatalf("unexpected index query: sk=%q prefix=%q", sk, dataPrefix)
			}
			return []repo.Item{
				{PK: "TRIP#TR1", SK: sk, Data: "TRIP#OPEN#2024-01-10#2024-01-12",
					Metadata: `{"id":"TR1","start":"2024-01-10T00:00:00Z","end":"2024-01-12T00:00:00Z","city":"Paris","country":"France","location":"paris,france"}`},
			}, nil
		},
	}
	s := newTripService(st)

	views, err := s.List(context.Background(), "US1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %+v", views)
	}
	v := views[0]
	if v.Location != "Paris, France" {
		t.Fatalf("location = %q", v.Location)
	}
	if v.Start != "Wed Jan 10 2024" || v.End != "Fri Jan 12 2024" {
		t.Fatalf("dates = %q / %q", v.Start, v.End)
	}
	if v.UserID != "US1" {
		t.Fatalf("user id = %q", v.UserID)
	}
}

func TestParseDay(t *testing.T) {
	good := map[string]string{
		"2024-01-10":            "2024-01-10",
		"2024-01-10T23:59:00Z":  "2024-01-10",
		" 2024-01-10 ":          "2024-01-10",
		"2024-01-10T01:00:00+02:00": "2024-01-09", // UTC day of the instant
	}
	for in, want := range good {
		got, err := parseDay(in)
		if err != nil {
			t.Errorf("parseDay(%q): %v", in, err)
			continue
		}
		if got.Format(table.DayFormat) != want {
			t.Errorf("parseDay(%q) = %s, want %s", in, got.Format(table.DayFormat), want)
		}
	}
	for _, bad := range []string{"", "tomorrow", "10/01/2024"} {
		if _, err := parseDay(bad); err == nil {
			t.Errorf("parseDay(%q): expected error", bad)
		}
	}
}
