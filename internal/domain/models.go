// Package domain defines the core entities of the trip-sharing application:
// users, trips, recommendations, and the member/overlap projections returned
// by the trip detail endpoint. These types are the JSON snapshots persisted
// in the metadata column of the wide-column item table and returned by the
// HTTP layer.
package domain

import "time"

// User represents an account holder. No field is required at creation time;
// sign-up accepts the payload as-is and only the identifier is generated.
//
// Fields:
//   - ID: generated identifier prefixed with "US" so the entity type can be
//     recognized from the id alone.
//   - FirstName / LastName: display name parts, may be empty.
//   - Email: sign-in key. Stored exactly as provided; normalization happens
//     only on the sign-in lookup side.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Trip is a user's stay in one location over a date range. Start and End are
// UTC calendar days; the day range is half-open, so a trip from the 10th to
// the 12th occupies the 10th and the 11th.
//
// Location is the canonical lowercase "city,country" pair used as the
// overlap and recommendation lookup key. City and Country keep the casing
// the user supplied.
type Trip struct {
	ID       string    `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	City     string    `json:"city"`
	Country  string    `json:"country"`
	Location string    `json:"location"`
	UserID   string    `json:"user_id"`
}

// TripView is the display projection of a Trip used by trip listings:
// the location is re-titlecased to "City, Country" and the dates are
// rendered as human-readable day strings with no time component.
type TripView struct {
	ID       string `json:"id"`
	Start    string `json:"start"`
	End      string `json:"end"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Location string `json:"location"`
	UserID   string `json:"user_id"`
}

// Member is another user whose trip overlaps the queried trip in both
// location and time. Overlap is a human-readable day range such as
// "Wed Jan 03 2024 - Thu Jan 04 2024", or a single day when the trips
// share exactly one calendar day.
type Member struct {
	User
	Overlap string `json:"overlap"`
}

// Recommendation is a housing suggestion tied to a location key. All fields
// are accepted as-is at creation time; absent fields stay at their zero
// value.
type Recommendation struct {
	ID       string  `json:"id"`
	Location string  `json:"location"`
	URL      string  `json:"url"`
	Capacity int     `json:"capacity"`
	Bedrooms int     `json:"bedrooms"`
	Price    float64 `json:"price"`
	Speed    int     `json:"speed"`
}
