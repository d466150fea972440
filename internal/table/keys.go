// Package table defines the single-table layout shared by every entity:
// the key scheme (partition/sort key composition, marker values, index
// prefixes) and the entity codec that maps domain objects to and from the
// generic rows of the item table.
//
// Layout summary (pk / sk / data):
//
//	USER#<id>  USER#<id>                     #                          metadata
//	USER#<id>  CREATED                       USER#OPEN#<ts>
//	USER#<id>  EMAIL                         USER#<email>
//
//	TRIP#<id>  TRIP#<id>                     #                          metadata
//	TRIP#<id>  CREATED                       TRIP#OPEN#<ts>             metadata
//	TRIP#<id>  TRIP#START                    TRIP#OPEN#<day>
//	TRIP#<id>  TRIP#END                      TRIP#OPEN#<day>
//	TRIP#<id>  TRIP#LOCATION                 TRIP#OPEN#<location>       metadata
//	TRIP#<id>  USER#<owner>                  TRIP#OPEN#<start>#<end>    metadata
//	TRIP#<id>  TRIP#<location>#<day>         TRIP#OPEN#<owner>          (one per day, half-open)
//
//	RECCOMENDATION#<id>  RECCOMENDATION#<id> #                          metadata
//	RECCOMENDATION#<id>  CREATED             RECCOMENDATION#OPEN#<ts>
//	RECCOMENDATION#<id>  LOCATION#<location> RECCOMENDATION#OPEN#<ts>   metadata
//
// The per-day presence rows are the index that turns overlap detection into
// a handful of secondary-index lookups instead of a scan. The misspelled
// RECCOMENDATION literal is part of the persisted contract and is kept
// verbatim.
package table

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Day and timestamp formats used inside keys and data values. Day keys
// carry no time component, so writers and readers can never disagree on
// sub-day precision.
const (
	DayFormat   = "2006-01-02"
	stampFormat = time.RFC3339
)

// Sort-key markers shared by all entities.
const (
	SKCreated      = "CREATED"
	SKEmail        = "EMAIL"
	SKTripStart    = "TRIP#START"
	SKTripEnd      = "TRIP#END"
	SKTripLocation = "TRIP#LOCATION"
)

// Data prefixes used by secondary-index queries.
const (
	// CanonicalData marks the canonical row of every entity.
	CanonicalData = "#"
	// TripOpenPrefix prefixes every data value of an open trip.
	TripOpenPrefix = "TRIP#OPEN#"
	// RecommendationOpenPrefix prefixes recommendation index rows.
	RecommendationOpenPrefix = "RECCOMENDATION#OPEN#"
	// userOpenPrefix prefixes the user CREATED marker.
	userOpenPrefix = "USER#OPEN#"
	// emailPrefix prefixes the EMAIL marker's data value.
	emailPrefix = "USER#"
)

// Identifier prefixes: two letters so the entity type can be discriminated
// from the id alone.
const (
	userIDPrefix           = "US"
	tripIDPrefix           = "TR"
	recommendationIDPrefix = "RE"
)

// NewUserID returns a fresh user identifier ("US" + random UUID).
func NewUserID() string { return userIDPrefix + uuid.NewString() }

// NewTripID returns a fresh trip identifier ("TR" + random UUID).
func NewTripID() string { return tripIDPrefix + uuid.NewString() }

// NewRecommendationID returns a fresh recommendation identifier
// ("RE" + random UUID).
func NewRecommendationID() string { return recommendationIDPrefix + uuid.NewString() }

// UserKey returns the partition (and canonical sort) key of a user.
func UserKey(id string) string { return "USER#" + id }

// TripKey returns the partition (and canonical sort) key of a trip.
func TripKey(id string) string { return "TRIP#" + id }

// RecommendationKey returns the partition (and canonical sort) key of a
// recommendation. Spelling is part of the persisted contract.
func RecommendationKey(id string) string { return "RECCOMENDATION#" + id }

// LocationKey returns the sort key of a recommendation's location row,
// the lookup target of "recommendations near this trip" queries.
func LocationKey(location string) string { return "LOCATION#" + location }

// TripDayKey returns the sort key of a trip's per-day presence row for the
// given location and calendar day.
func TripDayKey(location string, day time.Time) string {
	return "TRIP#" + location + "#" + day.Format(DayFormat)
}

// EmailData returns the data value of the EMAIL marker row. The email is
// embedded exactly as stored on the user; normalization is a lookup-side
// concern.
func EmailData(email string) string { return emailPrefix + email }

// PresenceData returns the data value of a per-day presence row, embedding
// the owning user's id.
func PresenceData(userID string) string { return TripOpenPrefix + userID }

// OwnerFromPresence extracts the owning user id embedded in a presence
// row's data value. Returns "" when the value is not a presence marker.
func OwnerFromPresence(data string) string {
	if !strings.HasPrefix(data, TripOpenPrefix) {
		return ""
	}
	return data[len(TripOpenPrefix):]
}

// IDFromKey extracts the entity id from a partition or sort key of the
// form "<TAG>#<id>". Returns the last #-separated segment.
func IDFromKey(key string) string {
	if i := strings.LastIndex(key, "#"); i >= 0 {
		return key[i+1:]
	}
	return key
}

// DayFromKey extracts the calendar day from a presence-row sort key
// ("TRIP#<location>#<day>"). The day is the last segment; locations contain
// commas but never "#".
func DayFromKey(sk string) (time.Time, error) {
	return time.Parse(DayFormat, IDFromKey(sk))
}

// Day truncates t to its UTC calendar day.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Days enumerates the half-open interval [start, end) as UTC calendar
// days. A trip from the 10th to the 12th yields the 10th and the 11th;
// start == end yields nothing. Both the trip encoder and the overlap
// query enumerate days through this one helper so the index writes and
// the lookups can never cover different day sets.
func Days(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	var out []time.Time
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}
