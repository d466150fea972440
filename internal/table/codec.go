// Entity codec: deterministic mapping between domain objects and generic
// rows. Encoding is pure data transformation with no error conditions;
// decoding can fail only on malformed stored metadata.
package table

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nomadland/go-trips-backend/internal/domain"
	"github.com/nomadland/go-trips-backend/internal/repo"
)

// EncodeUser maps a user to its three rows: canonical, CREATED marker, and
// the EMAIL marker that backs sign-in lookups through the secondary index.
func EncodeUser(u domain.User, now time.Time) []repo.Item {
	pk := UserKey(u.ID)
	meta := mustJSON(u)
	return []repo.Item{
		{PK: pk, SK: pk, Data: CanonicalData, Metadata: meta},
		{PK: pk, SK: SKCreated, Data: userOpenPrefix + now.UTC().Format(stampFormat)},
		{PK: pk, SK: SKEmail, Data: EmailData(u.Email)},
	}
}

// EncodeTrip maps a trip to its marker rows plus one presence row per
// calendar day in [start, end). All rows are meant to be written in a
// single atomic batch.
func EncodeTrip(t domain.Trip, now time.Time) []repo.Item {
	pk := TripKey(t.ID)
	meta := mustJSON(t)
	start, end := Day(t.Start), Day(t.End)

	items := []repo.Item{
		{PK: pk, SK: pk, Data: CanonicalData, Metadata: meta},
		{PK: pk, SK: SKCreated, Data: TripOpenPrefix + now.UTC().Format(stampFormat), Metadata: meta},
		{PK: pk, SK: SKTripStart, Data: TripOpenPrefix + start.Format(DayFormat)},
		{PK: pk, SK: SKTripEnd, Data: TripOpenPrefix + end.Format(DayFormat)},
		{PK: pk, SK: SKTripLocation, Data: TripOpenPrefix + t.Location, Metadata: meta},
		{PK: pk, SK: UserKey(t.UserID), Data: TripOpenPrefix + start.Format(DayFormat) + "#" + end.Format(DayFormat), Metadata: meta},
	}
	for _, day := range Days(start, end) {
		items = append(items, repo.Item{
			PK:   pk,
			SK:   TripDayKey(t.Location, day),
			Data: PresenceData(t.UserID),
		})
	}
	return items
}

// EncodeRecommendation maps a recommendation to its three rows: canonical,
// CREATED marker, and the location-indexed row that backs "recommendations
// near this trip" queries.
func EncodeRecommendation(r domain.Recommendation, now time.Time) []repo.Item {
	pk := RecommendationKey(r.ID)
	meta := mustJSON(r)
	stamp := RecommendationOpenPrefix + now.UTC().Format(stampFormat)
	return []repo.Item{
		{PK: pk, SK: pk, Data: CanonicalData, Metadata: meta},
		{PK: pk, SK: SKCreated, Data: stamp},
		{PK: pk, SK: LocationKey(r.Location), Data: stamp, Metadata: meta},
	}
}

// DecodeUser maps a canonical user row back to the domain object. The id
// is re-derived from the partition key rather than trusted from the stored
// snapshot.
func DecodeUser(it repo.Item) (domain.User, error) {
	var u domain.User
	if err := json.Unmarshal([]byte(it.Metadata), &u); err != nil {
		return domain.User{}, fmt.Errorf("decode user %s: %w", it.PK, err)
	}
	u.ID = IDFromKey(it.PK)
	return u, nil
}

// DecodeTrip maps a single metadata-bearing trip row back to the domain
// object.
func DecodeTrip(it repo.Item) (domain.Trip, error) {
	var t domain.Trip
	if err := json.Unmarshal([]byte(it.Metadata), &t); err != nil {
		return domain.Trip{}, fmt.Errorf("decode trip %s: %w", it.PK, err)
	}
	return t, nil
}

// DecodeTripRows reassembles a trip from a full partition read: the
// canonical row carries the snapshot, the ownership row (sort key
// "USER#<id>") carries the owner. Returns false when rows contain no
// metadata-bearing trip row.
func DecodeTripRows(rows []repo.Item) (domain.Trip, bool, error) {
	var (
		trip  domain.Trip
		found bool
	)
	for _, it := range rows {
		if it.Metadata == "" || it.SK != it.PK {
			continue
		}
		t, err := DecodeTrip(it)
		if err != nil {
			return domain.Trip{}, false, err
		}
		trip, found = t, true
		break
	}
	if !found {
		return domain.Trip{}, false, nil
	}
	for _, it := range rows {
		if strings.HasPrefix(it.SK, "USER#") {
			trip.UserID = IDFromKey(it.SK)
			break
		}
	}
	return trip, true, nil
}

// DecodeRecommendation maps a metadata-bearing recommendation row back to
// the domain object.
func DecodeRecommendation(it repo.Item) (domain.Recommendation, error) {
	var r domain.Recommendation
	if err := json.Unmarshal([]byte(it.Metadata), &r); err != nil {
		return domain.Recommendation{}, fmt.Errorf("decode recommendation %s: %w", it.PK, err)
	}
	return r, nil
}

// mustJSON marshals a snapshot for the metadata column. The domain types
// contain nothing unmarshalable, so a failure here is a programming error.
func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
