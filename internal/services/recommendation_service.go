// Package services – RecommendationService
//
// Housing recommendations are tied to a canonical location key and looked
// up by the trips whose location matches it exactly. Creation performs no
// validation; absent fields stay at their zero value.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/nomadland/go-trips-backend/internal/domain"
	"github.com/nomadland/go-trips-backend/internal/table"
)

// RecommendationService provides housing recommendation operations over
// the item table.
type RecommendationService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Store is the storage adapter used by this service.
	Store Store

	// Now is an optional clock override for tests.
	Now clock
}

// NewRecommendationService constructs a RecommendationService backed by
// the provided storage adapter.
func NewRecommendationService(db *gorm.DB, st Store) *RecommendationService {
	return &RecommendationService{DB: db, Store: st}
}

// CreateRecommendationInput carries the accepted-as-is recommendation
// fields.
type CreateRecommendationInput struct {
	Location string
	URL      string
	Capacity int
	Bedrooms int
	Price    float64
	Speed    int
}

// Create persists a new recommendation's three rows atomically.
func (s *RecommendationService) Create(ctx context.Context, in CreateRecommendationInput) (*domain.Recommendation, error) {
	rec := domain.Recommendation{
		ID:       table.NewRecommendationID(),
		Location: in.Location,
		URL:      in.URL,
		Capacity: in.Capacity,
		Bedrooms: in.Bedrooms,
		Price:    in.Price,
		Speed:    in.Speed,
	}
	if err := s.Store.PutItems(ctx, s.DB, table.EncodeRecommendation(rec, s.Now.now())); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ForLocation returns every open recommendation indexed under the exact
// location key, unfiltered by date or availability. Unknown locations
// yield an empty slice.
func (s *RecommendationService) ForLocation(ctx context.Context, location string) ([]domain.Recommendation, error) {
	rows, err := s.Store.QueryIndexPrefix(ctx, s.DB, table.LocationKey(location), table.RecommendationOpenPrefix, 0)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Recommendation, 0, len(rows))
	for _, it := range rows {
		rec, err := table.DecodeRecommendation(it)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
