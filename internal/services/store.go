package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nomadland/go-trips-backend/internal/repo"
)

// Store defines the storage adapter contract required by the services:
// the generic row operations of the wide-column item table. Implementations
// are responsible only for persistence; all row semantics (key scheme,
// entity encoding) live in the table package.
type Store interface {
	// PutItems writes all rows atomically (all or nothing).
	PutItems(ctx context.Context, db *gorm.DB, items []repo.Item) error

	// QueryPartition returns every row of one partition, ordered by sort key.
	QueryPartition(ctx context.Context, db *gorm.DB, pk string) ([]repo.Item, error)

	// QueryIndexEq queries the secondary index for an exact (sk, data) match.
	QueryIndexEq(ctx context.Context, db *gorm.DB, sk, data string, limit int) ([]repo.Item, error)

	// QueryIndexPrefix queries the secondary index for rows whose data value
	// begins with dataPrefix under the given sort key.
	QueryIndexPrefix(ctx context.Context, db *gorm.DB, sk, dataPrefix string, limit int) ([]repo.Item, error)

	// BatchGetItems performs point reads; missing keys are absent from the result.
	BatchGetItems(ctx context.Context, db *gorm.DB, keys []repo.Key) ([]repo.Item, error)
}

// clock returns now() when set, falling back to the wall clock. Services
// carry it as a seam so tests can pin "today".
type clock func() time.Time

func (c clock) now() time.Time {
	if c != nil {
		return c()
	}
	return time.Now()
}
