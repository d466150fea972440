// Package repo implements the storage adapter for the wide-column item
// table, backed by GORM. This file provides the generic row operations that
// every entity (user, trip, recommendation) is persisted through.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only row
// persistence and query composition. Row semantics live in the table
// package (key scheme, entity codec); callers compose the two.
//
// Error semantics:
//   - Queries that match nothing return an empty slice and a nil error;
//     "not found" is a service-level decision, not a storage one.
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Item is one row of the wide-column table. Every entity is a small set of
// rows sharing a partition key:
//   - PK / SK: the two-part composite primary key.
//   - Data: a free-form marker value; the composite index over (sk, data)
//     is the secondary lookup path for equality and prefix queries.
//   - Metadata: optional JSON snapshot of the full entity; empty on marker
//     rows that only exist for the index.
type Item struct {
	PK       string `json:"pk"       gorm:"column:pk;type:varchar(255);primaryKey;priority:1"`
	SK       string `json:"sk"       gorm:"column:sk;type:varchar(255);primaryKey;priority:2;index:idx_sk_data,priority:1"`
	Data     string `json:"data"     gorm:"column:data;type:varchar(512);not null;index:idx_sk_data,priority:2"`
	Metadata string `json:"metadata,omitempty" gorm:"column:metadata;type:text"`
}

// TableName returns the database table name for Item.
func (Item) TableName() string { return "items" }

// Key identifies a single row for point reads.
type Key struct {
	PK string
	SK string
}

// PutItem writes one row, replacing any existing row under the same
// (pk, sk) key. This mirrors the put semantics of a key-value store rather
// than SQL insert semantics.
func PutItem(ctx context.Context, db *gorm.DB, item Item) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&item).Error
}

// PutItems writes all rows atomically: either every row is persisted or
// none is. Used for the multi-row entity writes (canonical row plus its
// marker and presence rows).
func PutItems(ctx context.Context, db *gorm.DB, items []Item) error {
	if len(items) == 0 {
		return nil
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&it).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// QueryPartition returns every row sharing the given partition key, ordered
// by sort key ascending. An unknown pk yields an empty slice, not an error.
func QueryPartition(ctx context.Context, db *gorm.DB, pk string) ([]Item, error) {
	var out []Item
	err := db.WithContext(ctx).
		Where("pk = ?", pk).
		Order("sk asc").
		Find(&out).Error
	return out, err
}

// QueryIndexEq queries the secondary index for rows whose sort key and data
// value both match exactly. limit <= 0 means no limit.
func QueryIndexEq(ctx context.Context, db *gorm.DB, sk, data string, limit int) ([]Item, error) {
	q := db.WithContext(ctx).
		Where("sk = ? AND data = ?", sk, data).
		Order("pk asc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []Item
	err := q.Find(&out).Error
	return out, err
}

// QueryIndexPrefix queries the secondary index for rows whose sort key
// matches exactly and whose data value begins with dataPrefix, the
// begins_with analogue. limit <= 0 means no limit.
//
// Prefixes are composed of key-scheme literals (entity tags, "#", ids),
// none of which collide with LIKE metacharacters.
func QueryIndexPrefix(ctx context.Context, db *gorm.DB, sk, dataPrefix string, limit int) ([]Item, error) {
	q := db.WithContext(ctx).
		Where("sk = ? AND data LIKE ?", sk, dataPrefix+"%").
		Order("data asc, pk asc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []Item
	err := q.Find(&out).Error
	return out, err
}

// BatchGetItems performs point reads for the given keys in one query.
// Missing keys are simply absent from the result; the caller cannot rely
// on result order matching key order.
func BatchGetItems(ctx context.Context, db *gorm.DB, keys []Key) ([]Item, error) {
	if len(keys) == 0 {
		return []Item{}, nil
	}
	pairs := make([][]any, len(keys))
	for i, k := range keys {
		pairs[i] = []any{k.PK, k.SK}
	}
	var out []Item
	err := db.WithContext(ctx).
		Where("(pk, sk) IN ?", pairs).
		Find(&out).Error
	return out, err
}
