// Package services – UserService
//
// This file implements the UserService, which manages account creation,
// email sign-in, and the member batch lookup used by the trip detail
// endpoint. Creation performs no input validation and persists the payload
// as-is; only the identifier is generated. Sign-in normalizes the email on
// the lookup side only: the stored email keeps whatever casing sign-up
// received, which means a mixed-case sign-up is not findable by sign-in.
// That asymmetry is part of the recorded data contract.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/nomadland/go-trips-backend/internal/domain"
	"github.com/nomadland/go-trips-backend/internal/repo"
	"github.com/nomadland/go-trips-backend/internal/table"
)

// UserService provides account operations over the item table.
type UserService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Store is the storage adapter used by this service.
	Store Store

	// Now is an optional clock override for tests.
	Now clock
}

// NewUserService constructs a UserService backed by the provided storage
// adapter.
func NewUserService(db *gorm.DB, st Store) *UserService {
	return &UserService{DB: db, Store: st}
}

// Create registers a new user and persists its three rows atomically.
// No field is validated; absent names or email are stored as-is.
//
// When an email is provided and an EMAIL marker row already exists under
// the same stored key, creation is refused with ErrEmailTaken. The check
// runs against the same index sign-in uses, so it guards the exact lookup
// collision rather than every casing variant.
func (s *UserService) Create(ctx context.Context, firstName, lastName, email string) (*domain.User, error) {
	u := domain.User{
		ID:        table.NewUserID(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}

	if email != "" {
		existing, err := s.Store.QueryIndexEq(ctx, s.DB, table.SKEmail, table.EmailData(email), 1)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return nil, ErrEmailTaken
		}
	}

	if err := s.Store.PutItems(ctx, s.DB, table.EncodeUser(u, s.Now.now())); err != nil {
		return nil, err
	}
	return &u, nil
}

// SignIn resolves an email to the owning user's id through the secondary
// index. The email is lowercased and trimmed before the lookup; the match
// is limited to one row, and the id is extracted from the row's partition
// key rather than from stored metadata.
func (s *UserService) SignIn(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", validationErr("email required")
	}

	rows, err := s.Store.QueryIndexEq(ctx, s.DB, table.SKEmail, table.EmailData(email), 1)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", ErrUserNotFound
	}
	return table.IDFromKey(rows[0].PK), nil
}

// Members batch-fetches the canonical rows of the given user ids.
// Input ids are deduplicated preserving first-seen order, and the result
// follows that order. An empty input returns an empty slice without
// touching storage. Ids with no stored row are silently skipped, matching
// batch-get semantics.
func (s *UserService) Members(ctx context.Context, ids []string) ([]domain.User, error) {
	seen := make(map[string]struct{}, len(ids))
	var unique []string
	for _, id := range ids {
		if _, dup := seen[id]; dup || id == "" {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return []domain.User{}, nil
	}

	keys := make([]repo.Key, len(unique))
	for i, id := range unique {
		k := table.UserKey(id)
		keys[i] = repo.Key{PK: k, SK: k}
	}
	items, err := s.Store.BatchGetItems(ctx, s.DB, keys)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.User, len(items))
	for _, it := range items {
		u, err := table.DecodeUser(it)
		if err != nil {
			return nil, err
		}
		byID[u.ID] = u
	}

	out := make([]domain.User, 0, len(byID))
	for _, id := range unique {
		if u, ok := byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}
