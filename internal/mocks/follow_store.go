package mocks

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pulse-social/pulse-api/internal/domain"
	"github.com/pulse-social/pulse-api/internal/store"
)

// MockFollowStore implements store.FollowStore for testing. WithTx
// returns the same mock, so transactional code exercises the same
// state and function fields as the rest of the test.
type MockFollowStore struct {
	CreateFn     func(ctx context.Context, follow *domain.Follow) error
	ExistsFn     func(ctx context.Context, userID, followingID uuid.UUID) (bool, error)
	ListByUserFn func(ctx context.Context, userID uuid.UUID, search string) ([]*domain.Follow, error)

	Follows map[uuid.UUID]*domain.Follow
}

// NewMockFollowStore creates a new mock store with initialized defaults.
func NewMockFollowStore() *MockFollowStore {
	return &MockFollowStore{
		Follows: make(map[uuid.UUID]*domain.Follow),
	}
}

// Create implements the FollowStore interface.
func (m *MockFollowStore) Create(ctx context.Context, follow *domain.Follow) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, follow)
	}

	for _, existing := range m.Follows {
		if existing.UserID == follow.UserID && existing.FollowingID == follow.FollowingID {
			return store.ErrFollowExists
		}
	}
	m.Follows[follow.ID] = follow
	return nil
}

// Exists implements the FollowStore interface.
func (m *MockFollowStore) Exists(ctx context.Context, userID, followingID uuid.UUID) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, userID, followingID)
	}

	for _, follow := range m.Follows {
		if follow.UserID == userID && follow.FollowingID == followingID {
			return true, nil
		}
	}
	return false, nil
}

// ListByUser implements the FollowStore interface.
func (m *MockFollowStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	search string,
) ([]*domain.Follow, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID, search)
	}

	var results []*domain.Follow
	for _, follow := range m.Follows {
		if follow.UserID != userID {
			continue
		}
		if search != "" && !strings.Contains(
			strings.ToLower(follow.FollowingUsername),
			strings.ToLower(search),
		) {
			continue
		}
		results = append(results, follow)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})
	return results, nil
}

// WithTx implements the FollowStore interface.
func (m *MockFollowStore) WithTx(tx *sql.Tx) store.FollowStore {
	return m
}
