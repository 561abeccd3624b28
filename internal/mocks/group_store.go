package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/pulse-social/pulse-api/internal/domain"
	"github.com/pulse-social/pulse-api/internal/store"
)

// MockGroupStore implements store.GroupStore for testing.
type MockGroupStore struct {
	CreateFn func(ctx context.Context, group *domain.Group) error
	GetFn    func(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	ListFn   func(ctx context.Context) ([]*domain.Group, error)

	Groups map[uuid.UUID]*domain.Group
}

// NewMockGroupStore creates a new mock store with initialized defaults.
func NewMockGroupStore() *MockGroupStore {
	return &MockGroupStore{
		Groups: make(map[uuid.UUID]*domain.Group),
	}
}

// Create implements the GroupStore interface.
func (m *MockGroupStore) Create(ctx context.Context, group *domain.Group) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, group)
	}

	for _, existing := range m.Groups {
		if existing.Slug == group.Slug {
			return store.ErrDuplicate
		}
	}
	m.Groups[group.ID] = group
	return nil
}

// GetByID implements the GroupStore interface.
func (m *MockGroupStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}

	group, exists := m.Groups[id]
	if !exists {
		return nil, store.ErrGroupNotFound
	}
	return group, nil
}

// List implements the GroupStore interface.
func (m *MockGroupStore) List(ctx context.Context) ([]*domain.Group, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	results := make([]*domain.Group, 0, len(m.Groups))
	for _, group := range m.Groups {
		results = append(results, group)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})
	return results, nil
}
