package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pulse-social/pulse-api/internal/domain"
	"github.com/pulse-social/pulse-api/internal/store"
)

// MockPostStore implements store.PostStore for testing.
type MockPostStore struct {
	CreateFn func(ctx context.Context, post *domain.Post) error
	GetFn    func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListFn   func(ctx context.Context, limit, offset int) ([]*domain.Post, int, error)
	UpdateFn func(ctx context.Context, post *domain.Post) error
	DeleteFn func(ctx context.Context, id uuid.UUID) error
	ExistsFn func(ctx context.Context, id uuid.UUID) (bool, error)

	// Data for the default implementation. Order holds insertion order
	// so List behaves like the real store's pub_date ordering.
	Posts map[uuid.UUID]*domain.Post
	Order []uuid.UUID
}

// NewMockPostStore creates a new mock store with initialized defaults.
func NewMockPostStore() *MockPostStore {
	return &MockPostStore{
		Posts: make(map[uuid.UUID]*domain.Post),
	}
}

// Create implements the PostStore interface.
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}

	m.Posts[post.ID] = post
	m.Order = append(m.Order, post.ID)
	return nil
}

// GetByID implements the PostStore interface.
func (m *MockPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}

	post, exists := m.Posts[id]
	if !exists {
		return nil, store.ErrPostNotFound
	}
	return post, nil
}

// List implements the PostStore interface.
func (m *MockPostStore) List(ctx context.Context, limit, offset int) ([]*domain.Post, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}

	total := len(m.Order)
	results := make([]*domain.Post, 0, limit)
	for i := offset; i < total && i < offset+limit; i++ {
		results = append(results, m.Posts[m.Order[i]])
	}
	return results, total, nil
}

// Update implements the PostStore interface.
func (m *MockPostStore) Update(ctx context.Context, post *domain.Post) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, post)
	}

	if _, exists := m.Posts[post.ID]; !exists {
		return store.ErrPostNotFound
	}
	m.Posts[post.ID] = post
	return nil
}

// Delete implements the PostStore interface.
func (m *MockPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Posts[id]; !exists {
		return store.ErrPostNotFound
	}
	delete(m.Posts, id)
	for i, pid := range m.Order {
		if pid == id {
			m.Order = append(m.Order[:i], m.Order[i+1:]...)
			break
		}
	}
	return nil
}

// Exists implements the PostStore interface.
func (m *MockPostStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}

	_, exists := m.Posts[id]
	return exists, nil
}
