package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/pulse-social/pulse-api/internal/domain"
	"github.com/pulse-social/pulse-api/internal/store"
)

// MockCommentStore implements store.CommentStore for testing.
type MockCommentStore struct {
	CreateFn     func(ctx context.Context, comment *domain.Comment) error
	GetFn        func(ctx context.Context, postID, id uuid.UUID) (*domain.Comment, error)
	ListByPostFn func(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error)
	UpdateFn     func(ctx context.Context, comment *domain.Comment) error
	DeleteFn     func(ctx context.Context, postID, id uuid.UUID) error

	Comments map[uuid.UUID]*domain.Comment
}

// NewMockCommentStore creates a new mock store with initialized defaults.
func NewMockCommentStore() *MockCommentStore {
	return &MockCommentStore{
		Comments: make(map[uuid.UUID]*domain.Comment),
	}
}

// Create implements the CommentStore interface.
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}

	m.Comments[comment.ID] = comment
	return nil
}

// GetByID implements the CommentStore interface. Like the real store,
// the lookup misses when the comment belongs to a different post.
func (m *MockCommentStore) GetByID(ctx context.Context, postID, id uuid.UUID) (*domain.Comment, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, postID, id)
	}

	comment, exists := m.Comments[id]
	if !exists || comment.PostID != postID {
		return nil, store.ErrCommentNotFound
	}
	return comment, nil
}

// ListByPost implements the CommentStore interface, returning comments
// newest first.
func (m *MockCommentStore) ListByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error) {
	if m.ListByPostFn != nil {
		return m.ListByPostFn(ctx, postID)
	}

	var results []*domain.Comment
	for _, comment := range m.Comments {
		if comment.PostID == postID {
			results = append(results, comment)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Created.After(results[j].Created)
	})
	return results, nil
}

// Update implements the CommentStore interface.
func (m *MockCommentStore) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, comment)
	}

	existing, exists := m.Comments[comment.ID]
	if !exists || existing.PostID != comment.PostID {
		return store.ErrCommentNotFound
	}
	m.Comments[comment.ID] = comment
	return nil
}

// Delete implements the CommentStore interface.
func (m *MockCommentStore) Delete(ctx context.Context, postID, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, postID, id)
	}

	comment, exists := m.Comments[id]
	if !exists || comment.PostID != postID {
		return store.ErrCommentNotFound
	}
	delete(m.Comments, id)
	return nil
}
