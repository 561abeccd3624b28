package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/pulse-social/pulse-api/internal/domain"
)

// CommentStore defines the interface for comment data persistence.
// All lookups are scoped by the parent post: a comment ID that exists
// under a different post behaves exactly like a missing comment.
type CommentStore interface {
	// Create saves a new comment to the store.
	// Returns ErrInvalidEntity if the parent post does not exist.
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByID retrieves a comment by ID within the given post's scope,
	// including the author's username.
	// Returns ErrCommentNotFound if no such comment exists under the post.
	GetByID(ctx context.Context, postID, id uuid.UUID) (*domain.Comment, error)

	// ListByPost retrieves all comments under the given post ordered
	// newest-first (descending by creation time).
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error)

	// Update persists the comment's mutable text field.
	// Returns ErrCommentNotFound if the comment does not exist under
	// its post.
	Update(ctx context.Context, comment *domain.Comment) error

	// Delete removes a comment by ID within the given post's scope.
	// Returns ErrCommentNotFound if no such comment exists under the post.
	Delete(ctx context.Context, postID, id uuid.UUID) error
}
