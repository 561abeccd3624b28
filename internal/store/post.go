package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/pulse-social/pulse-api/internal/domain"
)

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// Create saves a new post to the store.
	// Returns ErrInvalidEntity if the referenced group does not exist.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its unique ID, including the author's
	// username. Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// List retrieves a window of posts ordered by publication date
	// (oldest first, matching insertion order) along with the total
	// number of posts.
	List(ctx context.Context, limit, offset int) ([]*domain.Post, int, error)

	// Update persists the post's mutable fields (text, image, group).
	// Returns ErrPostNotFound if the post does not exist.
	// Returns ErrInvalidEntity if the referenced group does not exist.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post from the store by its ID. Comments under
	// the post are removed with it.
	// Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// Exists reports whether a post with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
