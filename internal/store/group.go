package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/pulse-social/pulse-api/internal/domain"
)

// GroupStore defines the interface for group data persistence.
// Groups are read-only on the public surface; Create exists for
// seeding and tests only.
type GroupStore interface {
	// Create saves a new group to the store.
	// Returns ErrDuplicate if the slug is already taken.
	Create(ctx context.Context, group *domain.Group) error

	// GetByID retrieves a group by its unique ID.
	// Returns ErrGroupNotFound if the group does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)

	// List retrieves all groups ordered by creation time.
	List(ctx context.Context) ([]*domain.Group, error)
}
