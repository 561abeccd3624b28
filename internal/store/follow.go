package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pulse-social/pulse-api/internal/domain"
)

// FollowStore defines the interface for follow-edge persistence.
type FollowStore interface {
	// Create saves a new follow edge.
	// Returns ErrFollowExists if the (user, following) pair already
	// exists; a unique constraint backs this at the database level so
	// concurrent creates cannot both succeed.
	Create(ctx context.Context, follow *domain.Follow) error

	// Exists reports whether a follow edge for the (user, following)
	// pair exists.
	Exists(ctx context.Context, userID, followingID uuid.UUID) (bool, error)

	// ListByUser retrieves the follow edges where the given user is the
	// follower, including both endpoint usernames, ordered by creation
	// time. When search is non-empty, only edges whose followed
	// username contains the substring are returned.
	ListByUser(ctx context.Context, userID uuid.UUID, search string) ([]*domain.Follow, error)

	// WithTx returns a FollowStore bound to the given transaction so
	// the duplicate check and the insert can run atomically.
	WithTx(tx *sql.Tx) FollowStore
}
