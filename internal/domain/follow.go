package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Follow
var (
	ErrEmptyFollowID          = errors.New("follow ID cannot be empty")
	ErrEmptyFollowUserID      = errors.New("follow user ID cannot be empty")
	ErrEmptyFollowFollowingID = errors.New("follow following ID cannot be empty")
	ErrSelfFollow             = errors.New("user cannot follow themselves")
)

// Follow represents a directed follow edge from a follower (User) to a
// followed user (Following). The follower is always the authenticated
// requester. A user may not follow themselves, and at most one edge
// may exist per (user, following) pair; the second invariant is backed
// by a unique constraint in the store.
type Follow struct {
	ID          uuid.UUID `json:"-"`
	UserID      uuid.UUID `json:"-"`
	FollowingID uuid.UUID `json:"-"`
	CreatedAt   time.Time `json:"-"`

	// Usernames are denormalized from the users table when the edge is
	// loaded; the API serializes both endpoints by username.
	UserUsername      string `json:"user"`
	FollowingUsername string `json:"following"`
}

// NewFollow creates a new Follow edge from the given user to the given
// followed user. Returns ErrSelfFollow if both endpoints are the same
// user, or another validation error for missing fields.
func NewFollow(userID, followingID uuid.UUID) (*Follow, error) {
	follow := &Follow{
		ID:          uuid.New(),
		UserID:      userID,
		FollowingID: followingID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := follow.Validate(); err != nil {
		return nil, err
	}

	return follow, nil
}

// Validate checks if the Follow has valid data, including the
// self-follow invariant.
func (f *Follow) Validate() error {
	if f.ID == uuid.Nil {
		return ErrEmptyFollowID
	}

	if f.UserID == uuid.Nil {
		return ErrEmptyFollowUserID
	}

	if f.FollowingID == uuid.Nil {
		return ErrEmptyFollowFollowingID
	}

	if f.UserID == f.FollowingID {
		return ErrSelfFollow
	}

	return nil
}
