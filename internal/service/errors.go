package service

import "errors"

// Common service-level errors.
var (
	// ErrAlreadyFollowing indicates the requester already follows the
	// target user.
	ErrAlreadyFollowing = errors.New("already following this user")

	// ErrFollowingNotFound indicates the username supplied as the
	// follow target does not resolve to a registered user. This is a
	// payload validation failure, not a resource miss.
	ErrFollowingNotFound = errors.New("followed user not found")
)
