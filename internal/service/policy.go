package service

import (
	"github.com/google/uuid"
	"github.com/pulse-social/pulse-api/internal/domain"
)

// Ownable is any resource that knows its author. Post and Comment
// implement it; Group has no owner and no mutable surface.
type Ownable interface {
	IsOwnedBy(userID uuid.UUID) bool
}

// AuthorizeMutation is the single authorization decision primitive:
// a mutation on an owned resource is permitted only to its author.
// Reads never pass through here; they are open to every authenticated
// requester. A resource that exists but belongs to someone else yields
// domain.ErrNotOwner, which the API layer maps to 403 and never
// downgrades to 404.
func AuthorizeMutation(requester uuid.UUID, resource Ownable) error {
	if !resource.IsOwnedBy(requester) {
		return domain.ErrNotOwner
	}
	return nil
}
