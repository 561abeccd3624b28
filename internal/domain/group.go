package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Group
var (
	ErrEmptyGroupID    = errors.New("group ID cannot be empty")
	ErrEmptyGroupTitle = errors.New("group title cannot be empty")
	ErrEmptyGroupSlug  = errors.New("group slug cannot be empty")
)

// Group represents a thematic community that posts can be published
// into. Groups are provisioned out-of-band (migrations or an
// administrative path) and are strictly read-only on the public API;
// posts reference groups but never own them.
type Group struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewGroup creates a new Group with the given title, slug and
// description. It exists for seeding and tests; the HTTP surface never
// creates groups.
func NewGroup(title, slug, description string) (*Group, error) {
	group := &Group{
		ID:          uuid.New(),
		Title:       title,
		Slug:        slug,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := group.Validate(); err != nil {
		return nil, err
	}

	return group, nil
}

// Validate checks if the Group has valid data.
func (g *Group) Validate() error {
	if g.ID == uuid.Nil {
		return ErrEmptyGroupID
	}

	if g.Title == "" {
		return ErrEmptyGroupTitle
	}

	if g.Slug == "" {
		return ErrEmptyGroupSlug
	}

	return nil
}
