package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Post
var (
	ErrEmptyPostID       = errors.New("post ID cannot be empty")
	ErrEmptyPostAuthorID = errors.New("post author ID cannot be empty")
	ErrEmptyPostText     = errors.New("post text cannot be empty")
)

// Post represents a publication owned by its author. The author and
// publication date are fixed at creation time and never accepted from
// client input; text, image and group reference are mutable by the
// author only.
type Post struct {
	ID       uuid.UUID  `json:"id"`
	AuthorID uuid.UUID  `json:"-"`
	Text     string     `json:"text"`
	PubDate  time.Time  `json:"pub_date"`
	Image    *string    `json:"image"`
	GroupID  *uuid.UUID `json:"group"`

	// AuthorUsername is denormalized from the users table when the
	// post is loaded; responses serialize the author by username.
	AuthorUsername string `json:"author"`
}

// NewPost creates a new Post authored by the given user.
// The publication date is set to the current time and is immutable
// afterwards. Returns an error if validation fails.
func NewPost(authorID uuid.UUID, text string, image *string, groupID *uuid.UUID) (*Post, error) {
	post := &Post{
		ID:       uuid.New(),
		AuthorID: authorID,
		Text:     text,
		PubDate:  time.Now().UTC(),
		Image:    image,
		GroupID:  groupID,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
func (p *Post) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPostID
	}

	if p.AuthorID == uuid.Nil {
		return ErrEmptyPostAuthorID
	}

	if p.Text == "" {
		return ErrEmptyPostText
	}

	return nil
}

// IsOwnedBy reports whether the given user is the post's author.
func (p *Post) IsOwnedBy(userID uuid.UUID) bool {
	return p.AuthorID == userID
}
