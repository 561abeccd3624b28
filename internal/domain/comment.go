package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Comment
var (
	ErrEmptyCommentID       = errors.New("comment ID cannot be empty")
	ErrEmptyCommentAuthorID = errors.New("comment author ID cannot be empty")
	ErrEmptyCommentPostID   = errors.New("comment post ID cannot be empty")
	ErrEmptyCommentText     = errors.New("comment text cannot be empty")
)

// Comment represents a comment under a specific post. The author, the
// parent post and the creation time are fixed when the comment is
// created; the parent post always comes from the request path, never
// from the request body. Only the text is mutable, and only by the
// comment's author.
type Comment struct {
	ID       uuid.UUID `json:"id"`
	AuthorID uuid.UUID `json:"-"`
	PostID   uuid.UUID `json:"post"`
	Text     string    `json:"text"`
	Created  time.Time `json:"created"`

	// AuthorUsername is denormalized from the users table when the
	// comment is loaded; responses serialize the author by username.
	AuthorUsername string `json:"author"`
}

// NewComment creates a new Comment by the given author under the given
// post. The creation time is set to the current time and is immutable
// afterwards. Returns an error if validation fails.
func NewComment(authorID, postID uuid.UUID, text string) (*Comment, error) {
	comment := &Comment{
		ID:       uuid.New(),
		AuthorID: authorID,
		PostID:   postID,
		Text:     text,
		Created:  time.Now().UTC(),
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks if the Comment has valid data.
func (c *Comment) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCommentID
	}

	if c.AuthorID == uuid.Nil {
		return ErrEmptyCommentAuthorID
	}

	if c.PostID == uuid.Nil {
		return ErrEmptyCommentPostID
	}

	if c.Text == "" {
		return ErrEmptyCommentText
	}

	return nil
}

// IsOwnedBy reports whether the given user is the comment's author.
func (c *Comment) IsOwnedBy(userID uuid.UUID) bool {
	return c.AuthorID == userID
}
