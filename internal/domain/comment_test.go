package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewComment(t *testing.T) {
	authorID := uuid.New()
	postID := uuid.New()

	comment, err := NewComment(authorID, postID, "some comment")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if comment.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if comment.AuthorID != authorID {
		t.Errorf("Expected author ID %v, got %v", authorID, comment.AuthorID)
	}

	if comment.PostID != postID {
		t.Errorf("Expected post ID %v, got %v", postID, comment.PostID)
	}

	if comment.Created.IsZero() {
		t.Error("Expected non-zero Created time")
	}

	// Invalid inputs
	_, err = NewComment(uuid.Nil, postID, "some comment")
	if err != ErrEmptyCommentAuthorID {
		t.Errorf("Expected error %v, got %v", ErrEmptyCommentAuthorID, err)
	}

	_, err = NewComment(authorID, uuid.Nil, "some comment")
	if err != ErrEmptyCommentPostID {
		t.Errorf("Expected error %v, got %v", ErrEmptyCommentPostID, err)
	}

	_, err = NewComment(authorID, postID, "")
	if err != ErrEmptyCommentText {
		t.Errorf("Expected error %v, got %v", ErrEmptyCommentText, err)
	}
}

func TestCommentIsOwnedBy(t *testing.T) {
	authorID := uuid.New()

	comment, err := NewComment(authorID, uuid.New(), "some comment")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !comment.IsOwnedBy(authorID) {
		t.Error("Expected comment to be owned by its author")
	}

	if comment.IsOwnedBy(uuid.New()) {
		t.Error("Expected comment not to be owned by another user")
	}
}
