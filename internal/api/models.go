package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/pulse-social/pulse-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// RegisterResponse defines the successful response for user registration.
type RegisterResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// TokenCreateRequest defines the payload for the token creation endpoint.
type TokenCreateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenPairResponse defines the successful response for the token
// creation and refresh endpoints.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenRefreshRequest defines the payload for the token refresh endpoint.
type TokenRefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// TokenVerifyRequest defines the payload for the token verification endpoint.
type TokenVerifyRequest struct {
	Token string `json:"token" validate:"required"`
}

// CreatePostRequest defines the payload for creating a post. There is
// no author or pub_date field: both are server-assigned regardless of
// what the client sends.
type CreatePostRequest struct {
	Text  string     `json:"text"  validate:"required"`
	Image *string    `json:"image"`
	Group *uuid.UUID `json:"group"`
}

// UpdatePostRequest defines the payload for updating a post. For full
// updates (PUT) text is required; for partial updates (PATCH) every
// field is optional.
type UpdatePostRequest struct {
	Text  *string    `json:"text"`
	Image *string    `json:"image"`
	Group *uuid.UUID `json:"group"`
}

// PostResponse represents the response data for a post.
type PostResponse struct {
	ID      uuid.UUID  `json:"id"`
	Author  string     `json:"author"`
	Text    string     `json:"text"`
	PubDate time.Time  `json:"pub_date"`
	Image   *string    `json:"image"`
	Group   *uuid.UUID `json:"group"`
}

// PaginatedPostsResponse is the pagination envelope for the post list.
type PaginatedPostsResponse struct {
	Count    int            `json:"count"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
	Results  []PostResponse `json:"results"`
}

// CreateCommentRequest defines the payload for creating a comment.
// The author and parent post are taken from the token and the URL
// path; any author/post fields in the body are ignored by virtue of
// having no slot here.
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// UpdateCommentRequest defines the payload for updating a comment.
// Text is required for PUT and optional for PATCH.
type UpdateCommentRequest struct {
	Text *string `json:"text"`
}

// CommentResponse represents the response data for a comment.
type CommentResponse struct {
	ID      uuid.UUID `json:"id"`
	Author  string    `json:"author"`
	Post    uuid.UUID `json:"post"`
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
}

// GroupResponse represents the response data for a group.
type GroupResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
}

// CreateFollowRequest defines the payload for creating a follow edge.
// Only the followed username is client-writable; the follower is
// always the requester.
type CreateFollowRequest struct {
	Following string `json:"following" validate:"required"`
}

// FollowResponse represents the response data for a follow edge.
type FollowResponse struct {
	User      string `json:"user"`
	Following string `json:"following"`
}

// postToResponse converts a domain post to its API representation.
func postToResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:      post.ID,
		Author:  post.AuthorUsername,
		Text:    post.Text,
		PubDate: post.PubDate,
		Image:   post.Image,
		Group:   post.GroupID,
	}
}

// commentToResponse converts a domain comment to its API representation.
func commentToResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:      comment.ID,
		Author:  comment.AuthorUsername,
		Post:    comment.PostID,
		Text:    comment.Text,
		Created: comment.Created,
	}
}

// groupToResponse converts a domain group to its API representation.
func groupToResponse(group *domain.Group) GroupResponse {
	return GroupResponse{
		ID:          group.ID,
		Title:       group.Title,
		Slug:        group.Slug,
		Description: group.Description,
	}
}

// followToResponse converts a domain follow edge to its API representation.
func followToResponse(follow *domain.Follow) FollowResponse {
	return FollowResponse{
		User:      follow.UserUsername,
		Following: follow.FollowingUsername,
	}
}
