package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulse-social/pulse-api/internal/domain"
	"github.com/pulse-social/pulse-api/internal/service"
	"github.com/pulse-social/pulse-api/internal/service/auth"
	"github.com/pulse-social/pulse-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"not owner", domain.ErrNotOwner, http.StatusForbidden},
		{"post not found", store.ErrPostNotFound, http.StatusNotFound},
		{"comment not found", store.ErrCommentNotFound, http.StatusNotFound},
		{"group not found", store.ErrGroupNotFound, http.StatusNotFound},
		{"invalid ID", domain.ErrInvalidID, http.StatusNotFound},
		{"username exists", store.ErrUsernameExists, http.StatusConflict},
		{"self follow", domain.ErrSelfFollow, http.StatusBadRequest},
		{"already following", service.ErrAlreadyFollowing, http.StatusBadRequest},
		{"following not found", service.ErrFollowingNotFound, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestMapErrorToStatusCodeWrapped(t *testing.T) {
	t.Parallel()

	// Wrapped errors map the same as their sentinel.
	wrapped := fmt.Errorf("loading post: %w", store.ErrPostNotFound)
	assert.Equal(t, http.StatusNotFound, MapErrorToStatusCode(wrapped))

	validation := domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID)
	assert.Equal(t, http.StatusNotFound, MapErrorToStatusCode(validation))
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	// Internal details never reach the client.
	leaky := errors.New("pq: connection refused host=10.0.0.7")
	msg := GetSafeErrorMessage(leaky)
	assert.Equal(t, "An unexpected error occurred", msg)

	assert.Equal(t, "Post not found", GetSafeErrorMessage(store.ErrPostNotFound))
	assert.Equal(t, "You cannot follow yourself", GetSafeErrorMessage(domain.ErrSelfFollow))
	assert.Equal(t,
		"You do not have permission to modify this resource",
		GetSafeErrorMessage(domain.ErrNotOwner))
}
