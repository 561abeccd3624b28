package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse-social/pulse-api/internal/domain"
	"github.com/pulse-social/pulse-api/internal/mocks"
	"github.com/pulse-social/pulse-api/internal/store"
)

func TestGroupList(t *testing.T) {
	t.Parallel()

	group, err := domain.NewGroup("Go Developers", "go-developers", "All things Go")
	require.NoError(t, err)

	groupService := &mocks.MockGroupService{
		ListFn: func(ctx context.Context) ([]*domain.Group, error) {
			return []*domain.Group{group}, nil
		},
	}
	handler := NewGroupHandler(groupService, nil)

	req := authenticate(httptest.NewRequest("GET", "/api/v1/groups/", nil), uuid.New())
	recorder := httptest.NewRecorder()

	handler.List(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	// A bare array, no pagination envelope.
	var resp []GroupResponse
	decodeBody(t, recorder, &resp)
	require.Len(t, resp, 1)
	assert.Equal(t, "Go Developers", resp[0].Title)
	assert.Equal(t, "go-developers", resp[0].Slug)
}

func TestGroupRetrieve(t *testing.T) {
	t.Parallel()

	group, err := domain.NewGroup("Go Developers", "go-developers", "")
	require.NoError(t, err)

	tests := []struct {
		name       string
		pathID     string
		getErr     error
		wantStatus int
	}{
		{
			name:       "found",
			pathID:     group.ID.String(),
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing group",
			pathID:     uuid.New().String(),
			getErr:     store.ErrGroupNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed ID behaves like a miss",
			pathID:     "42",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groupService := &mocks.MockGroupService{
				GetFn: func(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
					if tt.getErr != nil {
						return nil, tt.getErr
					}
					return group, nil
				},
			}
			handler := NewGroupHandler(groupService, nil)

			req := authenticate(
				httptest.NewRequest("GET", "/api/v1/groups/"+tt.pathID+"/", nil),
				uuid.New(),
			)
			req = withURLParams(req, map[string]string{"id": tt.pathID})
			recorder := httptest.NewRecorder()

			handler.Retrieve(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestGroupCreateNotAllowed(t *testing.T) {
	t.Parallel()

	handler := NewGroupHandler(&mocks.MockGroupService{}, nil)

	req := authenticate(
		newJSONRequest(t, "POST", "/api/v1/groups/", map[string]interface{}{
			"title": "New Group",
			"slug":  "new-group",
		}),
		uuid.New(),
	)
	recorder := httptest.NewRecorder()

	handler.CreateNotAllowed(recorder, req)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	assert.Equal(t, "GET", recorder.Header().Get("Allow"))
}

func TestGroupEndpointsRequireAuth(t *testing.T) {
	t.Parallel()

	handler := NewGroupHandler(&mocks.MockGroupService{}, nil)

	recorder := httptest.NewRecorder()
	handler.List(recorder, httptest.NewRequest("GET", "/api/v1/groups/", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = httptest.NewRecorder()
	handler.CreateNotAllowed(recorder, httptest.NewRequest("POST", "/api/v1/groups/", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
