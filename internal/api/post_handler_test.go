package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse-social/pulse-api/internal/domain"
	"github.com/pulse-social/pulse-api/internal/mocks"
	"github.com/pulse-social/pulse-api/internal/service"
	"github.com/pulse-social/pulse-api/internal/store"
)

func makePost(t *testing.T, authorID uuid.UUID, username, text string) *domain.Post {
	t.Helper()
	post, err := domain.NewPost(authorID, text, nil, nil)
	require.NoError(t, err)
	post.AuthorUsername = username
	return post
}

func TestPostList(t *testing.T) {
	t.Parallel()

	authorID := uuid.New()
	posts := []*domain.Post{
		makePost(t, authorID, "alice", "first"),
		makePost(t, authorID, "alice", "second"),
	}

	postService := &mocks.MockPostService{
		ListFn: func(ctx context.Context, limit, offset int) ([]*domain.Post, int, error) {
			assert.Equal(t, 10, limit)
			assert.Equal(t, 0, offset)
			return posts, 2, nil
		},
	}
	handler := NewPostHandler(postService, testPagination, nil)

	req := authenticate(httptest.NewRequest("GET", "/api/v1/posts/", nil), uuid.New())
	recorder := httptest.NewRecorder()

	handler.List(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp PaginatedPostsResponse
	decodeBody(t, recorder, &resp)
	assert.Equal(t, 2, resp.Count)
	assert.Nil(t, resp.Next)
	assert.Nil(t, resp.Previous)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "first", resp.Results[0].Text)
	assert.Equal(t, "alice", resp.Results[0].Author)
}

func TestPostListPaginationWindow(t *testing.T) {
	t.Parallel()

	authorID := uuid.New()
	page := []*domain.Post{makePost(t, authorID, "alice", "middle")}

	postService := &mocks.MockPostService{
		ListFn: func(ctx context.Context, limit, offset int) ([]*domain.Post, int, error) {
			assert.Equal(t, 1, limit)
			assert.Equal(t, 1, offset)
			return page, 3, nil
		},
	}
	handler := NewPostHandler(postService, testPagination, nil)

	req := authenticate(
		httptest.NewRequest("GET", "/api/v1/posts/?limit=1&offset=1", nil),
		uuid.New(),
	)
	recorder := httptest.NewRecorder()

	handler.List(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp PaginatedPostsResponse
	decodeBody(t, recorder, &resp)
	assert.Equal(t, 3, resp.Count)
	require.NotNil(t, resp.Next)
	assert.Contains(t, *resp.Next, "offset=2")
	assert.True(t, strings.HasPrefix(*resp.Next, "http://example.com/api/v1/posts/"),
		"next must be an absolute URL, got %s", *resp.Next)
	require.NotNil(t, resp.Previous)
	assert.NotContains(t, *resp.Previous, "offset=")
	assert.True(t, strings.HasPrefix(*resp.Previous, "http://example.com/api/v1/posts/"),
		"previous must be an absolute URL, got %s", *resp.Previous)
}

func TestPostListZeroLimit(t *testing.T) {
	t.Parallel()

	postService := &mocks.MockPostService{
		ListFn: func(ctx context.Context, limit, offset int) ([]*domain.Post, int, error) {
			// limit=0 falls back to the default page size, not the cap.
			assert.Equal(t, testPagination.DefaultPageSize, limit)
			return nil, 0, nil
		},
	}
	handler := NewPostHandler(postService, testPagination, nil)

	req := authenticate(httptest.NewRequest("GET", "/api/v1/posts/?limit=0", nil), uuid.New())
	recorder := httptest.NewRecorder()

	handler.List(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestPostListInvalidPagination(t *testing.T) {
	t.Parallel()

	handler := NewPostHandler(&mocks.MockPostService{}, testPagination, nil)

	for _, target := range []string{
		"/api/v1/posts/?limit=abc",
		"/api/v1/posts/?offset=-5",
	} {
		req := authenticate(httptest.NewRequest("GET", target, nil), uuid.New())
		recorder := httptest.NewRecorder()

		handler.List(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code, "target %s", target)
	}
}

func TestPostListUnauthenticated(t *testing.T) {
	t.Parallel()

	handler := NewPostHandler(&mocks.MockPostService{}, testPagination, nil)

	req := httptest.NewRequest("GET", "/api/v1/posts/", nil)
	recorder := httptest.NewRecorder()

	handler.List(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestPostCreate(t *testing.T) {
	t.Parallel()

	requesterID := uuid.New()

	postService := &mocks.MockPostService{
		CreateFn: func(ctx context.Context, gotRequester uuid.UUID, in service.CreatePostInput) (*domain.Post, error) {
			// The author is the token identity even though the body
			// carried a different author field.
			assert.Equal(t, requesterID, gotRequester)
			return makePost(t, gotRequester, "alice", in.Text), nil
		},
	}
	handler := NewPostHandler(postService, testPagination, nil)

	payload := map[string]interface{}{
		"text":   "hello world",
		"author": "someone_else",
	}
	req := authenticate(newJSONRequest(t, "POST", "/api/v1/posts/", payload), requesterID)
	recorder := httptest.NewRecorder()

	handler.Create(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp PostResponse
	decodeBody(t, recorder, &resp)
	assert.Equal(t, "hello world", resp.Text)
	assert.Equal(t, "alice", resp.Author)
}

func TestPostCreateMissingText(t *testing.T) {
	t.Parallel()

	handler := NewPostHandler(&mocks.MockPostService{}, testPagination, nil)

	req := authenticate(
		newJSONRequest(t, "POST", "/api/v1/posts/", map[string]interface{}{}),
		uuid.New(),
	)
	recorder := httptest.NewRecorder()

	handler.Create(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPostRetrieve(t *testing.T) {
	t.Parallel()

	postID := uuid.New()

	tests := []struct {
		name       string
		pathID     string
		getErr     error
		wantStatus int
	}{
		{
			name:       "found",
			pathID:     postID.String(),
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing post",
			pathID:     uuid.New().String(),
			getErr:     store.ErrPostNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed ID behaves like a miss",
			pathID:     "not-a-uuid",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postService := &mocks.MockPostService{
				GetFn: func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
					if tt.getErr != nil {
						return nil, tt.getErr
					}
					return makePost(t, uuid.New(), "alice", "found me"), nil
				},
			}
			handler := NewPostHandler(postService, testPagination, nil)

			req := authenticate(
				httptest.NewRequest("GET", "/api/v1/posts/"+tt.pathID+"/", nil),
				uuid.New(),
			)
			req = withURLParams(req, map[string]string{"id": tt.pathID})
			recorder := httptest.NewRecorder()

			handler.Retrieve(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestPostUpdate(t *testing.T) {
	t.Parallel()

	postID := uuid.New()

	tests := []struct {
		name       string
		method     string
		partial    bool
		payload    map[string]interface{}
		updateErr  error
		wantStatus int
	}{
		{
			name:       "author PUT",
			method:     "PUT",
			payload:    map[string]interface{}{"text": "updated"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "PUT without text",
			method:     "PUT",
			payload:    map[string]interface{}{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "PATCH without text",
			method:     "PATCH",
			partial:    true,
			payload:    map[string]interface{}{},
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty text rejected",
			method:     "PATCH",
			partial:    true,
			payload:    map[string]interface{}{"text": ""},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-author gets 403",
			method:     "PUT",
			payload:    map[string]interface{}{"text": "hijack"},
			updateErr:  domain.ErrNotOwner,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing post gets 404",
			method:     "PUT",
			payload:    map[string]interface{}{"text": "ghost"},
			updateErr:  store.ErrPostNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postService := &mocks.MockPostService{
				UpdateFn: func(ctx context.Context, requesterID, gotPostID uuid.UUID, in service.UpdatePostInput) (*domain.Post, error) {
					if tt.updateErr != nil {
						return nil, tt.updateErr
					}
					// Omitted optional fields stay omitted for PUT and
					// PATCH alike; the stored values survive.
					assert.Nil(t, in.Image)
					assert.Nil(t, in.GroupID)
					text := "unchanged"
					if in.Text != nil {
						text = *in.Text
					}
					return makePost(t, requesterID, "alice", text), nil
				},
			}
			handler := NewPostHandler(postService, testPagination, nil)

			req := authenticate(
				newJSONRequest(t, tt.method, "/api/v1/posts/"+postID.String()+"/", tt.payload),
				uuid.New(),
			)
			req = withURLParams(req, map[string]string{"id": postID.String()})
			recorder := httptest.NewRecorder()

			if tt.partial {
				handler.PartialUpdate(recorder, req)
			} else {
				handler.Update(recorder, req)
			}

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestPostDestroy(t *testing.T) {
	t.Parallel()

	postID := uuid.New()

	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
	}{
		{
			name:       "author deletes",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "non-author gets 403",
			deleteErr:  domain.ErrNotOwner,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing post gets 404",
			deleteErr:  store.ErrPostNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postService := &mocks.MockPostService{
				DeleteFn: func(ctx context.Context, requesterID, gotPostID uuid.UUID) error {
					return tt.deleteErr
				},
			}
			handler := NewPostHandler(postService, testPagination, nil)

			req := authenticate(
				httptest.NewRequest("DELETE", "/api/v1/posts/"+postID.String()+"/", nil),
				uuid.New(),
			)
			req = withURLParams(req, map[string]string{"id": postID.String()})
			recorder := httptest.NewRecorder()

			handler.Destroy(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
