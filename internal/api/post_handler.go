package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pulse-social/pulse-api/internal/api/shared"
	"github.com/pulse-social/pulse-api/internal/config"
	"github.com/pulse-social/pulse-api/internal/platform/logger"
	"github.com/pulse-social/pulse-api/internal/service"
)

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	postService service.PostService
	validator   *validator.Validate
	pagination  config.APIConfig
	logger      *slog.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(
	postService service.PostService,
	pagination config.APIConfig,
	logger *slog.Logger,
) *PostHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &PostHandler{
		postService: postService,
		validator:   validator.New(),
		pagination:  pagination,
		logger:      logger.With(slog.String("component", "post_handler")),
	}
}

// parseWindow extracts the limit/offset pagination window from the
// query string, applying the configured default and cap.
func (h *PostHandler) parseWindow(r *http.Request) (limit, offset int, err error) {
	limit = h.pagination.DefaultPageSize
	offset = 0

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return 0, 0, fmt.Errorf("invalid limit %q", raw)
		}
	}
	// A zero limit falls back to the default page size rather than
	// the cap, matching limit/offset pagination conventions.
	if limit == 0 {
		limit = h.pagination.DefaultPageSize
	}
	if limit > h.pagination.MaxPageSize {
		limit = h.pagination.MaxPageSize
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("invalid offset %q", raw)
		}
	}

	return limit, offset, nil
}

// pageURL rebuilds the request URL as an absolute URL with the given
// pagination window.
func pageURL(r *http.Request, limit, offset int) *string {
	u := *r.URL
	u.Host = r.Host
	u.Scheme = "http"
	if r.TLS != nil {
		u.Scheme = "https"
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}

// List handles GET /posts/ requests. Results are wrapped in a
// {count, next, previous, results} pagination envelope.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	limit, offset, err := h.parseWindow(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}

	posts, count, err := h.postService.List(r.Context(), limit, offset)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list posts", err)
		return
	}

	results := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		results = append(results, postToResponse(post))
	}

	response := PaginatedPostsResponse{
		Count:   count,
		Results: results,
	}
	if offset+limit < count {
		response.Next = pageURL(r, limit, offset+limit)
	}
	if offset > 0 {
		prev := offset - limit
		if prev < 0 {
			prev = 0
		}
		response.Previous = pageURL(r, limit, prev)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// Retrieve handles GET /posts/{id}/ requests.
func (h *PostHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	postID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	post, err := h.postService.Get(r.Context(), postID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}

// Create handles POST /posts/ requests. The author and publication
// date are server-assigned; any author/pub_date fields in the body are
// ignored because the request type has no slot for them.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: text is required")
		return
	}

	post, err := h.postService.Create(r.Context(), userID, service.CreatePostInput{
		Text:    req.Text,
		Image:   req.Image,
		GroupID: req.Group,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("post created",
		slog.String("post_id", post.ID.String()),
		slog.String("author_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, postToResponse(post))
}

// Update handles PUT /posts/{id}/ requests (full update).
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

// PartialUpdate handles PATCH /posts/{id}/ requests.
func (h *PostHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

// update is the shared authorization and persistence path for full and
// partial updates; the only difference is which fields must be present.
func (h *PostHandler) update(w http.ResponseWriter, r *http.Request, partial bool) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	postID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if !partial && req.Text == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: text is required")
		return
	}
	if req.Text != nil && *req.Text == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: text cannot be empty")
		return
	}

	post, err := h.postService.Update(r.Context(), userID, postID, service.UpdatePostInput{
		Text:    req.Text,
		Image:   req.Image,
		GroupID: req.Group,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}

// Destroy handles DELETE /posts/{id}/ requests.
func (h *PostHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	postID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.postService.Delete(r.Context(), userID, postID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
