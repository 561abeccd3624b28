package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pulse-social/pulse-api/internal/api/shared"
	"github.com/pulse-social/pulse-api/internal/platform/logger"
	"github.com/pulse-social/pulse-api/internal/service"
)

// CommentHandler handles comment-related HTTP requests. Every route is
// nested under a parent post: /posts/{post_id}/comments/.
type CommentHandler struct {
	commentService service.CommentService
	validator      *validator.Validate
	logger         *slog.Logger
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentService, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &CommentHandler{
		commentService: commentService,
		validator:      validator.New(),
		logger:         logger.With(slog.String("component", "comment_handler")),
	}
}

// List handles GET /posts/{post_id}/comments/ requests. Comments are
// returned newest-first as a bare array.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	postID, err := getPathUUID(r, "post_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	comments, err := h.commentService.List(r.Context(), postID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	results := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		results = append(results, commentToResponse(comment))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, results)
}

// Retrieve handles GET /posts/{post_id}/comments/{id}/ requests. A
// comment that exists under a different post yields 404, never 403.
func (h *CommentHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	postID, err := getPathUUID(r, "post_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	commentID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	comment, err := h.commentService.Get(r.Context(), postID, commentID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, commentToResponse(comment))
}

// Create handles POST /posts/{post_id}/comments/ requests. The author
// comes from the token and the parent post from the URL path; body
// fields for either are ignored.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	postID, err := getPathUUID(r, "post_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CreateCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: text is required")
		return
	}

	comment, err := h.commentService.Create(r.Context(), userID, postID, req.Text)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("comment created",
		slog.String("comment_id", comment.ID.String()),
		slog.String("post_id", postID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, commentToResponse(comment))
}

// Update handles PUT /posts/{post_id}/comments/{id}/ requests.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

// PartialUpdate handles PATCH /posts/{post_id}/comments/{id}/ requests.
func (h *CommentHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

func (h *CommentHandler) update(w http.ResponseWriter, r *http.Request, partial bool) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	postID, err := getPathUUID(r, "post_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	commentID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateCommentRequest
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

	comment, err := h.commentService.Update(r.Context(), userID, postID, commentID, req.Text)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, commentToResponse(comment))
}

// Destroy handles DELETE /posts/{post_id}/comments/{id}/ requests.
func (h *CommentHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	postID, err := getPathUUID(r, "post_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	commentID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.commentService.Delete(r.Context(), userID, postID, commentID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
