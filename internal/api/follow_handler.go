package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pulse-social/pulse-api/internal/api/shared"
	"github.com/pulse-social/pulse-api/internal/platform/logger"
	"github.com/pulse-social/pulse-api/internal/service"
)

// FollowHandler handles follow-related HTTP requests. The collection is
// always scoped to the authenticated user; there is no way to read or
// write another user's subscriptions.
type FollowHandler struct {
	followService service.FollowService
	validator     *validator.Validate
	logger        *slog.Logger
}

// NewFollowHandler creates a new FollowHandler.
func NewFollowHandler(followService service.FollowService, logger *slog.Logger) *FollowHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &FollowHandler{
		followService: followService,
		validator:     validator.New(),
		logger:        logger.With(slog.String("component", "follow_handler")),
	}
}

// List handles GET /follow/ requests. An optional ?search= parameter
// filters by a substring of the followed username.
func (h *FollowHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	search := r.URL.Query().Get("search")

	follows, err := h.followService.List(r.Context(), userID, search)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	results := make([]FollowResponse, 0, len(follows))
	for _, follow := range follows {
		results = append(results, followToResponse(follow))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, results)
}

// Create handles POST /follow/ requests. The follower is always the
// authenticated user; the target is named by username in the body.
func (h *FollowHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateFollowRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: following is required")
		return
	}

	follow, err := h.followService.Create(r.Context(), userID, req.Following)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("follow created",
		slog.String("user_id", userID.String()),
		slog.String("following", req.Following))
	shared.RespondWithJSON(w, r, http.StatusCreated, followToResponse(follow))
}
