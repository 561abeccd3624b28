package api

import (
	"log/slog"
	"net/http"

	"github.com/pulse-social/pulse-api/internal/api/shared"
	"github.com/pulse-social/pulse-api/internal/service"
)

// GroupHandler handles group-related HTTP requests. Groups are a
// read-only catalog; creation happens out of band.
type GroupHandler struct {
	groupService service.GroupService
	logger       *slog.Logger
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groupService service.GroupService, logger *slog.Logger) *GroupHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &GroupHandler{
		groupService: groupService,
		logger:       logger.With(slog.String("component", "group_handler")),
	}
}

// List handles GET /groups/ requests, returning all groups as a bare
// array.
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	groups, err := h.groupService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	results := make([]GroupResponse, 0, len(groups))
	for _, group := range groups {
		results = append(results, groupToResponse(group))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, results)
}

// Retrieve handles GET /groups/{id}/ requests.
func (h *GroupHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	groupID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	group, err := h.groupService.Get(r.Context(), groupID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, groupToResponse(group))
}

// CreateNotAllowed handles POST /groups/ requests with 405. The
// collection only supports reads.
func (h *GroupHandler) CreateNotAllowed(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	w.Header().Set("Allow", "GET")
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, `Method "POST" not allowed.`)
}
