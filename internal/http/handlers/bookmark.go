package handlers

import (
	"net/http"

	"github.com/muteeurrehman28/Freelancers-Network/internal/app"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/job"
	"github.com/muteeurrehman28/Freelancers-Network/internal/http/middleware"
	"github.com/muteeurrehman28/Freelancers-Network/internal/http/response"
)

type BookmarkHandler struct {
	bookmarks *app.BookmarkService
}

func NewBookmarkHandler(bookmarks *app.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

// Toggle handles POST /jobs/{id}/bookmark.
func (h *BookmarkHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	bookmarked, err := h.bookmarks.Toggle(r.Context(), userID, jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"bookmarked": bookmarked})
}

// List handles GET /jobs/bookmarked.
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.bookmarks.ListJobs(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []job.Job{}
	}
	response.JSON(w, http.StatusOK, items)
}
