package handlers

import (
	"net/http"
	"time"

	"github.com/muteeurrehman28/Freelancers-Network/internal/app"
	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/comment"
	"github.com/muteeurrehman28/Freelancers-Network/internal/http/middleware"
	"github.com/muteeurrehman28/Freelancers-Network/internal/http/response"
)

type CommentHandler struct {
	comments *app.CommentService
	limiter  middleware.Limiter
}

func NewCommentHandler(comments *app.CommentService, limiter middleware.Limiter) *CommentHandler {
	return &CommentHandler{comments: comments, limiter: limiter}
}

type commentRequest struct {
	Text string `json:"text"`
}

// Add handles POST /jobs/{id}/comments and responds with the job's full
// comment list.
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil {
		key := "comment:" + authorID.String()
		if !h.limiter.Allow(key, 20, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "comment rate limit exceeded", nil))
			return
		}
	}
	items, err := h.comments.Add(r.Context(), jobID, authorID, req.Text)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, items)
}

// List handles GET /jobs/{id}/comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.comments.List(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []comment.Comment{}
	}
	response.JSON(w, http.StatusOK, items)
}
