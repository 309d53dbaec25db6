package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/muteeurrehman28/Freelancers-Network/internal/app"
	"github.com/muteeurrehman28/Freelancers-Network/internal/http/middleware"
	"github.com/muteeurrehman28/Freelancers-Network/internal/http/response"
)

type UserHandler struct {
	users *app.UserService
}

func NewUserHandler(users *app.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GetProfile handles GET /users/{id}: public profile plus that user's jobs.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	profile, err := h.users.GetProfile(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, profile)
}

// ListFreelancers handles GET /users/freelancers.
func (h *UserHandler) ListFreelancers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := app.FreelancerQuery{
		Search: q.Get("search"),
	}
	if raw := q.Get("skills"); raw != "" {
		for _, skill := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(skill); trimmed != "" {
				query.Skills = append(query.Skills, trimmed)
			}
		}
	}
	if raw := q.Get("page"); raw != "" {
		query.Page, _ = strconv.Atoi(raw)
	}
	if raw := q.Get("limit"); raw != "" {
		query.PageSize, _ = strconv.Atoi(raw)
	}
	page, err := h.users.ListFreelancers(r.Context(), query)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

// TopSkills handles GET /users/skills.
func (h *UserHandler) TopSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.users.TopSkills(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, skills)
}

type profileUpdateRequest struct {
	Name       *string  `json:"name"`
	Bio        *string  `json:"bio"`
	Skills     []string `json:"skills"`
	Location   *string  `json:"location"`
	HourlyRate *float64 `json:"hourly_rate"`
}

// UpdateProfile handles PUT /users/profile.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req profileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.users.UpdateProfile(r.Context(), userID, app.ProfileUpdate{
		Name:       req.Name,
		Bio:        req.Bio,
		Skills:     req.Skills,
		Location:   req.Location,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
