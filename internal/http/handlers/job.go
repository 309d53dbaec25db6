package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/muteeurrehman28/Freelancers-Network/internal/app"
	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/job"
	"github.com/muteeurrehman28/Freelancers-Network/internal/http/middleware"
	"github.com/muteeurrehman28/Freelancers-Network/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type jobRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Budget      float64  `json:"budget"`
	Duration    string   `json:"duration"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	Remote      bool     `json:"remote"`
	Experience  string   `json:"experience"`
	Tags        []string `json:"tags"`
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), job.Job{
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Skills:      req.Skills,
		Budget:      req.Budget,
		Duration:    req.Duration,
		Category:    req.Category,
		Location:    req.Location,
		Remote:      req.Remote,
		Experience:  job.Experience(req.Experience),
		Tags:        req.Tags,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// jobUpdateRequest uses pointers so absent fields are left untouched.
// Status and owner are not accepted here.
type jobUpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Skills      []string `json:"skills"`
	Budget      *float64 `json:"budget"`
	Duration    *string  `json:"duration"`
	Category    *string  `json:"category"`
	Location    *string  `json:"location"`
	Remote      *bool    `json:"remote"`
	Experience  *string  `json:"experience"`
	Tags        []string `json:"tags"`
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var req jobUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.jobs.Update(r.Context(), userID, jobID, app.JobUpdate{
		Title:       req.Title,
		Description: req.Description,
		Skills:      req.Skills,
		Budget:      req.Budget,
		Duration:    req.Duration,
		Category:    req.Category,
		Location:    req.Location,
		Remote:      req.Remote,
		Experience:  req.Experience,
		Tags:        req.Tags,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

type jobStatusRequest struct {
	Status string `json:"status"`
}

func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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
	var req jobStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		response.Error(w, common.NewError(common.CodeValidation, "status is required", nil))
		return
	}
	updated, err := h.jobs.UpdateStatus(r.Context(), userID, jobID, job.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), userID, role, jobID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "job deleted"})
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.jobs.Get(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	listQuery := app.ListQuery{
		Search:     query.Get("search"),
		Status:     query.Get("status"),
		Category:   query.Get("category"),
		Experience: query.Get("experience"),
		Sort:       query.Get("sort"),
	}
	if value := query.Get("skills"); value != "" {
		for _, skill := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(skill); trimmed != "" {
				listQuery.Skills = append(listQuery.Skills, trimmed)
			}
		}
	}
	if value := query.Get("min_budget"); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			response.Error(w, common.NewValidationError("invalid min_budget", map[string]string{"min_budget": "must be a number"}))
			return
		}
		listQuery.MinBudget = &parsed
	}
	if value := query.Get("max_budget"); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			response.Error(w, common.NewValidationError("invalid max_budget", map[string]string{"max_budget": "must be a number"}))
			return
		}
		listQuery.MaxBudget = &parsed
	}
	if value := query.Get("remote"); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			response.Error(w, common.NewValidationError("invalid remote", map[string]string{"remote": "must be true or false"}))
			return
		}
		listQuery.Remote = &parsed
	}
	if value := query.Get("page"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			listQuery.Page = parsed
		}
	}
	if value := query.Get("limit"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			listQuery.PageSize = parsed
		}
	}
	page, err := h.jobs.List(r.Context(), listQuery)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}
