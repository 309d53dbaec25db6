package app

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/job"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/user"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type JobService struct {
	repo   job.Repository
	users  user.Repository
	logger *zap.Logger
}

func NewJobService(repo job.Repository, users user.Repository, logger *zap.Logger) *JobService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobService{repo: repo, users: users, logger: logger}
}

func (s *JobService) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	if err := validateJobFields(j); err != nil {
		return nil, err
	}
	normalized, err := normalizeExperience(j.Experience)
	if err != nil {
		return nil, err
	}
	j.Experience = normalized
	// Status is never caller-controlled at creation.
	j.Status = job.StatusOpen
	j.HiredFreelancerID = nil
	created, err := s.repo.Create(ctx, j)
	if err != nil {
		return nil, err
	}
	s.logger.Info("job created", zap.String("job_id", created.ID.String()), zap.String("owner_id", created.OwnerID.String()))
	return created, nil
}

// JobUpdate carries the caller-editable fields. Status and owner are absent
// on purpose: ownership is immutable and status moves only through
// UpdateStatus and the hire path.
type JobUpdate struct {
	Title       *string
	Description *string
	Skills      []string
	Budget      *float64
	Duration    *string
	Category    *string
	Location    *string
	Remote      *bool
	Experience  *string
	Tags        []string
}

func (s *JobService) Update(ctx context.Context, callerID, jobID common.UUID, update JobUpdate) (*job.Job, error) {
	current, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := authorizeJobEdit(*current, callerID); err != nil {
		return nil, err
	}
	next := *current
	if update.Title != nil {
		next.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		next.Description = strings.TrimSpace(*update.Description)
	}
	if update.Skills != nil {
		next.Skills = update.Skills
	}
	if update.Budget != nil {
		next.Budget = *update.Budget
	}
	if update.Duration != nil {
		next.Duration = *update.Duration
	}
	if update.Category != nil {
		next.Category = *update.Category
	}
	if update.Location != nil {
		next.Location = *update.Location
	}
	if update.Remote != nil {
		next.Remote = *update.Remote
	}
	if update.Experience != nil {
		normalized, err := normalizeExperience(job.Experience(*update.Experience))
		if err != nil {
			return nil, err
		}
		next.Experience = normalized
	}
	if update.Tags != nil {
		next.Tags = update.Tags
	}
	if err := validateJobFields(next); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, next)
}

func (s *JobService) UpdateStatus(ctx context.Context, callerID, jobID common.UUID, status job.Status) (*job.Job, error) {
	current, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := authorizeJobEdit(*current, callerID); err != nil {
		return nil, err
	}
	next, err := normalizeJobStatus(status)
	if err != nil {
		return nil, err
	}
	if next == current.Status {
		return current, nil
	}
	if !isAllowedJobTransition(current.Status, next) {
		return nil, common.NewValidationError("invalid status transition", map[string]string{
			"status": "allowed transitions are open to cancelled and in_progress to completed",
		})
	}
	updated, err := s.repo.UpdateStatus(ctx, jobID, current.Status, next)
	if err != nil {
		return nil, err
	}
	s.logger.Info("job status changed", zap.String("job_id", jobID.String()), zap.String("status", string(next)))
	return updated, nil
}

func (s *JobService) Delete(ctx context.Context, callerID common.UUID, role user.Role, jobID common.UUID) error {
	current, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if err := authorizeJobDelete(*current, callerID, role); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, jobID); err != nil {
		return err
	}
	s.logger.Info("job deleted", zap.String("job_id", jobID.String()), zap.String("caller_id", callerID.String()))
	return nil
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.Job, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resolved, err := s.withOwners(ctx, []job.Job{*item})
	if err != nil {
		return nil, err
	}
	return &resolved[0], nil
}

// Page is one page of listing results.
type Page struct {
	Jobs  []job.Job `json:"jobs"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Pages int       `json:"pages"`
}

// ListQuery is the caller-facing shape of a listing request before
// coercion into a repository filter.
type ListQuery struct {
	Search     string
	Skills     []string
	MinBudget  *float64
	MaxBudget  *float64
	Status     string
	Category   string
	Experience string
	Remote     *bool
	Sort       string
	Page       int
	PageSize   int
}

func (s *JobService) List(ctx context.Context, q ListQuery) (*Page, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	// Browsing hides non-open jobs unless a status is asked for explicitly.
	status := job.StatusOpen
	if q.Status != "" {
		normalized, err := normalizeJobStatus(job.Status(q.Status))
		if err != nil {
			return nil, err
		}
		status = normalized
	}
	var experience job.Experience
	if q.Experience != "" {
		normalized, err := normalizeExperience(job.Experience(q.Experience))
		if err != nil {
			return nil, err
		}
		experience = normalized
	}
	if q.MinBudget != nil && q.MaxBudget != nil && *q.MinBudget > *q.MaxBudget {
		return nil, common.NewValidationError("invalid budget range", map[string]string{"min_budget": "min_budget must not exceed max_budget"})
	}
	sort := job.SortNewest
	switch q.Sort {
	case "", "newest":
	case "oldest":
		sort = job.SortOldest
	case "budget_high":
		sort = job.SortBudgetHigh
	case "budget_low":
		sort = job.SortBudgetLow
	default:
		return nil, common.NewValidationError("invalid sort", map[string]string{"sort": "sort must be newest, oldest, budget_high, or budget_low"})
	}
	filter := job.Filter{
		Search:     strings.TrimSpace(q.Search),
		Skills:     q.Skills,
		MinBudget:  q.MinBudget,
		MaxBudget:  q.MaxBudget,
		Status:     status,
		Category:   q.Category,
		Experience: experience,
		Remote:     q.Remote,
		Sort:       sort,
		Limit:      size,
		Offset:     (page - 1) * size,
	}
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items, err = s.withOwners(ctx, items)
	if err != nil {
		return nil, err
	}
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return &Page{Jobs: items, Total: total, Page: page, Pages: pages}, nil
}

func (s *JobService) ListByOwner(ctx context.Context, ownerID common.UUID) ([]job.Job, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *JobService) withOwners(ctx context.Context, items []job.Job) ([]job.Job, error) {
	if len(items) == 0 {
		return items, nil
	}
	ids := make([]common.UUID, 0, len(items))
	seen := make(map[common.UUID]bool, len(items))
	for _, item := range items {
		if !seen[item.OwnerID] {
			seen[item.OwnerID] = true
			ids = append(ids, item.OwnerID)
		}
	}
	summaries, err := s.users.Summaries(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if summary, ok := summaries[items[i].OwnerID]; ok {
			owner := summary
			items[i].Owner = &owner
		}
	}
	return items, nil
}

func validateJobFields(j job.Job) error {
	fields := map[string]string{}
	if strings.TrimSpace(j.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(j.Description) == "" {
		fields["description"] = "description is required"
	}
	if j.Budget < 0 {
		fields["budget"] = "budget must not be negative"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid job", fields)
	}
	return nil
}

func isAllowedJobTransition(from, to job.Status) bool {
	switch from {
	case job.StatusOpen:
		return to == job.StatusCancelled
	case job.StatusInProgress:
		return to == job.StatusCompleted
	default:
		return false
	}
}

func normalizeJobStatus(status job.Status) (job.Status, error) {
	normalized := job.Status(strings.ToLower(strings.TrimSpace(string(status))))
	// "closed" survives from an older client vocabulary.
	if normalized == "closed" {
		normalized = job.StatusCancelled
	}
	switch normalized {
	case job.StatusOpen, job.StatusInProgress, job.StatusCompleted, job.StatusCancelled:
		return normalized, nil
	default:
		return "", common.NewValidationError("invalid job status", map[string]string{"status": "status must be open, in_progress, completed, or cancelled"})
	}
}

func normalizeExperience(level job.Experience) (job.Experience, error) {
	normalized := job.Experience(strings.ToLower(strings.TrimSpace(string(level))))
	switch normalized {
	case "":
		return "", nil
	case job.ExperienceEntry, job.ExperienceIntermediate, job.ExperienceExpert:
		return normalized, nil
	default:
		return "", common.NewValidationError("invalid experience level", map[string]string{"experience": "experience must be entry, intermediate, or expert"})
	}
}
