package app

import (
	"context"
	"strings"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/job"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/user"
)

type UserService struct {
	users user.Repository
	jobs  job.Repository
}

func NewUserService(users user.Repository, jobs job.Repository) *UserService {
	return &UserService{users: users, jobs: jobs}
}

// Profile is a public profile together with the jobs that user posted.
type Profile struct {
	User user.User `json:"user"`
	Jobs []job.Job `json:"jobs"`
}

func (s *UserService) GetProfile(ctx context.Context, id common.UUID) (*Profile, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobs.ListByOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []job.Job{}
	}
	return &Profile{User: *u, Jobs: jobs}, nil
}

const (
	defaultFreelancerPageSize = 10
	topSkillsLimit            = 50
)

// FreelancerPage is one page of the freelancer directory.
type FreelancerPage struct {
	Freelancers []user.User `json:"freelancers"`
	Total       int         `json:"total"`
	Page        int         `json:"page"`
	Pages       int         `json:"pages"`
}

// FreelancerQuery is the caller-facing shape of a directory request.
type FreelancerQuery struct {
	Search   string
	Skills   []string
	Page     int
	PageSize int
}

// ListFreelancers browses freelancer profiles with name/bio search and
// any-of skills filtering.
func (s *UserService) ListFreelancers(ctx context.Context, q FreelancerQuery) (*FreelancerPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size <= 0 {
		size = defaultFreelancerPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	items, total, err := s.users.ListFreelancers(ctx, user.Filter{
		Search: strings.TrimSpace(q.Search),
		Skills: q.Skills,
		Limit:  size,
		Offset: (page - 1) * size,
	})
	if err != nil {
		return nil, err
	}
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return &FreelancerPage{Freelancers: items, Total: total, Page: page, Pages: pages}, nil
}

// TopSkills returns the most common profile skills for filter suggestions.
func (s *UserService) TopSkills(ctx context.Context) ([]string, error) {
	return s.users.TopSkills(ctx, topSkillsLimit)
}

// ProfileUpdate carries the self-editable profile fields. Role, username,
// and email stay with the identity provider.
type ProfileUpdate struct {
	Name       *string
	Bio        *string
	Skills     []string
	Location   *string
	HourlyRate *float64
}

func (s *UserService) UpdateProfile(ctx context.Context, userID common.UUID, update ProfileUpdate) (*user.User, error) {
	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	next := *current
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if trimmed == "" {
			return nil, common.NewValidationError("invalid profile", map[string]string{"name": "name must not be empty"})
		}
		next.Name = trimmed
	}
	if update.Bio != nil {
		next.Bio = *update.Bio
	}
	if update.Skills != nil {
		next.Skills = update.Skills
	}
	if update.Location != nil {
		next.Location = *update.Location
	}
	if update.HourlyRate != nil {
		if *update.HourlyRate < 0 {
			return nil, common.NewValidationError("invalid profile", map[string]string{"hourly_rate": "hourly rate must not be negative"})
		}
		next.HourlyRate = *update.HourlyRate
	}
	return s.users.UpdateProfile(ctx, next)
}
