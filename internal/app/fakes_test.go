package app

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/application"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/bookmark"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/comment"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/job"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/user"
)

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[common.UUID]*job.Job
	seq  int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[common.UUID]*job.Job)}
}

func (r *fakeJobRepo) nextTime() time.Time {
	r.seq++
	return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(r.seq) * time.Second)
}

func (r *fakeJobRepo) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = common.NewUUID()
	now := r.nextTime()
	j.CreatedAt = now
	j.UpdatedAt = now
	stored := j
	r.jobs[j.ID] = &stored
	return &j, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.jobs[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	copy := *stored
	return &copy, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.jobs[j.ID]
	if !ok || stored.OwnerID != j.OwnerID {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	j.CreatedAt = stored.CreatedAt
	j.UpdatedAt = r.nextTime()
	updated := j
	r.jobs[j.ID] = &updated
	copy := updated
	return &copy, nil
}

func (r *fakeJobRepo) UpdateStatus(ctx context.Context, id common.UUID, from, to job.Status) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.jobs[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	if stored.Status != from {
		return nil, common.NewError(common.CodeConflict, "job status changed concurrently", nil)
	}
	stored.Status = to
	stored.UpdatedAt = r.nextTime()
	copy := *stored
	return &copy, nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) List(ctx context.Context, f job.Filter) ([]job.Job, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []job.Job
	for _, stored := range r.jobs {
		if !matchesFilter(*stored, f) {
			continue
		}
		matched = append(matched, *stored)
	}
	sort.Slice(matched, func(i, j int) bool {
		switch f.Sort {
		case job.SortOldest:
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		case job.SortBudgetHigh:
			return matched[i].Budget > matched[j].Budget
		case job.SortBudgetLow:
			return matched[i].Budget < matched[j].Budget
		default:
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
	})
	total := len(matched)
	if f.Offset >= total {
		return []job.Job{}, total, nil
	}
	end := f.Offset + f.Limit
	if end > total {
		end = total
	}
	return matched[f.Offset:end], total, nil
}

func matchesFilter(j job.Job, f job.Filter) bool {
	if j.Status != f.Status {
		return false
	}
	if f.Search != "" {
		haystack := strings.ToLower(j.Title + " " + j.Description + " " + strings.Join(j.Skills, " ") + " " + strings.Join(j.Tags, " "))
		if !strings.Contains(haystack, strings.ToLower(f.Search)) {
			return false
		}
	}
	if len(f.Skills) > 0 {
		found := false
		for _, want := range f.Skills {
			for _, have := range j.Skills {
				if strings.EqualFold(want, have) {
					found = true
				}
			}
		}
		if !found {
			return false
		}
	}
	if f.MinBudget != nil && j.Budget < *f.MinBudget {
		return false
	}
	if f.MaxBudget != nil && j.Budget > *f.MaxBudget {
		return false
	}
	if f.Category != "" && j.Category != f.Category {
		return false
	}
	if f.Experience != "" && j.Experience != f.Experience {
		return false
	}
	if f.Remote != nil && j.Remote != *f.Remote {
		return false
	}
	return true
}

func (r *fakeJobRepo) ListByOwner(ctx context.Context, ownerID common.UUID) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Job
	for _, stored := range r.jobs {
		if stored.OwnerID == ownerID {
			items = append(items, *stored)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (r *fakeJobRepo) ListByIDs(ctx context.Context, ids []common.UUID) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Job
	for _, id := range ids {
		if stored, ok := r.jobs[id]; ok {
			items = append(items, *stored)
		}
	}
	return items, nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	apps map[common.UUID]*application.Application
	jobs *fakeJobRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[common.UUID]*application.Application), jobs: jobs}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, a application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.apps {
		if existing.JobID == a.JobID && existing.ApplicantID == a.ApplicantID {
			return nil, common.NewError(common.CodeConflict, "already applied", nil)
		}
	}
	a.ID = common.NewUUID()
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	stored := a
	r.apps[a.ID] = &stored
	return &a, nil
}

func (r *fakeApplicationRepo) GetByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, stored := range r.apps {
		if stored.JobID == jobID && stored.ApplicantID == applicantID {
			copy := *stored
			return &copy, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, stored := range r.apps {
		if stored.JobID == jobID {
			items = append(items, *stored)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, applicantID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, stored := range r.apps {
		if stored.ApplicantID == applicantID {
			items = append(items, *stored)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, jobID, applicantID common.UUID, from, to application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, stored := range r.apps {
		if stored.JobID == jobID && stored.ApplicantID == applicantID {
			if stored.Status != from {
				return nil, common.NewError(common.CodeNotFound, "pending application not found", nil)
			}
			stored.Status = to
			stored.UpdatedAt = time.Now().UTC()
			copy := *stored
			return &copy, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "pending application not found", nil)
}

func (r *fakeApplicationRepo) Accept(ctx context.Context, jobID, applicantID common.UUID) (*application.Application, error) {
	r.jobs.mu.Lock()
	stored, ok := r.jobs.jobs[jobID]
	if !ok || stored.Status != job.StatusOpen {
		r.jobs.mu.Unlock()
		return nil, common.NewError(common.CodeConflict, "job is no longer open", nil)
	}
	r.jobs.mu.Unlock()
	accepted, err := r.UpdateStatus(ctx, jobID, applicantID, application.StatusPending, application.StatusAccepted)
	if err != nil {
		return nil, err
	}
	r.jobs.mu.Lock()
	hired := applicantID
	stored.Status = job.StatusInProgress
	stored.HiredFreelancerID = &hired
	r.jobs.mu.Unlock()
	return accepted, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[common.UUID]*user.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[common.UUID]*user.User)}
}

func (r *fakeUserRepo) add(name string, role user.Role) common.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := common.NewUUID()
	r.seq++
	r.users[id] = &user.User{
		ID:        id,
		Username:  strings.ToLower(name),
		Email:     strings.ToLower(name) + "@example.com",
		Name:      name,
		Role:      role,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(r.seq) * time.Second),
	}
	return id
}

func (r *fakeUserRepo) set(id common.UUID, mutate func(*user.User)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored, ok := r.users[id]; ok {
		mutate(stored)
	}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	copy := *stored
	return &copy, nil
}

func (r *fakeUserRepo) Summaries(ctx context.Context, ids []common.UUID) (map[common.UUID]user.Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	summaries := make(map[common.UUID]user.Summary, len(ids))
	for _, id := range ids {
		if stored, ok := r.users[id]; ok {
			summaries[id] = stored.Summary()
		}
	}
	return summaries, nil
}

func (r *fakeUserRepo) ListFreelancers(ctx context.Context, f user.Filter) ([]user.User, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []user.User
	for _, stored := range r.users {
		if stored.Role != user.RoleFreelancer {
			continue
		}
		if f.Search != "" {
			haystack := strings.ToLower(stored.Name + " " + stored.Bio)
			if !strings.Contains(haystack, strings.ToLower(f.Search)) {
				continue
			}
		}
		if len(f.Skills) > 0 {
			found := false
			for _, want := range f.Skills {
				for _, have := range stored.Skills {
					if strings.EqualFold(want, have) {
						found = true
					}
				}
			}
			if !found {
				continue
			}
		}
		matched = append(matched, *stored)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	total := len(matched)
	if f.Offset >= total {
		return []user.User{}, total, nil
	}
	end := f.Offset + f.Limit
	if end > total {
		end = total
	}
	return matched[f.Offset:end], total, nil
}

func (r *fakeUserRepo) TopSkills(ctx context.Context, limit int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[string]int)
	for _, stored := range r.users {
		for _, skill := range stored.Skills {
			counts[skill]++
		}
	}
	skills := make([]string, 0, len(counts))
	for skill := range counts {
		skills = append(skills, skill)
	}
	sort.Slice(skills, func(i, j int) bool {
		if counts[skills[i]] != counts[skills[j]] {
			return counts[skills[i]] > counts[skills[j]]
		}
		return skills[i] < skills[j]
	})
	if len(skills) > limit {
		skills = skills[:limit]
	}
	return skills, nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, u user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	stored := u
	r.users[u.ID] = &stored
	copy := stored
	return &copy, nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments []comment.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{}
}

func (r *fakeCommentRepo) Create(ctx context.Context, c comment.Comment) (*comment.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = common.NewUUID()
	c.CreatedAt = time.Now().UTC()
	r.comments = append(r.comments, c)
	return &c, nil
}

func (r *fakeCommentRepo) ListByJob(ctx context.Context, jobID common.UUID) ([]comment.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []comment.Comment
	for _, c := range r.comments {
		if c.JobID == jobID {
			items = append(items, c)
		}
	}
	return items, nil
}

type fakeBookmarkRepo struct {
	mu    sync.Mutex
	marks map[common.UUID]map[common.UUID]bool
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{marks: make(map[common.UUID]map[common.UUID]bool)}
}

func (r *fakeBookmarkRepo) Toggle(ctx context.Context, userID, jobID common.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.marks[userID] == nil {
		r.marks[userID] = make(map[common.UUID]bool)
	}
	if r.marks[userID][jobID] {
		delete(r.marks[userID], jobID)
		return false, nil
	}
	r.marks[userID][jobID] = true
	return true, nil
}

func (r *fakeBookmarkRepo) ListJobIDs(ctx context.Context, userID common.UUID) ([]common.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []common.UUID
	for id := range r.marks[userID] {
		ids = append(ids, id)
	}
	return ids, nil
}

var _ job.Repository = (*fakeJobRepo)(nil)
var _ application.Repository = (*fakeApplicationRepo)(nil)
var _ user.Repository = (*fakeUserRepo)(nil)
var _ comment.Repository = (*fakeCommentRepo)(nil)
var _ bookmark.Repository = (*fakeBookmarkRepo)(nil)
