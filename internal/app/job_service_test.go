package app

import (
	"context"
	"testing"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/job"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/user"
)

func newJobFixture() (*JobService, *fakeJobRepo, *fakeUserRepo) {
	jobs := newFakeJobRepo()
	users := newFakeUserRepo()
	return NewJobService(jobs, users, nil), jobs, users
}

func mustCreateJob(t *testing.T, service *JobService, ownerID common.UUID, title string, budget float64) *job.Job {
	t.Helper()
	created, err := service.Create(context.Background(), job.Job{
		OwnerID:     ownerID,
		Title:       title,
		Description: "description of " + title,
		Skills:      []string{"go", "sql"},
		Budget:      budget,
	})
	if err != nil {
		t.Fatalf("expected job created, got %v", err)
	}
	return created
}

func TestJobServiceCreate_StartsOpen(t *testing.T) {
	service, _, users := newJobFixture()
	ownerID := users.add("alice", user.RoleClient)

	created, err := service.Create(context.Background(), job.Job{
		OwnerID:     ownerID,
		Title:       "Build a website",
		Description: "A marketing site",
		Budget:      500,
		Experience:  "Expert",
		Status:      job.StatusCompleted,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.Status != job.StatusOpen {
		t.Fatalf("expected status open, got %q", created.Status)
	}
	if created.Experience != job.ExperienceExpert {
		t.Fatalf("expected normalized experience, got %q", created.Experience)
	}
	if created.HiredFreelancerID != nil {
		t.Fatal("expected no hired freelancer at creation")
	}
}

func TestJobServiceCreate_Validation(t *testing.T) {
	service, _, users := newJobFixture()
	ownerID := users.add("alice", user.RoleClient)

	_, err := service.Create(context.Background(), job.Job{OwnerID: ownerID, Title: "", Description: "x", Budget: -5})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestJobServiceUpdate_ForbiddenForNonOwner(t *testing.T) {
	service, _, users := newJobFixture()
	ownerID := users.add("alice", user.RoleClient)
	otherID := users.add("bob", user.RoleClient)
	created := mustCreateJob(t, service, ownerID, "Build a website", 500)

	title := "Hijacked"
	_, err := service.Update(context.Background(), otherID, created.ID, JobUpdate{Title: &title})
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestJobServiceUpdate_CannotTouchStatusOrOwner(t *testing.T) {
	service, repo, users := newJobFixture()
	ownerID := users.add("alice", user.RoleClient)
	created := mustCreateJob(t, service, ownerID, "Build a website", 500)

	budget := 750.0
	updated, err := service.Update(context.Background(), ownerID, created.ID, JobUpdate{Budget: &budget})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Budget != 750 {
		t.Fatalf("expected budget 750, got %v", updated.Budget)
	}
	stored, _ := repo.GetByID(context.Background(), created.ID)
	if stored.Status != job.StatusOpen {
		t.Fatalf("expected status untouched, got %q", stored.Status)
	}
	if stored.OwnerID != ownerID {
		t.Fatal("expected owner untouched")
	}
}

func TestJobServiceUpdateStatus_Transitions(t *testing.T) {
	service, repo, users := newJobFixture()
	ownerID := users.add("alice", user.RoleClient)

	cases := []struct {
		from    job.Status
		to      job.Status
		allowed bool
	}{
		{job.StatusOpen, job.StatusCancelled, true},
		{job.StatusOpen, job.StatusCompleted, false},
		{job.StatusOpen, job.StatusInProgress, false},
		{job.StatusInProgress, job.StatusCompleted, true},
		{job.StatusInProgress, job.StatusCancelled, false},
		{job.StatusCompleted, job.StatusOpen, false},
		{job.StatusCancelled, job.StatusOpen, false},
	}
	for _, tc := range cases {
		created := mustCreateJob(t, service, ownerID, "job", 100)
		if tc.from != job.StatusOpen {
			repo.mu.Lock()
			repo.jobs[created.ID].Status = tc.from
			repo.mu.Unlock()
		}
		_, err := service.UpdateStatus(context.Background(), ownerID, created.ID, tc.to)
		if tc.allowed && err != nil {
			t.Fatalf("%s -> %s: expected nil error, got %v", tc.from, tc.to, err)
		}
		if !tc.allowed && !common.Is(err, common.CodeValidation) {
			t.Fatalf("%s -> %s: expected validation error, got %v", tc.from, tc.to, err)
		}
	}
}

func TestJobServiceUpdateStatus_MapsClosedToCancelled(t *testing.T) {
	service, _, users := newJobFixture()
	ownerID := users.add("alice", user.RoleClient)
	created := mustCreateJob(t, service, ownerID, "job", 100)

	updated, err := service.UpdateStatus(context.Background(), ownerID, created.ID, job.Status("closed"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Status != job.StatusCancelled {
		t.Fatalf("expected cancelled, got %q", updated.Status)
	}
}

func TestJobServiceDelete_Authorization(t *testing.T) {
	service, repo, users := newJobFixture()
	ownerID := users.add("alice", user.RoleClient)
	strangerID := users.add("bob", user.RoleFreelancer)
	adminID := users.add("root", user.RoleAdmin)

	created := mustCreateJob(t, service, ownerID, "job", 100)
	err := service.Delete(context.Background(), strangerID, user.RoleFreelancer, created.ID)
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := repo.GetByID(context.Background(), created.ID); err != nil {
		t.Fatal("expected job to survive forbidden delete")
	}

	if err := service.Delete(context.Background(), adminID, user.RoleAdmin, created.ID); err != nil {
		t.Fatalf("expected admin delete to succeed, got %v", err)
	}
	if _, err := repo.GetByID(context.Background(), created.ID); !common.Is(err, common.CodeNotFound) {
		t.Fatal("expected job to be gone")
	}

	second := mustCreateJob(t, service, ownerID, "job2", 100)
	if err := service.Delete(context.Background(), ownerID, user.RoleClient, second.ID); err != nil {
		t.Fatalf("expected owner delete to succeed, got %v", err)
	}
}

func TestJobServiceList_DefaultsToOpen(t *testing.T) {
	service, repo, users := newJobFixture()
	ownerID := users.add("alice", user.RoleClient)

	open := mustCreateJob(t, service, ownerID, "open job", 100)
	closed := mustCreateJob(t, service, ownerID, "closed job", 100)
	repo.mu.Lock()
	repo.jobs[closed.ID].Status = job.StatusCancelled
	repo.mu.Unlock()

	page, err := service.List(context.Background(), ListQuery{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if page.Total != 1 || len(page.Jobs) != 1 || page.Jobs[0].ID != open.ID {
		t.Fatalf("expected only the open job, got %d jobs", len(page.Jobs))
	}

	page, err = service.List(context.Background(), ListQuery{Status: "cancelled"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if page.Total != 1 || page.Jobs[0].ID != closed.ID {
		t.Fatal("expected only the cancelled job")
	}
}

func TestJobServiceList_BudgetRangeInclusive(t *testing.T) {
	service, _, users := newJobFixture()
	ownerID := users.add("alice", user.RoleClient)

	mustCreateJob(t, service, ownerID, "low", 99)
	atMin := mustCreateJob(t, service, ownerID, "at min", 100)
	mid := mustCreateJob(t, service, ownerID, "mid", 250)
	atMax := mustCreateJob(t, service, ownerID, "at max", 500)
	mustCreateJob(t, service, ownerID, "high", 501)

	minBudget, maxBudget := 100.0, 500.0
	page, err := service.List(context.Background(), ListQuery{MinBudget: &minBudget, MaxBudget: &maxBudget})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if page.Total != 3 {
		t.Fatalf("expected 3 jobs in range, got %d", page.Total)
	}
	want := map[common.UUID]bool{atMin.ID: true, mid.ID: true, atMax.ID: true}
	for _, item := range page.Jobs {
		if !want[item.ID] {
			t.Fatalf("unexpected job %q in range", item.Title)
		}
	}
}

func TestJobServiceList_Pagination(t *testing.T) {
	service, _, users := newJobFixture()
	ownerID := users.add("alice", user.RoleClient)
	for i := 0; i < 25; i++ {
		mustCreateJob(t, service, ownerID, "job", 100)
	}

	page, err := service.List(context.Background(), ListQuery{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(page.Jobs) != 10 || page.Total != 25 || page.Pages != 3 {
		t.Fatalf("expected 10 jobs, 25 total, 3 pages; got %d/%d/%d", len(page.Jobs), page.Total, page.Pages)
	}

	page, err = service.List(context.Background(), ListQuery{Page: 3, PageSize: 10})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(page.Jobs) != 5 {
		t.Fatalf("expected 5 jobs on last page, got %d", len(page.Jobs))
	}
}

func TestJobServiceList_PageSizeCapped(t *testing.T) {
	service, _, users := newJobFixture()
	ownerID := users.add("alice", user.RoleClient)
	mustCreateJob(t, service, ownerID, "job", 100)

	page, err := service.List(context.Background(), ListQuery{PageSize: 100000})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if page.Pages != 1 {
		t.Fatalf("expected one page, got %d", page.Pages)
	}
}

func TestJobServiceList_ResolvesOwnerSummary(t *testing.T) {
	service, _, users := newJobFixture()
	ownerID := users.add("alice", user.RoleClient)
	mustCreateJob(t, service, ownerID, "job", 100)

	page, err := service.List(context.Background(), ListQuery{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	owner := page.Jobs[0].Owner
	if owner == nil || owner.Username != "alice" || owner.Email != "alice@example.com" {
		t.Fatalf("expected owner summary resolved, got %+v", owner)
	}
}

func TestJobServiceList_RejectsBadStatusAndSort(t *testing.T) {
	service, _, _ := newJobFixture()
	if _, err := service.List(context.Background(), ListQuery{Status: "archived"}); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := service.List(context.Background(), ListQuery{Sort: "alphabetical"}); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
