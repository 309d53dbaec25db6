package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/bookmark"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/job"
)

type BookmarkService struct {
	repo   bookmark.Repository
	jobs   job.Repository
	logger *zap.Logger
}

func NewBookmarkService(repo bookmark.Repository, jobs job.Repository, logger *zap.Logger) *BookmarkService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookmarkService{repo: repo, jobs: jobs, logger: logger}
}

// Toggle flips the bookmark state for (user, job) and returns the new state.
func (s *BookmarkService) Toggle(ctx context.Context, userID, jobID common.UUID) (bool, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return false, err
	}
	bookmarked, err := s.repo.Toggle(ctx, userID, jobID)
	if err != nil {
		return false, err
	}
	s.logger.Info("bookmark toggled", zap.String("job_id", jobID.String()), zap.String("user_id", userID.String()), zap.Bool("bookmarked", bookmarked))
	return bookmarked, nil
}

func (s *BookmarkService) ListJobs(ctx context.Context, userID common.UUID) ([]job.Job, error) {
	ids, err := s.repo.ListJobIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []job.Job{}, nil
	}
	return s.jobs.ListByIDs(ctx, ids)
}
