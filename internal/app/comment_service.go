package app

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/comment"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/job"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/user"
)

const maxCommentLength = 2000

type CommentService struct {
	repo   comment.Repository
	jobs   job.Repository
	users  user.Repository
	logger *zap.Logger
}

func NewCommentService(repo comment.Repository, jobs job.Repository, users user.Repository, logger *zap.Logger) *CommentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommentService{repo: repo, jobs: jobs, users: users, logger: logger}
}

// Add appends a comment and returns the job's full comment list with author
// fields resolved for display.
func (s *CommentService) Add(ctx context.Context, jobID, authorID common.UUID, text string) ([]comment.Comment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, common.NewValidationError("invalid comment", map[string]string{"text": "text is required"})
	}
	if utf8.RuneCountInString(trimmed) > maxCommentLength {
		return nil, common.NewValidationError("invalid comment", map[string]string{"text": "text must not exceed 2000 characters"})
	}
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	if _, err := s.repo.Create(ctx, comment.Comment{JobID: jobID, AuthorID: authorID, Text: trimmed}); err != nil {
		return nil, err
	}
	s.logger.Info("comment added", zap.String("job_id", jobID.String()), zap.String("author_id", authorID.String()))
	return s.List(ctx, jobID)
}

func (s *CommentService) List(ctx context.Context, jobID common.UUID) ([]comment.Comment, error) {
	items, err := s.repo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}
	ids := make([]common.UUID, 0, len(items))
	seen := make(map[common.UUID]bool, len(items))
	for _, item := range items {
		if !seen[item.AuthorID] {
			seen[item.AuthorID] = true
			ids = append(ids, item.AuthorID)
		}
	}
	summaries, err := s.users.Summaries(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if summary, ok := summaries[items[i].AuthorID]; ok {
			author := summary
			items[i].Author = &author
		}
	}
	return items, nil
}
