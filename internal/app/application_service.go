package app

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/application"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/job"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/user"
)

type ApplicationService struct {
	repo   application.Repository
	jobs   job.Repository
	users  user.Repository
	logger *zap.Logger
}

func NewApplicationService(repo application.Repository, jobs job.Repository, users user.Repository, logger *zap.Logger) *ApplicationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicationService{repo: repo, jobs: jobs, users: users, logger: logger}
}

func (s *ApplicationService) Apply(ctx context.Context, jobID, applicantID common.UUID, coverLetter string, proposedBudget float64) (*application.Application, error) {
	fields := map[string]string{}
	if strings.TrimSpace(coverLetter) == "" {
		fields["cover_letter"] = "cover letter is required"
	}
	if proposedBudget <= 0 {
		fields["proposed_budget"] = "proposed budget must be positive"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid application", fields)
	}
	target, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := authorizeApply(*target, applicantID); err != nil {
		return nil, err
	}
	// Duplicate submissions are caught by the storage uniqueness constraint,
	// so two racing applies cannot both land.
	created, err := s.repo.Create(ctx, application.Application{
		JobID:          jobID,
		ApplicantID:    applicantID,
		CoverLetter:    strings.TrimSpace(coverLetter),
		ProposedBudget: proposedBudget,
		Status:         application.StatusPending,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("application submitted", zap.String("job_id", jobID.String()), zap.String("applicant_id", applicantID.String()))
	return created, nil
}

// Hire accepts one pending application and moves the job to in_progress.
// Other pending applications are left untouched.
func (s *ApplicationService) Hire(ctx context.Context, callerID, jobID, freelancerID common.UUID) (*job.Job, error) {
	target, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := authorizeApplicationDecision(*target, callerID); err != nil {
		return nil, err
	}
	if target.Status != job.StatusOpen {
		return nil, common.NewError(common.CodeConflict, "job is no longer open", nil)
	}
	if _, err := s.repo.Accept(ctx, jobID, freelancerID); err != nil {
		return nil, err
	}
	s.logger.Info("freelancer hired", zap.String("job_id", jobID.String()), zap.String("freelancer_id", freelancerID.String()))
	return s.jobs.GetByID(ctx, jobID)
}

// SetStatus is the job owner's decision on one application. Accepting
// delegates to the hire path so the job state machine is never bypassed.
func (s *ApplicationService) SetStatus(ctx context.Context, callerID, jobID, applicantID common.UUID, status application.Status) (*application.Application, error) {
	target, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := authorizeApplicationDecision(*target, callerID); err != nil {
		return nil, err
	}
	normalized := application.Status(strings.ToLower(strings.TrimSpace(string(status))))
	switch normalized {
	case application.StatusAccepted:
		if _, err := s.Hire(ctx, callerID, jobID, applicantID); err != nil {
			return nil, err
		}
		return s.repo.GetByJobAndApplicant(ctx, jobID, applicantID)
	case application.StatusRejected:
		updated, err := s.repo.UpdateStatus(ctx, jobID, applicantID, application.StatusPending, application.StatusRejected)
		if err != nil {
			return nil, err
		}
		s.logger.Info("application rejected", zap.String("job_id", jobID.String()), zap.String("applicant_id", applicantID.String()))
		return updated, nil
	default:
		return nil, common.NewValidationError("invalid application status", map[string]string{"status": "status must be accepted or rejected"})
	}
}

// ListByJob returns a job's applications, owner only.
func (s *ApplicationService) ListByJob(ctx context.Context, callerID, jobID common.UUID) ([]application.Application, error) {
	target, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := authorizeApplicationDecision(*target, callerID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return s.withApplicants(ctx, items)
}

func (s *ApplicationService) ListByApplicant(ctx context.Context, applicantID common.UUID) ([]application.Application, error) {
	return s.repo.ListByApplicant(ctx, applicantID)
}

func (s *ApplicationService) withApplicants(ctx context.Context, items []application.Application) ([]application.Application, error) {
	if len(items) == 0 {
		return items, nil
	}
	ids := make([]common.UUID, 0, len(items))
	seen := make(map[common.UUID]bool, len(items))
	for _, item := range items {
		if !seen[item.ApplicantID] {
			seen[item.ApplicantID] = true
			ids = append(ids, item.ApplicantID)
		}
	}
	summaries, err := s.users.Summaries(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if summary, ok := summaries[items[i].ApplicantID]; ok {
			applicant := summary
			items[i].Applicant = &applicant
		}
	}
	return items, nil
}
