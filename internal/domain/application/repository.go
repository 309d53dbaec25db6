package application

import (
	"context"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
)

type Repository interface {
	// Create inserts a new application. A second application for the same
	// (job, applicant) pair reports a conflict from the storage uniqueness
	// constraint, not from a preceding read.
	Create(ctx context.Context, a Application) (*Application, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*Application, error)
	ListByJob(ctx context.Context, jobID common.UUID) ([]Application, error)
	ListByApplicant(ctx context.Context, applicantID common.UUID) ([]Application, error)
	// UpdateStatus moves one application from one status to another; a
	// mismatch on the current status reports not found.
	UpdateStatus(ctx context.Context, jobID, applicantID common.UUID, from, to Status) (*Application, error)
	// Accept hires the applicant: marks the pending application accepted and
	// advances the job from open to in_progress in a single transaction.
	Accept(ctx context.Context, jobID, applicantID common.UUID) (*Application, error)
}
