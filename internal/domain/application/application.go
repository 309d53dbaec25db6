package application

import (
	"time"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/user"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

type Application struct {
	ID             common.UUID   `json:"id"`
	JobID          common.UUID   `json:"job_id"`
	ApplicantID    common.UUID   `json:"applicant_id"`
	Applicant      *user.Summary `json:"applicant,omitempty"`
	CoverLetter    string        `json:"cover_letter"`
	ProposedBudget float64       `json:"proposed_budget"`
	Status         Status        `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
