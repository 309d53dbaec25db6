package job

import (
	"time"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/user"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type Experience string

const (
	ExperienceEntry        Experience = "entry"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceExpert       Experience = "expert"
)

type Job struct {
	ID                common.UUID   `json:"id"`
	OwnerID           common.UUID   `json:"owner_id"`
	Owner             *user.Summary `json:"owner,omitempty"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Skills            []string      `json:"skills"`
	Budget            float64       `json:"budget"`
	Duration          string        `json:"duration,omitempty"`
	Category          string        `json:"category,omitempty"`
	Location          string        `json:"location,omitempty"`
	Remote            bool          `json:"remote"`
	Experience        Experience    `json:"experience,omitempty"`
	Tags              []string      `json:"tags,omitempty"`
	Status            Status        `json:"status"`
	HiredFreelancerID *common.UUID  `json:"hired_freelancer_id,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// Terminal reports whether no transition leaves the given status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
