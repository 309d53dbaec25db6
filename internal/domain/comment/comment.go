package comment

import (
	"context"
	"time"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/user"
)

// Comment is an append-only remark on a job. There is no edit or delete.
type Comment struct {
	ID        common.UUID   `json:"id"`
	JobID     common.UUID   `json:"job_id"`
	AuthorID  common.UUID   `json:"author_id"`
	Author    *user.Summary `json:"author,omitempty"`
	Text      string        `json:"text"`
	CreatedAt time.Time     `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, c Comment) (*Comment, error)
	ListByJob(ctx context.Context, jobID common.UUID) ([]Comment, error)
}
