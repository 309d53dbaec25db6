package bookmark

import (
	"context"
	"time"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
)

type Bookmark struct {
	UserID    common.UUID `json:"user_id"`
	JobID     common.UUID `json:"job_id"`
	CreatedAt time.Time   `json:"created_at"`
}

type Repository interface {
	// Toggle adds the bookmark when absent and removes it when present,
	// returning the resulting state.
	Toggle(ctx context.Context, userID, jobID common.UUID) (bool, error)
	ListJobIDs(ctx context.Context, userID common.UUID) ([]common.UUID, error)
}
