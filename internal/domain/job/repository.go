package job

import (
	"context"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
)

type Sort string

const (
	SortNewest     Sort = "newest"
	SortOldest     Sort = "oldest"
	SortBudgetHigh Sort = "budget_high"
	SortBudgetLow  Sort = "budget_low"
)

// Filter describes one listing query. All set fields combine with AND.
type Filter struct {
	Search     string
	Skills     []string
	MinBudget  *float64
	MaxBudget  *float64
	Status     Status
	Category   string
	Experience Experience
	Remote     *bool
	Sort       Sort
	Limit      int
	Offset     int
}

type Repository interface {
	Create(ctx context.Context, j Job) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	Update(ctx context.Context, j Job) (*Job, error)
	// UpdateStatus advances the status only when the stored status still
	// equals from; a stale transition reports a conflict.
	UpdateStatus(ctx context.Context, id common.UUID, from, to Status) (*Job, error)
	Delete(ctx context.Context, id common.UUID) error
	List(ctx context.Context, f Filter) ([]Job, int, error)
	ListByOwner(ctx context.Context, ownerID common.UUID) ([]Job, error)
	ListByIDs(ctx context.Context, ids []common.UUID) ([]Job, error)
}
