package user

import (
	"context"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
)

// Filter describes one freelancer directory query. Set fields combine
// with AND; Skills matches any overlap.
type Filter struct {
	Search string
	Skills []string
	Limit  int
	Offset int
}

type Repository interface {
	GetByID(ctx context.Context, id common.UUID) (*User, error)
	Summaries(ctx context.Context, ids []common.UUID) (map[common.UUID]Summary, error)
	UpdateProfile(ctx context.Context, u User) (*User, error)
	// ListFreelancers returns freelancer profiles newest first, plus the
	// total match count for pagination.
	ListFreelancers(ctx context.Context, f Filter) ([]User, int, error)
	// TopSkills returns the most common skills across all profiles, most
	// frequent first.
	TopSkills(ctx context.Context, limit int) ([]string, error)
}
