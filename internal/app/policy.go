package app

import (
	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/job"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/user"
)

// Authorization decisions live here, one function per operation, so they can
// be exercised without any HTTP plumbing.

func authorizeJobEdit(j job.Job, callerID common.UUID) error {
	if j.OwnerID != callerID {
		return common.NewError(common.CodeForbidden, "job belongs to another user", nil)
	}
	return nil
}

func authorizeJobDelete(j job.Job, callerID common.UUID, role user.Role) error {
	if j.OwnerID == callerID || role == user.RoleAdmin {
		return nil
	}
	return common.NewError(common.CodeForbidden, "job belongs to another user", nil)
}

func authorizeApply(j job.Job, callerID common.UUID) error {
	if j.OwnerID == callerID {
		return common.NewError(common.CodeForbidden, "cannot apply to own job", nil)
	}
	if j.Status != job.StatusOpen {
		return common.NewError(common.CodeConflict, "job is no longer accepting applications", nil)
	}
	return nil
}

func authorizeApplicationDecision(j job.Job, callerID common.UUID) error {
	if j.OwnerID != callerID {
		return common.NewError(common.CodeForbidden, "job belongs to another user", nil)
	}
	return nil
}
