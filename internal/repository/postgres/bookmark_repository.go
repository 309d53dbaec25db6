package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
)

type BookmarkRepository struct {
	db *sql.DB
}

func NewBookmarkRepository(db *sql.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// Toggle removes the bookmark when it exists, inserts it otherwise. The
// delete-first order makes a concurrent double toggle settle on one of the
// two states instead of erroring.
func (r *BookmarkRepository) Toggle(ctx context.Context, userID, jobID common.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if err != nil {
		return false, common.NewError(common.CodeInternal, "failed to toggle bookmark", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows > 0 {
		return false, nil
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO bookmarks (user_id, job_id, created_at) VALUES ($1, $2, $3) ON CONFLICT (user_id, job_id) DO NOTHING`,
		userID, jobID, time.Now().UTC())
	if err != nil {
		return false, common.NewError(common.CodeInternal, "failed to toggle bookmark", err)
	}
	return true, nil
}

func (r *BookmarkRepository) ListJobIDs(ctx context.Context, userID common.UUID) ([]common.UUID, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT job_id FROM bookmarks WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list bookmarks", err)
	}
	defer rows.Close()
	var ids []common.UUID
	for rows.Next() {
		var id common.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan bookmark", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to iterate bookmarks", err)
	}
	return ids, nil
}
