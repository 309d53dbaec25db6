package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/comment"
)

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c comment.Comment) (*comment.Comment, error) {
	c.ID = common.NewUUID()
	c.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO comments (id, job_id, author_id, body, created_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.JobID, c.AuthorID, c.Text, c.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create comment", err)
	}
	return &c, nil
}

func (r *CommentRepository) ListByJob(ctx context.Context, jobID common.UUID) ([]comment.Comment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, job_id, author_id, body, created_at FROM comments WHERE job_id = $1 ORDER BY created_at ASC`, jobID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list comments", err)
	}
	defer rows.Close()
	var items []comment.Comment
	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(&c.ID, &c.JobID, &c.AuthorID, &c.Text, &c.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan comment", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to iterate comments", err)
	}
	return items, nil
}
