package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/job"
)

const jobColumns = `id, owner_id, title, description, skills, budget, duration, category, location, remote, experience, tags, status, hired_freelancer_id, created_at, updated_at`

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	j.ID = common.NewUUID()
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO jobs (id, owner_id, title, description, skills, budget, duration, category, location, remote, experience, tags, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		j.ID, j.OwnerID, j.Title, j.Description, pq.Array(j.Skills), j.Budget, j.Duration, j.Category, j.Location, j.Remote, nullString(string(j.Experience)), pq.Array(j.Tags), j.Status, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &j, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	j.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET title = $1, description = $2, skills = $3, budget = $4, duration = $5, category = $6, location = $7, remote = $8, experience = $9, tags = $10, updated_at = $11
		WHERE id = $12 AND owner_id = $13`,
		j.Title, j.Description, pq.Array(j.Skills), j.Budget, j.Duration, j.Category, j.Location, j.Remote, nullString(string(j.Experience)), pq.Array(j.Tags), j.UpdatedAt, j.ID, j.OwnerID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return &j, nil
}

func (r *JobRepository) UpdateStatus(ctx context.Context, id common.UUID, from, to job.Status) (*job.Job, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		to, time.Now().UTC(), id, from)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job status", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeConflict, "job status changed concurrently", nil)
	}
	return r.GetByID(ctx, id)
}

func (r *JobRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return nil
}

func (r *JobRepository) List(ctx context.Context, f job.Filter) ([]job.Job, int, error) {
	conds := []string{"status = $1"}
	args := []any{f.Status}
	next := func() string {
		return fmt.Sprintf("$%d", len(args)+1)
	}
	if f.Search != "" {
		conds = append(conds, "search_vector @@ plainto_tsquery('english', "+next()+")")
		args = append(args, f.Search)
	}
	if len(f.Skills) > 0 {
		conds = append(conds, "skills && "+next())
		args = append(args, pq.Array(f.Skills))
	}
	if f.MinBudget != nil {
		conds = append(conds, "budget >= "+next())
		args = append(args, *f.MinBudget)
	}
	if f.MaxBudget != nil {
		conds = append(conds, "budget <= "+next())
		args = append(args, *f.MaxBudget)
	}
	if f.Category != "" {
		conds = append(conds, "category = "+next())
		args = append(args, f.Category)
	}
	if f.Experience != "" {
		conds = append(conds, "experience = "+next())
		args = append(args, string(f.Experience))
	}
	if f.Remote != nil {
		conds = append(conds, "remote = "+next())
		args = append(args, *f.Remote)
	}
	where := strings.Join(conds, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to count jobs", err)
	}

	order := "created_at DESC"
	switch f.Sort {
	case job.SortOldest:
		order = "created_at ASC"
	case job.SortBudgetHigh:
		order = "budget DESC, created_at DESC"
	case job.SortBudgetLow:
		order = "budget ASC, created_at DESC"
	}
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE ` + where + ` ORDER BY ` + order + ` LIMIT ` + next()
	args = append(args, f.Limit)
	query += ` OFFSET ` + next()
	args = append(args, f.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()
	items, err := scanJobs(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *JobRepository) ListByOwner(ctx context.Context, ownerID common.UUID) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list owner jobs", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *JobRepository) ListByIDs(ctx context.Context, ids []common.UUID) ([]job.Job, error) {
	if len(ids) == 0 {
		return []job.Job{}, nil
	}
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ANY($1) ORDER BY created_at DESC`, pq.Array(values))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs by id", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*job.Job, error) {
	var j job.Job
	var experience sql.NullString
	var hired sql.NullString
	if err := row.Scan(&j.ID, &j.OwnerID, &j.Title, &j.Description, pq.Array(&j.Skills), &j.Budget, &j.Duration, &j.Category, &j.Location, &j.Remote, &experience, pq.Array(&j.Tags), &j.Status, &hired, &j.CreatedAt, &j.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
	}
	if experience.Valid {
		j.Experience = job.Experience(experience.String)
	}
	if hired.Valid {
		id := common.UUID(hired.String)
		j.HiredFreelancerID = &id
	}
	return &j, nil
}

func scanJobs(rows *sql.Rows) ([]job.Job, error) {
	var items []job.Job
	for rows.Next() {
		item, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to iterate jobs", err)
	}
	return items, nil
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
