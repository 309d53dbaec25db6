package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/muteeurrehman28/Freelancers-Network/internal/common"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/application"
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/job"
)

const applicationColumns = `id, job_id, applicant_id, cover_letter, proposed_budget, status, created_at, updated_at`

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) (*application.Application, error) {
	a.ID = common.NewUUID()
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (id, job_id, applicant_id, cover_letter, proposed_budget, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.JobID, a.ApplicantID, a.CoverLetter, a.ProposedBudget, a.Status, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "already applied", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &a, nil
}

func (r *ApplicationRepository) GetByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 AND applicant_id = $2`, jobID, applicantID)
	return scanApplication(row)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID common.UUID) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 ORDER BY created_at ASC`, jobID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID common.UUID) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE applicant_id = $1 ORDER BY created_at DESC`, applicantID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applicant applications", err)
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, jobID, applicantID common.UUID, from, to application.Status) (*application.Application, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1, updated_at = $2 WHERE job_id = $3 AND applicant_id = $4 AND status = $5`,
		to, time.Now().UTC(), jobID, applicantID, from)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "pending application not found", sql.ErrNoRows)
	}
	return r.GetByJobAndApplicant(ctx, jobID, applicantID)
}

// Accept marks one pending application accepted and advances the parent job
// from open to in_progress in a single transaction, so two racing hires
// cannot both succeed.
func (r *ApplicationRepository) Accept(ctx context.Context, jobID, applicantID common.UUID) (*application.Application, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `UPDATE applications SET status = $1, updated_at = $2 WHERE job_id = $3 AND applicant_id = $4 AND status = $5`,
		application.StatusAccepted, time.Now().UTC(), jobID, applicantID, application.StatusPending)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to accept application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "pending application not found", sql.ErrNoRows)
	}

	result, err = tx.ExecContext(ctx, `UPDATE jobs SET status = $1, hired_freelancer_id = $2, updated_at = $3 WHERE id = $4 AND status = $5`,
		job.StatusInProgress, applicantID, time.Now().UTC(), jobID, job.StatusOpen)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to advance job", err)
	}
	rows, err = result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeConflict, "job is no longer open", nil)
	}

	if err := tx.Commit(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to commit hire", err)
	}
	return r.GetByJobAndApplicant(ctx, jobID, applicantID)
}

func scanApplication(row rowScanner) (*application.Application, error) {
	var a application.Application
	if err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.CoverLetter, &a.ProposedBudget, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
	}
	return &a, nil
}

func scanApplications(rows *sql.Rows) ([]application.Application, error) {
	var items []application.Application
	for rows.Next() {
		item, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to iterate applications", err)
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
