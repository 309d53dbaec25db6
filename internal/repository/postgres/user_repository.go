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
	"github.com/muteeurrehman28/Freelancers-Network/internal/domain/user"
)

const userColumns = `id, username, email, name, role, bio, skills, location, hourly_rate, created_at, updated_at`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	var u user.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Name, &u.Role, &u.Bio, pq.Array(&u.Skills), &u.Location, &u.HourlyRate, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "user not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load user", err)
	}
	return &u, nil
}

func (r *UserRepository) Summaries(ctx context.Context, ids []common.UUID) (map[common.UUID]user.Summary, error) {
	summaries := make(map[common.UUID]user.Summary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id, username, name, email FROM users WHERE id = ANY($1)`, pq.Array(values))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to load user summaries", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s user.Summary
		if err := rows.Scan(&s.ID, &s.Username, &s.Name, &s.Email); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan user summary", err)
		}
		summaries[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to iterate user summaries", err)
	}
	return summaries, nil
}

func (r *UserRepository) ListFreelancers(ctx context.Context, f user.Filter) ([]user.User, int, error) {
	conds := []string{"role = $1"}
	args := []any{user.RoleFreelancer}
	next := func() string {
		return fmt.Sprintf("$%d", len(args)+1)
	}
	if f.Search != "" {
		placeholder := next()
		conds = append(conds, "(name ILIKE "+placeholder+" OR bio ILIKE "+placeholder+")")
		args = append(args, "%"+f.Search+"%")
	}
	if len(f.Skills) > 0 {
		conds = append(conds, "skills && "+next())
		args = append(args, pq.Array(f.Skills))
	}
	where := strings.Join(conds, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to count freelancers", err)
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where + ` ORDER BY created_at DESC LIMIT ` + next()
	args = append(args, f.Limit)
	query += ` OFFSET ` + next()
	args = append(args, f.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to list freelancers", err)
	}
	defer rows.Close()
	items := []user.User{}
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Name, &u.Role, &u.Bio, pq.Array(&u.Skills), &u.Location, &u.HourlyRate, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, common.NewError(common.CodeInternal, "failed to scan freelancer", err)
		}
		items = append(items, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to iterate freelancers", err)
	}
	return items, total, nil
}

func (r *UserRepository) TopSkills(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT skill FROM (
		SELECT unnest(skills) AS skill, COUNT(*) AS uses FROM users GROUP BY skill
	) s ORDER BY uses DESC, skill ASC LIMIT $1`, limit)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list skills", err)
	}
	defer rows.Close()
	skills := []string{}
	for rows.Next() {
		var skill string
		if err := rows.Scan(&skill); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan skill", err)
		}
		skills = append(skills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to iterate skills", err)
	}
	return skills, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, u user.User) (*user.User, error) {
	u.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE users SET name = $1, bio = $2, skills = $3, location = $4, hourly_rate = $5, updated_at = $6 WHERE id = $7`,
		u.Name, u.Bio, pq.Array(u.Skills), u.Location, u.HourlyRate, u.UpdatedAt, u.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update profile", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "user not found", sql.ErrNoRows)
	}
	return &u, nil
}
