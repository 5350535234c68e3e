package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/yunqiwei/licheng/internal/db"
	"github.com/yunqiwei/licheng/internal/domain"
)

// SQLiteTargetRepo implements TargetRepo using a SQLite database.
type SQLiteTargetRepo struct {
	db db.DBTX
}

// NewSQLiteTargetRepo creates a new SQLiteTargetRepo.
func NewSQLiteTargetRepo(conn db.DBTX) *SQLiteTargetRepo {
	return &SQLiteTargetRepo{db: conn}
}

const targetColumns = `id, user_id, name, status, research_report, research_chart_data,
	validation_plan, action_plan, created_at, updated_at`

func (r *SQLiteTargetRepo) UpsertByName(ctx context.Context, userID, name string) (*domain.CareerTarget, error) {
	existing, err := r.GetByName(ctx, userID, name)
	if err == nil {
		return existing, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	now := nowUTC()
	t := &domain.CareerTarget{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
		Status: domain.StatusResearching,
	}
	query := `INSERT INTO career_targets (id, user_id, name, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, t.ID, t.UserID, t.Name, string(t.Status), now, now)
	if err != nil {
		return nil, fmt.Errorf("inserting career target: %w", err)
	}
	t.CreatedAt = parseTime(now)
	t.UpdatedAt = parseTime(now)
	return t, nil
}

func (r *SQLiteTargetRepo) GetByName(ctx context.Context, userID, name string) (*domain.CareerTarget, error) {
	query := `SELECT ` + targetColumns + ` FROM career_targets WHERE user_id = ? AND name = ?`
	row := r.db.QueryRowContext(ctx, query, userID, name)
	return r.scanTarget(row)
}

func (r *SQLiteTargetRepo) List(ctx context.Context, userID string) ([]*domain.CareerTarget, error) {
	query := `SELECT ` + targetColumns + ` FROM career_targets WHERE user_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing career targets: %w", err)
	}
	defer rows.Close()

	var targets []*domain.CareerTarget
	for rows.Next() {
		t, err := r.scanTargetRows(rows)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating career targets: %w", err)
	}
	return targets, nil
}

func (r *SQLiteTargetRepo) RecordResearch(ctx context.Context, userID, name, report string, chart json.RawMessage) error {
	query := `UPDATE career_targets
		SET research_report = ?, research_chart_data = ?, status = ?, updated_at = ?
		WHERE user_id = ? AND name = ?`
	res, err := r.db.ExecContext(ctx, query,
		report, nullableJSON(chart), string(domain.StatusResearching), nowUTC(), userID, name)
	if err != nil {
		return fmt.Errorf("recording research: %w", err)
	}
	return requireRow(res, "career target")
}

func (r *SQLiteTargetRepo) SetStatus(ctx context.Context, userID, name string, status domain.TargetStatus) error {
	query := `UPDATE career_targets SET status = ?, updated_at = ? WHERE user_id = ? AND name = ?`
	res, err := r.db.ExecContext(ctx, query, string(status), nowUTC(), userID, name)
	if err != nil {
		return fmt.Errorf("updating target status: %w", err)
	}
	return requireRow(res, "career target")
}

func (r *SQLiteTargetRepo) SetValidationPlan(ctx context.Context, userID, name, plan string) error {
	query := `UPDATE career_targets SET validation_plan = ?, updated_at = ? WHERE user_id = ? AND name = ?`
	res, err := r.db.ExecContext(ctx, query, plan, nowUTC(), userID, name)
	if err != nil {
		return fmt.Errorf("updating validation plan: %w", err)
	}
	return requireRow(res, "career target")
}

func (r *SQLiteTargetRepo) SetActionPlan(ctx context.Context, userID, name string, plan json.RawMessage) error {
	query := `UPDATE career_targets SET action_plan = ?, updated_at = ? WHERE user_id = ? AND name = ?`
	res, err := r.db.ExecContext(ctx, query, nullableJSON(plan), nowUTC(), userID, name)
	if err != nil {
		return fmt.Errorf("updating action plan: %w", err)
	}
	return requireRow(res, "career target")
}

func (r *SQLiteTargetRepo) Delete(ctx context.Context, userID, name string) error {
	query := `DELETE FROM career_targets WHERE user_id = ? AND name = ?`
	res, err := r.db.ExecContext(ctx, query, userID, name)
	if err != nil {
		return fmt.Errorf("deleting career target: %w", err)
	}
	return requireRow(res, "career target")
}

func (r *SQLiteTargetRepo) scanTarget(row *sql.Row) (*domain.CareerTarget, error) {
	var t domain.CareerTarget
	var status, createdAtStr, updatedAtStr string
	var chart, plan sql.NullString

	err := row.Scan(
		&t.ID, &t.UserID, &t.Name, &status, &t.ResearchReport, &chart,
		&t.ValidationPlan, &plan, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("career target: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning career target: %w", err)
	}
	return r.populateTarget(&t, status, chart, plan, createdAtStr, updatedAtStr)
}

func (r *SQLiteTargetRepo) scanTargetRows(rows *sql.Rows) (*domain.CareerTarget, error) {
	var t domain.CareerTarget
	var status, createdAtStr, updatedAtStr string
	var chart, plan sql.NullString

	err := rows.Scan(
		&t.ID, &t.UserID, &t.Name, &status, &t.ResearchReport, &chart,
		&t.ValidationPlan, &plan, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning career target: %w", err)
	}
	return r.populateTarget(&t, status, chart, plan, createdAtStr, updatedAtStr)
}

func (r *SQLiteTargetRepo) populateTarget(t *domain.CareerTarget, status string, chart, plan sql.NullString, createdAt, updatedAt string) (*domain.CareerTarget, error) {
	t.Status = domain.TargetStatus(status)
	t.ActionPlan = scanJSON(plan)
	t.CreatedAt = parseTime(createdAt)
	t.UpdatedAt = parseTime(updatedAt)

	if raw := scanJSON(chart); raw != nil {
		var c domain.ResearchChart
		if err := json.Unmarshal(raw, &c); err == nil {
			t.ChartData = &c
		}
	}
	return t, nil
}
