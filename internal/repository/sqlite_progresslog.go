package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/yunqiwei/licheng/internal/db"
	"github.com/yunqiwei/licheng/internal/domain"
)

// SQLiteProgressLogRepo implements ProgressLogRepo using a SQLite database.
//
// Logs reference targets by name, not by id. Deleting a target leaves its
// logs in place.
type SQLiteProgressLogRepo struct {
	db db.DBTX
}

// NewSQLiteProgressLogRepo creates a new SQLiteProgressLogRepo.
func NewSQLiteProgressLogRepo(conn db.DBTX) *SQLiteProgressLogRepo {
	return &SQLiteProgressLogRepo{db: conn}
}

func (r *SQLiteProgressLogRepo) Append(ctx context.Context, log *domain.ProgressLog) error {
	query := `INSERT INTO progress_logs (id, user_id, target_name, body, logged_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		log.ID, log.UserID, log.TargetName, log.Body, log.LoggedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting progress log: %w", err)
	}
	return nil
}

func (r *SQLiteProgressLogRepo) List(ctx context.Context, userID string) ([]*domain.ProgressLog, error) {
	query := `SELECT id, user_id, target_name, body, logged_at
		FROM progress_logs WHERE user_id = ? ORDER BY logged_at DESC, rowid DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing progress logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.ProgressLog
	for rows.Next() {
		var l domain.ProgressLog
		var loggedAtStr string
		if err := rows.Scan(&l.ID, &l.UserID, &l.TargetName, &l.Body, &loggedAtStr); err != nil {
			return nil, fmt.Errorf("scanning progress log: %w", err)
		}
		l.LoggedAt = parseTime(loggedAtStr)
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating progress logs: %w", err)
	}
	return logs, nil
}
