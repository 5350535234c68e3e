package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/yunqiwei/licheng/internal/db"
	"github.com/yunqiwei/licheng/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `SELECT user_id, traits, platform, mentors, serendipity, updated_at
		FROM user_profile WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var p domain.UserProfile
	var traitsJSON, updatedAtStr string
	err := row.Scan(&p.UserID, &traitsJSON, &p.Platform, &p.Mentors, &p.Serendipity, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}

	if err := json.Unmarshal([]byte(traitsJSON), &p.Traits); err != nil {
		return nil, fmt.Errorf("decoding profile traits: %w", err)
	}
	p.UpdatedAt = parseTime(updatedAtStr)
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	traits := p.Traits
	if traits == nil {
		traits = []string{}
	}
	traitsJSON, err := json.Marshal(traits)
	if err != nil {
		return fmt.Errorf("encoding profile traits: %w", err)
	}

	query := `INSERT OR REPLACE INTO user_profile (user_id, traits, platform, mentors, serendipity, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.UserID, string(traitsJSON), p.Platform, p.Mentors, p.Serendipity, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
