package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/yunqiwei/licheng/internal/db"
	"github.com/yunqiwei/licheng/internal/domain"
)

// SQLiteChatRepo implements ChatRepo using a SQLite database.
type SQLiteChatRepo struct {
	db db.DBTX
}

// NewSQLiteChatRepo creates a new SQLiteChatRepo.
func NewSQLiteChatRepo(conn db.DBTX) *SQLiteChatRepo {
	return &SQLiteChatRepo{db: conn}
}

func (r *SQLiteChatRepo) Append(ctx context.Context, msg *domain.ChatMessage) error {
	query := `INSERT INTO chat_messages (id, user_id, mode, role, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.UserID, string(msg.Mode), string(msg.Role), msg.Content,
		msg.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}
	return nil
}

func (r *SQLiteChatRepo) ListByMode(ctx context.Context, userID string, mode domain.Mode) ([]*domain.ChatMessage, error) {
	// rowid preserves insertion order even when timestamps collide.
	query := `SELECT id, user_id, mode, role, content, created_at
		FROM chat_messages WHERE user_id = ? AND mode = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, userID, string(mode))
	if err != nil {
		return nil, fmt.Errorf("listing chat messages: %w", err)
	}
	defer rows.Close()

	var msgs []*domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		var modeStr, roleStr, createdAtStr string
		if err := rows.Scan(&m.ID, &m.UserID, &modeStr, &roleStr, &m.Content, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}
		m.Mode = domain.Mode(modeStr)
		m.Role = domain.ChatRole(roleStr)
		m.CreatedAt = parseTime(createdAtStr)
		msgs = append(msgs, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chat messages: %w", err)
	}
	return msgs, nil
}
