package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesAllTables(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	for _, table := range []string{"user_profile", "career_targets", "progress_logs", "chat_messages"} {
		var name string
		err := conn.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	// OpenDB already migrated; a second run must not fail.
	require.NoError(t, Migrate(conn))
}

func TestMigrate_TargetStatusConstraint(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(
		`INSERT INTO career_targets (id, user_id, name, status, created_at, updated_at)
		 VALUES ('t1', 'main_user', '产品经理', 'bogus', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`,
	)
	assert.Error(t, err)
}

func TestMigrate_TargetNameUniquePerUser(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	insert := func(id, user string) error {
		_, err := conn.Exec(
			`INSERT INTO career_targets (id, user_id, name, created_at, updated_at)
			 VALUES (?, ?, '产品经理', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`,
			id, user,
		)
		return err
	}

	require.NoError(t, insert("t1", "main_user"))
	assert.Error(t, insert("t2", "main_user"), "same name for the same user must conflict")
	assert.NoError(t, insert("t3", "other_user"), "same name for a different user is fine")
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	uow := NewSQLiteUnitOfWork(conn)
	sentinel := assert.AnError

	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		_, execErr := tx.ExecContext(ctx,
			`INSERT INTO progress_logs (id, user_id, target_name, body, logged_at)
			 VALUES ('l1', 'main_user', '产品经理', '完成了一次行业访谈', '2026-01-01T00:00:00Z')`,
		)
		require.NoError(t, execErr)
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	var count int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM progress_logs").Scan(&count))
	assert.Equal(t, 0, count, "rolled-back insert must not persist")
}

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	uow := NewSQLiteUnitOfWork(conn)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		_, execErr := tx.ExecContext(ctx,
			`INSERT INTO progress_logs (id, user_id, target_name, body, logged_at)
			 VALUES ('l1', 'main_user', '产品经理', '完成了一次行业访谈', '2026-01-01T00:00:00Z')`,
		)
		return execErr
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM progress_logs").Scan(&count))
	assert.Equal(t, 1, count)
}
