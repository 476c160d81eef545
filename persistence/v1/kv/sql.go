package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQL stores keys as rows of the notebook_kv table, see persistence/v1/schema
type SQL struct {
	db      *sql.DB
	timeout time.Duration
}

func NewSQL(db *sql.DB, timeout time.Duration) *SQL {
	return &SQL{db: db, timeout: timeout}
}

func (s *SQL) Get(ctx context.Context, key string) (string, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	var value string
	err := s.db.QueryRowContext(dbCtx, "SELECT v FROM notebook_kv WHERE k = ?", key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrNotFound
	case err != nil:
		return "", fmt.Errorf("failed to query get stmt: %w", err)
	default:
		return value, nil
	}
}

// Set replaces the row in a single transaction, readers never see the key missing
func (s *SQL) Set(ctx context.Context, key, value string) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	tx, err := s.db.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin set tx: %w", err)
	}
	if _, err := tx.ExecContext(dbCtx, "DELETE FROM notebook_kv WHERE k = ?", key); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	if _, err := tx.ExecContext(dbCtx, "INSERT INTO notebook_kv (k, v) VALUES (?, ?)", key, value); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit set tx: %w", err)
	}
	return nil
}

func (s *SQL) Delete(ctx context.Context, key string) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	if _, err := s.db.ExecContext(dbCtx, "DELETE FROM notebook_kv WHERE k = ?", key); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	return nil
}
