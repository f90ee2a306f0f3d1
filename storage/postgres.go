package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresStore keeps entries in the client_storage table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates the table when it does not exist yet.
func NewPostgresStore(ctx context.Context, db *sql.DB) (*PostgresStore, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS client_storage (
			client_id VARCHAR(64) NOT NULL,
			key VARCHAR(64) NOT NULL,
			value TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (client_id, key)
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("table creation error: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, namespace, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM client_storage WHERE client_id = $1 AND key = $2",
		namespace, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, namespace, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO client_storage (client_id, key, value, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (client_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP
	`, namespace, key, value)
	return err
}

func (s *PostgresStore) Remove(ctx context.Context, namespace, key string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM client_storage WHERE client_id = $1 AND key = $2",
		namespace, key,
	)
	return err
}
