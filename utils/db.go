package utils

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

func SetupDatabase(ctx context.Context, url string) (*sql.DB, error) {
	if url == "" {
		return nil, fmt.Errorf("database.url is required for the postgres storage driver")
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("DB connection error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	NewLogger("db").Info("database connection established")
	return db, nil
}
