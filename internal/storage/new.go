package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/nguyentantai21042004/script-extractor/internal/logger"
)

type implStore struct {
	db     *sql.DB
	logger logger.Logger
}

// New connects to Postgres and ensures the schema exists. An empty
// databaseURL disables persistence and returns a nil Store.
func New(ctx context.Context, databaseURL string, log logger.Logger) (Store, error) {
	if databaseURL == "" {
		log.Info(ctx, "DATABASE_URL not set, transcript storage disabled")
		return nil, nil
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	log.Info(ctx, "Connected to database")
	return &implStore{db: db, logger: log}, nil
}

func (s *implStore) Close() error {
	return s.db.Close()
}
