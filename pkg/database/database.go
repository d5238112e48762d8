package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func NewPool(ctx context.Context, dsn string, logger *zap.Logger) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info("database connected", zap.String("host", config.ConnConfig.Host), zap.String("database", config.ConnConfig.Database))
	return pool, nil
}

// Execer is the subset of a pool used to apply the schema.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Schema holds every document of the store. path is collection/id/collection/id...;
// parent is the path of the enclosing document, empty at the root.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		path TEXT PRIMARY KEY,
		collection TEXT NOT NULL,
		parent TEXT NOT NULL DEFAULT '',
		doc_id TEXT NOT NULL,
		data JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents (collection)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_parent ON documents (parent)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_collection_tin ON documents (collection, (data->>'tin'))`,
}

// EnsureSchema creates the documents table and its indexes when missing.
func EnsureSchema(ctx context.Context, db Execer) error {
	for _, stmt := range Schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
