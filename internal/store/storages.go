package store

import (
	"context"

	"github.com/MKhiriev/where-is-it/internal/config"
	"github.com/MKhiriev/where-is-it/internal/logger"
)

// Storages bundles every repository backed by the shared database handle.
type Storages struct {
	PostRepository      PostRepository
	RecoveredRepository RecoveredRepository

	db *DB
}

// NewStorages opens the database connection, applies migrations, and wires
// all repositories on top of the shared handle.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		PostRepository:      NewPostRepository(db, log),
		RecoveredRepository: NewRecoveredRepository(db, log),
		db:                  db,
	}, nil
}

// Close releases the shared database handle. Call on shutdown.
func (s *Storages) Close() error {
	return s.db.Close()
}
