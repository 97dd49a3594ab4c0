package store

import (
	"context"
	"fmt"

	"github.com/socialpulse/socialpulse/internal/config"
	"github.com/socialpulse/socialpulse/internal/logger"
)

// Storages aggregates the repository interfaces the service layer depends on.
// All three may be backed by the same object (the snapshot store) or by
// separate PostgreSQL repositories sharing one connection.
type Storages struct {
	UserRepository    UserRepository
	AccountRepository AccountRepository
	PostRepository    PostRepository
}

// NewStorages selects the persistence backend from config: a non-empty DSN
// picks PostgreSQL (running migrations on startup), otherwise the JSON
// snapshot store is used, memory-only when no snapshot path is configured.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN != "" {
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		if err = db.Migrate(); err != nil {
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		log.Info().Msg("storage backend: postgres")
		return &Storages{
			UserRepository:    NewUserRepository(db, log),
			AccountRepository: NewAccountRepository(db, log),
			PostRepository:    NewPostRepository(db, log),
		}, nil
	}

	snapshot, err := NewSnapshotStore(cfg.Snapshot.Path, log)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot store: %w", err)
	}
	if cfg.Snapshot.Path == "" {
		log.Info().Msg("storage backend: in-memory (no snapshot path configured)")
	} else {
		log.Info().Str("path", cfg.Snapshot.Path).Msg("storage backend: json snapshot")
	}
	return &Storages{
		UserRepository:    snapshot,
		AccountRepository: snapshot,
		PostRepository:    snapshot,
	}, nil
}
