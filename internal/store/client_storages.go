package store

import (
	"context"
	"fmt"
	"io"

	"github.com/saeedstore/erp-session/internal/config"
	"github.com/saeedstore/erp-session/internal/logger"
)

// ClientStorages groups the client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// LocalStorage is the key-value store selected by configuration.
	LocalStorage LocalStorage

	// TokenSlot owns the access token kept in LocalStorage.
	TokenSlot *TokenSlot

	closer io.Closer
}

// NewClientStorages initialises the client storage layer for cfg.Kind:
//   - sqlite opens (creating if needed) the database at cfg.DB.DSN and runs
//     pending migrations;
//   - file loads the JSON document at cfg.DB.DSN;
//   - memory keeps everything in process memory.
//
// An unknown kind yields [ErrUnknownStorageKind].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("kind", cfg.Kind).Msg("creating new storages...")

	var (
		storage LocalStorage
		closer  io.Closer
	)

	switch cfg.Kind {
	case config.StorageSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		storage, closer = NewLocalStorageRepository(db, logger), db
	case config.StorageFile:
		fs, err := NewFileStorage(cfg.DB.DSN)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		storage = fs
	case config.StorageMemory:
		storage = NewMemoryStorage()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageKind, cfg.Kind)
	}

	return &ClientStorages{
		LocalStorage: storage,
		TokenSlot:    NewTokenSlot(storage),
		closer:       closer,
	}, nil
}

// Close releases the underlying database connection, if any.
func (s *ClientStorages) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
