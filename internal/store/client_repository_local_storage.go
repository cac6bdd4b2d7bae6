package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/saeedstore/erp-session/internal/logger"
)

type localStorageRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocalStorageRepository returns a [LocalStorage] backed by the
// local_storage table of db.
func NewLocalStorageRepository(db *DB, logger *logger.Logger) LocalStorage {
	return &localStorageRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *localStorageRepository) GetItem(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := getLocalStorageItem(key)
	if err != nil {
		return "", fmt.Errorf("build get item query: %w", err)
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localStorageRepository.GetItem").
			Str("key", key).
			Msg("failed to read local storage item")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *localStorageRepository) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := setLocalStorageItem(key, value, r.now())
	if err != nil {
		return fmt.Errorf("build set item statement: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localStorageRepository.SetItem").
			Str("key", key).
			Msg("failed to execute upsert for local storage item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localStorageRepository) RemoveItem(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := removeLocalStorageItem(key)
	if err != nil {
		return fmt.Errorf("build remove item statement: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localStorageRepository.RemoveItem").
			Str("key", key).
			Msg("failed to delete local storage item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
