package store

import (
	"database/sql"

	"github.com/saeedstore/erp-session/internal/logger"
	"github.com/saeedstore/erp-session/migrations"
)

// DB wraps a database handle with the logger used by the repositories built
// on top of it.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Str("func", "DB.Migrate").Msg("failed to apply migrations")
		return err
	}

	db.logger.Debug().Str("func", "DB.Migrate").Msg("migrations applied")
	return nil
}
