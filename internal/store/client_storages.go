package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-resin-keeper/internal/config"
	"github.com/MKhiriev/go-resin-keeper/internal/logger"
)

// ClientStorages groups the repositories the service layer needs into a
// single value.
type ClientStorages struct {
	AccountRepository   AccountRepository
	CharacterRepository CharacterRepository
	SettingsRepository  SettingsRepository

	db *DB
}

// NewClientStorages opens the database named by cfg.DB.DSN (creating the
// SQLite file when needed), applies pending migrations and builds the
// repositories on top of the connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		AccountRepository:   NewAccountRepository(db, logger),
		CharacterRepository: NewCharacterRepository(db, logger),
		SettingsRepository:  NewSettingsRepository(db, logger),
		db:                  db,
	}
}

// Close releases the underlying connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
