package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value
// that can be passed around the terminal client.
type ClientStorages struct {
	// SessionRepository persists the login session between runs.
	SessionRepository SessionRepository

	// TodoRepository is the local read cache of the user's items.
	TodoRepository LocalTodoRepository
}

// NewClientStorages initialises the client storage layer: it opens (creating
// if necessary) the SQLite cache file at cfg.DB.Path, ensures the schema
// exists and wires up fresh repositories.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, logger),
		TodoRepository:    NewLocalTodoRepository(db, logger),
	}, nil
}
