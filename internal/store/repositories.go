package store

import (
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// Repositories groups all server-side repositories into a single value that
// can be passed around the service layer.
type Repositories struct {
	UserRepository  UserRepository
	TokenRepository TokenRepository
	TodoRepository  TodoRepository
}

// NewRepositories wires every repository to the shared database connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:  NewUserRepository(db, logger),
		TokenRepository: NewTokenRepository(db, logger),
		TodoRepository:  NewTodoRepository(db, logger),
	}
}
