package store

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the single login session of the terminal client.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}

// LocalTodoRepository is the local read cache of the user's items. It is
// refreshed from the server after every successful list call and serves the
// last known state when the server is unreachable.
type LocalTodoRepository interface {
	ReplaceTodos(ctx context.Context, userID string, todos ...models.Todo) error
	GetCachedTodos(ctx context.Context, userID string) ([]models.Todo, error)
	DeleteCachedTodos(ctx context.Context, userID string) error
}
