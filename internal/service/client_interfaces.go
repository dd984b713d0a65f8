package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for account management.
// Implementations talk to the remote server through a [adapter.ServerAdapter]
// and persist the resulting session in the local store so the user stays
// logged in between runs.
type ClientAuthService interface {
	// Register creates a new account on the server and saves the resulting
	// session locally. Returns the saved session.
	Register(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Login authenticates against the server and saves the resulting session
	// locally. Returns the saved session.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// RestoreSession loads the previously saved session from the local store
	// and verifies the token against the server. Returns
	// [store.ErrNoSavedSession] when nothing is saved and [ErrSessionExpired]
	// (wrapped) when the saved token was revoked or expired; in the latter
	// case the stale session is removed from the local store.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout revokes the token on the server and removes the saved session
	// from the local store. A token the server already considers invalid is
	// not an error.
	Logout(ctx context.Context) error
}

// ClientTodoService defines the client-side contract for managing the user's
// items. Mutations go straight to the server; GetAll keeps the local cache
// fresh and falls back to it when the server is unreachable.
type ClientTodoService interface {
	// Create adds a new item with the given text.
	Create(ctx context.Context, text string) (models.Todo, error)

	// GetAll lists the user's items. On success the local cache is refreshed
	// with the server's answer. When the server cannot be reached the last
	// cached state is returned with fromCache set to true.
	GetAll(ctx context.Context, userID string) (todos []models.Todo, fromCache bool, err error)

	// Get returns the single item with the given id from the server.
	Get(ctx context.Context, todoID string) (models.Todo, error)

	// Update applies a partial update to the item with the given id and
	// returns the post-update state.
	Update(ctx context.Context, todoID string, update models.TodoUpdate) (models.Todo, error)

	// Delete removes the item with the given id and returns the removed
	// record.
	Delete(ctx context.Context, todoID string) (models.Todo, error)
}
