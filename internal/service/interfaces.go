package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns the account and token lifecycle: registration, credential
// verification, token issuance and revocation.
type AuthService interface {
	// Register creates a new account from the supplied credentials and logs
	// it in immediately, returning the persisted user together with a live
	// auth token.
	Register(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)

	// Login verifies the credentials and issues a fresh auth token appended
	// to the user's token list.
	Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)

	// Authenticate resolves a raw token string to its owning user. The
	// token must carry a valid signature, the auth purpose, and still be
	// present in the owner's token list. Any failure is normalised to
	// [ErrTokenIsExpiredOrInvalid].
	Authenticate(ctx context.Context, tokenString string) (models.User, error)

	// Logout removes the exact token string from the user's token list.
	// Logging out with an already-revoked token succeeds.
	Logout(ctx context.Context, userID, tokenString string) error
}

// TodoService owns the to-do lifecycle. Every operation is scoped by the
// owner id resolved by [AuthService.Authenticate].
type TodoService interface {
	// CreateTodo persists a new incomplete item with the given text.
	CreateTodo(ctx context.Context, userID string, create models.TodoCreate) (models.Todo, error)

	// GetAllTodos returns every item owned by the user, in insertion order.
	GetAllTodos(ctx context.Context, userID string) ([]models.Todo, error)

	// GetTodoByID returns the single item matching both id and owner.
	GetTodoByID(ctx context.Context, todoID, userID string) (models.Todo, error)

	// UpdateTodo applies a partial update and derives the completion
	// timestamp server-side.
	UpdateTodo(ctx context.Context, todoID, userID string, update models.TodoUpdate) (models.Todo, error)

	// DeleteTodo removes the item matching both id and owner and returns
	// the removed record.
	DeleteTodo(ctx context.Context, todoID, userID string) (models.Todo, error)
}
