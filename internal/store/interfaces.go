package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
)

// UserRepository persists and resolves user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns [ErrEmailAlreadyTaken] on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail resolves a user by the login key.
	// Returns [ErrNoUserWasFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID resolves a user by identity.
	// Returns [ErrNoUserWasFound] when no account matches.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// TokenRepository maintains each user's ordered token list. A signed token is
// live only while it is present in the list; removal is revocation.
type TokenRepository interface {
	// AddToken appends a {purpose, token} pair to the user's token list.
	AddToken(ctx context.Context, userID, purpose, token string) error

	// HasToken reports whether the exact token string is present in the
	// user's token list with the given purpose.
	HasToken(ctx context.Context, userID, purpose, token string) (bool, error)

	// DeleteToken removes the exact token string from the user's token
	// list. Removing an already-absent token is not an error.
	DeleteToken(ctx context.Context, userID, token string) error

	// DeleteExpiredTokens removes every token issued before cutoff across
	// all users and returns the number of removed rows. Tokens past their
	// JWT expiry are already dead for authentication; this reclaims the
	// rows they leave behind.
	DeleteExpiredTokens(ctx context.Context, cutoff time.Time) (int64, error)
}

// TodoRepository persists to-do items. Every read and mutation is scoped by
// the owner id; an id that exists but belongs to another user behaves
// identically to an absent id ([ErrTodoNotFound]).
type TodoRepository interface {
	// CreateTodo persists a new item and returns its canonical database
	// representation. Returns [ErrInvalidTodoText] when the text violates
	// the non-empty constraint.
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)

	// GetAllTodos returns every item owned by the user, in insertion order.
	GetAllTodos(ctx context.Context, userID string) ([]models.Todo, error)

	// GetTodoByID returns the item matching both id and owner.
	GetTodoByID(ctx context.Context, todoID, userID string) (models.Todo, error)

	// UpdateTodo applies a partial update to the item matching both id and
	// owner and returns the updated record.
	UpdateTodo(ctx context.Context, update models.TodoPatch) (models.Todo, error)

	// DeleteTodo removes the item matching both id and owner and returns
	// the deleted record.
	DeleteTodo(ctx context.Context, todoID, userID string) (models.Todo, error)
}
