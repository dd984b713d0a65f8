package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// todoService is the concrete implementation of TodoService. Ownership
// scoping lives in the repository queries; this layer owns input validation
// and the completedAt derivation.
type todoService struct {
	todoRepository store.TodoRepository
	uuid           *utils.UUIDGenerator
	logger         *logger.Logger

	// now is the clock used for completion timestamps.
	now func() time.Time
}

// NewTodoService constructs a TodoService wired to the given repository.
func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		uuid:           utils.NewUUIDGenerator(),
		logger:         logger,
		now:            time.Now,
	}
}

// CreateTodo persists a new incomplete item. The text must contain at least
// one non-whitespace character.
func (t *todoService) CreateTodo(ctx context.Context, userID string, create models.TodoCreate) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(create.Text) == "" {
		log.Error().Str("user_id", userID).Msg("empty todo text provided")
		return models.Todo{}, ErrEmptyTodoText
	}

	todo := models.Todo{
		TodoID:    t.uuid.Generate(),
		Text:      create.Text,
		CreatorID: userID,
	}

	created, err := t.todoRepository.CreateTodo(ctx, todo)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("todo creation ended with error")
		return models.Todo{}, fmt.Errorf("todo creation ended with error: %w", err)
	}

	return created, nil
}

// GetAllTodos returns every item owned by the user, in insertion order.
func (t *todoService) GetAllTodos(ctx context.Context, userID string) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	todos, err := t.todoRepository.GetAllTodos(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("todo listing ended with error")
		return nil, fmt.Errorf("todo listing ended with error: %w", err)
	}

	return todos, nil
}

// GetTodoByID returns the single item matching both id and owner.
func (t *todoService) GetTodoByID(ctx context.Context, todoID, userID string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	todo, err := t.todoRepository.GetTodoByID(ctx, todoID, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("todo lookup ended with error")
		return models.Todo{}, fmt.Errorf("todo lookup ended with error: %w", err)
	}

	return todo, nil
}

// UpdateTodo applies a partial update with the server-side completion
// derivation: completed=true stamps the current time in epoch milliseconds,
// anything else (including an absent flag) resets the item to incomplete
// with a null timestamp. Client-supplied timestamps are never consulted.
func (t *todoService) UpdateTodo(ctx context.Context, todoID, userID string, update models.TodoUpdate) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if update.Text != nil && strings.TrimSpace(*update.Text) == "" {
		log.Error().Str("user_id", userID).Msg("empty todo text provided")
		return models.Todo{}, ErrEmptyTodoText
	}

	patch := models.TodoPatch{
		TodoID: todoID,
		UserID: userID,
		Text:   update.Text,
	}

	if update.Completed != nil && *update.Completed {
		completedAt := models.EpochMillis(t.now())
		patch.Completed = true
		patch.CompletedAt = &completedAt
	}

	updated, err := t.todoRepository.UpdateTodo(ctx, patch)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("todo update ended with error")
		return models.Todo{}, fmt.Errorf("todo update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteTodo removes the item matching both id and owner and returns the
// removed record.
func (t *todoService) DeleteTodo(ctx context.Context, todoID, userID string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	deleted, err := t.todoRepository.DeleteTodo(ctx, todoID, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("todo deletion ended with error")
		return models.Todo{}, fmt.Errorf("todo deletion ended with error: %w", err)
	}

	return deleted, nil
}
