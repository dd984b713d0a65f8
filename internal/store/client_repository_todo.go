package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

type localTodoRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalTodoRepository constructs a [LocalTodoRepository] backed by the
// local SQLite cache.
func NewLocalTodoRepository(db *DB, logger *logger.Logger) LocalTodoRepository {
	return &localTodoRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceTodos swaps the cached list for the given user with the server's
// latest state. The delete and the inserts run in one transaction so a
// failure mid-refresh never leaves a half-empty cache.
func (l *localTodoRepository) ReplaceTodos(ctx context.Context, userID string, todos ...models.Todo) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localTodoRepository.ReplaceTodos").
			Str("user_id", userID).
			Msg("failed to begin cache refresh transaction")
		return fmt.Errorf("failed to begin cache refresh: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteCachedTodos, userID); err != nil {
		log.Err(err).
			Str("func", "localTodoRepository.ReplaceTodos").
			Str("user_id", userID).
			Msg("failed to clear cached todos")
		return fmt.Errorf("failed to clear cached todos: %w", err)
	}

	for _, todo := range todos {
		_, err := tx.ExecContext(ctx, saveCachedTodo,
			todo.TodoID,
			userID,
			todo.Text,
			todo.Completed,
			todo.CompletedAt,
			todo.CreatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localTodoRepository.ReplaceTodos").
				Str("user_id", userID).
				Str("todo_id", todo.TodoID).
				Msg("failed to cache todo")
			return fmt.Errorf("failed to cache todo (todo_id=%s): %w", todo.TodoID, err)
		}
	}

	return tx.Commit()
}

// GetCachedTodos returns the last known list for the given user in insertion
// order. An empty cache yields an empty slice.
func (l *localTodoRepository) GetCachedTodos(ctx context.Context, userID string) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getCachedTodos, userID)
	if err != nil {
		log.Err(err).
			Str("func", "localTodoRepository.GetCachedTodos").
			Str("user_id", userID).
			Msg("failed to query cached todos")
		return nil, fmt.Errorf("failed to query cached todos: %w", err)
	}
	defer rows.Close()

	var todos []models.Todo

	for rows.Next() {
		var todo models.Todo

		scanErr := rows.Scan(
			&todo.TodoID,
			&todo.CreatorID,
			&todo.Text,
			&todo.Completed,
			&todo.CompletedAt,
			&todo.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localTodoRepository.GetCachedTodos").
				Str("user_id", userID).
				Msg("failed to scan cached todo row")
			return nil, fmt.Errorf("failed to scan cached todo row: %w", scanErr)
		}

		todos = append(todos, todo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localTodoRepository.GetCachedTodos").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error occurred during rows iteration: %w", rowsErr)
	}

	return todos, nil
}

// DeleteCachedTodos drops every cached item for the given user.
func (l *localTodoRepository) DeleteCachedTodos(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, deleteCachedTodos, userID); err != nil {
		log.Err(err).
			Str("func", "localTodoRepository.DeleteCachedTodos").
			Str("user_id", userID).
			Msg("failed to delete cached todos")
		return fmt.Errorf("failed to delete cached todos: %w", err)
	}

	return nil
}
