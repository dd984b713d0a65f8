package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// todoRepository is the PostgreSQL-backed implementation of [TodoRepository].
// It executes all to-do CRUD operations directly against the "todos" table
// using the embedded [*DB] connection.
//
// Every query couples the item id with the owner id, so a well-formed id that
// belongs to another user produces the same empty result as an id that never
// existed. Callers cannot probe for foreign records.
type todoRepository struct {
	logger *logger.Logger
	db     *DB
}

// psql builds parameterised queries with PostgreSQL-style $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTodo persists a new item and returns its canonical database
// representation (RETURNING clause).
//
// Error handling:
//   - check_violation / not_null_violation → [ErrInvalidTodoText]
//     (the non-empty text rule lives in the schema, not in handler code).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (t *todoRepository) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	row := t.db.QueryRowContext(ctx, createTodo, todo.TodoID, todo.CreatorID, todo.Text)

	var created models.Todo
	if err := scanTodo(row, &created); err != nil {
		log.Err(err).
			Str("func", "*todoRepository.CreateTodo").
			Str("user_id", todo.CreatorID).
			Msg("error: creating todo failed")

		switch postgresError(err) {
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return models.Todo{}, ErrInvalidTodoText
		default:
			return models.Todo{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetAllTodos returns every item owned by the given user in insertion order.
// Returns an empty slice when the user owns nothing.
func (t *todoRepository) GetAllTodos(ctx context.Context, userID string) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := t.db.QueryContext(ctx, getAllTodos, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "*todoRepository.GetAllTodos").
			Str("user_id", userID).
			Msg("failed to execute query for getting all user todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0, 20)

	for rows.Next() {
		var todo models.Todo

		scanErr := rows.Scan(
			&todo.TodoID,
			&todo.Text,
			&todo.Completed,
			&todo.CompletedAt,
			&todo.CreatorID,
			&todo.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*todoRepository.GetAllTodos").
				Str("user_id", userID).
				Msg("failed to scan todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		todos = append(todos, todo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*todoRepository.GetAllTodos").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return todos, nil
}

// GetTodoByID returns the item matching both id and owner, or
// [ErrTodoNotFound] — for absent and foreign records alike.
func (t *todoRepository) GetTodoByID(ctx context.Context, todoID, userID string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	row := t.db.QueryRowContext(ctx, getTodoByID, todoID, userID)

	var todo models.Todo
	if err := scanTodo(row, &todo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, ErrTodoNotFound
		}

		log.Err(err).
			Str("func", "*todoRepository.GetTodoByID").
			Str("user_id", userID).
			Msg("failed to get todo by id")
		return models.Todo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return todo, nil
}

// UpdateTodo applies a partial update to the item matching both id and owner
// and returns the updated record.
//
// The SET clause is built dynamically: text is included only when the patch
// carries it, while completed and completed_at always carry derived final
// values. A zero-row result means no owned record matched
// ([ErrTodoNotFound]).
func (t *todoRepository) UpdateTodo(ctx context.Context, patch models.TodoPatch) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTodoQuery(patch)
	if err != nil {
		log.Err(err).
			Str("func", "*todoRepository.UpdateTodo").
			Str("user_id", patch.UserID).
			Msg("failed to build update query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := t.db.QueryRowContext(ctx, query, args...)

	var updated models.Todo
	if err := scanTodo(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, ErrTodoNotFound
		}

		log.Err(err).
			Str("func", "*todoRepository.UpdateTodo").
			Str("user_id", patch.UserID).
			Msg("failed to update todo")

		switch postgresError(err) {
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return models.Todo{}, ErrInvalidTodoText
		default:
			return models.Todo{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteTodo removes the item matching both id and owner and returns the
// deleted record, or [ErrTodoNotFound] when nothing matched.
func (t *todoRepository) DeleteTodo(ctx context.Context, todoID, userID string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	row := t.db.QueryRowContext(ctx, deleteTodo, todoID, userID)

	var deleted models.Todo
	if err := scanTodo(row, &deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, ErrTodoNotFound
		}

		log.Err(err).
			Str("func", "*todoRepository.DeleteTodo").
			Str("user_id", userID).
			Msg("failed to delete todo")
		return models.Todo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return deleted, nil
}

// buildUpdateTodoQuery builds the dynamic UPDATE statement for a partial
// todo update.
func buildUpdateTodoQuery(patch models.TodoPatch) (string, []any, error) {
	builder := psql.Update("todos").
		Set("completed", patch.Completed).
		Set("completed_at", patch.CompletedAt)

	if patch.Text != nil {
		builder = builder.Set("text", *patch.Text)
	}

	return builder.
		Where(squirrel.Eq{"todo_id": patch.TodoID, "user_id": patch.UserID}).
		Suffix("RETURNING todo_id, text, completed, completed_at, user_id, created_at").
		ToSql()
}

// scanTodo scans the canonical todo column set from a single-row result.
func scanTodo(row *sql.Row, todo *models.Todo) error {
	return row.Scan(
		&todo.TodoID,
		&todo.Text,
		&todo.Completed,
		&todo.CompletedAt,
		&todo.CreatorID,
		&todo.CreatedAt,
	)
}
