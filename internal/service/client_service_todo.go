package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

type clientTodoService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

func NewClientTodoService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientTodoService {
	return &clientTodoService{localStore: localStore, adapter: serverAdapter, logger: logger}
}

func (s *clientTodoService) Create(ctx context.Context, text string) (models.Todo, error) {
	todo, err := s.adapter.CreateTodo(ctx, models.TodoCreate{Text: text})
	if err != nil {
		return models.Todo{}, fmt.Errorf("create todo on server: %w", err)
	}

	return todo, nil
}

func (s *clientTodoService) GetAll(ctx context.Context, userID string) ([]models.Todo, bool, error) {
	todos, err := s.adapter.GetTodos(ctx)
	if err == nil {
		// обновляем локальный кэш последним состоянием с сервера
		if cacheErr := s.localStore.TodoRepository.ReplaceTodos(ctx, userID, todos...); cacheErr != nil {
			s.logger.Warn().Err(cacheErr).Str("func", "GetAll").Msg("error refreshing local todo cache")
		}
		return todos, false, nil
	}

	if !serverUnreachable(err) {
		return nil, false, fmt.Errorf("get todos from server: %w", err)
	}

	cached, cacheErr := s.localStore.TodoRepository.GetCachedTodos(ctx, userID)
	if cacheErr != nil {
		return nil, false, fmt.Errorf("get todos from server: %w", err)
	}

	s.logger.Warn().Err(err).Str("func", "GetAll").Msg("server unreachable, serving cached todos")
	return cached, true, nil
}

func (s *clientTodoService) Get(ctx context.Context, todoID string) (models.Todo, error) {
	todo, err := s.adapter.GetTodo(ctx, todoID)
	if err != nil {
		return models.Todo{}, fmt.Errorf("get todo from server: %w", err)
	}

	return todo, nil
}

func (s *clientTodoService) Update(ctx context.Context, todoID string, update models.TodoUpdate) (models.Todo, error) {
	todo, err := s.adapter.UpdateTodo(ctx, todoID, update)
	if err != nil {
		return models.Todo{}, fmt.Errorf("update todo on server: %w", err)
	}

	return todo, nil
}

func (s *clientTodoService) Delete(ctx context.Context, todoID string) (models.Todo, error) {
	todo, err := s.adapter.DeleteTodo(ctx, todoID)
	if err != nil {
		return models.Todo{}, fmt.Errorf("delete todo on server: %w", err)
	}

	return todo, nil
}

// serverUnreachable reports whether err means the server could not answer at
// all, as opposed to answering with a business error.
func serverUnreachable(err error) bool {
	if errors.Is(err, adapter.ErrServerUnavailable) {
		return true
	}

	// transport-level failures (connection refused, timeout) carry none of
	// the adapter sentinels
	return !errors.Is(err, adapter.ErrBadRequest) &&
		!errors.Is(err, adapter.ErrUnauthorized) &&
		!errors.Is(err, adapter.ErrNotFound)
}
