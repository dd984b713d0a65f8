package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createTodo").Msg("no user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var create models.TodoCreate
	if err := decodeJSON(r, &create); err != nil {
		log.Err(err).Str("func", "*Handler.createTodo").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.TodoService.CreateTodo(ctx, user.UserID, create)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createTodo").Msg("todo creation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.listTodos").Msg("no user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	todos, err := h.services.TodoService.GetAllTodos(ctx, user.UserID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTodos").Msg("todo listing failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.TodosResponse{Todos: todos}, http.StatusOK)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getTodo").Msg("no user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	todoID, err := todoIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTodo").Msg("malformed todo id")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	todo, err := h.services.TodoService.GetTodoByID(ctx, todoID, user.UserID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTodo").Msg("todo lookup failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.TodoResponse{Todo: todo}, http.StatusOK)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.updateTodo").Msg("no user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	todoID, err := todoIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateTodo").Msg("malformed todo id")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	var update models.TodoUpdate
	if err := decodeJSON(r, &update); err != nil {
		log.Err(err).Str("func", "*Handler.updateTodo").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.TodoService.UpdateTodo(ctx, todoID, user.UserID, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateTodo").Msg("todo update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.TodoResponse{Todo: updated}, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.deleteTodo").Msg("no user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	todoID, err := todoIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteTodo").Msg("malformed todo id")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	deleted, err := h.services.TodoService.DeleteTodo(ctx, todoID, user.UserID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteTodo").Msg("todo deletion failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.TodoResponse{Todo: deleted}, http.StatusOK)
}

// todoIDFromRequest extracts the {id} path parameter and rejects anything
// that is not a syntactically valid identifier. The shape check runs before
// any storage access so a malformed id is always 400, never 404.
func todoIDFromRequest(r *http.Request) (string, error) {
	todoID := chi.URLParam(r, "id")
	if !utils.IsValidID(todoID) {
		return "", ErrMalformedTodoID
	}

	return todoID, nil
}
