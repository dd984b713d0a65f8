package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
)

// ---- Mock: AuthService ----

type mockAuthSvc struct{}

func (m *mockAuthSvc) Register(_ context.Context, c models.Credentials) (models.User, models.Token, error) {
	return models.User{UserID: "user-1", Email: c.Email}, models.Token{SignedString: "t"}, nil
}
func (m *mockAuthSvc) Login(_ context.Context, c models.Credentials) (models.User, models.Token, error) {
	return models.User{UserID: "user-1", Email: c.Email}, models.Token{SignedString: "t"}, nil
}
func (m *mockAuthSvc) Authenticate(_ context.Context, _ string) (models.User, error) {
	return models.User{UserID: "user-1"}, nil
}
func (m *mockAuthSvc) Logout(_ context.Context, _, _ string) error {
	return nil
}

// ---- Mock: TodoService ----

type mockTodoSvc struct{}

func (m *mockTodoSvc) CreateTodo(_ context.Context, userID string, create models.TodoCreate) (models.Todo, error) {
	return models.Todo{TodoID: validTodoID, Text: create.Text, CreatorID: userID}, nil
}
func (m *mockTodoSvc) GetAllTodos(_ context.Context, _ string) ([]models.Todo, error) {
	return []models.Todo{}, nil
}
func (m *mockTodoSvc) GetTodoByID(_ context.Context, todoID, userID string) (models.Todo, error) {
	return models.Todo{TodoID: todoID, CreatorID: userID}, nil
}
func (m *mockTodoSvc) UpdateTodo(_ context.Context, todoID, userID string, _ models.TodoUpdate) (models.Todo, error) {
	return models.Todo{TodoID: todoID, CreatorID: userID}, nil
}
func (m *mockTodoSvc) DeleteTodo(_ context.Context, todoID, userID string) (models.Todo, error) {
	return models.Todo{TodoID: todoID, CreatorID: userID}, nil
}

// ---- Helper ----

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: &mockAuthSvc{},
			TodoService: &mockTodoSvc{},
		},
	}
	return h.Init()
}

// ---- Tests ----

func TestRoutes_PublicEndpointsSkipGuard(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{"/users", "/users/login"} {
		req := httptest.NewRequest(http.MethodPost, target,
			strings.NewReader(`{"email":"a@x.com","password":"abc12345"}`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "POST %s must not require a token", target)
	}
}

func TestRoutes_GuardedEndpointsRejectWithoutToken(t *testing.T) {
	cases := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/users/me"},
		{http.MethodDelete, "/users/me/token"},
		{http.MethodPost, "/todos"},
		{http.MethodGet, "/todos"},
		{http.MethodGet, "/todos/" + validTodoID},
		{http.MethodPatch, "/todos/" + validTodoID},
		{http.MethodDelete, "/todos/" + validTodoID},
	}

	router := newTestRouter(t)

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.target, strings.NewReader("{}"))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s must require a token", tc.method, tc.target)
	}
}

func TestRoutes_GuardedEndpointsAcceptToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("x-auth", "live-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_UnsupportedMethodYields404(t *testing.T) {
	cases := []struct {
		method string
		target string
	}{
		{http.MethodPut, "/todos"},
		{http.MethodPut, "/todos/" + validTodoID},
		{http.MethodPost, "/todos/" + validTodoID},
		{http.MethodDelete, "/users"},
		{http.MethodGet, "/users/login"},
	}

	router := newTestRouter(t)

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.target, nil)
		req.Header.Set("x-auth", "live-token")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code,
			"%s %s must be hidden behind 404, not 405", tc.method, tc.target)
	}
}

func TestRoutes_TraceIDHeaderIsSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"email":"a@x.com","password":"abc12345"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
