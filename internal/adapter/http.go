package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-resty/resty/v2"
)

const authTokenHeader = "x-auth"

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.ServerURL and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the x-auth header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the auth token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /users. On success the auth token is taken from the x-auth response
// header and stored via SetToken. Returns the created user record as the
// server reported it.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&user).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.SetToken(resp.Header().Get(authTokenHeader))
	return user, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /users/login. On success the auth token is taken from the x-auth
// response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&user).
		Post("/users/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.SetToken(resp.Header().Get(authTokenHeader))
	return user, nil
}

// Me implements [ServerAdapter]. It GETs /users/me and returns the user that
// owns the current token. Requires a valid token to be set.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode me response: %w", err)
	}

	return user, nil
}

// Logout implements [ServerAdapter]. It sends DELETE /users/me/token to revoke
// the current token on the server, then clears the token from the adapter. The
// local token is cleared even when the server reports the token as already
// invalid.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/users/me/token")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	mappedErr := mapHTTPError(resp)
	h.SetToken("")

	return mappedErr
}

// CreateTodo implements [ServerAdapter]. It POSTs the new item text to
// POST /todos and returns the server's record of the created item. Requires a
// valid token.
func (h *httpServerAdapter) CreateTodo(ctx context.Context, create models.TodoCreate) (models.Todo, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(create).
		Post("/todos")
	if err != nil {
		return models.Todo{}, fmt.Errorf("create todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	var todo models.Todo
	if err = json.Unmarshal(resp.Body(), &todo); err != nil {
		return models.Todo{}, fmt.Errorf("decode create todo response: %w", err)
	}

	return todo, nil
}

// GetTodos implements [ServerAdapter]. It GETs /todos and returns every item
// owned by the authenticated user. Requires a valid token.
func (h *httpServerAdapter) GetTodos(ctx context.Context) ([]models.Todo, error) {
	resp, err := h.authedRequest(ctx).Get("/todos")
	if err != nil {
		return nil, fmt.Errorf("get todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.TodosResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode todos response: %w", err)
	}

	return list.Todos, nil
}

// GetTodo implements [ServerAdapter]. It GETs /todos/{id}. Returns
// [ErrNotFound] (wrapped) when the item is absent or owned by another user.
// Requires a valid token.
func (h *httpServerAdapter) GetTodo(ctx context.Context, todoID string) (models.Todo, error) {
	resp, err := h.authedRequest(ctx).Get("/todos/" + url.PathEscape(todoID))
	if err != nil {
		return models.Todo{}, fmt.Errorf("get todo request: %w", err)
	}

	return decodeTodoResponse(resp)
}

// UpdateTodo implements [ServerAdapter]. It PATCHes /todos/{id} with the
// partial update and returns the post-update item. Requires a valid token.
func (h *httpServerAdapter) UpdateTodo(ctx context.Context, todoID string, update models.TodoUpdate) (models.Todo, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Patch("/todos/" + url.PathEscape(todoID))
	if err != nil {
		return models.Todo{}, fmt.Errorf("update todo request: %w", err)
	}

	return decodeTodoResponse(resp)
}

// DeleteTodo implements [ServerAdapter]. It sends DELETE /todos/{id} and
// returns the removed item as the server reported it. Requires a valid token.
func (h *httpServerAdapter) DeleteTodo(ctx context.Context, todoID string) (models.Todo, error) {
	resp, err := h.authedRequest(ctx).Delete("/todos/" + url.PathEscape(todoID))
	if err != nil {
		return models.Todo{}, fmt.Errorf("delete todo request: %w", err)
	}

	return decodeTodoResponse(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader(authTokenHeader, token)
	}
	return req
}

func decodeTodoResponse(resp *resty.Response) (models.Todo, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	var wrapped models.TodoResponse
	if err := json.Unmarshal(resp.Body(), &wrapped); err != nil {
		return models.Todo{}, fmt.Errorf("decode todo response: %w", err)
	}

	return wrapped.Todo, nil
}
