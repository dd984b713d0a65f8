// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the go-task-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-task-keeper server. Implementations are responsible for serialisation,
// x-auth header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the auth token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login, or when restoring a saved session.
	SetToken(token string)

	// Token returns the auth token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account on the server. On success it stores
	// the token from the x-auth response header via SetToken and returns
	// the created user.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login authenticates against the server. On success it stores the
	// token from the x-auth response header via SetToken and returns the
	// server-side user record.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Me resolves the current token to its owning user. Returns
	// [ErrUnauthorized] (wrapped) when the token is missing or revoked.
	Me(ctx context.Context) (models.User, error)

	// Logout revokes the current token on the server and clears it from
	// the adapter.
	Logout(ctx context.Context) error

	// CreateTodo creates a new item and returns the server's record of it.
	CreateTodo(ctx context.Context, create models.TodoCreate) (models.Todo, error)

	// GetTodos returns every item owned by the authenticated user.
	GetTodos(ctx context.Context) ([]models.Todo, error)

	// GetTodo returns the single item with the given id.
	GetTodo(ctx context.Context, todoID string) (models.Todo, error)

	// UpdateTodo applies a partial update to the item with the given id.
	UpdateTodo(ctx context.Context, todoID string, update models.TodoUpdate) (models.Todo, error)

	// DeleteTodo removes the item with the given id and returns the
	// removed record.
	DeleteTodo(ctx context.Context, todoID string) (models.Todo, error)
}
