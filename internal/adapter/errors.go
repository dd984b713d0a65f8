// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrBadRequest is returned when the server rejects a request as
	// invalid (validation failure, duplicate email, wrong credentials).
	ErrBadRequest = errors.New("server rejected the request")
	// ErrUnauthorized is returned when the token is missing, expired or
	// revoked.
	ErrUnauthorized = errors.New("authentication required")
	// ErrNotFound is returned when the requested item does not exist or
	// belongs to another user.
	ErrNotFound = errors.New("item not found")
	// ErrServerUnavailable is returned when the server could not be
	// reached at all or answered with an unexpected status.
	ErrServerUnavailable = errors.New("server is unavailable")
)
