// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the transport layer when inspecting the incoming
// request. Callers can match against them with [errors.Is].
var (
	// ErrMissingAuthToken is returned by the auth middleware when the
	// incoming request does not carry the x-auth header at all.
	ErrMissingAuthToken = errors.New("missing `x-auth` header")

	// ErrMalformedTodoID is returned when a path id is not syntactically a
	// valid identifier. Malformed input is distinct from an absent record:
	// it yields 400, never 404.
	ErrMalformedTodoID = errors.New("malformed todo id")
)
