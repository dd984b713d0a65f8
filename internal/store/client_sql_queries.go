// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	clientSchema = `
		CREATE TABLE IF NOT EXISTS session (
			id       INTEGER PRIMARY KEY CHECK (id = 1),
			user_id  TEXT NOT NULL,
			email    TEXT NOT NULL,
			token    TEXT NOT NULL,
			saved_at TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS cached_todos (
			todo_id      TEXT NOT NULL,
			user_id      TEXT NOT NULL,
			text         TEXT NOT NULL,
			completed    BOOLEAN NOT NULL DEFAULT false,
			completed_at INTEGER,
			created_at   TIMESTAMP NOT NULL,
			PRIMARY KEY (todo_id, user_id)
		);`

	saveSession = `
		INSERT INTO session (id, user_id, email, token, saved_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			user_id  = excluded.user_id,
			email    = excluded.email,
			token    = excluded.token,
			saved_at = excluded.saved_at;`

	getSession = `
		SELECT user_id, email, token, saved_at
		FROM session
		WHERE id = 1;`

	deleteSession = `DELETE FROM session WHERE id = 1;`

	saveCachedTodo = `
		INSERT INTO cached_todos (
			todo_id,
			user_id,
			text,
			completed,
			completed_at,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6);`

	getCachedTodos = `
		SELECT
			todo_id,
			user_id,
			text,
			completed,
			completed_at,
			created_at
		FROM cached_todos
		WHERE user_id = $1
		ORDER BY created_at;`

	deleteCachedTodos = `DELETE FROM cached_todos WHERE user_id = $1;`
)
