package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyTaken is returned when an attempt to register a new
	// user fails because an account with the same email already exists.
	ErrEmailAlreadyTaken = errors.New("email already taken")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTodoNotFound is returned when a query or mutation targets a to-do
	// item (identified by todo_id and user_id) that does not exist in the
	// database. Ownership mismatches surface as this same error so that
	// callers cannot distinguish "absent" from "owned by someone else".
	ErrTodoNotFound = errors.New("todo was not found")

	// ErrInvalidTodoText is returned when an INSERT or UPDATE violates the
	// non-empty text constraint on the todos table.
	ErrInvalidTodoText = errors.New("todo text must be a non-empty string")

	// ErrNoSavedSession is returned by the client session cache when no
	// login session has been persisted locally.
	ErrNoSavedSession = errors.New("no saved session")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
