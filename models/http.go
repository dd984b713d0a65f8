package models

// Credentials is the allow-listed request body accepted by the registration
// and login endpoints. Any field outside this schema is rejected at decode
// time rather than silently dropped.
type Credentials struct {
	// Email is the unique login key. Must be email-shaped.
	Email string `json:"email"`

	// Password is the plaintext password. Only its bcrypt hash is ever
	// persisted.
	Password string `json:"password"`
}

// TodoCreate is the allow-listed request body for creating a to-do item.
// The text is taken verbatim; non-emptiness is enforced at the storage layer.
type TodoCreate struct {
	Text string `json:"text"`
}

// TodoUpdate is the allow-listed request body for partially updating a to-do
// item. Only Text and Completed may be supplied; unknown fields fail the
// request.
//
// Nil pointers mean "field not present in the request". The completedAt
// derivation never consults the client: completed=true stamps the current
// time, anything else (including an absent flag) resets the item to
// incomplete with a null completedAt.
type TodoUpdate struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// TodoPatch is the storage-facing partial update produced by the service
// after the completedAt derivation has been applied. Text is optional;
// Completed and CompletedAt always carry final, derived values.
//
// TodoID and UserID together scope the update: an id owned by another user
// matches nothing.
type TodoPatch struct {
	TodoID string
	UserID string

	// Text replaces the item's text when non-nil.
	Text *string

	// Completed is the derived completion flag.
	Completed bool

	// CompletedAt is the derived completion timestamp in epoch
	// milliseconds, nil while the item is incomplete.
	CompletedAt *int64
}
