package models

import "time"

// Todo represents a single to-do item owned by exactly one user.
//
// CompletedAt is expressed in epoch milliseconds so that clients receive a
// plain JSON number. It is derived server-side: set when Completed transitions
// to true, forced to null otherwise — any client-supplied value is ignored.
type Todo struct {
	// TodoID is the unique identifier of the item (server-assigned UUID).
	TodoID string `json:"id"`

	// Text is the item's content. Non-empty, enforced at the storage layer.
	Text string `json:"text"`

	// Completed reports whether the item is done. Defaults to false.
	Completed bool `json:"completed"`

	// CompletedAt is the completion time in epoch milliseconds, or null
	// while the item is incomplete.
	CompletedAt *int64 `json:"completedAt"`

	// CreatorID references the owning user. Every read and mutation is
	// scoped by this field.
	CreatorID string `json:"creator"`

	// CreatedAt is the timestamp when the item was created. Listings are
	// ordered by it (insertion order).
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// EpochMillis converts ts to epoch milliseconds for the CompletedAt field.
func EpochMillis(ts time.Time) int64 {
	return ts.UnixMilli()
}
