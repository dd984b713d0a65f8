package models

import "time"

// Session is the client-side login state persisted between runs of the
// terminal client. Token is the raw auth token the server expects back in
// the x-auth header.
type Session struct {
	UserID  string    `json:"user_id"`
	Email   string    `json:"email"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}
