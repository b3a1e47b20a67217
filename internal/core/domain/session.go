package domain

import "errors"

var ErrSessionNotFound = errors.New("session not found")

// Session is the per-browser authenticated identity. It is a snapshot of
// the user at login time, not a live reference; later changes to the user
// are only visible after the next login.
type Session struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
