package domain

import "time"

// Participation records one user's seat at an approved event. At most one
// exists per (event, user) pair, and the total per event never exceeds the
// event's capacity.
type Participation struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	UserID       string    `json:"user_id"`
	RegisteredAt time.Time `json:"registered_at"`
}
