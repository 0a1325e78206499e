package domain

import "time"

// Venue is a partner location where events are hosted. Capacity is the
// ceiling for any single event held there.
type Venue struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Capacity  int       `json:"capacity"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateVenueInput struct {
	Name     string
	Address  string
	City     string
	Capacity int
	OwnerID  string
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
