package domain

import (
	"fmt"
	"time"
)

// EventStatus is the moderation state of a proposed event. APPROVED and
// REJECTED are terminal: an event never returns to PENDING.
type EventStatus string

const (
	StatusPending  EventStatus = "PENDING"
	StatusApproved EventStatus = "APPROVED"
	StatusRejected EventStatus = "REJECTED"
)

// ParseEventStatus validates a status arriving from an external boundary.
func ParseEventStatus(s string) (EventStatus, error) {
	switch EventStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return EventStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown event status %q", ErrValidation, s)
}

type Event struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	EventDate        time.Time   `json:"event_date"`
	Capacity         int         `json:"capacity"`
	Status           EventStatus `json:"status"`
	OrganizerID      string      `json:"organizer_id"`
	VenueID          string      `json:"venue_id"`
	CategoryID       string      `json:"category_id"`
	ModeratorComment string      `json:"moderator_comment,omitempty"`
	RejectionReason  string      `json:"rejection_reason,omitempty"`
	DecisionDate     *time.Time  `json:"decision_date,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

type ProposeEventInput struct {
	Title       string
	Description string
	EventDate   time.Time
	Capacity    int
	CategoryID  string
}
