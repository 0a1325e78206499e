package ports

import (
	"context"
	"time"

	"github.com/Talts01/SocialPizza/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)

	// ApplyDecision transitions a PENDING event to APPROVED or REJECTED.
	// Returns domain.ErrInvalidState if the event is no longer PENDING.
	ApplyDecision(ctx context.Context, eventID string, status domain.EventStatus, comment, reason string, decidedAt time.Time) (*domain.Event, error)

	// DeletePending removes a PENDING event. No participations can exist for
	// a pending event, so there is nothing to cascade.
	DeletePending(ctx context.Context, id string) error

	// DeleteCascade removes an event together with all of its participations
	// in one atomic step. No enrollment may interleave with the purge.
	DeleteCascade(ctx context.Context, id string) error

	ListByStatus(ctx context.Context, statuses ...domain.EventStatus) ([]*domain.Event, error)
	ListByVenue(ctx context.Context, venueID string) ([]*domain.Event, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error)
	ListJoinedByUser(ctx context.Context, userID string) ([]*domain.Event, error)
	ListByOwnerAndStatus(ctx context.Context, ownerID string, status domain.EventStatus) ([]*domain.Event, error)
}
