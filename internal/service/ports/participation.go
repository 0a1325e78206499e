package ports

import (
	"context"

	"github.com/Talts01/SocialPizza/internal/domain"
)

type ParticipationRepo interface {
	// Enroll atomically checks the event status, the (event, user)
	// uniqueness and the remaining capacity, then inserts. Concurrent calls
	// for the same event serialize on the event's exclusive scope, so the
	// participant count can never exceed the event capacity.
	Enroll(ctx context.Context, eventID, userID string) (*domain.Participation, error)

	// Remove deletes the user's participation, domain.ErrNotEnrolled if absent.
	Remove(ctx context.Context, eventID, userID string) error

	Exists(ctx context.Context, eventID, userID string) (bool, error)
	CountByEvent(ctx context.Context, eventID string) (int, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Participation, error)
}
