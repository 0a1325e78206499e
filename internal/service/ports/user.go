package ports

import (
	"context"

	"github.com/Talts01/SocialPizza/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)

	// BanCascade deletes the user and everything hanging off them: venues
	// they own, events at those venues, events they organized elsewhere, all
	// participations in those events and all participations the user holds.
	// All-or-nothing.
	BanCascade(ctx context.Context, userID string) error
}
