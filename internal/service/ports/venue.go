package ports

import (
	"context"

	"github.com/Talts01/SocialPizza/internal/domain"
)

type VenueRepo interface {
	Create(ctx context.Context, v *domain.Venue) error
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Venue, error)
}

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}
