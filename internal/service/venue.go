package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Talts01/SocialPizza/internal/domain"
	"github.com/Talts01/SocialPizza/internal/service/ports"
)

// VenueService is the reference directory: thin lookups plus admin-side
// creation of venues and categories.
type VenueService struct {
	venueRepo    ports.VenueRepo
	categoryRepo ports.CategoryRepo
	userRepo     ports.UserRepo
}

func NewVenueService(venueRepo ports.VenueRepo, categoryRepo ports.CategoryRepo, userRepo ports.UserRepo) *VenueService {
	return &VenueService{
		venueRepo:    venueRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

func (s *VenueService) CreateVenue(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	owner, err := s.userRepo.GetByID(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("resolve owner: %w", err)
	}
	if owner.Role != domain.RoleVenueOwner {
		return nil, fmt.Errorf("%w: the owner must hold the VENUE_OWNER role", domain.ErrValidation)
	}

	venue := &domain.Venue{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Address:   input.Address,
		City:      input.City,
		Capacity:  input.Capacity,
		OwnerID:   owner.ID,
		CreatedAt: time.Now().UTC(),
	}

	if err = s.venueRepo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	return venue, nil
}

func (s *VenueService) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	return s.venueRepo.GetByID(ctx, id)
}

func (s *VenueService) ListVenues(ctx context.Context) ([]*domain.Venue, error) {
	return s.venueRepo.List(ctx)
}

func (s *VenueService) ListVenuesByOwner(ctx context.Context, ownerID string) ([]*domain.Venue, error) {
	return s.venueRepo.ListByOwner(ctx, ownerID)
}

func (s *VenueService) CreateCategory(ctx context.Context, name, description string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	category := &domain.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	return category, nil
}

func (s *VenueService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categoryRepo.List(ctx)
}
