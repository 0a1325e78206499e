package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Talts01/SocialPizza/internal/domain"
	"github.com/Talts01/SocialPizza/internal/service/ports/mocks"
)

func newVenueService(t *testing.T) (*VenueService, *mocks.MockVenueRepo, *mocks.MockCategoryRepo, *mocks.MockUserRepo) {
	venueRepo := mocks.NewMockVenueRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewVenueService(venueRepo, categoryRepo, userRepo)
	return svc, venueRepo, categoryRepo, userRepo
}

func TestVenueService_CreateVenue(t *testing.T) {
	svc, venueRepo, _, userRepo := newVenueService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "owner").
		Return(&domain.User{ID: "owner", Role: domain.RoleVenueOwner}, nil)
	venueRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	venue, err := svc.CreateVenue(context.Background(), domain.CreateVenueInput{
		Name:     "Da Mario",
		City:     "Bologna",
		Capacity: 60,
		OwnerID:  "owner",
	})

	require.NoError(t, err)
	assert.Equal(t, "owner", venue.OwnerID)
	assert.NotEmpty(t, venue.ID)
}

func TestVenueService_CreateVenue_OwnerMustHoldRole(t *testing.T) {
	svc, _, _, userRepo := newVenueService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Role: domain.RoleMember}, nil)

	_, err := svc.CreateVenue(context.Background(), domain.CreateVenueInput{
		Name:     "Da Mario",
		Capacity: 60,
		OwnerID:  "u1",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVenueService_CreateVenue_Validation(t *testing.T) {
	svc, _, _, _ := newVenueService(t)

	_, err := svc.CreateVenue(context.Background(), domain.CreateVenueInput{Name: " ", Capacity: 10, OwnerID: "o"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateVenue(context.Background(), domain.CreateVenueInput{Name: "X", Capacity: 0, OwnerID: "o"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVenueService_CreateCategory(t *testing.T) {
	svc, _, categoryRepo, _ := newVenueService(t)

	categoryRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	category, err := svc.CreateCategory(context.Background(), "pizza", "round and hot")

	require.NoError(t, err)
	assert.Equal(t, "pizza", category.Name)
	assert.NotEmpty(t, category.ID)
}

func TestVenueService_CreateCategory_EmptyName(t *testing.T) {
	svc, _, _, _ := newVenueService(t)

	_, err := svc.CreateCategory(context.Background(), "  ", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
