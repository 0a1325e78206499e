package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/Talts01/SocialPizza/internal/domain"
	"github.com/Talts01/SocialPizza/internal/service/ports"
)

// EnrollmentService is the enrollment ledger: the authoritative membership
// and count of active participations per event. The capacity and uniqueness
// invariants live in the participation repo's atomic check-and-insert; this
// layer adds caller resolution and logging.
type EnrollmentService struct {
	participationRepo ports.ParticipationRepo
	eventRepo         ports.EventRepo
	userRepo          ports.UserRepo
	logger            logger.Logger
}

func NewEnrollmentService(
	participationRepo ports.ParticipationRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	logger logger.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		participationRepo: participationRepo,
		eventRepo:         eventRepo,
		userRepo:          userRepo,
		logger:            logger,
	}
}

// Enroll takes a seat at an approved event. Under concurrent calls for the
// last free seats, at most capacity enrollments ever commit.
func (s *EnrollmentService) Enroll(ctx context.Context, eventID, userID string) (*domain.Participation, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	p, err := s.participationRepo.Enroll(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user enrolled",
		logger.String("participation_id", p.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	return p, nil
}

// Leave releases the caller's seat.
func (s *EnrollmentService) Leave(ctx context.Context, eventID, userID string) error {
	if err := s.participationRepo.Remove(ctx, eventID, userID); err != nil {
		return err
	}

	s.logger.Info("user left event",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	return nil
}

func (s *EnrollmentService) IsEnrolled(ctx context.Context, eventID, userID string) (bool, error) {
	return s.participationRepo.Exists(ctx, eventID, userID)
}

// CountActive reports the committed number of seats taken.
func (s *EnrollmentService) CountActive(ctx context.Context, eventID string) (int, error) {
	return s.participationRepo.CountByEvent(ctx, eventID)
}

func (s *EnrollmentService) ListParticipants(ctx context.Context, eventID string) ([]*domain.Participation, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return s.participationRepo.ListByEvent(ctx, eventID)
}
