package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/Talts01/SocialPizza/internal/authz"
	"github.com/Talts01/SocialPizza/internal/domain"
	"github.com/Talts01/SocialPizza/internal/service/ports"
)

// EventService owns the event lifecycle: proposal, moderation decision,
// withdrawal, cancellation and the reads around them. Enrollment side
// effects go through the participation repo, which enforces capacity and
// uniqueness atomically.
type EventService struct {
	eventRepo         ports.EventRepo
	participationRepo ports.ParticipationRepo
	venueRepo         ports.VenueRepo
	categoryRepo      ports.CategoryRepo
	userRepo          ports.UserRepo
	logger            logger.Logger
}

func NewEventService(
	eventRepo ports.EventRepo,
	participationRepo ports.ParticipationRepo,
	venueRepo ports.VenueRepo,
	categoryRepo ports.CategoryRepo,
	userRepo ports.UserRepo,
	logger logger.Logger,
) *EventService {
	return &EventService{
		eventRepo:         eventRepo,
		participationRepo: participationRepo,
		venueRepo:         venueRepo,
		categoryRepo:      categoryRepo,
		userRepo:          userRepo,
		logger:            logger,
	}
}

// Propose creates a new event proposal. When the organizer owns the venue
// the event is approved on the spot and the organizer takes the first seat;
// otherwise it waits for the venue owner's decision as PENDING.
func (s *EventService) Propose(ctx context.Context, input domain.ProposeEventInput, venueID, organizerID string) (*domain.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.EventDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: event_date must be in the future", domain.ErrValidation)
	}

	organizer, err := s.userRepo.GetByID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("resolve organizer: %w", err)
	}

	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("resolve venue: %w", err)
	}

	if input.Capacity > venue.Capacity {
		return nil, fmt.Errorf("%w: capacity exceeds the venue ceiling of %d", domain.ErrValidation, venue.Capacity)
	}

	if _, err = s.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, fmt.Errorf("resolve category: %w", err)
	}

	status := domain.StatusPending
	if venue.OwnerID == organizer.ID {
		status = domain.StatusApproved
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		Capacity:    input.Capacity,
		Status:      status,
		OrganizerID: organizer.ID,
		VenueID:     venue.ID,
		CategoryID:  input.CategoryID,
	}

	if err = s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	if event.Status == domain.StatusApproved {
		s.autoEnrollOrganizer(ctx, event)
	}

	s.logger.Info("event proposed",
		logger.String("event_id", event.ID),
		logger.String("venue_id", venue.ID),
		logger.String("organizer_id", organizer.ID),
		logger.String("status", string(event.Status)),
	)

	return event, nil
}

// Decide records the venue owner's verdict on a pending proposal. Approval
// stores the moderator comment and enrolls the organizer; rejection requires
// a non-empty reason. Either way the event leaves PENDING for good.
func (s *EventService) Decide(ctx context.Context, eventID, deciderID, decision, comment string) (*domain.Event, error) {
	status, err := domain.ParseEventStatus(decision)
	if err != nil {
		return nil, err
	}
	if status == domain.StatusPending {
		return nil, fmt.Errorf("%w: decision must be APPROVED or REJECTED", domain.ErrValidation)
	}
	if status == domain.StatusRejected && strings.TrimSpace(comment) == "" {
		return nil, fmt.Errorf("%w: a rejection reason is required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	venue, err := s.venueRepo.GetByID(ctx, event.VenueID)
	if err != nil {
		return nil, fmt.Errorf("resolve venue: %w", err)
	}

	if err = authz.CanModerate(deciderID, venue); err != nil {
		return nil, err
	}

	var moderatorComment, rejectionReason string
	if status == domain.StatusApproved {
		moderatorComment = comment
	} else {
		rejectionReason = comment
	}

	updated, err := s.eventRepo.ApplyDecision(ctx, eventID, status, moderatorComment, rejectionReason, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("apply decision: %w", err)
	}

	if updated.Status == domain.StatusApproved {
		s.autoEnrollOrganizer(ctx, updated)
	}

	s.logger.Info("event decided",
		logger.String("event_id", updated.ID),
		logger.String("decider_id", deciderID),
		logger.String("status", string(updated.Status)),
	)

	return updated, nil
}

// Withdraw lets the organizer retract their own proposal while it is still
// pending. No participations can exist yet, so a plain delete suffices.
func (s *EventService) Withdraw(ctx context.Context, eventID, callerID string) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	if err = authz.CanWithdraw(callerID, event); err != nil {
		return err
	}

	if err = s.eventRepo.DeletePending(ctx, eventID); err != nil {
		return fmt.Errorf("withdraw event: %w", err)
	}

	s.logger.Info("event withdrawn",
		logger.String("event_id", eventID),
		logger.String("organizer_id", callerID),
	)

	return nil
}

// CancelApproved lets the venue owner call off a confirmed event. The purge
// of participations and the delete happen in one atomic step, so no
// enrollment can survive the cancellation.
func (s *EventService) CancelApproved(ctx context.Context, eventID, callerID string) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	venue, err := s.venueRepo.GetByID(ctx, event.VenueID)
	if err != nil {
		return fmt.Errorf("resolve venue: %w", err)
	}

	if err = authz.CanCancel(callerID, event, venue); err != nil {
		return err
	}

	if err = s.eventRepo.DeleteCascade(ctx, eventID); err != nil {
		return fmt.Errorf("cancel event: %w", err)
	}

	s.logger.Info("event cancelled",
		logger.String("event_id", eventID),
		logger.String("owner_id", callerID),
	)

	return nil
}

// AdminDelete removes an event in any state, cascading its participations.
func (s *EventService) AdminDelete(ctx context.Context, eventID string, callerRole domain.Role) error {
	if err := authz.CanAdminDelete(callerRole); err != nil {
		return err
	}

	if err := s.eventRepo.DeleteCascade(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted by admin", logger.String("event_id", eventID))

	return nil
}

func (s *EventService) GetByID(ctx context.Context, eventID string) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, eventID)
}

func (s *EventService) ListApproved(ctx context.Context) ([]*domain.Event, error) {
	return s.eventRepo.ListByStatus(ctx, domain.StatusApproved)
}

// ListPublic returns everything visible to browsing members: approved events
// plus proposals still awaiting a decision.
func (s *EventService) ListPublic(ctx context.Context) ([]*domain.Event, error) {
	return s.eventRepo.ListByStatus(ctx, domain.StatusApproved, domain.StatusPending)
}

func (s *EventService) ListByVenue(ctx context.Context, venueID string) ([]*domain.Event, error) {
	return s.eventRepo.ListByVenue(ctx, venueID)
}

func (s *EventService) ListCreatedByUser(ctx context.Context, userID string) ([]*domain.Event, error) {
	return s.eventRepo.ListByOrganizer(ctx, userID)
}

func (s *EventService) ListJoinedByUser(ctx context.Context, userID string) ([]*domain.Event, error) {
	return s.eventRepo.ListJoinedByUser(ctx, userID)
}

func (s *EventService) ListPendingForOwner(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	return s.eventRepo.ListByOwnerAndStatus(ctx, ownerID, domain.StatusPending)
}

func (s *EventService) ListApprovedForOwner(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	return s.eventRepo.ListByOwnerAndStatus(ctx, ownerID, domain.StatusApproved)
}

// autoEnrollOrganizer gives the organizer the first seat of a freshly
// approved event. Already being enrolled is fine: creation-time and
// decision-time enrollment may both run for the same pair.
func (s *EventService) autoEnrollOrganizer(ctx context.Context, event *domain.Event) {
	_, err := s.participationRepo.Enroll(ctx, event.ID, event.OrganizerID)
	if err != nil && !errors.Is(err, domain.ErrAlreadyEnrolled) {
		s.logger.Error("organizer auto-enroll failed",
			logger.String("event_id", event.ID),
			logger.String("organizer_id", event.OrganizerID),
			logger.String("error", err.Error()),
		)
	}
}
