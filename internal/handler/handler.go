package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/Talts01/SocialPizza/internal/domain"
	"github.com/Talts01/SocialPizza/internal/handler/dto"
	"github.com/Talts01/SocialPizza/internal/metrics"
	"github.com/Talts01/SocialPizza/internal/middleware"
)

type EventSvc interface {
	Propose(ctx context.Context, input domain.ProposeEventInput, venueID, organizerID string) (*domain.Event, error)
	Decide(ctx context.Context, eventID, deciderID, decision, comment string) (*domain.Event, error)
	Withdraw(ctx context.Context, eventID, callerID string) error
	CancelApproved(ctx context.Context, eventID, callerID string) error
	AdminDelete(ctx context.Context, eventID string, callerRole domain.Role) error
	GetByID(ctx context.Context, eventID string) (*domain.Event, error)
	ListApproved(ctx context.Context) ([]*domain.Event, error)
	ListPublic(ctx context.Context) ([]*domain.Event, error)
	ListByVenue(ctx context.Context, venueID string) ([]*domain.Event, error)
	ListCreatedByUser(ctx context.Context, userID string) ([]*domain.Event, error)
	ListJoinedByUser(ctx context.Context, userID string) ([]*domain.Event, error)
	ListPendingForOwner(ctx context.Context, ownerID string) ([]*domain.Event, error)
	ListApprovedForOwner(ctx context.Context, ownerID string) ([]*domain.Event, error)
}

type EnrollmentSvc interface {
	Enroll(ctx context.Context, eventID, userID string) (*domain.Participation, error)
	Leave(ctx context.Context, eventID, userID string) error
	IsEnrolled(ctx context.Context, eventID, userID string) (bool, error)
	CountActive(ctx context.Context, eventID string) (int, error)
	ListParticipants(ctx context.Context, eventID string) ([]*domain.Participation, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Ban(ctx context.Context, targetID, adminID string) error
}

type VenueSvc interface {
	CreateVenue(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error)
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
	ListVenues(ctx context.Context) ([]*domain.Venue, error)
	ListVenuesByOwner(ctx context.Context, ownerID string) ([]*domain.Venue, error)
	CreateCategory(ctx context.Context, name, description string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}

type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

type Handler struct {
	eventService      EventSvc
	enrollmentService EnrollmentSvc
	userService       UserSvc
	venueService      VenueSvc
	tokens            TokenIssuer
	metrics           *metrics.Metrics
}

func NewHandler(
	eventService EventSvc,
	enrollmentService EnrollmentSvc,
	userService UserSvc,
	venueService VenueSvc,
	tokens TokenIssuer,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		eventService:      eventService,
		enrollmentService: enrollmentService,
		userService:       userService,
		venueService:      venueService,
		tokens:            tokens,
		metrics:           m,
	}
}

func callerID(c *ginext.Context) string {
	return c.GetString(middleware.CallerIDKey)
}

func callerRole(c *ginext.Context) domain.Role {
	return domain.Role(c.GetString(middleware.CallerRoleKey))
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterUserInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Bio:      req.Bio,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TokenResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

func (h *Handler) Me(c *ginext.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Events

func (h *Handler) ProposeEvent(c *ginext.Context) {
	var req dto.ProposeEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	input := domain.ProposeEventInput{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   eventDate,
		Capacity:    req.Capacity,
		CategoryID:  req.CategoryID,
	}

	event, err := h.eventService.Propose(c.Request.Context(), input, req.VenueID, callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.ListApproved(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) ListFeed(c *ginext.Context) {
	events, err := h.eventService.ListPublic(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) ListEventsByVenue(c *ginext.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	events, err := h.eventService.ListByVenue(c.Request.Context(), venueID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) ListCreatedEvents(c *ginext.Context) {
	events, err := h.eventService.ListCreatedByUser(c.Request.Context(), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) ListJoinedEvents(c *ginext.Context) {
	events, err := h.eventService.ListJoinedByUser(c.Request.Context(), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) ListPendingForOwner(c *ginext.Context) {
	events, err := h.eventService.ListPendingForOwner(c.Request.Context(), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) ListApprovedForOwner(c *ginext.Context) {
	events, err := h.eventService.ListApprovedForOwner(c.Request.Context(), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) DecideEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.Decide(c.Request.Context(), eventID, callerID(c), req.Decision, req.Comment)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.metrics.IncrementDecision(string(event.Status))

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) WithdrawEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.Withdraw(c.Request.Context(), eventID, callerID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "withdrawn"})
}

func (h *Handler) CancelEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.CancelApproved(c.Request.Context(), eventID, callerID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// Participation

func (h *Handler) JoinEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	p, err := h.enrollmentService.Enroll(c.Request.Context(), eventID, callerID(c))
	if err != nil {
		h.metrics.IncrementEnrollment(enrollmentOutcome(err))
		h.handleError(c, err)
		return
	}

	h.metrics.IncrementEnrollment("ok")

	c.JSON(http.StatusCreated, dto.ToParticipationResponse(p))
}

func (h *Handler) LeaveEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.enrollmentService.Leave(c.Request.Context(), eventID, callerID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "left"})
}

func (h *Handler) IsParticipating(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	enrolled, err := h.enrollmentService.IsEnrolled(c.Request.Context(), eventID, callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"participating": enrolled})
}

func (h *Handler) ListParticipants(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	participants, err := h.enrollmentService.ListParticipants(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ParticipationResponse, 0, len(participants))
	for _, p := range participants {
		resp = append(resp, dto.ToParticipationResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

// Venues and categories

func (h *Handler) ListVenues(c *ginext.Context) {
	venues, err := h.venueService.ListVenues(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		resp = append(resp, dto.ToVenueResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetVenue(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	venue, err := h.venueService.GetVenue(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *Handler) ListMyVenues(c *ginext.Context) {
	venues, err := h.venueService.ListVenuesByOwner(c.Request.Context(), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		resp = append(resp, dto.ToVenueResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.venueService.ListCategories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, dto.ToCategoryResponse(cat))
	}

	c.JSON(http.StatusOK, resp)
}

// Admin

func (h *Handler) CreateVenue(c *ginext.Context) {
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	venue, err := h.venueService.CreateVenue(c.Request.Context(), domain.CreateVenueInput{
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		Capacity: req.Capacity,
		OwnerID:  req.OwnerID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *Handler) CreateCategory(c *ginext.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.venueService.CreateCategory(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) BanUser(c *ginext.Context) {
	targetID := c.Param("id")
	if _, err := uuid.Parse(targetID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	if err := h.userService.Ban(c.Request.Context(), targetID, callerID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "banned"})
}

func (h *Handler) AdminDeleteEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.AdminDelete(c.Request.Context(), eventID, callerRole(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func enrollmentOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrCapacityExceeded):
		return "full"
	case errors.Is(err, domain.ErrAlreadyEnrolled):
		return "duplicate"
	default:
		return "error"
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrVenueNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrAlreadyEnrolled),
		errors.Is(err, domain.ErrNotEnrolled),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
