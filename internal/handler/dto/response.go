package dto

import (
	"time"

	"github.com/Talts01/SocialPizza/internal/domain"
)

type EventResponse struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	EventDate        string `json:"event_date"`
	Capacity         int    `json:"capacity"`
	Status           string `json:"status"`
	OrganizerID      string `json:"organizer_id"`
	VenueID          string `json:"venue_id"`
	CategoryID       string `json:"category_id"`
	ModeratorComment string `json:"moderator_comment,omitempty"`
	RejectionReason  string `json:"rejection_reason,omitempty"`
	DecisionDate     string `json:"decision_date,omitempty"`
	CreatedAt        string `json:"created_at"`
}

type ParticipationResponse struct {
	ID           string `json:"id"`
	EventID      string `json:"event_id"`
	UserID       string `json:"user_id"`
	RegisteredAt string `json:"registered_at"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Surname   string `json:"surname,omitempty"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Bio       string `json:"bio,omitempty"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"created_at"`
}

type VenueResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Capacity  int    `json:"capacity"`
	OwnerID   string `json:"owner_id"`
	CreatedAt string `json:"created_at"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		ID:               e.ID,
		Title:            e.Title,
		Description:      e.Description,
		EventDate:        e.EventDate.Format(time.RFC3339),
		Capacity:         e.Capacity,
		Status:           string(e.Status),
		OrganizerID:      e.OrganizerID,
		VenueID:          e.VenueID,
		CategoryID:       e.CategoryID,
		ModeratorComment: e.ModeratorComment,
		RejectionReason:  e.RejectionReason,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
	if e.DecisionDate != nil {
		resp.DecisionDate = e.DecisionDate.Format(time.RFC3339)
	}
	return resp
}

func ToEventResponses(events []*domain.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventResponse(e))
	}
	return resp
}

func ToParticipationResponse(p *domain.Participation) ParticipationResponse {
	return ParticipationResponse{
		ID:           p.ID,
		EventID:      p.EventID,
		UserID:       p.UserID,
		RegisteredAt: p.RegisteredAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Surname:   u.Surname,
		Email:     u.Email,
		Role:      string(u.Role),
		Bio:       u.Bio,
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Address:   v.Address,
		City:      v.City,
		Capacity:  v.Capacity,
		OwnerID:   v.OwnerID,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
	}
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}
