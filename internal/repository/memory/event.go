package memory

import (
	"context"
	"sort"
	"time"

	"github.com/Talts01/SocialPizza/internal/domain"
)

type EventStore struct {
	store *Store
}

func (s *EventStore) Create(_ context.Context, e *domain.Event) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	cp := *e
	s.store.events[e.ID] = &cp

	return nil
}

func (s *EventStore) GetByID(_ context.Context, id string) (*domain.Event, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	e, ok := s.store.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (s *EventStore) ApplyDecision(_ context.Context, eventID string, status domain.EventStatus, comment, reason string, decidedAt time.Time) (*domain.Event, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	e, ok := s.store.events[eventID]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	if e.Status != domain.StatusPending {
		return nil, domain.ErrInvalidState
	}

	e.Status = status
	e.ModeratorComment = comment
	e.RejectionReason = reason
	d := decidedAt
	e.DecisionDate = &d
	e.UpdatedAt = time.Now().UTC()

	cp := *e
	return &cp, nil
}

func (s *EventStore) DeletePending(_ context.Context, id string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	e, ok := s.store.events[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	if e.Status != domain.StatusPending {
		return domain.ErrInvalidState
	}
	delete(s.store.events, id)

	return nil
}

func (s *EventStore) DeleteCascade(_ context.Context, id string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, ok := s.store.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	s.store.purgeParticipationsLocked(func(p *domain.Participation) bool {
		return p.EventID != id
	})
	delete(s.store.events, id)

	return nil
}

func (s *EventStore) ListByStatus(_ context.Context, statuses ...domain.EventStatus) ([]*domain.Event, error) {
	wanted := make(map[domain.EventStatus]bool, len(statuses))
	for _, st := range statuses {
		wanted[st] = true
	}
	return s.list(func(e *domain.Event) bool { return wanted[e.Status] }), nil
}

func (s *EventStore) ListByVenue(_ context.Context, venueID string) ([]*domain.Event, error) {
	return s.list(func(e *domain.Event) bool { return e.VenueID == venueID }), nil
}

func (s *EventStore) ListByOrganizer(_ context.Context, organizerID string) ([]*domain.Event, error) {
	return s.list(func(e *domain.Event) bool { return e.OrganizerID == organizerID }), nil
}

func (s *EventStore) ListJoinedByUser(_ context.Context, userID string) ([]*domain.Event, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	joined := make(map[string]bool)
	for _, p := range s.store.participations {
		if p.UserID == userID {
			joined[p.EventID] = true
		}
	}

	var res []*domain.Event
	for id, e := range s.store.events {
		if joined[id] {
			cp := *e
			res = append(res, &cp)
		}
	}
	sortByDate(res)

	return res, nil
}

func (s *EventStore) ListByOwnerAndStatus(_ context.Context, ownerID string, status domain.EventStatus) ([]*domain.Event, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	owned := make(map[string]bool)
	for id, v := range s.store.venues {
		if v.OwnerID == ownerID {
			owned[id] = true
		}
	}

	var res []*domain.Event
	for _, e := range s.store.events {
		if owned[e.VenueID] && e.Status == status {
			cp := *e
			res = append(res, &cp)
		}
	}
	sortByDate(res)

	return res, nil
}

func (s *EventStore) list(match func(*domain.Event) bool) []*domain.Event {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var res []*domain.Event
	for _, e := range s.store.events {
		if match(e) {
			cp := *e
			res = append(res, &cp)
		}
	}
	sortByDate(res)

	return res
}

func sortByDate(events []*domain.Event) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].EventDate.Before(events[j].EventDate)
	})
}
