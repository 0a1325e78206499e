package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Talts01/SocialPizza/internal/domain"
)

type ParticipationStore struct {
	store *Store
}

// Enroll performs the whole status/duplicate/capacity check-and-insert under
// the store lock; racing callers serialize here just as Postgres callers
// serialize on the event row lock.
func (s *ParticipationStore) Enroll(_ context.Context, eventID, userID string) (*domain.Participation, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	e, ok := s.store.events[eventID]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	if e.Status != domain.StatusApproved {
		return nil, domain.ErrInvalidState
	}

	active := 0
	for _, p := range s.store.participations {
		if p.EventID != eventID {
			continue
		}
		if p.UserID == userID {
			return nil, domain.ErrAlreadyEnrolled
		}
		active++
	}
	if active >= e.Capacity {
		return nil, domain.ErrCapacityExceeded
	}

	p := &domain.Participation{
		ID:           uuid.New().String(),
		EventID:      eventID,
		UserID:       userID,
		RegisteredAt: time.Now().UTC(),
	}
	s.store.participations[p.ID] = p

	cp := *p
	return &cp, nil
}

func (s *ParticipationStore) Remove(_ context.Context, eventID, userID string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for id, p := range s.store.participations {
		if p.EventID == eventID && p.UserID == userID {
			delete(s.store.participations, id)
			return nil
		}
	}

	return domain.ErrNotEnrolled
}

func (s *ParticipationStore) Exists(_ context.Context, eventID, userID string) (bool, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	for _, p := range s.store.participations {
		if p.EventID == eventID && p.UserID == userID {
			return true, nil
		}
	}

	return false, nil
}

func (s *ParticipationStore) CountByEvent(_ context.Context, eventID string) (int, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	count := 0
	for _, p := range s.store.participations {
		if p.EventID == eventID {
			count++
		}
	}

	return count, nil
}

func (s *ParticipationStore) ListByEvent(_ context.Context, eventID string) ([]*domain.Participation, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var res []*domain.Participation
	for _, p := range s.store.participations {
		if p.EventID == eventID {
			cp := *p
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].RegisteredAt.Before(res[j].RegisteredAt)
	})

	return res, nil
}
