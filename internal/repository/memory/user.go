package memory

import (
	"context"
	"sort"

	"github.com/Talts01/SocialPizza/internal/domain"
)

type UserStore struct {
	store *Store
}

func (s *UserStore) Create(_ context.Context, user *domain.User) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for _, u := range s.store.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	cp := *user
	s.store.users[user.ID] = &cp

	return nil
}

func (s *UserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	u, ok := s.store.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	for _, u := range s.store.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}

	return nil, domain.ErrUserNotFound
}

func (s *UserStore) List(_ context.Context) ([]*domain.User, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	res := make([]*domain.User, 0, len(s.store.users))
	for _, u := range s.store.users {
		cp := *u
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })

	return res, nil
}

func (s *UserStore) BanCascade(_ context.Context, userID string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, ok := s.store.users[userID]; !ok {
		return domain.ErrUserNotFound
	}

	doomed := make(map[string]bool)
	for id, v := range s.store.venues {
		if v.OwnerID == userID {
			for eid, e := range s.store.events {
				if e.VenueID == id {
					doomed[eid] = true
				}
			}
			delete(s.store.venues, id)
		}
	}
	for eid, e := range s.store.events {
		if e.OrganizerID == userID {
			doomed[eid] = true
		}
	}

	s.store.purgeParticipationsLocked(func(p *domain.Participation) bool {
		return !doomed[p.EventID] && p.UserID != userID
	})
	for eid := range doomed {
		delete(s.store.events, eid)
	}
	delete(s.store.users, userID)

	return nil
}
