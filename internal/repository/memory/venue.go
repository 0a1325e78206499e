package memory

import (
	"context"
	"sort"

	"github.com/Talts01/SocialPizza/internal/domain"
)

type VenueStore struct {
	store *Store
}

func (s *VenueStore) Create(_ context.Context, v *domain.Venue) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	cp := *v
	s.store.venues[v.ID] = &cp

	return nil
}

func (s *VenueStore) GetByID(_ context.Context, id string) (*domain.Venue, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	v, ok := s.store.venues[id]
	if !ok {
		return nil, domain.ErrVenueNotFound
	}
	cp := *v
	return &cp, nil
}

func (s *VenueStore) List(_ context.Context) ([]*domain.Venue, error) {
	return s.list(func(*domain.Venue) bool { return true }), nil
}

func (s *VenueStore) ListByOwner(_ context.Context, ownerID string) ([]*domain.Venue, error) {
	return s.list(func(v *domain.Venue) bool { return v.OwnerID == ownerID }), nil
}

func (s *VenueStore) list(match func(*domain.Venue) bool) []*domain.Venue {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var res []*domain.Venue
	for _, v := range s.store.venues {
		if match(v) {
			cp := *v
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })

	return res
}

type CategoryStore struct {
	store *Store
}

func (s *CategoryStore) Create(_ context.Context, c *domain.Category) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	cp := *c
	s.store.categories[c.ID] = &cp

	return nil
}

func (s *CategoryStore) GetByID(_ context.Context, id string) (*domain.Category, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	c, ok := s.store.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *CategoryStore) List(_ context.Context) ([]*domain.Category, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	res := make([]*domain.Category, 0, len(s.store.categories))
	for _, c := range s.store.categories {
		cp := *c
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })

	return res, nil
}
