// Package memory provides in-memory implementations of the repository ports.
// A single store-wide mutex covers every mutation, so check-and-insert and
// the cascade deletes are atomic exactly like their SQL counterparts. Tests
// use this backend to exercise the concurrency properties without Postgres.
package memory

import (
	"sync"

	"github.com/Talts01/SocialPizza/internal/domain"
)

type Store struct {
	mu             sync.RWMutex
	users          map[string]*domain.User
	venues         map[string]*domain.Venue
	categories     map[string]*domain.Category
	events         map[string]*domain.Event
	participations map[string]*domain.Participation
}

func NewStore() *Store {
	return &Store{
		users:          make(map[string]*domain.User),
		venues:         make(map[string]*domain.Venue),
		categories:     make(map[string]*domain.Category),
		events:         make(map[string]*domain.Event),
		participations: make(map[string]*domain.Participation),
	}
}

func (s *Store) Events() *EventStore                 { return &EventStore{s} }
func (s *Store) Participations() *ParticipationStore { return &ParticipationStore{s} }
func (s *Store) Users() *UserStore                   { return &UserStore{s} }
func (s *Store) Venues() *VenueStore                 { return &VenueStore{s} }
func (s *Store) Categories() *CategoryStore          { return &CategoryStore{s} }

// purgeParticipationsLocked removes every participation matching the filter.
// Callers must hold the write lock.
func (s *Store) purgeParticipationsLocked(keep func(*domain.Participation) bool) {
	for id, p := range s.participations {
		if !keep(p) {
			delete(s.participations, id)
		}
	}
}
