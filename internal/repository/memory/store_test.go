package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/Talts01/SocialPizza/internal/domain"
)

func seedApprovedEvent(t *testing.T, s *Store, capacity int) *domain.Event {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.Users().Create(ctx, &domain.User{ID: "owner", Email: "owner@x.io", Role: domain.RoleVenueOwner}))
	require.NoError(t, s.Venues().Create(ctx, &domain.Venue{ID: "v1", Name: "Da Mario", Capacity: 100, OwnerID: "owner"}))
	require.NoError(t, s.Categories().Create(ctx, &domain.Category{ID: "cat1", Name: "pizza"}))

	event := &domain.Event{
		ID:          "e1",
		Title:       "Pizza night",
		EventDate:   time.Now().Add(24 * time.Hour),
		Capacity:    capacity,
		Status:      domain.StatusApproved,
		OrganizerID: "owner",
		VenueID:     "v1",
		CategoryID:  "cat1",
	}
	require.NoError(t, s.Events().Create(ctx, event))

	return event
}

func TestEnroll_CapacityUnderContention(t *testing.T) {
	const capacity = 3
	const racers = 20

	s := NewStore()
	seedApprovedEvent(t, s, capacity)
	ctx := context.Background()

	results := make([]error, racers)
	var g errgroup.Group
	for i := 0; i < racers; i++ {
		i := i
		g.Go(func() error {
			_, err := s.Participations().Enroll(ctx, "e1", fmt.Sprintf("user-%d", i))
			results[i] = err
			return nil
		})
	}
	require.NoError(t, g.Wait())

	won := 0
	for _, err := range results {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
		}
	}
	assert.Equal(t, capacity, won)

	count, err := s.Participations().CountByEvent(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, capacity, count)
}

func TestEnroll_Duplicate(t *testing.T) {
	s := NewStore()
	seedApprovedEvent(t, s, 5)
	ctx := context.Background()

	_, err := s.Participations().Enroll(ctx, "e1", "u1")
	require.NoError(t, err)

	_, err = s.Participations().Enroll(ctx, "e1", "u1")
	assert.ErrorIs(t, err, domain.ErrAlreadyEnrolled)

	count, err := s.Participations().CountByEvent(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEnroll_OnlyApprovedEvents(t *testing.T) {
	s := NewStore()
	event := seedApprovedEvent(t, s, 5)
	ctx := context.Background()

	event.ID = "e2"
	event.Status = domain.StatusPending
	require.NoError(t, s.Events().Create(ctx, event))

	_, err := s.Participations().Enroll(ctx, "e2", "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = s.Participations().Enroll(ctx, "missing", "u1")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEnroll_SeatFreedByLeave(t *testing.T) {
	s := NewStore()
	seedApprovedEvent(t, s, 1)
	ctx := context.Background()

	_, err := s.Participations().Enroll(ctx, "e1", "u1")
	require.NoError(t, err)

	_, err = s.Participations().Enroll(ctx, "e1", "u2")
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)

	require.NoError(t, s.Participations().Remove(ctx, "e1", "u1"))

	_, err = s.Participations().Enroll(ctx, "e1", "u2")
	require.NoError(t, err)

	assert.ErrorIs(t, s.Participations().Remove(ctx, "e1", "u1"), domain.ErrNotEnrolled)
}

func TestDeleteCascade_RacingEnrollments(t *testing.T) {
	s := NewStore()
	seedApprovedEvent(t, s, 50)
	ctx := context.Background()

	var g errgroup.Group
	for i := 0; i < 20; i++ {
		i := i
		g.Go(func() error {
			_, err := s.Participations().Enroll(ctx, "e1", fmt.Sprintf("user-%d", i))
			if err != nil && !errors.Is(err, domain.ErrEventNotFound) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		return s.Events().DeleteCascade(ctx, "e1")
	})
	require.NoError(t, g.Wait())

	// Whatever interleaving happened, no participation may survive the event.
	count, err := s.Participations().CountByEvent(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = s.Events().GetByID(ctx, "e1")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestApplyDecision_Terminal(t *testing.T) {
	s := NewStore()
	event := seedApprovedEvent(t, s, 5)
	ctx := context.Background()

	event.ID = "e2"
	event.Status = domain.StatusPending
	require.NoError(t, s.Events().Create(ctx, event))

	decided, err := s.Events().ApplyDecision(ctx, "e2", domain.StatusRejected, "", "too loud", time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, decided.Status)
	assert.Equal(t, "too loud", decided.RejectionReason)
	require.NotNil(t, decided.DecisionDate)

	_, err = s.Events().ApplyDecision(ctx, "e2", domain.StatusApproved, "", "", time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestBanCascade(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	// The banned user owns a venue with one event, organized another event at
	// a foreign venue, and joined an unrelated event.
	require.NoError(t, s.Users().Create(ctx, &domain.User{ID: "banned", Email: "b@x.io", Role: domain.RoleVenueOwner}))
	require.NoError(t, s.Users().Create(ctx, &domain.User{ID: "bystander", Email: "s@x.io", Role: domain.RoleVenueOwner}))

	require.NoError(t, s.Venues().Create(ctx, &domain.Venue{ID: "v-banned", Capacity: 50, OwnerID: "banned"}))
	require.NoError(t, s.Venues().Create(ctx, &domain.Venue{ID: "v-other", Capacity: 50, OwnerID: "bystander"}))

	mkEvent := func(id, organizer, venue string) {
		require.NoError(t, s.Events().Create(ctx, &domain.Event{
			ID: id, Title: id, EventDate: time.Now().Add(24 * time.Hour),
			Capacity: 10, Status: domain.StatusApproved,
			OrganizerID: organizer, VenueID: venue, CategoryID: "cat1",
		}))
	}
	mkEvent("e-at-banned-venue", "bystander", "v-banned")
	mkEvent("e-organized", "banned", "v-other")
	mkEvent("e-unrelated", "bystander", "v-other")

	for _, pair := range [][2]string{
		{"e-at-banned-venue", "bystander"},
		{"e-organized", "bystander"},
		{"e-unrelated", "banned"},
		{"e-unrelated", "bystander"},
	} {
		_, err := s.Participations().Enroll(ctx, pair[0], pair[1])
		require.NoError(t, err)
	}

	require.NoError(t, s.Users().BanCascade(ctx, "banned"))

	_, err := s.Users().GetByID(ctx, "banned")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = s.Venues().GetByID(ctx, "v-banned")
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)

	for _, id := range []string{"e-at-banned-venue", "e-organized"} {
		_, err = s.Events().GetByID(ctx, id)
		assert.ErrorIs(t, err, domain.ErrEventNotFound, id)
	}

	// The unrelated event survives, minus the banned user's seat.
	_, err = s.Events().GetByID(ctx, "e-unrelated")
	require.NoError(t, err)
	count, err := s.Participations().CountByEvent(ctx, "e-unrelated")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	enrolled, err := s.Participations().Exists(ctx, "e-unrelated", "bystander")
	require.NoError(t, err)
	assert.True(t, enrolled)

	_, err = s.Users().GetByID(ctx, "bystander")
	assert.NoError(t, err)
}

func TestBanCascade_UnderConcurrentEnrollment(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Users().Create(ctx, &domain.User{ID: "banned", Email: "b@x.io", Role: domain.RoleVenueOwner}))
	require.NoError(t, s.Venues().Create(ctx, &domain.Venue{ID: "v1", Capacity: 100, OwnerID: "banned"}))
	require.NoError(t, s.Events().Create(ctx, &domain.Event{
		ID: "e1", EventDate: time.Now().Add(24 * time.Hour), Capacity: 50,
		Status: domain.StatusApproved, OrganizerID: "banned", VenueID: "v1", CategoryID: "cat1",
	}))

	var g errgroup.Group
	for i := 0; i < 20; i++ {
		i := i
		g.Go(func() error {
			_, err := s.Participations().Enroll(ctx, "e1", fmt.Sprintf("user-%d", i))
			if err != nil && !errors.Is(err, domain.ErrEventNotFound) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		return s.Users().BanCascade(ctx, "banned")
	})
	require.NoError(t, g.Wait())

	count, err := s.Participations().CountByEvent(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestUserStore_EmailUniqueness(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Users().Create(ctx, &domain.User{ID: "u1", Email: "a@x.io"}))

	err := s.Users().Create(ctx, &domain.User{ID: "u2", Email: "a@x.io"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}
