package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Talts01/SocialPizza/internal/domain"
)

func TestCanWithdraw(t *testing.T) {
	pending := &domain.Event{ID: "e1", OrganizerID: "u1", Status: domain.StatusPending}
	approved := &domain.Event{ID: "e2", OrganizerID: "u1", Status: domain.StatusApproved}

	assert.NoError(t, CanWithdraw("u1", pending))
	assert.ErrorIs(t, CanWithdraw("u2", pending), domain.ErrForbidden)
	assert.ErrorIs(t, CanWithdraw("u1", approved), domain.ErrInvalidState)
}

func TestCanModerate(t *testing.T) {
	venue := &domain.Venue{ID: "v1", OwnerID: "owner"}

	assert.NoError(t, CanModerate("owner", venue))
	assert.ErrorIs(t, CanModerate("u1", venue), domain.ErrForbidden)
}

func TestCanCancel(t *testing.T) {
	venue := &domain.Venue{ID: "v1", OwnerID: "owner"}
	approved := &domain.Event{ID: "e1", OrganizerID: "u1", VenueID: "v1", Status: domain.StatusApproved}
	pending := &domain.Event{ID: "e2", OrganizerID: "u1", VenueID: "v1", Status: domain.StatusPending}

	assert.NoError(t, CanCancel("owner", approved, venue))
	assert.ErrorIs(t, CanCancel("u1", approved, venue), domain.ErrForbidden)
	assert.ErrorIs(t, CanCancel("owner", pending, venue), domain.ErrInvalidState)
}

func TestCanAdminDelete(t *testing.T) {
	assert.NoError(t, CanAdminDelete(domain.RoleAdmin))
	assert.ErrorIs(t, CanAdminDelete(domain.RoleVenueOwner), domain.ErrForbidden)
	assert.ErrorIs(t, CanAdminDelete(domain.RoleMember), domain.ErrForbidden)
}

func TestCanBan(t *testing.T) {
	admin := &domain.User{ID: "a1", Role: domain.RoleAdmin}
	admin2 := &domain.User{ID: "a2", Role: domain.RoleAdmin}
	member := &domain.User{ID: "u1", Role: domain.RoleMember}
	owner := &domain.User{ID: "o1", Role: domain.RoleVenueOwner}

	assert.NoError(t, CanBan(admin, member))
	assert.NoError(t, CanBan(admin, owner))
	assert.ErrorIs(t, CanBan(member, owner), domain.ErrForbidden)
	assert.ErrorIs(t, CanBan(admin, admin), domain.ErrForbidden)
	assert.ErrorIs(t, CanBan(admin, admin2), domain.ErrForbidden)
}
