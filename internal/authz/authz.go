// Package authz holds the moderation policy checks. Every function is a pure
// predicate over caller identity and target state; callers thread identity in
// explicitly instead of reading it from ambient session state.
package authz

import (
	"fmt"

	"github.com/Talts01/SocialPizza/internal/domain"
)

// CanWithdraw allows the organizer to retract their own proposal while it is
// still pending.
func CanWithdraw(callerID string, event *domain.Event) error {
	if event.OrganizerID != callerID {
		return fmt.Errorf("%w: only the organizer may withdraw a proposal", domain.ErrForbidden)
	}
	if event.Status != domain.StatusPending {
		return fmt.Errorf("%w: only pending proposals can be withdrawn", domain.ErrInvalidState)
	}
	return nil
}

// CanModerate allows the venue owner to approve or reject proposals at their
// own venue.
func CanModerate(callerID string, venue *domain.Venue) error {
	if venue.OwnerID != callerID {
		return fmt.Errorf("%w: only the venue owner may moderate events at this venue", domain.ErrForbidden)
	}
	return nil
}

// CanCancel allows the venue owner to cancel an approved event at their venue.
func CanCancel(callerID string, event *domain.Event, venue *domain.Venue) error {
	if venue.OwnerID != callerID {
		return fmt.Errorf("%w: only the venue owner may cancel this event", domain.ErrForbidden)
	}
	if event.Status != domain.StatusApproved {
		return fmt.Errorf("%w: only approved events can be cancelled", domain.ErrInvalidState)
	}
	return nil
}

// CanAdminDelete allows unconditional deletion for administrators only.
func CanAdminDelete(callerRole domain.Role) error {
	if callerRole != domain.RoleAdmin {
		return fmt.Errorf("%w: only an administrator may delete events unconditionally", domain.ErrForbidden)
	}
	return nil
}

// CanBan forbids self-bans and bans of other administrators.
func CanBan(admin, target *domain.User) error {
	if admin.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: only an administrator may ban users", domain.ErrForbidden)
	}
	if admin.ID == target.ID {
		return fmt.Errorf("%w: administrators cannot ban themselves", domain.ErrForbidden)
	}
	if target.Role == domain.RoleAdmin {
		return fmt.Errorf("%w: administrators cannot be banned", domain.ErrForbidden)
	}
	return nil
}
