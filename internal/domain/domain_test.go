package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "APPROVED", "REJECTED"} {
		status, err := ParseEventStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(status))
	}

	for _, invalid := range []string{"", "approved", "CANCELLED", "MAYBE"} {
		_, err := ParseEventStatus(invalid)
		assert.ErrorIs(t, err, ErrValidation, invalid)
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleMember, role)

	role, err = ParseRole("venue_owner")
	require.NoError(t, err)
	assert.Equal(t, RoleVenueOwner, role)

	role, err = ParseRole("ADMIN")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = ParseRole("SUPERUSER")
	assert.ErrorIs(t, err, ErrValidation)
}
