package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Talts01/SocialPizza/internal/domain"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, err := m.Issue(&domain.User{ID: "u1", Role: domain.RoleVenueOwner})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, domain.RoleVenueOwner, claims.Role)
	assert.Equal(t, "u1", claims.Subject)
}

func TestTokenManager_Parse_Expired(t *testing.T) {
	m := NewTokenManager("secret", -time.Minute)

	token, err := m.Issue(&domain.User{ID: "u1", Role: domain.RoleMember})
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestTokenManager_Parse_WrongKey(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(&domain.User{ID: "u1", Role: domain.RoleMember})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestTokenManager_Parse_Garbage(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	_, err := m.Parse("not.a.token")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = m.Parse("")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
