package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of caller roles.
type Role string

const (
	RoleMember     Role = "MEMBER"
	RoleVenueOwner Role = "VENUE_OWNER"
	RoleAdmin      Role = "ADMIN"
)

// ParseRole validates a role arriving from an external boundary. The empty
// string defaults to MEMBER.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleMember, nil
	}
	switch Role(strings.ToUpper(s)) {
	case RoleMember, RoleVenueOwner, RoleAdmin:
		return Role(strings.ToUpper(s)), nil
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Bio          string    `json:"bio,omitempty"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
}

type RegisterUserInput struct {
	Name     string
	Surname  string
	Email    string
	Password string
	Role     string
	Bio      string
}
