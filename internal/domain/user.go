package domain

import (
	"strings"
	"time"
)

// Role is the access level of a user. The set of roles is closed.
type Role string

// Recognized roles.
const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleUser    Role = "USER"
)

// Roles lists every recognized role.
var Roles = []Role{RoleAdmin, RoleManager, RoleUser}

// ParseRole normalizes s (trimmed, case-insensitive) to a recognized Role.
// It returns a *ValidationError when s matches no role.
func ParseRole(s string) (Role, error) {
	normalized := Role(strings.ToUpper(strings.TrimSpace(s)))
	for _, r := range Roles {
		if r == normalized {
			return r, nil
		}
	}
	return "", NewValidationError("role", Message(MsgInvalidRole), nil)
}

// User is a person who can own assets.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"-"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Validate checks that a user is ready to be persisted.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return NewValidationError("name", Message(MsgRequired), nil)
	}
	if strings.TrimSpace(u.Email) == "" {
		return NewValidationError("email", Message(MsgRequired), nil)
	}
	if u.PasswordDigest == "" {
		return NewValidationError("password", Message(MsgRequired), nil)
	}
	if _, err := ParseRole(string(u.Role)); err != nil {
		return err
	}
	return nil
}
