package domain

import (
	"errors"
	"strings"
)

// Role represents the caller role attached to mutating requests.
// There are exactly two roles; anything else is rejected at the boundary.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleStaff Role = "Staff"
)

// ErrUnknownRole is returned when a string cannot be parsed as a role.
var ErrUnknownRole = errors.New("unknown role")

// Validate returns nil if the role is one of the known values.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleStaff:
		return nil
	default:
		return ErrUnknownRole
	}
}

// CanEdit returns true if the role is allowed to update vehicle records.
func (r Role) CanEdit() bool {
	return r == RoleAdmin
}

// CanDelete returns true if the role is allowed to delete vehicle records.
func (r Role) CanDelete() bool {
	return r == RoleAdmin
}

// ParseRole parses a role string, accepting any letter casing.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "staff":
		return RoleStaff, nil
	default:
		return "", ErrUnknownRole
	}
}
