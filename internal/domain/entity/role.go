// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the access level a user has in the system.
type Role string

const (
	// RoleUser indicates a regular member.
	RoleUser Role = "user"
	// RoleAdmin indicates a content administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole maps a stored role to a Role. Anything unknown is a regular user.
func ParseRole(s string) Role {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if role.IsValid() {
		return role
	}

	return RoleUser
}
