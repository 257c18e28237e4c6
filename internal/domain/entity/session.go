package entity

// Identity is what the identity provider knows about a signed-in person.
type Identity struct {
	UID         string
	DisplayName string
	Email       string
}

// Session is an authenticated identity together with its resolved role.
// It is built once per request after the token has been verified.
type Session struct {
	Identity
	Role Role
}

// IsAdmin reports whether the session may use the admin area.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
