// Package entity defines the core business entities for the domain layer.
package entity

// User represents the authenticated account returned by the remote API.
type User struct {
	ID        *int64
	Username  string
	Email     string
	FirstName string
	LastName  string
	Role      string
	Token     string
}

// Session is what the web tier keeps for a logged-in browser.
type Session struct {
	ID    string
	Token string
	User  *User
}

// HasRole reports whether the session user has the given role.
func (s *Session) HasRole(role string) bool {
	return s != nil && s.User != nil && s.User.Role == role
}
