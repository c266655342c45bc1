package domain

// Session is the client's record of the authenticated user and their bearer
// credential. Token and User are set and cleared together; a partial pair is
// treated as unauthenticated.
type Session struct {
	Token string
	User  *User
}

// IsAuthenticated reports whether both credential halves are present.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// IsClient reports whether the session belongs to a CLIENT user.
func (s Session) IsClient() bool {
	return s.IsAuthenticated() && s.User.Role == RoleClient
}

// IsAdmin reports whether the session belongs to an ADMIN user.
func (s Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.User.Role == RoleAdmin
}

// HomeRoute returns the landing route for the session's role, or /login when
// unauthenticated.
func (s Session) HomeRoute() string {
	if !s.IsAuthenticated() {
		return "/login"
	}
	return s.User.Role.HomeRoute()
}
