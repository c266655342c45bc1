package domain

// Role determines which screens and backend routes a user may reach.
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAdmin  Role = "ADMIN"
)

// HomeRoute returns the landing route for the role.
func (r Role) HomeRoute() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleClient:
		return "/client"
	default:
		return "/login"
	}
}

// Valid reports whether the role is one the backend issues.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleAdmin
}

// User is the authenticated account as the backend describes it. The id key
// is "userId" on the wire and in durable storage, matching the auth response.
type User struct {
	ID        int64  `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
