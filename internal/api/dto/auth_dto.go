package dto

import "github.com/SohamMhatre7788/insurai/internal/domain"

// SignupRequest payload for new client accounts.
type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the backend's reply to signup and login: the bearer token
// plus the flattened user fields.
type AuthResponse struct {
	Token     string      `json:"token"`
	UserID    int64       `json:"userId"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
}

// User assembles the domain user carried by the response.
func (r AuthResponse) User() domain.User {
	return domain.User{
		ID:        r.UserID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Role:      r.Role,
	}
}
