package api

import (
	"context"

	"github.com/SohamMhatre7788/insurai/internal/api/dto"
	"github.com/SohamMhatre7788/insurai/internal/validate"
)

// AuthService maps the public auth endpoints. It only exchanges requests
// for responses; storing the resulting session is the caller's business.
type AuthService struct {
	client *Client
}

// NewAuthService constructs the service.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Signup registers a new client account. New accounts always carry the
// CLIENT role.
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var res dto.AuthResponse
	if err := s.client.postJSON(ctx, "/auth/signup", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Login exchanges credentials for a token and the user's profile fields.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var res dto.AuthResponse
	if err := s.client.postJSON(ctx, "/auth/login", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
