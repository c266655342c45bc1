package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/SohamMhatre7788/insurai/internal/api/dto"
	"github.com/SohamMhatre7788/insurai/internal/domain"
	"github.com/SohamMhatre7788/insurai/internal/validate"
)

// ProfileService maps the profile endpoints. The backend keys these by a
// userId query parameter rather than a path segment; that quirk is part of
// the contract and preserved here.
type ProfileService struct {
	client *Client
}

// NewProfileService constructs the service.
func NewProfileService(client *Client) *ProfileService {
	return &ProfileService{client: client}
}

// Get fetches the profile of the given user.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.User, error) {
	var profile domain.User
	if err := s.client.get(ctx, "/client/me", userQuery(userID), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update replaces the editable profile fields.
func (s *ProfileService) Update(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*domain.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var profile domain.User
	if err := s.client.putJSON(ctx, "/client/me", userQuery(userID), req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ChangePassword rotates the account password.
func (s *ProfileService) ChangePassword(ctx context.Context, userID int64, req dto.ChangePasswordRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	return s.client.putJSON(ctx, "/client/me/password", userQuery(userID), req, nil)
}

func userQuery(userID int64) url.Values {
	return url.Values{"userId": []string{strconv.FormatInt(userID, 10)}}
}
