package api

import (
	"context"
	"fmt"

	"github.com/SohamMhatre7788/insurai/internal/api/dto"
	"github.com/SohamMhatre7788/insurai/internal/domain"
	"github.com/SohamMhatre7788/insurai/internal/validate"
)

// ClientPolicyService maps the authenticated client-policy endpoints.
type ClientPolicyService struct {
	client *Client
}

// NewClientPolicyService constructs the service.
func NewClientPolicyService(client *Client) *ClientPolicyService {
	return &ClientPolicyService{client: client}
}

// Buy purchases a catalog policy for the caller's company. Premium and
// coverage are snapshotted server-side at purchase time.
func (s *ClientPolicyService) Buy(ctx context.Context, req dto.BuyPolicyRequest) (*domain.ClientPolicy, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var purchased domain.ClientPolicy
	if err := s.client.postJSON(ctx, "/client-policies", nil, req, &purchased); err != nil {
		return nil, err
	}
	return &purchased, nil
}

// List fetches the caller's purchased policies.
func (s *ClientPolicyService) List(ctx context.Context) ([]domain.ClientPolicy, error) {
	var policies []domain.ClientPolicy
	if err := s.client.get(ctx, "/client-policies", nil, &policies); err != nil {
		return nil, err
	}
	return policies, nil
}

// Get fetches one purchased policy.
func (s *ClientPolicyService) Get(ctx context.Context, id int64) (*domain.ClientPolicy, error) {
	var policy domain.ClientPolicy
	if err := s.client.get(ctx, fmt.Sprintf("/client-policies/%d", id), nil, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

// Renew extends a purchased policy for another period.
func (s *ClientPolicyService) Renew(ctx context.Context, id int64) (*domain.ClientPolicy, error) {
	var renewed domain.ClientPolicy
	if err := s.client.postJSON(ctx, fmt.Sprintf("/client-policies/%d/renew", id), nil, nil, &renewed); err != nil {
		return nil, err
	}
	return &renewed, nil
}
