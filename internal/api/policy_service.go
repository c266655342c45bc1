package api

import (
	"context"
	"fmt"

	"github.com/SohamMhatre7788/insurai/internal/domain"
)

// PolicyService reads the public policy catalog.
type PolicyService struct {
	client *Client
}

// NewPolicyService constructs the service.
func NewPolicyService(client *Client) *PolicyService {
	return &PolicyService{client: client}
}

// List fetches the whole catalog.
func (s *PolicyService) List(ctx context.Context) ([]domain.Policy, error) {
	var policies []domain.Policy
	if err := s.client.get(ctx, "/policies", nil, &policies); err != nil {
		return nil, err
	}
	return policies, nil
}

// Get fetches one catalog policy.
func (s *PolicyService) Get(ctx context.Context, id int64) (*domain.Policy, error) {
	var policy domain.Policy
	if err := s.client.get(ctx, fmt.Sprintf("/policies/%d", id), nil, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}
