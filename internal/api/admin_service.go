package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/SohamMhatre7788/insurai/internal/api/dto"
	"github.com/SohamMhatre7788/insurai/internal/domain"
	"github.com/SohamMhatre7788/insurai/internal/validate"
	"github.com/SohamMhatre7788/insurai/pkg/util"
)

// AdminService maps the admin-only endpoints: policy management, claim
// adjudication and user management.
type AdminService struct {
	client *Client
}

// NewAdminService constructs the service.
func NewAdminService(client *Client) *AdminService {
	return &AdminService{client: client}
}

// CreatePolicy adds a catalog policy. The backend accepts this endpoint
// only as multipart form data, even when no document is attached.
func (s *AdminService) CreatePolicy(ctx context.Context, input dto.PolicyInput) (*domain.Policy, error) {
	if err := validatePolicyInput(input); err != nil {
		return nil, err
	}
	var policy domain.Policy
	if err := s.client.postMultipart(ctx, "/admin/policies", policyForm(input), &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

// UpdatePolicy replaces a catalog policy, multipart like creation.
func (s *AdminService) UpdatePolicy(ctx context.Context, id int64, input dto.PolicyInput) (*domain.Policy, error) {
	if err := validatePolicyInput(input); err != nil {
		return nil, err
	}
	var policy domain.Policy
	if err := s.client.putMultipart(ctx, fmt.Sprintf("/admin/policies/%d", id), policyForm(input), &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

// ListPolicies fetches the catalog through the admin view.
func (s *AdminService) ListPolicies(ctx context.Context) ([]domain.Policy, error) {
	var policies []domain.Policy
	if err := s.client.get(ctx, "/admin/policies", nil, &policies); err != nil {
		return nil, err
	}
	return policies, nil
}

// GetPolicy fetches one catalog policy through the admin view.
func (s *AdminService) GetPolicy(ctx context.Context, id int64) (*domain.Policy, error) {
	var policy domain.Policy
	if err := s.client.get(ctx, fmt.Sprintf("/admin/policies/%d", id), nil, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

// DeletePolicy removes a catalog policy.
func (s *AdminService) DeletePolicy(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/admin/policies/%d", id), nil, nil)
}

// ListClaims fetches claims, optionally filtered by status.
func (s *AdminService) ListClaims(ctx context.Context, status domain.ClaimStatus) ([]domain.Claim, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": []string{string(status)}}
	}
	var claims []domain.Claim
	if err := s.client.get(ctx, "/admin/claims", query, &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// GetClaim fetches one claim.
func (s *AdminService) GetClaim(ctx context.Context, id int64) (*domain.Claim, error) {
	var claim domain.Claim
	if err := s.client.get(ctx, fmt.Sprintf("/admin/claims/%d", id), nil, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// ApproveClaim approves a pending claim for the given payout amount.
func (s *AdminService) ApproveClaim(ctx context.Context, id int64, req dto.ApproveClaimRequest) (*domain.Claim, error) {
	if !req.ApprovedCoverageAmount.IsPositive() {
		return nil, util.NewValidationError("approved amount must be greater than zero", nil)
	}
	var claim domain.Claim
	if err := s.client.putJSON(ctx, fmt.Sprintf("/admin/claims/%d/approve", id), nil, req, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// RejectClaim rejects a pending claim with a reason.
func (s *AdminService) RejectClaim(ctx context.Context, id int64, req dto.RejectClaimRequest) (*domain.Claim, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var claim domain.Claim
	if err := s.client.putJSON(ctx, fmt.Sprintf("/admin/claims/%d/reject", id), nil, req, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// ListClients fetches all client accounts.
func (s *AdminService) ListClients(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := s.client.get(ctx, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetClient fetches one client account.
func (s *AdminService) GetClient(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := s.client.get(ctx, fmt.Sprintf("/admin/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateClient replaces a client account's editable fields.
func (s *AdminService) UpdateClient(ctx context.Context, id int64, req dto.UpdateProfileRequest) (*domain.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var user domain.User
	if err := s.client.putJSON(ctx, fmt.Sprintf("/admin/users/%d", id), nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteClient removes a client account.
func (s *AdminService) DeleteClient(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/admin/users/%d", id), nil, nil)
}

func validatePolicyInput(input dto.PolicyInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	if !input.PremiumPerYear.IsPositive() {
		return util.NewValidationError("premium per year must be greater than zero", nil)
	}
	if !input.CoverageAmount.IsPositive() {
		return util.NewValidationError("coverage amount must be greater than zero", nil)
	}
	if input.Document != nil {
		if err := validate.Document(*input.Document); err != nil {
			return err
		}
	}
	return nil
}

func policyForm(input dto.PolicyInput) *Form {
	form := NewForm().AddFields(input.FormFields())
	if input.Document != nil {
		form.AddFile("document", *input.Document)
	}
	return form
}
