package api

import (
	"context"
	"strconv"

	"github.com/SohamMhatre7788/insurai/internal/api/dto"
	"github.com/SohamMhatre7788/insurai/internal/domain"
	"github.com/SohamMhatre7788/insurai/internal/validate"
	"github.com/SohamMhatre7788/insurai/pkg/util"
)

// ClaimService maps the authenticated claim endpoints.
type ClaimService struct {
	client *Client
}

// NewClaimService constructs the service.
func NewClaimService(client *Client) *ClaimService {
	return &ClaimService{client: client}
}

// Create files a claim. Every document is validated locally (type, size, at
// least one present) before any network traffic; a violation blocks the
// submission entirely. The request body is multipart: the three scalar
// fields plus one "documents" part per attachment.
func (s *ClaimService) Create(ctx context.Context, req dto.CreateClaimRequest) (*domain.Claim, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if !req.ClaimAmountRequested.IsPositive() {
		return nil, util.NewValidationError("claim amount must be greater than zero", nil)
	}
	if err := validate.Documents(req.Documents); err != nil {
		return nil, err
	}

	form := NewForm().
		AddField("clientPolicyId", strconv.FormatInt(req.ClientPolicyID, 10)).
		AddField("claimAmountRequested", req.ClaimAmountRequested.String()).
		AddField("description", req.Description)
	for _, doc := range req.Documents {
		form.AddFile("documents", doc)
	}

	var claim domain.Claim
	if err := s.client.postMultipart(ctx, "/claims", form, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// ListMine fetches the caller's claims.
func (s *ClaimService) ListMine(ctx context.Context) ([]domain.Claim, error) {
	var claims []domain.Claim
	if err := s.client.get(ctx, "/claims/my", nil, &claims); err != nil {
		return nil, err
	}
	return claims, nil
}
