package dto

import "github.com/shopspring/decimal"

// CreateClaimRequest files a claim against an active client policy. It is
// submitted as multipart form data with one "documents" file part per
// attachment; at least one document is required.
type CreateClaimRequest struct {
	ClientPolicyID       int64           `validate:"required,gt=0"`
	ClaimAmountRequested decimal.Decimal `validate:"-"`
	Description          string          `validate:"required"`
	Documents            []FileUpload    `validate:"-"`
}

// ApproveClaimRequest approves a pending claim for the given payout.
type ApproveClaimRequest struct {
	ApprovedCoverageAmount decimal.Decimal `json:"approvedCoverageAmount"`
}

// RejectClaimRequest rejects a pending claim with a reason.
type RejectClaimRequest struct {
	RejectionReason string `json:"rejectionReason" validate:"required"`
}
