package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClaimStatus enumerates adjudication states. APPROVED and REJECTED are
// terminal.
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "PENDING"
	ClaimStatusApproved ClaimStatus = "APPROVED"
	ClaimStatusRejected ClaimStatus = "REJECTED"
)

// Claim is a payout request filed against a ClientPolicy and adjudicated by
// an admin.
type Claim struct {
	ID                   int64            `json:"id"`
	ClientPolicyID       int64            `json:"clientPolicyId"`
	PolicyName           string           `json:"policyName,omitempty"`
	ClaimAmountRequested decimal.Decimal  `json:"claimAmountRequested"`
	Description          string           `json:"description"`
	Documents            []string         `json:"documents,omitempty"`
	Status               ClaimStatus      `json:"status"`
	ApprovedAmount       *decimal.Decimal `json:"approvedAmount,omitempty"`
	RejectionReason      string           `json:"rejectionReason,omitempty"`
	CreatedAt            time.Time        `json:"createdAt"`
}

// IsTerminal reports whether the claim can no longer change state.
func (c Claim) IsTerminal() bool {
	return c.Status == ClaimStatusApproved || c.Status == ClaimStatusRejected
}
