package domain

import "github.com/shopspring/decimal"

// ClientPolicyStatus enumerates lifecycle states for purchased policies.
type ClientPolicyStatus string

const (
	ClientPolicyStatusActive    ClientPolicyStatus = "ACTIVE"
	ClientPolicyStatusExpired   ClientPolicyStatus = "EXPIRED"
	ClientPolicyStatusCancelled ClientPolicyStatus = "CANCELLED"
)

// ClientPolicy is a purchased instance of a catalog Policy bound to a
// client's company and coverage period. Premium and coverage amounts are
// snapshotted at purchase time by the backend.
type ClientPolicy struct {
	ID                int64              `json:"id"`
	PolicyID          int64              `json:"policyId"`
	PolicyName        string             `json:"policyName"`
	CompanyName       string             `json:"companyName"`
	NumberOfEmployees int                `json:"numberOfEmployees"`
	PolicyPeriodYears int                `json:"policyPeriodYears"`
	StartDate         Date               `json:"startDate"`
	EndDate           Date               `json:"endDate"`
	Status            ClientPolicyStatus `json:"status"`
	PremiumAmount     decimal.Decimal    `json:"premiumAmount"`
	CoverageAmount    decimal.Decimal    `json:"coverageAmount"`
}

// IsActive reports whether claims may still be filed against the policy.
func (p ClientPolicy) IsActive() bool {
	return p.Status == ClientPolicyStatusActive
}
