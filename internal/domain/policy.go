package domain

import "github.com/shopspring/decimal"

// RiskLevel enumerates underwriting risk buckets for a catalog policy.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// Policy is a catalog item owned by the backend; the client holds transient
// read copies fetched per screen.
type Policy struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	CoverageAmount decimal.Decimal `json:"coverageAmount"`
	PremiumPerYear decimal.Decimal `json:"premiumPerYear"`
	RiskLevel      RiskLevel       `json:"riskLevel"`
	MinPeriodYears int             `json:"minPeriodYears"`
	MaxPeriodYears int             `json:"maxPeriodYears"`
	DocumentURL    string          `json:"documentUrl,omitempty"`
}

// AllowsPeriod reports whether a purchase period fits the policy's bounds.
func (p Policy) AllowsPeriod(years int) bool {
	return years >= p.MinPeriodYears && years <= p.MaxPeriodYears
}

// EstimatePremium computes the yearly premium for a company of the given
// size: premiumPerYear multiplied by the employee count.
func (p Policy) EstimatePremium(numberOfEmployees int) decimal.Decimal {
	return p.PremiumPerYear.Mul(decimal.NewFromInt(int64(numberOfEmployees)))
}
