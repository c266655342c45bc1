package dto

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/SohamMhatre7788/insurai/internal/domain"
)

// FileUpload is a document attached to a multipart request.
type FileUpload struct {
	FileName string
	Content  []byte
}

// BuyPolicyRequest purchases a catalog policy for a company.
type BuyPolicyRequest struct {
	PolicyID          int64  `json:"policyId" validate:"required,gt=0"`
	CompanyName       string `json:"companyName" validate:"required"`
	NumberOfEmployees int    `json:"numberOfEmployees" validate:"required,gte=1"`
	PolicyPeriodYears int    `json:"policyPeriodYears" validate:"required,gte=1"`
}

// PolicyInput carries the admin create/update payload. The backend expects
// every scalar as a multipart form field (never JSON) plus an optional
// single "document" file part; FormFields preserves that contract.
type PolicyInput struct {
	Name           string           `validate:"required"`
	Description    string           `validate:"required"`
	PremiumPerYear decimal.Decimal  `validate:"-"`
	CoverageAmount decimal.Decimal  `validate:"-"`
	RiskLevel      domain.RiskLevel `validate:"required,oneof=LOW MEDIUM HIGH"`
	MinPeriodYears int              `validate:"required,gte=1"`
	MaxPeriodYears int              `validate:"required,gtefield=MinPeriodYears"`
	Document       *FileUpload      `validate:"-"`
}

// FormFields renders every scalar as a form field, in the field order the
// create-policy screen submits them.
func (p PolicyInput) FormFields() [][2]string {
	return [][2]string{
		{"name", p.Name},
		{"description", p.Description},
		{"premiumPerYear", p.PremiumPerYear.String()},
		{"coverageAmount", p.CoverageAmount.String()},
		{"riskLevel", string(p.RiskLevel)},
		{"minPeriodYears", strconv.Itoa(p.MinPeriodYears)},
		{"maxPeriodYears", strconv.Itoa(p.MaxPeriodYears)},
	}
}
