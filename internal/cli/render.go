package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/SohamMhatre7788/insurai/internal/domain"
)

// renderTable prints rows under a header with aligned columns.
func (a *App) renderTable(header []string, rows [][]string) {
	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

func (a *App) renderPolicies(policies []domain.Policy) {
	rows := make([][]string, 0, len(policies))
	for _, p := range policies {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			string(p.RiskLevel),
			p.CoverageAmount.String(),
			p.PremiumPerYear.String(),
			fmt.Sprintf("%d-%d yrs", p.MinPeriodYears, p.MaxPeriodYears),
		})
	}
	a.renderTable([]string{"ID", "NAME", "RISK", "COVERAGE", "PREMIUM/YR", "PERIOD"}, rows)
}

func (a *App) renderClientPolicies(policies []domain.ClientPolicy) {
	rows := make([][]string, 0, len(policies))
	for _, p := range policies {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID),
			p.PolicyName,
			p.CompanyName,
			string(p.Status),
			p.CoverageAmount.String(),
			p.StartDate.String(),
			p.EndDate.String(),
		})
	}
	a.renderTable([]string{"ID", "POLICY", "COMPANY", "STATUS", "COVERAGE", "START", "END"}, rows)
}

func (a *App) renderClaims(claims []domain.Claim) {
	rows := make([][]string, 0, len(claims))
	for _, c := range claims {
		detail := ""
		switch {
		case c.Status == domain.ClaimStatusApproved && c.ApprovedAmount != nil:
			detail = "approved " + c.ApprovedAmount.String()
		case c.Status == domain.ClaimStatusRejected:
			detail = c.RejectionReason
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", c.ID),
			fmt.Sprintf("%d", c.ClientPolicyID),
			c.ClaimAmountRequested.String(),
			string(c.Status),
			detail,
		})
	}
	a.renderTable([]string{"ID", "POLICY", "REQUESTED", "STATUS", "DETAIL"}, rows)
}

func (a *App) renderUsers(users []domain.User) {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			fmt.Sprintf("%d", u.ID),
			u.FullName(),
			u.Email,
			string(u.Role),
		})
	}
	a.renderTable([]string{"ID", "NAME", "EMAIL", "ROLE"}, rows)
}
