package cli

import (
	"context"
	"fmt"

	"github.com/SohamMhatre7788/insurai/internal/api/dto"
	"github.com/SohamMhatre7788/insurai/pkg/util"
)

func (a *App) runPolicies(ctx context.Context, _ []string) error {
	policies, err := a.services.Policies.List(ctx)
	if err != nil {
		return err
	}
	if len(policies) == 0 {
		fmt.Fprintln(a.stdout, "No policies in the catalog yet.")
		return nil
	}
	a.renderPolicies(policies)
	return nil
}

func (a *App) runPolicy(ctx context.Context, args []string) error {
	fs := a.newFlagSet("policy")
	id := fs.Int64("id", 0, "policy id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	policy, err := a.services.Policies.Get(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "%s (#%d)\n", policy.Name, policy.ID)
	fmt.Fprintf(a.stdout, "  %s\n", policy.Description)
	fmt.Fprintf(a.stdout, "  Risk:        %s\n", policy.RiskLevel)
	fmt.Fprintf(a.stdout, "  Coverage:    %s\n", policy.CoverageAmount)
	fmt.Fprintf(a.stdout, "  Premium/yr:  %s per employee\n", policy.PremiumPerYear)
	fmt.Fprintf(a.stdout, "  Period:      %d-%d years\n", policy.MinPeriodYears, policy.MaxPeriodYears)
	if policy.DocumentURL != "" {
		fmt.Fprintf(a.stdout, "  Document:    %s\n", policy.DocumentURL)
	}
	return nil
}

func (a *App) runBuy(ctx context.Context, args []string) error {
	fs := a.newFlagSet("buy")
	policyID := fs.Int64("policy-id", 0, "catalog policy id")
	company := fs.String("company", "", "company name")
	employees := fs.Int("employees", 0, "number of employees")
	years := fs.Int("years", 0, "policy period in years")
	if err := fs.Parse(args); err != nil {
		return err
	}

	policy, err := a.services.Policies.Get(ctx, *policyID)
	if err != nil {
		return err
	}
	if !policy.AllowsPeriod(*years) {
		return util.NewValidationError(fmt.Sprintf(
			"policy period must be between %d and %d years", policy.MinPeriodYears, policy.MaxPeriodYears), nil)
	}

	estimate := policy.EstimatePremium(*employees)
	fmt.Fprintf(a.stdout, "Estimated premium: %s per year\n", estimate)

	purchased, err := a.services.ClientPolicies.Buy(ctx, dto.BuyPolicyRequest{
		PolicyID:          *policyID,
		CompanyName:       *company,
		NumberOfEmployees: *employees,
		PolicyPeriodYears: *years,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Purchased %s for %s (policy #%d).\n", purchased.PolicyName, purchased.CompanyName, purchased.ID)
	fmt.Fprintf(a.stdout, "  Coverage: %s, premium: %s, active %s to %s\n",
		purchased.CoverageAmount, purchased.PremiumAmount, purchased.StartDate, purchased.EndDate)
	return nil
}

func (a *App) runMyPolicies(ctx context.Context, _ []string) error {
	policies, err := a.services.ClientPolicies.List(ctx)
	if err != nil {
		return err
	}
	if len(policies) == 0 {
		fmt.Fprintln(a.stdout, "You have no policies yet. Browse the catalog with 'insurai policies'.")
		return nil
	}
	a.renderClientPolicies(policies)
	return nil
}

func (a *App) runRenew(ctx context.Context, args []string) error {
	fs := a.newFlagSet("renew")
	id := fs.Int64("id", 0, "purchased policy id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	renewed, err := a.services.ClientPolicies.Renew(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Renewed %s through %s.\n", renewed.PolicyName, renewed.EndDate)
	return nil
}
