package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/SohamMhatre7788/insurai/internal/api/dto"
	"github.com/SohamMhatre7788/insurai/internal/domain"
	"github.com/SohamMhatre7788/insurai/pkg/util"
)

func (a *App) parsePolicyInput(name string, args []string) (dto.PolicyInput, []string, error) {
	fs := a.newFlagSet(name)
	policyName := fs.String("name", "", "policy name")
	description := fs.String("description", "", "policy description")
	premium := fs.String("premium", "", "premium per employee per year")
	coverage := fs.String("coverage", "", "coverage amount per employee")
	risk := fs.String("risk", string(domain.RiskLevelMedium), "risk level: LOW, MEDIUM or HIGH")
	minYears := fs.Int("min-years", 0, "minimum policy period in years")
	maxYears := fs.Int("max-years", 0, "maximum policy period in years")
	document := fs.String("document", "", "optional policy document file")
	if err := fs.Parse(args); err != nil {
		return dto.PolicyInput{}, nil, err
	}

	premiumAmount, err := parseAmount("premium", *premium)
	if err != nil {
		return dto.PolicyInput{}, nil, err
	}
	coverageAmount, err := parseAmount("coverage", *coverage)
	if err != nil {
		return dto.PolicyInput{}, nil, err
	}

	input := dto.PolicyInput{
		Name:           *policyName,
		Description:    *description,
		PremiumPerYear: premiumAmount,
		CoverageAmount: coverageAmount,
		RiskLevel:      domain.RiskLevel(strings.ToUpper(*risk)),
		MinPeriodYears: *minYears,
		MaxPeriodYears: *maxYears,
	}
	if *document != "" {
		upload, err := loadUpload(*document)
		if err != nil {
			return dto.PolicyInput{}, nil, err
		}
		input.Document = &upload
	}
	return input, fs.Args(), nil
}

func (a *App) runCreatePolicy(ctx context.Context, args []string) error {
	input, _, err := a.parsePolicyInput("create-policy", args)
	if err != nil {
		return err
	}

	policy, err := a.services.Admin.CreatePolicy(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Created policy %s (#%d).\n", policy.Name, policy.ID)
	return nil
}

func (a *App) runUpdatePolicy(ctx context.Context, args []string) error {
	id, rest, err := popID("update-policy", args)
	if err != nil {
		return err
	}
	input, _, err := a.parsePolicyInput("update-policy", rest)
	if err != nil {
		return err
	}

	policy, err := a.services.Admin.UpdatePolicy(ctx, id, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Updated policy %s (#%d).\n", policy.Name, policy.ID)
	return nil
}

func (a *App) runDeletePolicy(ctx context.Context, args []string) error {
	fs := a.newFlagSet("delete-policy")
	id := fs.Int64("id", 0, "policy id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.services.Admin.DeletePolicy(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Deleted policy #%d.\n", *id)
	return nil
}

func (a *App) runAdminClaims(ctx context.Context, args []string) error {
	fs := a.newFlagSet("admin-claims")
	status := fs.String("status", "", "filter by status: PENDING, APPROVED or REJECTED")
	if err := fs.Parse(args); err != nil {
		return err
	}

	claims, err := a.services.Admin.ListClaims(ctx, domain.ClaimStatus(strings.ToUpper(*status)))
	if err != nil {
		return err
	}
	if len(claims) == 0 {
		fmt.Fprintln(a.stdout, "No claims found.")
		return nil
	}
	a.renderClaims(claims)
	return nil
}

func (a *App) runApproveClaim(ctx context.Context, args []string) error {
	fs := a.newFlagSet("approve-claim")
	id := fs.Int64("id", 0, "claim id")
	amount := fs.String("amount", "", "approved coverage amount")
	if err := fs.Parse(args); err != nil {
		return err
	}

	approvedAmount, err := parseAmount("amount", *amount)
	if err != nil {
		return err
	}

	claim, err := a.services.Admin.ApproveClaim(ctx, *id, dto.ApproveClaimRequest{ApprovedCoverageAmount: approvedAmount})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Claim #%d approved for %s.\n", claim.ID, approvedAmount)
	return nil
}

func (a *App) runRejectClaim(ctx context.Context, args []string) error {
	fs := a.newFlagSet("reject-claim")
	id := fs.Int64("id", 0, "claim id")
	reason := fs.String("reason", "", "rejection reason")
	if err := fs.Parse(args); err != nil {
		return err
	}

	claim, err := a.services.Admin.RejectClaim(ctx, *id, dto.RejectClaimRequest{RejectionReason: *reason})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Claim #%d rejected.\n", claim.ID)
	return nil
}

func (a *App) runClients(ctx context.Context, _ []string) error {
	clients, err := a.services.Admin.ListClients(ctx)
	if err != nil {
		return err
	}
	if len(clients) == 0 {
		fmt.Fprintln(a.stdout, "No client accounts.")
		return nil
	}
	a.renderUsers(clients)
	return nil
}

func (a *App) runUpdateClient(ctx context.Context, args []string) error {
	fs := a.newFlagSet("update-client")
	id := fs.Int64("id", 0, "client id")
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.services.Admin.UpdateClient(ctx, *id, dto.UpdateProfileRequest{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Updated client %s (#%d).\n", user.FullName(), user.ID)
	return nil
}

func (a *App) runDeleteClient(ctx context.Context, args []string) error {
	fs := a.newFlagSet("delete-client")
	id := fs.Int64("id", 0, "client id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.services.Admin.DeleteClient(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Deleted client #%d.\n", *id)
	return nil
}

// popID extracts a leading -id flag so update commands can share the policy
// flag parser for the remaining arguments.
func popID(name string, args []string) (int64, []string, error) {
	if len(args) >= 2 && args[0] == "-id" {
		var id int64
		if _, err := fmt.Sscanf(args[1], "%d", &id); err != nil || id <= 0 {
			return 0, nil, util.NewValidationError("-id must be a positive number", nil)
		}
		return id, args[2:], nil
	}
	return 0, nil, util.NewValidationError(fmt.Sprintf("usage: insurai %s -id <id> [flags]", name), nil)
}
