package cli

import (
	"context"
	"fmt"

	"github.com/SohamMhatre7788/insurai/internal/api/dto"
)

func (a *App) runClaim(ctx context.Context, args []string) error {
	fs := a.newFlagSet("claim")
	policyID := fs.Int64("policy-id", 0, "purchased policy id to claim against")
	amount := fs.String("amount", "", "claim amount requested")
	description := fs.String("description", "", "what happened")
	var docs stringSliceFlag
	fs.Var(&docs, "doc", "supporting document (PDF, JPG or PNG, max 10MB; repeatable, at least one required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	claimAmount, err := parseAmount("amount", *amount)
	if err != nil {
		return err
	}

	uploads := make([]dto.FileUpload, 0, len(docs))
	for _, path := range docs {
		upload, err := loadUpload(path)
		if err != nil {
			return err
		}
		uploads = append(uploads, upload)
	}

	claim, err := a.services.Claims.Create(ctx, dto.CreateClaimRequest{
		ClientPolicyID:       *policyID,
		ClaimAmountRequested: claimAmount,
		Description:          *description,
		Documents:            uploads,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Claim #%d submitted and under review.\n", claim.ID)
	return nil
}

func (a *App) runMyClaims(ctx context.Context, _ []string) error {
	claims, err := a.services.Claims.ListMine(ctx)
	if err != nil {
		return err
	}
	if len(claims) == 0 {
		fmt.Fprintln(a.stdout, "You have not filed any claims.")
		return nil
	}
	a.renderClaims(claims)
	return nil
}
