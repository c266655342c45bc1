package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/SohamMhatre7788/insurai/internal/domain"
	"github.com/SohamMhatre7788/insurai/pkg/util"
)

func (a *App) runRecommend(ctx context.Context, args []string) error {
	fs := a.newFlagSet("recommend")
	audience := fs.String("audience", "corporate", "assistant flavor: corporate, client or admin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := joinArgs(fs.Args())
	if input == "" {
		return util.NewValidationError("usage: insurai recommend [-audience corporate|client|admin] <question>", nil)
	}

	user, err := a.currentUser()
	if err != nil {
		return err
	}

	var reply string
	switch strings.ToLower(*audience) {
	case "corporate":
		reply, err = a.services.Assistant.CorporateRecommendation(ctx, input)
	case "client":
		reply, err = a.services.Assistant.ClientRecommendation(ctx, input)
	case "admin":
		if user.Role != domain.RoleAdmin {
			return util.NewValidationError("the admin assistant requires the ADMIN role", nil)
		}
		reply, err = a.services.Assistant.AdminRecommendation(ctx, input)
	default:
		return util.NewValidationError("audience must be corporate, client or admin", nil)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, reply)
	return nil
}
