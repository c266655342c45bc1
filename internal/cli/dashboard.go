package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/SohamMhatre7788/insurai/internal/api/dto"
	"github.com/SohamMhatre7788/insurai/internal/domain"
)

func (a *App) runDashboard(ctx context.Context, _ []string) error {
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	if user.Role == domain.RoleAdmin {
		return a.adminDashboard(ctx)
	}
	return a.clientDashboard(ctx)
}

// clientDashboard aggregates the client landing counters. Each source is
// optional: a failed fetch leaves its statistics at zero instead of failing
// the whole screen.
func (a *App) clientDashboard(ctx context.Context) error {
	var stats dto.ClientDashboardStats

	if policies, err := a.services.ClientPolicies.List(ctx); err == nil {
		stats.TotalPolicies = len(policies)
		for _, p := range policies {
			if p.IsActive() {
				stats.ActivePolicies++
			}
		}
	} else {
		a.logger.Warn("dashboard: fetching policies", zap.Error(err))
	}

	if claims, err := a.services.Claims.ListMine(ctx); err == nil {
		for _, c := range claims {
			if c.Status == domain.ClaimStatusPending {
				stats.PendingClaims++
			}
		}
	} else {
		a.logger.Warn("dashboard: fetching claims", zap.Error(err))
	}

	fmt.Fprintln(a.stdout, "Client dashboard")
	fmt.Fprintf(a.stdout, "  Total policies:  %d\n", stats.TotalPolicies)
	fmt.Fprintf(a.stdout, "  Active policies: %d\n", stats.ActivePolicies)
	fmt.Fprintf(a.stdout, "  Pending claims:  %d\n", stats.PendingClaims)
	return nil
}

// adminDashboard aggregates the admin landing counters with the same
// degrade-to-zero behavior.
func (a *App) adminDashboard(ctx context.Context) error {
	var stats dto.AdminDashboardStats

	if policies, err := a.services.Admin.ListPolicies(ctx); err == nil {
		stats.TotalPolicies = len(policies)
	} else {
		a.logger.Warn("dashboard: fetching policies", zap.Error(err))
	}
	if clients, err := a.services.Admin.ListClients(ctx); err == nil {
		stats.TotalClients = len(clients)
	} else {
		a.logger.Warn("dashboard: fetching clients", zap.Error(err))
	}
	if claims, err := a.services.Admin.ListClaims(ctx, domain.ClaimStatusPending); err == nil {
		stats.PendingClaims = len(claims)
	} else {
		a.logger.Warn("dashboard: fetching claims", zap.Error(err))
	}

	fmt.Fprintln(a.stdout, "Admin dashboard")
	fmt.Fprintf(a.stdout, "  Total policies: %d\n", stats.TotalPolicies)
	fmt.Fprintf(a.stdout, "  Total clients:  %d\n", stats.TotalClients)
	fmt.Fprintf(a.stdout, "  Pending claims: %d\n", stats.PendingClaims)
	return nil
}
