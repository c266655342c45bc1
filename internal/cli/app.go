package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/SohamMhatre7788/insurai/internal/api"
	"github.com/SohamMhatre7788/insurai/internal/auth"
	"github.com/SohamMhatre7788/insurai/internal/config"
	"github.com/SohamMhatre7788/insurai/internal/domain"
	"github.com/SohamMhatre7788/insurai/internal/events"
	"github.com/SohamMhatre7788/insurai/internal/session"
)

// App dispatches commands, playing the role the route table plays in the
// browser frontends: every protected command passes the authorization guard
// before its screen runs.
type App struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *session.Store
	services *api.Services
	stdout   io.Writer
	stderr   io.Writer
}

// NewApp builds the command dispatcher.
func NewApp(cfg *config.Config, logger *zap.Logger, store *session.Store, services *api.Services, stdout, stderr io.Writer) *App {
	return &App{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		services: services,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// SetServices attaches the resource services. Construction is two-phase
// because the HTTP client's unauthorized hook points back at the app.
func (a *App) SetServices(services *api.Services) {
	a.services = services
}

// command couples a screen with its guard requirement. A nil-role protected
// command admits any authenticated session.
type command struct {
	role      domain.Role
	protected bool
	summary   string
	run       func(ctx context.Context, args []string) error
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"login":  {summary: "sign in with email and password", run: a.runLogin},
		"signup": {summary: "create a client account", run: a.runSignup},
		"logout": {summary: "sign out and clear the stored session", run: a.runLogout},
		"whoami": {summary: "show the stored session", run: a.runWhoami},
		"home":   {summary: "open the dashboard for your role", run: a.runHome},

		"policies": {summary: "browse the policy catalog", run: a.runPolicies},
		"policy":   {summary: "show one catalog policy", run: a.runPolicy},

		"buy":         {protected: true, role: domain.RoleClient, summary: "purchase a policy for your company", run: a.runBuy},
		"my-policies": {protected: true, role: domain.RoleClient, summary: "list your purchased policies", run: a.runMyPolicies},
		"renew":       {protected: true, role: domain.RoleClient, summary: "renew a purchased policy", run: a.runRenew},
		"claim":       {protected: true, role: domain.RoleClient, summary: "file a claim with supporting documents", run: a.runClaim},
		"my-claims":   {protected: true, role: domain.RoleClient, summary: "list your claims", run: a.runMyClaims},

		"profile":         {protected: true, role: domain.RoleClient, summary: "show your profile", run: a.runProfile},
		"update-profile":  {protected: true, role: domain.RoleClient, summary: "update your profile", run: a.runUpdateProfile},
		"change-password": {protected: true, role: domain.RoleClient, summary: "change your password", run: a.runChangePassword},

		"dashboard": {protected: true, summary: "show your dashboard", run: a.runDashboard},
		"recommend": {protected: true, summary: "ask the insurance assistant", run: a.runRecommend},

		"create-policy": {protected: true, role: domain.RoleAdmin, summary: "add a catalog policy", run: a.runCreatePolicy},
		"update-policy": {protected: true, role: domain.RoleAdmin, summary: "update a catalog policy", run: a.runUpdatePolicy},
		"delete-policy": {protected: true, role: domain.RoleAdmin, summary: "remove a catalog policy", run: a.runDeletePolicy},
		"admin-claims":  {protected: true, role: domain.RoleAdmin, summary: "list claims, optionally by status", run: a.runAdminClaims},
		"approve-claim": {protected: true, role: domain.RoleAdmin, summary: "approve a pending claim", run: a.runApproveClaim},
		"reject-claim":  {protected: true, role: domain.RoleAdmin, summary: "reject a pending claim", run: a.runRejectClaim},
		"clients":       {protected: true, role: domain.RoleAdmin, summary: "list client accounts", run: a.runClients},
		"update-client": {protected: true, role: domain.RoleAdmin, summary: "update a client account", run: a.runUpdateClient},
		"delete-client": {protected: true, role: domain.RoleAdmin, summary: "remove a client account", run: a.runDeleteClient},
	}
}

// Run executes one command invocation.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.runHome(ctx, nil)
	}
	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		a.printUsage()
		return nil
	}

	cmd, ok := a.commands()[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("unknown command %q", name)
	}

	if cmd.protected {
		if err := a.guardRoute(ctx, cmd.role); err != nil {
			return err
		}
	}
	return cmd.run(ctx, args[1:])
}

// guardRoute evaluates the authorization guard for the invocation. A
// redirect verdict renders the redirect target instead of the requested
// screen: /login becomes a sign-in prompt, a role home becomes that
// dashboard. The originally requested command is discarded either way.
func (a *App) guardRoute(ctx context.Context, required domain.Role) error {
	state := a.store.Snapshot()
	if !state.Initialized {
		// Session not loaded yet; load it and re-evaluate.
		if err := a.store.Initialize(); err != nil {
			return err
		}
		state = a.store.Snapshot()
	}

	verdict := auth.Authorize(state.Session, state.Initialized, required)
	switch verdict.Decision {
	case auth.DecisionAllow:
		return nil
	case auth.DecisionRedirect:
		return a.navigate(ctx, verdict.RedirectTo)
	default:
		return fmt.Errorf("session is still loading")
	}
}

// navigate renders a route the guard or the 401 interception redirected to.
func (a *App) navigate(ctx context.Context, route string) error {
	switch route {
	case auth.RouteLogin:
		fmt.Fprintln(a.stderr, "You are not signed in. Run 'insurai login' first.")
		return errNotSignedIn
	case domain.RoleClient.HomeRoute():
		fmt.Fprintln(a.stderr, "That command is not available for your role; showing your dashboard instead.")
		return a.clientDashboard(ctx)
	case domain.RoleAdmin.HomeRoute():
		fmt.Fprintln(a.stderr, "That command is not available for your role; showing your dashboard instead.")
		return a.adminDashboard(ctx)
	default:
		return fmt.Errorf("unknown route %q", route)
	}
}

// ForceLogin is the navigation half of the global 401 interception: it runs
// after the wrapper has already cleared the session.
func (a *App) ForceLogin() {
	fmt.Fprintln(a.stderr, "Your session has expired. Run 'insurai login' to sign in again.")
}

// RegisterEventHandlers subscribes the navigation-bar analog: session
// changes are reflected immediately.
func (a *App) RegisterEventHandlers(dispatcher events.Dispatcher) {
	dispatcher.Subscribe(events.EventSessionLoggedIn, func(_ context.Context, e events.Event) error {
		if p, ok := e.Payload.(events.SessionPayload); ok {
			a.logger.Info("session established", zap.Int64("user_id", p.UserID), zap.String("role", string(p.Role)))
		}
		return nil
	})
	dispatcher.Subscribe(events.EventSessionLoggedOut, func(context.Context, events.Event) error {
		a.logger.Info("session cleared")
		return nil
	})
	dispatcher.Subscribe(events.EventSessionInvalidated, func(_ context.Context, e events.Event) error {
		if p, ok := e.Payload.(events.SessionPayload); ok {
			a.logger.Warn("session invalidated by backend", zap.Int64("user_id", p.UserID))
		}
		return nil
	})
}

var errNotSignedIn = fmt.Errorf("not signed in")

func (a *App) printUsage() {
	fmt.Fprintln(a.stdout, "insurai - insurance policy management client")
	fmt.Fprintln(a.stdout, "")
	fmt.Fprintln(a.stdout, "Usage: insurai <command> [flags]")
	fmt.Fprintln(a.stdout, "")

	cmds := a.commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(a.stdout, "  %-16s %s\n", name, cmds[name].summary)
	}
	fmt.Fprintln(a.stdout, "")
	fmt.Fprintln(a.stdout, "Run 'insurai <command> -h' for command flags.")
}

// currentUser returns the signed-in user; guarded commands can rely on it.
func (a *App) currentUser() (*domain.User, error) {
	state := a.store.Snapshot()
	if !state.Session.IsAuthenticated() {
		return nil, errNotSignedIn
	}
	return state.Session.User, nil
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
