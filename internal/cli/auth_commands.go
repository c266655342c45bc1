package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/SohamMhatre7788/insurai/internal/api/dto"
	"github.com/SohamMhatre7788/insurai/internal/auth"
)

func (a *App) runLogin(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := a.services.Auth.Login(ctx, dto.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	if err := a.store.Login(res.Token, res.User()); err != nil {
		return err
	}

	user := res.User()
	fmt.Fprintf(a.stdout, "Signed in as %s (%s).\n", user.FullName(), user.Role)
	fmt.Fprintf(a.stdout, "Your home is 'insurai home'.\n")
	return nil
}

func (a *App) runSignup(ctx context.Context, args []string) error {
	fs := a.newFlagSet("signup")
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (6 characters minimum)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := a.services.Auth.Signup(ctx, dto.SignupRequest{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  *password,
	})
	if err != nil {
		return err
	}
	// New accounts are always clients; sign in immediately like the web
	// signup screen does.
	if err := a.store.Login(res.Token, res.User()); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Welcome, %s! Your client account is ready.\n", res.User().FullName())
	return nil
}

func (a *App) runLogout(_ context.Context, _ []string) error {
	if err := a.store.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "Signed out.")
	return nil
}

func (a *App) runWhoami(_ context.Context, _ []string) error {
	state := a.store.Snapshot()
	if !state.Initialized {
		if err := a.store.Initialize(); err != nil {
			return err
		}
		state = a.store.Snapshot()
	}
	if !state.Session.IsAuthenticated() {
		fmt.Fprintln(a.stdout, "Not signed in.")
		return nil
	}

	user := state.Session.User
	fmt.Fprintf(a.stdout, "%s <%s>\n", user.FullName(), user.Email)
	fmt.Fprintf(a.stdout, "Role: %s\n", user.Role)
	if info, err := auth.InspectToken(state.Session.Token); err == nil && info.ExpiresAt != nil {
		fmt.Fprintf(a.stdout, "Token expires: %s\n", info.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}

func (a *App) runHome(ctx context.Context, _ []string) error {
	state := a.store.Snapshot()
	if !state.Initialized {
		if err := a.store.Initialize(); err != nil {
			return err
		}
		state = a.store.Snapshot()
	}

	switch state.Session.HomeRoute() {
	case "/client":
		return a.clientDashboard(ctx)
	case "/admin":
		return a.adminDashboard(ctx)
	default:
		return a.navigate(ctx, auth.RouteLogin)
	}
}
