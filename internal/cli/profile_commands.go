package cli

import (
	"context"
	"fmt"

	"github.com/SohamMhatre7788/insurai/internal/api/dto"
)

func (a *App) runProfile(ctx context.Context, _ []string) error {
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	profile, err := a.services.Profile.Get(ctx, user.ID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "%s <%s>\n", profile.FullName(), profile.Email)
	fmt.Fprintf(a.stdout, "Role: %s\n", profile.Role)
	return nil
}

func (a *App) runUpdateProfile(ctx context.Context, args []string) error {
	user, err := a.currentUser()
	if err != nil {
		return err
	}

	fs := a.newFlagSet("update-profile")
	firstName := fs.String("first-name", user.FirstName, "first name")
	lastName := fs.String("last-name", user.LastName, "last name")
	email := fs.String("email", user.Email, "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	profile, err := a.services.Profile.Update(ctx, user.ID, dto.UpdateProfileRequest{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Profile updated: %s <%s>\n", profile.FullName(), profile.Email)
	return nil
}

func (a *App) runChangePassword(ctx context.Context, args []string) error {
	user, err := a.currentUser()
	if err != nil {
		return err
	}

	fs := a.newFlagSet("change-password")
	current := fs.String("current", "", "current password")
	newPassword := fs.String("new", "", "new password (6 characters minimum)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	err = a.services.Profile.ChangePassword(ctx, user.ID, dto.ChangePasswordRequest{
		CurrentPassword: *current,
		NewPassword:     *newPassword,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, "Password changed.")
	return nil
}
