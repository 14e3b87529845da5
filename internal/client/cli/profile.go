package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
)

func (a *App) showProfile(ctx context.Context, _ []string) error {
	p, err := a.profile.LoadProfile(ctx)
	if err != nil {
		return err
	}
	a.title(displayName(p.FullName, p.Email))
	a.printf("  email:          %s (verified: %s)\n", p.Email, yesNo(p.EmailVerified))
	a.printf("  plan:           %s, %d credits left\n", p.Plan, p.CreditsRemaining)
	a.printf("  2FA:            %s\n", yesNo(p.TwoFAEnabled))
	a.printf("  member since:   %s\n", ago(p.CreatedAt))
	return nil
}

func (a *App) editProfile(ctx context.Context, _ []string) error {
	var p models.UpdateProfilePayload

	name, err := GetSimpleText(a.in, "Full name (leave empty to keep)", a.out)
	if err != nil {
		return err
	}
	if name != "" {
		p.FullName = &name
	}
	email, err := GetSimpleText(a.in, "Email (leave empty to keep)", a.out)
	if err != nil {
		return err
	}
	if email != "" {
		p.Email = &email
	}
	if p.FullName == nil && p.Email == nil {
		a.println("Nothing to change.")
		return nil
	}

	if _, err := a.profile.UpdateProfile(ctx, p); err != nil {
		return err
	}
	a.success("Profile updated.")
	return nil
}

func (a *App) changePassword(ctx context.Context, _ []string) error {
	current, err := GetPassword(a.in, "Current password", a.out)
	if err != nil {
		return err
	}
	next, err := a.newPassword("New password", errNewPasswordsDiffer)
	if err != nil {
		return err
	}
	resp, err := a.profile.ChangePassword(ctx, current, next)
	if err != nil {
		return err
	}
	a.success(messageOr(resp.Message, "Password changed."))
	return nil
}

func (a *App) deleteAccount(ctx context.Context, _ []string) error {
	ok, err := Confirm(a.in, "This permanently deletes your account and all of its data. Continue?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	password, err := GetPassword(a.in, "Password", a.out)
	if err != nil {
		return err
	}

	resp, err := a.profile.DeleteAccount(ctx, password)
	if err != nil {
		return err
	}
	a.clearContainers()
	a.success(messageOr(resp.Message, "Account deleted."))
	return nil
}

func (a *App) showUsage(ctx context.Context, args []string) error {
	var userID string
	if len(args) > 0 {
		userID = args[0]
	}
	u, err := a.profile.LoadUsage(ctx, userID)
	if err != nil {
		return err
	}
	a.title("Usage")
	a.printf("  plan:                 %s\n", u.Plan)
	a.printf("  credits remaining:    %d\n", u.CreditsRemaining)
	a.printf("  resume tailors/month: %d\n", u.Quotas.ResumeTailorsPerMonth)
	a.printf("  cover letters/month:  %d\n", u.Quotas.CoverLettersPerMonth)
	a.printf("  STAR stories/month:   %d\n", u.Quotas.StarStoriesPerMonth)
	a.printf("  job analyses/month:   %d\n", u.Quotas.JobAnalysesPerMonth)
	return nil
}

// setupTwoFA enrolls an authenticator: show the secret and backup codes,
// then confirm with the first code the app generates.
func (a *App) setupTwoFA(ctx context.Context, _ []string) error {
	setup, err := a.profile.SetupTwoFA(ctx)
	if err != nil {
		return err
	}
	a.title("Add this secret to your authenticator app")
	a.println("  " + badgeStyle.Render(setup.Secret))
	if len(setup.BackupCodes) > 0 {
		a.println("Backup codes (store them somewhere safe):")
		a.println("  " + strings.Join(setup.BackupCodes, "  "))
	}

	code, err := GetSimpleText(a.in, "Enter the 6-digit code shown by the app", a.out)
	if err != nil {
		return err
	}
	if _, err := a.profile.ConfirmTwoFASetup(ctx, code); err != nil {
		return err
	}
	a.success("Two-factor authentication enabled.")
	return nil
}

func (a *App) disableTwoFA(ctx context.Context, _ []string) error {
	ok, err := Confirm(a.in, "Disable two-factor authentication?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	resp, err := a.profile.DisableTwoFA(ctx)
	if err != nil {
		return err
	}
	if !resp.Success {
		return errors.New("two-factor authentication was not disabled")
	}
	a.success("Two-factor authentication disabled.")
	return nil
}
