package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/services"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/tokenstore"
)

var (
	errPasswordsDiffer    = errors.New("passwords do not match")
	errNewPasswordsDiffer = errors.New("new passwords do not match")
)

// argOrPrompt returns args[0], or asks for the value when it was omitted.
func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return GetSimpleText(a.in, prompt, a.out)
}

// newPassword asks for a password twice.
func (a *App) newPassword(prompt string, mismatch error) (string, error) {
	password, err := GetPassword(a.in, prompt, a.out)
	if err != nil {
		return "", err
	}
	confirm, err := GetPassword(a.in, "Confirm "+lowerFirst(prompt), a.out)
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", mismatch
	}
	return password, nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func (a *App) register(ctx context.Context, _ []string) error {
	email, err := GetSimpleText(a.in, "Email", a.out)
	if err != nil {
		return err
	}
	fullName, err := GetSimpleText(a.in, "Full name", a.out)
	if err != nil {
		return err
	}
	password, err := a.newPassword("Password", errPasswordsDiffer)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, email, password, fullName); err != nil {
		return err
	}
	a.success("Account created. Check your inbox for the verification link, then run: verify-email <token>")
	return nil
}

// login signs in and, when the account has 2FA enabled, asks for the code
// right away. A rejected code keeps the login pending for the 2fa command.
func (a *App) login(ctx context.Context, _ []string) error {
	email, err := GetSimpleText(a.in, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.in, "Password", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		return err
	}
	if a.auth.State() == services.PendingTwoFA {
		return a.verifyTwoFA(ctx, nil)
	}
	a.welcome()
	return nil
}

func (a *App) verifyTwoFA(ctx context.Context, args []string) error {
	code, err := a.argOrPrompt(args, "Enter the 6-digit code from your authenticator app")
	if err != nil {
		return err
	}
	if err := a.auth.VerifyTwoFA(ctx, code); err != nil {
		if errors.Is(err, services.ErrNoPendingTwoFA) {
			return err
		}
		return fmt.Errorf("%w (try again with: 2fa <code>)", err)
	}
	a.welcome()
	return nil
}

func (a *App) welcome() {
	s := a.auth.Snapshot()
	if s.User == nil {
		return
	}
	a.success(fmt.Sprintf("Logged in as %s (%s plan, %d credits)",
		displayName(s.User.FullName, s.User.Email), s.Plan, s.CreditsRemaining))
}

func (a *App) verifyEmail(ctx context.Context, args []string) error {
	token, err := a.argOrPrompt(args, "Verification token")
	if err != nil {
		return err
	}
	if err := a.auth.VerifyEmail(ctx, token); err != nil {
		return err
	}
	a.success("Email verified.")
	a.welcome()
	return nil
}

func (a *App) sendVerification(ctx context.Context, args []string) error {
	email, err := a.argOrPrompt(args, "Email")
	if err != nil {
		return err
	}
	resp, err := a.auth.SendVerificationEmail(ctx, email)
	if err != nil {
		return err
	}
	a.success(messageOr(resp.Message, "Verification email sent to "+resp.Email))
	return nil
}

func (a *App) resendVerification(ctx context.Context, _ []string) error {
	resp, err := a.auth.ResendVerificationEmail(ctx)
	if err != nil {
		return err
	}
	a.success(messageOr(resp.Message, "Verification email sent to "+resp.Email))
	return nil
}

func (a *App) forgotPassword(ctx context.Context, args []string) error {
	email, err := a.argOrPrompt(args, "Email")
	if err != nil {
		return err
	}
	resp, err := a.auth.RequestPasswordReset(ctx, email)
	if err != nil {
		return err
	}
	a.success(messageOr(resp.Message, "Password reset link sent to "+resp.Email))
	return nil
}

func (a *App) resetPassword(ctx context.Context, args []string) error {
	token, err := a.argOrPrompt(args, "Reset token")
	if err != nil {
		return err
	}
	password, err := a.newPassword("New password", errNewPasswordsDiffer)
	if err != nil {
		return err
	}
	resp, err := a.auth.ResetPassword(ctx, token, password)
	if err != nil {
		return err
	}
	a.success(messageOr(resp.Message, "Password updated. You can now log in."))
	return nil
}

// logout always ends the local session; a server failure is still reported.
func (a *App) logout(ctx context.Context, _ []string) error {
	err := a.auth.Logout(ctx)
	a.clearContainers()
	if err != nil {
		return fmt.Errorf("logged out locally, but the server call failed: %w", err)
	}
	a.success("Logged out.")
	return nil
}

func (a *App) refresh(ctx context.Context, _ []string) error {
	if err := a.auth.RefreshToken(ctx); err != nil {
		a.clearContainers()
		return fmt.Errorf("session ended: %w", err)
	}
	a.success("Session refreshed.")
	return nil
}

func (a *App) whoami(ctx context.Context, _ []string) error {
	me, err := a.auth.Me(ctx)
	if err != nil {
		return err
	}
	a.title(displayName(me.FullName, me.Email))
	a.printf("  email:   %s\n  plan:    %s\n  credits: %d\n", me.Email, me.Plan, me.CreditsRemaining)
	if exp, ok := a.tokenExpiry(ctx); ok {
		a.printf("  token:   expires %s\n", humanize.Time(exp))
	}
	return nil
}

// tokenExpiry prefers the expiry recorded by the token store and falls back
// to the exp claim of the session token.
func (a *App) tokenExpiry(ctx context.Context) (time.Time, bool) {
	if r, ok := a.tokens.(tokenstore.ExpiryReporter); ok {
		exp, found, err := r.ExpiresAt(ctx)
		if err != nil {
			a.log.Warn(ctx, "error reading token expiry", "error", err)
		}
		if found {
			return exp, true
		}
	}
	exp := a.auth.Snapshot().ExpiresAt
	return exp, !exp.IsZero()
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
