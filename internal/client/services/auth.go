package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/client"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/tokenstore"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/validate"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/logging"
)

type SessionState int

const (
	Anonymous SessionState = iota
	PendingTwoFA
	PendingEmailVerification
	Authenticated
)

func (s SessionState) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case PendingTwoFA:
		return "pending-2fa"
	case PendingEmailVerification:
		return "pending-verification"
	case Authenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

// Session is a read-only copy of the auth state. AccessToken is set iff
// State is Authenticated.
type Session struct {
	State            SessionState
	User             *models.User
	Plan             models.Plan
	CreditsRemaining int
	AccessToken      string
	RefreshToken     string
	TokenType        string

	// ExpiresAt is the exp claim of AccessToken, zero when unreadable.
	ExpiresAt time.Time

	// PendingEmail is the address awaiting verification after Register.
	PendingEmail string
}

func (s Session) IsAuthenticated() bool {
	return s.State == Authenticated
}

// AuthService is the session state machine:
//
//	Anonymous --Login--> PendingTwoFA | Authenticated
//	PendingTwoFA --VerifyTwoFA--> Authenticated
//	Anonymous --Register--> PendingEmailVerification --VerifyEmail--> Authenticated
//	any --Logout | failed RefreshToken--> Anonymous
type AuthService struct {
	client client.Client
	tokens tokenstore.Store
	status *Status
	log    logging.Logger
	now    func() time.Time

	mu         sync.RWMutex
	state      SessionState
	session    *models.AuthResponse
	user       *models.User
	pending2FA *models.AuthResponse
	pendingReg *models.AuthResponse
}

// NewAuthService builds the state machine. tokens is only read to decide
// whether Restore has a session to resume, and cleared when a refresh
// proves the stored token invalid.
func NewAuthService(c client.Client, tokens tokenstore.Store, st *Status, log logging.Logger) *AuthService {
	return &AuthService{client: c, tokens: tokens, status: st, log: log, now: time.Now}
}

func (a *AuthService) Snapshot() Session {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s := Session{State: a.state}
	if a.user != nil {
		u := *a.user
		s.User = &u
	}
	switch {
	case a.state == Authenticated && a.session != nil:
		s.Plan = a.session.Plan
		s.CreditsRemaining = a.session.CreditsRemaining
		s.AccessToken = a.session.AccessToken
		s.RefreshToken = a.session.RefreshToken
		s.TokenType = a.session.TokenType
		s.ExpiresAt, _ = tokenstore.Expiry(a.session.AccessToken)
	case a.state == PendingEmailVerification && a.pendingReg != nil:
		s.PendingEmail = a.pendingReg.Email
	}
	return s
}

func (a *AuthService) State() SessionState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *AuthService) IsAuthenticated() bool {
	return a.State() == Authenticated
}

// establish must be called with mu held.
func (a *AuthService) establish(resp models.AuthResponse) {
	u := resp.User(a.now())
	a.state = Authenticated
	a.session = &resp
	a.user = &u
	a.pending2FA = nil
	a.pendingReg = nil
}

// reset must be called with mu held.
func (a *AuthService) reset() {
	a.state = Anonymous
	a.session = nil
	a.user = nil
	a.pending2FA = nil
	a.pendingReg = nil
}

// EndSession drops the in-memory session without calling the server, for
// example after the account was deleted.
func (a *AuthService) EndSession() {
	a.mu.Lock()
	a.reset()
	a.mu.Unlock()
}

// UpdateTokens replaces the tokens of an established session after the
// server rotated them outside login or refresh. Empty fields keep their
// current value.
func (a *AuthService) UpdateTokens(tokens models.TokenPair) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != Authenticated || a.session == nil || tokens.AccessToken == "" {
		return
	}
	next := *a.session
	next.AccessToken = tokens.AccessToken
	if tokens.RefreshToken != "" {
		next.RefreshToken = tokens.RefreshToken
	}
	if tokens.TokenType != "" {
		next.TokenType = tokens.TokenType
	}
	a.session = &next
}

// Restore resumes a session from a stored token with a silent refresh. A
// failed refresh clears the token and leaves the service Anonymous without
// reporting an error.
func (a *AuthService) Restore(ctx context.Context) error {
	return a.status.track(func() error {
		token, err := a.tokens.Get(ctx)
		if err != nil {
			return fmt.Errorf("read stored token: %w", err)
		}
		if token == "" {
			return nil
		}
		if tokenstore.Expired(token, a.now()) {
			a.log.Debug(ctx, "stored token has expired, trying refresh")
		}
		if err := a.refresh(ctx); err != nil {
			a.log.Warn(ctx, "stored session could not be restored", "error", err)
			return nil
		}
		a.log.Info(ctx, "session restored")
		return nil
	})
}

func (a *AuthService) Login(ctx context.Context, email, password string) error {
	p := models.LoginPayload{Email: email, Password: password}
	if err := validate.Struct(p); err != nil {
		return err
	}
	return a.status.track(func() error {
		resp, err := a.client.Login(ctx, p)
		if err != nil {
			a.log.Warn(ctx, "login failed", "error", err)
			return err
		}

		if resp.Requires2FA {
			// a token left from an earlier session must not outlive it
			if err := a.tokens.Clear(context.WithoutCancel(ctx)); err != nil {
				a.log.Error(ctx, "failed to clear stored token", "error", err)
				return fmt.Errorf("%w: %w", client.ErrTokenStore, err)
			}
			a.mu.Lock()
			a.reset()
			a.state = PendingTwoFA
			a.pending2FA = &resp
			a.mu.Unlock()
			a.log.Info(ctx, "login requires 2FA", "user_id", resp.UserID)
			return nil
		}

		a.mu.Lock()
		a.establish(resp)
		a.mu.Unlock()
		a.log.Info(ctx, "logged in", "user_id", resp.UserID)
		return nil
	})
}

// VerifyTwoFA completes a login held in PendingTwoFA. A rejected code keeps
// the pending state so the user can try again.
func (a *AuthService) VerifyTwoFA(ctx context.Context, code string) error {
	if err := validate.OTP(code); err != nil {
		return err
	}
	return a.status.track(func() error {
		a.mu.RLock()
		pending := a.pending2FA
		a.mu.RUnlock()
		if pending == nil {
			return ErrNoPendingTwoFA
		}

		resp, err := a.client.VerifyTwoFALogin(ctx, models.TwoFALoginPayload{UserID: pending.UserID, Code: code})
		if err != nil {
			a.log.Warn(ctx, "2FA verification failed", "user_id", pending.UserID, "error", err)
			return err
		}

		a.mu.Lock()
		a.establish(resp)
		a.mu.Unlock()
		a.log.Info(ctx, "logged in with 2FA", "user_id", resp.UserID)
		return nil
	})
}

// Register creates the account and waits for email verification. No session
// is established until VerifyEmail succeeds.
func (a *AuthService) Register(ctx context.Context, email, password, fullName string) error {
	p := models.RegisterPayload{Email: email, Password: password, FullName: fullName}
	if err := validate.Struct(p); err != nil {
		return err
	}
	return a.status.track(func() error {
		resp, err := a.client.Register(ctx, p)
		if err != nil {
			a.log.Warn(ctx, "registration failed", "error", err)
			return err
		}

		a.mu.Lock()
		a.reset()
		a.state = PendingEmailVerification
		a.pendingReg = &resp
		a.mu.Unlock()
		a.log.Info(ctx, "registered, awaiting email verification", "user_id", resp.UserID)
		return nil
	})
}

// VerifyEmail consumes the token from the verification email. The session
// comes from the pending registration, or from a refresh when the account
// was registered by another process.
func (a *AuthService) VerifyEmail(ctx context.Context, token string) error {
	p := models.VerifyEmailPayload{Token: token}
	if err := validate.Struct(p); err != nil {
		return err
	}
	return a.status.track(func() error {
		resp, err := a.client.VerifyEmail(ctx, p)
		if err != nil {
			a.log.Warn(ctx, "email verification failed", "error", err)
			return err
		}
		if !resp.Verified || !resp.HasIdentity() {
			if resp.Message != "" {
				return fmt.Errorf("%w: %s", ErrEmailNotVerified, resp.Message)
			}
			return ErrEmailNotVerified
		}

		a.mu.Lock()
		pending := a.pendingReg
		if pending != nil {
			a.establish(*pending)
			a.mu.Unlock()
			a.log.Info(ctx, "email verified", "user_id", resp.UserID)
			return nil
		}
		a.mu.Unlock()

		if err := a.refresh(ctx); err != nil {
			return err
		}
		a.log.Info(ctx, "email verified", "user_id", resp.UserID)
		return nil
	})
}

func (a *AuthService) SendVerificationEmail(ctx context.Context, email string) (models.MessageResponse, error) {
	p := models.SendVerificationEmailPayload{Email: email}
	if err := validate.Struct(p); err != nil {
		return models.MessageResponse{}, err
	}
	return tracked(a.status, func() (models.MessageResponse, error) {
		return a.client.SendVerificationEmail(ctx, p)
	})
}

// ResendVerificationEmail is authenticated by the token saved at
// registration.
func (a *AuthService) ResendVerificationEmail(ctx context.Context) (models.MessageResponse, error) {
	return tracked(a.status, func() (models.MessageResponse, error) {
		return a.client.ResendVerificationEmail(ctx)
	})
}

func (a *AuthService) RequestPasswordReset(ctx context.Context, email string) (models.MessageResponse, error) {
	p := models.RequestPasswordResetPayload{Email: email}
	if err := validate.Struct(p); err != nil {
		return models.MessageResponse{}, err
	}
	return tracked(a.status, func() (models.MessageResponse, error) {
		return a.client.RequestPasswordReset(ctx, p)
	})
}

func (a *AuthService) ResetPassword(ctx context.Context, token, newPassword string) (models.ResetPasswordResponse, error) {
	p := models.ResetPasswordPayload{Token: token, NewPassword: newPassword}
	if err := validate.Struct(p); err != nil {
		return models.ResetPasswordResponse{}, err
	}
	return tracked(a.status, func() (models.ResetPasswordResponse, error) {
		return a.client.ResetPassword(ctx, p)
	})
}

// RefreshToken renews the session. Any failure ends it.
func (a *AuthService) RefreshToken(ctx context.Context) error {
	return a.status.track(func() error {
		return a.refresh(ctx)
	})
}

func (a *AuthService) refresh(ctx context.Context) error {
	resp, err := a.client.RefreshToken(ctx)
	if err != nil {
		a.mu.Lock()
		a.reset()
		a.mu.Unlock()
		if cerr := a.tokens.Clear(context.WithoutCancel(ctx)); cerr != nil {
			a.log.Error(ctx, "failed to clear stored token", "error", cerr)
		}
		a.log.Warn(ctx, "token refresh failed, session ended", "error", err)
		return err
	}

	a.mu.Lock()
	a.establish(resp)
	a.mu.Unlock()
	a.log.Debug(ctx, "token refreshed", "user_id", resp.UserID)
	return nil
}

// Logout ends the session locally whatever the server answers.
func (a *AuthService) Logout(ctx context.Context) error {
	return a.status.track(func() error {
		err := a.client.Logout(ctx)

		a.mu.Lock()
		a.reset()
		a.mu.Unlock()

		if err != nil {
			a.log.Warn(ctx, "logout call failed", "error", err)
			return err
		}
		a.log.Info(ctx, "logged out")
		return nil
	})
}

// Me fetches the current account and updates the session's plan and credits.
func (a *AuthService) Me(ctx context.Context) (models.AuthResponse, error) {
	return tracked(a.status, func() (models.AuthResponse, error) {
		resp, err := a.client.Me(ctx)
		if err != nil {
			return models.AuthResponse{}, err
		}

		a.mu.Lock()
		if a.state == Authenticated && a.session != nil && a.user != nil && a.user.ID == resp.UserID {
			a.session.Plan = resp.Plan
			a.session.CreditsRemaining = resp.CreditsRemaining
			a.session.FullName = resp.FullName
			a.session.Email = resp.Email
			a.user.FullName = resp.FullName
			a.user.Email = resp.Email
			a.user.UpdatedAt = a.now()
		}
		a.mu.Unlock()
		return resp, nil
	})
}

// UserID returns the id of the authenticated user or ErrNotAuthenticated.
func (a *AuthService) UserID() (string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.state != Authenticated || a.user == nil {
		return "", ErrNotAuthenticated
	}
	return a.user.ID, nil
}
