package client

import (
	"context"
	"net/http"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
)

func (c *HTTPClient) Register(ctx context.Context, p models.RegisterPayload) (models.AuthResponse, error) {
	resp, err := call[models.AuthResponse](ctx, c, http.MethodPost, "/auth/register", p)
	if err != nil {
		return models.AuthResponse{}, err
	}
	return resp, c.saveToken(ctx, resp.AccessToken)
}

// Login saves the access token unless the account requires a second factor.
// In that case any previously stored token is cleared and the session only
// starts after VerifyTwoFALogin.
func (c *HTTPClient) Login(ctx context.Context, p models.LoginPayload) (models.AuthResponse, error) {
	resp, err := call[models.AuthResponse](ctx, c, http.MethodPost, "/auth/login", p)
	if err != nil {
		return models.AuthResponse{}, err
	}
	if resp.Requires2FA {
		return resp, c.clearToken(ctx)
	}
	return resp, c.saveToken(ctx, resp.AccessToken)
}

// Logout clears the stored token whatever the server answers.
func (c *HTTPClient) Logout(ctx context.Context) (err error) {
	defer func() {
		if cerr := c.clearToken(context.WithoutCancel(ctx)); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (c *HTTPClient) RefreshToken(ctx context.Context) (models.AuthResponse, error) {
	resp, err := call[models.AuthResponse](ctx, c, http.MethodPost, "/auth/refresh", nil)
	if err != nil {
		return models.AuthResponse{}, err
	}
	return resp, c.saveToken(ctx, resp.AccessToken)
}

func (c *HTTPClient) Me(ctx context.Context) (models.AuthResponse, error) {
	return call[models.AuthResponse](ctx, c, http.MethodGet, "/auth/me", nil)
}

func (c *HTTPClient) SetupTwoFA(ctx context.Context) (models.TwoFASetupResponse, error) {
	return call[models.TwoFASetupResponse](ctx, c, http.MethodPost, "/auth/2fa/setup", nil)
}

// VerifyTwoFASetup confirms the authenticator. The server may rotate the
// access token on success; a returned token replaces the stored one.
func (c *HTTPClient) VerifyTwoFASetup(ctx context.Context, p models.TwoFAVerifyPayload) (models.TwoFAVerifyResponse, error) {
	resp, err := call[models.TwoFAVerifyResponse](ctx, c, http.MethodPost, "/auth/2fa/verify-setup", p)
	if err != nil {
		return models.TwoFAVerifyResponse{}, err
	}
	return resp, c.saveToken(ctx, resp.AccessToken)
}

func (c *HTTPClient) VerifyTwoFALogin(ctx context.Context, p models.TwoFALoginPayload) (models.AuthResponse, error) {
	resp, err := call[models.AuthResponse](ctx, c, http.MethodPost, "/auth/2fa/verify-login", p)
	if err != nil {
		return models.AuthResponse{}, err
	}
	return resp, c.saveToken(ctx, resp.AccessToken)
}

func (c *HTTPClient) DisableTwoFA(ctx context.Context) (models.TwoFADisableResponse, error) {
	return call[models.TwoFADisableResponse](ctx, c, http.MethodPost, "/auth/2fa/disable", nil)
}

func (c *HTTPClient) SendVerificationEmail(ctx context.Context, p models.SendVerificationEmailPayload) (models.MessageResponse, error) {
	return call[models.MessageResponse](ctx, c, http.MethodPost, "/auth/send-verification-email", p)
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, p models.VerifyEmailPayload) (models.VerifyEmailResponse, error) {
	return call[models.VerifyEmailResponse](ctx, c, http.MethodPost, "/auth/verify-email", p)
}

func (c *HTTPClient) ResendVerificationEmail(ctx context.Context) (models.MessageResponse, error) {
	return call[models.MessageResponse](ctx, c, http.MethodPost, "/auth/resend-verification-email", nil)
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, p models.RequestPasswordResetPayload) (models.MessageResponse, error) {
	return call[models.MessageResponse](ctx, c, http.MethodPost, "/auth/request-password-reset", p)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, p models.ResetPasswordPayload) (models.ResetPasswordResponse, error) {
	return call[models.ResetPasswordResponse](ctx, c, http.MethodPost, "/auth/reset-password", p)
}
