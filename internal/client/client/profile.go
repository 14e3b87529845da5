package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
)

func (c *HTTPClient) GetProfile(ctx context.Context) (models.ProfileData, error) {
	return call[models.ProfileData](ctx, c, http.MethodGet, "/user/profile", nil)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, p models.UpdateProfilePayload) (models.ProfileData, error) {
	return call[models.ProfileData](ctx, c, http.MethodPut, "/user/profile", p)
}

func (c *HTTPClient) ChangePassword(ctx context.Context, p models.ChangePasswordPayload) (models.ChangePasswordResponse, error) {
	return call[models.ChangePasswordResponse](ctx, c, http.MethodPost, "/user/change-password", p)
}

// DeleteAccount removes the account and, once the server confirms, the
// stored token with it.
func (c *HTTPClient) DeleteAccount(ctx context.Context, p models.DeleteAccountPayload) (models.DeleteAccountResponse, error) {
	resp, err := call[models.DeleteAccountResponse](ctx, c, http.MethodDelete, "/user/account", p)
	if err != nil {
		return models.DeleteAccountResponse{}, err
	}
	return resp, c.clearToken(ctx)
}

// GetUsage returns the quotas of the caller; userID, when set, is passed as
// a query parameter.
func (c *HTTPClient) GetUsage(ctx context.Context, userID string) (models.UsageResponse, error) {
	var q url.Values
	if userID != "" {
		q = url.Values{"user_id": {userID}}
	}
	var out models.UsageResponse
	err := c.do(ctx, http.MethodGet, "/usage/me", q, nil, &out)
	return out, err
}
