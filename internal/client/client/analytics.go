package client

import (
	"context"
	"net/http"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
)

func (c *HTTPClient) GetAnalytics(ctx context.Context) (models.UserAnalytics, error) {
	return call[models.UserAnalytics](ctx, c, http.MethodGet, "/analytics", nil)
}
