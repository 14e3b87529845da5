package client

import (
	"context"
	"net/http"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
)

func (c *HTTPClient) GetPlans(ctx context.Context) ([]models.PlanInfo, error) {
	resp, err := call[models.GetPlansResponse](ctx, c, http.MethodGet, "/stripe/plans", nil)
	return resp.Plans, err
}

// GetSubscription returns nil when the user never subscribed.
func (c *HTTPClient) GetSubscription(ctx context.Context) (*models.Subscription, error) {
	resp, err := call[models.GetSubscriptionResponse](ctx, c, http.MethodGet, "/stripe/subscription", nil)
	return resp.Subscription, err
}

func (c *HTTPClient) CreateCheckoutSession(ctx context.Context, p models.CreateCheckoutSessionPayload) (models.CreateCheckoutSessionResponse, error) {
	return call[models.CreateCheckoutSessionResponse](ctx, c, http.MethodPost, "/stripe/checkout-session", p)
}

func (c *HTTPClient) CreateSubscription(ctx context.Context, p models.CreateSubscriptionPayload) (models.SubscriptionResponse, error) {
	return call[models.SubscriptionResponse](ctx, c, http.MethodPost, "/stripe/create-subscription", p)
}

func (c *HTTPClient) UpdateSubscription(ctx context.Context, p models.UpdateSubscriptionPayload) (models.SubscriptionResponse, error) {
	return call[models.SubscriptionResponse](ctx, c, http.MethodPost, "/stripe/update-subscription", p)
}

func (c *HTTPClient) CancelSubscription(ctx context.Context, p models.CancelSubscriptionPayload) (models.SubscriptionResponse, error) {
	return call[models.SubscriptionResponse](ctx, c, http.MethodPost, "/stripe/cancel-subscription", p)
}

func (c *HTTPClient) CreatePaymentIntent(ctx context.Context, p models.PaymentIntentPayload) (models.PaymentIntentResponse, error) {
	return call[models.PaymentIntentResponse](ctx, c, http.MethodPost, "/stripe/payment-intent", p)
}

func (c *HTTPClient) GetBillingHistory(ctx context.Context) ([]models.BillingEvent, error) {
	resp, err := call[models.GetBillingHistoryResponse](ctx, c, http.MethodGet, "/stripe/billing-history", nil)
	return resp.Events, err
}
