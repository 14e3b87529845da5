package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/client"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/validate"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/logging"
)

var (
	ErrUnknownPlan = errors.New("unknown plan")
	ErrNoPrice     = errors.New("plan is not sold for this billing cycle")
)

// BillingService caches plans, the subscription and billing history.
type BillingService struct {
	client client.Client
	status *Status
	log    logging.Logger

	mu           sync.RWMutex
	plans        []models.PlanInfo
	subscription *models.Subscription
	history      []models.BillingEvent
}

func NewBillingService(c client.Client, st *Status, log logging.Logger) *BillingService {
	return &BillingService{client: c, status: st, log: log}
}

func (s *BillingService) Plans() []models.PlanInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.plans)
}

func (s *BillingService) Subscription() *models.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.subscription == nil {
		return nil
	}
	sub := *s.subscription
	return &sub
}

// CurrentPlan is the plan of the cached subscription, free without one.
func (s *BillingService) CurrentPlan() models.Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.subscription == nil || s.subscription.Plan == "" {
		return models.PlanFree
	}
	return s.subscription.Plan
}

func (s *BillingService) History() []models.BillingEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.history)
}

func (s *BillingService) LoadPlans(ctx context.Context) ([]models.PlanInfo, error) {
	return tracked(s.status, func() ([]models.PlanInfo, error) {
		plans, err := s.client.GetPlans(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.plans = slices.Clone(plans)
		s.mu.Unlock()
		return plans, nil
	})
}

// LoadSubscription returns nil for a user who never subscribed.
func (s *BillingService) LoadSubscription(ctx context.Context) (*models.Subscription, error) {
	return tracked(s.status, func() (*models.Subscription, error) {
		sub, err := s.client.GetSubscription(ctx)
		if err != nil {
			return nil, err
		}
		s.setSubscription(sub)
		return sub, nil
	})
}

func (s *BillingService) LoadHistory(ctx context.Context) ([]models.BillingEvent, error) {
	return tracked(s.status, func() ([]models.BillingEvent, error) {
		events, err := s.client.GetBillingHistory(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.history = slices.Clone(events)
		s.mu.Unlock()
		return events, nil
	})
}

func (s *BillingService) setSubscription(sub *models.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sub == nil {
		s.subscription = nil
		return
	}
	c := *sub
	s.subscription = &c
}

// Checkout opens a Stripe checkout session and returns the URL to send the
// user to.
func (s *BillingService) Checkout(ctx context.Context, p models.CreateCheckoutSessionPayload) (string, error) {
	if err := validate.Struct(p); err != nil {
		return "", err
	}
	return tracked(s.status, func() (string, error) {
		resp, err := s.client.CreateCheckoutSession(ctx, p)
		if err != nil {
			return "", err
		}
		s.log.Info(ctx, "checkout session created", "session_id", resp.SessionID)
		return resp.URL, nil
	})
}

// PriceFor resolves the Stripe price of a cached plan.
func (s *BillingService) PriceFor(plan models.Plan, cycle models.BillingCycle) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.plans {
		if p.Name != plan {
			continue
		}
		if id := p.PriceID(cycle); id != "" {
			return id, nil
		}
		return "", fmt.Errorf("%w: %s/%s", ErrNoPrice, plan, cycle)
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownPlan, plan)
}

func (s *BillingService) Subscribe(ctx context.Context, p models.CreateSubscriptionPayload) (models.Subscription, error) {
	if err := validate.Struct(p); err != nil {
		return models.Subscription{}, err
	}
	return s.mutate(ctx, "subscription created", func() (models.SubscriptionResponse, error) {
		return s.client.CreateSubscription(ctx, p)
	})
}

func (s *BillingService) ChangePlan(ctx context.Context, p models.UpdateSubscriptionPayload) (models.Subscription, error) {
	if err := validate.Struct(p); err != nil {
		return models.Subscription{}, err
	}
	return s.mutate(ctx, "subscription updated", func() (models.SubscriptionResponse, error) {
		return s.client.UpdateSubscription(ctx, p)
	})
}

// Cancel stops the subscription, at the end of the paid period when
// atPeriodEnd is set.
func (s *BillingService) Cancel(ctx context.Context, atPeriodEnd bool) (models.Subscription, error) {
	return s.mutate(ctx, "subscription canceled", func() (models.SubscriptionResponse, error) {
		return s.client.CancelSubscription(ctx, models.CancelSubscriptionPayload{AtPeriodEnd: atPeriodEnd})
	})
}

func (s *BillingService) mutate(ctx context.Context, msg string, fn func() (models.SubscriptionResponse, error)) (models.Subscription, error) {
	return tracked(s.status, func() (models.Subscription, error) {
		resp, err := fn()
		if err != nil {
			return models.Subscription{}, err
		}
		s.setSubscription(&resp.Subscription)
		s.log.Info(ctx, msg, "plan", resp.Subscription.Plan, "status", resp.Subscription.Status)
		return resp.Subscription, nil
	})
}

func (s *BillingService) PaymentIntent(ctx context.Context, p models.PaymentIntentPayload) (models.PaymentIntentResponse, error) {
	if err := validate.Struct(p); err != nil {
		return models.PaymentIntentResponse{}, err
	}
	return tracked(s.status, func() (models.PaymentIntentResponse, error) {
		return s.client.CreatePaymentIntent(ctx, p)
	})
}

func (s *BillingService) Clear() {
	s.mu.Lock()
	s.subscription = nil
	s.history = nil
	s.mu.Unlock()
}
