package models

import "time"

// PlanInfo is a purchasable tier as listed by /stripe/plans. Prices are in
// cents.
type PlanInfo struct {
	ID                   string   `json:"id"`
	Name                 Plan     `json:"name"`
	DisplayName          string   `json:"display_name"`
	Description          string   `json:"description"`
	PriceMonthly         int64    `json:"price_monthly"`
	PriceYearly          int64    `json:"price_yearly"`
	StripePriceIDMonthly string   `json:"stripe_price_id_monthly,omitempty"`
	StripePriceIDYearly  string   `json:"stripe_price_id_yearly,omitempty"`
	MaxResumes           int      `json:"max_resumes"`
	MonthlyCredits       int      `json:"monthly_credits"`
	Features             []string `json:"features"`
}

func (p PlanInfo) CheckContract() error {
	return checkEnum("name", p.Name)
}

// PriceID returns the Stripe price for the cycle, or "" if the plan is not
// sold that way.
func (p PlanInfo) PriceID(cycle BillingCycle) string {
	if cycle == BillingYearly {
		return p.StripePriceIDYearly
	}
	return p.StripePriceIDMonthly
}

type GetPlansResponse struct {
	Plans []PlanInfo `json:"plans"`
}

func (r GetPlansResponse) CheckContract() error {
	return CheckAll(r.Plans)
}

type Subscription struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"user_id"`
	Plan               Plan               `json:"plan"`
	StripeCustomerID   *string            `json:"stripe_customer_id"`
	Status             SubscriptionStatus `json:"status"`
	BillingCycle       BillingCycle       `json:"billing_cycle,omitempty"`
	CreditsRemaining   int                `json:"credits_remaining"`
	CurrentPeriodStart *time.Time         `json:"current_period_start,omitempty"`
	CurrentPeriodEnd   *time.Time         `json:"current_period_end"`
	CanceledAt         *time.Time         `json:"canceled_at,omitempty"`
}

func (s Subscription) CheckContract() error {
	if err := checkEnum("plan", s.Plan); err != nil {
		return err
	}
	if err := checkEnum("status", s.Status); err != nil {
		return err
	}
	return checkEnum("billing_cycle", s.BillingCycle)
}

// GetSubscriptionResponse carries a nil subscription for users on the free
// plan who never purchased.
type GetSubscriptionResponse struct {
	Subscription *Subscription `json:"subscription"`
}

func (r GetSubscriptionResponse) CheckContract() error {
	if r.Subscription == nil {
		return nil
	}
	return r.Subscription.CheckContract()
}

type CreateCheckoutSessionPayload struct {
	PriceID    string `json:"price_id" validate:"required"`
	SuccessURL string `json:"success_url" validate:"required,url"`
	CancelURL  string `json:"cancel_url" validate:"required,url"`
}

type CreateCheckoutSessionResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type CreateSubscriptionPayload struct {
	PriceID         string `json:"price_id" validate:"required"`
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}

type UpdateSubscriptionPayload struct {
	PriceID string `json:"price_id" validate:"required"`
}

// SubscriptionResponse is returned by the create, update and cancel
// subscription endpoints.
type SubscriptionResponse struct {
	Subscription Subscription `json:"subscription"`
	Message      string       `json:"message,omitempty"`
}

func (r SubscriptionResponse) CheckContract() error {
	return r.Subscription.CheckContract()
}

type CancelSubscriptionPayload struct {
	AtPeriodEnd bool `json:"at_period_end"`
}

type PaymentIntentPayload struct {
	Amount      int64  `json:"amount" validate:"gt=0"`
	Currency    string `json:"currency" validate:"required,len=3"`
	Description string `json:"description,omitempty"`
}

type PaymentIntentResponse struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
}

type BillingEvent struct {
	ID          string           `json:"id"`
	Type        BillingEventType `json:"type"`
	Description string           `json:"description"`
	// Amount is in cents.
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (e BillingEvent) CheckContract() error {
	return checkEnum("type", e.Type)
}

type GetBillingHistoryResponse struct {
	Events []BillingEvent `json:"events"`
}

func (r GetBillingHistoryResponse) CheckContract() error {
	return CheckAll(r.Events)
}
