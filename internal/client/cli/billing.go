package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
)

func parseCycle(s string) (models.BillingCycle, error) {
	switch strings.ToLower(s) {
	case "", "month", "monthly":
		return models.BillingMonthly, nil
	case "year", "yearly", "annual":
		return models.BillingYearly, nil
	}
	return "", fmt.Errorf("unknown billing cycle %q (month or year)", s)
}

// priceFor resolves a plan's price, fetching the catalogue on first use.
func (a *App) priceFor(ctx context.Context, plan, cycle string) (string, error) {
	c, err := parseCycle(cycle)
	if err != nil {
		return "", err
	}
	if len(a.billing.Plans()) == 0 {
		if _, err := a.billing.LoadPlans(ctx); err != nil {
			return "", err
		}
	}
	return a.billing.PriceFor(models.Plan(strings.ToLower(plan)), c)
}

func (a *App) listPlans(ctx context.Context, _ []string) error {
	plans, err := a.billing.LoadPlans(ctx)
	if err != nil {
		return err
	}
	current := a.billing.CurrentPlan()
	for _, p := range plans {
		name := p.DisplayName
		if name == "" {
			name = string(p.Name)
		}
		if p.Name == current && a.auth.IsAuthenticated() {
			name += " " + badgeStyle.Render("[current]")
		}
		a.title(name)
		if p.Description != "" {
			a.println("  " + p.Description)
		}
		a.printf("  %s / month, %s / year\n", money(p.PriceMonthly, "usd"), money(p.PriceYearly, "usd"))
		a.printf("  %d credits per month, up to %d resumes\n", p.MonthlyCredits, p.MaxResumes)
		for _, f := range p.Features {
			a.println("  - " + f)
		}
	}
	return nil
}

func (a *App) showSubscription(ctx context.Context, _ []string) error {
	sub, err := a.billing.LoadSubscription(ctx)
	if err != nil {
		return err
	}
	if sub == nil {
		a.println("You are on the free plan. See 'plans' to upgrade.")
		return nil
	}
	a.printSubscription(*sub)
	return nil
}

func (a *App) printSubscription(sub models.Subscription) {
	a.title(fmt.Sprintf("%s plan (%s)", sub.Plan, sub.Status))
	if sub.BillingCycle != "" {
		a.printf("  billed:          every %s\n", sub.BillingCycle)
	}
	a.printf("  credits left:    %d\n", sub.CreditsRemaining)
	a.printf("  period ends:     %s\n", dateOf(sub.CurrentPeriodEnd))
	if sub.CanceledAt != nil {
		a.printf("  canceled:        %s\n", agoPtr(sub.CanceledAt))
	}
}

// checkout opens a hosted checkout session that returns to the web app.
func (a *App) checkout(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	cycle := ""
	if len(args) == 2 {
		cycle = args[1]
	}
	price, err := a.priceFor(ctx, args[0], cycle)
	if err != nil {
		return err
	}

	base := strings.TrimRight(a.cfg.AppURL, "/")
	url, err := a.billing.Checkout(ctx, models.CreateCheckoutSessionPayload{
		PriceID:    price,
		SuccessURL: base + "/billing?success=true",
		CancelURL:  base + "/subscribe",
	})
	if err != nil {
		return err
	}
	a.println("Complete the payment in your browser:")
	a.println("  " + url)
	return nil
}

func (a *App) subscribe(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errUsage
	}
	price, err := a.priceFor(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	sub, err := a.billing.Subscribe(ctx, models.CreateSubscriptionPayload{PriceID: price, PaymentMethodID: args[2]})
	if err != nil {
		return err
	}
	a.success("Subscribed.")
	a.printSubscription(sub)
	return nil
}

func (a *App) changePlan(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	cycle := ""
	if len(args) == 2 {
		cycle = args[1]
	}
	price, err := a.priceFor(ctx, args[0], cycle)
	if err != nil {
		return err
	}
	sub, err := a.billing.ChangePlan(ctx, models.UpdateSubscriptionPayload{PriceID: price})
	if err != nil {
		return err
	}
	a.success("Plan changed.")
	a.printSubscription(sub)
	return nil
}

// cancelSubscription cancels at the end of the paid period unless --now is
// given.
func (a *App) cancelSubscription(ctx context.Context, args []string) error {
	now := len(args) == 1 && args[0] == "--now"
	if len(args) > 1 || (len(args) == 1 && !now) {
		return errUsage
	}
	prompt := "Cancel your subscription at the end of the billing period?"
	if now {
		prompt = "Cancel your subscription immediately?"
	}
	ok, err := Confirm(a.in, prompt, a.out)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}

	sub, err := a.billing.Cancel(ctx, !now)
	if err != nil {
		return err
	}
	a.success("Subscription canceled.")
	a.printSubscription(sub)
	return nil
}

func (a *App) billingHistory(ctx context.Context, _ []string) error {
	events, err := a.billing.LoadHistory(ctx)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		a.println("No billing events.")
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tAMOUNT\tDESCRIPTION\t")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", e.CreatedAt.Format("2006-01-02"), e.Type, money(e.Amount, e.Currency), truncate(e.Description, 48))
	}
	return tw.Flush()
}

func (a *App) paymentIntent(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	amount, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errUsage
	}
	resp, err := a.billing.PaymentIntent(ctx, models.PaymentIntentPayload{
		Amount:      amount,
		Currency:    strings.ToLower(args[1]),
		Description: strings.Join(args[2:], " "),
	})
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("Payment intent %s created for %s.", resp.PaymentIntentID, money(amount, args[1])))
	a.println(mutedStyle.Render("client secret: " + resp.ClientSecret))
	return nil
}
