package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
)

func percent(f float64) string {
	return humanize.FtoaWithDigits(f, 1) + "%"
}

func (a *App) showAnalytics(ctx context.Context, _ []string) error {
	r, err := a.analytics.Load(ctx)
	if err != nil {
		return err
	}

	m := r.Metrics
	a.title("Applications")
	a.printf("  total:                %d\n", m.TotalApplications)
	a.printf("  success rate:         %s\n", percent(m.SuccessRate))
	a.printf("  days to decision:     %s\n", humanize.FtoaWithDigits(m.AverageDaysToDecision, 1))
	var byStatus []string
	for status, n := range m.TotalByStatus {
		byStatus = append(byStatus, fmt.Sprintf("%s %d", status, n))
	}
	slices.Sort(byStatus)
	if len(byStatus) > 0 {
		a.printf("  by status:            %s\n", strings.Join(byStatus, ", "))
	}

	u := r.ResumeUsage
	a.title("Resumes")
	a.printf("  used:                 %d of %d\n", u.ResumesUsed, u.TotalResumes)
	a.printf("  tailors:              %d (%s per resume)\n", u.TotalTailors, humanize.FtoaWithDigits(u.AverageTailorsPerResume, 1))
	if u.MostUsedResume != nil {
		a.printf("  most used:            %s\n", *u.MostUsedResume)
	}

	f := r.FollowUpStats
	a.title("Follow-ups")
	a.printf("  total:                %d (%d pending)\n", f.TotalFollowUps, f.PendingFollowUps)
	a.printf("  per application:      %s\n", humanize.FtoaWithDigits(f.AverageFollowUpsPerApplication, 1))

	a.title("Trends")
	a.printf("  month over month:     %s\n", percent(r.Trends.MonthOverMonthGrowth))
	a.printf("  weekly average:       %s\n", humanize.FtoaWithDigits(r.Trends.WeeklyAverageApplications, 1))

	mi := r.MarketInsights
	if len(mi.TopCompanies) > 0 {
		a.title("Top companies")
		for _, c := range mi.TopCompanies {
			a.printf("  %-24s %d applications, %s success\n", truncate(c.CompanyName, 24), c.ApplicationCount, percent(c.SuccessRate))
		}
	}
	if len(mi.TopLocations) > 0 {
		a.title("Top locations")
		for _, l := range mi.TopLocations {
			a.printf("  %-24s %d applications\n", truncate(l.Location, 24), l.ApplicationCount)
		}
	}
	if s := mi.SalaryStatistics; s.Average != nil {
		a.title("Salaries")
		a.printf("  min %s  max %s  avg %s  median %s\n", amount(s.Min), amount(s.Max), amount(s.Average), amount(s.Median))
	}

	a.println(mutedStyle.Render("generated " + ago(r.GeneratedAt)))
	return nil
}

func amount(f *float64) string {
	if f == nil {
		return "-"
	}
	return humanize.Commaf(float64(int64(*f)))
}
