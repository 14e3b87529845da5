package models

import "time"

type ApplicationMetrics struct {
	TotalApplications     int                       `json:"total_applications"`
	TotalByStatus         map[ApplicationStatus]int `json:"total_by_status"`
	SuccessRate           float64                   `json:"success_rate"`
	AverageDaysToDecision float64                   `json:"average_days_to_decision"`
}

type ResumeUsage struct {
	TotalResumes            int     `json:"total_resumes"`
	ResumesUsed             int     `json:"resumes_used"`
	TotalTailors            int     `json:"total_tailors"`
	AverageTailorsPerResume float64 `json:"average_tailors_per_resume"`
	MostUsedResume          *string `json:"most_used_resume"`
}

type FollowUpStats struct {
	TotalFollowUps                 int                  `json:"total_follow_ups"`
	PendingFollowUps               int                  `json:"pending_follow_ups"`
	AverageFollowUpsPerApplication float64              `json:"average_follow_ups_per_application"`
	FollowUpsByType                map[FollowUpType]int `json:"follow_ups_by_type"`
}

type Trends struct {
	MonthOverMonthGrowth      float64 `json:"month_over_month_growth"`
	WeeklyAverageApplications float64 `json:"weekly_average_applications"`
}

type CompanyInsight struct {
	CompanyName      string  `json:"company_name"`
	ApplicationCount int     `json:"application_count"`
	SuccessRate      float64 `json:"success_rate"`
}

type LocationInsight struct {
	Location         string   `json:"location"`
	ApplicationCount int      `json:"application_count"`
	AverageSalary    *float64 `json:"average_salary"`
}

type SalaryStatistics struct {
	Min     *float64 `json:"min"`
	Max     *float64 `json:"max"`
	Average *float64 `json:"average"`
	Median  *float64 `json:"median"`
}

type MarketInsights struct {
	TopCompanies         []CompanyInsight  `json:"top_companies"`
	TopLocations         []LocationInsight `json:"top_locations"`
	JobTypesDistribution map[JobType]int   `json:"job_types_distribution"`
	SalaryStatistics     SalaryStatistics  `json:"salary_statistics"`
}

// UserAnalytics is computed server side; the client only displays it.
type UserAnalytics struct {
	Metrics        ApplicationMetrics `json:"metrics"`
	ResumeUsage    ResumeUsage        `json:"resume_usage"`
	FollowUpStats  FollowUpStats      `json:"follow_up_stats"`
	Trends         Trends             `json:"trends"`
	MarketInsights MarketInsights     `json:"market_insights"`
	GeneratedAt    time.Time          `json:"generated_at"`
}

func (a UserAnalytics) CheckContract() error {
	for s := range a.Metrics.TotalByStatus {
		if err := checkEnum("metrics.total_by_status", s); err != nil {
			return err
		}
	}
	for t := range a.FollowUpStats.FollowUpsByType {
		if err := checkEnum("follow_up_stats.follow_ups_by_type", t); err != nil {
			return err
		}
	}
	for j := range a.MarketInsights.JobTypesDistribution {
		if err := checkEnum("market_insights.job_types_distribution", j); err != nil {
			return err
		}
	}
	return nil
}
