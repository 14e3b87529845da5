package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
)

func parseStatus(s string) (models.ApplicationStatus, error) {
	st := models.ApplicationStatus(strings.ReplaceAll(strings.ToLower(s), "-", "_"))
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q (one of: %s)", s, statusList())
	}
	return st, nil
}

func statusList() string {
	names := make([]string, len(models.ApplicationStatuses))
	for i, s := range models.ApplicationStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func (a *App) listApplications(ctx context.Context, args []string) error {
	var status models.ApplicationStatus
	if len(args) > 0 {
		st, err := parseStatus(args[0])
		if err != nil {
			return err
		}
		status = st
	}

	if _, err := a.applications.Load(ctx); err != nil {
		return err
	}

	counts := a.applications.Counts()
	var summary []string
	for _, s := range models.ApplicationStatuses {
		if n := counts[s]; n > 0 {
			summary = append(summary, fmt.Sprintf("%s: %d", s, n))
		}
	}
	if len(summary) > 0 {
		a.println(mutedStyle.Render(strings.Join(summary, "  ")))
	}

	list := a.applications.Filter(status)
	if len(list) == 0 {
		a.println("No applications found.")
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tROLE\tCOMPANY\tSTATUS\tAPPLIED\tFOLLOW-UPS\t")
	for _, app := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t\n",
			app.ID, truncate(app.JobTitle, 32), truncate(app.CompanyName, 24), app.Status, dateOf(app.AppliedDate), app.FollowUpCount)
	}
	return tw.Flush()
}

func (a *App) showApplication(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	app, err := a.applications.Get(ctx, args[0])
	if err != nil {
		return err
	}
	a.printApplication(app)
	return nil
}

func (a *App) printApplication(app models.JobApplication) {
	a.title(fmt.Sprintf("%s at %s", app.JobTitle, app.CompanyName))
	a.printf("  id:       %s\n", app.ID)
	a.printf("  status:   %s\n", badgeStyle.Render(string(app.Status)))
	if app.Location != "" || app.JobType != "" {
		a.printf("  where:    %s %s\n", app.Location, app.JobType)
	}
	if app.SalaryRange != "" {
		a.printf("  salary:   %s\n", app.SalaryRange)
	}
	if app.JobURL != "" {
		a.printf("  url:      %s\n", app.JobURL)
	}
	if len(app.Tags) > 0 {
		a.printf("  tags:     %s\n", strings.Join(app.Tags, ", "))
	}
	a.printf("  applied:  %s  updated: %s\n", dateOf(app.AppliedDate), ago(app.UpdatedAt))
	if app.Notes != "" {
		a.printf("  notes:    %s\n", app.Notes)
	}
	if len(app.FollowUps) > 0 {
		a.println("  follow-ups:")
		for _, f := range app.FollowUps {
			a.printf("    - [%s] %s (%s, %s)\n", f.FollowUpType, f.Note, f.Status, ago(f.CreatedAt))
		}
	}
}

func (a *App) addApplication(ctx context.Context, _ []string) error {
	var p models.CreateApplicationPayload
	var err error

	if p.JobTitle, err = GetSimpleText(a.in, "Job title", a.out); err != nil {
		return err
	}
	if p.CompanyName, err = GetSimpleText(a.in, "Company", a.out); err != nil {
		return err
	}
	if p.JobURL, err = GetSimpleText(a.in, "Job URL (optional)", a.out); err != nil {
		return err
	}
	if p.Location, err = GetSimpleText(a.in, "Location (optional)", a.out); err != nil {
		return err
	}
	jobType, err := GetSimpleText(a.in, "Job type (full-time, part-time, contract, internship, temporary, remote; optional)", a.out)
	if err != nil {
		return err
	}
	p.JobType = models.JobType(strings.ToLower(jobType))
	if p.SalaryRange, err = GetSimpleText(a.in, "Salary range (optional)", a.out); err != nil {
		return err
	}
	if p.Tags, err = GetList(a.in, "Tags, comma separated (optional)", a.out); err != nil {
		return err
	}
	status, err := GetSimpleText(a.in, "Status (default saved)", a.out)
	if err != nil {
		return err
	}
	if status != "" {
		if p.Status, err = parseStatus(status); err != nil {
			return err
		}
		if p.Status != models.StatusSaved {
			now := time.Now()
			p.AppliedDate = &now
		}
	}
	if p.Notes, err = GetSimpleText(a.in, "Notes (optional)", a.out); err != nil {
		return err
	}

	app, err := a.applications.Create(ctx, p)
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("Application %s created (%s).", app.ID, app.Status))
	return nil
}

// setApplicationStatus moves an application along the pipeline. Leaving
// "saved" for the first time stamps the applied date.
func (a *App) setApplicationStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	status, err := parseStatus(args[1])
	if err != nil {
		return err
	}
	p := models.UpdateApplicationPayload{Status: &status}
	for _, app := range a.applications.Applications() {
		if app.ID == args[0] && app.AppliedDate == nil && status != models.StatusSaved {
			now := time.Now()
			p.AppliedDate = &now
		}
	}

	app, err := a.applications.Update(ctx, args[0], p)
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("%s at %s is now %s.", app.JobTitle, app.CompanyName, app.Status))
	return nil
}

func (a *App) editApplication(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	var p models.UpdateApplicationPayload
	changed := false

	optional := func(prompt string) (*string, error) {
		v, err := GetSimpleText(a.in, prompt+" (leave empty to keep)", a.out)
		if err != nil || v == "" {
			return nil, err
		}
		changed = true
		return &v, nil
	}

	var err error
	if p.JobTitle, err = optional("Job title"); err != nil {
		return err
	}
	if p.CompanyName, err = optional("Company"); err != nil {
		return err
	}
	if p.JobURL, err = optional("Job URL"); err != nil {
		return err
	}
	if p.Location, err = optional("Location"); err != nil {
		return err
	}
	if p.SalaryRange, err = optional("Salary range"); err != nil {
		return err
	}
	if p.Notes, err = optional("Notes"); err != nil {
		return err
	}
	if p.Tags, err = GetList(a.in, "Tags, comma separated (leave empty to keep)", a.out); err != nil {
		return err
	}
	if len(p.Tags) > 0 {
		changed = true
	}
	if !changed {
		a.println("Nothing to change.")
		return nil
	}

	if _, err := a.applications.Update(ctx, args[0], p); err != nil {
		return err
	}
	a.success("Application updated.")
	return nil
}

func (a *App) deleteApplication(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	ok, err := Confirm(a.in, fmt.Sprintf("Delete application %s?", args[0]), a.out)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	if err := a.applications.Delete(ctx, args[0]); err != nil {
		return err
	}
	a.success("Application deleted.")
	return nil
}

func (a *App) addFollowUp(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	kind, err := GetSimpleText(a.in, "Type (email, phone, linkedin, note, interview_prep, other)", a.out)
	if err != nil {
		return err
	}
	note, err := GetSimpleText(a.in, "Note", a.out)
	if err != nil {
		return err
	}
	done, err := Confirm(a.in, "Already done?", a.out)
	if err != nil {
		return err
	}

	p := models.AddFollowUpPayload{
		FollowUpType: models.FollowUpType(strings.ToLower(kind)),
		Note:         note,
		Status:       models.FollowUpPending,
	}
	if done {
		p.Status = models.FollowUpCompleted
	}
	f, err := a.applications.AddFollowUp(ctx, args[0], p)
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("Follow-up %s recorded.", f.ID))
	return nil
}
