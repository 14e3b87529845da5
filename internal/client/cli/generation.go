package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
)

const defaultStarStories = 3

func (a *App) jobDescription() (string, error) {
	return GetMultiline(a.in, "Paste the job description", a.out)
}

// resumeText fetches the content of a stored resume for the AI tools.
func (a *App) resumeText(ctx context.Context, id string) (string, error) {
	r, err := a.resumes.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return r.Content, nil
}

func (a *App) analyzeJob(ctx context.Context, _ []string) error {
	jd, err := a.jobDescription()
	if err != nil {
		return err
	}
	resp, err := a.generation.AnalyzeJob(ctx, jd)
	if err != nil {
		return err
	}
	a.title("Requirements")
	a.println(resp.ExtractedRequirements)
	if resp.JobID != "" {
		a.println(mutedStyle.Render("job id: " + resp.JobID))
	}
	return nil
}

func (a *App) tailorResume(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	text, err := a.resumeText(ctx, args[0])
	if err != nil {
		return err
	}
	jd, err := a.jobDescription()
	if err != nil {
		return err
	}
	role, err := GetSimpleText(a.in, "Target role (optional)", a.out)
	if err != nil {
		return err
	}
	tone, err := GetSimpleText(a.in, "Tone (professional, conversational, concise; default professional)", a.out)
	if err != nil {
		return err
	}
	if tone == "" {
		tone = string(models.ToneProfessional)
	}

	resp, err := a.generation.Tailor(ctx, text, jd, models.TailorOptions{
		TargetRole: role,
		Tone:       models.Tone(strings.ToLower(tone)),
	})
	if err != nil {
		return err
	}
	a.title("Tailored resume")
	a.println(resp.TailoredResume)
	if resp.ExtractedRequirements != "" {
		a.println()
		a.title("Requirements matched")
		a.println(resp.ExtractedRequirements)
	}
	return nil
}

func (a *App) coverLetter(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	text, err := a.resumeText(ctx, args[0])
	if err != nil {
		return err
	}
	jd, err := a.jobDescription()
	if err != nil {
		return err
	}
	company, err := GetSimpleText(a.in, "Company", a.out)
	if err != nil {
		return err
	}
	role, err := GetSimpleText(a.in, "Role title", a.out)
	if err != nil {
		return err
	}

	resp, err := a.generation.CoverLetter(ctx, text, jd, company, role)
	if err != nil {
		return err
	}
	a.title("Cover letter")
	a.println(resp.CoverLetter)
	return nil
}

func (a *App) starStories(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	count := defaultStarStories
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return errUsage
		}
		count = n
	}
	text, err := a.resumeText(ctx, args[0])
	if err != nil {
		return err
	}
	jd, err := a.jobDescription()
	if err != nil {
		return err
	}

	resp, err := a.generation.StarStories(ctx, text, jd, count)
	if err != nil {
		return err
	}
	for i, story := range resp.StarStories {
		a.title(fmt.Sprintf("Story %d", i+1))
		a.println(story)
		a.println()
	}
	return nil
}
