package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
)

func (a *App) listResumes(ctx context.Context, _ []string) error {
	list, err := a.resumes.Load(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No resumes yet. Add one with resume-add or resume-import.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tFILE\tVERSION\tTAILORED\tUPDATED\t")
	for _, r := range list {
		title := truncate(r.Title, 40)
		if r.IsDefault {
			title += " *"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t\n", r.ID, title, r.FileName, r.Version, r.TailorCount, ago(r.UpdatedAt))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	a.println(mutedStyle.Render("* default resume"))
	return nil
}

func (a *App) showResume(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	r, err := a.resumes.Get(ctx, args[0])
	if err != nil {
		return err
	}
	a.printResume(r)
	return nil
}

func (a *App) printResume(r models.Resume) {
	title := r.Title
	if r.IsDefault {
		title += " " + badgeStyle.Render("[default]")
	}
	a.title(title)
	a.printf("  id: %s  file: %s  version: %d  status: %s  updated: %s\n",
		r.ID, r.FileName, r.Version, r.Status, ago(r.UpdatedAt))
	if r.Content != "" {
		a.println()
		a.println(r.Content)
	}
}

func (a *App) addResume(ctx context.Context, _ []string) error {
	title, err := GetSimpleText(a.in, "Title", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.in, "Paste the resume text", a.out)
	if err != nil {
		return err
	}
	isDefault, err := Confirm(a.in, "Make it the default resume?", a.out)
	if err != nil {
		return err
	}

	r, err := a.resumes.Create(ctx, models.CreateResumePayload{Title: title, Content: content, IsDefault: isDefault})
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("Resume %q created (%s).", r.Title, r.ID))
	return nil
}

func (a *App) importResume(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	isDefault, err := Confirm(a.in, "Make it the default resume?", a.out)
	if err != nil {
		return err
	}
	r, err := a.resumes.Import(ctx, args[0], strings.Join(args[1:], " "), isDefault)
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("Imported %s as %q (%s).", r.FileName, r.Title, r.ID))
	return nil
}

func (a *App) editResume(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	var p models.UpdateResumePayload

	title, err := GetSimpleText(a.in, "New title (leave empty to keep)", a.out)
	if err != nil {
		return err
	}
	if title != "" {
		p.Title = &title
	}
	replace, err := Confirm(a.in, "Replace the content?", a.out)
	if err != nil {
		return err
	}
	if replace {
		content, err := GetMultiline(a.in, "Paste the new resume text", a.out)
		if err != nil {
			return err
		}
		p.Content = &content
	}
	if p.Title == nil && p.Content == nil {
		a.println("Nothing to change.")
		return nil
	}

	r, err := a.resumes.Update(ctx, args[0], p)
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("Resume %s updated to version %d.", r.ID, r.Version))
	return nil
}

func (a *App) deleteResume(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	ok, err := Confirm(a.in, fmt.Sprintf("Delete resume %s?", args[0]), a.out)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	if err := a.resumes.Delete(ctx, args[0]); err != nil {
		return err
	}
	a.success("Resume deleted.")
	return nil
}

func (a *App) setDefaultResume(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	r, err := a.resumes.SetDefault(ctx, args[0])
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("%q is now the default resume.", r.Title))
	return nil
}

// duplicateResume copies a resume. Without a title the copy is named after
// the cached original.
func (a *App) duplicateResume(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	id := args[0]
	title := strings.Join(args[1:], " ")
	if title == "" {
		title = "Copy"
		for _, r := range a.resumes.Resumes() {
			if r.ID == id {
				title = r.Title + " (Copy)"
				break
			}
		}
	}

	r, err := a.resumes.Duplicate(ctx, id, title)
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("Created %q (%s).", r.Title, r.ID))
	return nil
}
