package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/validate"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	badgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) success(msg string) {
	a.println(successStyle.Render(msg))
}

func (a *App) title(msg string) {
	a.println(titleStyle.Render(msg))
}

// printError writes err for the user. Validation failures are listed one
// field per line.
func printError(w io.Writer, err error) {
	var verr *validate.Error
	if errors.As(err, &verr) && len(verr.Fields) > 1 {
		for _, f := range verr.Fields {
			fmt.Fprintln(w, errorStyle.Render("  - "+f.Message))
		}
		return
	}
	fmt.Fprintln(w, errorStyle.Render("Error: "+err.Error()))
}

func ago(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

func agoPtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return ago(*t)
}

func dateOf(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

// money formats an amount in minor units, e.g. 1999 "usd" as "19.99 USD".
func money(minor int64, currency string) string {
	if currency == "" {
		currency = "usd"
	}
	sign := ""
	if minor < 0 {
		sign, minor = "-", -minor
	}
	return fmt.Sprintf("%s%s.%02d %s", sign, humanize.Comma(minor/100), minor%100, strings.ToUpper(currency))
}

func displayName(fullName, email string) string {
	if strings.TrimSpace(fullName) != "" {
		return fullName
	}
	return email
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// truncate shortens s to n runes for table cells.
func truncate(s string, n int) string {
	r := []rune(strings.Join(strings.Fields(s), " "))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}
