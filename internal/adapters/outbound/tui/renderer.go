package tui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/arena/gotofix/internal/domain"
)

var (
	success = lipgloss.Color("#22C55E") // green
	accent  = lipgloss.Color("#D97706") // amber
	danger  = lipgloss.Color("#EF4444") // red
	dim     = lipgloss.Color("#6B7280") // muted gray
)

// Printer writes run progress to w. Styles degrade to plain text when w is
// not a terminal.
type Printer struct {
	w      io.Writer
	diff   bool
	dryRun bool

	fixedStyle   lipgloss.Style
	summaryStyle lipgloss.Style
	addStyle     lipgloss.Style
	delStyle     lipgloss.Style
	hunkStyle    lipgloss.Style
}

// NewPrinter creates a Printer. With diff set, each fixed file is followed
// by a unified diff of the change.
func NewPrinter(w io.Writer, dryRun, diff bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:            w,
		diff:         diff,
		dryRun:       dryRun,
		fixedStyle:   r.NewStyle().Foreground(success),
		summaryStyle: r.NewStyle().Bold(true).Foreground(accent),
		addStyle:     r.NewStyle().Foreground(success).TabWidth(lipgloss.NoTabConversion),
		delStyle:     r.NewStyle().Foreground(danger).TabWidth(lipgloss.NoTabConversion),
		hunkStyle:    r.NewStyle().Foreground(dim),
	}
}

// FileFixed implements domain.ProgressSink.
func (p *Printer) FileFixed(fix domain.FileFix) error {
	verb := "Fixed:"
	if p.dryRun {
		verb = "Would fix:"
	}
	if _, err := fmt.Fprintln(p.w, p.fixedStyle.Render(verb+" "+fix.Name)); err != nil {
		return err
	}
	if !p.diff {
		return nil
	}
	_, err := io.WriteString(p.w, p.colorDiff(UnifiedDiff(fix)))
	return err
}

// Summary writes the closing count line, preceded by a blank line.
func (p *Printer) Summary(report *domain.FixReport) error {
	_, err := fmt.Fprintf(p.w, "\n%s\n", p.summaryStyle.Render(RenderSummary(report)))
	return err
}

// RenderSummary returns the plain summary line for report.
func RenderSummary(report *domain.FixReport) string {
	if report.DryRun {
		return fmt.Sprintf("Would fix %d files", report.Fixed)
	}
	return fmt.Sprintf("Fixed %d files", report.Fixed)
}

// UnifiedDiff returns the change to fix as a unified diff. Empty when the
// fix carries no content.
func UnifiedDiff(fix domain.FileFix) string {
	if fix.Before == fix.After {
		return ""
	}
	name := filepath.ToSlash(fix.Name)
	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(fix.Before),
		B:        difflib.SplitLines(fix.After),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
	if err != nil {
		return ""
	}
	return out
}

func (p *Printer) colorDiff(diff string) string {
	if diff == "" {
		return ""
	}
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			b.WriteString(line)
		case strings.HasPrefix(line, "+"):
			b.WriteString(p.addStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			b.WriteString(p.delStyle.Render(line))
		case strings.HasPrefix(line, "@@"):
			b.WriteString(p.hunkStyle.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
