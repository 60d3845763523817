package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/username/cwver/internal/bisect"
	"github.com/username/cwver/internal/cwver"
	"github.com/username/cwver/pkg/dateutil"
)

// printer renders command results. Styles degrade to plain text when w is
// not a terminal.
type printer struct {
	w       io.Writer
	header  lipgloss.Style
	version lipgloss.Style
	muted   lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		header:  r.NewStyle().Bold(true),
		version: r.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Bold(true),
		muted:   r.NewStyle().Faint(true),
	}
}

func (p *printer) today(v cwver.Version, d dateutil.Date) {
	fmt.Fprintf(p.w, "Today = %s %s\n", p.version.Render(v.String()), p.muted.Render("("+d.String()+")"))
}

func (p *printer) converted(in, out string) {
	fmt.Fprintf(p.w, "%s = %s\n", in, p.version.Render(out))
}

func (p *printer) bisectResult(conv cwver.Converter, res bisect.Result) {
	fmt.Fprintln(p.w, p.header.Render("Regression Range:"))
	fmt.Fprintf(p.w, " %-10s  ➔  %-10s (%d workday(s) apart, %d in range)\n\n",
		res.Start, res.End, res.Span(), res.WorkdayCount)

	if res.Converged() {
		fmt.Fprintln(p.w, p.muted.Render("Dates too close to each other, no bisecting necessary"))
	}

	switch len(res.Midpoints) {
	case 1:
		fmt.Fprintln(p.w, p.header.Render("Bisect starting point:"))
		fmt.Fprintf(p.w, " • %s\n", p.point(conv, res.Midpoints[0]))
	case 2:
		fmt.Fprintln(p.w, p.header.Render("Two equivalent bisect starting points:"))
		fmt.Fprintf(p.w, " • %s, or\n", p.point(conv, res.Midpoints[0]))
		fmt.Fprintf(p.w, " • %s\n", p.point(conv, res.Midpoints[1]))
	}
}

// point renders "<cwver> = <date>", or just the date when it has no version
// under the active century
func (p *printer) point(conv cwver.Converter, d dateutil.Date) string {
	v, err := conv.FromDate(d)
	if err != nil {
		return d.String()
	}
	return fmt.Sprintf("%s = %s", p.version.Render(v.String()), d)
}
