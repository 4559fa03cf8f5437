// Package render draws evaluation reports on a terminal. Rules return plain
// structured detail strings; all styling lives here.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_password_strength/internal/core/domain"
	"github.com/fatih/color"
)

// Renderer writes a colorized per-rule breakdown and summary line.
type Renderer struct {
	out io.Writer

	success  *color.Color
	failure  *color.Color
	ignored  *color.Color
	password *color.Color
	number   *color.Color
	percent  *color.Color
}

// New creates a renderer writing to out. When noColor is set, all styling
// is disabled regardless of terminal detection.
func New(out io.Writer, noColor bool) *Renderer {
	r := &Renderer{
		out:      out,
		success:  color.New(color.FgBlack, color.Bold, color.BgHiGreen),
		failure:  color.New(color.FgBlack, color.Bold, color.BgHiRed),
		ignored:  color.New(color.FgBlack, color.Bold, color.BgWhite),
		password: color.New(color.FgBlue, color.Bold),
		number:   color.New(color.FgBlue),
		percent:  color.New(color.FgYellow),
	}
	if noColor {
		for _, c := range []*color.Color{r.success, r.failure, r.ignored, r.password, r.number, r.percent} {
			c.DisableColor()
		}
	}
	return r
}

// Render writes the full report: a header echoing the password, one aligned
// row per rule with its verdict and detail, and the summary line.
func (r *Renderer) Render(report domain.Report) {
	width := columnWidth(report.Results)

	fmt.Fprintf(r.out, "Password:%s%s\n",
		pad(width, len("Password")),
		r.password.Sprint(report.Password),
	)

	for _, result := range report.Results {
		fmt.Fprintf(r.out, "%s:%s%s\n",
			result.Name,
			pad(width, utf8.RuneCountInString(result.Name)),
			r.verdict(result.Status),
		)
		if result.Detail != "" {
			fmt.Fprintf(r.out, "Additional info: %s\n", r.detail(result))
		}
	}

	s := report.Summary
	fmt.Fprintf(r.out, "Passed %s out of %s checks (%s%%), %s ignored\n",
		r.number.Sprint(s.Passed),
		r.number.Sprint(s.Enabled),
		r.percent.Sprint(s.FormatPassPercent()),
		r.ignored.Sprint(s.Ignored),
	)
}

// verdict styles the tri-state outcome.
func (r *Renderer) verdict(status domain.Status) string {
	switch status {
	case domain.StatusPass:
		return r.success.Sprint(status)
	case domain.StatusFail:
		return r.failure.Sprint(status)
	default:
		return r.ignored.Sprint(status)
	}
}

// detail styles the additional info line to match the verdict. Details of
// passing rules stay unstyled.
func (r *Renderer) detail(result domain.RuleResult) string {
	switch result.Status {
	case domain.StatusFail:
		return r.failure.Sprint(result.Detail)
	case domain.StatusIgnored:
		return r.ignored.Sprint(result.Detail)
	default:
		return result.Detail
	}
}

// columnWidth returns the verdict column offset: the longest rule name plus
// a fixed gap.
func columnWidth(results []domain.RuleResult) int {
	longest := len("Password")
	for _, result := range results {
		if n := utf8.RuneCountInString(result.Name); n > longest {
			longest = n
		}
	}
	return longest + 4
}

// pad returns the spaces needed to reach the verdict column from a name of
// the given length.
func pad(width, nameLen int) string {
	if width <= nameLen {
		return " "
	}
	return strings.Repeat(" ", width-nameLen)
}
