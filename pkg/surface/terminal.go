package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rmbsgrade/rmbsgrade/pkg/scoring"
)

// maxTerminalLoans caps the per-loan breakdown printed to the terminal.
const maxTerminalLoans = 20

// TerminalRenderer renders a Report as colored terminal output.
type TerminalRenderer struct{}

type termStyles struct {
	bold  lipgloss.Style
	dim   lipgloss.Style
	green lipgloss.Style
	amber lipgloss.Style
	red   lipgloss.Style
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func newTermStyles(w io.Writer) termStyles {
	re := lipgloss.NewRenderer(w)
	if noColor() {
		re.SetColorProfile(termenv.Ascii)
	} else {
		re.SetColorProfile(termenv.ANSI)
	}

	return termStyles{
		bold:  re.NewStyle().Bold(true),
		dim:   re.NewStyle().Faint(true),
		green: re.NewStyle().Foreground(lipgloss.Color("2")),
		amber: re.NewStyle().Foreground(lipgloss.Color("3")),
		red:   re.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (s termStyles) rating(r scoring.Rating) lipgloss.Style {
	switch r {
	case scoring.RatingAAA:
		return s.green
	case scoring.RatingBBB:
		return s.amber
	default:
		return s.red
	}
}

func (r *TerminalRenderer) Render(w io.Writer, report *Report) error {
	st := newTermStyles(w)
	res := report.Result

	// Header
	fmt.Fprintf(w, "%s\n\n",
		st.bold.Render(fmt.Sprintf("Pool rating: %s (%s) — Score %d",
			st.rating(res.Rating).Render(string(res.Rating)), res.Rating.Description(), res.TotalScore)))

	// Stats
	fmt.Fprintf(w, "Analyzed: %d mortgages / average credit score %.1f / loan scores %s / pool adjustment %s\n",
		res.LoanCount, res.AverageCreditScore, signed(res.LoanScoreSum), signed(res.PoolAdjustment))
	if report.Source != "" {
		fmt.Fprintf(w, "%s\n", st.dim.Render("Source: "+report.Source))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Loans:")
	for i, ls := range res.Loans {
		if i >= maxTerminalLoans {
			fmt.Fprintf(w, "  %s\n", st.dim.Render(fmt.Sprintf("... and %d more", len(res.Loans)-maxTerminalLoans)))
			break
		}

		var parts []string
		for _, c := range ls.Contributions {
			if c.Value == 0 {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s %s", c.Name, signed(c.Value)))
		}
		detail := "no risk contributions"
		if len(parts) > 0 {
			detail = strings.Join(parts, ", ")
		}

		fmt.Fprintf(w, "  #%d (%s) %s\n", ls.Index, signed(ls.Score), st.dim.Render(detail))
	}
	fmt.Fprintln(w)

	return nil
}
