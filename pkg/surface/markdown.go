package surface

import (
	"fmt"
	"io"
	"strings"
)

// maxMarkdownLoans caps the loan table so summaries stay pasteable.
const maxMarkdownLoans = 50

// MarkdownRenderer produces a Markdown summary of a Report.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, report *Report) error {
	_, err := io.WriteString(w, buildMarkdownSummary(report))
	return err
}

func buildMarkdownSummary(report *Report) string {
	res := report.Result
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## Pool rating: %s — Score %d\n\n", res.Rating, res.TotalScore))

	sb.WriteString("| Metric | Value |\n|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Rating | %s (%s) |\n", res.Rating, res.Rating.Description()))
	sb.WriteString(fmt.Sprintf("| Mortgages | %d |\n", res.LoanCount))
	sb.WriteString(fmt.Sprintf("| Average credit score | %.1f |\n", res.AverageCreditScore))
	sb.WriteString(fmt.Sprintf("| Loan score sum | %s |\n", signed(res.LoanScoreSum)))
	sb.WriteString(fmt.Sprintf("| Pool adjustment | %s |\n", signed(res.PoolAdjustment)))
	if report.Source != "" {
		sb.WriteString(fmt.Sprintf("| Source | `%s` |\n", report.Source))
	}
	sb.WriteString("\n")

	if len(res.Loans) == 0 {
		return sb.String()
	}

	// One column per strategy, in evaluation order.
	sb.WriteString("### Loans\n\n")
	sb.WriteString("| # | Score |")
	for _, key := range res.Strategies {
		sb.WriteString(fmt.Sprintf(" %s |", key))
	}
	sb.WriteString("\n|---|---|")
	sb.WriteString(strings.Repeat("---|", len(res.Strategies)))
	sb.WriteString("\n")

	for i, ls := range res.Loans {
		if i >= maxMarkdownLoans {
			sb.WriteString(fmt.Sprintf("\n_... and %d more loans_\n", len(res.Loans)-maxMarkdownLoans))
			break
		}
		sb.WriteString(fmt.Sprintf("| %d | %s |", ls.Index, signed(ls.Score)))
		for _, c := range ls.Contributions {
			sb.WriteString(fmt.Sprintf(" %s |", signed(c.Value)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
