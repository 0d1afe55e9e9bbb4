// Package surface defines output rendering for pool rating results.
// Implementations handle different output targets: terminal, JSON, Markdown.
package surface

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/rmbsgrade/rmbsgrade/pkg/scoring"
)

// Renderer produces formatted output from a Report.
type Renderer interface {
	// Render writes the formatted report to the writer.
	Render(w io.Writer, report *Report) error
}

// Report wraps a scoring result with run metadata for display.
type Report struct {
	ID      string    `json:"id"`
	Source  string    `json:"source"`
	RatedAt time.Time `json:"rated_at"`
	*scoring.Result
}

// NewReport assigns a fresh run ID to result.
func NewReport(source string, result *scoring.Result, ratedAt time.Time) *Report {
	return &Report{
		ID:      uuid.NewString(),
		Source:  source,
		RatedAt: ratedAt.UTC(),
		Result:  result,
	}
}

// ForFormat returns the renderer for an output format name.
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "text", "":
		return &TerminalRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "markdown":
		return &MarkdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or markdown)", format)
	}
}

// signed formats a contribution with an explicit sign for positives.
func signed(v int) string {
	if v > 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}
