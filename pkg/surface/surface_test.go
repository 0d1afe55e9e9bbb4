package surface_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmbsgrade/rmbsgrade/pkg/surface"
)

func TestNewReport(t *testing.T) {
	report := sampleReport()

	_, err := uuid.Parse(report.ID)
	assert.NoError(t, err, "report ID should be a UUID")
	assert.Equal(t, "testdata/pool_medium_risk.json", report.Source)
	assert.Equal(t, 2026, report.RatedAt.Year())

	other := sampleReport()
	assert.NotEqual(t, report.ID, other.ID)
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format string
		want   surface.Renderer
	}{
		{"", &surface.TerminalRenderer{}},
		{"text", &surface.TerminalRenderer{}},
		{"json", &surface.JSONRenderer{}},
		{"markdown", &surface.MarkdownRenderer{}},
	}
	for _, tt := range tests {
		got, err := surface.ForFormat(tt.format)
		require.NoError(t, err)
		assert.IsType(t, tt.want, got, "format %q", tt.format)
	}

	_, err := surface.ForFormat("xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&surface.JSONRenderer{}).Render(&buf, sampleReport()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "BBB", decoded["rating"])
	assert.Equal(t, float64(4), decoded["total_score"])
	assert.Equal(t, float64(0), decoded["pool_adjustment"])
	assert.Equal(t, float64(2), decoded["loan_count"])
	assert.Equal(t, "testdata/pool_medium_risk.json", decoded["source"])
	assert.NotEmpty(t, decoded["id"])

	loans, ok := decoded["loans"].([]any)
	require.True(t, ok)
	assert.Len(t, loans, 2)
}

func TestMarkdownRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&surface.MarkdownRenderer{}).Render(&buf, sampleReport()))

	output := buf.String()
	assert.Contains(t, output, "## Pool rating: BBB — Score 4")
	assert.Contains(t, output, "| Rating | BBB (medium risk) |")
	assert.Contains(t, output, "| Mortgages | 2 |")
	assert.Contains(t, output, "| # | Score | ltv | dti | credit_score | loan_type | property_type |")
	assert.Contains(t, output, "| 0 | +3 | +2 | 0 | 0 | +1 | 0 |")
	assert.Contains(t, output, "| 1 | +1 | 0 | +1 | 0 | -1 | +1 |")

	// Header separator has one cell per column.
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "|---|---|") {
			assert.Equal(t, 7, strings.Count(line, "---|"))
		}
	}
}
