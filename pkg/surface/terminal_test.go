package surface_test

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rmbsgrade/rmbsgrade/pkg/scoring"
	"github.com/rmbsgrade/rmbsgrade/pkg/surface"
)

func sampleReport() *surface.Report {
	result := &scoring.Result{
		Rating:             scoring.RatingBBB,
		TotalScore:         4,
		LoanScoreSum:       4,
		PoolAdjustment:     0,
		AverageCreditScore: 665,
		LoanCount:          2,
		Strategies:         []string{"ltv", "dti", "credit_score", "loan_type", "property_type"},
		Loans: []scoring.LoanScore{
			{
				Index: 0,
				Score: 3,
				Contributions: []scoring.Contribution{
					{Key: "ltv", Name: "Loan-to-value", Value: 2},
					{Key: "dti", Name: "Debt-to-income", Value: 0},
					{Key: "credit_score", Name: "Credit score", Value: 0},
					{Key: "loan_type", Name: "Loan type", Value: 1},
					{Key: "property_type", Name: "Property type", Value: 0},
				},
			},
			{
				Index: 1,
				Score: 1,
				Contributions: []scoring.Contribution{
					{Key: "ltv", Name: "Loan-to-value", Value: 0},
					{Key: "dti", Name: "Debt-to-income", Value: 1},
					{Key: "credit_score", Name: "Credit score", Value: 0},
					{Key: "loan_type", Name: "Loan type", Value: -1},
					{Key: "property_type", Name: "Property type", Value: 1},
				},
			},
		},
	}
	return surface.NewReport("testdata/pool_medium_risk.json", result, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
}

func TestTerminalRenderer_BasicOutput(t *testing.T) {
	// Set NO_COLOR to avoid ANSI codes in test comparison
	t.Setenv("NO_COLOR", "1")

	r := &surface.TerminalRenderer{}
	var buf bytes.Buffer

	if err := r.Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"Pool rating: BBB (medium risk)",
		"Score 4",
		"2 mortgages",
		"average credit score 665.0",
		"pool adjustment 0",
		"Source: testdata/pool_medium_risk.json",
		"#0 (+3) Loan-to-value +2, Loan type +1",
		"#1 (+1) Debt-to-income +1, Loan type -1, Property type +1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}

	if strings.Contains(output, "\033[") {
		t.Error("expected no ANSI escape codes with NO_COLOR set")
	}
}

func TestTerminalRenderer_NoContributions(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	report := surface.NewReport("", &scoring.Result{
		Rating:    scoring.RatingAAA,
		LoanCount: 1,
		Loans:     []scoring.LoanScore{{Index: 0}},
	}, time.Now())

	var buf bytes.Buffer
	if err := (&surface.TerminalRenderer{}).Render(&buf, report); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "no risk contributions") {
		t.Error("expected 'no risk contributions' message")
	}
	if strings.Contains(output, "Source:") {
		t.Error("expected no source line for empty source")
	}
}

func TestTerminalRenderer_TruncatesLongPools(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	res := &scoring.Result{Rating: scoring.RatingC, LoanCount: 25}
	for i := 0; i < 25; i++ {
		res.Loans = append(res.Loans, scoring.LoanScore{Index: i})
	}

	var buf bytes.Buffer
	if err := (&surface.TerminalRenderer{}).Render(&buf, surface.NewReport("", res, time.Now())); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if !strings.Contains(buf.String(), "... and 5 more") {
		t.Errorf("expected truncation marker, got:\n%s", buf.String())
	}
}

func TestTerminalRenderer_ColorRespected(t *testing.T) {
	// Without NO_COLOR, output should have ANSI codes
	t.Setenv("NO_COLOR", "")
	if err := os.Unsetenv("NO_COLOR"); err != nil {
		t.Fatalf("unset NO_COLOR: %v", err)
	}

	r := &surface.TerminalRenderer{}
	var buf bytes.Buffer

	if err := r.Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if !strings.Contains(buf.String(), "\033[") {
		t.Error("expected ANSI escape codes when NO_COLOR is not set")
	}
}
