package scoring_test

import (
	"github.com/shopspring/decimal"

	"github.com/rmbsgrade/rmbsgrade/pkg/mortgage"
)

// sampleMortgage returns a baseline loan: LTV 80, DTI ~33, credit 700,
// fixed rate, single family.
func sampleMortgage(opts ...func(*mortgage.Mortgage)) mortgage.Mortgage {
	m := mortgage.Mortgage{
		CreditScore:   700,
		LoanAmount:    decimal.NewFromInt(200000),
		PropertyValue: decimal.NewFromInt(250000),
		AnnualIncome:  decimal.NewFromInt(60000),
		DebtAmount:    decimal.NewFromInt(20000),
		LoanType:      mortgage.LoanTypeFixed,
		PropertyType:  mortgage.PropertyTypeSingleFamily,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func withCreditScore(score int) func(*mortgage.Mortgage) {
	return func(m *mortgage.Mortgage) { m.CreditScore = score }
}

func withLoan(amount, propertyValue string) func(*mortgage.Mortgage) {
	return func(m *mortgage.Mortgage) {
		m.LoanAmount = decimal.RequireFromString(amount)
		m.PropertyValue = decimal.RequireFromString(propertyValue)
	}
}

func withDebt(debt, income string) func(*mortgage.Mortgage) {
	return func(m *mortgage.Mortgage) {
		m.DebtAmount = decimal.RequireFromString(debt)
		m.AnnualIncome = decimal.RequireFromString(income)
	}
}

func withLoanType(t mortgage.LoanType) func(*mortgage.Mortgage) {
	return func(m *mortgage.Mortgage) { m.LoanType = t }
}

func withPropertyType(p mortgage.PropertyType) func(*mortgage.Mortgage) {
	return func(m *mortgage.Mortgage) { m.PropertyType = p }
}

// fixedStrategy contributes the same value for every mortgage.
type fixedStrategy struct{ value int }

func (fixedStrategy) Key() string                            { return "fixed" }
func (fixedStrategy) Name() string                           { return "Fixed" }
func (s fixedStrategy) Score(mortgage.Mortgage) (int, error) { return s.value, nil }

// nilMapStrategy has a bug unrelated to arithmetic: it writes to a nil map.
type nilMapStrategy struct{ seen map[int]bool }

func (nilMapStrategy) Key() string  { return "nil_map" }
func (nilMapStrategy) Name() string { return "Nil map" }
func (s nilMapStrategy) Score(m mortgage.Mortgage) (int, error) {
	s.seen[m.CreditScore] = true
	return 0, nil
}
