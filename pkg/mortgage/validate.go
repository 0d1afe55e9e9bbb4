package mortgage

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidMortgage is wrapped by every ingestion and validation failure.
var ErrInvalidMortgage = errors.New("invalid mortgage")

// Validate checks the invariants the scoring strategies rely on.
// Property value and annual income are divisors and must be positive.
func (m Mortgage) Validate() error {
	if !m.LoanAmount.IsPositive() {
		return fmt.Errorf("%w: loan_amount must be > 0, got %s", ErrInvalidMortgage, m.LoanAmount)
	}
	if !m.PropertyValue.IsPositive() {
		return fmt.Errorf("%w: property_value must be > 0, got %s", ErrInvalidMortgage, m.PropertyValue)
	}
	if !m.AnnualIncome.IsPositive() {
		return fmt.Errorf("%w: annual_income must be > 0, got %s", ErrInvalidMortgage, m.AnnualIncome)
	}
	if m.DebtAmount.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: debt_amount must be >= 0, got %s", ErrInvalidMortgage, m.DebtAmount)
	}
	if !m.LoanType.Valid() {
		return fmt.Errorf("%w: invalid loan type %q", ErrInvalidMortgage, string(m.LoanType))
	}
	if !m.PropertyType.Valid() {
		return fmt.Errorf("%w: invalid property type %q", ErrInvalidMortgage, string(m.PropertyType))
	}
	return nil
}

// Validate checks every mortgage in the pool, reporting the first failure
// with its position.
func (p *Pool) Validate() error {
	for i, m := range p.Mortgages {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("mortgages[%d]: %w", i, err)
		}
	}
	return nil
}
