// Package mortgage defines the loan records that make up an RMBS pool.
// Records are plain values: constructed once during ingestion and never mutated.
package mortgage

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LoanType is the rate structure of a mortgage.
type LoanType string

const (
	LoanTypeFixed      LoanType = "fixed"
	LoanTypeAdjustable LoanType = "adjustable"
)

// Valid reports whether t is a known loan type.
func (t LoanType) Valid() bool {
	return t == LoanTypeFixed || t == LoanTypeAdjustable
}

// UnmarshalText rejects unknown loan types at decode time.
func (t *LoanType) UnmarshalText(text []byte) error {
	v := LoanType(text)
	if !v.Valid() {
		return fmt.Errorf("%w: invalid loan type %q", ErrInvalidMortgage, string(text))
	}
	*t = v
	return nil
}

// PropertyType is the kind of collateral securing a mortgage.
type PropertyType string

const (
	PropertyTypeSingleFamily PropertyType = "single_family"
	PropertyTypeCondo        PropertyType = "condo"
)

// Valid reports whether p is a known property type.
func (p PropertyType) Valid() bool {
	return p == PropertyTypeSingleFamily || p == PropertyTypeCondo
}

// UnmarshalText rejects unknown property types at decode time.
func (p *PropertyType) UnmarshalText(text []byte) error {
	v := PropertyType(text)
	if !v.Valid() {
		return fmt.Errorf("%w: invalid property type %q", ErrInvalidMortgage, string(text))
	}
	*p = v
	return nil
}

// Mortgage holds the attributes of a single loan in the pool.
type Mortgage struct {
	CreditScore   int             `json:"credit_score"`
	LoanAmount    decimal.Decimal `json:"loan_amount"`
	PropertyValue decimal.Decimal `json:"property_value"`
	AnnualIncome  decimal.Decimal `json:"annual_income"`
	DebtAmount    decimal.Decimal `json:"debt_amount"`
	LoanType      LoanType        `json:"loan_type"`
	PropertyType  PropertyType    `json:"property_type"`
}

// Pool is the document shape of a mortgage pool on disk or on the wire.
type Pool struct {
	Mortgages []Mortgage `json:"mortgages"`
}

// Len returns the number of mortgages in the pool.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Mortgages)
}
