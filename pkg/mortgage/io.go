package mortgage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// wireMortgage mirrors Mortgage with pointer fields so absent keys can be
// told apart from zero values.
type wireMortgage struct {
	CreditScore   *int             `json:"credit_score"`
	LoanAmount    *decimal.Decimal `json:"loan_amount"`
	PropertyValue *decimal.Decimal `json:"property_value"`
	AnnualIncome  *decimal.Decimal `json:"annual_income"`
	DebtAmount    *decimal.Decimal `json:"debt_amount"`
	LoanType      *LoanType        `json:"loan_type"`
	PropertyType  *PropertyType    `json:"property_type"`
}

type wirePool struct {
	Mortgages []wireMortgage `json:"mortgages"`
}

func (w wireMortgage) toMortgage() (Mortgage, error) {
	missing := func(field string) error {
		return fmt.Errorf("%w: missing field %q", ErrInvalidMortgage, field)
	}
	switch {
	case w.CreditScore == nil:
		return Mortgage{}, missing("credit_score")
	case w.LoanAmount == nil:
		return Mortgage{}, missing("loan_amount")
	case w.PropertyValue == nil:
		return Mortgage{}, missing("property_value")
	case w.AnnualIncome == nil:
		return Mortgage{}, missing("annual_income")
	case w.DebtAmount == nil:
		return Mortgage{}, missing("debt_amount")
	case w.LoanType == nil:
		return Mortgage{}, missing("loan_type")
	case w.PropertyType == nil:
		return Mortgage{}, missing("property_type")
	}

	return Mortgage{
		CreditScore:   *w.CreditScore,
		LoanAmount:    *w.LoanAmount,
		PropertyValue: *w.PropertyValue,
		AnnualIncome:  *w.AnnualIncome,
		DebtAmount:    *w.DebtAmount,
		LoanType:      *w.LoanType,
		PropertyType:  *w.PropertyType,
	}, nil
}

// DecodePool reads a pool document from r. Every mortgage must carry all
// fields; a document without a "mortgages" key yields an empty pool.
func DecodePool(r io.Reader) (*Pool, error) {
	dec := json.NewDecoder(r)
	var wp wirePool
	if err := dec.Decode(&wp); err != nil {
		return nil, fmt.Errorf("decoding pool: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("decoding pool: unexpected data after pool document")
	}

	pool := &Pool{Mortgages: make([]Mortgage, 0, len(wp.Mortgages))}
	for i, wm := range wp.Mortgages {
		m, err := wm.toMortgage()
		if err != nil {
			return nil, fmt.Errorf("mortgages[%d]: %w", i, err)
		}
		pool.Mortgages = append(pool.Mortgages, m)
	}
	if err := pool.Validate(); err != nil {
		return nil, err
	}
	return pool, nil
}

// ParsePool decodes a pool document held in memory.
func ParsePool(data []byte) (*Pool, error) {
	return DecodePool(bytes.NewReader(data))
}
