package mortgage

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validMortgage() Mortgage {
	return Mortgage{
		CreditScore:   700,
		LoanAmount:    decimal.NewFromInt(200000),
		PropertyValue: decimal.NewFromInt(250000),
		AnnualIncome:  decimal.NewFromInt(60000),
		DebtAmount:    decimal.NewFromInt(20000),
		LoanType:      LoanTypeFixed,
		PropertyType:  PropertyTypeSingleFamily,
	}
}

func TestMortgageValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *Mortgage)
		want   string
	}{
		{"valid", func(m *Mortgage) {}, ""},
		{"zero debt allowed", func(m *Mortgage) { m.DebtAmount = decimal.Zero }, ""},
		{"zero loan amount", func(m *Mortgage) { m.LoanAmount = decimal.Zero }, "loan_amount"},
		{"negative property value", func(m *Mortgage) { m.PropertyValue = decimal.NewFromInt(-1) }, "property_value"},
		{"zero property value", func(m *Mortgage) { m.PropertyValue = decimal.Zero }, "property_value"},
		{"zero income", func(m *Mortgage) { m.AnnualIncome = decimal.Zero }, "annual_income"},
		{"negative debt", func(m *Mortgage) { m.DebtAmount = decimal.NewFromInt(-5) }, "debt_amount"},
		{"empty loan type", func(m *Mortgage) { m.LoanType = "" }, "loan type"},
		{"bad property type", func(m *Mortgage) { m.PropertyType = "castle" }, "property type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMortgage()
			tt.mutate(&m)
			err := m.Validate()
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidMortgage)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestPoolValidateReportsPosition(t *testing.T) {
	bad := validMortgage()
	bad.AnnualIncome = decimal.Zero
	pool := &Pool{Mortgages: []Mortgage{validMortgage(), bad}}

	err := pool.Validate()
	assert.ErrorIs(t, err, ErrInvalidMortgage)
	assert.ErrorContains(t, err, "mortgages[1]")
}

func TestPoolLenNil(t *testing.T) {
	var p *Pool
	assert.Equal(t, 0, p.Len())
}
