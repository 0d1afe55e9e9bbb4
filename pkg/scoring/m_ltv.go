package scoring

import "github.com/rmbsgrade/rmbsgrade/pkg/mortgage"

// LTVStrategy penalizes mortgages that finance most of the property's value.
type LTVStrategy struct{}

func (LTVStrategy) Key() string  { return "ltv" }
func (LTVStrategy) Name() string { return "Loan-to-value" }

// Score returns 2 above 90% LTV, 1 above 80%, otherwise 0.
// A zero property value is an arithmetic fault.
func (LTVStrategy) Score(m mortgage.Mortgage) (int, error) {
	ltv, err := percentOf(m.LoanAmount, m.PropertyValue)
	if err != nil {
		return 0, err
	}
	switch {
	case ltv.GreaterThan(ltvHighThreshold):
		return 2, nil
	case ltv.GreaterThan(ltvElevatedThreshold):
		return 1, nil
	default:
		return 0, nil
	}
}
