package scoring

import "github.com/rmbsgrade/rmbsgrade/pkg/mortgage"

// DTIStrategy penalizes borrowers carrying debt that is large relative to income.
type DTIStrategy struct{}

func (DTIStrategy) Key() string  { return "dti" }
func (DTIStrategy) Name() string { return "Debt-to-income" }

// Score returns 2 above 50% DTI, 1 above 40%, otherwise 0.
// A zero annual income is an arithmetic fault.
func (DTIStrategy) Score(m mortgage.Mortgage) (int, error) {
	dti, err := percentOf(m.DebtAmount, m.AnnualIncome)
	if err != nil {
		return 0, err
	}
	switch {
	case dti.GreaterThan(dtiHighThreshold):
		return 2, nil
	case dti.GreaterThan(dtiElevatedThreshold):
		return 1, nil
	default:
		return 0, nil
	}
}
