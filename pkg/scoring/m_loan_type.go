package scoring

import "github.com/rmbsgrade/rmbsgrade/pkg/mortgage"

// LoanTypeStrategy treats adjustable-rate loans as riskier than fixed-rate ones.
type LoanTypeStrategy struct{}

func (LoanTypeStrategy) Key() string  { return "loan_type" }
func (LoanTypeStrategy) Name() string { return "Loan type" }

func (LoanTypeStrategy) Score(m mortgage.Mortgage) (int, error) {
	if m.LoanType == mortgage.LoanTypeAdjustable {
		return 1, nil
	}
	return -1, nil
}
