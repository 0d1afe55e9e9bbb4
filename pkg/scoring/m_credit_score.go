package scoring

import "github.com/rmbsgrade/rmbsgrade/pkg/mortgage"

// CreditScoreStrategy scores the borrower's credit score.
type CreditScoreStrategy struct{}

func (CreditScoreStrategy) Key() string  { return "credit_score" }
func (CreditScoreStrategy) Name() string { return "Credit score" }

func (CreditScoreStrategy) Score(m mortgage.Mortgage) (int, error) {
	return creditScoreRisk(float64(m.CreditScore)), nil
}

// creditScoreRisk is shared with the pool-level adjustment, which applies the
// same cut-offs to the average score.
func creditScoreRisk(score float64) int {
	switch {
	case score < creditScorePoor:
		return 1
	case score >= creditScoreGood:
		return -1
	default:
		return 0
	}
}
