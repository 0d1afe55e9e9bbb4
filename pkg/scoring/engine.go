package scoring

import (
	"fmt"

	"github.com/rmbsgrade/rmbsgrade/pkg/mortgage"
)

// Strategy is the interface that all rating strategies implement.
// Implementations are stateless and safe to share between calculators.
type Strategy interface {
	// Key returns the machine-readable strategy identifier.
	Key() string
	// Name returns the human-readable strategy name.
	Name() string
	// Score computes the strategy's signed risk contribution for one mortgage.
	// An error aborts rating of the whole pool.
	Score(m mortgage.Mortgage) (int, error)
}

// Calculator runs the configured strategies over a pool and rates it.
type Calculator struct {
	strategies []Strategy
}

// NewCalculator creates a calculator with the given strategies.
func NewCalculator(strategies ...Strategy) *Calculator {
	return &Calculator{strategies: append([]Strategy(nil), strategies...)}
}

// Strategies returns the calculator's strategies in evaluation order.
func (c *Calculator) Strategies() []Strategy {
	return append([]Strategy(nil), c.strategies...)
}

// Rate returns the credit rating of the pool.
func (c *Calculator) Rate(mortgages []mortgage.Mortgage) (Rating, error) {
	result, err := c.Evaluate(mortgages)
	if err != nil {
		return "", err
	}
	return result.Rating, nil
}

// Evaluate scores every mortgage, applies the pool-level credit adjustment
// and produces a complete Result.
func (c *Calculator) Evaluate(mortgages []mortgage.Mortgage) (*Result, error) {
	if len(mortgages) == 0 {
		return nil, ErrEmptyPool
	}
	for i, s := range c.strategies {
		if s == nil {
			return nil, fmt.Errorf("%w: strategy %d is nil", ErrUnknownStrategy, i)
		}
	}

	result := &Result{
		LoanCount:  len(mortgages),
		Strategies: make([]string, 0, len(c.strategies)),
		Loans:      make([]LoanScore, 0, len(mortgages)),
	}
	for _, s := range c.strategies {
		result.Strategies = append(result.Strategies, s.Key())
	}

	var creditSum int64
	for i, m := range mortgages {
		ls, err := c.scoreLoan(i, m)
		if err != nil {
			return nil, err
		}
		result.Loans = append(result.Loans, ls)
		result.LoanScoreSum += ls.Score
		creditSum += int64(m.CreditScore)
	}

	result.AverageCreditScore = float64(creditSum) / float64(len(mortgages))
	result.PoolAdjustment = creditScoreRisk(result.AverageCreditScore)
	result.TotalScore = result.LoanScoreSum + result.PoolAdjustment
	result.Rating = RatingFromScore(result.TotalScore)

	return result, nil
}

// scoreLoan sums every strategy's contribution for one mortgage. The first
// strategy error aborts the evaluation as a FaultError.
func (c *Calculator) scoreLoan(index int, m mortgage.Mortgage) (LoanScore, error) {
	ls := LoanScore{
		Index:         index,
		Contributions: make([]Contribution, 0, len(c.strategies)),
	}

	for _, s := range c.strategies {
		v, err := s.Score(m)
		if err != nil {
			return LoanScore{}, &FaultError{Index: index, Strategy: s.Key(), Err: err}
		}
		ls.Contributions = append(ls.Contributions, Contribution{
			Key:   s.Key(),
			Name:  s.Name(),
			Value: v,
		})
		ls.Score += v
	}

	return ls, nil
}
