// Package scoring implements the pool credit rating engine.
// Independent strategies score each mortgage, the scores are summed with a
// pool-level credit adjustment, and the total is mapped to a rating label.
package scoring

// Rating is the credit rating assigned to a mortgage pool.
type Rating string

const (
	RatingAAA Rating = "AAA"
	RatingBBB Rating = "BBB"
	RatingC   Rating = "C"
)

// Description returns the risk band a rating stands for.
func (r Rating) Description() string {
	switch r {
	case RatingAAA:
		return "low risk"
	case RatingBBB:
		return "medium risk"
	case RatingC:
		return "high risk"
	default:
		return "unknown"
	}
}

// RatingFromScore maps a total pool score to a rating.
// C has no upper bound: anything above the BBB band lands there.
func RatingFromScore(score int) Rating {
	switch {
	case score <= aaaMaxScore:
		return RatingAAA
	case score <= bbbMaxScore:
		return RatingBBB
	default:
		return RatingC
	}
}

// Result is the complete, explainable output of rating a pool.
// Immutable once computed.
type Result struct {
	Rating             Rating      `json:"rating"`
	TotalScore         int         `json:"total_score"`
	LoanScoreSum       int         `json:"loan_score_sum"`
	PoolAdjustment     int         `json:"pool_adjustment"`
	AverageCreditScore float64     `json:"average_credit_score"`
	LoanCount          int         `json:"loan_count"`
	Strategies         []string    `json:"strategies"` // strategy keys, in evaluation order
	Loans              []LoanScore `json:"loans"`
}

// LoanScore is the risk score of a single mortgage and how it was reached.
type LoanScore struct {
	Index         int            `json:"index"` // position in the input pool
	Score         int            `json:"score"`
	Contributions []Contribution `json:"contributions"`
}

// Contribution is one strategy's signed input to a mortgage's score
// (positive = riskier, negative = risk-reducing).
type Contribution struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}
