package scoring

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPool is returned when a pool with no mortgages is rated.
	ErrEmptyPool = errors.New("no mortgages provided")

	// ErrArithmeticFault is returned by ratio strategies given a zero divisor.
	ErrArithmeticFault = errors.New("arithmetic fault")

	// ErrUnknownStrategy is returned when a strategy key has no implementation.
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// FaultError reports a strategy that could not evaluate a mortgage, such as a
// ratio with a zero divisor. The pool gets no rating when this happens.
type FaultError struct {
	Index    int    // position of the mortgage in the pool
	Strategy string // strategy key
	Err      error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("mortgage %d: strategy %s: %v", e.Index, e.Strategy, e.Err)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}
