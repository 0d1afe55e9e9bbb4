package scoring

import "fmt"

// DefaultStrategies returns the standard set of rating strategies.
func DefaultStrategies() []Strategy {
	return []Strategy{
		LTVStrategy{},
		DTIStrategy{},
		CreditScoreStrategy{},
		LoanTypeStrategy{},
		PropertyTypeStrategy{},
	}
}

// StrategyByKey returns the strategy registered under key.
func StrategyByKey(key string) (Strategy, error) {
	for _, s := range DefaultStrategies() {
		if s.Key() == key {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, key)
}

// StrategiesByKey resolves an ordered list of keys. An empty list selects
// DefaultStrategies. Listing a key twice is an error since it would count
// that strategy twice for every mortgage.
func StrategiesByKey(keys []string) ([]Strategy, error) {
	if len(keys) == 0 {
		return DefaultStrategies(), nil
	}

	seen := make(map[string]bool, len(keys))
	strategies := make([]Strategy, 0, len(keys))
	for _, key := range keys {
		if seen[key] {
			return nil, fmt.Errorf("strategy %q listed more than once", key)
		}
		seen[key] = true

		s, err := StrategyByKey(key)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, s)
	}
	return strategies, nil
}
