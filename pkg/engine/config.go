package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/montplusa/reversi-engine/pkg/eval"
)

// DefaultDepth is two plies: one move for us, one reply, then evaluate.
const DefaultDepth = 2

var (
	ErrInvalidDepth   = errors.New("search depth must be at least 1")
	ErrNoEvaluator    = errors.New("search strategy needs an evaluator")
	ErrInvalidWorkers = errors.New("workers must be at least 1")
)

// Config holds the construction-time settings of a Player.
type Config struct {
	Strategy Strategy
	// Depth is the search horizon in plies.
	Depth int
	// Evaluator is applied at every horizon node.
	Evaluator eval.Evaluator
	// Workers > 1 evaluates root moves concurrently.
	Workers int
	// Seed drives the random strategy.
	Seed int64
}

// DefaultConfig is a depth-2 positional minimax.
func DefaultConfig() Config {
	return Config{
		Strategy:  StrategySearch,
		Depth:     DefaultDepth,
		Evaluator: eval.Positional,
		Workers:   1,
		Seed:      time.Now().UnixNano(),
	}
}

func (c Config) Validate() error {
	switch c.Strategy {
	case StrategySearch:
		if c.Depth < 1 {
			return fmt.Errorf("depth %d: %w", c.Depth, ErrInvalidDepth)
		}
		if c.Evaluator == nil {
			return ErrNoEvaluator
		}
		if c.Workers < 1 {
			return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidWorkers)
		}
	case StrategySinglePly, StrategyRandom:
	default:
		return fmt.Errorf("unknown strategy %v", c.Strategy)
	}
	return nil
}
