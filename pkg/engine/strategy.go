package engine

import (
	"fmt"
	"strings"
)

// Strategy selects how a Player picks its move. It is fixed for the
// lifetime of the Player.
type Strategy int

const (
	// StrategySearch runs fixed-depth minimax.
	StrategySearch Strategy = iota
	// StrategySinglePly takes the move with the best one-ply positional score.
	StrategySinglePly
	// StrategyRandom picks uniformly among the legal moves.
	StrategyRandom
)

func (s Strategy) String() string {
	switch s {
	case StrategySearch:
		return "minimax"
	case StrategySinglePly:
		return "heuristic"
	case StrategyRandom:
		return "random"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy accepts the names printed by String.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minimax", "search":
		return StrategySearch, nil
	case "heuristic", "single-ply", "greedy":
		return StrategySinglePly, nil
	case "random":
		return StrategyRandom, nil
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
