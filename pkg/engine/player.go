package engine

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/montplusa/reversi-engine/pkg/ai/random"
	"github.com/montplusa/reversi-engine/pkg/ai/trivial"
	"github.com/montplusa/reversi-engine/pkg/eval"
	"github.com/montplusa/reversi-engine/pkg/game"
	"github.com/montplusa/reversi-engine/pkg/game/debug"
)

// Player owns the authoritative board for one side and picks a move per
// turn with its configured Strategy.
type Player struct {
	side     game.Side
	opp      game.Side
	board    game.Board
	strategy Strategy
	searcher *Searcher
	picker   *random.Picker
	log      *logrus.Entry
}

var _ game.Player = (*Player)(nil)

// NewPlayer returns a Player for side starting from the initial position.
func NewPlayer(side game.Side, cfg Config) (*Player, error) {
	return NewPlayerWithBoard(side, game.NewGameState(), cfg)
}

// NewPlayerWithBoard returns a Player that takes ownership of board.
func NewPlayerWithBoard(side game.Side, board game.Board, cfg Config) (*Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Player{
		side:     side,
		opp:      side.Other(),
		board:    board,
		strategy: cfg.Strategy,
		log: debug.Logger().WithFields(logrus.Fields{
			"side":     side,
			"strategy": cfg.Strategy,
		}),
	}
	switch cfg.Strategy {
	case StrategySearch:
		p.searcher = NewSearcher(side, cfg.Depth, cfg.Evaluator, cfg.Workers)
	case StrategyRandom:
		p.picker = random.New(cfg.Seed)
	}
	return p, nil
}

func (p *Player) Side() game.Side { return p.side }

// Board returns the authoritative board. Callers must not mutate it.
func (p *Player) Board() game.Board { return p.board }

// ChooseMove applies the opponent's move, picks and applies our reply, and
// returns it. nil means we have no legal move. msLeft is not enforced; an
// overrun is only logged.
func (p *Player) ChooseMove(opponentsMove *game.Move, msLeft int) *game.Move {
	start := time.Now()
	p.board.Apply(opponentsMove, p.opp)

	var (
		mv    *game.Move
		score int
	)
	switch p.strategy {
	case StrategySearch:
		p.searcher.ResetStats()
		score, mv = p.searcher.Search(p.board)
	case StrategySinglePly:
		mv, score = trivial.Best(p.board, p.side, GenerateLegalMoves(p.side, p.board))
	case StrategyRandom:
		mv = p.picker.Pick(GenerateLegalMoves(p.side, p.board))
	}

	elapsed := time.Since(start)
	if mv == nil {
		p.log.WithField("elapsed", elapsed).Info("no legal move, passing")
		return nil
	}
	p.board.Apply(mv, p.side)

	entry := p.log.WithFields(logrus.Fields{
		"move":    mv.String(),
		"corner":  eval.IsCorner(*mv),
		"score":   score,
		"elapsed": elapsed,
	})
	if p.searcher != nil {
		st := p.searcher.Stats()
		entry = entry.WithFields(logrus.Fields{
			"generated": st.Generated,
			"visited":   st.Visited,
			"evaluated": st.Evaluated,
		})
	}
	entry.Debug("chose move")
	if msLeft >= 0 && elapsed > time.Duration(msLeft)*time.Millisecond {
		entry.WithField("ms_left", msLeft).Warn("decision exceeded time budget")
	}
	return mv
}
