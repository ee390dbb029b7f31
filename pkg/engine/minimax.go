package engine

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/montplusa/reversi-engine/pkg/eval"
	"github.com/montplusa/reversi-engine/pkg/game"
)

// Stats counts the work done by the last search.
type Stats struct {
	Generated int64 // child nodes created
	Visited   int64 // Minimax calls
	Evaluated int64 // horizon or no-move evaluations
}

// Searcher is a fixed-depth minimax with no pruning. Every branch works on
// its own copy of the board.
type Searcher struct {
	self     game.Side
	maxDepth int
	eval     eval.Evaluator
	workers  int

	generated atomic.Int64
	visited   atomic.Int64
	evaluated atomic.Int64
}

// node is a child position produced by one move.
type node struct {
	board game.Board
	move  game.Move
	score int
}

// NewSearcher returns a Searcher maximizing for self.
func NewSearcher(self game.Side, maxDepth int, ev eval.Evaluator, workers int) *Searcher {
	if workers < 1 {
		workers = 1
	}
	return &Searcher{self: self, maxDepth: maxDepth, eval: ev, workers: workers}
}

// Stats returns the counters accumulated since the last ResetStats.
func (s *Searcher) Stats() Stats {
	return Stats{
		Generated: s.generated.Load(),
		Visited:   s.visited.Load(),
		Evaluated: s.evaluated.Load(),
	}
}

func (s *Searcher) ResetStats() {
	s.generated.Store(0)
	s.visited.Store(0)
	s.evaluated.Store(0)
}

// Search runs Minimax from the root with self to move.
func (s *Searcher) Search(b game.Board) (int, *game.Move) {
	if s.workers > 1 && s.maxDepth > 0 {
		return s.searchParallel(b)
	}
	return s.Minimax(b, 0, true)
}

// Minimax returns the best score reachable from b and the move leading to
// it. The move is nil at the horizon or when the side to move must pass;
// a pass is scored directly instead of being searched.
func (s *Searcher) Minimax(b game.Board, depth int, maximizing bool) (int, *game.Move) {
	s.visited.Add(1)
	if depth >= s.maxDepth {
		return s.evaluate(b), nil
	}

	mover := s.mover(maximizing)
	moves := GenerateLegalMoves(mover, b)
	if len(moves) == 0 {
		return s.evaluate(b), nil
	}

	var best *node
	for _, m := range moves {
		child := s.expand(b, m, mover)
		child.score, _ = s.Minimax(child.board, depth+1, !maximizing)
		if best == nil || better(maximizing, child.score, best.score) {
			best = &child
		}
	}
	mv := best.move
	return best.score, &mv
}

// searchParallel scores the root children concurrently and merges them in
// generation order, so the result matches the serial search.
func (s *Searcher) searchParallel(b game.Board) (int, *game.Move) {
	s.visited.Add(1)
	moves := GenerateLegalMoves(s.self, b)
	if len(moves) == 0 {
		return s.evaluate(b), nil
	}

	children := make([]node, len(moves))
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, m := range moves {
		children[i] = s.expand(b, m, s.self)
		i := i
		g.Go(func() error {
			children[i].score, _ = s.Minimax(children[i].board, 1, false)
			return nil
		})
	}
	_ = g.Wait()

	best := 0
	for i := 1; i < len(children); i++ {
		if better(true, children[i].score, children[best].score) {
			best = i
		}
	}
	mv := children[best].move
	return children[best].score, &mv
}

func (s *Searcher) expand(b game.Board, m game.Move, mover game.Side) node {
	s.generated.Add(1)
	c := b.Copy()
	c.Apply(&m, mover)
	return node{board: c, move: m}
}

func (s *Searcher) evaluate(b game.Board) int {
	s.evaluated.Add(1)
	return s.eval.Score(s.self, b)
}

func (s *Searcher) mover(maximizing bool) game.Side {
	if maximizing {
		return s.self
	}
	return s.self.Other()
}

// better keeps the first of equal scores: strictly greater when
// maximizing, strictly smaller when minimizing.
func better(maximizing bool, score, best int) bool {
	if maximizing {
		return score > best
	}
	return score < best
}
