package trivial

import (
	"github.com/montplusa/reversi-engine/pkg/eval"
	"github.com/montplusa/reversi-engine/pkg/game"
)

// Best は一手読みで ScoreOfMove が最大の手を返す。
// 同点なら先に列挙された手を優先する。moves が空なら nil
func Best(b game.Board, side game.Side, moves []game.Move) (*game.Move, int) {
	var best *game.Move
	bestScore := 0
	for i, m := range moves {
		s := eval.ScoreOfMove(b, m, side)
		if best == nil || s > bestScore {
			best = &moves[i]
			bestScore = s
		}
	}
	if best == nil {
		return nil, 0
	}
	mv := *best
	return &mv, bestScore
}
