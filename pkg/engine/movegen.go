package engine

import "github.com/montplusa/reversi-engine/pkg/game"

// GenerateLegalMoves returns every legal move for side on b, scanning x
// outer and y inner. The order decides ties downstream. An empty result
// means side must pass.
func GenerateLegalMoves(side game.Side, b game.Board) []game.Move {
	moves := []game.Move{}
	if !b.HasAnyLegalMove(side) {
		return moves
	}
	for x := 0; x < game.Size; x++ {
		for y := 0; y < game.Size; y++ {
			m := game.Move{X: x, Y: y}
			if b.IsLegal(m, side) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}
