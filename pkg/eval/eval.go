// Package eval scores board snapshots from one side's point of view.
package eval

import (
	"fmt"
	"strings"

	"github.com/montplusa/reversi-engine/pkg/game"
)

// Weights is the per-cell positional value, indexed [y][x].
// Corners are worth the most; the cells touching a corner are the worst.
var Weights = [game.Size][game.Size]int{
	{4, -3, 2, 2, 2, 2, -3, 4},
	{-3, -4, -1, -1, -1, -1, -4, -3},
	{2, -1, 1, 0, 0, 1, -1, 2},
	{2, -1, 0, 1, 1, 0, -1, 2},
	{2, -1, 0, 1, 1, 0, -1, 2},
	{2, -1, 1, 0, 0, 1, -1, 2},
	{-3, -4, -1, -1, -1, -1, -4, -3},
	{4, -3, 2, 2, 2, 2, -3, 4},
}

// Evaluator scores b for side; higher is better for side.
type Evaluator interface {
	Score(side game.Side, b game.Board) int
}

// Func adapts a plain function to Evaluator.
type Func func(side game.Side, b game.Board) int

func (f Func) Score(side game.Side, b game.Board) int { return f(side, b) }

var (
	// Positional sums Weights over each side's pieces and returns self minus opponent.
	Positional Evaluator = Func(positional)
	// Material returns the piece-count difference.
	Material Evaluator = Func(material)
)

func positional(side game.Side, b game.Board) int {
	var me, opp int
	for y := 0; y < game.Size; y++ {
		for x := 0; x < game.Size; x++ {
			if !b.IsOccupied(x, y) {
				continue
			}
			if b.IsOwnedBy(side, x, y) {
				me += Weights[y][x]
			} else {
				opp += Weights[y][x]
			}
		}
	}
	return me - opp
}

func material(side game.Side, b game.Board) int {
	var me, opp int
	for y := 0; y < game.Size; y++ {
		for x := 0; x < game.Size; x++ {
			if !b.IsOccupied(x, y) {
				continue
			}
			if b.IsOwnedBy(side, x, y) {
				me++
			} else {
				opp++
			}
		}
	}
	return me - opp
}

// ScoreOfMove applies m for side to a copy of b and returns the positional
// score of the result. b is not modified.
func ScoreOfMove(b game.Board, m game.Move, side game.Side) int {
	c := b.Copy()
	c.Apply(&m, side)
	return Positional.Score(side, c)
}

// IsCorner reports whether m is one of the four corners.
func IsCorner(m game.Move) bool {
	edge := func(v int) bool { return v == 0 || v == game.Size-1 }
	return edge(m.X) && edge(m.Y)
}

// ByName resolves a built-in evaluator.
func ByName(name string) (Evaluator, error) {
	switch strings.ToLower(name) {
	case "positional", "weights", "heuristic":
		return Positional, nil
	case "material", "count":
		return Material, nil
	}
	return nil, fmt.Errorf("unknown evaluator %q", name)
}
