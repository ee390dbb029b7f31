package engine

import (
	"fmt"
	"strings"

	"github.com/montplusa/reversi-engine/pkg/eval"
	"github.com/montplusa/reversi-engine/pkg/game"
)

// treeBoard is a scripted board: its state is the sequence of moves
// applied so far, and the legal moves after each sequence come from a
// fixed tree. Sides are ignored since the tree already alternates.
type treeBoard struct {
	path []game.Move
	tree map[string][]game.Move
}

func pathKey(path []game.Move) string {
	parts := make([]string, len(path))
	for i, m := range path {
		parts[i] = fmt.Sprintf("%d,%d", m.X, m.Y)
	}
	return strings.Join(parts, "/")
}

func (b *treeBoard) children() []game.Move { return b.tree[pathKey(b.path)] }

func (b *treeBoard) HasAnyLegalMove(game.Side) bool { return len(b.children()) > 0 }

func (b *treeBoard) IsLegal(m game.Move, _ game.Side) bool {
	for _, c := range b.children() {
		if c == m {
			return true
		}
	}
	return false
}

func (b *treeBoard) Apply(m *game.Move, _ game.Side) {
	if m == nil {
		return
	}
	b.path = append(b.path, *m)
}

func (b *treeBoard) Copy() game.Board {
	return &treeBoard{path: append([]game.Move(nil), b.path...), tree: b.tree}
}

func (b *treeBoard) IsOccupied(x, y int) bool            { return false }
func (b *treeBoard) IsOwnedBy(game.Side, int, int) bool  { return false }
func (b *treeBoard) CountPieces(game.Side) int           { return 0 }

// leafScores evaluates a treeBoard by looking up its path.
func leafScores(scores map[string]int) eval.Evaluator {
	return eval.Func(func(_ game.Side, b game.Board) int {
		return scores[pathKey(b.(*treeBoard).path)]
	})
}
