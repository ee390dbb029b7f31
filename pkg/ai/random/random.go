package random

import (
	"math/rand"

	"github.com/montplusa/reversi-engine/pkg/game"
)

// Picker はランダムに手を選ぶ
type Picker struct {
	rng *rand.Rand
}

// New は seed で初期化した Picker を返す
func New(seed int64) *Picker {
	return &Picker{rng: rand.New(rand.NewSource(seed))}
}

// Pick は moves から一様に1つ選ぶ。空なら nil
func (p *Picker) Pick(moves []game.Move) *game.Move {
	if len(moves) == 0 {
		return nil
	}
	m := moves[p.rng.Intn(len(moves))]
	return &m
}
