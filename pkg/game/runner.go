package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/montplusa/reversi-engine/pkg/game/debug"
)

var (
	// ErrIllegalMove はプレイヤーが非合法手を返したときのエラー
	ErrIllegalMove = errors.New("illegal move")
	// ErrTimeExceeded は持ち時間を使い切ったときのエラー
	ErrTimeExceeded = errors.New("time budget exceeded")
)

// Turn は一手分の記録。Move が nil ならパス
type Turn struct {
	Side    Side  `json:"side"`
	Move    *Move `json:"move"`
	Elapsed int64 `json:"elapsed_ms"`
}

// BattleResult は対戦結果の記録
type BattleResult struct {
	ID     uuid.UUID  `json:"id"`
	Moves  []Turn     `json:"moves"` // 手の履歴
	Final  *GameState `json:"final"` // 終局盤面
	Black  int        `json:"black"`
	White  int        `json:"white"`
	Winner Side       `json:"winner"` // 引き分けは NoSide
}

// GameRunner は対戦を管理
type GameRunner struct {
	agents [2]Player
	// 各プレイヤーの持ち時間（ミリ秒）。負なら無制限
	TimeLimitMs int
}

// NewGameRunner は黒・白のエージェントをセットして返す
func NewGameRunner(black, white Player) *GameRunner {
	return &GameRunner{agents: [2]Player{black, white}, TimeLimitMs: -1}
}

// Run は対戦を実行して BattleResult を返す。
// 非合法手・時間切れはエラーとして返し、そこまでの記録も返す
func (gr *GameRunner) Run() (BattleResult, error) {
	state := NewGameState()
	result := BattleResult{
		ID:    uuid.New(),
		Moves: make([]Turn, 0, Size*Size),
	}
	msLeft := [2]int{gr.TimeLimitMs, gr.TimeLimitMs}

	var last *Move
	side := Black
	skips := 0
	for skips < 2 {
		debug.Log("Turn: %v last: %v", side, last)

		start := time.Now()
		mv := gr.agents[side].ChooseMove(last, msLeft[side])
		elapsed := time.Since(start).Milliseconds()

		if msLeft[side] >= 0 {
			msLeft[side] -= int(elapsed)
			if msLeft[side] < 0 {
				gr.finish(&result, state)
				return result, fmt.Errorf("%v: %w", side, ErrTimeExceeded)
			}
		}

		if mv == nil {
			if state.HasAnyLegalMove(side) {
				gr.finish(&result, state)
				return result, fmt.Errorf("%v passed with legal moves available: %w", side, ErrIllegalMove)
			}
			debug.Log("No legal moves, skipping player %v", side)
			skips++
		} else {
			if !state.IsLegal(*mv, side) {
				gr.finish(&result, state)
				return result, fmt.Errorf("%v played %v: %w", side, *mv, ErrIllegalMove)
			}
			skips = 0
			state.Apply(mv, side)
		}

		played := mv
		if mv != nil {
			cp := *mv
			played = &cp
		}
		result.Moves = append(result.Moves, Turn{Side: side, Move: played, Elapsed: elapsed})
		last = played
		side = side.Other()
	}

	gr.finish(&result, state)
	return result, nil
}

func (gr *GameRunner) finish(result *BattleResult, state *GameState) {
	result.Final = state.Clone()
	result.Black = state.CountPieces(Black)
	result.White = state.CountPieces(White)
	result.Winner = state.Winner()
}

// Replay は記録から各手の直後の盤面を順に返す（パスは含めない）
func (r *BattleResult) Replay() []*GameState {
	state := NewGameState()
	states := make([]*GameState, 0, len(r.Moves))
	for _, t := range r.Moves {
		if t.Move == nil {
			continue
		}
		state.Apply(t.Move, t.Side)
		states = append(states, state.Clone())
	}
	return states
}
