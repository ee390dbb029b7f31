package game

import (
	"strings"
)

// 8方向
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// GameState は盤面情報を保持
type GameState struct {
	Owner [Size][Size]Side `json:"owner"` // 石の状態: Owner[y][x]。NoSide=空き
}

// NewGameState は初期配置の盤面を返す
func NewGameState() *GameState {
	gs := &GameState{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			gs.Owner[y][x] = NoSide
		}
	}
	gs.Owner[3][3] = White
	gs.Owner[4][4] = White
	gs.Owner[4][3] = Black
	gs.Owner[3][4] = Black
	return gs
}

// Clone は GameState のディープコピーを返す
func (gs *GameState) Clone() *GameState {
	c := *gs
	return &c
}

// Copy は Board としてのコピー
func (gs *GameState) Copy() Board {
	return gs.Clone()
}

func (gs *GameState) owner(x, y int) Side {
	return gs.Owner[y][x]
}

func (gs *GameState) IsOccupied(x, y int) bool {
	return gs.owner(x, y) != NoSide
}

func (gs *GameState) IsOwnedBy(side Side, x, y int) bool {
	return gs.owner(x, y) == side
}

func (gs *GameState) CountPieces(side Side) int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if gs.Owner[y][x] == side {
				n++
			}
		}
	}
	return n
}

// flips は (x, y) に side が置いたとき dir 方向で返る石の数
func (gs *GameState) flips(x, y int, dir [2]int, side Side) int {
	opp := side.Other()
	n := 0
	for {
		x += dir[0]
		y += dir[1]
		if x < 0 || x >= Size || y < 0 || y >= Size {
			return 0
		}
		switch gs.owner(x, y) {
		case opp:
			n++
		case side:
			return n
		default:
			return 0
		}
	}
}

func (gs *GameState) IsLegal(m Move, side Side) bool {
	if !m.InBounds() || gs.IsOccupied(m.X, m.Y) {
		return false
	}
	for _, d := range directions {
		if gs.flips(m.X, m.Y, d, side) > 0 {
			return true
		}
	}
	return false
}

func (gs *GameState) HasAnyLegalMove(side Side) bool {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if gs.IsLegal(Move{x, y}, side) {
				return true
			}
		}
	}
	return false
}

// LegalMoves は side の合法手を x, y の昇順で返す
func (gs *GameState) LegalMoves(side Side) []Move {
	var moves []Move
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if gs.IsLegal(Move{x, y}, side) {
				moves = append(moves, Move{x, y})
			}
		}
	}
	return moves
}

// Apply は一手を適用する。合法性は呼び出し側が保証する
func (gs *GameState) Apply(m *Move, side Side) {
	if m == nil {
		return
	}
	for _, d := range directions {
		n := gs.flips(m.X, m.Y, d, side)
		x, y := m.X, m.Y
		for i := 0; i < n; i++ {
			x += d[0]
			y += d[1]
			gs.Owner[y][x] = side
		}
	}
	gs.Owner[m.Y][m.X] = side
}

// IsGameOver はどちらも打てない状態かどうか
func (gs *GameState) IsGameOver() bool {
	return !gs.HasAnyLegalMove(Black) && !gs.HasAnyLegalMove(White)
}

// Winner は石数の多い方を返す。引き分けは NoSide
func (gs *GameState) Winner() Side {
	b, w := gs.CountPieces(Black), gs.CountPieces(White)
	switch {
	case b > w:
		return Black
	case w > b:
		return White
	default:
		return NoSide
	}
}

// String は盤面を文字で描画する（x が列、y が行）
func (gs *GameState) String() string {
	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7\n")
	for y := 0; y < Size; y++ {
		sb.WriteByte(byte('0' + y))
		for x := 0; x < Size; x++ {
			sb.WriteByte(' ')
			switch gs.owner(x, y) {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
