package game

import (
	"fmt"
	"strings"
)

// Size は盤面の一辺のマス数
const Size = 8

// Side は手番（黒 or 白）
type Side int8

const (
	// NoSide は空きマスを表す。エンジンの手番としては使わない
	NoSide Side = -1
	Black  Side = 0
	White  Side = 1
)

// Other は相手側を返す
func (s Side) Other() Side {
	if s == Black {
		return White
	}
	return Black
}

func (s Side) String() string {
	switch s {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "None"
	}
}

// ParseSide は "black" / "white" を Side に変換する
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "black", "b", "first":
		return Black, nil
	case "white", "w", "second":
		return White, nil
	}
	return NoSide, fmt.Errorf("unknown side %q", name)
}

// Move は着手するマス。どちらの手かは呼び出し側が与える
type Move struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.X, m.Y)
}

// InBounds は座標が盤面内かどうか
func (m Move) InBounds() bool {
	return m.X >= 0 && m.X < Size && m.Y >= 0 && m.Y < Size
}

// Board はエンジンが利用する盤面の契約
type Board interface {
	// HasAnyLegalMove は side に合法手が1つでもあれば true
	HasAnyLegalMove(side Side) bool
	// IsLegal は side が m に打てるかどうか（盤面は変更しない）
	IsLegal(m Move, side Side) bool
	// Apply は side の石を置いて挟んだ石を裏返す。nil はパス扱いで何もしない
	Apply(m *Move, side Side)
	// Copy は独立したコピーを返す
	Copy() Board
	IsOccupied(x, y int) bool
	IsOwnedBy(side Side, x, y int) bool
	CountPieces(side Side) int
}
