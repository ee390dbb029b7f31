package game

// Player は対局エージェントのインターフェース
type Player interface {
	// 相手の直前の手（初手・パスなら nil）を受け取り、自分の手を返す。
	// 打てる手がなければ nil。msLeft は残り持ち時間（ミリ秒、-1 で無制限）
	ChooseMove(opponentsMove *Move, msLeft int) *Move
}
