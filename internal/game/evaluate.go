// file: internal/game/evaluate.go
package game

// 边线加分：四条边上的每颗子额外 ±edgeW，角同时属于两条边，计两次
const edgeW = 2

// Evaluate 从 side 的视角给局面打分（正数对 side 有利）
func Evaluate(b *Board, side CellState) int {
	return EvaluateBitBoard(b, side)
}

// EvaluateStatic 是逐格扫描的参考实现：
// 子数差 + 4 条边上的加权子数差。不含行动力或稳定子。
func EvaluateStatic(b *Board, side CellState) int {
	opp := Opponent(side)
	res := 0
	for i := 0; i < BoardN; i++ {
		switch b.Cells[i] {
		case side:
			res++
		case opp:
			res--
		}
	}

	last := BoardSize - 1
	for k := 0; k < BoardSize; k++ {
		for _, c := range [4]Coord{{0, k}, {last, k}, {k, 0}, {k, last}} {
			switch b.Cells[c.Index()] {
			case side:
				res += edgeW
			case opp:
				res -= edgeW
			}
		}
	}
	return res
}
