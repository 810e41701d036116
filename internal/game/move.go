package game

// MoveIndex 记录每个格子落子后会被翻转的对方棋子下标。
// 非空列表 <=> 该格是当前行棋方的合法落点。
//
// 列表一经生成就不再原地修改：重新生成时整体换新，
// 所以 GameState 的值拷贝可以直接共享这些切片。
type MoveIndex struct {
	flips [BoardN][]int8
	n     int // 合法落点数
}

// Has reports whether index i is a legal target.
func (m *MoveIndex) Has(i int) bool { return len(m.flips[i]) > 0 }

// FlipsI returns the flip list for index i. Callers must not modify it.
func (m *MoveIndex) FlipsI(i int) []int8 { return m.flips[i] }

// Len returns the number of legal targets.
func (m *MoveIndex) Len() int { return m.n }

// Mask 把合法落点压成位板，供与 Mobility 比对
func (m *MoveIndex) Mask() uint64 {
	var mask uint64
	for i := 0; i < BoardN; i++ {
		if len(m.flips[i]) > 0 {
			mask |= bitOf[i]
		}
	}
	return mask
}

// GenerateMoves 为 player 构建完整的翻转索引，并返回是否存在合法落点。
//
// 从 player 的每颗棋子出发沿 8 个方向扫描：连续的对方棋子之后
// 遇到空格，就把这一段全部记到该空格名下。遇到己方棋子、出界，
// 或者空格前没有对方棋子，这条射线不产生记录。
func GenerateMoves(b *Board, player CellState) (MoveIndex, bool) {
	var idx MoveIndex
	opp := Opponent(player)

	for i := 0; i < BoardN; i++ {
		if b.Cells[i] != player {
			continue
		}
		for d := range Directions {
			ray := RayI[i][d]
			run := 0
			for _, j := range ray {
				s := b.Cells[j]
				if s == opp {
					run++
					continue
				}
				if s == Empty && run > 0 {
					if len(idx.flips[j]) == 0 {
						idx.n++
					}
					for _, f := range ray[:run] {
						idx.flips[j] = append(idx.flips[j], int8(f))
					}
				}
				break
			}
		}
	}
	return idx, idx.n > 0
}
