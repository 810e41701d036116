package game

// perftTTMinDepth 以下直接展开，查表不划算
const perftTTMinDepth = 3

// Perft 统计 depth 层内的叶子数，用来校验走法生成。
// 停一手在 apply 内部自动完成，不单独计一层。
func Perft(st *GameState, depth int) int64 {
	n, _ := PerftStats(st, depth)
	return n
}

// PerftStats 同 Perft，额外返回置换表命中统计
func PerftStats(st *GameState, depth int) (int64, TTStats) {
	if depth < perftTTMinDepth {
		return perftPlain(st, depth), TTStats{}
	}
	t := newPerftTable()
	n := perftTT(st, depth, t)
	return n, t.stats
}

func perftPlain(st *GameState, depth int) int64 {
	if depth == 0 || st.GameOver {
		return 1
	}
	var n int64
	for i := 0; i < BoardN; i++ {
		if !st.Moves.Has(i) {
			continue
		}
		child := st.Clone()
		child.apply(i)
		n += perftPlain(child, depth-1)
	}
	return n
}

func perftTT(st *GameState, depth int, t *perftTable) int64 {
	if depth < perftTTMinDepth || st.GameOver {
		return perftPlain(st, depth)
	}
	if n, ok := t.probe(st, depth); ok {
		return n
	}
	var n int64
	for i := 0; i < BoardN; i++ {
		if !st.Moves.Has(i) {
			continue
		}
		child := st.Clone()
		child.apply(i)
		n += perftTT(child, depth-1, t)
	}
	t.store(st, depth, n)
	return n
}
