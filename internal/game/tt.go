package game

import (
	"math/bits"
	"math/rand"
)

// -------- 参数：按需调大 --------
const ttBuckets = 1 << 16 // 桶数量
const ttWays = 4          // 组相联路数
const ttMask = ttBuckets - 1

// zobristCell[i][Empty] 恒为 0，空盘的哈希就是 0
var (
	zobristCell [BoardN][3]uint64 // [index][state]
	zobristSide [3]uint64         // 行棋方
)

// initZobrist 用固定种子生成随机键，哈希跨进程可复现
func initZobrist() {
	r := rand.New(rand.NewSource(0x5eed0e11))
	for i := range zobristCell {
		zobristCell[i][Black] = r.Uint64()
		zobristCell[i][White] = r.Uint64()
	}
	zobristSide[Black] = r.Uint64()
	zobristSide[White] = r.Uint64()
}

// hashFromScratch 不依赖增量维护，从位板重新算一遍
func hashFromScratch(b *Board) uint64 {
	var h uint64
	for bb := b.bitB; bb != 0; bb &= bb - 1 {
		h ^= zobristCell[bits.TrailingZeros64(bb)][Black]
	}
	for bb := b.bitW; bb != 0; bb &= bb - 1 {
		h ^= zobristCell[bits.TrailingZeros64(bb)][White]
	}
	return h
}

func ttKeyFor(st *GameState) uint64 {
	return st.Board.hash ^ zobristSide[st.CurrentPlayer]
}

// ttEntry 保存完整位板，命中必须逐位相等，不会因哈希碰撞给出错误计数
type ttEntry struct {
	bitB  uint64
	bitW  uint64
	turn  CellState
	depth int8 // 0 = 空槽
	count int64
}

// TTStats 置换表命中统计
type TTStats struct {
	Probes uint64
	Hits   uint64
}

// HitRate 命中率（百分比）
func (s TTStats) HitRate() float64 {
	if s.Probes == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Probes) * 100
}

// perftTable 只给 perft 用：某局面往下 depth 层的叶子数与到达路径无关。
// 单线程使用，不加锁。
type perftTable struct {
	buckets [][ttWays]ttEntry
	stats   TTStats
}

func newPerftTable() *perftTable {
	return &perftTable{buckets: make([][ttWays]ttEntry, ttBuckets)}
}

func (t *perftTable) probe(st *GameState, depth int) (int64, bool) {
	t.stats.Probes++
	b := &t.buckets[ttKeyFor(st)&ttMask]
	for w := 0; w < ttWays; w++ {
		e := &b[w]
		if int(e.depth) == depth && e.turn == st.CurrentPlayer &&
			e.bitB == st.Board.bitB && e.bitW == st.Board.bitW {
			t.stats.Hits++
			return e.count, true
		}
	}
	return 0, false
}

// 写：优先覆盖同一局面；否则覆盖深度最浅的槽
func (t *perftTable) store(st *GameState, depth int, count int64) {
	b := &t.buckets[ttKeyFor(st)&ttMask]

	slot := 0
	bestDepth := int(^uint(0) >> 1) // +Inf
	for w := 0; w < ttWays; w++ {
		e := &b[w]
		if e.turn == st.CurrentPlayer && e.bitB == st.Board.bitB && e.bitW == st.Board.bitW {
			slot = w
			break
		}
		if d := int(e.depth); d < bestDepth {
			bestDepth = d
			slot = w
		}
	}

	b[slot] = ttEntry{
		bitB:  st.Board.bitB,
		bitW:  st.Board.bitW,
		turn:  st.CurrentPlayer,
		depth: int8(depth),
		count: count,
	}
}
