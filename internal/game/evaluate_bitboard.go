// file: internal/game/evaluate_bitboard.go
package game

import "math/bits"

// ---- 位板掩码 ----
// 下标 = X*8 + Y：X 决定字节，Y 决定字节内的位

const (
	maskX0    uint64 = 0x00000000000000FF // X == 0
	maskX7    uint64 = 0xFF00000000000000 // X == 7
	maskY0    uint64 = 0x0101010101010101 // Y == 0
	maskY7    uint64 = 0x8080808080808080 // Y == 7
	notMaskY0        = ^maskY0
	notMaskY7        = ^maskY7
)

var edgeMasks = [4]uint64{maskX0, maskX7, maskY0, maskY7}

// EvaluateBitBoard 与 EvaluateStatic 结果完全相同，用 popcount 实现
func EvaluateBitBoard(b *Board, side CellState) int {
	my := b.Bits(side)
	op := b.Bits(Opponent(side))

	res := bits.OnesCount64(my) - bits.OnesCount64(op)
	for _, m := range edgeMasks {
		res += edgeW * (bits.OnesCount64(my&m) - bits.OnesCount64(op&m))
	}
	return res
}

// ---- 行动力 ----

type bbDir struct {
	n    uint
	left bool
	mask uint64 // 去掉跨行回绕的位
}

var bbDirs = [8]bbDir{
	{1, true, notMaskY0},   // Y+1
	{1, false, notMaskY7},  // Y-1
	{8, true, ^uint64(0)},  // X+1
	{8, false, ^uint64(0)}, // X-1
	{9, true, notMaskY0},   // X+1, Y+1
	{7, true, notMaskY7},   // X+1, Y-1
	{7, false, notMaskY0},  // X-1, Y+1
	{9, false, notMaskY7},  // X-1, Y-1
}

func (d bbDir) shift(x uint64) uint64 {
	if d.left {
		return (x << d.n) & d.mask
	}
	return (x >> d.n) & d.mask
}

// Mobility 返回 own 一方所有合法落点的位板，
// 结果必须与 GenerateMoves(...).Mask() 一致
func Mobility(own, opp uint64) uint64 {
	empty := ^(own | opp)
	var moves uint64
	for _, d := range bbDirs {
		x := d.shift(own) & opp
		for k := 0; k < BoardSize-3; k++ {
			x |= d.shift(x) & opp
		}
		moves |= d.shift(x) & empty
	}
	return moves
}
