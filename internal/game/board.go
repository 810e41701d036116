// File game/board.go
package game

import "math/bits"

// CellState represents the state of a cell on the board.
// It can be Empty or occupied by Black or White.
type CellState int8

const (
	Empty CellState = iota
	Black
	White
)

func (s CellState) String() string {
	switch s {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Empty"
}

// Opponent 返回对手颜色；Empty 的对手仍是 Empty
func Opponent(player CellState) CellState {
	switch player {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

const BoardSize = 8
const BoardN = BoardSize * BoardSize // 下标 = X*8 + Y，和扫描顺序一致

// Coord is a (file, rank) pair. It addresses a cell and identifies a move.
type Coord struct {
	X, Y int
}

// InBounds reports whether both components are in [0, BoardSize).
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// Index 只对 InBounds 的坐标有意义
func (c Coord) Index() int { return c.X*BoardSize + c.Y }

// Directions defines the 8 compass offsets.
var Directions = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var (
	CoordOf [BoardN]Coord    // index -> 坐标
	RayI    [BoardN][8][]int // 每格沿 8 个方向向外的格子下标（由近到远）
	bitOf   [BoardN]uint64   // 1<<i
)

func init() {
	initBoardTables()
	initZobrist()
}

func initBoardTables() {
	for i := 0; i < BoardN; i++ {
		c := Coord{i / BoardSize, i % BoardSize}
		CoordOf[i] = c
		bitOf[i] = 1 << uint(i)

		for d, dir := range Directions {
			ray := make([]int, 0, BoardSize-1)
			n := Coord{c.X + dir.X, c.Y + dir.Y}
			for n.InBounds() {
				ray = append(ray, n.Index())
				n = Coord{n.X + dir.X, n.Y + dir.Y}
			}
			RayI[i][d] = ray
		}
	}
}

// Board is the 8x8 grid. It is a plain value: assigning it copies the grid.
type Board struct {
	Cells [BoardN]CellState

	// 与 Cells 同步维护的位板和 Zobrist 哈希
	bitB uint64
	bitW uint64
	hash uint64
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// GetI returns the cell state at index i.
func (b *Board) GetI(i int) CellState { return b.Cells[i] }

// Get returns the cell state at c. Out-of-board coordinates read as Empty.
func (b *Board) Get(c Coord) CellState {
	if !c.InBounds() {
		return Empty
	}
	return b.Cells[c.Index()]
}

func (b *Board) setI(i int, s CellState) {
	prev := b.Cells[i]
	if prev == s {
		return
	}
	switch prev {
	case Black:
		b.bitB &^= bitOf[i]
	case White:
		b.bitW &^= bitOf[i]
	}
	switch s {
	case Black:
		b.bitB |= bitOf[i]
	case White:
		b.bitW |= bitOf[i]
	}
	b.hash ^= zobristCell[i][prev] ^ zobristCell[i][s]
	b.Cells[i] = s
}

// Hash 返回棋面的 Zobrist 键，不含行棋方
func (b *Board) Hash() uint64 { return b.hash }

func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// Bits 返回 pl 方的位板
func (b *Board) Bits(pl CellState) uint64 {
	switch pl {
	case Black:
		return b.bitB
	case White:
		return b.bitW
	}
	return ^(b.bitB | b.bitW)
}

// CountPieces 统计棋盘上 pl 方棋子数量
func (b *Board) CountPieces(pl CellState) int {
	return bits.OnesCount64(b.Bits(pl))
}
