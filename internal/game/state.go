package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBoard  = errors.New("coordinate out of board")
	ErrGameOver    = errors.New("game is over")
	ErrIllegalMove = errors.New("illegal move")
)

// GameState 包含棋盘、当前行棋方、合法走法索引、棋子数和胜负状态。
// 对外暴露的 GameState 的 Moves 总是与 (Board, CurrentPlayer) 一致。
type GameState struct {
	Board         Board     // 棋盘（值，拷贝即深拷贝）
	CurrentPlayer CellState // 当前行棋方
	Moves         MoveIndex // 当前行棋方的翻转索引
	Stones        int       // 棋盘上的棋子总数，增量维护
	GameOver      bool      // 游戏是否结束
	Winner        CellState // 胜者；Empty 表示平局，仅 GameOver 时有意义
}

// NewGameState 按标准开局摆好中心四子，由 cfg.First 先行
func NewGameState(cfg Config) *GameState {
	gs := &GameState{CurrentPlayer: cfg.First}
	if gs.CurrentPlayer != Black && gs.CurrentPlayer != White {
		gs.CurrentPlayer = White
	}

	mid := BoardSize / 2
	gs.Board.setI(Coord{mid - 1, mid - 1}.Index(), Black)
	gs.Board.setI(Coord{mid, mid - 1}.Index(), White)
	gs.Board.setI(Coord{mid - 1, mid}.Index(), White)
	gs.Board.setI(Coord{mid, mid}.Index(), Black)
	gs.Stones = 4

	gs.refreshMoves()
	return gs
}

// Clone 返回一份独立的拷贝；搜索在每个节点上都这样做
func (gs *GameState) Clone() *GameState {
	ns := *gs
	return &ns
}

func (gs *GameState) refreshMoves() bool {
	var ok bool
	gs.Moves, ok = GenerateMoves(&gs.Board, gs.CurrentPlayer)
	return ok
}

// apply 是不做校验的落子原语，搜索内部使用。
// 前置条件：gs.Moves.Has(i)。违反时结果无意义。
func (gs *GameState) apply(i int) []int8 {
	mover := gs.CurrentPlayer
	flips := gs.Moves.FlipsI(i)

	gs.Board.setI(i, mover)
	for _, f := range flips {
		gs.Board.setI(int(f), mover)
	}
	gs.Stones++

	gs.CurrentPlayer = Opponent(mover)
	hasMove := gs.refreshMoves()

	switch {
	case gs.Stones == BoardN:
		gs.finish()
	case !hasMove:
		gs.pass()
	}
	return flips
}

// pass 把行棋权交还对方；对方也无棋可走则终局
func (gs *GameState) pass() {
	gs.CurrentPlayer = Opponent(gs.CurrentPlayer)
	if !gs.refreshMoves() {
		gs.finish()
	}
}

func (gs *GameState) finish() {
	gs.GameOver = true
	gs.Winner = Winner(&gs.Board)
}

// MakeMove 校验并执行一次落子，返回被翻转的坐标。
// 非法输入直接返回错误，状态保持不变。
func (gs *GameState) MakeMove(c Coord) ([]Coord, error) {
	if !c.InBounds() {
		return nil, fmt.Errorf("make move %v: %w", c, ErrOutOfBoard)
	}
	if gs.GameOver {
		return nil, fmt.Errorf("make move %v: %w", c, ErrGameOver)
	}
	i := c.Index()
	if !gs.Moves.Has(i) {
		return nil, fmt.Errorf("make move %v for %v: %w", c, gs.CurrentPlayer, ErrIllegalMove)
	}

	flips := gs.apply(i)
	flipped := make([]Coord, len(flips))
	for k, f := range flips {
		flipped[k] = CoordOf[f]
	}
	return flipped, nil
}

// restore 用历史快照回滚：重建走法索引，棋子数减一，清除终局标记
func (gs *GameState) restore(b Board, turn CellState) {
	gs.Board = b
	gs.CurrentPlayer = turn
	gs.refreshMoves()
	gs.Stones--
	gs.GameOver = false
	gs.Winner = Empty
}

// Flips returns the coordinates that would be flipped by playing c.
func (gs *GameState) Flips(c Coord) []Coord {
	if !c.InBounds() {
		return nil
	}
	flips := gs.Moves.FlipsI(c.Index())
	out := make([]Coord, len(flips))
	for k, f := range flips {
		out[k] = CoordOf[f]
	}
	return out
}

// IsLegal reports whether c is a legal move for the side to move.
func (gs *GameState) IsLegal(c Coord) bool {
	return c.InBounds() && !gs.GameOver && gs.Moves.Has(c.Index())
}

// LegalCoords 按扫描顺序列出全部合法落点
func (gs *GameState) LegalCoords() []Coord {
	out := make([]Coord, 0, gs.Moves.Len())
	for i := 0; i < BoardN; i++ {
		if gs.Moves.Has(i) {
			out = append(out, CoordOf[i])
		}
	}
	return out
}

// GetScores 返回当前双方的棋子数 (Black, White)
func (gs *GameState) GetScores() (int, int) {
	return gs.Board.CountPieces(Black), gs.Board.CountPieces(White)
}

// Winner 按子数多少判定胜负，相等返回 Empty
func Winner(b *Board) CellState {
	black, white := 0, 0
	for i := 0; i < BoardN; i++ {
		switch b.Cells[i] {
		case Black:
			black++
		case White:
			white++
		}
	}
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	}
	return Empty
}
