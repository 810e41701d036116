package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNoMove = errors.New("no move available")

type historyEntry struct {
	board       Board
	turn        CellState
	lastMove    Coord
	hasLastMove bool
	lastFlipped []Coord
}

// Game 是对局控制器：持有真实局面和悔棋栈。
// 搜索只拿到局面的拷贝，从不碰历史栈。
type Game struct {
	ID uuid.UUID

	cfg     Config
	state   *GameState
	history []historyEntry

	LastMove    Coord   // 最近一手落点
	HasLastMove bool    // 是否存在最近一手
	LastFlipped []Coord // 最近一手翻转的棋子，仅用于高亮
}

// NewGame validates cfg and sets up the starting position.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{cfg: cfg}
	g.Reset()
	return g, nil
}

// Reset 重新开局，换一个新 ID
func (g *Game) Reset() {
	g.ID = uuid.New()
	g.state = NewGameState(g.cfg)
	g.history = make([]historyEntry, 0, BoardN)
	g.LastMove = Coord{}
	g.HasLastMove = false
	g.LastFlipped = nil
}

func (g *Game) Config() Config { return g.cfg }

// State 返回真实局面，调用方只读
func (g *Game) State() *GameState { return g.state }

// HistoryLen returns the number of moves that can be undone.
func (g *Game) HistoryLen() int { return len(g.history) }

// IsAITurn 当前是否轮到电脑
func (g *Game) IsAITurn() bool {
	return g.cfg.AI != Empty && !g.state.GameOver && g.state.CurrentPlayer == g.cfg.AI
}

// Play 执行一手。失败时局面和历史都不变。
func (g *Game) Play(c Coord) error {
	entry := historyEntry{
		board:       g.state.Board,
		turn:        g.state.CurrentPlayer,
		lastMove:    g.LastMove,
		hasLastMove: g.HasLastMove,
		lastFlipped: g.LastFlipped,
	}
	flipped, err := g.state.MakeMove(c)
	if err != nil {
		return err
	}
	g.history = append(g.history, entry)
	g.LastMove = c
	g.HasLastMove = true
	g.LastFlipped = flipped
	return nil
}

// AIMove 为当前行棋方搜索并落子
func (g *Game) AIMove() (Coord, error) {
	mv, ok := FindBestMove(g.state, g.cfg)
	if !ok {
		return Coord{}, fmt.Errorf("ai move: %w", ErrNoMove)
	}
	if err := g.Play(mv); err != nil {
		return Coord{}, fmt.Errorf("ai move: %w", err)
	}
	return mv, nil
}

// Undo 撤销最近一手。没有历史时什么也不做，返回 false。
// 回滚后 Winner 复位，高亮恢复为上一手的。
func (g *Game) Undo() bool {
	n := len(g.history)
	if n == 0 {
		return false
	}
	e := g.history[n-1]
	g.history = g.history[:n-1]

	g.state.restore(e.board, e.turn)
	g.LastMove = e.lastMove
	g.HasLastMove = e.hasLastMove
	g.LastFlipped = e.lastFlipped
	return true
}

// UndoToHuman 连续悔棋直到轮到人类（或历史为空），返回撤销的手数
func (g *Game) UndoToHuman() int {
	n := 0
	for g.Undo() {
		n++
		if !g.IsAITurn() {
			break
		}
	}
	return n
}

// Status 返回一行对局状态，前端每手之后打印
func (g *Game) Status() string {
	st := g.state
	black, white := st.GetScores()
	if st.GameOver {
		switch st.Winner {
		case Black, White:
			return fmt.Sprintf("game over: %v wins (Black %d, White %d)", st.Winner, black, white)
		default:
			return fmt.Sprintf("game over: draw (Black %d, White %d)", black, white)
		}
	}
	return fmt.Sprintf("to move: %v, stones on board: %d (Black %d, White %d)", st.CurrentPlayer, st.Stones, black, white)
}
