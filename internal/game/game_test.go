package game

import (
	"errors"
	"strings"
	"testing"
)

func newTestGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDepth = -1
	if _, err := NewGame(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("got %v", err)
	}
}

func TestPlayUndoRoundTrip(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	st := g.State()

	for _, mv := range []Coord{{2, 3}, {2, 2}, {2, 1}} {
		board, turn, stones := st.Board, st.CurrentPlayer, st.Stones
		if err := g.Play(mv); err != nil {
			t.Fatalf("play %v: %v", mv, err)
		}
		if st.Stones != stones+1 {
			t.Fatalf("stones %d -> %d", stones, st.Stones)
		}
		if !g.HasLastMove || g.LastMove != mv || len(g.LastFlipped) == 0 {
			t.Fatalf("last move highlight not recorded")
		}
		if !g.Undo() {
			t.Fatalf("undo returned false")
		}
		if st.Board != board || st.CurrentPlayer != turn || st.Stones != stones {
			t.Fatalf("undo did not restore the position before %v", mv)
		}
		fresh, _ := GenerateMoves(&st.Board, st.CurrentPlayer)
		if fresh.Mask() != st.Moves.Mask() {
			t.Fatalf("move index not recomputed after undo")
		}
		// 重新走一次，继续下一手
		if err := g.Play(mv); err != nil {
			t.Fatal(err)
		}
	}
	if g.HistoryLen() != 3 {
		t.Fatalf("history = %d", g.HistoryLen())
	}
}

func TestUndoEmptyHistoryIsNoop(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	before := *g.State()
	if g.Undo() {
		t.Fatalf("undo on fresh game returned true")
	}
	if g.State().Board != before.Board || g.State().Stones != 4 {
		t.Fatalf("undo changed a fresh game")
	}
}

func TestUndoRestoresHighlight(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	g.Play(Coord{2, 3})
	first, firstFlipped := g.LastMove, g.LastFlipped
	g.Play(Coord{2, 2})
	g.Undo()
	if !g.HasLastMove || g.LastMove != first || len(g.LastFlipped) != len(firstFlipped) {
		t.Fatalf("highlight after undo = %v %v", g.LastMove, g.LastFlipped)
	}
	g.Undo()
	if g.HasLastMove || g.LastFlipped != nil {
		t.Fatalf("highlight should be cleared at the start")
	}
}

func TestPlayIllegalKeepsHistory(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	if err := g.Play(Coord{0, 0}); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("got %v", err)
	}
	if err := g.Play(Coord{9, 9}); !errors.Is(err, ErrOutOfBoard) {
		t.Fatalf("got %v", err)
	}
	if g.HistoryLen() != 0 || g.HasLastMove {
		t.Fatalf("failed moves touched the history")
	}
}

func TestUndoClearsGameOver(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	cells := map[Coord]CellState{}
	for i := 0; i < BoardN; i++ {
		cells[CoordOf[i]] = Black
	}
	delete(cells, Coord{0, 0})
	cells[Coord{0, 7}] = White
	g.state = stateFrom(cells, White)

	if err := g.Play(Coord{0, 0}); err != nil {
		t.Fatal(err)
	}
	if !g.State().GameOver || g.State().Winner != Black {
		t.Fatalf("expected Black to win on a full board")
	}
	if !strings.Contains(g.Status(), "Black wins") {
		t.Fatalf("status = %q", g.Status())
	}

	g.Undo()
	st := g.State()
	if st.GameOver || st.Winner != Empty {
		t.Fatalf("undo left over=%v winner=%v", st.GameOver, st.Winner)
	}
	if st.Stones != BoardN-1 || st.CurrentPlayer != White || !st.IsLegal(Coord{0, 0}) {
		t.Fatalf("undo did not restore the last position")
	}
}

func TestAIMoveAndTurns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDepth = 2
	g := newTestGame(t, cfg)

	if g.IsAITurn() {
		t.Fatalf("White (human) moves first")
	}
	if err := g.Play(Coord{2, 3}); err != nil {
		t.Fatal(err)
	}
	if !g.IsAITurn() {
		t.Fatalf("Black (ai) should be to move")
	}
	mv, err := g.AIMove()
	if err != nil {
		t.Fatal(err)
	}
	if g.LastMove != mv || g.State().Stones != 6 {
		t.Fatalf("ai move %v not applied", mv)
	}

	if n := g.UndoToHuman(); n != 2 || g.IsAITurn() || g.HistoryLen() != 0 {
		t.Fatalf("UndoToHuman undid %d, history %d", n, g.HistoryLen())
	}
}

func TestAIMoveOnFinishedGame(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	g.state.finish()
	if _, err := g.AIMove(); !errors.Is(err, ErrNoMove) {
		t.Fatalf("got %v", err)
	}
}

func TestSelfPlayFinishes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDepth = 2
	g := newTestGame(t, cfg)
	for moves := 0; !g.State().GameOver; moves++ {
		if moves > BoardN {
			t.Fatalf("game did not finish")
		}
		if _, err := g.AIMove(); err != nil {
			t.Fatal(err)
		}
	}
	if !strings.HasPrefix(g.Status(), "game over") {
		t.Fatalf("status = %q", g.Status())
	}
}

func TestResetChangesID(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	id := g.ID
	g.Play(Coord{2, 3})
	g.Reset()
	if g.ID == id || g.HistoryLen() != 0 || g.State().Stones != 4 {
		t.Fatalf("reset did not start a new game")
	}
}
