package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"othello_go/internal/game"
)

func newTestBoard(t *testing.T, cfg game.Config) (*Board, tcell.SimulationScreen) {
	t.Helper()
	g, err := game.NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	screen := tcell.NewSimulationScreen("UTF-8")
	b, err := NewWithScreen(g, screen)
	if err != nil {
		t.Fatalf("NewWithScreen: %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(b.Shutdown)
	return b, screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func twoHumans() game.Config {
	cfg := game.DefaultConfig()
	cfg.AI = game.Empty
	return cfg
}

func TestDrawShowsOpening(t *testing.T) {
	b, screen := newTestBoard(t, twoHumans())
	b.draw()

	for _, c := range []game.Coord{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 4}} {
		x, y := cellPos(c)
		r, _, style, _ := screen.GetContent(x, y)
		if r != stoneRune {
			t.Fatalf("cell %v: got %q, want stone", c, r)
		}
		fg, _, _ := style.Decompose()
		want := tcell.ColorWhite
		if b.game.State().Board.Get(c) == game.Black {
			want = tcell.ColorBlack
		}
		if fg != want {
			t.Errorf("cell %v: fg %v, want %v", c, fg, want)
		}
	}

	for _, c := range b.game.State().LegalCoords() {
		x, y := cellPos(c)
		if r, _, _, _ := screen.GetContent(x, y); r != hintRune {
			t.Errorf("legal cell %v: got %q, want hint", c, r)
		}
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	b, _ := newTestBoard(t, twoHumans())
	for i := 0; i < 20; i++ {
		b.handleKey(key(tcell.KeyLeft))
		b.handleKey(key(tcell.KeyUp))
	}
	if b.cursor != (game.Coord{}) {
		t.Fatalf("cursor = %v, want (0,0)", b.cursor)
	}
	for i := 0; i < 20; i++ {
		b.handleKey(key(tcell.KeyRight))
		b.handleKey(key(tcell.KeyDown))
	}
	if b.cursor != (game.Coord{X: 7, Y: 7}) {
		t.Fatalf("cursor = %v, want (7,7)", b.cursor)
	}
}

func TestPlayAndUndo(t *testing.T) {
	b, _ := newTestBoard(t, twoHumans())
	mv := b.game.State().LegalCoords()[0]
	b.cursor = mv
	first := b.game.State().CurrentPlayer

	if quit := b.handleKey(runeKey(' ')); quit {
		t.Fatal("space should not quit")
	}
	if b.game.HistoryLen() != 1 {
		t.Fatalf("history = %d, want 1", b.game.HistoryLen())
	}
	if got := b.game.State().Board.Get(mv); got != first {
		t.Fatalf("cell %v = %v, want %v", mv, got, first)
	}

	b.handleKey(runeKey('u'))
	if b.game.HistoryLen() != 0 {
		t.Fatalf("history after undo = %d, want 0", b.game.HistoryLen())
	}
	if got := b.game.State().Board.Get(mv); got != game.Empty {
		t.Fatalf("cell %v after undo = %v, want empty", mv, got)
	}
}

func TestIllegalMoveKeepsState(t *testing.T) {
	b, _ := newTestBoard(t, twoHumans())
	b.cursor = game.Coord{X: 0, Y: 0}
	b.handleKey(key(tcell.KeyEnter))
	if b.game.HistoryLen() != 0 {
		t.Fatalf("illegal move was recorded")
	}
	if b.lastMsg == "" {
		t.Fatalf("expected a message for an illegal move")
	}
}

func TestUndoAgainstAI(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.MaxDepth = 1
	cfg.AI = game.Black
	cfg.First = game.White
	b, _ := newTestBoard(t, cfg)

	b.cursor = b.game.State().LegalCoords()[0]
	b.handleKey(runeKey(' '))
	if !b.game.IsAITurn() {
		t.Fatalf("expected AI turn after the human move")
	}
	b.aiTurn()
	if b.game.HistoryLen() != 2 {
		t.Fatalf("history = %d, want 2", b.game.HistoryLen())
	}

	b.handleKey(runeKey('u'))
	if b.game.HistoryLen() != 0 {
		t.Fatalf("history after undo = %d, want 0", b.game.HistoryLen())
	}
	if b.game.IsAITurn() {
		t.Fatalf("undo should stop on the human's turn")
	}
}

func TestQuitKeys(t *testing.T) {
	b, _ := newTestBoard(t, twoHumans())
	if !b.handleKey(runeKey('q')) {
		t.Error("q should quit")
	}
	if !b.handleKey(key(tcell.KeyEscape)) {
		t.Error("esc should quit")
	}
}

func TestNewGameResets(t *testing.T) {
	b, _ := newTestBoard(t, twoHumans())
	id := b.game.ID
	b.cursor = b.game.State().LegalCoords()[0]
	b.handleKey(runeKey(' '))
	b.handleKey(runeKey('n'))
	if b.game.HistoryLen() != 0 || b.game.State().Stones != 4 {
		t.Fatalf("new game did not reset the board")
	}
	if b.game.ID == id {
		t.Fatalf("new game kept the old ID")
	}
}

func TestCoordName(t *testing.T) {
	if got := coordName(game.Coord{X: 0, Y: 0}); got != "a1" {
		t.Errorf("got %s, want a1", got)
	}
	if got := coordName(game.Coord{X: 7, Y: 2}); got != "h3" {
		t.Errorf("got %s, want h3", got)
	}
}
