// Package tui draws the board in a terminal and handles keyboard play.
package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"othello_go/internal/game"
)

const (
	cellWidth   = 4
	cellHeight  = 2
	boardWidth  = game.BoardSize*cellWidth + 1
	boardHeight = game.BoardSize*cellHeight + 1
	padTop      = 3
	padLeft     = 4
	panelLeft   = padLeft + boardWidth + 3
)

const (
	stoneRune = '●'
	hintRune  = '·'
)

var (
	colorFelt   = tcell.NewRGBColor(0x1F, 0x7A, 0x3A)
	colorCursor = tcell.NewRGBColor(0x3A, 0xA8, 0x5A)
	colorPlaced = tcell.NewRGBColor(0x20, 0x40, 0xCC)
	colorFlip   = tcell.NewRGBColor(0x80, 0x80, 0xFF)
)

// Board represents the terminal view of one game.
type Board struct {
	game    *game.Game
	screen  tcell.Screen
	style   tcell.Style
	cursor  game.Coord
	lastMsg string
}

// New constructs a terminal board on the real terminal.
func New(g *game.Game) (*Board, error) {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return NewWithScreen(g, screen)
}

// NewWithScreen constructs a board on an existing screen, e.g. a simulation
// screen in tests.
func NewWithScreen(g *game.Game, screen tcell.Screen) (*Board, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}

	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	b := Board{
		game:   g,
		screen: screen,
		style:  style,
		cursor: game.Coord{X: 3, Y: 3},
	}
	b.draw()
	return &b, nil
}

// Shutdown tears down the screen.
func (b *Board) Shutdown() {
	b.screen.Fini()
}

// Run starts a goroutine that handles terminal events. The returned
// channel is closed when the user quits.
func (b *Board) Run() chan struct{} {
	quit := make(chan struct{})

	go func() {
		for {
			if b.game.IsAITurn() {
				b.aiTurn()
				continue
			}

			ev, ok := b.screen.PollEvent().(*tcell.EventKey)
			if !ok {
				b.draw()
				continue
			}
			if b.handleKey(ev) {
				close(quit)
				return
			}
		}
	}()

	return quit
}

// handleKey applies one key press and reports whether the user asked to quit.
func (b *Board) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		b.moveCursor(-1, 0)
	case tcell.KeyRight:
		b.moveCursor(1, 0)
	case tcell.KeyUp:
		b.moveCursor(0, -1)
	case tcell.KeyDown:
		b.moveCursor(0, 1)
	case tcell.KeyEnter:
		b.userTurn()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			b.userTurn()
		case 'u':
			b.undo()
		case 'n':
			b.game.Reset()
			b.lastMsg = "new game"
			log.Printf("[%s] new game: %s", shortID(b.game), b.game.Status())
		}
	}
	b.draw()
	return false
}

func shortID(g *game.Game) string {
	return g.ID.String()[:8]
}

func (b *Board) moveCursor(dx, dy int) {
	c := game.Coord{X: b.cursor.X + dx, Y: b.cursor.Y + dy}
	if c.InBounds() {
		b.cursor = c
	}
}

func (b *Board) userTurn() {
	st := b.game.State()
	if st.GameOver || b.game.IsAITurn() {
		b.screen.Beep()
		return
	}
	mover := st.CurrentPlayer
	if err := b.game.Play(b.cursor); err != nil {
		b.lastMsg = fmt.Sprintf("can't play %s", coordName(b.cursor))
		b.screen.Beep()
		return
	}
	b.lastMsg = fmt.Sprintf("%v played %s", mover, coordName(b.cursor))
	log.Printf("[%s] human (%v) plays %s; %s", shortID(b.game), mover, coordName(b.cursor), b.game.Status())
}

func (b *Board) aiTurn() {
	mover := b.game.State().CurrentPlayer
	b.lastMsg = fmt.Sprintf("%v (AI) thinking...", mover)
	b.draw()

	start := time.Now()
	mv, err := b.game.AIMove()
	if err != nil {
		b.lastMsg = fmt.Sprintf("AI: %v", err)
		log.Printf("[%s] ai: %v", shortID(b.game), err)
		b.draw()
		return
	}
	b.lastMsg = fmt.Sprintf("%v (AI) played %s in %v", mover, coordName(mv), time.Since(start).Round(time.Millisecond))
	log.Printf("[%s] ai (%v) plays %s; %s", shortID(b.game), mover, coordName(mv), b.game.Status())
	b.draw()
}

func (b *Board) undo() {
	var n int
	if b.game.Config().AI != game.Empty {
		n = b.game.UndoToHuman()
	} else if b.game.Undo() {
		n = 1
	}
	if n == 0 {
		b.screen.Beep()
		return
	}
	b.lastMsg = fmt.Sprintf("undid %d move(s)", n)
	log.Printf("[%s] undo %d move(s); %s", shortID(b.game), n, b.game.Status())
}

// coordName 把坐标写成 a1..h8（X 为列，Y 为行）
func coordName(c game.Coord) string {
	return fmt.Sprintf("%c%d", 'a'+c.X, c.Y+1)
}

// print writes str at (x, y) honouring wide runes.
func (b *Board) print(x, y int, str string, style tcell.Style) {
	for _, c := range str {
		var comb []rune
		w := runewidth.RuneWidth(c)
		if w == 0 {
			comb = []rune{c}
			c = ' '
			w = 1
		}
		b.screen.SetContent(x, y, c, comb, style)
		x += w
	}
}
