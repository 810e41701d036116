package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"othello_go/internal/game"
)

// cellPos 返回格子中心在终端里的位置
func cellPos(c game.Coord) (int, int) {
	return padLeft + c.X*cellWidth + cellWidth/2, padTop + c.Y*cellHeight + 1
}

func (b *Board) draw() {
	b.screen.Clear()

	b.print(padLeft, 0, "Othello", b.style.Bold(true))
	b.drawGrid()
	b.drawCells()
	b.drawPanel()

	b.screen.Show()
}

func (b *Board) drawGrid() {
	grid := b.style.Foreground(tcell.ColorGray)

	for h := 0; h < boardHeight; h++ {
		for w := 0; w < boardWidth; w++ {
			r := ' '
			switch {
			case h%cellHeight == 0 && w%cellWidth == 0:
				r = '┼'
			case h%cellHeight == 0:
				r = '─'
			case w%cellWidth == 0:
				r = '│'
			}
			b.screen.SetContent(padLeft+w, padTop+h, r, nil, grid)
		}
	}

	for k := 0; k < game.BoardSize; k++ {
		x, _ := cellPos(game.Coord{X: k})
		b.print(x, padTop-1, string(rune('a'+k)), b.style)
		_, y := cellPos(game.Coord{Y: k})
		b.print(padLeft-2, y, fmt.Sprint(k+1), b.style)
	}
}

func (b *Board) drawCells() {
	st := b.game.State()
	showHints := !st.GameOver && !b.game.IsAITurn()

	flipped := make(map[game.Coord]bool, len(b.game.LastFlipped))
	for _, c := range b.game.LastFlipped {
		flipped[c] = true
	}

	for i := 0; i < game.BoardN; i++ {
		c := game.CoordOf[i]
		bg := colorFelt
		switch {
		case c == b.cursor:
			bg = colorCursor
		case b.game.HasLastMove && c == b.game.LastMove:
			bg = colorPlaced
		case flipped[c]:
			bg = colorFlip
		}
		style := b.style.Background(bg)

		x, y := cellPos(c)
		for dx := -(cellWidth / 2) + 1; dx < cellWidth/2; dx++ {
			b.screen.SetContent(x+dx, y, ' ', nil, style)
		}

		switch st.Board.GetI(i) {
		case game.Black:
			b.screen.SetContent(x, y, stoneRune, nil, style.Foreground(tcell.ColorBlack))
		case game.White:
			b.screen.SetContent(x, y, stoneRune, nil, style.Foreground(tcell.ColorWhite))
		default:
			if showHints && st.Moves.Has(i) {
				b.screen.SetContent(x, y, hintRune, nil, style.Foreground(tcell.ColorYellow))
			}
		}
	}
}

func (b *Board) drawPanel() {
	st := b.game.State()
	black, white := st.GetScores()

	lines := []string{
		fmt.Sprintf("Black ● %2d", black),
		fmt.Sprintf("White ○ %2d", white),
		"",
		b.game.Status(),
		b.lastMsg,
		"",
		"←↑↓→ move   space/enter play",
		"u undo   n new game   q quit",
	}

	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	for i, l := range lines {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(l))
		b.print(panelLeft, padTop+i, l+pad, b.style)
	}
}
