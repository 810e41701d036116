// File /ui/render.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"othello_go/internal/game"
)

var (
	colorBackground = color.RGBA{0x30, 0x30, 0x30, 0xFF}
	colorFelt       = color.RGBA{0x1F, 0x7A, 0x3A, 0xFF}
	colorGrid       = color.RGBA{0x0B, 0x3D, 0x1B, 0xFF}
	colorPlaced     = color.RGBA{0x20, 0x40, 0xCC, 0xFF} // 最近落子
	colorFlipped    = color.RGBA{0x80, 0x80, 0xFF, 0xFF} // 最近被翻转
	colorHover      = color.RGBA{0xFF, 0xFF, 0xFF, 0x30}
)

// Draw 每帧渲染：底色、高亮、网格、棋子、提示、状态栏
func (gs *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	st := gs.game.State()

	vector.DrawFilledRect(screen, boardOrigin, boardOrigin, boardPx, boardPx, colorFelt, false)
	gs.drawHighlights(screen)
	drawGrid(screen)

	for i := 0; i < game.BoardN; i++ {
		s := st.Board.GetI(i)
		if s == game.Empty {
			continue
		}
		gs.drawAt(screen, gs.discImages[s], game.CoordOf[i])
	}

	// 只给人类一方画提示
	if !st.GameOver && !gs.game.IsAITurn() {
		for _, c := range st.LegalCoords() {
			gs.drawAt(screen, gs.hintImage, c)
		}
		if gs.hoverOK && st.IsLegal(gs.hover) {
			x, y := cellOrigin(gs.hover)
			vector.DrawFilledRect(screen, float32(x), float32(y), cellPx, cellPx, colorHover, false)
		}
	}

	gs.drawStatus(screen)
}

func (gs *GameScreen) drawHighlights(screen *ebiten.Image) {
	if !gs.game.HasLastMove {
		return
	}
	fill := func(c game.Coord, clr color.Color) {
		x, y := cellOrigin(c)
		vector.DrawFilledRect(screen, float32(x), float32(y), cellPx, cellPx, clr, false)
	}
	fill(gs.game.LastMove, colorPlaced)
	for _, c := range gs.game.LastFlipped {
		fill(c, colorFlipped)
	}
}

func drawGrid(screen *ebiten.Image) {
	for k := 0; k <= game.BoardSize; k++ {
		p := float32(boardOrigin + k*cellPx)
		vector.StrokeLine(screen, p, boardOrigin, p, boardOrigin+boardPx, 2, colorGrid, false)
		vector.StrokeLine(screen, boardOrigin, p, boardOrigin+boardPx, p, 2, colorGrid, false)
	}
}

// drawAt 把贴图居中画到格子 c 上
func (gs *GameScreen) drawAt(screen, img *ebiten.Image, c game.Coord) {
	if img == nil {
		return
	}
	x, y := cellOrigin(c)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Translate(x+float64(cellPx-w)/2, y+float64(cellPx-h)/2)
	screen.DrawImage(img, op)
}

func (gs *GameScreen) drawStatus(screen *ebiten.Image) {
	st := gs.game.State()
	black, white := st.GetScores()

	var line string
	switch {
	case st.GameOver && st.Winner == game.Empty:
		line = "Draw."
	case st.GameOver:
		line = fmt.Sprintf("%v wins.", st.Winner)
	case gs.game.IsAITurn():
		line = fmt.Sprintf("%v (AI) thinking...", st.CurrentPlayer)
	default:
		line = fmt.Sprintf("%v to move", st.CurrentPlayer)
	}
	info := fmt.Sprintf("Black: %d   White: %d   %s   [U] undo  [N] new", black, white, line)
	text.Draw(screen, info, gs.fontFace, boardOrigin, statusY, color.White)
}
