// File ui/input.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"othello_go/internal/game"
)

// pixelToCoord 把逻辑画布上的像素坐标换算成棋盘格
func pixelToCoord(px, py int) (game.Coord, bool) {
	x := px - boardOrigin
	y := py - boardOrigin
	if x < 0 || y < 0 {
		return game.Coord{}, false
	}
	c := game.Coord{X: x / cellPx, Y: y / cellPx}
	return c, c.InBounds()
}

// cellOrigin 返回格子左上角的像素坐标
func cellOrigin(c game.Coord) (float64, float64) {
	return float64(boardOrigin + c.X*cellPx), float64(boardOrigin + c.Y*cellPx)
}

// handleInput 处理鼠标：记录悬停格，左键点在合法落点上就落子
func (gs *GameScreen) handleInput() {
	mx, my := ebiten.CursorPosition()
	gs.hover, gs.hoverOK = pixelToCoord(mx, my)

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if !gs.hoverOK || !gs.game.State().IsLegal(gs.hover) {
		return
	}
	gs.commitMove(gs.hover, "human")
}
