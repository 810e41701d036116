package ui

import "github.com/hajimehoshi/ebiten/v2"

const (
	activeTPS = 60
	idleTPS   = 15
)

var perfOn = true // 默认以高刷新启动，保证首帧流程正常

func enterPerf() {
	if perfOn {
		return
	}
	ebiten.SetTPS(activeTPS)
	perfOn = true
}

func leavePerf() {
	if !perfOn {
		return
	}
	ebiten.SetTPS(idleTPS)
	perfOn = false
}

// ensurePerf 电脑思考或鼠标在棋盘上时保持高刷新，其余时间降档
func ensurePerf(active bool) {
	if active {
		enterPerf()
	} else {
		leavePerf()
	}
}
