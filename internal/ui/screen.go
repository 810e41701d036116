// File /ui/screen.go
package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"othello_go/internal/assets"
	"othello_go/internal/game"
)

const (
	// 窗口尺寸
	WindowWidth  = 640
	WindowHeight = 680

	cellPx      = 72
	boardOrigin = 32                           // 棋盘左上角（x、y 相同）
	boardPx     = cellPx * game.BoardSize      // 576
	statusY     = boardOrigin*2 + boardPx + 14 // 状态栏文字基线
	discPx      = cellPx - 8                   // 棋子贴图边长
	aiDelay     = 300 * time.Millisecond       // 人落子后先让画面刷新再让电脑思考
)

type aiResult struct {
	gen     int
	move    game.Coord
	ok      bool
	elapsed time.Duration
	nodes   int64
}

// GameScreen 实现 ebiten.Game 接口，管理主循环、输入和渲染
type GameScreen struct {
	game         *game.Game
	discImages   map[game.CellState]*ebiten.Image // 棋子贴图
	hintImage    *ebiten.Image                    // 合法落点提示
	audioManager *assets.AudioManager
	fontFace     font.Face

	hover   game.Coord // 鼠标所在格
	hoverOK bool

	gen          int // 局面版本：落子、悔棋、重开都会递增，用来丢弃过期的 AI 结果
	aiResultCh   chan aiResult
	aiRunning    bool
	aiDelayUntil time.Time
	announced    bool // 终局信息是否已经输出
}

// NewGameScreen 构造并初始化游戏界面；ctx 为 nil 时不播放声音
func NewGameScreen(g *game.Game, ctx *audio.Context) (*GameScreen, error) {
	gs := &GameScreen{
		game:       g,
		discImages: make(map[game.CellState]*ebiten.Image),
		fontFace:   basicfont.Face7x13,
		aiResultCh: make(chan aiResult, 1),
	}

	var err error
	if gs.discImages[game.Black], err = assets.LoadImage("black_disc", discPx); err != nil {
		return nil, err
	}
	if gs.discImages[game.White], err = assets.LoadImage("white_disc", discPx); err != nil {
		return nil, err
	}
	if gs.hintImage, err = assets.LoadImage("move_hint", discPx); err != nil {
		return nil, err
	}

	if ctx != nil {
		if gs.audioManager, err = assets.NewAudioManager(ctx); err != nil {
			return nil, fmt.Errorf("init audio manager: %w", err)
		}
	}

	log.Printf("[%s] new game: %s", shortID(g), g.Status())
	return gs, nil
}

func shortID(g *game.Game) string {
	return g.ID.String()[:8]
}

// commitMove 在真实局面上落子，并推进版本号
func (gs *GameScreen) commitMove(c game.Coord, who string) {
	mover := gs.game.State().CurrentPlayer
	if err := gs.game.Play(c); err != nil {
		log.Printf("[%s] %s move %v rejected: %v", shortID(gs.game), who, c, err)
		return
	}
	gs.gen++
	gs.aiDelayUntil = time.Now().Add(aiDelay)
	gs.audioManager.Play("place")
	if len(gs.game.LastFlipped) > 3 {
		gs.audioManager.Play("flip")
	}
	log.Printf("[%s] %s (%v) plays (%d,%d), flips %d; %s",
		shortID(gs.game), who, mover, c.X, c.Y, len(gs.game.LastFlipped), gs.game.Status())
}

// Update 更新游戏状态
func (gs *GameScreen) Update() error {
	now := time.Now()
	gs.audioManager.Update()

	// 1) 快捷键：悔棋 / 重开
	gs.handleKeys()

	st := gs.game.State()
	if st.GameOver {
		if !gs.announced {
			gs.announced = true
			gs.audioManager.Play("game_over")
			log.Printf("[%s] %s", shortID(gs.game), gs.game.Status())
		}
		ensurePerf(false)
		return nil
	}
	gs.announced = false

	// 2) 电脑回合：后台搜索，结果经 channel 送回
	if gs.game.IsAITurn() {
		ensurePerf(true)
		gs.updateAI(now)
		return nil
	}

	// 3) 人类输入
	gs.handleInput()
	ensurePerf(gs.hoverOK)
	return nil
}

func (gs *GameScreen) updateAI(now time.Time) {
	select {
	case r := <-gs.aiResultCh:
		gs.aiRunning = false
		if r.gen != gs.gen {
			// 思考期间局面变过（悔棋/重开），结果作废
			return
		}
		if !r.ok {
			log.Printf("[%s] ai found no move", shortID(gs.game))
			return
		}
		log.Printf("[%s] ai searched %d nodes in %v", shortID(gs.game), r.nodes, r.elapsed.Round(time.Millisecond))
		gs.commitMove(r.move, "ai")
		return
	default:
	}

	if gs.aiRunning || now.Before(gs.aiDelayUntil) {
		return
	}
	gs.aiRunning = true

	stateCopy := gs.game.State().Clone()
	cfg := gs.game.Config()
	go func(st *game.GameState, gen int, out chan<- aiResult) {
		start := time.Now()
		game.ResetSearchNodes()
		mv, ok := game.FindBestMove(st, cfg)
		out <- aiResult{gen: gen, move: mv, ok: ok, elapsed: time.Since(start), nodes: game.SearchNodes()}
	}(stateCopy, gs.gen, gs.aiResultCh)
}

func (gs *GameScreen) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		var n int
		if gs.game.Config().AI != game.Empty {
			n = gs.game.UndoToHuman()
		} else if gs.game.Undo() {
			n = 1
		}
		if n == 0 {
			return
		}
		gs.gen++
		gs.aiDelayUntil = time.Now().Add(aiDelay)
		gs.audioManager.Play("undo")
		log.Printf("[%s] undo %d move(s); %s", shortID(gs.game), n, gs.game.Status())
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		gs.game.Reset()
		gs.gen++
		gs.aiDelayUntil = time.Now().Add(aiDelay)
		log.Printf("[%s] new game: %s", shortID(gs.game), gs.game.Status())
	}
}

// Layout 定义逻辑画布尺寸
func (gs *GameScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}
