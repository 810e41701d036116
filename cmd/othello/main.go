package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"othello_go/internal/game"
	"othello_go/internal/ui"
)

func main() {
	const sampleRate = 44100

	def := game.DefaultConfig()
	modeFlag := flag.String("mode", "pve", "游戏模式: pve(人机) 或 pvp(人人)")
	depthFlag := flag.Int("depth", def.MaxDepth, "电脑搜索深度")
	aiFlag := flag.String("ai", def.AI.String(), "电脑执子颜色: black / white")
	firstFlag := flag.String("first", def.First.String(), "先手颜色: black / white")
	workersFlag := flag.Int("workers", def.Workers, "根节点并行搜索的协程数")
	muteFlag := flag.Bool("mute", false, "关闭音效")
	flag.Parse()

	cfg := def
	cfg.MaxDepth = *depthFlag
	cfg.Workers = *workersFlag

	var err error
	if cfg.First, err = game.ParseColor(*firstFlag); err != nil {
		log.Fatal(err)
	}
	switch *modeFlag {
	case "pve":
		if cfg.AI, err = game.ParseColor(*aiFlag); err != nil {
			log.Fatal(err)
		}
	case "pvp":
		cfg.AI = game.Empty
	default:
		log.Fatalf("unknown mode %q (want pve or pvp)", *modeFlag)
	}

	g, err := game.NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	var ctx *audio.Context
	if !*muteFlag {
		ctx = audio.NewContext(sampleRate)
	}

	screen, err := ui.NewGameScreen(g, ctx)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(ui.WindowWidth, ui.WindowHeight)
	ebiten.SetWindowTitle("Othello")

	if err := ebiten.RunGame(screen); err != nil {
		log.Fatal(err)
	}
}
