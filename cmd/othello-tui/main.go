package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"othello_go/internal/game"
	"othello_go/internal/tui"
)

var (
	depth   int
	aiColor string
	first   string
	workers int
	logPath string
)

func init() {
	def := game.DefaultConfig()
	flag.IntVar(&depth, "depth", def.MaxDepth, "AI search depth")
	flag.StringVar(&aiColor, "ai", def.AI.String(), "AI colour: black, white or none")
	flag.StringVar(&first, "first", def.First.String(), "colour that moves first")
	flag.IntVar(&workers, "workers", def.Workers, "goroutines for the root search")
	flag.StringVar(&logPath, "log", "", "append the move log to this file")

	flag.Parse()
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// The screen owns the terminal, so the log goes to a file or nowhere.
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := game.DefaultConfig()
	cfg.MaxDepth = depth
	cfg.Workers = workers

	var err error
	if cfg.AI, err = game.ParseColor(aiColor); err != nil {
		return err
	}
	if cfg.First, err = game.ParseColor(first); err != nil {
		return err
	}

	g, err := game.NewGame(cfg)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	board, err := tui.New(g)
	if err != nil {
		return fmt.Errorf("new board: %w", err)
	}
	defer board.Shutdown()

	<-board.Run()

	return nil
}
