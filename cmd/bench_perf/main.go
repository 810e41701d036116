// cmd/bench_perf/main.go
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"othello_go/internal/game"
)

func main() {
	depth := flag.Int("depth", 6, "搜索深度")
	workers := flag.Int("workers", 1, "根节点并行度")
	profile := flag.String("cpuprofile", "cpu_search.prof", "CPU profile 输出文件")
	perftDepth := flag.Int("perft", 7, "开局 perft 深度，0 = 跳过")
	flag.Parse()

	// 开启 CPU Profile
	f, err := os.Create(*profile)
	if err != nil {
		log.Fatalf("could not create CPU profile: %v", err)
	}
	defer f.Close()
	if err := pprof.StartCPUProfile(f); err != nil {
		log.Fatalf("could not start CPU profile: %v", err)
	}
	defer pprof.StopCPUProfile()

	cfg := game.DefaultConfig()
	cfg.MaxDepth = *depth
	cfg.Workers = *workers
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// 1) 走法生成：perft
	if *perftDepth > 0 {
		start := time.Now()
		n, stats := game.PerftStats(game.NewGameState(cfg), *perftDepth)
		log.Printf("perft(%d) = %d in %v, tt probes %d hits %d (%.1f%%)",
			*perftDepth, n, time.Since(start).Round(time.Millisecond), stats.Probes, stats.Hits, stats.HitRate())
	}

	// 2) 电脑对电脑完整下一局
	log.Printf("full game benchmark: depth=%d workers=%d", cfg.MaxDepth, cfg.Workers)
	st := game.NewGameState(cfg)
	game.ResetSearchNodes()

	start := time.Now()
	for ply := 1; !st.GameOver; ply++ {
		t0 := time.Now()
		before := game.SearchNodes()
		mv, ok := game.FindBestMove(st, cfg)
		if !ok {
			log.Printf("no move for %v, stopping", st.CurrentPlayer)
			break
		}
		mover := st.CurrentPlayer
		if _, err := st.MakeMove(mv); err != nil {
			log.Printf("move %v rejected: %v", mv, err)
			break
		}
		log.Printf("ply %2d %v -> (%d,%d)  %8d nodes  %v",
			ply, mover, mv.X, mv.Y, game.SearchNodes()-before, time.Since(t0).Round(time.Microsecond))
	}

	took := time.Since(start)
	black, white := st.GetScores()
	nodes := game.SearchNodes()
	log.Printf("game over: winner %v (Black %d, White %d)", st.Winner, black, white)
	log.Printf("total %v, %d nodes, %.0f nodes/s", took.Round(time.Millisecond), nodes, float64(nodes)/took.Seconds())
}
