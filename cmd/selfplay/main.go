// cmd/selfplay/main.go
// 电脑自我对战：并发跑若干局，逐局打印结果，最后汇总胜率
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"othello_go/internal/game"
)

type result struct {
	id     string
	winner game.CellState
	black  int
	white  int
	plies  int
	took   time.Duration
}

func main() {
	numGames := flag.Int("n", 20, "对局数")
	depthBlack := flag.Int("depth-black", 3, "黑方搜索深度")
	depthWhite := flag.Int("depth-white", 3, "白方搜索深度")
	firstFlag := flag.String("first", "white", "先手颜色")
	workers := flag.Int("workers", 0, "并发局数（默认=CPU/2，至少1）")
	opening := flag.Int("opening", 4, "开局随机手数，避免每局相同")
	seed := flag.Int64("seed", time.Now().UnixNano(), "随机种子")
	flag.Parse()

	if *workers <= 0 {
		*workers = max(runtime.NumCPU()/2, 1)
	}
	first, err := game.ParseColor(*firstFlag)
	if err != nil {
		log.Fatal(err)
	}

	cfgs := map[game.CellState]game.Config{}
	for color, depth := range map[game.CellState]int{game.Black: *depthBlack, game.White: *depthWhite} {
		cfg := game.DefaultConfig()
		cfg.MaxDepth = depth
		cfg.AI = color
		cfg.First = first
		if err := cfg.Validate(); err != nil {
			log.Fatalf("%v config: %v", color, err)
		}
		cfgs[color] = cfg
	}

	log.Printf("selfplay: games=%d black-depth=%d white-depth=%d first=%v workers=%d seed=%d",
		*numGames, *depthBlack, *depthWhite, first, *workers, *seed)

	results := make([]result, *numGames)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)

	game.ResetSearchNodes()
	start := time.Now()
	for i := 0; i < *numGames; i++ {
		g.Go(func() error {
			r := rand.New(rand.NewSource(*seed + int64(i)))
			res, err := playOneGame(ctx, cfgs, *opening, r)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = res
			log.Printf("[%s] game %d: %v in %d plies (Black %d, White %d), %v",
				res.id, i, outcome(res.winner), res.plies, res.black, res.white, res.took.Round(time.Millisecond))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	summarize(results, time.Since(start))
}

// playOneGame 双方都由电脑走，直到终局
func playOneGame(ctx context.Context, cfgs map[game.CellState]game.Config, opening int, r *rand.Rand) (result, error) {
	g, err := game.NewGame(cfgs[game.Black])
	if err != nil {
		return result{}, err
	}
	res := result{id: g.ID.String()[:8]}
	start := time.Now()

	for !g.State().GameOver {
		if err := ctx.Err(); err != nil {
			return result{}, err
		}
		st := g.State()

		var mv game.Coord
		if g.HistoryLen() < opening {
			moves := st.LegalCoords()
			mv = moves[r.Intn(len(moves))]
		} else {
			var ok bool
			if mv, ok = game.FindBestMove(st, cfgs[st.CurrentPlayer]); !ok {
				return result{}, fmt.Errorf("%v: %w", st.CurrentPlayer, game.ErrNoMove)
			}
		}
		if err := g.Play(mv); err != nil {
			return result{}, err
		}
	}

	st := g.State()
	res.winner = st.Winner
	res.black, res.white = st.GetScores()
	res.plies = g.HistoryLen()
	res.took = time.Since(start)
	return res, nil
}

func outcome(w game.CellState) string {
	if w == game.Empty {
		return "draw"
	}
	return w.String() + " wins"
}

func summarize(results []result, took time.Duration) {
	var blackWins, whiteWins, draws int
	for _, r := range results {
		switch r.winner {
		case game.Black:
			blackWins++
		case game.White:
			whiteWins++
		default:
			draws++
		}
	}
	n := len(results)
	if n == 0 {
		log.Println("selfplay done: no games")
		return
	}
	log.Printf("selfplay done: %d games in %v", n, took.Round(time.Millisecond))
	log.Printf("  Black %d (%.1f%%)  White %d (%.1f%%)  draw %d (%.1f%%)",
		blackWins, pct(blackWins, n), whiteWins, pct(whiteWins, n), draws, pct(draws, n))
	nodes := game.SearchNodes()
	log.Printf("  nodes %d, %.0f nodes/s", nodes, float64(nodes)/took.Seconds())
}

func pct(k, n int) float64 {
	return 100 * float64(k) / float64(n)
}
