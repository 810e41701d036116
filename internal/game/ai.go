// game/ai.go
package game

import (
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// 终局哨兵值：确定的胜/负不可能被任何静态评估超过
const (
	winScore  = math.MaxInt
	lossScore = -math.MaxInt
)

var searchNodes atomic.Int64

// AddNodes 累加搜索节点数（各 worker 结束时同步一次）
func AddNodes(n int64) { searchNodes.Add(n) }

// SearchNodes 返回自上次 ResetSearchNodes 以来的节点数
func SearchNodes() int64 { return searchNodes.Load() }

func ResetSearchNodes() { searchNodes.Store(0) }

// searcher 的所有分值都以 root 方视角计算：root 方最大化，对手最小化。
type searcher struct {
	root  CellState
	nodes int64
}

func (s *searcher) terminalValue(st *GameState) int {
	switch st.Winner {
	case s.root:
		return winScore
	case Empty:
		return 0
	}
	return lossScore
}

func better(maximize bool, v, best int) bool {
	if maximize {
		return v > best
	}
	return v < best
}

// openBound 对以 maximize 为目标的节点永远不会触发截断的界
func openBound(maximize bool) int {
	if maximize {
		return winScore
	}
	return lossScore
}

func initialBest(maximize bool) int {
	if maximize {
		return lossScore
	}
	return winScore
}

// search 是最大化/最小化两面共用的递归。
//
// bound 是祖先节点已经拿到的值，只做单侧截断：一旦本节点的当前最优
// 越过 bound，父节点不会再选这条分支，剩余兄弟直接剪掉。
// 这不是完整的 alpha-beta 窗口，保持如此以免改变选点结果。
func (s *searcher) search(st *GameState, maximize bool, bound, depth int) int {
	s.nodes++
	if st.GameOver {
		return s.terminalValue(st)
	}
	if depth == 0 {
		return EvaluateBitBoard(&st.Board, s.root)
	}

	win := openBound(maximize) // 本节点优化方的确定胜利
	best := initialBest(maximize)
	found, evaluated := false, false
	firstLoss := -1

	for i := 0; i < BoardN; i++ {
		if !st.Moves.Has(i) {
			continue
		}
		found = true

		child := st.Clone()
		child.apply(i)
		if child.GameOver {
			v := s.terminalValue(child)
			switch v {
			case win:
				return v
			case 0:
				evaluated = true
				if better(maximize, 0, best) {
					best = 0
				}
			default:
				// 本节点优化方的确定失败：先跳过
				if firstLoss < 0 {
					firstLoss = i
				}
				continue
			}
		} else {
			v := s.search(child, !maximize, best, depth-1)
			evaluated = true
			if better(maximize, v, best) {
				best = v
			}
		}

		if better(maximize, best, bound) {
			return best
		}
	}

	if !found {
		// 被迫停一手：不消耗深度，界放开，由对方继续
		child := st.Clone()
		child.pass()
		return s.search(child, !maximize, openBound(!maximize), depth)
	}
	if !evaluated {
		// 每一手都是直接输棋：仍然走一次递归，让真实的失败值向上传
		child := st.Clone()
		child.apply(firstLoss)
		return s.search(child, !maximize, openBound(!maximize), depth-1)
	}
	return best
}

func searchDepth(st *GameState, cfg Config) int {
	depth := cfg.MaxDepth
	if depth < 1 {
		depth = 1
	}
	if rem := BoardN - st.Stones; rem < depth {
		depth = rem
	}
	return depth
}

// FindBestMove 为当前行棋方选一手。
// 局面已结束时返回 false；否则返回的落点一定在 st.Moves 里。
// st 只读，搜索全部在拷贝上进行。
func FindBestMove(st *GameState, cfg Config) (Coord, bool) {
	if st.GameOver {
		return Coord{}, false
	}
	depth := searchDepth(st, cfg)

	var idx int
	if cfg.Workers > 1 {
		idx = findBestParallel(st, depth, cfg.Workers)
	} else {
		idx = findBestSequential(st, depth)
	}
	if idx < 0 {
		return Coord{}, false
	}
	return CoordOf[idx], true
}

func findBestSequential(st *GameState, depth int) int {
	s := &searcher{root: st.CurrentPlayer}
	defer func() { AddNodes(s.nodes) }()

	best, bestIdx := lossScore, -1
	for i := 0; i < BoardN; i++ {
		if !st.Moves.Has(i) {
			continue
		}
		child := st.Clone()
		child.apply(i)
		if child.GameOver {
			switch s.terminalValue(child) {
			case winScore:
				return i
			case 0:
				if best < 0 {
					best, bestIdx = 0, i
				}
			default:
				// 输棋只在还没有任何候选时留作兜底
				if bestIdx < 0 {
					bestIdx = i
				}
			}
			continue
		}

		v := s.search(child, false, best, depth-1)
		if v > best || bestIdx < 0 {
			best, bestIdx = v, i
		}
	}
	return bestIdx
}

type rootResult struct {
	idx      int
	terminal bool
	value    int
}

// findBestParallel 每个根候选一个任务，各自在拷贝上以开放的界搜索；
// 结果按扫描顺序归约，选点与顺序版本一致。
func findBestParallel(st *GameState, depth, workers int) int {
	root := st.CurrentPlayer
	results := make([]rootResult, 0, st.Moves.Len())
	for i := 0; i < BoardN; i++ {
		if st.Moves.Has(i) {
			results = append(results, rootResult{idx: i})
		}
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for k := range results {
		g.Go(func() error {
			r := &results[k]
			s := &searcher{root: root}
			child := st.Clone()
			child.apply(r.idx)
			if child.GameOver {
				r.terminal = true
				r.value = s.terminalValue(child)
			} else {
				r.value = s.search(child, false, openBound(false), depth-1)
			}
			AddNodes(s.nodes)
			return nil
		})
	}
	_ = g.Wait()

	best, bestIdx := lossScore, -1
	for _, r := range results {
		if r.terminal {
			switch r.value {
			case winScore:
				return r.idx
			case 0:
				if best < 0 {
					best, bestIdx = 0, r.idx
				}
			default:
				if bestIdx < 0 {
					bestIdx = r.idx
				}
			}
			continue
		}
		if r.value > best || bestIdx < 0 {
			best, bestIdx = r.value, r.idx
		}
	}
	return bestIdx
}
