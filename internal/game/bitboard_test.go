package game

import (
	"math/bits"
	"math/rand"
	"testing"
)

func TestEvalConsistency(t *testing.T) {
	positions := RandomStates(500, rand.New(rand.NewSource(7))) // 500 个局面

	for _, st := range positions {
		for _, side := range []CellState{Black, White} {
			got := EvaluateBitBoard(&st.Board, side) // 位板版
			want := EvaluateStatic(&st.Board, side)  // 逐格版
			if got != want {
				t.Fatalf("mismatch: got=%d want=%d\nb=%v", got, want, st.Board.Cells)
			}
		}
	}
}

func TestMobilityConsistency(t *testing.T) {
	for _, st := range RandomStates(500, rand.New(rand.NewSource(11))) {
		if st.GameOver {
			continue
		}
		own := st.Board.Bits(st.CurrentPlayer)
		opp := st.Board.Bits(Opponent(st.CurrentPlayer))
		got := Mobility(own, opp)
		want := st.Moves.Mask()
		if got != want {
			t.Fatalf("mobility mismatch for %v: got=%016x want=%016x\nb=%v", st.CurrentPlayer, got, want, st.Board.Cells)
		}
		if bits.OnesCount64(got) != st.Moves.Len() {
			t.Fatalf("move count %d, mask has %d bits", st.Moves.Len(), bits.OnesCount64(got))
		}
	}
}

func TestBitsTrackCells(t *testing.T) {
	for _, st := range RandomStates(200, rand.New(rand.NewSource(3))) {
		var b, w uint64
		for i, s := range st.Board.Cells {
			switch s {
			case Black:
				b |= 1 << uint(i)
			case White:
				w |= 1 << uint(i)
			}
		}
		if b != st.Board.Bits(Black) || w != st.Board.Bits(White) {
			t.Fatalf("bitboards out of sync with cells")
		}
		if got := st.Board.CountPieces(Black) + st.Board.CountPieces(White); got != st.Stones {
			t.Fatalf("stone counter %d, board has %d", st.Stones, got)
		}
	}
}

func TestHashTracksCells(t *testing.T) {
	for _, st := range RandomStates(200, rand.New(rand.NewSource(5))) {
		if got, want := st.Board.Hash(), hashFromScratch(&st.Board); got != want {
			t.Fatalf("incremental hash %016x, recomputed %016x", got, want)
		}
	}
	if h := NewBoard().Hash(); h != 0 {
		t.Fatalf("empty board hash = %016x, want 0", h)
	}
}

// RandomStates 从开局随机走 0~59 步，制造不同阶段的局面
func RandomStates(numPositions int, r *rand.Rand) []*GameState {
	positions := make([]*GameState, numPositions)
	for i := 0; i < numPositions; i++ {
		st := NewGameState(DefaultConfig())
		nMoves := r.Intn(60)
		for j := 0; j < nMoves && !st.GameOver; j++ {
			mvs := st.LegalCoords()
			if _, err := st.MakeMove(mvs[r.Intn(len(mvs))]); err != nil {
				panic(err)
			}
		}
		positions[i] = st
	}
	return positions
}
