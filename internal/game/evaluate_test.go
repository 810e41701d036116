package game

import "testing"

func TestEvaluateStartIsBalanced(t *testing.T) {
	st := NewGameState(DefaultConfig())
	for _, side := range []CellState{Black, White} {
		if v := Evaluate(&st.Board, side); v != 0 {
			t.Fatalf("start position for %v = %d", side, v)
		}
	}
}

func TestEvaluateEdgeWeights(t *testing.T) {
	cases := []struct {
		c    Coord
		want int
	}{
		{Coord{3, 3}, 1}, // 中间
		{Coord{0, 3}, 3}, // 一条边
		{Coord{5, 7}, 3}, // 一条边
		{Coord{0, 0}, 5}, // 角：两条边各算一次
		{Coord{7, 7}, 5},
	}
	for _, tc := range cases {
		b := NewBoard()
		b.setI(tc.c.Index(), Black)
		if got := EvaluateStatic(b, Black); got != tc.want {
			t.Errorf("static %v: got %d want %d", tc.c, got, tc.want)
		}
		if got := EvaluateBitBoard(b, Black); got != tc.want {
			t.Errorf("bitboard %v: got %d want %d", tc.c, got, tc.want)
		}
		if got := Evaluate(b, White); got != -tc.want {
			t.Errorf("opponent view %v: got %d want %d", tc.c, got, -tc.want)
		}
	}
}
