package engine

import "testing"

func BenchmarkSearchDepth6(b *testing.B) {
	params := DefaultParams()
	params.Verbose = false

	for i := 0; i < b.N; i++ {
		eng := NewEngineWith(params)
		eng.SetPositionFEN("r1bqk2r/ppp2ppp/2n5/4P3/2Bp2n1/5N1P/PP1N1PP1/R2Q1RK1 b kq - 1 10")
		eng.ThinkDepth(6)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	eng := NewEngine()
	eng.SetPositionFEN("r4rk1/3nppbp/bq1p1np1/2pP4/8/2N2NPP/PP2PPB1/R1BQR1K1 b - - 1 12")
	board := eng.Board()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Evaluate(board)
	}
}

func BenchmarkMoveOrdering(b *testing.B) {
	eng := NewEngine()
	eng.SetPositionFEN("r4rk1/3nppbp/bq1p1np1/2pP4/8/2N2NPP/PP2PPB1/R1BQR1K1 b - - 1 12")
	legal := eng.LegalMoves()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		moves := eng.scoreMoves(legal, 0, 0, 0)
		for idx := uint8(0); idx < uint8(len(moves.moves)); idx++ {
			orderNextMove(idx, &moves)
		}
	}
}
