package engine

import (
	"testing"

	dragon "github.com/Bubblyworld/dragontoothmg"
)

// orderAll runs the full selection sort over a scored list.
func orderAll(moves *moveList) {
	for i := uint8(0); i < uint8(len(moves.moves)); i++ {
		orderNextMove(i, moves)
	}
}

func TestPawnTakesQueenOrderedFirst(t *testing.T) {
	eng := NewEngineWith(MinimalParams())
	eng.SetPositionFEN("4k3/8/8/8/R2q4/4P3/8/4K3 w - - 0 1")

	moves := eng.scoreMoves(eng.LegalMoves(), 0, dragon.Move(0), dragon.Move(0))
	orderAll(&moves)

	if got := moveString(moves.moves[0].move); got != "e3d4" {
		t.Fatalf("expected pawn takes queen first, got %s", got)
	}
	// Rook takes queen is the next best capture.
	if got := moveString(moves.moves[1].move); got != "a4d4" {
		t.Fatalf("expected rook takes queen second, got %s", got)
	}
}

func TestHashMoveOrderedFirst(t *testing.T) {
	eng := NewEngineWith(MinimalParams())
	eng.SetPositionFEN("4k3/8/8/8/R2q4/4P3/8/4K3 w - - 0 1")

	// A quiet move promoted by the hash table must outrank every capture.
	hashMove := findMove(t, eng, "e1d1")
	moves := eng.scoreMoves(eng.LegalMoves(), 0, hashMove, dragon.Move(0))
	orderAll(&moves)

	if moves.moves[0].move != hashMove {
		t.Fatalf("expected hash move first, got %s", moveString(moves.moves[0].move))
	}
}

func TestKillerBeatsOtherQuiets(t *testing.T) {
	eng := NewEngineWith(MinimalParams())
	killer := findMove(t, eng, "g1f3")
	eng.killers.InsertKiller(killer, 0)

	moves := eng.scoreMoves(eng.LegalMoves(), 0, dragon.Move(0), dragon.Move(0))
	orderAll(&moves)

	if moves.moves[0].move != killer {
		t.Fatalf("expected the killer move first, got %s", moveString(moves.moves[0].move))
	}
}

func TestKillerSlotsNewestFirst(t *testing.T) {
	var killers KillerStruct
	a := dragon.Move(100)
	b := dragon.Move(200)

	killers.InsertKiller(a, 3)
	killers.InsertKiller(b, 3)

	if killers.KillerMoves[3][0] != b || killers.KillerMoves[3][1] != a {
		t.Fatalf("expected newest killer in slot 0: got %v", killers.KillerMoves[3])
	}

	// Re-inserting the current killer must not duplicate it.
	killers.InsertKiller(b, 3)
	if killers.KillerMoves[3][0] != b || killers.KillerMoves[3][1] != a {
		t.Fatalf("duplicate insert reshuffled the slots: %v", killers.KillerMoves[3])
	}
}

func TestCounterMoveBeatsPlainQuiet(t *testing.T) {
	eng := NewEngineWith(MinimalParams())
	prev := dragon.Move(42)
	counter := findMove(t, eng, "b1c3")
	eng.storeCounter(prev, counter)

	moves := eng.scoreMoves(eng.LegalMoves(), 0, dragon.Move(0), prev)
	orderAll(&moves)

	if moves.moves[0].move != counter {
		t.Fatalf("expected the counter move first, got %s", moveString(moves.moves[0].move))
	}
}

func TestHistoryScoreIsCapped(t *testing.T) {
	eng := NewEngineWith(MinimalParams())
	mv := findMove(t, eng, "e2e4")

	for i := 0; i < 100; i++ {
		eng.incrementHistoryScore(mv, 10)
	}

	got := eng.historyMove[eng.sideIdx()][mv.From()][mv.To()]
	if got != historyMaxVal {
		t.Fatalf("history should saturate at %d, got %d", historyMaxVal, got)
	}
	if uint16(got) >= counterOffset {
		t.Fatalf("history cap %d must stay below the counter move tier %d", got, counterOffset)
	}
}

func TestEnPassantIsACapture(t *testing.T) {
	eng := NewEngineWith(MinimalParams())
	eng.SetPositionFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2")

	ep := findMove(t, eng, "e5d6")
	victim, isCapture := eng.captureVictim(ep)
	if !isCapture || victim != dragon.Pawn {
		t.Fatalf("en passant should count as a pawn capture, got victim=%d capture=%v", victim, isCapture)
	}
}
