package engine

import "testing"

// playUCI replays a sequence of UCI moves on the engine's board.
func playUCI(t *testing.T, e *Engine, ucis ...string) {
	t.Helper()
	for _, uci := range ucis {
		e.PlayMove(findMove(t, e, uci))
	}
}

func TestThreefoldRepetitionIsDraw(t *testing.T) {
	eng := NewEngineWith(MinimalParams())

	// Two full knight shuffles bring the starting position back twice.
	playUCI(t, eng,
		"g1f3", "g8f6", "f3g1", "f6g8",
		"g1f3", "g8f6", "f3g1", "f6g8",
	)

	if !eng.isDraw() {
		t.Fatal("position repeated three times should be a draw")
	}
}

func TestRepetitionInsideSearchTreeIsDraw(t *testing.T) {
	eng := NewEngineWith(MinimalParams())
	// Everything after this point counts as the search tree.
	eng.rootIndex = len(eng.stateStack) - 1

	playUCI(t, eng, "g1f3", "g8f6", "f3g1", "f6g8")

	if !eng.isDraw() {
		t.Fatal("a single repetition past the root should already score as a draw")
	}
	if !eng.upcomingRepetition() {
		t.Fatal("upcomingRepetition should see the repeated position")
	}
}

func TestPreRootRepetitionNeedsTwoMatches(t *testing.T) {
	eng := NewEngineWith(MinimalParams())

	// One shuffle before the root: the position occurred twice in total.
	playUCI(t, eng, "g1f3", "g8f6", "f3g1", "f6g8")
	eng.rootIndex = len(eng.stateStack) - 1

	if eng.isDraw() {
		t.Fatal("a single pre-root occurrence is not yet a draw")
	}
}

func TestFiftyMoveRule(t *testing.T) {
	eng := NewEngineWith(MinimalParams())
	eng.SetPositionFEN("4k3/8/2n5/8/8/2N5/8/4K3 w - - 99 80")

	if eng.isDraw() {
		t.Fatal("99 halfmoves is not yet a draw")
	}

	playUCI(t, eng, "e1d1")

	if eng.currentRule50() != 100 {
		t.Fatalf("expected halfmove clock 100, got %d", eng.currentRule50())
	}
	if !eng.isDraw() {
		t.Fatal("100 halfmoves without progress is a draw")
	}
}

func TestHalfmoveClockResets(t *testing.T) {
	eng := NewEngineWith(MinimalParams())
	eng.SetPositionFEN("4k3/8/8/8/R2q4/4P3/8/4K3 w - - 37 40")

	if got := eng.nextRule50(findMove(t, eng, "a4a5")); got != 38 {
		t.Fatalf("quiet move should tick the clock to 38, got %d", got)
	}
	if got := eng.nextRule50(findMove(t, eng, "a4d4")); got != 0 {
		t.Fatalf("capture should reset the clock, got %d", got)
	}
	if got := eng.nextRule50(findMove(t, eng, "e3d4")); got != 0 {
		t.Fatalf("pawn move should reset the clock, got %d", got)
	}
}

func TestRule50FromFEN(t *testing.T) {
	cases := []struct {
		fen  string
		want int
	}{
		{"4k3/8/8/8/8/8/8/4K3 w - - 42 50", 42},
		{"4k3/8/8/8/8/8/8/4K3 w - -", 0},
		{"4k3/8/8/8/8/8/8/4K3 w - - bogus 1", 0},
	}
	for _, c := range cases {
		if got := rule50FromFEN(c.fen); got != c.want {
			t.Errorf("rule50FromFEN(%q) = %d, want %d", c.fen, got, c.want)
		}
	}
}

func TestUnapplyRestoresStateStack(t *testing.T) {
	eng := NewEngineWith(MinimalParams())
	before := len(eng.stateStack)
	hash := eng.board.Hash()

	unapply := eng.applyMove(findMove(t, eng, "e2e4"))
	if len(eng.stateStack) != before+1 {
		t.Fatalf("apply should push one state, stack went %d -> %d", before, len(eng.stateStack))
	}
	unapply()

	if len(eng.stateStack) != before {
		t.Fatalf("unapply should pop the state, stack is %d, want %d", len(eng.stateStack), before)
	}
	if eng.board.Hash() != hash {
		t.Fatal("unapply did not restore the position")
	}
}
