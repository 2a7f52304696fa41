package engine

import (
	"testing"

	dragon "github.com/Bubblyworld/dragontoothmg"
)

func evalFEN(fen string) int32 {
	board := dragon.ParseFen(fen)
	return Evaluate(&board)
}

func TestStartposEvaluatesToZero(t *testing.T) {
	if score := evalFEN(dragon.Startpos); score != 0 {
		t.Fatalf("starting position should evaluate to 0, got %d", score)
	}
}

func TestEvaluationIsSideToMoveRelative(t *testing.T) {
	// Same position, opposite side to move: the sign must flip.
	white := evalFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	black := evalFEN("4k3/8/8/8/8/8/4P3/4K3 b - - 0 1")

	if white != -black {
		t.Fatalf("expected mirrored scores, got %d (white) and %d (black)", white, black)
	}
	if white <= 0 {
		t.Fatalf("white is a pawn up but scored %d", white)
	}
}

func TestEvaluationIsColorSymmetric(t *testing.T) {
	// White a pawn up with white to move must equal black a pawn up with
	// black to move.
	a := evalFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	b := evalFEN("4k3/4p3/8/8/8/8/8/4K3 b - - 0 1")
	if a != b {
		t.Fatalf("mirrored positions scored differently: %d vs %d", a, b)
	}
}

func TestMaterialOrdering(t *testing.T) {
	queen := evalFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	rook := evalFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	pawn := evalFEN("4k3/8/8/8/8/8/P7/4K3 w - - 0 1")

	if !(queen > rook && rook > pawn && pawn > 0) {
		t.Fatalf("expected queen > rook > pawn > 0, got %d, %d, %d", queen, rook, pawn)
	}
}

func TestGamePhase(t *testing.T) {
	start := dragon.ParseFen(dragon.Startpos)
	if phase := GetPiecePhase(&start); phase != TotalPhase {
		t.Fatalf("starting position phase should be %d, got %d", TotalPhase, phase)
	}

	bare := dragon.ParseFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if phase := GetPiecePhase(&bare); phase != 0 {
		t.Fatalf("bare kings phase should be 0, got %d", phase)
	}
}
