package engine

import (
	"math/bits"

	dragon "github.com/Bubblyworld/dragontoothmg"
)

// Game phase weights for interpolation
const (
	PawnPhase   = 0
	KnightPhase = 1
	BishopPhase = 1
	RookPhase   = 2
	QueenPhase  = 4
	TotalPhase  = PawnPhase*16 + KnightPhase*4 + BishopPhase*4 + RookPhase*4 + QueenPhase*2
)

// GetPiecePhase measures how much non-pawn material is left on the board.
// TotalPhase means the full starting armies, 0 means a pure pawn endgame.
func GetPiecePhase(b *dragon.Board) (phase int) {
	phase += bits.OnesCount64(b.Bbs[dragon.White][dragon.Knight]|b.Bbs[dragon.Black][dragon.Knight]) * KnightPhase
	phase += bits.OnesCount64(b.Bbs[dragon.White][dragon.Bishop]|b.Bbs[dragon.Black][dragon.Bishop]) * BishopPhase
	phase += bits.OnesCount64(b.Bbs[dragon.White][dragon.Rook]|b.Bbs[dragon.Black][dragon.Rook]) * RookPhase
	phase += bits.OnesCount64(b.Bbs[dragon.White][dragon.Queen]|b.Bbs[dragon.Black][dragon.Queen]) * QueenPhase
	return phase
}

func countMaterial(bbs *[8]uint64) (materialMG, materialEG int) {
	materialMG += bits.OnesCount64(bbs[dragon.Pawn]) * pieceValueMG[dragon.Pawn]
	materialEG += bits.OnesCount64(bbs[dragon.Pawn]) * pieceValueEG[dragon.Pawn]

	materialMG += bits.OnesCount64(bbs[dragon.Knight]) * pieceValueMG[dragon.Knight]
	materialEG += bits.OnesCount64(bbs[dragon.Knight]) * pieceValueEG[dragon.Knight]

	materialMG += bits.OnesCount64(bbs[dragon.Bishop]) * pieceValueMG[dragon.Bishop]
	materialEG += bits.OnesCount64(bbs[dragon.Bishop]) * pieceValueEG[dragon.Bishop]

	materialMG += bits.OnesCount64(bbs[dragon.Rook]) * pieceValueMG[dragon.Rook]
	materialEG += bits.OnesCount64(bbs[dragon.Rook]) * pieceValueEG[dragon.Rook]

	materialMG += bits.OnesCount64(bbs[dragon.Queen]) * pieceValueMG[dragon.Queen]
	materialEG += bits.OnesCount64(bbs[dragon.Queen]) * pieceValueEG[dragon.Queen]

	return materialMG, materialEG
}

// countPieceTables sums the piece-square bonuses for one piece type, white
// minus black. Black squares are mirrored through FlipView.
func countPieceTables(wPieceBB, bPieceBB uint64, ptm, pte *[64]int) (mgScore, egScore int) {
	for x := wPieceBB; x != 0; x &= x - 1 {
		idx := bits.TrailingZeros64(x)
		mgScore += ptm[idx]
		egScore += pte[idx]
	}
	for x := bPieceBB; x != 0; x &= x - 1 {
		revView := FlipView[bits.TrailingZeros64(x)]
		mgScore -= ptm[revView]
		egScore -= pte[revView]
	}
	return mgScore, egScore
}

// Evaluate scores the position from the side to move's point of view:
// tapered material plus piece-square tables. The internal sums are from
// white's perspective and flipped at the end.
func Evaluate(b *dragon.Board) int32 {
	piecePhase := Min(GetPiecePhase(b), TotalPhase)

	wMaterialMG, wMaterialEG := countMaterial(&b.Bbs[dragon.White])
	bMaterialMG, bMaterialEG := countMaterial(&b.Bbs[dragon.Black])

	mgScore := wMaterialMG - bMaterialMG
	egScore := wMaterialEG - bMaterialEG

	for piece := dragon.Pawn; piece <= dragon.King; piece++ {
		mg, eg := countPieceTables(
			b.Bbs[dragon.White][piece], b.Bbs[dragon.Black][piece],
			&PSQT_MG[piece], &PSQT_EG[piece])
		mgScore += mg
		egScore += eg
	}

	mgWeight := piecePhase
	egWeight := TotalPhase - piecePhase
	score := int32((mgScore*mgWeight + egScore*egWeight) / TotalPhase)

	if b.Colortomove == dragon.Black {
		score = -score
	}
	return score
}
