package engine

import (
	dragon "github.com/Bubblyworld/dragontoothmg"
)

type move struct {
	move  dragon.Move
	score uint16
}

type moveList struct {
	moves []move
}

// Most Valuable Victim - Least Valuable Aggressor; used to score & sort captures
var mvvLva [7][7]uint16 = [7][7]uint16{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 14, 13, 12, 11, 10, 0}, // victim Pawn
	{0, 24, 23, 22, 21, 20, 0}, // victim Knight
	{0, 34, 33, 32, 31, 30, 0}, // victim Bishop
	{0, 44, 43, 42, 41, 40, 0}, // victim Rook
	{0, 54, 53, 52, 51, 50, 0}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},      // victim King
}

/*
	Move ordering offsets!
	- PV moves should be considered first, as it will most likely guide us to the best path, or the failed path in some beta-cutoffs so we can quit as early as possible.
	- Promotions feels like it should be super important the few times it can occur
	- Captures are important so we never miss any tactical shots, which most likely would mean immediately losing the game
	- History has the most weight out of all other quiet moves, and we prefer killers over counters
	- The rest... Good luck :)
*/
// Should always be above quiet move heuristics
var pvOffset uint16 = 25000
var promotionOffset uint16 = 20000
var captureOffset uint16 = 15000

// Offset values for prioritizing quiet move heuristics
var killerOffset uint16 = 2000
var counterOffset uint16 = 1000

// captureVictim returns the piece type taken by the move, if any. A pawn
// landing on an empty square of a different file is an en passant capture.
func (e *Engine) captureVictim(m dragon.Move) (victim dragon.Piece, isCapture bool) {
	if p := e.board.PieceAt(m.To()); p != 0 {
		return p, true
	}
	if e.board.PieceAt(m.From()) == dragon.Pawn && m.From()%8 != m.To()%8 {
		return dragon.Pawn, true
	}
	return 0, false
}

// Ordering the moves one at a time, at index given
func orderNextMove(currIndex uint8, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := bestIndex + 1; index < uint8(len(moves.moves)); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}

	tempMove := moves.moves[currIndex]
	moves.moves[currIndex] = moves.moves[bestIndex]
	moves.moves[bestIndex] = tempMove
}

func (e *Engine) scoreMoves(moves []dragon.Move, ply int8, pvMove dragon.Move, prevMove dragon.Move) (movesList moveList) {
	side := e.sideIdx()

	movesList.moves = make([]move, len(moves))
	for i := 0; i < len(moves); i++ {
		mv := moves[i]
		var moveEval uint16
		victim, isCapture := e.captureVictim(mv)
		promotePiece := mv.Promote()
		isPVMove := mv == pvMove && pvMove != 0

		if isPVMove {
			moveEval = pvOffset + 1500 // highest from mvvlva below is 54
		} else if promotePiece != 0 {
			moveEval = promotionOffset + uint16(pieceValueEG[promotePiece])
		} else if isCapture {
			attacker := e.board.PieceAt(mv.From())
			moveEval = captureOffset + mvvLva[victim][attacker]
		} else if e.killers.KillerMoves[ply][0] == mv {
			moveEval = killerOffset + 200
		} else if e.killers.KillerMoves[ply][1] == mv {
			moveEval = killerOffset
		} else {
			moveEval = uint16(e.historyMove[side][mv.From()][mv.To()])
			if e.counterMove[side][prevMove.From()][prevMove.To()] == mv && mv != 0 {
				moveEval += counterOffset
			}
		}

		movesList.moves[i].move = mv
		movesList.moves[i].score = moveEval
	}
	return movesList
}

// scoreCaptures scores a violent-only move list for quiescence: the TT move
// first, then promotions, then MVV-LVA.
func (e *Engine) scoreCaptures(moves []dragon.Move, pvMove dragon.Move) (movesList moveList) {
	movesList.moves = make([]move, len(moves))
	for i := 0; i < len(moves); i++ {
		mv := moves[i]
		var moveEval uint16

		if mv == pvMove && pvMove != 0 {
			moveEval = captureOffset + 256
		} else if mv.Promote() != 0 {
			moveEval = captureOffset + 75
		} else {
			victim, isCapture := e.captureVictim(mv)
			if isCapture {
				attacker := e.board.PieceAt(mv.From())
				moveEval = mvvLva[victim][attacker]
			}
		}

		movesList.moves[i].move = mv
		movesList.moves[i].score = moveEval
	}
	return movesList
}
