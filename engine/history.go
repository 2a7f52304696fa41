package engine

import (
	dragon "github.com/Bubblyworld/dragontoothmg"
)

// Quiet move history tops out below the counter move offset so the ordering
// tiers stay intact.
var historyMaxVal = 950

/*
HISTORY/COUNTER MOVES
If a move was a cut-node (above beta), and not a capture, we keep track of two things:
The move that countered us (previous move made) - a counter move
A historical score of the move - since we know it was a good move to keep track of, we make sure we can use this for move ordering later
*/
func (e *Engine) storeCounter(prevMove dragon.Move, move dragon.Move) {
	e.counterMove[e.sideIdx()][prevMove.From()][prevMove.To()] = move
}

// Increment the history score for the given move if it caused a beta-cutoff
// and is quiet. Scores only grow during a search; the table is reset before
// the next top-level decision.
func (e *Engine) incrementHistoryScore(move dragon.Move, depth int8) {
	side := e.sideIdx()
	e.historyMove[side][move.From()][move.To()] += int(depth) * int(depth)
	if e.historyMove[side][move.From()][move.To()] > historyMaxVal {
		e.historyMove[side][move.From()][move.To()] = historyMaxVal
	}
}

// clearHistoryTables empties the history and counter move tables.
func (e *Engine) clearHistoryTables() {
	var nilMove dragon.Move
	for sq1 := 0; sq1 < 64; sq1++ {
		for sq2 := 0; sq2 < 64; sq2++ {
			e.historyMove[0][sq1][sq2] = 0
			e.historyMove[1][sq1][sq2] = 0
			e.counterMove[0][sq1][sq2] = nilMove
			e.counterMove[1][sq1][sq2] = nilMove
		}
	}
}

// sideIdx maps the side to move to a table index.
func (e *Engine) sideIdx() int {
	if e.board.Colortomove == dragon.Black {
		return 1
	}
	return 0
}
