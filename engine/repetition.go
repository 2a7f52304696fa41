package engine

import (
	"strconv"
	"strings"

	dragon "github.com/Bubblyworld/dragontoothmg"
)

const fiftyMoveLimit = 100

// State captures the information we need to reason about repetitions and
// draws. The halfmove counter is tracked here because the search needs it at
// every node and the board does not expose it.
type State struct {
	Hash   uint64
	Rule50 int
}

// resetStateTracking rebuilds the state stack so that it only contains the
// current board.
func (e *Engine) resetStateTracking(rule50 int) {
	e.stateStack = e.stateStack[:0]
	e.stateStack = append(e.stateStack, State{
		Hash:   e.board.Hash(),
		Rule50: rule50,
	})
}

func (e *Engine) pushState(rule50 int) {
	e.stateStack = append(e.stateStack, State{
		Hash:   e.board.Hash(),
		Rule50: rule50,
	})
}

func (e *Engine) popState() {
	if len(e.stateStack) <= 1 {
		return
	}
	e.stateStack = e.stateStack[:len(e.stateStack)-1]
}

func (e *Engine) currentRule50() int {
	return e.stateStack[len(e.stateStack)-1].Rule50
}

// isDraw reports whether the current position is drawn by the fifty move
// rule or by repetition. A single repetition inside the search tree is
// already scored as a draw; a repetition of a pre-root position needs to
// appear twice.
func (e *Engine) isDraw() bool {
	curr := e.stateStack[len(e.stateStack)-1]
	if curr.Rule50 >= fiftyMoveLimit {
		return true
	}

	matchCount, firstIdx := e.repetitionInfo(curr.Hash, curr.Rule50)
	if matchCount >= 2 {
		return true
	}
	return matchCount >= 1 && firstIdx >= e.rootIndex
}

// upcomingRepetition reports whether the current position already occurred
// inside the search tree, in which case the side to move can claim at least
// a draw.
func (e *Engine) upcomingRepetition() bool {
	if len(e.stateStack) <= 1 {
		return false
	}
	curr := e.stateStack[len(e.stateStack)-1]
	start := Max(len(e.stateStack)-1-curr.Rule50, 0)
	for i := len(e.stateStack) - 2; i >= start; i-- {
		if e.stateStack[i].Hash == curr.Hash && i >= e.rootIndex {
			return true
		}
	}
	return false
}

func (e *Engine) repetitionInfo(hash uint64, rule50 int) (count int, firstIdx int) {
	firstIdx = -1
	if len(e.stateStack) <= 1 {
		return 0, firstIdx
	}
	start := Max(len(e.stateStack)-1-rule50, 0)
	end := len(e.stateStack) - 2
	for i := start; i <= end; i++ {
		if e.stateStack[i].Hash == hash {
			count++
			if firstIdx == -1 {
				firstIdx = i
			}
		}
	}
	return count, firstIdx
}

// rule50FromFEN pulls the halfmove clock out of a FEN string, defaulting to
// zero when the field is missing or malformed.
func rule50FromFEN(fen string) int {
	fields := strings.Fields(fen)
	if len(fields) < 5 {
		return 0
	}
	n, err := strconv.Atoi(fields[4])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// nextRule50 computes the halfmove clock after playing move on the current
// board: it resets on pawn moves and captures, otherwise it ticks up.
func (e *Engine) nextRule50(move dragon.Move) int {
	if e.board.PieceAt(move.From()) == dragon.Pawn {
		return 0
	}
	if _, isCapture := e.captureVictim(move); isCapture {
		return 0
	}
	return e.currentRule50() + 1
}
