package engine

import (
	dragon "github.com/Bubblyworld/dragontoothmg"
)

// Engine bundles a position with every piece of search state: the
// transposition table, move ordering tables, the repetition stack and the
// clock. Nothing is shared between instances, so two engines never influence
// each other.
type Engine struct {
	board  dragon.Board
	params Params

	tt      *TransTable
	timer   TimeHandler
	killers KillerStruct

	historyMove [2][64][64]int
	counterMove [2][64][64]dragon.Move

	stateStack []State
	rootIndex  int

	nodes     uint64
	stopped   bool
	prevScore int32
	cutStats  CutStatistics
}

// NewEngine returns a full-strength engine at the starting position.
func NewEngine() *Engine {
	return NewEngineWith(DefaultParams())
}

// NewEngineWith returns an engine configured by params.
func NewEngineWith(params Params) *Engine {
	e := &Engine{params: params}
	e.tt = NewTransTable(params.TTSizeMB)
	e.board = dragon.ParseFen(dragon.Startpos)
	e.resetStateTracking(0)
	return e
}

// NewGame wipes all state carried between searches and returns to the
// starting position.
func (e *Engine) NewGame() {
	e.tt.Clear()
	e.killers.ClearKillers()
	e.clearHistoryTables()
	e.prevScore = 0
	e.board = dragon.ParseFen(dragon.Startpos)
	e.resetStateTracking(0)
}

// SetPositionFEN replaces the current position. The repetition history is
// restarted; moves known to have led here should be replayed with PlayMove.
func (e *Engine) SetPositionFEN(fen string) {
	e.board = dragon.ParseFen(fen)
	e.resetStateTracking(rule50FromFEN(fen))
}

// SetHashSize replaces the transposition table with one of sizeMB megabytes.
func (e *Engine) SetHashSize(sizeMB int) {
	e.params.TTSizeMB = sizeMB
	e.tt = NewTransTable(sizeMB)
}

// Board exposes the current position.
func (e *Engine) Board() *dragon.Board {
	return &e.board
}

// Nodes reports how many nodes the last search visited.
func (e *Engine) Nodes() uint64 {
	return e.nodes
}

// LegalMoves generates all legal moves for the side to move.
func (e *Engine) LegalMoves() []dragon.Move {
	moves, _ := e.board.GenerateLegalMoves2(false)
	return moves
}

// PlayMove makes a permanent move on the board, keeping the repetition
// history so later searches can detect game-level draws.
func (e *Engine) PlayMove(mv dragon.Move) {
	rule50 := e.nextRule50(mv)
	e.board.Apply(mv)
	e.pushState(rule50)
}

// Stop aborts the current search at the next poll.
func (e *Engine) Stop() {
	e.stopped = true
}

// Think picks a move under clock control: remainingMs on our clock plus
// incrementMs per move. It always returns a legal move if one exists.
func (e *Engine) Think(remainingMs, incrementMs int) dragon.Move {
	e.prepareSearch()
	e.timer.initTimemanagement(remainingMs, incrementMs, false)
	e.timer.StartTime(GetPiecePhase(&e.board))
	_, best := e.rootsearch(MaxDepth / 2)
	return e.ensureMove(best)
}

// ThinkMoveTime picks a move spending a fixed number of milliseconds.
func (e *Engine) ThinkMoveTime(moveTimeMs int) dragon.Move {
	e.prepareSearch()
	e.timer.initTimemanagement(moveTimeMs, 0, false)
	e.timer.StartMoveTime(moveTimeMs)
	_, best := e.rootsearch(MaxDepth / 2)
	return e.ensureMove(best)
}

// ThinkDepth searches to a fixed depth with no clock, returning the chosen
// move and its score from the side to move's point of view.
func (e *Engine) ThinkDepth(depth int8) (dragon.Move, int32) {
	e.prepareSearch()
	e.timer.initTimemanagement(0, 0, true)
	score, best := e.rootsearch(depth)
	return e.ensureMove(best), score
}

// prepareSearch resets per-decision state. The transposition table survives
// between searches; killers, history and counters do not.
func (e *Engine) prepareSearch() {
	e.killers.ClearKillers()
	e.clearHistoryTables()
	e.nodes = 0
	e.stopped = false
	e.cutStats = CutStatistics{}
}

// ensureMove guards against an empty search result: any legal move beats
// forfeiting on time.
func (e *Engine) ensureMove(best dragon.Move) dragon.Move {
	if best == 0 {
		if moves := e.LegalMoves(); len(moves) > 0 {
			return moves[0]
		}
	}
	return best
}

// applyMove plays a move inside the search, pairing the board's undo closure
// with the state stack push so they can never drift apart.
func (e *Engine) applyMove(mv dragon.Move) func() {
	rule50 := e.nextRule50(mv)
	unapply := e.board.Apply(mv)
	e.pushState(rule50)
	return func() {
		unapply()
		e.popState()
	}
}

func (e *Engine) applyNullMove() func() {
	rule50 := e.currentRule50()
	unapply := e.board.ApplyNullMove()
	e.pushState(rule50)
	return func() {
		unapply()
		e.popState()
	}
}
