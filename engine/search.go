package engine

import (
	"fmt"
	"math/bits"
	"time"

	dragon "github.com/Bubblyworld/dragontoothmg"
)

// rootsearch runs iterative deepening up to maxDepth, returning the score
// and move of the deepest completed iteration. An iteration cut short by the
// clock never replaces the previous result.
func (e *Engine) rootsearch(maxDepth int8) (int32, dragon.Move) {
	var timeSpent int64
	var alpha int32 = -MaxScore
	var beta int32 = MaxScore
	var bestScore int32 = -MaxScore
	e.rootIndex = len(e.stateStack) - 1

	var pvLine PVLine
	var prevPVLine PVLine
	var mateFound bool

	currentWindow := aspirationWindowSize

	for i := int8(1); i <= maxDepth; i++ {
		if i > 1 && e.timer.SoftTimeExceeded() {
			break
		}

		pvLine.Clear()
		mateFound = false

		startTime := time.Now()
		score := e.alphabeta(alpha, beta, i, 0, &pvLine, dragon.Move(0), false)
		timeSpent += time.Since(startTime).Milliseconds()

		if e.stopped || e.timer.TimeStatus() {
			if len(prevPVLine.Moves) == 0 && len(pvLine.Moves) > 0 {
				bestScore = score
				e.prevScore = bestScore
				prevPVLine = pvLine.Clone()
			}
			break
		}

		// Aspiration window re-search; a full-window result is final
		windowed := alpha > -MaxScore || beta < MaxScore
		if windowed && (score <= alpha || score >= beta) {
			currentWindow *= 2
			if currentWindow > MaxScore {
				currentWindow = MaxScore
			}

			alpha = Max(score-currentWindow, -MaxScore)
			beta = Min(score+currentWindow, MaxScore)
			i--
			continue
		}

		if (score > Checkmate || score < -Checkmate) && len(pvLine.Moves) > 0 { // If we found checkmate...
			mateFound = true
		}

		// Center the next iteration's window on this score
		if e.params.UseAspiration && i+1 >= aspirationMinDepth {
			alpha = score - aspirationWindowSize
			beta = score + aspirationWindowSize
		} else {
			alpha = -MaxScore
			beta = MaxScore
		}
		currentWindow = aspirationWindowSize

		bestScore = score
		e.prevScore = bestScore
		prevPVLine = pvLine.Clone()

		if e.params.Verbose {
			if timeSpent == 0 {
				timeSpent = 1
			}
			nps := uint64(float64(e.nodes*1000) / float64(timeSpent))
			fmt.Println(
				"info depth", i,
				"score", getMateOrCPScore(int(bestScore)),
				"nodes", e.nodes,
				"time", timeSpent,
				"nps", nps,
				"pv", prevPVLine.String(),
			)
		}

		if mateFound {
			break
		}
	}

	return bestScore, prevPVLine.GetPVMove()
}

func (e *Engine) alphabeta(alpha int32, beta int32, depth int8, ply int8, pvLine *PVLine, prevMove dragon.Move, didNull bool) int32 {
	e.nodes++

	if e.nodes&4095 == 0 && e.timer.TimeStatus() {
		e.stopped = true
	}
	if e.stopped {
		return 0
	}

	if ply >= MaxDepth {
		return Evaluate(&e.board)
	}

	var bestMove dragon.Move
	var childPVLine = PVLine{}
	var isPVNode = (beta - alpha) > 1
	var isRoot = ply == 0

	// Draw detection
	if !isRoot {
		if e.isDraw() {
			return DrawScore
		}
		if alpha < DrawScore && e.upcomingRepetition() {
			alpha = DrawScore
		}
	}

	inCheck := e.board.OurKingInCheck()

	// Check extension
	if inCheck && e.params.UseCheckExtension {
		depth++
	}

	posHash := e.board.Hash()

	/*
		TRANSPOSITION TABLE LOOKUP
	*/
	var ttMove dragon.Move
	var usable bool
	var ttScore int32
	if e.params.UseTT {
		ttEntry, ttHit := e.tt.ProbeEntry(posHash)
		usable, ttScore = e.tt.useEntry(ttEntry, ttHit, depth, alpha, beta, ply)
		if ttHit {
			ttMove = ttEntry.Move
		}
		if usable && !isRoot && !isPVNode {
			e.cutStats.TTCutoffs++
			return ttScore
		}
	}

	// Quiescence at leaf nodes
	if depth <= 0 {
		if e.params.UseQuiescence {
			return e.quiescence(alpha, beta, pvLine, 30, ply)
		}
		return Evaluate(&e.board)
	}

	var staticScore int32
	if usable {
		staticScore = ttScore
		bestMove = ttMove
	} else {
		staticScore = Evaluate(&e.board)
	}

	improving := false
	if ply >= 2 && !inCheck {
		improving = staticScore > alpha
	}

	/*
		REVERSE FUTILITY PRUNING
		If our position is so good that even after giving a margin to the
		opponent we still beat beta, we can safely prune.
		Applied at depths 1-7, NOT in PV nodes or when in check.
	*/
	if e.params.UseRFP && !inCheck && !isPVNode && !isRoot && depth >= 1 && depth <= 7 && Abs(beta) < Checkmate {
		rfpMargin := RFPMargins[depth]
		if !improving {
			rfpMargin -= 50 // More aggressive when not improving
		}
		if staticScore-rfpMargin >= beta {
			e.cutStats.StaticNullCutoffs++
			if e.params.UseTT {
				e.tt.storeEntry(posHash, depth, ply, ttMove, staticScore-rfpMargin, LowerBound)
			}
			return staticScore - rfpMargin
		}
	}

	/*
		NULL MOVE PRUNING
	*/
	if e.params.UseNullMove && !inCheck && !isPVNode && !didNull && !isRoot && depth >= NullMoveMinDepth && e.sideHasPieces() {
		unapply := e.applyNullMove()

		var R int8 = 3 + depth/3
		if depth > 6 {
			R++
		}
		// Ensure we don't reduce below depth 1
		if R > depth-1 {
			R = depth - 1
		}

		score := -e.alphabeta(-beta, -beta+1, depth-1-R, ply+1, &childPVLine, dragon.Move(0), true)
		unapply()

		if e.stopped {
			return 0
		}

		if score >= beta && score < Checkmate {
			e.cutStats.NullMoveCutoffs++
			if e.params.UseTT {
				e.tt.storeEntry(posHash, depth, ply, ttMove, score, LowerBound)
			}
			// Verification search at high depths
			if depth > 10 {
				verifyScore := e.alphabeta(beta-1, beta, depth-1-R, ply, &childPVLine, prevMove, true)
				if verifyScore >= beta {
					return verifyScore
				}
			} else {
				return score
			}
		}
	}

	/*
		INTERNAL ITERATIVE DEEPENING
		When we have no TT move at sufficient depth, a reduced search finds
		one. Much better than searching blind.
	*/
	if e.params.UseIID && e.params.UseTT && ttMove == 0 && depth >= 5 && !didNull {
		reducedDepth := depth - 2
		if depth >= 8 {
			reducedDepth = depth - depth/4
		}

		var iidPV PVLine
		e.alphabeta(alpha, beta, reducedDepth, ply, &iidPV, prevMove, true)

		if iidEntry, ok := e.tt.ProbeEntry(posHash); ok && iidEntry.Move != 0 {
			ttMove = iidEntry.Move
			bestMove = ttMove
		}
	}

	// Generate and score moves
	allMoves, _ := e.board.GenerateLegalMoves2(false)

	// Checkmate/stalemate check
	if len(allMoves) == 0 {
		if inCheck {
			return -MaxScore + int32(ply) // Checkmate
		}
		return DrawScore // Stalemate
	}

	var score int32 = -MaxScore
	var bestScore int32 = -MaxScore
	var moves = e.scoreMoves(allMoves, ply, bestMove, prevMove)
	var ttBound = UpperBound
	side := e.sideIdx()
	legalMoves := 0

	for index := uint8(0); index < uint8(len(moves.moves)); index++ {
		orderNextMove(index, &moves)
		mv := moves.moves[index].move

		_, isCapture := e.captureVictim(mv)
		isPromotion := mv.Promote() != 0
		legalMoves++

		unapply := e.applyMove(mv)
		givesCheck := e.board.OurKingInCheck()
		tactical := isCapture || isPromotion || givesCheck

		/*
			LATE MOVE PRUNING
			Skip quiet moves late in the move list at low depths.
		*/
		if e.params.UseLMP && depth <= 8 && !isPVNode && !tactical && !isRoot && legalMoves > 1 {
			lmpMargin := LateMovePruningMargins[Min(int(depth), len(LateMovePruningMargins)-1)]
			// Be more aggressive when not improving
			if !improving {
				lmpMargin = lmpMargin * 2 / 3
			}
			if lmpMargin > 0 && legalMoves > lmpMargin {
				e.cutStats.LateMovePrunes++
				unapply()
				continue
			}
		}

		/*
			FUTILITY PRUNING
			At depths 1-7, if static eval + margin can't beat alpha, prune
			quiet moves beyond the first. The first move is always searched;
			a node with legal moves must never return a mate score.
		*/
		if e.params.UseFutility && depth >= 1 && depth <= 7 && !isPVNode && !isRoot && !tactical && legalMoves > 1 && Abs(alpha) < Checkmate {
			futilityMargin := FutilityMargins[depth]
			if !improving {
				futilityMargin -= 50 // More aggressive when not improving
			}
			if staticScore+futilityMargin <= alpha {
				e.cutStats.FutilityPrunes++
				unapply()
				continue
			}
		}

		if legalMoves == 1 {
			// First move: full-depth, full-window search
			score = -e.alphabeta(-beta, -alpha, depth-1, ply+1, &childPVLine, mv, false)
		} else {
			/*
				LATE MOVE REDUCTIONS
			*/
			var reduct int8
			if e.params.UseLMR && int(depth) >= int(LMRDepthLimit) && legalMoves >= LMRMoveLimit && !tactical {
				historyScore := e.historyMove[side][mv.From()][mv.To()]
				reduct = computeLMRReduction(depth, legalMoves, isPVNode, tactical, historyScore, e.killers.IsKiller(mv, ply))
			}

			score = e.searchMoveWithPVS(mv, depth-1, reduct, alpha, beta, ply, &childPVLine)
		}

		unapply()

		if e.stopped {
			return 0
		}

		// Update best score and move
		if score > bestScore {
			bestScore = score
			bestMove = mv
		}

		// Beta cutoff
		if score >= beta {
			e.cutStats.BetaCutoffs++
			ttBound = LowerBound
			if !isCapture {
				// Store killer and counter moves, and reward the cutoff move
				e.killers.InsertKiller(mv, ply)
				e.storeCounter(prevMove, mv)
				e.incrementHistoryScore(mv, depth)
			}
			break
		}

		// Alpha improvement
		if score > alpha {
			alpha = score
			ttBound = ExactBound
			pvLine.Update(mv, childPVLine)

			if !isCapture {
				e.incrementHistoryScore(mv, depth)
			}
		}
		childPVLine.Clear()
	}

	// Store in transposition table
	if e.params.UseTT && !e.stopped {
		e.tt.storeEntry(posHash, depth, ply, bestMove, bestScore, ttBound)
	}

	return bestScore
}

func (e *Engine) quiescence(alpha int32, beta int32, pvLine *PVLine, depth int8, ply int8) int32 {
	e.nodes++

	if e.nodes&2047 == 0 && e.timer.TimeStatus() {
		e.stopped = true
	}
	if e.stopped {
		return 0
	}

	inCheck := e.board.OurKingInCheck()
	var childPVLine = PVLine{}

	var standpat int32 = Evaluate(&e.board)

	if ply >= MaxDepth || depth <= 0 {
		return standpat
	}

	// Stand-pat pruning (not when in check)
	if !inCheck {
		if standpat >= beta {
			e.cutStats.QStandPatCutoffs++
			return standpat
		}
		if standpat > alpha {
			alpha = standpat
		}
	}

	var bestScore int32
	if inCheck {
		bestScore = -MaxScore // Must escape check
	} else {
		bestScore = standpat
	}

	// Generate moves: all evasions when in check, only violent moves otherwise
	var moves moveList
	if inCheck {
		allMoves, _ := e.board.GenerateLegalMoves2(false)
		if len(allMoves) == 0 {
			return -MaxScore + int32(ply) // Checkmate
		}
		moves = e.scoreMoves(allMoves, ply, dragon.Move(0), dragon.Move(0))
	} else {
		violent, _ := e.board.GenerateLegalMoves2(true)
		moves = e.scoreCaptures(violent, dragon.Move(0))
	}

	for index := uint8(0); index < uint8(len(moves.moves)); index++ {
		orderNextMove(index, &moves)
		mv := moves.moves[index].move

		/*
			DELTA PRUNING
			If the capture plus a margin still can't lift us to alpha, skip
			it. Only applied when not in check.
		*/
		if !inCheck && e.params.UseDeltaPruning {
			victim, isCap := e.captureVictim(mv)
			var moveGain int32
			if isCap {
				moveGain = int32(pieceValueMG[victim])
			}
			if promo := mv.Promote(); promo != 0 {
				moveGain += int32(pieceValueMG[promo] - pieceValueMG[dragon.Pawn])
			}
			if standpat+moveGain+DeltaMargin < alpha {
				continue
			}
		}

		unapply := e.applyMove(mv)
		score := -e.quiescence(-beta, -alpha, &childPVLine, depth-1, ply+1)
		unapply()

		if e.stopped {
			return 0
		}

		if score > bestScore {
			bestScore = score
		}

		if score >= beta {
			e.cutStats.QBetaCutoffs++
			return score
		}

		if score > alpha {
			alpha = score
			pvLine.Update(mv, childPVLine)
		}
		childPVLine.Clear()
	}

	return bestScore
}

// searchMoveWithPVS searches an already-applied move with the standard PVS
// 3-stage pattern:
// 1. Search with reduced depth using a null window
// 2. If a reduction was applied and the score beats alpha, re-search at full depth with the null window
// 3. If the score lands inside (alpha, beta), do a full window search
func (e *Engine) searchMoveWithPVS(mv dragon.Move, baseDepth int8, reduction int8,
	alpha int32, beta int32, ply int8, childPVLine *PVLine) int32 {

	score := -e.alphabeta(-(alpha + 1), -alpha, baseDepth-reduction, ply+1, childPVLine, mv, false)

	if score > alpha && reduction > 0 {
		score = -e.alphabeta(-(alpha+1), -alpha, baseDepth, ply+1, childPVLine, mv, false)
	}

	if score > alpha && score < beta {
		score = -e.alphabeta(-beta, -alpha, baseDepth, ply+1, childPVLine, mv, false)
	}

	return score
}

func computeLMRReduction(depth int8, legalMoves int, isPVNode bool, tactical bool, historyScore int, isKiller bool) int8 {
	// No reduction in these cases
	if isPVNode || tactical || int(depth) < int(LMRDepthLimit) || legalMoves <= 2 {
		return 0
	}

	d := Min(int(depth), len(LMR)-1)
	m := Clamp(legalMoves-1, 0, 99)
	r := LMR[d][m]

	// Good history means less reduction
	if r > 0 && historyScore > 0 {
		bonus := Clamp(int8(historyScore/LMRHistoryReductionScale), 0, 2)
		if bonus > r {
			bonus = r
		}
		r -= bonus
	}

	// Killers keep a ply as well
	if isKiller && r > 0 {
		r--
	}

	return r
}

// sideHasPieces reports whether the side to move still has non-pawn
// material. Null-move pruning is unsound in pawn endgames (zugzwang).
func (e *Engine) sideHasPieces() bool {
	side := dragon.White
	if e.board.Colortomove == dragon.Black {
		side = dragon.Black
	}
	bbs := &e.board.Bbs[side]
	return bits.OnesCount64(bbs[dragon.Knight]|bbs[dragon.Bishop]|bbs[dragon.Rook]|bbs[dragon.Queen]) > 0
}

// Taken from Blunder chess engine and just slightly modified; works great though :)
func getMateOrCPScore(score int) string {
	mateValue := int(MaxScore)
	mateThreshold := int(Checkmate)

	if score >= mateThreshold {
		pliesToMate := Max(mateValue-score, 0)
		mateInN := (pliesToMate + 1) / 2
		return fmt.Sprintf("mate %d", mateInN)
	} else if score <= -mateThreshold {
		pliesToMate := Max(mateValue+score, 0) // score is negative here
		mateInN := (pliesToMate + 1) / 2
		return fmt.Sprintf("mate %d", -mateInN)
	}

	return fmt.Sprintf("cp %d", score)
}

// DumpRootMoveOrdering prints the scored root move list, best first. Debug
// helper behind the "moveordering" command.
func (e *Engine) DumpRootMoveOrdering() {
	legalMoves, _ := e.board.GenerateLegalMoves2(false)
	scoredMoves := e.scoreMoves(legalMoves, 0, dragon.Move(0), dragon.Move(0))
	for i := uint8(0); i < uint8(len(scoredMoves.moves)); i++ {
		orderNextMove(i, &scoredMoves)
	}

	fmt.Println("info string root move ordering")
	for idx, entry := range scoredMoves.moves {
		fmt.Printf("info string #%d %s score=%d\n", idx+1, moveString(entry.move), entry.score)
	}
}
