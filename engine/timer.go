package engine

import (
	"time"
)

// TimeHandler turns a remaining-time budget into a per-move allotment and
// answers the search's deadline checks. The hard deadline is polled inside
// the search; the soft budget gates starting another iteration.
type TimeHandler struct {
	remainingTime    int
	increment        int
	usingCustomDepth bool
	searchStart      time.Time
	hardDeadline     time.Time
	softBudget       time.Duration
}

func (th *TimeHandler) initTimemanagement(remainingTime int, increment int, useCustomDepth bool) {
	th.remainingTime = remainingTime
	th.increment = increment
	th.usingCustomDepth = useCustomDepth
}

// StartTime computes this move's time allotment from the clock and the game
// phase, then arms the deadlines.
func (th *TimeHandler) StartTime(phase int) {
	movesLeft := estimateMovesRemaining(Min(phase, TotalPhase))

	// Engine-side safety knobs
	const overheadMs = 30      // reserve for UCI/IO jitter
	const minMoveMs = 5        // never less than this
	const maxFrac = 0.7        // never spend >70% of remaining time
	const panicThreshMs = 1000 // low-clock threshold
	const panicFrac = 0.90     // use 90% of inc when low on time

	rem := th.remainingTime
	inc := th.increment

	var moveTime int
	if inc > 0 {
		if rem < panicThreshMs {
			// Panic: try to bank a little time
			moveTime = int(float64(inc) * panicFrac)
		} else {
			// Normal: spend a fraction of remaining + take (most of) the inc
			moveTime = rem/movesLeft + inc
		}
	} else {
		moveTime = rem / 40
	}

	// Apply overhead and clamps
	if moveTime > int(float64(rem)*maxFrac) {
		moveTime = int(float64(rem) * maxFrac)
	}
	if moveTime > rem-overheadMs {
		moveTime = rem - overheadMs
	}
	if moveTime < minMoveMs {
		moveTime = minMoveMs
	}

	th.arm(moveTime)
}

// StartMoveTime arms the deadlines for a fixed per-move time (UCI movetime).
func (th *TimeHandler) StartMoveTime(moveTimeMs int) {
	th.arm(moveTimeMs)
}

func (th *TimeHandler) arm(moveTimeMs int) {
	th.searchStart = time.Now()
	th.hardDeadline = th.searchStart.Add(time.Duration(moveTimeMs) * time.Millisecond)
	// Starting an iteration we likely can't finish wastes the remainder, so
	// stop handing out new ones past a share of the allotment.
	th.softBudget = time.Duration(moveTimeMs) * time.Millisecond * 6 / 10
}

/*
	- True if we're out of time and we're not using a custom depth search
	- False if we still got time
*/
func (th *TimeHandler) TimeStatus() bool {
	if th.usingCustomDepth {
		return false
	}
	return th.hardDeadline.Before(time.Now())
}

// SoftTimeExceeded reports whether another iteration should still be started.
func (th *TimeHandler) SoftTimeExceeded() bool {
	if th.usingCustomDepth {
		return false
	}
	return time.Since(th.searchStart) > th.softBudget
}

func estimateMovesRemaining(phase int) int {
	// Linearly interpolate between 20 (endgame) and 45 (opening/midgame)
	return (phase*25)/24 + 20 // result in [20, 45]
}
