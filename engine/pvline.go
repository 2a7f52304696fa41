package engine

import (
	"strings"

	dragon "github.com/Bubblyworld/dragontoothmg"
)

// PVLine holds the principal variation found below a node.
type PVLine struct {
	Moves []dragon.Move
}

// Clear empties the line.
func (pv *PVLine) Clear() {
	pv.Moves = nil
}

// Update sets the line to move followed by the child node's line.
func (pv *PVLine) Update(move dragon.Move, childPVLine PVLine) {
	pv.Clear()
	pv.Moves = append(pv.Moves, move)
	pv.Moves = append(pv.Moves, childPVLine.Moves...)
}

// GetPVMove returns the first move of the line, or the zero move if empty.
func (pv *PVLine) GetPVMove() dragon.Move {
	if len(pv.Moves) == 0 {
		return dragon.Move(0)
	}
	return pv.Moves[0]
}

// Clone returns a deep copy; the search reuses its PVLine buffers between
// iterations, so the driver must copy before the next one starts.
func (pv PVLine) Clone() PVLine {
	moves := make([]dragon.Move, len(pv.Moves))
	copy(moves, pv.Moves)
	return PVLine{Moves: moves}
}

func (pv PVLine) String() string {
	var sb strings.Builder
	for i, move := range pv.Moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(moveString(move))
	}
	return sb.String()
}
