package engine

import (
	dragon "github.com/Bubblyworld/dragontoothmg"
)

// KillerStruct keeps two quiet moves per ply that recently caused a beta
// cutoff, newest first.
type KillerStruct struct {
	KillerMoves [MaxDepth + 1][2]dragon.Move
}

func (k *KillerStruct) InsertKiller(move dragon.Move, ply int8) {
	if move != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = move
	}
}

func (k *KillerStruct) IsKiller(move dragon.Move, ply int8) bool {
	return move == k.KillerMoves[ply][0] || move == k.KillerMoves[ply][1]
}

// ClearKillers empties the killer moves table.
func (k *KillerStruct) ClearKillers() {
	var nilMove dragon.Move
	for ply := 0; ply < MaxDepth+1; ply++ {
		k.KillerMoves[ply][0] = nilMove
		k.KillerMoves[ply][1] = nilMove
	}
}
