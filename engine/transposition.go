package engine

import (
	"math/bits"
	"unsafe"

	dragon "github.com/Bubblyworld/dragontoothmg"
)

// Bound describes how a stored score relates to the true value of the node.
type Bound int8

const (
	InvalidBound Bound = iota
	UpperBound
	LowerBound
	ExactBound
)

// Unusable score
const UnusableScore int32 = -32750

// TTEntry is a single transposition table slot. The full hash is kept as a
// fingerprint so index collisions are never trusted.
type TTEntry struct {
	Hash  uint64
	Move  dragon.Move
	Score int16
	Depth int8
	Bound Bound
}

// TransTable is a direct-mapped, always-overwrite transposition table. The
// entry count is a power of two so indexing is a mask of the zobrist hash.
type TransTable struct {
	entries []TTEntry
	mask    uint64
}

// NewTransTable allocates a table of at most sizeMB megabytes, rounding the
// entry count down to a power of two.
func NewTransTable(sizeMB int) *TransTable {
	if sizeMB < 1 {
		sizeMB = 1
	}
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	count := uint64(sizeMB) * 1024 * 1024 / entrySize
	// Round down to a power of two
	count = 1 << (63 - bits.LeadingZeros64(count))
	return &TransTable{
		entries: make([]TTEntry, count),
		mask:    count - 1,
	}
}

// Clear zeroes every slot.
func (tt *TransTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}

// ProbeEntry returns the slot for the hash. The entry is only valid when the
// fingerprint matches; a mismatch is a different position sharing the index.
func (tt *TransTable) ProbeEntry(hash uint64) (TTEntry, bool) {
	entry := tt.entries[hash&tt.mask]
	if entry.Hash != hash || entry.Bound == InvalidBound {
		return TTEntry{}, false
	}
	return entry, true
}

// useEntry decides whether a probed entry can terminate the current node.
// The depth must be at least the requested one, and the bound must agree
// with the window. Mate scores are re-anchored to the probing node's ply.
func (tt *TransTable) useEntry(entry TTEntry, hit bool, depth int8, alpha, beta int32, ply int8) (usable bool, score int32) {
	score = UnusableScore
	if !hit || entry.Depth < depth {
		return false, score
	}

	norm := int32(entry.Score)
	if norm > Checkmate {
		norm -= int32(ply)
	} else if norm < -Checkmate {
		norm += int32(ply)
	}

	switch entry.Bound {
	case ExactBound:
		usable = true
		score = norm
	case UpperBound:
		if norm <= alpha {
			usable = true
			score = norm
		}
	case LowerBound:
		if norm >= beta {
			usable = true
			score = norm
		}
	}
	return usable, score
}

// storeEntry unconditionally overwrites the slot for the hash. Mate scores
// are stored relative to the node so they stay valid at other plies.
func (tt *TransTable) storeEntry(hash uint64, depth int8, ply int8, move dragon.Move, score int32, bound Bound) {
	if score > Checkmate {
		score += int32(ply)
	} else if score < -Checkmate {
		score -= int32(ply)
	}

	entry := &tt.entries[hash&tt.mask]
	entry.Hash = hash
	entry.Depth = depth
	entry.Move = move
	entry.Score = int16(score)
	entry.Bound = bound
}
