package engine

import (
	"testing"

	dragon "github.com/Bubblyworld/dragontoothmg"
)

func TestTableSizeIsPowerOfTwo(t *testing.T) {
	for _, mb := range []int{1, 3, 16, 64} {
		tt := NewTransTable(mb)
		n := uint64(len(tt.entries))
		if n == 0 || n&(n-1) != 0 {
			t.Errorf("%dMB table has %d entries, want a power of two", mb, n)
		}
		if tt.mask != n-1 {
			t.Errorf("%dMB table mask %#x does not match entry count %d", mb, tt.mask, n)
		}
	}
}

func TestProbeRoundTrip(t *testing.T) {
	tt := NewTransTable(1)
	board := dragon.ParseFen(dragon.Startpos)
	moves, _ := board.GenerateLegalMoves2(false)
	hash := board.Hash()

	tt.storeEntry(hash, 6, 0, moves[0], 42, ExactBound)

	entry, hit := tt.ProbeEntry(hash)
	if !hit {
		t.Fatal("expected a hit after storing")
	}
	if entry.Move != moves[0] || entry.Score != 42 || entry.Depth != 6 || entry.Bound != ExactBound {
		t.Fatalf("entry corrupted on round trip: %+v", entry)
	}
}

func TestFingerprintMismatchIsAMiss(t *testing.T) {
	tt := NewTransTable(1)
	hash := uint64(0xdeadbeef)
	tt.storeEntry(hash, 4, 0, 0, 10, ExactBound)

	// Same table slot, different position.
	collider := hash ^ (uint64(1) << 40)
	if collider&tt.mask != hash&tt.mask {
		t.Fatal("test positions must share a slot")
	}
	if _, hit := tt.ProbeEntry(collider); hit {
		t.Fatal("a fingerprint mismatch must not be trusted")
	}
}

func TestEntryDepthGating(t *testing.T) {
	tt := NewTransTable(1)
	hash := uint64(12345)
	tt.storeEntry(hash, 5, 0, 0, 30, ExactBound)
	entry, hit := tt.ProbeEntry(hash)

	if usable, _ := tt.useEntry(entry, hit, 6, -MaxScore, MaxScore, 0); usable {
		t.Fatal("an entry from a shallower search must not satisfy a deeper request")
	}
	if usable, score := tt.useEntry(entry, hit, 4, -MaxScore, MaxScore, 0); !usable || score != 30 {
		t.Fatalf("deeper entry should satisfy a shallower request, got usable=%v score=%d", usable, score)
	}
}

func TestBoundsAgainstWindow(t *testing.T) {
	tt := NewTransTable(1)
	hash := uint64(777)

	tt.storeEntry(hash, 4, 0, 0, 50, UpperBound)
	entry, hit := tt.ProbeEntry(hash)
	if usable, _ := tt.useEntry(entry, hit, 4, 40, 60, 0); usable {
		t.Fatal("an upper bound above alpha cannot cut")
	}
	if usable, _ := tt.useEntry(entry, hit, 4, 55, 70, 0); !usable {
		t.Fatal("an upper bound at or below alpha must cut")
	}

	tt.storeEntry(hash, 4, 0, 0, 50, LowerBound)
	entry, hit = tt.ProbeEntry(hash)
	if usable, _ := tt.useEntry(entry, hit, 4, 20, 60, 0); usable {
		t.Fatal("a lower bound below beta cannot cut")
	}
	if usable, _ := tt.useEntry(entry, hit, 4, 20, 45, 0); !usable {
		t.Fatal("a lower bound at or above beta must cut")
	}
}

func TestMateScoreReanchoring(t *testing.T) {
	tt := NewTransTable(1)
	hash := uint64(31337)

	// Mate in two plies seen at ply 2; probing at ply 6 must see the same
	// mate four plies further from the new node.
	tt.storeEntry(hash, 8, 2, 0, MaxScore-4, ExactBound)
	entry, hit := tt.ProbeEntry(hash)

	usable, score := tt.useEntry(entry, hit, 8, -MaxScore, MaxScore, 6)
	if !usable {
		t.Fatal("expected a usable exact entry")
	}
	if score != MaxScore-8 {
		t.Fatalf("expected re-anchored mate score %d, got %d", MaxScore-8, score)
	}
}

func TestClearEmptiesTable(t *testing.T) {
	tt := NewTransTable(1)
	hash := uint64(999)
	tt.storeEntry(hash, 4, 0, 0, 10, ExactBound)
	tt.Clear()
	if _, hit := tt.ProbeEntry(hash); hit {
		t.Fatal("probe hit after Clear")
	}
}
