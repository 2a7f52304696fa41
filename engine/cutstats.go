package engine

import "fmt"

// CutStatistics collects counts for each pruning/cutoff mechanism.
type CutStatistics struct {
	TTCutoffs         uint64
	NullMoveCutoffs   uint64
	StaticNullCutoffs uint64
	FutilityPrunes    uint64
	LateMovePrunes    uint64
	BetaCutoffs       uint64
	QStandPatCutoffs  uint64
	QBetaCutoffs      uint64
}

// CutStats returns the counters from the most recent search.
func (e *Engine) CutStats() CutStatistics {
	return e.cutStats
}

// DumpCutStats prints the counters from the most recent search as UCI info
// strings.
func (e *Engine) DumpCutStats() {
	fmt.Println("info string Cut statistics:")
	fmt.Printf("info string   TT cutoffs: %d\n", e.cutStats.TTCutoffs)
	fmt.Printf("info string   Null-move cutoffs: %d\n", e.cutStats.NullMoveCutoffs)
	fmt.Printf("info string   Static null cutoffs: %d\n", e.cutStats.StaticNullCutoffs)
	fmt.Printf("info string   Futility prunes: %d\n", e.cutStats.FutilityPrunes)
	fmt.Printf("info string   Late move prunes: %d\n", e.cutStats.LateMovePrunes)
	fmt.Printf("info string   Beta cutoffs: %d\n", e.cutStats.BetaCutoffs)
	fmt.Printf("info string   QStandPat cutoffs: %d\n", e.cutStats.QStandPatCutoffs)
	fmt.Printf("info string   QBeta cutoffs: %d\n", e.cutStats.QBetaCutoffs)
}
