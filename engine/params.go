package engine

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int32 = 32500
	Checkmate int32 = 20000
	DrawScore int32 = 0
)

const MaxDepth = 100

// =============================================================================
// MARGINS
// =============================================================================
var FutilityMargins = [8]int32{0, 120, 220, 320, 420, 520, 620, 720}
var RFPMargins = [8]int32{0, 100, 200, 300, 400, 500, 600, 700}

var LateMovePruningMargins = [9]int{0, 3, 5, 9, 14, 20, 27, 35, 44}

// =============================================================================
// LMR/PRUNING PARAMETERS
// =============================================================================
var LMRDepthLimit int8 = 2
var LMRMoveLimit = 2
var LMRHistoryReductionScale = 200
var NullMoveMinDepth int8 = 2

var DeltaMargin int32 = 200
var aspirationWindowSize int32 = 35
var aspirationMinDepth int8 = 4

// Params selects the engine's heuristics and table sizes. Every pruning and
// reduction mechanism sits behind a toggle so the search can be collapsed to
// plain alpha-beta for testing.
type Params struct {
	TTSizeMB int

	UseTT             bool
	UseQuiescence     bool
	UseNullMove       bool
	UseRFP            bool
	UseFutility       bool
	UseLMP            bool
	UseLMR            bool
	UseIID            bool
	UseAspiration     bool
	UseCheckExtension bool
	UseDeltaPruning   bool

	// Verbose enables per-iteration UCI info output.
	Verbose bool
}

// DefaultParams returns the full-strength configuration.
func DefaultParams() Params {
	return Params{
		TTSizeMB:          64,
		UseTT:             true,
		UseQuiescence:     true,
		UseNullMove:       true,
		UseRFP:            true,
		UseFutility:       true,
		UseLMP:            true,
		UseLMR:            true,
		UseIID:            true,
		UseAspiration:     true,
		UseCheckExtension: true,
		UseDeltaPruning:   true,
		Verbose:           true,
	}
}

// MinimalParams disables every heuristic, leaving bare alpha-beta over the
// static evaluation. Used to cross-check search results.
func MinimalParams() Params {
	return Params{TTSizeMB: 1}
}

// Precomputed late-move reduction table, indexed by depth and move count.
var LMR = [MaxDepth + 1][100]int8{}

func init() {
	initLMRTable()
}

func initLMRTable() {
	for d := 1; d <= MaxDepth; d++ {
		for m := 1; m < 100; m++ {
			r := 1 + d/8 + m/16 // gentle growth with depth & lateness
			if r > d-2 {
				r = d - 2
			}
			if r < 0 {
				r = 0
			}
			LMR[d][m] = int8(r)
		}
	}
}
