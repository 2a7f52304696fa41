package main

import (
	"flag"
	"fmt"
	"time"

	dragon "github.com/Bubblyworld/dragontoothmg"
	"github.com/pkg/profile"

	"github.com/DeveloperPaul123/Chess-Challenge/engine"
)

// A slice of the CCR one-hour test suite; enough coverage for a search
// throughput benchmark without taking all afternoon.
var benchFens = [][2]string{
	{dragon.Startpos, "starting position"},
	{"rn1qkb1r/pp2pppp/5n2/3p1b2/3P4/2N1P3/PP3PPP/R1BQKBNR w KQkq - 0 1", "CCR01"},
	{"rn1qkb1r/pp2pppp/5n2/3p1b2/3P4/1QN1P3/PP3PPP/R1B1KBNR b KQkq - 1 1", "CCR02"},
	{"r1bqk2r/ppp2ppp/2n5/4P3/2Bp2n1/5N1P/PP1N1PP1/R2Q1RK1 b kq - 1 10", "CCR03"},
	{"r1bqrnk1/pp2bp1p/2p2np1/3p2B1/3P4/2NBPN2/PPQ2PPP/1R3RK1 w - - 1 12", "CCR04"},
	{"rnbqkb1r/ppp1pppp/5n2/8/3PP3/2N5/PP3PPP/R1BQKBNR b KQkq - 3 5", "CCR05"},
	{"r4rk1/3nppbp/bq1p1np1/2pP4/8/2N2NPP/PP2PPB1/R1BQR1K1 b - - 1 12", "CCR07"},
	{"rn1qkb1r/pb1p1ppp/1p2pn2/2p5/2PP4/5NP1/PP2PPBP/RNBQK2R w KQkq c6 1 6", "CCR08"},
	{"rnbqr1k1/1p3pbp/p2p1np1/2pP4/4P3/2N5/PP1NBPPP/R1BQ1RK1 w - - 1 11", "CCR10"},
	{"r1bqk1nr/pppnbppp/3p4/8/2BNP3/8/PPP2PPP/RNBQK2R w KQkq - 2 6", "CCR12"},
	{"r2q1rk1/2p1bppp/p2p1n2/1p2P3/4P1b1/1nP1BN2/PP3PPP/RN1QR1K1 w - - 1 12", "CCR15"},
	{"r1bqkb1r/pp3ppp/2np1n2/4p1B1/3NP3/2N5/PPP2PPP/R2QKB1R w KQkq e6 1 7", "CCR18"},
	{"r1b1kb1r/1pqpnppp/p1n1p3/8/3NP3/2N1B3/PPP1BPPP/R2QK2R w KQkq - 3 8", "CCR20"},
	{"r3kb1r/pp1n1ppp/1q2p3/n2p4/3P1Bb1/2PB1N2/PPQ2PPP/RN2K2R w KQkq - 3 11", "CCR22"},
	{"r2qkbnr/ppp1pp1p/3p2p1/3Pn3/4P1b1/2N2N2/PPP2PPP/R1BQKB1R w KQkq - 2 6", "CCR24"},
}

func main() {
	depthFlag := flag.Int("depth", 8, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of passes over the suite")
	fenFlag := flag.String("fen", "", "single FEN to search instead of the suite")
	profileFlag := flag.Bool("profile", false, "write a CPU profile to the current directory")
	flag.Parse()

	if *profileFlag {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	suite := benchFens
	if *fenFlag != "" {
		suite = [][2]string{{*fenFlag, "custom"}}
	}

	params := engine.DefaultParams()
	params.Verbose = false

	var totalNodes uint64
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		for _, fenDescr := range suite {
			eng := engine.NewEngineWith(params)
			eng.SetPositionFEN(fenDescr[0])

			iterStart := time.Now()
			bestMove, score := eng.ThinkDepth(int8(*depthFlag))
			iterElapsed := time.Since(iterStart)

			totalNodes += eng.Nodes()
			fmt.Printf("%-18s bestmove %-6s score %-6d nodes %-10d time %v\n",
				fenDescr[1], (&bestMove).String(), score, eng.Nodes(), iterElapsed)
		}
	}
	totalElapsed := time.Since(startAll)
	nps := float64(totalNodes) / totalElapsed.Seconds()
	fmt.Printf("total: nodes %d time %v nps %.0f\n", totalNodes, totalElapsed, nps)
}
