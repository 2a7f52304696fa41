package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	dragon "github.com/Bubblyworld/dragontoothmg"
)

func perft(b *dragon.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves, _ := b.GenerateLegalMoves2(false)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += perft(b, depth-1)
		unapply()
	}
	return nodes
}

func main() {
	fen := flag.String("fen", dragon.Startpos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board := dragon.ParseFen(*fen)

	// Optional divide output
	if *divide {
		moves, _ := board.GenerateLegalMoves2(false)
		type kv struct {
			m string
			n uint64
		}
		arr := make([]kv, 0, len(moves))
		var sum uint64
		for _, m := range moves {
			unapply := board.Apply(m)
			n := perft(&board, *depth-1)
			unapply()
			arr = append(arr, kv{(&m).String(), n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m < arr[j].m })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m, x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += perft(&board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}
