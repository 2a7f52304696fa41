package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tm "github.com/buger/goterm"
	"github.com/google/uuid"
	"github.com/notnil/chess"

	"github.com/DeveloperPaul123/Chess-Challenge/engine"
)

// Engine-vs-engine console game. The notnil/chess game tracks legality,
// draw adjudication and PGN export; the engines search over the same
// positions via FEN.
func main() {
	moveTimeMs := flag.Int("movetime", 500, "milliseconds per move for both sides")
	startFen := flag.String("fen", "", "starting FEN (empty = initial position)")
	maxMoves := flag.Int("maxmoves", 300, "abort the game after this many half-moves")
	quiet := flag.Bool("quiet", false, "skip the live board display")
	flag.Parse()

	gameID := uuid.NewString()

	var opts []func(*chess.Game)
	if *startFen != "" {
		fen, err := chess.FEN(*startFen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid fen: %v\n", err)
			os.Exit(2)
		}
		opts = append(opts, fen)
	}
	game := chess.NewGame(opts...)

	params := engine.DefaultParams()
	params.Verbose = false
	white := engine.NewEngineWith(params)
	black := engine.NewEngineWith(params)

	start := time.Now()
	halfMoves := 0

	for game.Outcome() == chess.NoOutcome && halfMoves < *maxMoves {
		eng := white
		if game.Position().Turn() == chess.Black {
			eng = black
		}

		eng.SetPositionFEN(game.Position().String())
		best := eng.ThinkMoveTime(*moveTimeMs)

		mv, err := chess.UCINotation{}.Decode(game.Position(), (&best).String())
		if err != nil {
			fmt.Fprintf(os.Stderr, "engine produced illegal move %s: %v\n", (&best).String(), err)
			os.Exit(1)
		}
		if err := game.Move(mv); err != nil {
			fmt.Fprintf(os.Stderr, "move rejected: %v\n", err)
			os.Exit(1)
		}
		halfMoves++

		if !*quiet {
			tm.Clear()
			tm.MoveCursor(1, 1)
			tm.Println("game", gameID)
			tm.Println(game.Position().Board().Draw())
			tm.Printf("half-moves: %d  elapsed: %v\n", halfMoves, time.Since(start).Round(time.Second))
			tm.Flush()
		}
	}

	fmt.Println()
	fmt.Println("game", gameID, "finished:", game.Outcome(), game.Method())
	fmt.Println(game.String())
}
