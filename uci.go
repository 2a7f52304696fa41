package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	dragon "github.com/Bubblyworld/dragontoothmg"

	"github.com/DeveloperPaul123/Chess-Challenge/engine"
)

func main() {
	uciLoop()
}

func uciLoop() {
	scanner := bufio.NewScanner(os.Stdin)
	eng := engine.NewEngine()

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Println("id name Chess-Challenge 0.1")
			fmt.Println("id author DeveloperPaul123")
			fmt.Println("option name Hash type spin default 64 min 1 max 1024")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			eng.NewGame()
		case "quit":
			return
		case "stop":
			eng.Stop()
		case "eval":
			fmt.Println("info string static eval", engine.Evaluate(eng.Board()))
		case "moveordering":
			eng.DumpRootMoveOrdering()
		case "cutstats":
			eng.DumpCutStats()
		case "go":
			handleGo(eng, line)
		case "position":
			handlePosition(eng, line)
		case "setoption":
			handleSetOption(eng, line)
		default:
			fmt.Println("info string Unknown command:", line)
		}
	}
}

func handleGo(eng *engine.Engine, line string) {
	goScanner := bufio.NewScanner(strings.NewReader(line))
	goScanner.Split(bufio.ScanWords)
	goScanner.Scan() // skip the first token

	var wTime, bTime, wInc, bInc int
	var moveTime, depthToUse int
	for goScanner.Scan() {
		nextToken := strings.ToLower(goScanner.Text())
		switch nextToken {
		case "infinite":
			continue
		case "wtime":
			wTime = scanInt(goScanner, nextToken)
		case "btime":
			bTime = scanInt(goScanner, nextToken)
		case "winc":
			wInc = scanInt(goScanner, nextToken)
		case "binc":
			bInc = scanInt(goScanner, nextToken)
		case "movetime":
			moveTime = scanInt(goScanner, nextToken)
		case "depth":
			depthToUse = scanInt(goScanner, nextToken)
		default:
			fmt.Println("info string Unknown go subcommand", nextToken)
			continue
		}
	}

	var bestMove dragon.Move
	switch {
	case depthToUse > 0:
		bestMove, _ = eng.ThinkDepth(int8(depthToUse))
	case moveTime > 0:
		bestMove = eng.ThinkMoveTime(moveTime)
	default:
		timeToUse := 300000
		incToUse := 0
		if eng.Board().Colortomove == dragon.White {
			if wTime > 0 {
				timeToUse = wTime
			}
			incToUse = wInc
		} else {
			if bTime > 0 {
				timeToUse = bTime
			}
			incToUse = bInc
		}
		bestMove = eng.Think(timeToUse, incToUse)
	}

	m := bestMove
	fmt.Println("bestmove", (&m).String())
}

func handlePosition(eng *engine.Engine, line string) {
	posScanner := bufio.NewScanner(strings.NewReader(line))
	posScanner.Split(bufio.ScanWords)
	posScanner.Scan() // skip the first token
	if !posScanner.Scan() {
		fmt.Println("info string Malformed position command")
		return
	}
	if strings.ToLower(posScanner.Text()) == "startpos" {
		eng.SetPositionFEN(dragon.Startpos)
		posScanner.Scan() // advance the scanner to leave it in a consistent state
	} else if strings.ToLower(posScanner.Text()) == "fen" {
		fenstr := ""
		for posScanner.Scan() && strings.ToLower(posScanner.Text()) != "moves" {
			fenstr += posScanner.Text() + " "
		}
		if fenstr == "" {
			fmt.Println("info string Invalid fen position")
			return
		}
		eng.SetPositionFEN(fenstr)
	} else {
		fmt.Println("info string Invalid position subcommand")
		return
	}
	if strings.ToLower(posScanner.Text()) != "moves" {
		return
	}
	for posScanner.Scan() { // for each move
		moveStr := strings.ToLower(posScanner.Text())
		found := false
		for _, mv := range eng.LegalMoves() {
			if (&mv).String() == moveStr {
				eng.PlayMove(mv)
				found = true
				break
			}
		}
		if !found {
			fmt.Println("info string Move", moveStr, "not legal in position", eng.Board().ToFen())
			return
		}
	}
}

func handleSetOption(eng *engine.Engine, line string) {
	// setoption name <name> value <value>
	tokens := strings.Fields(line)
	var name, value string
	for i := 0; i < len(tokens)-1; i++ {
		switch strings.ToLower(tokens[i]) {
		case "name":
			name = strings.ToLower(tokens[i+1])
		case "value":
			value = tokens[i+1]
		}
	}
	switch name {
	case "hash":
		mb, err := strconv.Atoi(value)
		if err != nil || mb < 1 {
			fmt.Println("info string Invalid Hash value", value)
			return
		}
		eng.SetHashSize(mb)
	default:
		fmt.Println("info string Unknown option", name)
	}
}

func scanInt(scanner *bufio.Scanner, option string) int {
	if !scanner.Scan() {
		fmt.Println("info string Malformed go command option", option)
		return 0
	}
	n, err := strconv.Atoi(scanner.Text())
	if err != nil {
		fmt.Println("info string Malformed go command option; could not convert", option)
		return 0
	}
	return n
}
