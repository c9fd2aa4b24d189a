package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"

	"chessmate/pkg/rules"
)

func main() {
	fen := flag.String("fen", rules.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "perft depth (required)")
	divide := flag.Bool("divide", false, "print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := rules.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	bold := color.New(color.Bold)
	moveColor := color.New(color.FgCyan)

	if *divide {
		div := rules.Divide(pos, *depth)
		moves := make([]rules.Move, 0, len(div))
		for m := range div {
			moves = append(moves, m)
		}
		sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })

		var sum uint64
		for _, m := range moves {
			moveColor.Printf("%s", m)
			fmt.Printf(": %d\n", div[m])
			sum += div[m]
		}
		bold.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := rules.Perft(pos, *depth)
	elapsed := time.Since(start)

	bold.Printf("perft(%d) = %d", *depth, nodes)
	fmt.Printf("  (%.3fs, %.0f nodes/s)\n", elapsed.Seconds(), float64(nodes)/elapsed.Seconds())
}
