// Command corectl is a small terminal tool for exercising the core's
// FEN loader and move generator directly, without a search or a UCI
// command loop. Grounded on the teacher's own perft/perft.go main
// package, rebuilt on github.com/spf13/cobra the way erigontech/erigon
// wires its CLI subcommands.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tarraschchess/core/engine"
	"github.com/tarraschchess/core/internal/perft"
)

var debug bool

func main() {
	root := &cobra.Command{
		Use:   "corectl",
		Short: "exercise the chess core's FEN loader and move generator",
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "run Board.Verify() on the loaded position and abort on violation")

	root.AddCommand(newPerftCmd())
	root.AddCommand(newFenCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newPerftCmd() *cobra.Command {
	var fen string
	var maxDepth int
	var memoMB int

	cmd := &cobra.Command{
		Use:   "perft",
		Short: "count legal-move-tree leaves to a given depth",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadPosition(fen)
			if err != nil {
				return err
			}
			if debug {
				engine.MustVerify(&b)
			}

			var memo *perft.Memo
			if memoMB > 0 {
				memo = perft.NewMemo((memoMB << 20) / 64) // a memo entry is 64 bytes
			}

			fmt.Printf("depth        nodes   captures enpassant castles promotions   elapsed\n")
			for d := 1; d <= maxDepth; d++ {
				start := time.Now()
				r := perft.Count(b, d, memo)
				elapsed := time.Since(start)
				fmt.Printf("%6d %12d %10d %9d %7d %10d %9s\n",
					d, r.Nodes, r.Captures, r.EnPassant, r.Castles, r.Promotions, elapsed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fen, "fen", engine.StartFEN, "FEN to search, or the standard start position if omitted")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 5, "maximum depth to search")
	cmd.Flags().IntVar(&memoMB, "memo-mb", 0, "Zobrist memo table size in megabytes (0 disables memoization)")
	return cmd
}

func newFenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fen <fen-string>",
		Short: "load a FEN, print the parsed Board, and round-trip it back to FEN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadPosition(args[0])
			if err != nil {
				return err
			}
			if debug {
				engine.MustVerify(&b)
			}
			printBoard(&b)
			fmt.Printf("\nround-trip: %s\n", b.FEN())
			return nil
		},
	}
	return cmd
}

func loadPosition(fen string) (engine.Board, error) {
	if fen == "startpos" || fen == "" {
		return engine.StartPos(), nil
	}
	return engine.LoadFEN(fen)
}

func printBoard(b *engine.Board) {
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			fmt.Printf("%s ", b.PieceOn(engine.RankFile(rank, file)))
		}
		fmt.Println()
	}
	fmt.Println("   a b c d e f g h")
	fmt.Printf("side to move: %s  castling: %s  en passant: %s  halfmove: %d  key: %016x\n",
		b.SideToMove(), b.CastlingRights(), b.EnPassant(), b.HalfMoves(), b.Key())
}
