package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridsolve/sudoku/internal/domain"
	"github.com/gridsolve/sudoku/internal/ports"
	"github.com/gridsolve/sudoku/internal/solver"
	"github.com/gridsolve/sudoku/internal/tui"
	"github.com/gridsolve/sudoku/internal/validator"
)

var (
	solveWatch bool
	solveDelay time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve a puzzle read from a file or stdin",
	Long: `Solves a puzzle given as nine rows of nine cells, where empty cells
are written as 0, '.', or '_'.

With --watch the search is rendered live in the terminal: yellow marks
the digit being tried, red marks a backtrack.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveWatch, "watch", false, "render the search live")
	solveCmd.Flags().DurationVar(&solveDelay, "delay", 0,
		"pause after each step when watching (e.g. 50ms); 0 uses the configured default")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	board, err := readBoard(args)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if ok, conflicts, _ := validator.New().Validate(ctx, board); !ok {
		for _, c := range conflicts {
			fmt.Printf("conflict at row %d, column %d\n", c.Row+1, c.Col+1)
		}
		return errors.New("the given clues conflict")
	}

	s := solver.NewHeuristicSolver()
	var out *domain.Board
	var stats ports.Stats

	if solveWatch {
		delay := solveDelay
		if delay == 0 {
			delay, _ = cfg.Delay()
		}
		out, stats, err = tui.Run(s, *board, delay)
	} else {
		out, stats, err = s.Solve(ctx, board)
	}
	if err != nil {
		if errors.Is(err, solver.ErrNotSolvable) {
			fmt.Println("no solution")
		}
		return err
	}
	fmt.Print(out.String())
	fmt.Printf("solved in %v (attempts=%d backtracks=%d)\n",
		stats.Duration.Round(time.Microsecond), stats.Attempts, stats.Backtracks)
	return nil
}
