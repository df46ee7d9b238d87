package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridsolve/sudoku/internal/solver"
	"github.com/gridsolve/sudoku/internal/validator"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Report whether a puzzle has no, one, or multiple solutions",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	board, err := readBoard(args)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if ok, _, _ := validator.New().Validate(ctx, board); !ok {
		return errors.New("the given clues conflict")
	}
	n, st, err := solver.NewHeuristicSolver().CountSolutions(ctx, board, 2)
	if err != nil {
		return err
	}
	switch n {
	case 0:
		fmt.Println("no solution")
	case 1:
		fmt.Println("unique solution")
	default:
		fmt.Println("multiple solutions")
	}
	fmt.Printf("(analyzed in %v)\n", st.Duration.Round(time.Microsecond))
	return nil
}
