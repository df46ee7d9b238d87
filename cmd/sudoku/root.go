package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridsolve/sudoku/internal/config"
	"github.com/gridsolve/sudoku/internal/domain"
	"github.com/gridsolve/sudoku/internal/infrastructure/storage"
	"github.com/gridsolve/sudoku/internal/ports"
)

var (
	cfgPath string
	cfg     config.Config
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve, generate, and analyze 9x9 Sudoku puzzles",
	Long: `A Sudoku engine built on constraint-propagation-guided backtracking.

The solver picks cells by structural impact, orders digits by how rare
they are among the cell's peers, and cascades forced placements after
every guess. The generator carves cells out of a random full solution
and keeps only grids that still solve.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		}))
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"path to YAML config file (defaults apply when omitted)")
}

// readBoard loads a board from the file named by args[0], or from
// stdin when no argument (or "-") is given.
func readBoard(args []string) (*domain.Board, error) {
	var data []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, err
	}
	return domain.ParseBoard(string(data))
}

// newStorage builds the configured puzzle store. The returned closer
// is a no-op for the filesystem backend.
func newStorage(cfg config.Config) (ports.Storage, func() error, error) {
	switch cfg.Storage.Backend {
	case "badger":
		st, err := storage.NewBadger(storage.BadgerConfig{Path: cfg.Storage.Path})
		if err != nil {
			return nil, nil, fmt.Errorf("open badger store: %w", err)
		}
		return st, st.Close, nil
	default:
		return storage.NewFS(cfg.Storage.Path), func() error { return nil }, nil
	}
}
