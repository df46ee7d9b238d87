// Package tui renders a live view of the backtracking search in the
// terminal. It is pure presentation: the solver knows nothing about it
// beyond the ProgressSink it is handed.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gridsolve/sudoku/internal/domain"
	"github.com/gridsolve/sudoku/internal/ports"
)

type eventMsg ports.Event

type doneMsg struct {
	board *domain.Board
	stats ports.Stats
	err   error
}

var (
	givenStyle     = lipgloss.NewStyle().Bold(true)
	tryingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	placedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	backtrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	frameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
)

type model struct {
	fixed      [9][9]bool
	grid       [9][9]uint8
	status     domain.SolveStatus
	cell       *domain.CellCoord
	attempts   int
	backtracks int
	sink       *ChannelSink
	done       <-chan doneMsg
	result     *doneMsg
}

// Run solves the board on a worker goroutine while the bubbletea loop
// renders the streamed events, and returns the final solve result.
func Run(s ports.Solver, b domain.Board, delay time.Duration) (*domain.Board, ports.Stats, error) {
	sink := NewChannelSink(16)
	done := make(chan doneMsg, 1)
	go func() {
		out, st, err := s.SolveStreaming(context.Background(), &b, sink, delay)
		sink.Close()
		done <- doneMsg{board: out, stats: st, err: err}
	}()

	m := model{fixed: b.Fixed, grid: b.Values, sink: sink, done: done}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, ports.Stats{}, err
	}
	fm := final.(model)
	if fm.result == nil {
		// user quit early; the search still runs to completion,
		// its result is simply discarded
		return nil, ports.Stats{}, fmt.Errorf("aborted")
	}
	return fm.result.board, fm.result.stats, fm.result.err
}

func (m model) Init() tea.Cmd { return m.wait() }

// wait drains the sink until it closes, then delivers the final result.
func (m model) wait() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.sink.Events(); ok {
			return eventMsg(ev)
		}
		return <-m.done
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.grid = msg.Grid
		m.status = msg.Status
		m.cell = msg.Cell
		m.attempts = msg.Attempts
		m.backtracks = msg.Backtracks
		return m, m.wait()
	case doneMsg:
		m.result = &msg
		if msg.board != nil {
			m.grid = msg.board.Values
		}
		m.attempts = msg.stats.Attempts
		m.backtracks = msg.stats.Backtracks
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("sudoku"))
	if m.status != "" {
		sb.WriteString("  " + string(m.status))
	}
	sb.WriteString(fmt.Sprintf("  attempts=%d backtracks=%d\n\n", m.attempts, m.backtracks))
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			sb.WriteString(frameStyle.Render("------+-------+------") + "\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				sb.WriteString(frameStyle.Render("| "))
			}
			sb.WriteString(m.renderCell(r, c))
		}
		sb.WriteByte('\n')
	}
	if m.result == nil {
		sb.WriteString("\nq to quit (the search keeps running)\n")
	}
	return sb.String()
}

func (m model) renderCell(r, c int) string {
	v := m.grid[r][c]
	text := ". "
	if v != 0 {
		text = fmt.Sprintf("%d ", v)
	}
	active := m.cell != nil && m.cell.Row == r && m.cell.Col == c
	switch {
	case active && m.status == domain.StatusTrying:
		return tryingStyle.Render(text)
	case active && m.status == domain.StatusBacktracking:
		return backtrackStyle.Render(text)
	case m.fixed[r][c]:
		return givenStyle.Render(text)
	case v != 0:
		return placedStyle.Render(text)
	default:
		return text
	}
}
