package tui

import "github.com/gridsolve/sudoku/internal/ports"

// ChannelSink bridges the solver's synchronous callback into the
// bubbletea event loop. The solver goroutine blocks on the channel
// when the renderer falls behind, which keeps events in delivery
// order without dropping any.
type ChannelSink struct {
	ch chan ports.Event
}

func NewChannelSink(buffer int) *ChannelSink {
	return &ChannelSink{ch: make(chan ports.Event, buffer)}
}

func (s *ChannelSink) Observe(e ports.Event) { s.ch <- e }

func (s *ChannelSink) Events() <-chan ports.Event { return s.ch }

// Close signals that no more events will arrive. Call only after the
// solve has returned.
func (s *ChannelSink) Close() { close(s.ch) }
