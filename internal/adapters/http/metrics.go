package httpadapter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sudoku_solve_total",
		Help: "Solve requests by outcome (solved, not_solvable, rejected).",
	}, []string{"outcome"})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sudoku_solve_duration_seconds",
		Help:    "Wall time of the backtracking search.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})

	generateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sudoku_generate_total",
		Help: "Generation requests by difficulty and outcome.",
	}, []string{"difficulty", "outcome"})

	streamEvents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sudoku_stream_events_total",
		Help: "Progress events delivered over websocket streams.",
	})
)
