// Package monitor implements best-value tracking for a monitored
// training metric. A Monitor holds the best value of the metric seen
// so far and decides whether the current value is an improvement under
// a configured comparison mode.
package monitor

import (
	"log"
	"math"
	"strings"
)

// Mode determines the direction in which a monitored metric improves.
type Mode string

const (
	// Min treats smaller values as better (losses, errors)
	Min Mode = "min"

	// Max treats larger values as better (accuracies, F-measures)
	Max Mode = "max"

	// Auto infers the direction from the metric's name
	Auto Mode = "auto"
)

// Monitor tracks the running best value of a named metric. The best
// value only ever moves in the improving direction: non-increasing
// under Min, non-decreasing under Max.
type Monitor struct {
	metric string
	better func(current, best float64) bool
	best   float64
}

// New returns a Monitor for the named metric. An unknown mode logs a
// warning and falls back to Auto. Auto resolves once, here: metric
// names containing "acc" or starting with "fmeasure" are monitored
// under Max, all others under Min. The best value starts at threshold
// when one is given, otherwise at the worst possible value for the
// resolved mode.
func New(metric string, mode Mode, threshold *float64) *Monitor {
	switch mode {
	case Min, Max, Auto:
	default:
		log.Printf("monitor: mode %q is unknown, falling back to auto", mode)
		mode = Auto
	}

	if mode == Auto {
		if strings.Contains(metric, "acc") ||
			strings.HasPrefix(metric, "fmeasure") {
			mode = Max
		} else {
			mode = Min
		}
	}

	m := &Monitor{metric: metric}
	switch mode {
	case Max:
		m.better = func(current, best float64) bool { return current > best }
		m.best = math.Inf(-1)
	default:
		m.better = func(current, best float64) bool { return current < best }
		m.best = math.Inf(1)
	}

	if threshold != nil {
		m.best = *threshold
	}
	return m
}

// Metric returns the name of the monitored metric.
func (m *Monitor) Metric() string { return m.metric }

// Best returns the best value recorded so far.
func (m *Monitor) Best() float64 { return m.best }

// Improved reports whether current is strictly better than the best
// value recorded so far.
func (m *Monitor) Improved(current float64) bool {
	return m.better(current, m.best)
}

// Commit records current as the new best value. Callers must only
// commit values for which Improved returned true; committing anything
// else would move the best value against the monitored direction.
func (m *Monitor) Commit(current float64) {
	m.best = current
}
