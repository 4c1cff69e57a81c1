package qsat

import (
	"sync"
	"time"
)

/*
Metrics aggregates the outcome of a batch of solve attempts: how many ran,
how many came back satisfied, and how long the amplitude evolution took.
Safe for the concurrent recording done by RunEnsemble.
*/
type Metrics struct {
	mu sync.RWMutex

	Attempts      int64
	Satisfied     int64
	TotalDuration time.Duration
	MaxDuration   time.Duration
}

func newMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordSolve(start time.Time, satisfied bool) {
	duration := time.Since(start)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Attempts++
	if satisfied {
		m.Satisfied++
	}
	m.TotalDuration += duration
	if duration > m.MaxDuration {
		m.MaxDuration = duration
	}
}

// SatisfactionRate returns the fraction of attempts whose sampled
// assignment passed the classical check.
func (m *Metrics) SatisfactionRate() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Attempts == 0 {
		return 0
	}
	return float64(m.Satisfied) / float64(m.Attempts)
}

// ExportMetrics flattens the counters into a map for logging or display.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	avg := time.Duration(0)
	if m.Attempts > 0 {
		avg = m.TotalDuration / time.Duration(m.Attempts)
	}
	rate := 0.0
	if m.Attempts > 0 {
		rate = float64(m.Satisfied) / float64(m.Attempts)
	}
	return map[string]interface{}{
		"attempts":          m.Attempts,
		"satisfied":         m.Satisfied,
		"satisfaction_rate": rate,
		"avg_solve_ms":      avg.Milliseconds(),
		"max_solve_ms":      m.MaxDuration.Milliseconds(),
	}
}
