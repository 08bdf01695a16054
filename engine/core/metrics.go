package core

import (
	"sync"
	"time"
)

// StageMetric records how many entities a pipeline stage produced and how
// long it took.
type StageMetric struct {
	Stage   string
	Count   int
	Elapsed time.Duration
}

// Metrics collects stage metrics for a single generation run.
type Metrics struct {
	mu     sync.Mutex
	stages []StageMetric
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) Record(stage string, count int, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stages = append(m.stages, StageMetric{Stage: stage, Count: count, Elapsed: elapsed})
}

// Stages returns a copy of the recorded metrics in recording order.
func (m *Metrics) Stages() []StageMetric {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]StageMetric, len(m.stages))
	copy(out, m.stages)
	return out
}

// Total returns the summed elapsed time of all stages.
func (m *Metrics) Total() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total time.Duration
	for _, s := range m.stages {
		total += s.Elapsed
	}
	return total
}
