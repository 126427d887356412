package index

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// ProgressTracker reports build progress through a logger. Build
// workers advance it concurrently, so the counter is atomic and
// reports carry whatever count was current when the interval was
// crossed.
type ProgressTracker struct {
	logger  *slog.Logger
	total   int64
	every   int64
	current atomic.Int64
	start   time.Time
}

// NewProgressTracker creates a tracker for total entries that logs
// every `every` entries. A nil logger falls back to slog.Default().
func NewProgressTracker(logger *slog.Logger, total, every int) *ProgressTracker {
	if logger == nil {
		logger = slog.Default()
	}
	if every < 1 {
		every = 1
	}
	return &ProgressTracker{
		logger: logger,
		total:  int64(total),
		every:  int64(every),
		start:  time.Now(),
	}
}

// Increment advances progress by delta entries and logs when a report
// interval is crossed.
func (p *ProgressTracker) Increment(delta int) {
	d := int64(delta)
	n := p.current.Add(d)
	if n == p.total || n/p.every != (n-d)/p.every {
		p.report(n)
	}
}

// Current returns the number of entries indexed so far.
func (p *ProgressTracker) Current() int {
	return int(p.current.Load())
}

// Elapsed returns the time since the tracker was created.
func (p *ProgressTracker) Elapsed() time.Duration {
	return time.Since(p.start)
}

// Finish logs a completion summary.
func (p *ProgressTracker) Finish() {
	p.logger.Info("indexing complete",
		"entries", p.current.Load(),
		"elapsed", time.Since(p.start).Round(time.Millisecond))
}

func (p *ProgressTracker) report(n int64) {
	percentage := 0.0
	if p.total > 0 {
		percentage = float64(n) / float64(p.total) * 100.0
	}
	p.logger.Info("indexing progress",
		"indexed", n,
		"total", p.total,
		"percent", percentage)
}
