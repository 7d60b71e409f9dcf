package download

import (
	"context"
	"io"
	"sync"
	"time"
)

// progressWriter counts bytes passing through io.Copy and reports at most
// once per interval
type progressWriter struct {
	total    int64
	interval time.Duration
	report   func(done, total int64, bytesPerSec float64)

	mu       sync.Mutex
	done     int64
	started  time.Time
	lastSent time.Time
}

func newProgressWriter(total int64, interval time.Duration, report func(done, total int64, bytesPerSec float64)) *progressWriter {
	now := time.Now()
	return &progressWriter{
		total:    total,
		interval: interval,
		report:   report,
		started:  now,
		lastSent: now,
	}
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.mu.Lock()
	p.done += int64(len(b))
	now := time.Now()
	due := now.Sub(p.lastSent) >= p.interval
	if due {
		p.lastSent = now
	}
	done := p.done
	p.mu.Unlock()

	if due {
		p.report(done, p.total, p.rate(done, now))
	}
	return len(b), nil
}

// flush sends the final count regardless of the interval
func (p *progressWriter) flush() {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	p.report(done, p.total, p.rate(done, time.Now()))
}

func (p *progressWriter) rate(done int64, now time.Time) float64 {
	elapsed := now.Sub(p.started).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(done) / elapsed
}

// contextReader stops a copy once ctx is cancelled
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(b []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(b)
}

// percentOf returns done as a whole percentage of total, capped at 100
func percentOf(done, total int64) int {
	if total <= 0 {
		return 0
	}
	percent := int(done * 100 / total)
	if percent > 100 {
		percent = 100
	}
	return percent
}

// etaSeconds returns the remaining time at the current rate, -1 if unknown
func etaSeconds(done, total int64, bytesPerSec float64) int {
	if total <= 0 || bytesPerSec <= 0 || done >= total {
		return -1
	}
	return int(float64(total-done) / bytesPerSec)
}
