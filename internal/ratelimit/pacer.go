package ratelimit

import (
	"sync"
	"time"
)

// Pacer spaces successive checks at least interval apart. The first call
// to Wait returns immediately.
type Pacer struct {
	interval time.Duration
	mu       sync.Mutex
	last     time.Time
	sleep    func(time.Duration)
}

func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval, sleep: time.Sleep}
}

func (p *Pacer) Wait() {
	if p.interval <= 0 {
		return
	}

	p.mu.Lock()
	now := time.Now()
	if p.last.IsZero() || !now.Before(p.last.Add(p.interval)) {
		p.last = now
		p.mu.Unlock()
		return
	}
	next := p.last.Add(p.interval)
	p.last = next
	p.mu.Unlock()

	p.sleep(next.Sub(now))
}
