package utils

import "time"

// Pacer limits work to once per interval inside a loop that ticks faster
type Pacer struct {
	interval time.Duration
	next     time.Time
}

func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Due reports whether a frame should run at now. The first call is always due.
// A pacer that has fallen behind skips the missed frames instead of bursting.
func (p *Pacer) Due(now time.Time) bool {
	if !p.next.IsZero() && now.Before(p.next) {
		return false
	}

	if p.next.IsZero() {
		p.next = now
	}
	p.next = p.next.Add(p.interval)
	if p.next.Before(now) {
		p.next = now.Add(p.interval)
	}
	return true
}
