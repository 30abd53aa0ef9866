package ui

import (
	"sync"
	"time"
)

const (
	// BlinkInterval is how long the cursor stays on, and then off.
	BlinkInterval = 500 * time.Millisecond
	// maxBlinkDuration stops blinking after this much inactivity so idle
	// editors do not keep the host redrawing.
	maxBlinkDuration = 10 * time.Second
)

// BlinkTimer drives a blinking cursor from the time since the last reset.
type BlinkTimer struct {
	mu    sync.Mutex
	start time.Time
	now   func() time.Time
}

func NewBlinkTimer() *BlinkTimer {
	return &BlinkTimer{start: time.Now(), now: time.Now}
}

// Reset restarts the cycle with the cursor on, after user activity.
func (b *BlinkTimer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.start = b.now()
}

// Visible reports whether the cursor is in the on phase.
func (b *BlinkTimer) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	elapsed := b.now().Sub(b.start)
	if elapsed >= maxBlinkDuration {
		return true
	}
	return elapsed%(2*BlinkInterval) < BlinkInterval
}

// Active reports whether the cursor is still blinking, i.e. whether a host
// needs to keep scheduling redraws.
func (b *BlinkTimer) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.now().Sub(b.start) < maxBlinkDuration
}
