package clock

import "time"

// Backoff yields exponentially growing delays capped at Max.
type Backoff struct {
	Min time.Duration
	Max time.Duration

	attempt int
}

// Next returns the delay for the next retry and advances the attempt counter.
func (b *Backoff) Next() time.Duration {
	d := b.Min
	for i := 0; i < b.attempt && d < b.Max; i++ {
		d *= 2
	}
	if d > b.Max {
		d = b.Max
	}
	b.attempt++
	return d
}

// Reset starts the sequence over from Min.
func (b *Backoff) Reset() {
	b.attempt = 0
}
