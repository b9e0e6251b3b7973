package utils

import (
	"math/rand"
	"time"
)

// Backoff describes a retry schedule: MaxRetries counts the retries after
// the initial attempt, so a caller makes MaxRetries+1 tries in total.
type Backoff struct {
	Base       time.Duration
	MaxRetries int
}

func NewBackoff(base time.Duration, maxRetries int) Backoff {
	return Backoff{Base: base, MaxRetries: maxRetries}
}

// Delay devuelve backoff exponencial + jitter para el intento i (0-based).
// Un Backoff de valor cero nunca entra en pánico: espera cero.
func (b Backoff) Delay(i int) time.Duration {
	if b.Base <= 0 {
		return 0
	}
	d := b.Base * time.Duration(1<<i)
	return d + time.Duration(rand.Int63n(int64(b.Base)))
}
