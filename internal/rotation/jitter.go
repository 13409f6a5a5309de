package rotation

import (
	"context"
	"math"
	"math/rand/v2"
	"time"
)

// CycleVariance scales the uniform [-0.5, 0.5) delta, giving at most ±12.5% of the cycle.
const CycleVariance = 0.25

// MaxCycleSeconds is the longest cycle whose jittered duration still fits in a time.Duration.
const MaxCycleSeconds = math.MaxInt64 / 1_000_000_000 / 9 * 8

// Float64Source yields values in [0, 1). *rand.Rand from math/rand/v2 satisfies it.
type Float64Source interface {
	Float64() float64
}

type globalFloat64 struct{}

func (globalFloat64) Float64() float64 {
	return rand.Float64()
}

// Jitter varies seconds by a random fraction and rounds to whole seconds.
// Cycles above MaxCycleSeconds are treated as MaxCycleSeconds.
func Jitter(rng Float64Source, seconds int) time.Duration {
	delta := (rng.Float64() - 0.5) * CycleVariance
	s := float64(min(int64(seconds), MaxCycleSeconds))
	return time.Duration(math.Round(s+s*delta)) * time.Second
}

// SleepFunc blocks for d or until ctx is done, returning ctx's error in the latter case.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default SleepFunc, backed by a timer.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
