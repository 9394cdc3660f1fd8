package faults

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"
)

// ErrInjected is returned by the injector when a synthetic failure fires.
// Fixture repositories use it on status updates and bulk deletes to
// exercise caller error paths.
var ErrInjected = errors.New("injected backend failure")

// Injector simulates backend latency and failures in fixture mode. It is
// seeded so a given configuration reproduces the same failure sequence.
type Injector struct {
	mu          sync.Mutex
	rng         *rand.Rand
	minLatency  time.Duration
	maxLatency  time.Duration
	failureRate float64
}

func NewInjector(seed int64, minLatency, maxLatency time.Duration, failureRate float64) *Injector {
	return &Injector{
		rng:         rand.New(rand.NewSource(seed)),
		minLatency:  minLatency,
		maxLatency:  maxLatency,
		failureRate: failureRate,
	}
}

// Disabled returns an injector that never sleeps and never fails.
func Disabled() *Injector {
	return NewInjector(0, 0, 0, 0)
}

// Delay sleeps for a random duration within the configured range,
// returning early if the context is cancelled.
func (i *Injector) Delay(ctx context.Context) error {
	d := i.nextDelay()
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Fail reports a synthetic failure with the configured probability.
func (i *Injector) Fail() error {
	if i.failureRate <= 0 {
		return nil
	}
	i.mu.Lock()
	roll := i.rng.Float64()
	i.mu.Unlock()
	if roll < i.failureRate {
		return ErrInjected
	}
	return nil
}

func (i *Injector) nextDelay() time.Duration {
	if i.maxLatency <= 0 {
		return 0
	}
	if i.maxLatency == i.minLatency {
		return i.minLatency
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.minLatency + time.Duration(i.rng.Int63n(int64(i.maxLatency-i.minLatency)))
}
