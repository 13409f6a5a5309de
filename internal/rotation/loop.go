package rotation

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"rotatemac/internal/command"
	"rotatemac/internal/macaddr"
)

// State is the loop's position in its lifecycle.
type State int32

const (
	Running State = iota
	WaitingForNextCycle
	TerminatedFatal
	TerminatedByCancellation
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case WaitingForNextCycle:
		return "waiting"
	case TerminatedFatal:
		return "terminated-fatal"
	case TerminatedByCancellation:
		return "terminated-cancelled"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Generator produces the next address to apply.
type Generator interface {
	Generate() macaddr.MacAddress
}

// Applier sets an address by running the given command.
type Applier interface {
	Apply(args []string) error
}

// Policy controls how failures are tolerated.
type Policy struct {
	// MaxFailures is compared against the failures recorded so far with a strict
	// greater-than before the new failure is recorded, so MaxFailures+1 failures are
	// tolerated and the next one is fatal.
	MaxFailures int
	// ResetOnSuccess clears recorded failures after every successful cycle. When false
	// failures accumulate over the whole run.
	ResetOnSuccess bool
}

// DefaultPolicy tolerates three failures over the lifetime of the process.
func DefaultPolicy() Policy {
	return Policy{MaxFailures: 3}
}

type Config struct {
	DeviceName   string
	CycleSeconds int
	Policy       Policy
}

type Option func(*Loop)

// WithSleep replaces the timer-based sleep.
func WithSleep(sleep SleepFunc) Option {
	return func(l *Loop) {
		l.sleep = sleep
	}
}

// WithJitterSource replaces the randomness used to vary cycle length.
func WithJitterSource(rng Float64Source) Option {
	return func(l *Loop) {
		l.jitter = rng
	}
}

// Loop rotates a device's MAC address until cancelled or until failures exceed the policy.
type Loop struct {
	cfg       Config
	generator Generator
	factory   command.Factory
	applier   Applier
	logger    *zap.Logger
	sleep     SleepFunc
	jitter    Float64Source

	state    atomic.Int32
	failures []error
}

func New(
	cfg Config,
	generator Generator,
	factory command.Factory,
	applier Applier,
	logger *zap.Logger,
	opts ...Option,
) *Loop {
	l := &Loop{
		cfg:       cfg,
		generator: generator,
		factory:   factory,
		applier:   applier,
		logger:    logger.With(zap.String("device", cfg.DeviceName)),
		sleep:     Sleep,
		jitter:    globalFloat64{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) State() State {
	return State(l.state.Load())
}

// Failures returns the number of failures currently recorded. Only meaningful once Run
// has returned.
func (l *Loop) Failures() int {
	return len(l.failures)
}

// Run rotates until ctx is cancelled, returning nil, or until the failure tolerance is
// exceeded, returning a *FatalError.
func (l *Loop) Run(ctx context.Context) error {
	if ctx.Err() != nil {
		return l.stop()
	}

	for {
		l.state.Store(int32(Running))
		if err := l.rotateOnce(); err != nil {
			l.state.Store(int32(TerminatedFatal))
			return err
		}

		duration := Jitter(l.jitter, l.cfg.CycleSeconds)
		l.logger.Info(fmt.Sprintf("Waiting for %d seconds until the next rotation", int64(duration.Seconds())))

		l.state.Store(int32(WaitingForNextCycle))
		if err := l.sleep(ctx, duration); err != nil {
			return l.stop()
		}
	}
}

func (l *Loop) stop() error {
	l.state.Store(int32(TerminatedByCancellation))
	l.logger.Info("Stopped MAC rotation")
	return nil
}

// rotateOnce performs a single generate-apply step. Only a tolerance breach is returned.
func (l *Loop) rotateOnce() error {
	mac := l.generator.Generate()
	args := l.factory.Build(l.cfg.DeviceName, mac.Address)

	err := l.applier.Apply(args)
	if err == nil {
		l.logger.Info(
			fmt.Sprintf("Set to MAC address %s of vendor %s", mac.Address, mac.Vendor),
			zap.String("address", mac.Address),
			zap.Stringer("vendor", mac.Vendor),
		)
		if l.cfg.Policy.ResetOnSuccess {
			l.failures = l.failures[:0]
		}
		return nil
	}

	remaining := l.cfg.Policy.MaxFailures - len(l.failures)
	l.logger.Error("An error occurred", zap.Error(err))
	if len(l.failures) > l.cfg.Policy.MaxFailures {
		return &FatalError{Failures: l.failures}
	}

	l.logger.Warn(fmt.Sprintf("The program will stop if %d more errors occur sequentially", remaining))
	l.failures = append(l.failures, err)
	return nil
}
