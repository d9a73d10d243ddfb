package recovery

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("avail/recovery")

// Option is the functional option that is applied to Recovery to configure
// its parameters.
type Option func(*Parameters)

// Parameters is the set of parameters that must be configured for Recovery.
type Parameters struct {
	// RequestTimeout bounds a single chunk request round-trip.
	RequestTimeout time.Duration

	// RecoveryDeadline bounds the total wall-clock time spent recovering one
	// candidate. When it elapses before enough chunks were collected, the
	// recovery resolves ErrUnavailable.
	RecoveryDeadline time.Duration

	// FanOut is the number of chunk requests kept in flight concurrently for
	// a single candidate.
	FanOut int

	// SessionCacheSize bounds the cache of session snapshots shared by
	// recoveries of candidates within the same session.
	SessionCacheSize int

	clock clock.Clock
}

func DefaultParameters() *Parameters {
	return &Parameters{
		RequestTimeout:   3 * time.Second,
		RecoveryDeadline: time.Minute,
		FanOut:           4,
		SessionCacheSize: 16,
		clock:            clock.New(),
	}
}

const errSuffix = "value should be positive and non-zero"

func (p *Parameters) Validate() error {
	if p.RequestTimeout <= 0 {
		return fmt.Errorf("invalid request timeout: %v, %s", p.RequestTimeout, errSuffix)
	}
	if p.RecoveryDeadline <= 0 {
		return fmt.Errorf("invalid recovery deadline: %v, %s", p.RecoveryDeadline, errSuffix)
	}
	if p.FanOut <= 0 {
		return fmt.Errorf("invalid fan-out: %s", errSuffix)
	}
	if p.SessionCacheSize <= 0 {
		return fmt.Errorf("invalid session cache size: %s", errSuffix)
	}
	if p.clock == nil {
		return fmt.Errorf("invalid clock: value should not be nil")
	}
	return nil
}

// WithRequestTimeout is a functional option that configures the
// `RequestTimeout` parameter.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(parameters *Parameters) {
		parameters.RequestTimeout = timeout
	}
}

// WithRecoveryDeadline is a functional option that configures the
// `RecoveryDeadline` parameter.
func WithRecoveryDeadline(deadline time.Duration) Option {
	return func(parameters *Parameters) {
		parameters.RecoveryDeadline = deadline
	}
}

// WithFanOut is a functional option that configures the `FanOut` parameter.
func WithFanOut(fanOut int) Option {
	return func(parameters *Parameters) {
		parameters.FanOut = fanOut
	}
}

// WithClock is a functional option that substitutes the wall clock, used by
// tests to control timeouts.
func WithClock(clk clock.Clock) Option {
	return func(parameters *Parameters) {
		parameters.clock = clk
	}
}
