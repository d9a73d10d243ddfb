package chunkex

import (
	"fmt"
	"time"

	logging "github.com/ipfs/go-log/v2"
)

const protocolString = "chunkex/v0.0.1"

var log = logging.Logger("avail/chunkex")

// Option is the functional option that is applied to the chunkex protocol to
// configure its parameters.
type Option func(*Parameters)

// Parameters is the set of parameters that must be configured for the chunkex
// protocol.
type Parameters struct {
	// ServerReadTimeout sets the timeout for reading messages from the stream.
	ServerReadTimeout time.Duration

	// ServerWriteTimeout sets the timeout for writing messages to the stream.
	ServerWriteTimeout time.Duration

	// HandleRequestTimeout defines the deadline for handling a request.
	HandleRequestTimeout time.Duration

	// ConcurrencyLimit is the maximum number of concurrently handled streams.
	ConcurrencyLimit int

	// networkID is prepended to the protocolID and represents the network the
	// protocol is running on.
	networkID string
}

func DefaultParameters() *Parameters {
	return &Parameters{
		ServerReadTimeout:    5 * time.Second,
		ServerWriteTimeout:   10 * time.Second,
		HandleRequestTimeout: time.Minute,
		ConcurrencyLimit:     10,
	}
}

const errSuffix = "value should be positive and non-zero"

func (p *Parameters) Validate() error {
	if p.ServerReadTimeout <= 0 {
		return fmt.Errorf("invalid stream read timeout: %v, %s", p.ServerReadTimeout, errSuffix)
	}
	if p.ServerWriteTimeout <= 0 {
		return fmt.Errorf("invalid write timeout: %v, %s", p.ServerWriteTimeout, errSuffix)
	}
	if p.HandleRequestTimeout <= 0 {
		return fmt.Errorf("invalid handle request timeout: %v, %s", p.HandleRequestTimeout, errSuffix)
	}
	if p.ConcurrencyLimit <= 0 {
		return fmt.Errorf("invalid concurrency limit: %s", errSuffix)
	}
	return nil
}

// WithNetworkID is a functional option that configures the network the
// protocol runs on.
func WithNetworkID(networkID string) Option {
	return func(parameters *Parameters) {
		parameters.networkID = networkID
	}
}

// WithConcurrencyLimit is a functional option that configures the
// `ConcurrencyLimit` parameter.
func WithConcurrencyLimit(concurrencyLimit int) Option {
	return func(parameters *Parameters) {
		parameters.ConcurrencyLimit = concurrencyLimit
	}
}

// NetworkID returns the value of networkID stored in params.
func (p *Parameters) NetworkID() string {
	return p.networkID
}
