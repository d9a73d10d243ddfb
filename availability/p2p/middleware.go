package p2p

import (
	"fmt"
	"sync/atomic"

	"github.com/libp2p/go-libp2p/core/network"
)

// Middleware bounds the number of streams a server handles concurrently.
type Middleware struct {
	// NumRateLimited is the number of requests that were rate limited. It is
	// reset to 0 every time it is read and observed into metrics.
	NumRateLimited atomic.Int64

	concurrencyLimit int64
	parallelRequests atomic.Int64
}

func NewMiddleware(concurrencyLimit int) *Middleware {
	return &Middleware{
		concurrencyLimit: int64(concurrencyLimit),
	}
}

// DrainCounter returns the current rate-limited count and resets it.
func (m *Middleware) DrainCounter() int64 {
	return m.NumRateLimited.Swap(0)
}

// RateLimitHandler closes inbound streams over the concurrency limit before
// they reach the handler.
func (m *Middleware) RateLimitHandler(handler network.StreamHandler) network.StreamHandler {
	return func(stream network.Stream) {
		current := m.parallelRequests.Add(1)
		defer m.parallelRequests.Add(-1)

		if current > m.concurrencyLimit {
			m.NumRateLimited.Add(1)
			log.Debug("concurrency limit reached")
			err := stream.Close()
			if err != nil {
				log.Debugw("server: closing stream", "err", err)
			}
			return
		}
		handler(stream)
	}
}

// RecoveryMiddleware recovers from panics in the handler so that a single
// malformed request cannot take the server down.
func RecoveryMiddleware(handler network.StreamHandler) network.StreamHandler {
	return func(stream network.Stream) {
		defer func() {
			r := recover()
			if r != nil {
				err := fmt.Errorf("PANIC while handling request: %s", r)
				log.Error(err)
			}
		}()
		handler(stream)
	}
}
