package p2p

import (
	"context"
	"errors"
	"net"
	"time"
)

// ErrNotFound is returned when a peer does not hold the requested chunk.
var ErrNotFound = errors.New("the requested chunk is not found")

// ErrInvalidResponse is returned when a peer returns a malformed response or
// caused an internal error. The peer should not be retried.
var ErrInvalidResponse = errors.New("server returned an invalid response or caused an internal error")

// ErrRateLimited is returned when a peer closed the stream because it is
// serving too many requests already.
var ErrRateLimited = errors.New("server is overloaded and closed the stream")

// ExtractContextError returns the error if an underlying context error exists
// in the passed context or net.Error. This is needed because some net.Errors
// also mean the context deadline was exceeded, but yamux/mocknet do not unwrap
// to a context err.
func ExtractContextError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ctx.Err()
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		if deadline, _ := ctx.Deadline(); deadline.Before(time.Now()) {
			return context.DeadlineExceeded
		}
	}
	return nil
}
