// Package session provides the validator directory side of availability
// recovery: chain session queries and dialing of validators by their
// discovery keys.
package session

import (
	"context"
	"errors"

	logging "github.com/ipfs/go-log/v2"

	"github.com/relaynet/availability/availability"
)

var log = logging.Logger("avail/session")

// ErrSessionNotFound is returned by Runtime implementations when no session
// info exists for the requested index.
var ErrSessionNotFound = errors.New("session: no session info for index")

// Runtime is the chain query boundary: it answers which session covers a
// relay block and what the validator set of a session is.
type Runtime interface {
	// SessionIndex returns the index of the session covering the given relay
	// parent.
	SessionIndex(ctx context.Context, relayParent availability.Hash) (availability.SessionIndex, error)
	// Session returns the immutable session snapshot for the given index, or
	// ErrSessionNotFound.
	Session(ctx context.Context, index availability.SessionIndex) (*availability.SessionInfo, error)
}
