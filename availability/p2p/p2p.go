// Package p2p provides the shared plumbing for the availability
// request/response protocols: typed errors, protocol ID construction,
// rate-limiting middleware and request metrics.
package p2p

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"
	"github.com/libp2p/go-libp2p/core/protocol"
)

var log = logging.Logger("avail/p2p")

// protocolPrefix is common to all availability protocols.
const protocolPrefix = "/avail/"

// ProtocolID creates a protocol ID string according to common format.
func ProtocolID(networkID, protocolName string) protocol.ID {
	return protocol.ID(fmt.Sprintf("/%s%s%s", networkID, protocolPrefix, protocolName))
}
