package session

import (
	"context"
	"sync"

	"github.com/gammazero/workerpool"
	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/network"
	"github.com/libp2p/go-libp2p/core/peer"

	"github.com/relaynet/availability/availability"
)

// defaultDialWorkers bounds how many validators are dialed in parallel.
const defaultDialWorkers = 16

// Connected notifies that a validator became reachable at a peer.
type Connected struct {
	AuthorityID availability.AuthorityID
	Peer        peer.ID
}

// Directory maps validator discovery keys to network addresses and
// establishes connections to them. The address registry is fed by whatever
// authority discovery mechanism the embedding node runs; the directory itself
// only dials. Safe for concurrent use.
type Directory struct {
	host host.Host
	pool *workerpool.WorkerPool

	mu    sync.RWMutex
	addrs map[availability.AuthorityID]peer.AddrInfo
}

// NewDirectory creates a Directory dialing through the given host.
func NewDirectory(host host.Host) *Directory {
	return &Directory{
		host:  host,
		pool:  workerpool.New(defaultDialWorkers),
		addrs: make(map[availability.AuthorityID]peer.AddrInfo),
	}
}

// Close stops the dial pool, waiting for in-flight dials to finish.
func (d *Directory) Close() {
	d.pool.StopWait()
}

// Add registers or updates the address of a validator.
func (d *Directory) Add(id availability.AuthorityID, addr peer.AddrInfo) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.addrs[id] = addr
}

// Resolve returns the registered address of a validator.
func (d *Directory) Resolve(id availability.AuthorityID) (peer.AddrInfo, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	addr, ok := d.addrs[id]
	return addr, ok
}

// ConnectToValidators dials the given validators in parallel and emits a
// Connected notification for each that becomes reachable, in arrival order.
// The returned channel is closed once every dial attempt has finished or the
// context ended. Validators with no known address or failed dials emit
// nothing.
func (d *Directory) ConnectToValidators(
	ctx context.Context,
	ids []availability.AuthorityID,
) <-chan Connected {
	out := make(chan Connected, len(ids))

	var wg sync.WaitGroup
	for _, id := range ids {
		addr, ok := d.Resolve(id)
		if !ok {
			log.Debugw("no known address for validator", "authority", id.String())
			continue
		}

		id := id
		wg.Add(1)
		d.pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			if err := d.connect(ctx, addr); err != nil {
				log.Debugw("connecting to validator",
					"authority", id.String(), "peer", addr.ID.String(), "err", err)
				return
			}
			select {
			case out <- Connected{AuthorityID: id, Peer: addr.ID}:
			case <-ctx.Done():
			}
		})
	}

	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func (d *Directory) connect(ctx context.Context, addr peer.AddrInfo) error {
	// reuse an existing connection when there is one
	if d.host.Network().Connectedness(addr.ID) == network.Connected {
		return nil
	}
	return d.host.Connect(ctx, addr)
}
