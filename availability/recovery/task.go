package recovery

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/relaynet/availability/availability"
	"github.com/relaynet/availability/availability/session"
)

// task recovers the available data of a single candidate. It owns its state
// exclusively and resolves every waiter with exactly one outcome.
//
// The task walks through: session lookup -> connecting to the session's
// validators -> requesting chunks with bounded fan-out, verifying each
// against the erasure root -> decoding once the threshold is reached.
type task struct {
	r *Recovery

	receipt availability.CandidateReceipt
	hash    availability.CandidateHash

	// result, valid after done is closed
	data *availability.AvailableData
	err  error
	done chan struct{}
}

func newTask(r *Recovery, receipt availability.CandidateReceipt, hash availability.CandidateHash) *task {
	return &task{
		r:       r,
		receipt: receipt,
		hash:    hash,
		done:    make(chan struct{}),
	}
}

// run executes the recovery and resolves all waiters. Never called twice.
func (t *task) run(ctx context.Context) {
	start := t.r.params.clock.Now()
	t.data, t.err = t.recover(ctx)
	close(t.done)

	took := t.r.params.clock.Since(start)
	switch {
	case t.err == nil:
		log.Infow("available data recovered",
			"candidate", t.hash.String(), "took", took.String())
		t.r.metrics.observeRecovery(ctx, resultSuccess, took)
	case errors.Is(t.err, ErrInvalidErasureRoot):
		log.Warnw("candidate has an invalid erasure root",
			"candidate", t.hash.String(), "took", took.String())
		t.r.metrics.observeRecovery(ctx, resultInvalidRoot, took)
	default:
		log.Warnw("available data is unavailable",
			"candidate", t.hash.String(), "took", took.String())
		t.r.metrics.observeRecovery(ctx, resultUnavailable, took)
	}
}

func (t *task) recover(ctx context.Context) (*availability.AvailableData, error) {
	ctx, cancel := t.r.params.clock.WithTimeout(ctx, t.r.params.RecoveryDeadline)
	defer cancel()

	// session lookup: without validator identities no chunks can be requested
	index, err := t.r.runtime.SessionIndex(ctx, t.receipt.Descriptor.RelayParent)
	if err != nil {
		log.Warnw("session index lookup failed",
			"candidate", t.hash.String(),
			"relay_parent", t.receipt.Descriptor.RelayParent.String(),
			"err", err)
		return nil, ErrUnavailable
	}
	info, err := t.r.sessionInfo(ctx, index)
	if err != nil || info == nil {
		log.Warnw("session info lookup failed",
			"candidate", t.hash.String(), "session", index, "err", err)
		return nil, ErrUnavailable
	}

	total := len(info.Validators)
	if total == 0 {
		return nil, ErrUnavailable
	}
	threshold := t.r.codec.Threshold(total)
	root := t.receipt.Descriptor.ErasureRoot

	log.Debugw("requesting chunks",
		"candidate", t.hash.String(),
		"session", index,
		"validators", total,
		"threshold", threshold)

	// chunk index i belongs to the validator dialed with discovery key i
	keys := info.DiscoveryKeys
	if len(keys) > total {
		keys = keys[:total]
	}
	byAuthority := make(map[availability.AuthorityID]availability.ValidatorIndex, len(keys))
	for i, key := range keys {
		if _, ok := byAuthority[key]; !ok {
			byAuthority[key] = availability.ValidatorIndex(i)
		}
	}

	// connect in randomized order so load spreads across validators
	shuffled := make([]availability.AuthorityID, len(keys))
	copy(shuffled, keys)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	conns := t.r.connector.ConnectToValidators(ctx, shuffled)

	collected := newChunkSet(threshold)
	tried := make(map[availability.ValidatorIndex]bool, total)
	var wrks errgroup.Group
	wrks.SetLimit(t.r.params.FanOut)

	// pick validators in connection-arrival order, each tried at most once
	// for this candidate; a full fan-out window suspends the pickup until a
	// request finishes
loop:
	for {
		select {
		case conn, ok := <-conns:
			if !ok {
				break loop
			}
			idx, known := byAuthority[conn.AuthorityID]
			if !known || tried[idx] {
				continue
			}
			tried[idx] = true
			wrks.Go(func() error {
				t.fetch(ctx, conn, idx, root, collected)
				return nil
			})
		case <-collected.enough:
			break loop
		case <-ctx.Done():
			break loop
		}
	}
	wrks.Wait() //nolint:errcheck // workers never error

	chunks := collected.chunks()
	if len(chunks) < threshold {
		log.Debugw("ran out of validators before reaching threshold",
			"candidate", t.hash.String(),
			"collected", len(chunks),
			"threshold", threshold,
			"tried", len(tried))
		return nil, ErrUnavailable
	}

	data, err := t.r.codec.Decode(chunks, total)
	if err != nil {
		log.Warnw("decoding collected chunks failed",
			"candidate", t.hash.String(), "err", err)
		return nil, ErrInvalidErasureRoot
	}
	return data, nil
}

// fetch requests one chunk from a connected validator, verifies it against
// the erasure root and accumulates it. Transport failures, timeouts and
// invalid proofs all end the same way: the validator stays marked as tried
// and recovery moves on to the next one.
func (t *task) fetch(
	ctx context.Context,
	conn session.Connected,
	index availability.ValidatorIndex,
	root availability.Hash,
	collected *chunkSet,
) {
	if collected.full() {
		return
	}

	ctx, cancel := t.r.params.clock.WithTimeout(ctx, t.r.params.RequestTimeout)
	defer cancel()

	chunk, err := t.r.fetcher.RequestChunk(ctx, t.hash, index, conn.Peer)
	if err != nil {
		log.Debugw("chunk request failed",
			"candidate", t.hash.String(),
			"index", index,
			"peer", conn.Peer.String(),
			"err", err)
		return
	}

	if err := t.r.codec.VerifyChunk(chunk, root); err != nil {
		log.Warnw("discarding chunk that does not verify against the erasure root",
			"candidate", t.hash.String(),
			"index", chunk.Index,
			"peer", conn.Peer.String())
		return
	}
	collected.add(chunk)
}

// chunkSet accumulates verified chunks, deduplicates by index and signals
// once the decode threshold is reached.
type chunkSet struct {
	lk        sync.Mutex
	held      map[availability.ValidatorIndex]*availability.ErasureChunk
	threshold int
	signaled  bool
	enough    chan struct{}
}

func newChunkSet(threshold int) *chunkSet {
	return &chunkSet{
		held:      make(map[availability.ValidatorIndex]*availability.ErasureChunk, threshold),
		threshold: threshold,
		enough:    make(chan struct{}),
	}
}

func (cs *chunkSet) add(chunk *availability.ErasureChunk) {
	cs.lk.Lock()
	defer cs.lk.Unlock()
	if _, ok := cs.held[chunk.Index]; ok {
		return
	}
	cs.held[chunk.Index] = chunk
	if len(cs.held) >= cs.threshold && !cs.signaled {
		cs.signaled = true
		close(cs.enough)
	}
}

func (cs *chunkSet) full() bool {
	cs.lk.Lock()
	defer cs.lk.Unlock()
	return len(cs.held) >= cs.threshold
}

func (cs *chunkSet) chunks() []*availability.ErasureChunk {
	cs.lk.Lock()
	defer cs.lk.Unlock()
	chunks := make([]*availability.ErasureChunk, 0, len(cs.held))
	for _, chunk := range cs.held {
		chunks = append(chunks, chunk)
	}
	return chunks
}
