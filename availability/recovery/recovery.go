package recovery

import (
	"context"
	"errors"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/libp2p/go-libp2p/core/peer"

	"github.com/relaynet/availability/availability"
	"github.com/relaynet/availability/availability/erasure"
	"github.com/relaynet/availability/availability/session"
)

var (
	// ErrUnavailable is returned when not enough validators supplied valid
	// chunks within the recovery deadline.
	ErrUnavailable = errors.New("recovery: available data is unavailable")

	// ErrInvalidErasureRoot is returned when enough individually-valid chunks
	// were collected but they do not decode into a payload, indicating the
	// erasure root itself is inconsistent with the data it commits to.
	ErrInvalidErasureRoot = errors.New("recovery: erasure root is invalid")
)

// Connector establishes connections to validators and notifies which became
// reachable.
type Connector interface {
	ConnectToValidators(ctx context.Context, ids []availability.AuthorityID) <-chan session.Connected
}

// Fetcher requests a single erasure chunk from a connected peer.
type Fetcher interface {
	RequestChunk(
		ctx context.Context,
		candidate availability.CandidateHash,
		index availability.ValidatorIndex,
		to peer.ID,
	) (*availability.ErasureChunk, error)
}

// Codec is the erasure-coding capability recovery consumes: the recovery
// threshold, per-chunk verification against the erasure root and the final
// decode. Abstracted so the state machine can be tested against a stub codec.
type Codec interface {
	Threshold(total int) int
	VerifyChunk(chunk *availability.ErasureChunk, root availability.Hash) error
	Decode(chunks []*availability.ErasureChunk, total int) (*availability.AvailableData, error)
}

// Recovery recovers the available data of candidates from erasure chunks held
// by validators. It is the long-lived coordinator: it deduplicates concurrent
// requests for the same candidate, spawns one recovery task per distinct
// candidate hash and caches session snapshots across tasks.
type Recovery struct {
	params *Parameters

	runtime   session.Runtime
	connector Connector
	fetcher   Fetcher
	codec     Codec

	sessions *lru.Cache[availability.SessionIndex, *availability.SessionInfo]

	ctx    context.Context
	cancel context.CancelFunc

	lk    sync.Mutex
	tasks map[availability.CandidateHash]*task
	wg    sync.WaitGroup

	metrics *Metrics
}

// New creates a new Recovery over the given chain runtime, validator
// connector and chunk fetcher. The erasure codec defaults to the production
// one.
func New(
	params *Parameters,
	runtime session.Runtime,
	connector Connector,
	fetcher Fetcher,
	opts ...Option,
) (*Recovery, error) {
	for _, opt := range opts {
		opt(params)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("recovery: creation failed: %w", err)
	}

	sessions, err := lru.New[availability.SessionIndex, *availability.SessionInfo](params.SessionCacheSize)
	if err != nil {
		return nil, fmt.Errorf("recovery: creating session cache: %w", err)
	}

	return &Recovery{
		params:    params,
		runtime:   runtime,
		connector: connector,
		fetcher:   fetcher,
		codec:     erasure.Codec{},
		sessions:  sessions,
		tasks:     make(map[availability.CandidateHash]*task),
	}, nil
}

// WithCodec substitutes the erasure codec capability. Must be called before
// Start.
func (r *Recovery) WithCodec(codec Codec) {
	r.codec = codec
}

// WithMetrics initializes otel metrics for recovery outcomes.
func (r *Recovery) WithMetrics() error {
	metrics, err := initMetrics()
	if err != nil {
		return fmt.Errorf("recovery: init metrics: %w", err)
	}
	r.metrics = metrics
	return nil
}

func (r *Recovery) Start(context.Context) error {
	r.ctx, r.cancel = context.WithCancel(context.Background())
	return nil
}

// Stop cancels all in-flight recovery tasks and waits for them to resolve.
// Waiters of cancelled tasks receive ErrUnavailable. Stop on a Recovery that
// was never started is a no-op.
func (r *Recovery) Stop(ctx context.Context) error {
	if r.ctx == nil {
		return nil
	}
	r.cancel()
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Recover recovers the available data committed to by the candidate's erasure
// root. If a recovery for the same candidate hash is already in flight, the
// call attaches to its outcome instead of starting a second one; no
// additional chunk requests hit the network. Every call receives exactly one
// outcome: the data, ErrUnavailable or ErrInvalidErasureRoot.
//
// Cancelling the passed context detaches this caller only; the recovery
// itself keeps running for any remaining waiters until its deadline.
func (r *Recovery) Recover(
	ctx context.Context,
	receipt availability.CandidateReceipt,
) (*availability.AvailableData, error) {
	if r.ctx == nil {
		return nil, errors.New("recovery: not started")
	}

	hash := receipt.Hash()

	r.lk.Lock()
	tk, ok := r.tasks[hash]
	if !ok {
		tk = newTask(r, receipt, hash)
		r.tasks[hash] = tk
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			tk.run(r.ctx)
			r.lk.Lock()
			delete(r.tasks, hash)
			r.lk.Unlock()
		}()
	}
	r.lk.Unlock()

	select {
	case <-tk.done:
		return tk.data, tk.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// sessionInfo returns the session snapshot for the index, fetching it from
// the runtime once and sharing it across tasks through the LRU cache.
func (r *Recovery) sessionInfo(
	ctx context.Context,
	index availability.SessionIndex,
) (*availability.SessionInfo, error) {
	if info, ok := r.sessions.Get(index); ok {
		return info, nil
	}
	info, err := r.runtime.Session(ctx, index)
	if err != nil {
		return nil, err
	}
	r.sessions.Add(index, info)
	return info, nil
}
