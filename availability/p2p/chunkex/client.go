package chunkex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/network"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/libp2p/go-libp2p/core/protocol"

	"github.com/celestiaorg/go-libp2p-messenger/serde"

	"github.com/relaynet/availability/availability"
	"github.com/relaynet/availability/availability/p2p"
	pb "github.com/relaynet/availability/availability/p2p/chunkex/pb"
)

// Client requests erasure chunks from peers over the chunkex protocol.
// It performs no chunk verification: proofs are checked by the recovery task
// against the candidate's erasure root.
type Client struct {
	params     *Parameters
	protocolID protocol.ID

	host    host.Host
	metrics *p2p.Metrics
}

// NewClient creates a new chunkex client.
func NewClient(params *Parameters, host host.Host, opts ...Option) (*Client, error) {
	for _, opt := range opts {
		opt(params)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("chunkex: client creation failed: %w", err)
	}

	return &Client{
		params:     params,
		host:       host,
		protocolID: p2p.ProtocolID(params.NetworkID(), protocolString),
	}, nil
}

// WithClientMetrics initializes otel request metrics on the client.
func (c *Client) WithClientMetrics() error {
	metrics, err := p2p.InitClientMetrics("chunkex")
	if err != nil {
		return fmt.Errorf("chunkex: init client metrics: %w", err)
	}
	c.metrics = metrics
	return nil
}

// RequestChunk requests the chunk with the given validator index for the
// candidate from the given peer. It returns p2p.ErrNotFound when the peer does
// not hold the chunk and p2p.ErrInvalidResponse when the peer misbehaved.
func (c *Client) RequestChunk(
	ctx context.Context,
	candidate availability.CandidateHash,
	index availability.ValidatorIndex,
	to peer.ID,
) (*availability.ErasureChunk, error) {
	chunk, err := c.doRequest(ctx, candidate, index, to)
	if err == nil {
		c.metrics.ObserveRequests(ctx, 1, p2p.StatusSuccess)
		return chunk, nil
	}
	if ctxErr := p2p.ExtractContextError(ctx, err); ctxErr != nil {
		c.metrics.ObserveRequests(ctx, 1, p2p.StatusTimeout)
		return nil, ctxErr
	}
	if errors.Is(err, p2p.ErrNotFound) {
		c.metrics.ObserveRequests(ctx, 1, p2p.StatusNotFound)
		return nil, err
	}

	c.metrics.ObserveRequests(ctx, 1, p2p.StatusInternalErr)
	log.Warnw("client: chunk request to peer failed",
		"peer", to.String(),
		"candidate", candidate.String(),
		"index", index,
		"err", err)
	return nil, err
}

func (c *Client) doRequest(
	ctx context.Context,
	candidate availability.CandidateHash,
	index availability.ValidatorIndex,
	to peer.ID,
) (*availability.ErasureChunk, error) {
	stream, err := c.host.NewStream(ctx, to, c.protocolID)
	if err != nil {
		return nil, fmt.Errorf("failed to open stream: %w", err)
	}
	defer stream.Close()

	c.setStreamDeadlines(ctx, stream)

	req := &pb.ChunkRequest{
		CandidateHash: candidate.Bytes(),
		Index:         uint32(index),
	}

	log.Debugw("client: requesting chunk",
		"candidate", candidate.String(), "index", index, "peer", to.String())
	_, err = serde.Write(stream, req)
	if err != nil {
		stream.Reset() //nolint:errcheck
		return nil, fmt.Errorf("failed to write request to stream: %w", err)
	}
	err = stream.CloseWrite()
	if err != nil {
		log.Debugw("client: error closing write", "err", err)
	}

	resp := new(pb.ChunkResponse)
	_, err = serde.Read(stream, resp)
	if err != nil {
		// server is overloaded and closed the stream
		if errors.Is(err, io.EOF) {
			return nil, p2p.ErrRateLimited
		}
		stream.Reset() //nolint:errcheck
		return nil, fmt.Errorf("failed to read response from stream: %w", err)
	}

	switch resp.Status {
	case pb.Status_OK:
		chunk, err := availability.ChunkFromProto(resp.Chunk)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", p2p.ErrInvalidResponse, err)
		}
		return chunk, nil
	case pb.Status_NOT_FOUND:
		return nil, p2p.ErrNotFound
	case pb.Status_INVALID:
		log.Debug("client: invalid request")
		fallthrough
	case pb.Status_INTERNAL:
		fallthrough
	default:
		return nil, p2p.ErrInvalidResponse
	}
}

func (c *Client) setStreamDeadlines(ctx context.Context, stream network.Stream) {
	// set read/write deadline to use context deadline if it exists
	if dl, ok := ctx.Deadline(); ok {
		err := stream.SetDeadline(dl)
		if err == nil {
			return
		}
		log.Debugw("client: setting deadline", "err", err)
	}

	// if deadline is not set, client read deadline defaults to server write deadline
	if c.params.ServerWriteTimeout != 0 {
		err := stream.SetReadDeadline(time.Now().Add(c.params.ServerWriteTimeout))
		if err != nil {
			log.Debugw("client: setting read deadline", "err", err)
		}
	}

	// if deadline is not set, client write deadline defaults to server read deadline
	if c.params.ServerReadTimeout != 0 {
		err := stream.SetWriteDeadline(time.Now().Add(c.params.ServerReadTimeout))
		if err != nil {
			log.Debugw("client: setting write deadline", "err", err)
		}
	}
}
