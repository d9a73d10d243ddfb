package chunkex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/network"
	"github.com/libp2p/go-libp2p/core/protocol"
	"go.uber.org/zap"

	"github.com/celestiaorg/go-libp2p-messenger/serde"

	"github.com/relaynet/availability/availability"
	"github.com/relaynet/availability/availability/p2p"
	pb "github.com/relaynet/availability/availability/p2p/chunkex/pb"
	"github.com/relaynet/availability/availability/store"
)

// Server answers chunk requests from the local chunk store over the chunkex
// protocol.
type Server struct {
	ctx    context.Context
	cancel context.CancelFunc

	host       host.Host
	protocolID protocol.ID

	store *store.Store

	params     *Parameters
	middleware *p2p.Middleware
	metrics    *p2p.Metrics
}

// NewServer creates a new chunkex server serving chunks from the given store.
func NewServer(params *Parameters, host host.Host, store *store.Store, opts ...Option) (*Server, error) {
	for _, opt := range opts {
		opt(params)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("chunkex: server creation failed: %w", err)
	}

	return &Server{
		host:       host,
		store:      store,
		protocolID: p2p.ProtocolID(params.NetworkID(), protocolString),
		params:     params,
		middleware: p2p.NewMiddleware(params.ConcurrencyLimit),
	}, nil
}

// WithServerMetrics initializes otel request metrics on the server.
func (s *Server) WithServerMetrics() error {
	metrics, err := p2p.InitServerMetrics("chunkex")
	if err != nil {
		return fmt.Errorf("chunkex: init server metrics: %w", err)
	}
	s.metrics = metrics
	return nil
}

func (s *Server) Start(context.Context) error {
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.host.SetStreamHandler(s.protocolID,
		p2p.RecoveryMiddleware(s.middleware.RateLimitHandler(s.handleStream)))
	return nil
}

func (s *Server) Stop(context.Context) error {
	if s.cancel == nil {
		return nil
	}
	defer s.cancel()
	s.host.RemoveStreamHandler(s.protocolID)
	return nil
}

func (s *Server) observeRateLimitedRequests() {
	numRateLimited := s.middleware.DrainCounter()
	if numRateLimited > 0 {
		s.metrics.ObserveRequests(context.Background(), numRateLimited, p2p.StatusRateLimited)
	}
}

func (s *Server) handleStream(stream network.Stream) {
	logger := log.With("peer", stream.Conn().RemotePeer().String())
	logger.Debug("server: handling chunk request")

	s.observeRateLimitedRequests()

	req, err := s.readRequest(logger, stream)
	if err != nil {
		logger.Warnw("server: reading request from stream", "err", err)
		stream.Reset() //nolint:errcheck
		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.params.HandleRequestTimeout)
	defer cancel()

	resp := &pb.ChunkResponse{}
	candidate, err := availability.HashFromBytes(req.CandidateHash)
	if err != nil {
		logger.Warnw("server: malformed candidate hash", "err", err)
		s.metrics.ObserveRequests(ctx, 1, p2p.StatusBadRequest)
		resp.Status = pb.Status_INVALID
	} else {
		logger = logger.With(
			"candidate", availability.CandidateHash(candidate).String(),
			"index", req.Index,
		)
		chunk, err := s.store.GetChunk(ctx,
			availability.CandidateHash(candidate),
			availability.ValidatorIndex(req.Index),
		)
		switch {
		case err == nil:
			resp.Status = pb.Status_OK
			resp.Chunk = chunk.ToProto()
		case errors.Is(err, store.ErrNotFound):
			logger.Debug("server: chunk not found")
			s.metrics.ObserveRequests(ctx, 1, p2p.StatusNotFound)
			resp.Status = pb.Status_NOT_FOUND
		default:
			logger.Errorw("server: get chunk", "err", err)
			s.metrics.ObserveRequests(ctx, 1, p2p.StatusInternalErr)
			resp.Status = pb.Status_INTERNAL
		}
	}

	if err := s.writeResponse(logger, resp, stream); err != nil {
		logger.Warnw("server: writing response to stream", "err", err)
		stream.Reset() //nolint:errcheck
		return
	}

	if resp.Status == pb.Status_OK {
		s.metrics.ObserveRequests(ctx, 1, p2p.StatusSuccess)
	}
	if err := stream.Close(); err != nil {
		logger.Debugw("server: closing stream", "err", err)
	}
}

func (s *Server) readRequest(logger *zap.SugaredLogger, stream network.Stream) (*pb.ChunkRequest, error) {
	err := stream.SetReadDeadline(time.Now().Add(s.params.ServerReadTimeout))
	if err != nil {
		logger.Debugw("server: set read deadline", "err", err)
	}

	req := new(pb.ChunkRequest)
	_, err = serde.Read(stream, req)
	if err != nil {
		return nil, err
	}
	err = stream.CloseRead()
	if err != nil {
		logger.Debugw("server: closing read", "err", err)
	}

	return req, nil
}

func (s *Server) writeResponse(logger *zap.SugaredLogger, resp *pb.ChunkResponse, stream network.Stream) error {
	err := stream.SetWriteDeadline(time.Now().Add(s.params.ServerWriteTimeout))
	if err != nil {
		logger.Debugw("server: set write deadline", "err", err)
	}

	_, err = serde.Write(stream, resp)
	return err
}
