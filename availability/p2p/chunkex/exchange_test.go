package chunkex

import (
	"context"
	"sync"
	"testing"
	"time"

	libhost "github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/network"
	mocknet "github.com/libp2p/go-libp2p/p2p/net/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaynet/availability/availability"
	"github.com/relaynet/availability/availability/erasure"
	"github.com/relaynet/availability/availability/p2p"
	"github.com/relaynet/availability/availability/store"
)

func TestExchange_RequestChunk(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	chunkStore, client, server := makeExchange(t)
	require.NoError(t, server.Start(ctx))

	candidate, chunks, root := testData(t, 5)
	chunkStore.Put(candidate, chunks...)

	t.Run("chunk available", func(t *testing.T) {
		requested, err := client.RequestChunk(ctx, candidate, 2, server.host.ID())
		require.NoError(t, err)
		assert.Equal(t, chunks[2].Data, requested.Data)
		assert.EqualValues(t, 2, requested.Index)

		var codec erasure.Codec
		assert.NoError(t, codec.VerifyChunk(requested, root))
	})

	t.Run("chunk not found", func(t *testing.T) {
		unknown := availability.CandidateHash(availability.NewHash([]byte("unknown")))
		requested, err := client.RequestChunk(ctx, unknown, 0, server.host.ID())
		assert.ErrorIs(t, err, p2p.ErrNotFound)
		assert.Nil(t, requested)

		_, err = client.RequestChunk(ctx, candidate, 42, server.host.ID())
		assert.ErrorIs(t, err, p2p.ErrNotFound)
	})

	t.Run("concurrency limit", func(t *testing.T) {
		_, client, server := makeExchange(t)
		require.NoError(t, server.Start(ctx))

		ctx, cancel := context.WithTimeout(ctx, time.Second)
		t.Cleanup(cancel)

		rateLimit := 2
		wg := sync.WaitGroup{}
		wg.Add(rateLimit)

		// mockHandler blocks request handling on the server side until the test is over
		lock := make(chan struct{})
		defer close(lock)
		mockHandler := func(network.Stream) {
			wg.Done()
			select {
			case <-lock:
			case <-ctx.Done():
			}
		}
		middleware := p2p.NewMiddleware(rateLimit)
		server.host.SetStreamHandler(server.protocolID,
			middleware.RateLimitHandler(mockHandler))

		// take all server concurrency slots with blocked requests
		for i := 0; i < rateLimit; i++ {
			go func() {
				client.RequestChunk(ctx, candidate, 0, server.host.ID()) //nolint:errcheck
			}()
		}

		// wait until all server slots are taken
		wg.Wait()
		_, err := client.RequestChunk(ctx, candidate, 0, server.host.ID())
		require.ErrorIs(t, err, p2p.ErrRateLimited)
	})
}

func TestServer_StopBeforeStart(t *testing.T) {
	_, _, server := makeExchange(t)
	assert.NoError(t, server.Stop(context.Background()))
}

func createMocknet(t *testing.T, amount int) []libhost.Host {
	t.Helper()

	net, err := mocknet.FullMeshConnected(amount)
	require.NoError(t, err)
	t.Cleanup(func() { net.Close() })
	return net.Hosts()
}

func makeExchange(t *testing.T) (*store.Store, *Client, *Server) {
	t.Helper()
	chunkStore, err := store.NewStore(store.DefaultCandidateCapacity)
	require.NoError(t, err)
	hosts := createMocknet(t, 2)

	client, err := NewClient(DefaultParameters(), hosts[0])
	require.NoError(t, err)
	server, err := NewServer(DefaultParameters(), hosts[1], chunkStore)
	require.NoError(t, err)

	return chunkStore, client, server
}

func testData(t *testing.T, validators int) (availability.CandidateHash, []*availability.ErasureChunk, availability.Hash) {
	t.Helper()
	data := &availability.AvailableData{
		PoV: []byte("proof of validity"),
		ValidationData: availability.PersistedValidationData{
			ParentHead: []byte{1, 2, 3},
			MaxPoVSize: 1024,
		},
	}
	var codec erasure.Codec
	chunks, root, err := codec.Encode(data, validators)
	require.NoError(t, err)

	receipt := availability.CandidateReceipt{
		Descriptor: availability.CandidateDescriptor{ErasureRoot: root},
	}
	return receipt.Hash(), chunks, root
}
