package recovery_test

import (
	"context"
	"crypto/rand"
	"testing"
	"time"

	libhost "github.com/libp2p/go-libp2p/core/host"
	mocknet "github.com/libp2p/go-libp2p/p2p/net/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaynet/availability/availability"
	"github.com/relaynet/availability/availability/erasure"
	"github.com/relaynet/availability/availability/p2p/chunkex"
	"github.com/relaynet/availability/availability/recovery"
	"github.com/relaynet/availability/availability/session"
	"github.com/relaynet/availability/availability/store"
)

type chainRuntime struct {
	index availability.SessionIndex
	info  *availability.SessionInfo
}

func (c *chainRuntime) SessionIndex(context.Context, availability.Hash) (availability.SessionIndex, error) {
	return c.index, nil
}

func (c *chainRuntime) Session(_ context.Context, index availability.SessionIndex) (*availability.SessionInfo, error) {
	if index != c.index {
		return nil, session.ErrSessionNotFound
	}
	return c.info, nil
}

// TestRecovery_OverLibp2p recovers a candidate end to end: every validator
// runs a chunkex server over its own chunk store and the recovering node
// discovers them through the directory and fetches chunks over mock streams.
func TestRecovery_OverLibp2p(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	const validators = 5
	net, err := mocknet.FullMeshLinked(validators + 1)
	require.NoError(t, err)
	t.Cleanup(func() {
		net.Close() //nolint:errcheck
	})

	pov := make([]byte, 256)
	_, err = rand.Read(pov)
	require.NoError(t, err)
	data := &availability.AvailableData{
		PoV: pov,
		ValidationData: availability.PersistedValidationData{
			ParentHead:        []byte{1, 2, 3},
			RelayParentNumber: 42,
			MaxPoVSize:        1 << 20,
		},
	}

	var codec erasure.Codec
	chunks, root, err := codec.Encode(data, validators)
	require.NoError(t, err)

	receipt := availability.CandidateReceipt{
		Descriptor: availability.CandidateDescriptor{
			RelayParent: availability.NewHash([]byte("relay parent")),
			PoVHash:     availability.NewHash(pov),
			ErasureRoot: root,
		},
	}
	candidate := receipt.Hash()

	hosts := net.Hosts()
	recoverer := hosts[validators]

	info := &availability.SessionInfo{
		Validators:    make([]availability.ValidatorID, validators),
		DiscoveryKeys: make([]availability.AuthorityID, validators),
	}
	dir := session.NewDirectory(recoverer)
	t.Cleanup(dir.Close)

	for i := 0; i < validators; i++ {
		chunkStore, err := store.NewStore(store.DefaultCandidateCapacity)
		require.NoError(t, err)
		chunkStore.Put(candidate, chunks[i])

		srv, err := chunkex.NewServer(chunkex.DefaultParameters(), hosts[i], chunkStore)
		require.NoError(t, err)
		require.NoError(t, srv.Start(ctx))
		t.Cleanup(func() {
			srv.Stop(ctx) //nolint:errcheck
		})

		info.DiscoveryKeys[i][0] = byte(i + 1)
		dir.Add(info.DiscoveryKeys[i], *libhost.InfoFromHost(hosts[i]))
	}

	fetcher, err := chunkex.NewClient(chunkex.DefaultParameters(), recoverer)
	require.NoError(t, err)

	r, err := recovery.New(recovery.DefaultParameters(), &chainRuntime{index: 10, info: info}, dir, fetcher)
	require.NoError(t, err)
	require.NoError(t, r.Start(ctx))
	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
		defer stopCancel()
		r.Stop(stopCtx) //nolint:errcheck
	})

	recovered, err := r.Recover(ctx, receipt)
	require.NoError(t, err)
	assert.True(t, data.Equal(recovered))
}
