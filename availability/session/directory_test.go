package session

import (
	"context"
	"testing"
	"time"

	"github.com/libp2p/go-libp2p/core/peer"
	mocknet "github.com/libp2p/go-libp2p/p2p/net/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaynet/availability/availability"
)

func authorityID(b byte) availability.AuthorityID {
	var id availability.AuthorityID
	id[0] = b
	return id
}

func TestDirectory_ConnectToValidators(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	net, err := mocknet.FullMeshLinked(4)
	require.NoError(t, err)
	t.Cleanup(func() { net.Close() })
	hosts := net.Hosts()

	dir := NewDirectory(hosts[0])
	t.Cleanup(dir.Close)

	ids := make([]availability.AuthorityID, 0, 3)
	for i, h := range hosts[1:] {
		id := authorityID(byte(i + 1))
		dir.Add(id, peer.AddrInfo{ID: h.ID(), Addrs: h.Addrs()})
		ids = append(ids, id)
	}
	// one more validator nobody knows an address for
	ids = append(ids, authorityID(0xff))

	connected := make(map[availability.AuthorityID]peer.ID)
	for conn := range dir.ConnectToValidators(ctx, ids) {
		connected[conn.AuthorityID] = conn.Peer
	}

	require.Len(t, connected, 3)
	for i, h := range hosts[1:] {
		assert.Equal(t, h.ID(), connected[authorityID(byte(i+1))])
	}
}

func TestDirectory_Resolve(t *testing.T) {
	net, err := mocknet.FullMeshLinked(2)
	require.NoError(t, err)
	t.Cleanup(func() { net.Close() })
	hosts := net.Hosts()

	dir := NewDirectory(hosts[0])
	t.Cleanup(dir.Close)

	id := authorityID(1)
	_, ok := dir.Resolve(id)
	assert.False(t, ok)

	dir.Add(id, peer.AddrInfo{ID: hosts[1].ID()})
	addr, ok := dir.Resolve(id)
	require.True(t, ok)
	assert.Equal(t, hosts[1].ID(), addr.ID)
}
