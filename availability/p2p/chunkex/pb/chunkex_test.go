package pb

import (
	"bytes"
	"testing"

	"github.com/celestiaorg/go-libp2p-messenger/serde"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	availability_pb "github.com/relaynet/availability/availability/pb"
)

// the wire messages must satisfy serde.Message to go over streams
var (
	_ serde.Message = &ChunkRequest{}
	_ serde.Message = &ChunkResponse{}
)

func TestChunkRequest_SerdeRoundTrip(t *testing.T) {
	req := &ChunkRequest{
		CandidateHash: bytes.Repeat([]byte{0xab}, 32),
		Index:         3,
	}

	var buf bytes.Buffer
	_, err := serde.Write(&buf, req)
	require.NoError(t, err)

	got := new(ChunkRequest)
	_, err = serde.Read(&buf, got)
	require.NoError(t, err)
	assert.Equal(t, req.CandidateHash, got.CandidateHash)
	assert.EqualValues(t, req.Index, got.Index)
}

func TestChunkResponse_SerdeRoundTrip(t *testing.T) {
	resp := &ChunkResponse{
		Status: Status_OK,
		Chunk: &availability_pb.Chunk{
			Data:  []byte("shard"),
			Index: 3,
			Proof: &availability_pb.MerkleProof{
				Total:    5,
				Index:    3,
				LeafHash: bytes.Repeat([]byte{1}, 32),
				Aunts: [][]byte{
					bytes.Repeat([]byte{2}, 32),
					bytes.Repeat([]byte{3}, 32),
				},
			},
		},
	}

	var buf bytes.Buffer
	_, err := serde.Write(&buf, resp)
	require.NoError(t, err)

	got := new(ChunkResponse)
	_, err = serde.Read(&buf, got)
	require.NoError(t, err)
	assert.Equal(t, Status_OK, got.Status)
	require.NotNil(t, got.Chunk)
	assert.Equal(t, resp.Chunk.Data, got.Chunk.Data)
	assert.EqualValues(t, resp.Chunk.Index, got.Chunk.Index)
	require.NotNil(t, got.Chunk.Proof)
	assert.Equal(t, resp.Chunk.Proof.Total, got.Chunk.Proof.Total)
	assert.Equal(t, resp.Chunk.Proof.LeafHash, got.Chunk.Proof.LeafHash)
	assert.Equal(t, resp.Chunk.Proof.Aunts, got.Chunk.Proof.Aunts)

	// NOT_FOUND responses carry no chunk
	buf.Reset()
	_, err = serde.Write(&buf, &ChunkResponse{Status: Status_NOT_FOUND})
	require.NoError(t, err)
	got = new(ChunkResponse)
	_, err = serde.Read(&buf, got)
	require.NoError(t, err)
	assert.Equal(t, Status_NOT_FOUND, got.Status)
	assert.Nil(t, got.Chunk)
}
