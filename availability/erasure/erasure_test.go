package erasure

import (
	"crypto/rand"
	"testing"

	"github.com/celestiaorg/go-square/merkle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaynet/availability/availability"
)

func randAvailableData(t *testing.T, povSize int) *availability.AvailableData {
	t.Helper()
	pov := make([]byte, povSize)
	_, err := rand.Read(pov)
	require.NoError(t, err)
	return &availability.AvailableData{
		PoV: pov,
		ValidationData: availability.PersistedValidationData{
			ParentHead:        []byte{7, 8, 9},
			RelayParentNumber: 5,
			MaxPoVSize:        1024,
		},
	}
}

func TestThreshold(t *testing.T) {
	var codec Codec
	tests := []struct{ n, want int }{
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{5, 2},
		{7, 3},
		{10, 4},
		{100, 34},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, codec.Threshold(tt.n))
	}
}

func TestEncode_ChunksVerifyAgainstRoot(t *testing.T) {
	var codec Codec
	data := randAvailableData(t, 256)

	chunks, root, err := codec.Encode(data, 5)
	require.NoError(t, err)
	require.Len(t, chunks, 5)

	for i, chunk := range chunks {
		assert.EqualValues(t, i, chunk.Index)
		assert.NoError(t, codec.VerifyChunk(chunk, root))
	}
}

func TestVerifyChunk_Rejects(t *testing.T) {
	var codec Codec
	data := randAvailableData(t, 128)

	chunks, root, err := codec.Encode(data, 5)
	require.NoError(t, err)

	t.Run("tampered data", func(t *testing.T) {
		bad := *chunks[0]
		bad.Data = append([]byte{0xff}, bad.Data[1:]...)
		assert.ErrorIs(t, codec.VerifyChunk(&bad, root), ErrBadProof)
	})

	t.Run("wrong index", func(t *testing.T) {
		bad := *chunks[0]
		bad.Index = 3
		assert.ErrorIs(t, codec.VerifyChunk(&bad, root), ErrBadProof)
	})

	t.Run("wrong root", func(t *testing.T) {
		assert.ErrorIs(t, codec.VerifyChunk(chunks[0], availability.NewHash([]byte("bogus"))), ErrBadProof)
	})

	t.Run("missing proof", func(t *testing.T) {
		bad := *chunks[0]
		bad.Proof = nil
		assert.ErrorIs(t, codec.VerifyChunk(&bad, root), ErrBadProof)
	})
}

// Any Threshold-sized subset of chunks must reproduce the original payload.
func TestDecode_RoundTrip(t *testing.T) {
	var codec Codec
	for _, total := range []int{1, 2, 3, 5, 10, 16} {
		data := randAvailableData(t, 333)
		chunks, _, err := codec.Encode(data, total)
		require.NoError(t, err)

		k := codec.Threshold(total)
		// parity-only tail subset, the hardest case
		subset := chunks[total-k:]
		decoded, err := codec.Decode(subset, total)
		require.NoError(t, err, "total=%d", total)
		assert.True(t, data.Equal(decoded), "total=%d", total)

		// and the systematic head subset
		decoded, err = codec.Decode(chunks[:k], total)
		require.NoError(t, err)
		assert.True(t, data.Equal(decoded))
	}
}

func TestDecode_NotEnoughChunks(t *testing.T) {
	var codec Codec
	data := randAvailableData(t, 64)

	chunks, _, err := codec.Encode(data, 10)
	require.NoError(t, err)

	k := codec.Threshold(10)
	_, err = codec.Decode(chunks[:k-1], 10)
	assert.ErrorIs(t, err, ErrNotEnoughChunks)

	// duplicates of the same index do not count twice
	dups := make([]*availability.ErasureChunk, 0, k)
	for i := 0; i < k; i++ {
		dups = append(dups, chunks[0])
	}
	_, err = codec.Decode(dups, 10)
	assert.ErrorIs(t, err, ErrNotEnoughChunks)
}

func TestDecode_InconsistentChunks(t *testing.T) {
	var codec Codec

	// a root committing to garbage shards: each chunk individually proves
	// against the root, but together they do not decode into a payload
	garbage := make([][]byte, 5)
	for i := range garbage {
		garbage[i] = make([]byte, 64)
		_, err := rand.Read(garbage[i])
		require.NoError(t, err)
	}
	chunks := garbageChunks(t, garbage)

	_, err := codec.Decode(chunks, 5)
	assert.ErrorIs(t, err, ErrInconsistentChunks)
}

func garbageChunks(t *testing.T, shards [][]byte) []*availability.ErasureChunk {
	t.Helper()
	_, proofs := merkle.ProofsFromByteSlices(shards)
	chunks := make([]*availability.ErasureChunk, len(shards))
	for i := range shards {
		chunks[i] = &availability.ErasureChunk{
			Data:  shards[i],
			Index: availability.ValidatorIndex(i),
			Proof: proofs[i],
		}
	}
	return chunks
}
