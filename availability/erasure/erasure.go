// Package erasure implements the chunk codec for available data: reed-solomon
// coding of the payload into one chunk per validator, a merkle commitment over
// all chunks and per-chunk inclusion proofs against it.
//
// For n validators the payload is split into Threshold(n) data shards extended
// with n-Threshold(n) parity shards, so that any Threshold(n) distinct chunks
// reconstruct the payload while up to (n-1)/3 validators are unavailable or
// faulty.
package erasure

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/celestiaorg/go-square/merkle"
	"github.com/klauspost/reedsolomon"

	"github.com/relaynet/availability/availability"
)

var (
	// ErrNotEnoughChunks is returned by Decode when fewer than Threshold
	// distinct chunks were supplied.
	ErrNotEnoughChunks = errors.New("erasure: not enough chunks to reconstruct")

	// ErrInconsistentChunks is returned by Decode when the supplied chunks do
	// not form a consistent codeword, i.e. the erasure root commits to data
	// that cannot be decoded.
	ErrInconsistentChunks = errors.New("erasure: chunks are inconsistent")

	// ErrBadProof is returned by VerifyChunk when the inclusion proof does not
	// verify against the erasure root.
	ErrBadProof = errors.New("erasure: chunk proof does not verify against root")
)

// lenPrefixSize is the size of the payload length header prepended before
// splitting, needed to strip shard padding after reconstruction.
const lenPrefixSize = 8

// Codec en/decodes available data to and from erasure chunks. It is stateless
// and safe for concurrent use.
type Codec struct{}

// Threshold returns the minimum number of distinct chunks required to decode
// a payload coded for total validators.
func (Codec) Threshold(total int) int {
	return (total-1)/3 + 1
}

// Encode erasure-codes the payload into one chunk per validator and returns
// the chunks together with the erasure root committing to them.
func (c Codec) Encode(data *availability.AvailableData, total int) ([]*availability.ErasureChunk, availability.Hash, error) {
	if total < 1 {
		return nil, availability.Hash{}, fmt.Errorf("erasure: invalid validator count %d", total)
	}

	payload, err := data.MarshalBinary()
	if err != nil {
		return nil, availability.Hash{}, fmt.Errorf("erasure: marshaling available data: %w", err)
	}

	buf := make([]byte, lenPrefixSize+len(payload))
	binary.BigEndian.PutUint64(buf, uint64(len(payload)))
	copy(buf[lenPrefixSize:], payload)

	k := c.Threshold(total)
	shardSize := (len(buf) + k - 1) / k
	shards := make([][]byte, total)
	for i := range shards {
		shards[i] = make([]byte, shardSize)
		if i < k {
			off := i * shardSize
			if off < len(buf) {
				copy(shards[i], buf[off:])
			}
		}
	}

	enc, err := reedsolomon.New(k, total-k)
	if err != nil {
		return nil, availability.Hash{}, fmt.Errorf("erasure: creating encoder: %w", err)
	}
	if err := enc.Encode(shards); err != nil {
		return nil, availability.Hash{}, fmt.Errorf("erasure: encoding shards: %w", err)
	}

	rootBytes, proofs := merkle.ProofsFromByteSlices(shards)
	root, err := availability.HashFromBytes(rootBytes)
	if err != nil {
		return nil, availability.Hash{}, err
	}

	chunks := make([]*availability.ErasureChunk, total)
	for i := range shards {
		chunks[i] = &availability.ErasureChunk{
			Data:  shards[i],
			Index: availability.ValidatorIndex(i),
			Proof: proofs[i],
		}
	}
	return chunks, root, nil
}

// VerifyChunk checks the chunk's inclusion proof against the erasure root.
// A chunk whose proof index disagrees with its chunk index is rejected.
func (Codec) VerifyChunk(chunk *availability.ErasureChunk, root availability.Hash) error {
	if chunk == nil || chunk.Proof == nil {
		return ErrBadProof
	}
	if chunk.Proof.Index != int64(chunk.Index) {
		return ErrBadProof
	}
	if err := chunk.Proof.Verify(root.Bytes(), chunk.Data); err != nil {
		return ErrBadProof
	}
	return nil
}

// Decode reconstructs the payload from at least Threshold(total) distinct
// chunks. Chunks are expected to have passed VerifyChunk already; Decode
// still fails with ErrInconsistentChunks when the verified chunks do not
// decode into a well-formed payload, which indicates an inconsistent erasure
// root rather than plain unavailability.
func (c Codec) Decode(chunks []*availability.ErasureChunk, total int) (*availability.AvailableData, error) {
	if total < 1 {
		return nil, fmt.Errorf("erasure: invalid validator count %d", total)
	}
	k := c.Threshold(total)

	shards := make([][]byte, total)
	have := 0
	shardSize := 0
	for _, chunk := range chunks {
		idx := int(chunk.Index)
		if idx >= total || shards[idx] != nil {
			continue
		}
		if shardSize == 0 {
			shardSize = len(chunk.Data)
		}
		if len(chunk.Data) != shardSize {
			return nil, ErrInconsistentChunks
		}
		shards[idx] = chunk.Data
		have++
	}
	if have < k {
		return nil, ErrNotEnoughChunks
	}

	enc, err := reedsolomon.New(k, total-k)
	if err != nil {
		return nil, fmt.Errorf("erasure: creating encoder: %w", err)
	}
	if err := enc.Reconstruct(shards); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInconsistentChunks, err)
	}
	// an over-determined set of shards may still disagree with the parity
	if ok, err := enc.Verify(shards); err != nil || !ok {
		return nil, ErrInconsistentChunks
	}

	buf := make([]byte, 0, k*shardSize)
	for i := 0; i < k; i++ {
		buf = append(buf, shards[i]...)
	}
	if len(buf) < lenPrefixSize {
		return nil, ErrInconsistentChunks
	}
	size := binary.BigEndian.Uint64(buf)
	if size > uint64(len(buf)-lenPrefixSize) {
		return nil, ErrInconsistentChunks
	}

	data := new(availability.AvailableData)
	if err := data.UnmarshalBinary(buf[lenPrefixSize : lenPrefixSize+size]); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInconsistentChunks, err)
	}
	return data, nil
}
