package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaynet/availability/availability"
)

func TestStore_PutGet(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(DefaultCandidateCapacity)
	require.NoError(t, err)

	candidate := availability.CandidateHash(availability.NewHash([]byte("candidate")))
	chunk := &availability.ErasureChunk{Data: []byte("shard"), Index: 3}
	s.Put(candidate, chunk)

	got, err := s.GetChunk(ctx, candidate, 3)
	require.NoError(t, err)
	assert.Equal(t, chunk, got)

	_, err = s.GetChunk(ctx, candidate, 4)
	assert.ErrorIs(t, err, ErrNotFound)

	other := availability.CandidateHash(availability.NewHash([]byte("other")))
	_, err = s.GetChunk(ctx, other, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_EvictsOldestCandidate(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(2)
	require.NoError(t, err)

	first := availability.CandidateHash(availability.NewHash([]byte("first")))
	second := availability.CandidateHash(availability.NewHash([]byte("second")))
	third := availability.CandidateHash(availability.NewHash([]byte("third")))

	s.Put(first, &availability.ErasureChunk{Index: 0})
	s.Put(second, &availability.ErasureChunk{Index: 0})
	s.Put(third, &availability.ErasureChunk{Index: 0})

	assert.False(t, s.Has(first))
	assert.True(t, s.Has(second))
	assert.True(t, s.Has(third))

	_, err = s.GetChunk(ctx, first, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}
