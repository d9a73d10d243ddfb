// Package store keeps erasure chunks per candidate in memory so the node can
// answer chunk requests for candidates it holds data for. The store is
// LRU-bounded: recovery itself never persists anything, and chunks for old
// candidates are evicted as new ones arrive.
package store

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	logging "github.com/ipfs/go-log/v2"

	"github.com/relaynet/availability/availability"
)

var log = logging.Logger("avail/store")

// ErrNotFound is returned when the requested chunk is not in the store.
var ErrNotFound = errors.New("store: chunk not found")

// DefaultCandidateCapacity bounds the number of candidates chunks are kept for.
const DefaultCandidateCapacity = 512

// Store is an in-memory, LRU-bounded chunk store. Safe for concurrent use.
type Store struct {
	candidates *lru.Cache[availability.CandidateHash, map[availability.ValidatorIndex]*availability.ErasureChunk]
}

// NewStore creates a Store keeping chunks for at most capacity candidates.
func NewStore(capacity int) (*Store, error) {
	candidates, err := lru.New[availability.CandidateHash, map[availability.ValidatorIndex]*availability.ErasureChunk](capacity)
	if err != nil {
		return nil, fmt.Errorf("store: creating lru cache: %w", err)
	}
	return &Store{candidates: candidates}, nil
}

// Put stores the given chunks for the candidate, replacing any chunks with the
// same index stored earlier.
func (s *Store) Put(candidate availability.CandidateHash, chunks ...*availability.ErasureChunk) {
	held, ok := s.candidates.Get(candidate)
	if !ok {
		held = make(map[availability.ValidatorIndex]*availability.ErasureChunk, len(chunks))
	}
	for _, chunk := range chunks {
		held[chunk.Index] = chunk
	}
	if evicted := s.candidates.Add(candidate, held); evicted {
		log.Debugw("evicted chunks of oldest candidate", "candidate", candidate)
	}
}

// GetChunk returns the chunk with the given index held for the candidate.
func (s *Store) GetChunk(
	_ context.Context,
	candidate availability.CandidateHash,
	index availability.ValidatorIndex,
) (*availability.ErasureChunk, error) {
	held, ok := s.candidates.Get(candidate)
	if !ok {
		return nil, ErrNotFound
	}
	chunk, ok := held[index]
	if !ok {
		return nil, ErrNotFound
	}
	return chunk, nil
}

// Has reports whether any chunks are held for the candidate.
func (s *Store) Has(candidate availability.CandidateHash) bool {
	return s.candidates.Contains(candidate)
}
