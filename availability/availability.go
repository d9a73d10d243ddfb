// Package availability defines the primitive types shared by the availability
// recovery subsystem: candidate receipts, erasure chunks, session identities and
// the reconstructed available data itself.
package availability

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/celestiaorg/go-square/merkle"
)

// HashSize is the size in bytes of the hashes used across the subsystem.
const HashSize = sha256.Size

// Hash is a 32-byte digest used for relay block hashes, erasure roots and
// candidate hashes.
type Hash [HashSize]byte

// NewHash hashes the given bytes into a Hash.
func NewHash(data []byte) Hash {
	return sha256.Sum256(data)
}

// HashFromBytes converts a byte slice into a Hash.
func HashFromBytes(data []byte) (Hash, error) {
	var h Hash
	if len(data) != HashSize {
		return h, fmt.Errorf("invalid hash size: %d", len(data))
	}
	copy(h[:], data)
	return h, nil
}

func (h Hash) Bytes() []byte { return h[:] }

func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// IsZero reports whether the hash is all zeroes.
func (h Hash) IsZero() bool { return h == Hash{} }

// CandidateHash uniquely identifies a candidate and correlates all in-flight
// recovery work for it.
type CandidateHash Hash

func (ch CandidateHash) Bytes() []byte { return ch[:] }

func (ch CandidateHash) String() string { return Hash(ch).String() }

// ValidatorIndex is the index of a validator in the active validator set.
// Chunk indices are validator indices: validator i holds chunk i.
type ValidatorIndex uint32

// SessionIndex identifies a validator-set epoch.
type SessionIndex uint32

// ValidatorID is the session key of a validator.
type ValidatorID [32]byte

// AuthorityID is the discovery key a validator can be dialed with.
type AuthorityID [32]byte

func (id AuthorityID) String() string { return hex.EncodeToString(id[:]) }

// SessionInfo is the immutable snapshot of a session relevant to recovery:
// the ordered validator set and the matching discovery keys.
type SessionInfo struct {
	Validators    []ValidatorID
	DiscoveryKeys []AuthorityID
}

// CandidateDescriptor carries the commitments of a candidate. ErasureRoot is
// the merkle root over all erasure-coded chunks of the candidate's data.
type CandidateDescriptor struct {
	RelayParent Hash
	PoVHash     Hash
	ErasureRoot Hash
}

// CandidateReceipt identifies one unit of block data whose availability can be
// recovered. Immutable once received.
type CandidateReceipt struct {
	Descriptor CandidateDescriptor
}

// Hash returns the stable candidate hash used as correlation key for recovery
// and for chunk requests on the wire.
func (r CandidateReceipt) Hash() CandidateHash {
	h := sha256.New()
	h.Write(r.Descriptor.RelayParent[:])
	h.Write(r.Descriptor.PoVHash[:])
	h.Write(r.Descriptor.ErasureRoot[:])
	var ch CandidateHash
	copy(ch[:], h.Sum(nil))
	return ch
}

// PersistedValidationData is the validation data record recovered alongside
// the block data.
type PersistedValidationData struct {
	ParentHead             []byte
	RelayParentNumber      uint32
	RelayParentStorageRoot Hash
	MaxPoVSize             uint32
}

// Equal reports whether two validation data records are identical.
func (pvd *PersistedValidationData) Equal(other *PersistedValidationData) bool {
	return bytes.Equal(pvd.ParentHead, other.ParentHead) &&
		pvd.RelayParentNumber == other.RelayParentNumber &&
		pvd.RelayParentStorageRoot == other.RelayParentStorageRoot &&
		pvd.MaxPoVSize == other.MaxPoVSize
}

// AvailableData is the reconstructed payload of a candidate: the opaque block
// data blob plus its persisted validation data. It is produced only by a
// successful decode and is never partially constructed.
type AvailableData struct {
	PoV            []byte
	ValidationData PersistedValidationData
}

// Equal reports whether two payloads are identical.
func (ad *AvailableData) Equal(other *AvailableData) bool {
	if ad == nil || other == nil {
		return ad == other
	}
	return bytes.Equal(ad.PoV, other.PoV) && ad.ValidationData.Equal(&other.ValidationData)
}

// ErasureChunk is a single erasure-coded fragment of a candidate's available
// data, together with the proof of its inclusion under the erasure root.
type ErasureChunk struct {
	// Data is the erasure-coded shard.
	Data []byte
	// Index identifies which validator's chunk this is.
	Index ValidatorIndex
	// Proof proves inclusion of Data at Index under the erasure root.
	Proof *merkle.Proof
}
