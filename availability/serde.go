package availability

import (
	"errors"
	"fmt"

	"github.com/celestiaorg/go-square/merkle"
	"github.com/gogo/protobuf/proto"

	"github.com/relaynet/availability/availability/pb"
)

// ToProto converts the payload into its protobuf representation.
func (ad *AvailableData) ToProto() *pb.AvailableData {
	return &pb.AvailableData{
		Pov: ad.PoV,
		ValidationData: &pb.PersistedValidationData{
			ParentHead:             ad.ValidationData.ParentHead,
			RelayParentNumber:      ad.ValidationData.RelayParentNumber,
			RelayParentStorageRoot: ad.ValidationData.RelayParentStorageRoot.Bytes(),
			MaxPovSize:             ad.ValidationData.MaxPoVSize,
		},
	}
}

// AvailableDataFromProto converts the protobuf representation back into
// AvailableData.
func AvailableDataFromProto(adpb *pb.AvailableData) (*AvailableData, error) {
	vd := adpb.GetValidationData()
	if vd == nil {
		return nil, errors.New("available data without validation data")
	}
	root, err := HashFromBytes(vd.GetRelayParentStorageRoot())
	if err != nil {
		return nil, fmt.Errorf("invalid relay parent storage root: %w", err)
	}
	return &AvailableData{
		PoV: adpb.GetPov(),
		ValidationData: PersistedValidationData{
			ParentHead:             vd.GetParentHead(),
			RelayParentNumber:      vd.GetRelayParentNumber(),
			RelayParentStorageRoot: root,
			MaxPoVSize:             vd.GetMaxPovSize(),
		},
	}, nil
}

// MarshalBinary encodes the payload into its canonical byte representation,
// the one the erasure codec splits into chunks.
func (ad *AvailableData) MarshalBinary() ([]byte, error) {
	return proto.Marshal(ad.ToProto())
}

// UnmarshalBinary decodes a payload previously encoded with MarshalBinary.
func (ad *AvailableData) UnmarshalBinary(data []byte) error {
	var adpb pb.AvailableData
	if err := proto.Unmarshal(data, &adpb); err != nil {
		return err
	}
	decoded, err := AvailableDataFromProto(&adpb)
	if err != nil {
		return err
	}
	*ad = *decoded
	return nil
}

// ToProto converts the chunk into its protobuf representation.
func (c *ErasureChunk) ToProto() *pb.Chunk {
	chpb := &pb.Chunk{
		Data:  c.Data,
		Index: uint32(c.Index),
	}
	if c.Proof != nil {
		chpb.Proof = &pb.MerkleProof{
			Total:    c.Proof.Total,
			Index:    c.Proof.Index,
			LeafHash: c.Proof.LeafHash,
			Aunts:    c.Proof.Aunts,
		}
	}
	return chpb
}

// ChunkFromProto converts the protobuf representation back into an
// ErasureChunk.
func ChunkFromProto(chpb *pb.Chunk) (*ErasureChunk, error) {
	if chpb == nil {
		return nil, errors.New("nil chunk")
	}
	proof := chpb.GetProof()
	if proof == nil {
		return nil, errors.New("chunk without inclusion proof")
	}
	return &ErasureChunk{
		Data:  chpb.GetData(),
		Index: ValidatorIndex(chpb.GetIndex()),
		Proof: &merkle.Proof{
			Total:    proof.GetTotal(),
			Index:    proof.GetIndex(),
			LeafHash: proof.GetLeafHash(),
			Aunts:    proof.GetAunts(),
		},
	}, nil
}
