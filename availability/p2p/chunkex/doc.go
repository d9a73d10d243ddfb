// This package defines the protocol used to request individual erasure chunks
// of a candidate's available data from peers in the network.
//
// It is a request/response protocol: the client opens a stream to a chosen
// peer using the protocol ID "/{networkID}/avail/chunkex/v0.0.1", writes a
// single ChunkRequest carrying the candidate hash and the validator index of
// the wanted chunk, and reads back a single ChunkResponse with a status and,
// on success, the chunk together with its inclusion proof against the
// candidate's erasure root.
//
// The client deliberately does not verify the returned proof. Verification is
// the recovery task's job, since only it knows the erasure root the chunk must
// be checked against and owns the policy for misbehaving peers.
//
// # Usage
//
//	client, err := chunkex.NewClient(chunkex.DefaultParameters(), host)
//	chunk, err := client.RequestChunk(ctx, candidateHash, index, peer)
//
//	server, err := chunkex.NewServer(chunkex.DefaultParameters(), host, store)
//	err = server.Start(ctx)
//	defer server.Stop(ctx)
package chunkex
