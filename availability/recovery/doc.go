// Package recovery implements availability recovery: reconstructing a
// candidate's available data from the erasure chunks distributed across the
// session's validators, when the node does not hold the data itself.
//
// Callers hand a candidate receipt to [Recovery.Recover] and get back either
// the reconstructed [availability.AvailableData] or a typed failure:
//
//   - [ErrUnavailable]: not enough validators supplied chunks that verify
//     against the receipt's erasure root before the recovery deadline;
//   - [ErrInvalidErasureRoot]: enough individually-valid chunks were
//     collected, but they do not decode into a payload, so the commitment
//     itself is inconsistent.
//
// One recovery task runs per distinct candidate hash at a time. Concurrent
// Recover calls for the same candidate attach to the in-flight task and
// receive the same outcome without duplicating any network traffic.
//
// A task looks up the session covering the candidate's relay parent,
// connects to the session's validators and requests chunks from them in
// connection-arrival order with a bounded fan-out window, one attempt per
// validator. Every received chunk is verified against the erasure root
// before it counts toward the reconstruction threshold; chunks that fail
// verification are discarded and recovery moves on, so a single corrupt or
// malicious peer cannot abort it. Recovery keeps no state beyond the
// in-flight request.
package recovery
