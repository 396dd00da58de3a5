// Package services implements the core protocol of the aux listening-room client.
//
// # Components
//
// The package follows a leaf-first layering over a single HTTP transport:
//
//   - [Client] : raw HTTP access to the rooms backend, implements [Backend]
//   - [AuthSession] : OAuth authorization-code flow and the authenticated identity
//   - [RoomSession] : room lifecycle (create, join, close, existence probe)
//   - [QueueClient] : track search, top-track suggestions, queue submission
//   - [BuildShareURL] / [ParseShareURL] : deep-link construction for out-of-band sharing
//
// # Failure semantics
//
// Transport and parse failures never escape as raw errors: each component
// converts them to the sentinel errors in the shared package. Two conditions
// are expected outcomes rather than faults and are surfaced as values:
// a 404 on join ([shared.ErrRoomNotFound], so callers can render a specific
// message) and a 404 on queue submission ([models.OutcomeNoActivePlayer],
// meaning the host has no reachable playback device).
//
// # Concurrency
//
// All operations are safe for use from a single presentation loop that may
// have several requests in flight. Search responses carry a monotonically
// increasing sequence number so callers can discard results that raced a
// later query.
package services
