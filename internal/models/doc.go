// Package models defines domain entities and persistence interfaces for the aux listening-room client.
//
// The package contains two categories of types:
//
// 1. Session entities: in-memory state owned by the core services
//   - [Identity] : Authenticated user identity (host path only)
//   - [Room] : The active room with the caller's role
//   - [Track] : Song metadata produced by search or top-tracks fetches
//   - [QueueSubmission] : Result of a single queue submission attempt
//
// 2. Persistent entities: local history records with full lifecycle management
//   - [RoomVisit] : Rooms hosted or joined from this client
//   - [Submission] : Tracks submitted to a room's queue
//
// Persistent entities implement [Model] and are stored via [Repository] implementations.
package models
