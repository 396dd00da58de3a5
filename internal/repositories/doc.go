// Package repositories implements SQLite persistence for the local activity history.
//
// Each repository handles CRUD operations with atomic sequence generation for human-readable ordering.
// All repositories support soft deletes via deleted_at timestamps and exclude deleted records from queries by default.
//
// Key Implementations:
//   - [RoomVisitRepository] : Rooms hosted or joined from this client
//   - [SubmissionRepository] : Tracks submitted to room queues with their outcomes
//
// History lives entirely on this machine; nothing here talks to the backend.
package repositories
