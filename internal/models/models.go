// package models defines the data model for the aux listening-room client
package models

import (
	"time"
)

// Model defines the base interface for all persistent models in the aux client.
// Implementations include RoomVisit and Submission.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for data access operations.
// Implementations handle database interactions for specific model types.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model into the database
	Get(id string) (T, error)                  // Get retrieves a model by its ID
	Update(model T) error                      // Update modifies an existing model in the database
	Delete(id string) error                    // Delete removes a model from the database by its ID
	List(criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}

// Identity is the authenticated user identity exposed by the auth session.
//
// The access token is deliberately absent: it never crosses the auth boundary.
type Identity struct {
	UserID   string
	Username string
}

// Role distinguishes the room creator from joined guests.
type Role string

const (
	RoleHost  Role = "HOST"
	RoleGuest Role = "GUEST"
)

// Room represents the active listening room for this session.
type Room struct {
	ID        string
	OwnerName string
	Role      Role
}

// Track represents a song returned by search or top-tracks fetches.
//
// URI is the only field required for queue submission; the display fields
// are presentation data and must never be mutated by truncation.
type Track struct {
	ID          string
	URI         string
	Name        string
	Artist      string
	AlbumArtURL string
}

// Outcome is the result classification of a queue submission attempt.
type Outcome string

const (
	OutcomeEnqueued       Outcome = "ENQUEUED"
	OutcomeNoActivePlayer Outcome = "NO_ACTIVE_PLAYER"
)

// QueueSubmission records a single submission attempt and its outcome.
//
// Exactly one outcome per attempt, derived solely from the backend status.
type QueueSubmission struct {
	Track   Track
	Outcome Outcome
}
