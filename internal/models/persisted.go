package models

import (
	"fmt"
	"time"
)

// meta holds the lifecycle fields shared by all persistent entities.
type meta struct {
	id        string
	sequence  int
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

func newMeta(sequence int) meta {
	now := time.Now()
	return meta{sequence: sequence, createdAt: now, updatedAt: now}
}

func (m *meta) ID() string { return m.id }

func (m *meta) Sequence() int { return m.sequence }

func (m *meta) CreatedAt() time.Time { return m.createdAt }

func (m *meta) UpdatedAt() time.Time { return m.updatedAt }

func (m *meta) DeletedAt() *time.Time { return m.deletedAt }

func (m *meta) SetID(id string) { m.id = id }

func (m *meta) SetUpdatedAt(t time.Time) { m.updatedAt = t }

func (m *meta) SetDeletedAt(t *time.Time) { m.deletedAt = t }

func (m *meta) SetCreatedAt(t time.Time) { m.createdAt = t }

func (m *meta) SetSequence(sequence int) { m.sequence = sequence }

// RoomVisit is a persisted record of a room hosted or joined from this client.
type RoomVisit struct {
	meta
	roomID    string
	ownerName string
	role      Role
}

// NewRoomVisit creates a RoomVisit history record for the given room.
func NewRoomVisit(sequence int, room Room) *RoomVisit {
	return &RoomVisit{
		meta:      newMeta(sequence),
		roomID:    room.ID,
		ownerName: room.OwnerName,
		role:      room.Role,
	}
}

func (v *RoomVisit) RoomID() string { return v.roomID }

func (v *RoomVisit) OwnerName() string { return v.ownerName }

func (v *RoomVisit) Role() Role { return v.role }

// Validate checks that the visit references a room and a known role.
func (v *RoomVisit) Validate() error {
	if v.roomID == "" {
		return fmt.Errorf("room visit requires a room id")
	}
	if v.role != RoleHost && v.role != RoleGuest {
		return fmt.Errorf("unknown role: %s", v.role)
	}
	return nil
}

// Submission is a persisted record of a track submitted to a room's queue.
type Submission struct {
	meta
	roomID    string
	trackURI  string
	trackName string
	artist    string
	outcome   Outcome
}

// NewSubmission creates a Submission record from a queue submission result.
func NewSubmission(sequence int, roomID string, sub QueueSubmission) *Submission {
	return &Submission{
		meta:      newMeta(sequence),
		roomID:    roomID,
		trackURI:  sub.Track.URI,
		trackName: sub.Track.Name,
		artist:    sub.Track.Artist,
		outcome:   sub.Outcome,
	}
}

func (s *Submission) RoomID() string { return s.roomID }

func (s *Submission) TrackURI() string { return s.trackURI }

func (s *Submission) TrackName() string { return s.trackName }

func (s *Submission) Artist() string { return s.artist }

func (s *Submission) Outcome() Outcome { return s.outcome }

// Validate checks that the submission carries a room, a URI, and an outcome.
func (s *Submission) Validate() error {
	if s.roomID == "" {
		return fmt.Errorf("submission requires a room id")
	}
	if s.trackURI == "" {
		return fmt.Errorf("submission requires a track uri")
	}
	if s.outcome != OutcomeEnqueued && s.outcome != OutcomeNoActivePlayer {
		return fmt.Errorf("unknown outcome: %s", s.outcome)
	}
	return nil
}
