package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"auxroom/internal/models"
	"auxroom/internal/shared"
)

// SubmissionRepository implements [models.Repository] for [models.Submission] persistence.
type SubmissionRepository struct {
	db *sql.DB
}

// NewSubmissionRepository creates a new [SubmissionRepository] with the given database connection
func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts a new submission into the database with generated ID and sequence
func (r *SubmissionRepository) Create(sub *models.Submission) error {
	sequence, err := NextSequence(r.db, "submissions")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	sub.SetSequence(sequence)
	sub.SetID(shared.GenerateID())

	if err := sub.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO submissions (id, sequence, room_id, track_uri, track_name, artist, outcome, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		sub.ID(),
		sub.Sequence(),
		sub.RoomID(),
		sub.TrackURI(),
		sub.TrackName(),
		sub.Artist(),
		string(sub.Outcome()),
		sub.CreatedAt(),
		sub.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	return nil
}

// Get retrieves a submission by ID, excluding soft-deleted records
func (r *SubmissionRepository) Get(id string) (*models.Submission, error) {
	query := `
		SELECT id, sequence, room_id, track_uri, track_name, artist, outcome, created_at, updated_at, deleted_at
		FROM submissions
		WHERE id = ? AND deleted_at IS NULL
	`

	sub, err := r.scan(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("submission not found")
	}
	return sub, err
}

// Update modifies an existing submission in the database
func (r *SubmissionRepository) Update(sub *models.Submission) error {
	if err := sub.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	sub.SetUpdatedAt(now)

	query := `
		UPDATE submissions
		SET room_id = ?, track_uri = ?, track_name = ?, artist = ?, outcome = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		sub.RoomID(), sub.TrackURI(), sub.TrackName(), sub.Artist(), string(sub.Outcome()), now, sub.ID())
	if err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("submission not found or already deleted: %s", sub.ID())
	}

	return nil
}

// Delete soft-deletes a submission by ID
func (r *SubmissionRepository) Delete(id string) error {
	query := `
		UPDATE submissions
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("submission not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves submissions, newest first, optionally filtered by room_id or outcome
func (r *SubmissionRepository) List(criteria map[string]any) ([]*models.Submission, error) {
	query := `
		SELECT id, sequence, room_id, track_uri, track_name, artist, outcome, created_at, updated_at, deleted_at
		FROM submissions
		WHERE deleted_at IS NULL
	`
	args := []any{}

	if roomID, ok := criteria["room_id"]; ok {
		query += " AND room_id = ?"
		args = append(args, roomID)
	}
	if outcome, ok := criteria["outcome"]; ok {
		query += " AND outcome = ?"
		args = append(args, outcome)
	}

	query += " ORDER BY sequence DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var subs []*models.Submission
	for rows.Next() {
		sub, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

func (r *SubmissionRepository) scan(row rowScanner) (*models.Submission, error) {
	var (
		id        string
		sequence  int
		roomID    string
		trackURI  string
		trackName string
		artist    string
		outcome   string
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	if err := row.Scan(&id, &sequence, &roomID, &trackURI, &trackName, &artist, &outcome, &createdAt, &updatedAt, &deletedAt); err != nil {
		return nil, err
	}

	sub := models.NewSubmission(sequence, roomID, models.QueueSubmission{
		Track:   models.Track{URI: trackURI, Name: trackName, Artist: artist},
		Outcome: models.Outcome(outcome),
	})
	sub.SetID(id)
	sub.SetCreatedAt(createdAt)
	sub.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		sub.SetDeletedAt(&deletedAt.Time)
	}

	return sub, nil
}
