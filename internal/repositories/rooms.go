package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"auxroom/internal/models"
	"auxroom/internal/shared"
)

// RoomVisitRepository implements [models.Repository] for [models.RoomVisit] persistence.
type RoomVisitRepository struct {
	db *sql.DB
}

// NewRoomVisitRepository creates a new [RoomVisitRepository] with the given database connection
func NewRoomVisitRepository(db *sql.DB) *RoomVisitRepository {
	return &RoomVisitRepository{db: db}
}

// Create inserts a new room visit into the database with generated ID and sequence
func (r *RoomVisitRepository) Create(visit *models.RoomVisit) error {
	sequence, err := NextSequence(r.db, "rooms")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	visit.SetSequence(sequence)
	visit.SetID(shared.GenerateID())

	if err := visit.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO rooms (id, sequence, room_id, owner_name, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		visit.ID(),
		visit.Sequence(),
		visit.RoomID(),
		visit.OwnerName(),
		string(visit.Role()),
		visit.CreatedAt(),
		visit.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert room visit: %w", err)
	}

	return nil
}

// Get retrieves a room visit by ID, excluding soft-deleted records
func (r *RoomVisitRepository) Get(id string) (*models.RoomVisit, error) {
	query := `
		SELECT id, sequence, room_id, owner_name, role, created_at, updated_at, deleted_at
		FROM rooms
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByRoomID retrieves the most recent visit for a backend room identifier
func (r *RoomVisitRepository) GetByRoomID(roomID string) (*models.RoomVisit, error) {
	query := `
		SELECT id, sequence, room_id, owner_name, role, created_at, updated_at, deleted_at
		FROM rooms
		WHERE room_id = ? AND deleted_at IS NULL
		ORDER BY sequence DESC
		LIMIT 1
	`

	return r.scanOne(r.db.QueryRow(query, roomID))
}

// Update modifies an existing room visit in the database
func (r *RoomVisitRepository) Update(visit *models.RoomVisit) error {
	if err := visit.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	visit.SetUpdatedAt(now)

	query := `
		UPDATE rooms
		SET room_id = ?, owner_name = ?, role = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, visit.RoomID(), visit.OwnerName(), string(visit.Role()), now, visit.ID())
	if err != nil {
		return fmt.Errorf("failed to update room visit: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("room visit not found or already deleted: %s", visit.ID())
	}

	return nil
}

// Delete soft-deletes a room visit by ID
func (r *RoomVisitRepository) Delete(id string) error {
	query := `
		UPDATE rooms
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete room visit: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("room visit not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves room visits, newest first, optionally filtered by role
func (r *RoomVisitRepository) List(criteria map[string]any) ([]*models.RoomVisit, error) {
	query := `
		SELECT id, sequence, room_id, owner_name, role, created_at, updated_at, deleted_at
		FROM rooms
		WHERE deleted_at IS NULL
	`
	args := []any{}

	if role, ok := criteria["role"]; ok {
		query += " AND role = ?"
		args = append(args, role)
	}

	query += " ORDER BY sequence DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query room visits: %w", err)
	}
	defer rows.Close()

	var visits []*models.RoomVisit
	for rows.Next() {
		visit, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		visits = append(visits, visit)
	}

	return visits, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *RoomVisitRepository) scanOne(row *sql.Row) (*models.RoomVisit, error) {
	visit, err := r.scan(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("room visit not found")
	}
	return visit, err
}

func (r *RoomVisitRepository) scanRow(rows *sql.Rows) (*models.RoomVisit, error) {
	return r.scan(rows)
}

func (r *RoomVisitRepository) scan(row rowScanner) (*models.RoomVisit, error) {
	var (
		id        string
		sequence  int
		roomID    string
		ownerName string
		role      string
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	if err := row.Scan(&id, &sequence, &roomID, &ownerName, &role, &createdAt, &updatedAt, &deletedAt); err != nil {
		return nil, err
	}

	visit := models.NewRoomVisit(sequence, models.Room{
		ID:        roomID,
		OwnerName: ownerName,
		Role:      models.Role(role),
	})
	visit.SetID(id)
	visit.SetCreatedAt(createdAt)
	visit.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		visit.SetDeletedAt(&deletedAt.Time)
	}

	return visit, nil
}
