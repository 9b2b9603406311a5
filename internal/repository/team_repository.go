package repository

import (
	"context"
	"database/sql"
	"errors"
)

// TeamRepo provides read access to the teams table. Teams are catalog data
// owned by an excluded collaborator; the payment core only validates
// existence and ownership.
type TeamRepo struct {
	db *sql.DB
}

// NewTeamRepo returns a new TeamRepo bound to the provided database.
func NewTeamRepo(db *sql.DB) *TeamRepo { return &TeamRepo{db: db} }

// GetByID fetches one team. Returns ErrTeamNotFound when the row is absent.
func (r *TeamRepo) GetByID(ctx context.Context, id uint64) (*TeamRecord, error) {
	const q = `SELECT id, owner_id, name FROM teams WHERE id = ?`
	var t TeamRecord
	err := r.db.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.OwnerID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByOwner returns all teams owned by the given user. An owner with no
// teams gets an empty slice, which callers treat as "not an owner".
func (r *TeamRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]TeamRecord, error) {
	const q = `SELECT id, owner_id, name FROM teams WHERE owner_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var teams []TeamRecord
	for rows.Next() {
		var t TeamRecord
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Name); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

// TeamRecord is the persistence model for a team row.
type TeamRecord struct {
	ID      uint64 // teams.id
	OwnerID uint64 // teams.owner_id
	Name    string // teams.name
}

// InstructorRepo provides read access to the instructors table.
type InstructorRepo struct {
	db *sql.DB
}

// NewInstructorRepo returns a new InstructorRepo bound to the database.
func NewInstructorRepo(db *sql.DB) *InstructorRepo { return &InstructorRepo{db: db} }

// Exists reports whether an instructor row exists. Prepare only needs the
// existence check, not the profile.
func (r *InstructorRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	const q = `SELECT 1 FROM instructors WHERE id = ?`
	var one int
	err := r.db.QueryRowContext(ctx, q, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
