package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/skilodge/lesson-booking/internal/model"
)

// ErrUserNotFound is returned when the authenticated user has no row.
// Identity is issued upstream, so this points at a deleted account.
var ErrUserNotFound = errors.New("user not found")

// UserRepo provides read access to the users table. The payment core only
// needs names for gateway item descriptions.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo returns a new UserRepo bound to the provided database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// GetByID fetches one user. Returns ErrUserNotFound when the row is absent.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	const q = `SELECT id, name, role, created_at FROM users WHERE id = ?`
	var u model.User
	err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Name, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
