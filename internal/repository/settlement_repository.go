package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/skilodge/lesson-booking/internal/model"
)

// SettlementRepo provides read access to the settlements table. Withdrawal
// creation belongs to an excluded collaborator; the payment core only
// lists withdrawals and sums them for balance computation.
type SettlementRepo struct {
	db *sql.DB
}

// NewSettlementRepo returns a new SettlementRepo bound to the database.
func NewSettlementRepo(db *sql.DB) *SettlementRepo { return &SettlementRepo{db: db} }

// ListByOwner returns the owner's withdrawal history, newest first.
func (r *SettlementRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Settlement, error) {
	const q = `SELECT id, user_id, amount, created_at FROM settlements WHERE user_id = ? ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Settlement{}
	for rows.Next() {
		var s model.Settlement
		if err := rows.Scan(&s.ID, &s.UserID, &s.Amount, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SumByOwner returns the total amount the owner has already withdrawn.
func (r *SettlementRepo) SumByOwner(ctx context.Context, ownerID uint64) (int, error) {
	const q = `SELECT COALESCE(SUM(amount), 0) FROM settlements WHERE user_id = ?`
	var sum int
	if err := r.db.QueryRowContext(ctx, q, ownerID).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

// ChargeRepo provides read access to the charge_tiers reference table.
type ChargeRepo struct {
	db *sql.DB
}

// NewChargeRepo returns a new ChargeRepo bound to the provided database.
func NewChargeRepo(db *sql.DB) *ChargeRepo { return &ChargeRepo{db: db} }

// GetByID loads one charge tier. Returns ErrChargeTierNotFound when the
// tier is not seeded.
func (r *ChargeRepo) GetByID(ctx context.Context, id int) (*model.ChargeTier, error) {
	const q = `SELECT id, student_charge_rate, owner_charge_rate FROM charge_tiers WHERE id = ?`
	var t model.ChargeTier
	err := r.db.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.StudentChargeRate, &t.OwnerChargeRate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrChargeTierNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
