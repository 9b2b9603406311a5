package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/skilodge/lesson-booking/internal/model"
)

// PaymentRepo provides data access to the lesson_payment_breakdown and
// payments tables. Creation happens only inside the approve transaction;
// cancellation updates the charge tier in place and never deletes rows.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo returns a new PaymentRepo bound to the provided database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// CreateBreakdownTx inserts the one-to-one fee breakdown for a lesson.
func (r *PaymentRepo) CreateBreakdownTx(ctx context.Context, tx *sql.Tx, b *model.LessonPaymentBreakdown) error {
	const q = `INSERT INTO lesson_payment_breakdown (lesson_id, basic_fee, designated_fee, people_option_fee, level_option_fee)
	           VALUES (?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q, b.LessonID, b.BasicFee, b.DesignatedFee, b.PeopleOptionFee, b.LevelOptionFee)
	return err
}

// CreateTx inserts a payment row and sets p.ID from the generated key.
func (r *PaymentRepo) CreateTx(ctx context.Context, tx *sql.Tx, p *model.Payment) error {
	const q = `INSERT INTO payments (lesson_id, tid, total_amount, charge_id, payment_date) VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, p.LessonID, p.TID, p.TotalAmount, p.ChargeID,
		p.PaymentDate.UTC().Format("2006-01-02"))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// ByLessonID loads the payment settling the given lesson. Returns
// ErrPaymentNotFound when no row exists.
func (r *PaymentRepo) ByLessonID(ctx context.Context, lessonID uint64) (*model.Payment, error) {
	const q = `SELECT id, lesson_id, tid, total_amount, charge_id, DATE_FORMAT(payment_date, '%Y-%m-%d'), created_at
	           FROM payments WHERE lesson_id = ?`
	var p model.Payment
	var day string
	err := r.db.QueryRowContext(ctx, q, lessonID).
		Scan(&p.ID, &p.LessonID, &p.TID, &p.TotalAmount, &p.ChargeID, &day, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	p.PaymentDate, err = time.ParseInLocation("2006-01-02", day, time.UTC)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateChargeTierTx reassigns a payment's charge tier. Cancellation is a
// state change, not a row removal.
func (r *PaymentRepo) UpdateChargeTierTx(ctx context.Context, tx *sql.Tx, paymentID uint64, chargeID int) error {
	const q = `UPDATE payments SET charge_id = ? WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, chargeID, paymentID)
	return err
}

// OwnerPaymentTotal pairs a payment amount with the owner charge rate of
// its tier so balance math can apply the rate per payment.
type OwnerPaymentTotal struct {
	TotalAmount     int // payments.total_amount
	OwnerChargeRate int // charge_tiers.owner_charge_rate (percent)
}

// TotalsByOwner lists amount/rate pairs for every payment made against the
// owner's teams. The rate comes from each payment's current charge tier.
func (r *PaymentRepo) TotalsByOwner(ctx context.Context, ownerID uint64) ([]OwnerPaymentTotal, error) {
	const q = `
		SELECT p.total_amount, ct.owner_charge_rate
		FROM payments p
		JOIN lessons l       ON l.id = p.lesson_id
		JOIN teams t         ON t.id = l.team_id
		JOIN charge_tiers ct ON ct.id = p.charge_id
		WHERE t.owner_id = ?`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var totals []OwnerPaymentTotal
	for rows.Next() {
		var t OwnerPaymentTotal
		if err := rows.Scan(&t.TotalAmount, &t.OwnerChargeRate); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return totals, nil
}
