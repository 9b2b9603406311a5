package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/skilodge/lesson-booking/internal/model"
)

// Ledger is the orchestrator-facing facade over the durable repositories.
// It owns the transaction boundaries: the five-step persistence of an
// approved reservation and the tier reassignment of a cancellation each
// run as one unit, committed fully or not at all.
type Ledger struct {
	db          *sql.DB
	users       *UserRepo
	teams       *TeamRepo
	instructors *InstructorRepo
	lessons     *LessonRepo
	payments    *PaymentRepo
	settlements *SettlementRepo
	charges     *ChargeRepo
}

// NewLedger wires the repositories onto one database handle.
func NewLedger(db *sql.DB) *Ledger {
	return &Ledger{
		db:          db,
		users:       NewUserRepo(db),
		teams:       NewTeamRepo(db),
		instructors: NewInstructorRepo(db),
		lessons:     NewLessonRepo(db),
		payments:    NewPaymentRepo(db),
		settlements: NewSettlementRepo(db),
		charges:     NewChargeRepo(db),
	}
}

// UserByID loads the requesting user, mainly for item descriptions.
func (l *Ledger) UserByID(ctx context.Context, id uint64) (*model.User, error) {
	return l.users.GetByID(ctx, id)
}

// TeamByID validates team existence for prepare and history authorization.
func (l *Ledger) TeamByID(ctx context.Context, id uint64) (*TeamRecord, error) {
	return l.teams.GetByID(ctx, id)
}

// TeamsByOwner lists the teams an owner manages.
func (l *Ledger) TeamsByOwner(ctx context.Context, ownerID uint64) ([]TeamRecord, error) {
	return l.teams.ListByOwner(ctx, ownerID)
}

// InstructorExists reports whether a designated instructor exists.
func (l *Ledger) InstructorExists(ctx context.Context, id uint64) (bool, error) {
	return l.instructors.Exists(ctx, id)
}

// ApprovedReservation is the unit persisted when the gateway approves a
// prepared payment: the staged draft, its fee breakdown, the gateway
// transaction id and the approval date.
type ApprovedReservation struct {
	Draft       model.ReservationDraft
	Breakdown   model.LessonPaymentBreakdown
	TID         string
	PaymentDate time.Time
}

// SaveApproved persists an approved reservation atomically: lesson, lesson
// details, one roster entry per student, fee breakdown, then the payment
// row carrying the breakdown's total and the gateway tid. Any failure
// rolls the whole unit back so no orphan lesson can exist without its
// payment.
func (l *Ledger) SaveApproved(ctx context.Context, ar ApprovedReservation) (*model.Lesson, *model.Payment, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	lesson := &model.Lesson{
		TeamID:       ar.Draft.TeamID,
		InstructorID: ar.Draft.InstructorID,
		UserID:       ar.Draft.UserID,
		Status:       model.LessonStatusCreated,
	}
	if err := l.lessons.CreateTx(ctx, tx, lesson); err != nil {
		return nil, nil, err
	}

	details := &model.LessonDetails{
		LessonID:     lesson.ID,
		LessonDate:   ar.Draft.LessonDate,
		StartTime:    ar.Draft.StartTime,
		Duration:     ar.Draft.Duration,
		LessonType:   ar.Draft.LessonType,
		StudentCount: len(ar.Draft.Students),
	}
	if err := l.lessons.CreateDetailsTx(ctx, tx, details); err != nil {
		return nil, nil, err
	}

	roster := make([]model.StudentRosterEntry, 0, len(ar.Draft.Students))
	for _, s := range ar.Draft.Students {
		roster = append(roster, model.StudentRosterEntry{
			LessonID:   lesson.ID,
			Name:       s.Name,
			Height:     s.Height,
			Weight:     s.Weight,
			FootSize:   s.FootSize,
			Experience: s.Experience,
		})
	}
	if err := l.lessons.CreateRosterTx(ctx, tx, roster); err != nil {
		return nil, nil, err
	}

	breakdown := ar.Breakdown
	breakdown.LessonID = lesson.ID
	if err := l.payments.CreateBreakdownTx(ctx, tx, &breakdown); err != nil {
		return nil, nil, err
	}

	payment := &model.Payment{
		LessonID:    lesson.ID,
		TID:         ar.TID,
		TotalAmount: breakdown.Total(),
		ChargeID:    model.ChargeTierNone,
		PaymentDate: ar.PaymentDate,
	}
	if err := l.payments.CreateTx(ctx, tx, payment); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	committed = true
	return lesson, payment, nil
}

// DetailsByLessonID loads lesson schedule facts for cancellation.
func (l *Ledger) DetailsByLessonID(ctx context.Context, lessonID uint64) (*model.LessonDetails, error) {
	return l.lessons.DetailsByLessonID(ctx, lessonID)
}

// PaymentByLessonID loads the persisted payment for a lesson.
func (l *Ledger) PaymentByLessonID(ctx context.Context, lessonID uint64) (*model.Payment, error) {
	return l.payments.ByLessonID(ctx, lessonID)
}

// ChargeTierByID loads refund-rate reference data.
func (l *Ledger) ChargeTierByID(ctx context.Context, id int) (*model.ChargeTier, error) {
	return l.charges.GetByID(ctx, id)
}

// RecordCancellation reassigns the payment's charge tier and marks the
// lesson cancelled in one transaction. Rows are never deleted.
func (l *Ledger) RecordCancellation(ctx context.Context, paymentID, lessonID uint64, chargeID int) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := l.payments.UpdateChargeTierTx(ctx, tx, paymentID, chargeID); err != nil {
		return err
	}
	if err := l.lessons.MarkCancelledTx(ctx, tx, lessonID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// UserPaymentHistories lists the requesting user's own bookings.
func (l *Ledger) UserPaymentHistories(ctx context.Context, userID uint64) ([]PaymentHistory, error) {
	return l.lessons.UserPaymentHistories(ctx, userID)
}

// OwnerPaymentHistories lists payments across all of an owner's teams.
func (l *Ledger) OwnerPaymentHistories(ctx context.Context, ownerID uint64) ([]PaymentHistory, error) {
	return l.lessons.OwnerPaymentHistories(ctx, ownerID)
}

// TeamPaymentHistories lists payments for one team.
func (l *Ledger) TeamPaymentHistories(ctx context.Context, teamID uint64) ([]PaymentHistory, error) {
	return l.lessons.TeamPaymentHistories(ctx, teamID)
}

// WithdrawalsByOwner lists an owner's settlement history.
func (l *Ledger) WithdrawalsByOwner(ctx context.Context, ownerID uint64) ([]model.Settlement, error) {
	return l.settlements.ListByOwner(ctx, ownerID)
}

// PaymentTotalsByOwner lists amount/rate pairs for balance computation.
func (l *Ledger) PaymentTotalsByOwner(ctx context.Context, ownerID uint64) ([]OwnerPaymentTotal, error) {
	return l.payments.TotalsByOwner(ctx, ownerID)
}

// SettlementSumByOwner sums the owner's withdrawals.
func (l *Ledger) SettlementSumByOwner(ctx context.Context, ownerID uint64) (int, error) {
	return l.settlements.SumByOwner(ctx, ownerID)
}
