package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/skilodge/lesson-booking/internal/gateway"
	"github.com/skilodge/lesson-booking/internal/model"
	"github.com/skilodge/lesson-booking/internal/queue"
	"github.com/skilodge/lesson-booking/internal/repository"
	"github.com/skilodge/lesson-booking/internal/store"
)

//go:generate mockgen -source=payment_service.go -destination=mocks/mocks.go -package=mocks

// Gateway is the protocol adapter for the external payment gateway.
type Gateway interface {
	Prepare(ctx context.Context, req gateway.PrepareRequest) (*gateway.PrepareResponse, error)
	Approve(ctx context.Context, req gateway.ApproveRequest) (*gateway.ApproveResponse, error)
	Cancel(ctx context.Context, req gateway.CancelRequest) (*gateway.CancelResponse, error)
}

// PendingStore stages payment contexts between prepare and approve, keyed
// by the gateway transaction id.
type PendingStore interface {
	Put(ctx context.Context, p store.PendingPayment) error
	Claim(ctx context.Context, tid string) (*store.PendingPayment, error)
	Restore(ctx context.Context, p store.PendingPayment) error
}

// Ledger is the durable persistence surface the orchestrator depends on.
type Ledger interface {
	UserByID(ctx context.Context, id uint64) (*model.User, error)
	TeamByID(ctx context.Context, id uint64) (*repository.TeamRecord, error)
	TeamsByOwner(ctx context.Context, ownerID uint64) ([]repository.TeamRecord, error)
	InstructorExists(ctx context.Context, id uint64) (bool, error)
	SaveApproved(ctx context.Context, ar repository.ApprovedReservation) (*model.Lesson, *model.Payment, error)
	DetailsByLessonID(ctx context.Context, lessonID uint64) (*model.LessonDetails, error)
	PaymentByLessonID(ctx context.Context, lessonID uint64) (*model.Payment, error)
	ChargeTierByID(ctx context.Context, id int) (*model.ChargeTier, error)
	RecordCancellation(ctx context.Context, paymentID, lessonID uint64, chargeID int) error
	UserPaymentHistories(ctx context.Context, userID uint64) ([]repository.PaymentHistory, error)
	OwnerPaymentHistories(ctx context.Context, ownerID uint64) ([]repository.PaymentHistory, error)
	TeamPaymentHistories(ctx context.Context, teamID uint64) ([]repository.PaymentHistory, error)
	WithdrawalsByOwner(ctx context.Context, ownerID uint64) ([]model.Settlement, error)
	PaymentTotalsByOwner(ctx context.Context, ownerID uint64) ([]repository.OwnerPaymentTotal, error)
	SettlementSumByOwner(ctx context.Context, ownerID uint64) (int, error)
}

// Events publishes payment lifecycle events to the broker. Delivery is
// best-effort; a publish failure never fails the payment itself.
type Events interface {
	PaymentApproved(ctx context.Context, ev queue.PaymentApprovedEvent) error
	PaymentUnconfirmed(ctx context.Context, ev queue.PaymentUnconfirmedEvent) error
	PaymentCancelled(ctx context.Context, ev queue.PaymentCancelledEvent) error
}

// PaymentService orchestrates the prepare/approve/cancel protocol and the
// history/balance projections that depend on it. It holds no per-request
// state; every operation takes the authenticated user id explicitly.
type PaymentService struct {
	gw      Gateway
	pending PendingStore
	ledger  Ledger
	events  Events
	now     func() time.Time
}

// NewPaymentService wires the orchestrator. events may be nil when no
// broker is configured.
func NewPaymentService(gw Gateway, pending PendingStore, ledger Ledger, events Events) *PaymentService {
	if gw == nil || pending == nil || ledger == nil {
		panic("nil dependency passed to NewPaymentService")
	}
	return &PaymentService{gw: gw, pending: pending, ledger: ledger, events: events, now: time.Now}
}

// Prepare validates the reservation draft, quotes the total to the gateway
// and stages the full payment context under the returned transaction id.
// It performs one external call and one cache write; never a durable
// write, so a failed or abandoned prepare leaves the ledger untouched and
// the operation is safe to retry.
func (s *PaymentService) Prepare(ctx context.Context, userID uint64, draft model.ReservationDraft) (*gateway.PrepareResponse, error) {
	team, err := s.ledger.TeamByID(ctx, draft.TeamID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrTeamNotFound)
	}
	if draft.InstructorID != nil {
		ok, err := s.ledger.InstructorExists(ctx, *draft.InstructorID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: instructor %d", ErrNotFound, *draft.InstructorID)
		}
	}
	user, err := s.ledger.UserByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrUserNotFound)
	}

	total := draft.TotalFee()
	itemName := fmt.Sprintf("%s lesson, booked by %s for %d student(s)", team.Name, user.Name, len(draft.Students))

	resp, err := s.gw.Prepare(ctx, gateway.PrepareRequest{
		PartnerOrderID: orderRef(userID, s.now()),
		PartnerUserID:  strconv.FormatUint(userID, 10),
		ItemName:       itemName,
		TotalAmount:    total,
		TaxFreeAmount:  0,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}

	p := store.PendingPayment{
		TID:       resp.TID,
		Draft:     draft,
		Breakdown: draft.Breakdown(),
		ItemName:  itemName,
	}
	if err := s.pending.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return resp, nil
}

// Approve consumes the pending context for tid, persists the reservation
// as one atomic unit and finalizes the transaction with the gateway.
// A tid without a pending context (expired, already consumed, or forged)
// fails with ErrNotFound before anything is written. A gateway failure
// after the durable commit is surfaced as ErrApprovedUnconfirmed and a
// reconciliation event is emitted; retrying would double-charge.
func (s *PaymentService) Approve(ctx context.Context, userID uint64, tid, pgToken string) (*gateway.ApproveResponse, error) {
	p, err := s.pending.Claim(ctx, tid)
	if err != nil {
		return nil, notFoundOr(err, store.ErrPendingNotFound)
	}

	lesson, payment, err := s.ledger.SaveApproved(ctx, repository.ApprovedReservation{
		Draft:       p.Draft,
		Breakdown:   p.Breakdown,
		TID:         p.TID,
		PaymentDate: s.now(),
	})
	if err != nil {
		// Put the context back so the client can retry within the TTL.
		if rerr := s.pending.Restore(ctx, *p); rerr != nil {
			log.Printf("payment: restore pending %s failed: %v", tid, rerr)
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	resp, err := s.gw.Approve(ctx, gateway.ApproveRequest{
		TID:            tid,
		PartnerOrderID: strconv.FormatUint(lesson.ID, 10),
		PartnerUserID:  strconv.FormatUint(userID, 10),
		PGToken:        pgToken,
	})
	if err != nil {
		s.publishUnconfirmed(ctx, lesson, payment, userID, err)
		return nil, fmt.Errorf("%w: lesson %d, payment %d: %w", ErrApprovedUnconfirmed, lesson.ID, payment.ID, err)
	}

	if s.events != nil {
		ev := queue.PaymentApprovedEvent{
			LessonID:    lesson.ID,
			PaymentID:   payment.ID,
			UserID:      p.Draft.UserID,
			TeamID:      lesson.TeamID,
			TID:         tid,
			TotalAmount: payment.TotalAmount,
			ApprovedAt:  s.now().UTC().Format(time.RFC3339),
		}
		if err := s.events.PaymentApproved(ctx, ev); err != nil {
			log.Printf("payment: publish approved event failed: %v", err)
		}
	}
	return resp, nil
}

// Cancel refunds an approved lesson payment on the day-based tier
// schedule. The payback is computed strictly from the persisted payment's
// total and the tier's rate from reference data; the payment row is
// reassigned to the cancellation tier, never deleted, and the lesson is
// kept for history.
func (s *PaymentService) Cancel(ctx context.Context, userID, lessonID uint64) (*gateway.CancelResponse, error) {
	details, err := s.ledger.DetailsByLessonID(ctx, lessonID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrLessonNotFound)
	}
	payment, err := s.ledger.PaymentByLessonID(ctx, lessonID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrPaymentNotFound)
	}

	tierID, err := RefundTier(details.LessonDate, s.now())
	if err != nil {
		return nil, err
	}
	tier, err := s.ledger.ChargeTierByID(ctx, tierID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	payback := PaybackAmount(payment.TotalAmount, *tier)

	resp, err := s.gw.Cancel(ctx, gateway.CancelRequest{
		TID:                 payment.TID,
		CancelAmount:        payback,
		CancelTaxFreeAmount: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}

	if err := s.ledger.RecordCancellation(ctx, payment.ID, lessonID, tierID); err != nil {
		return nil, fmt.Errorf("%w: refund sent but tier not recorded: %w", ErrPersistence, err)
	}

	if s.events != nil {
		ev := queue.PaymentCancelledEvent{
			LessonID:    lessonID,
			PaymentID:   payment.ID,
			UserID:      userID,
			TID:         payment.TID,
			ChargeID:    tierID,
			Payback:     payback,
			CancelledAt: s.now().UTC().Format(time.RFC3339),
		}
		if err := s.events.PaymentCancelled(ctx, ev); err != nil {
			log.Printf("payment: publish cancelled event failed: %v", err)
		}
	}
	return resp, nil
}

// UserPaymentHistories lists the requesting user's own bookings.
func (s *PaymentService) UserPaymentHistories(ctx context.Context, userID uint64) ([]repository.PaymentHistory, error) {
	h, err := s.ledger.UserPaymentHistories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return h, nil
}

// OwnerPaymentHistories lists payments across all teams the requesting
// user owns. A user who owns no team gets ErrForbidden, not empty data.
func (s *PaymentService) OwnerPaymentHistories(ctx context.Context, userID uint64) ([]repository.PaymentHistory, error) {
	teams, err := s.ledger.TeamsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("%w: user %d owns no team", ErrForbidden, userID)
	}
	h, err := s.ledger.OwnerPaymentHistories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return h, nil
}

// TeamPaymentHistories lists one team's payments, provided the requesting
// user actually owns that team.
func (s *PaymentService) TeamPaymentHistories(ctx context.Context, userID, teamID uint64) ([]repository.PaymentHistory, error) {
	teams, err := s.ledger.TeamsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	owns := false
	for _, t := range teams {
		if t.ID == teamID {
			owns = true
			break
		}
	}
	if !owns {
		return nil, fmt.Errorf("%w: user %d does not own team %d", ErrForbidden, userID, teamID)
	}
	h, err := s.ledger.TeamPaymentHistories(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return h, nil
}

// Withdrawals lists the requesting owner's settlement history.
func (s *PaymentService) Withdrawals(ctx context.Context, userID uint64) ([]model.Settlement, error) {
	w, err := s.ledger.WithdrawalsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return w, nil
}

// Balance computes the owner's withdrawable amount: each payment's total
// is scaled by its tier's owner rate before summing, then all recorded
// settlements are subtracted. Integer arithmetic throughout.
func (s *PaymentService) Balance(ctx context.Context, userID uint64) (int, error) {
	totals, err := s.ledger.PaymentTotalsByOwner(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	settled, err := s.ledger.SettlementSumByOwner(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	balance := 0
	for _, t := range totals {
		balance += t.TotalAmount * t.OwnerChargeRate / 100
	}
	return balance - settled, nil
}

// publishUnconfirmed emits the reconciliation event for a persisted but
// unconfirmed payment. Best-effort: failures are logged, the caller still
// receives ErrApprovedUnconfirmed.
func (s *PaymentService) publishUnconfirmed(ctx context.Context, lesson *model.Lesson, payment *model.Payment, userID uint64, cause error) {
	if s.events == nil {
		return
	}
	ev := queue.PaymentUnconfirmedEvent{
		LessonID:    lesson.ID,
		PaymentID:   payment.ID,
		UserID:      userID,
		TID:         payment.TID,
		TotalAmount: payment.TotalAmount,
		Reason:      cause.Error(),
		FailedAt:    s.now().UTC().Format(time.RFC3339),
	}
	if err := s.events.PaymentUnconfirmed(ctx, ev); err != nil {
		log.Printf("payment: publish unconfirmed event failed: %v", err)
	}
}

// orderRef builds the merchant-side order reference quoted to the gateway
// at prepare time, before a lesson id exists.
func orderRef(userID uint64, at time.Time) string {
	return fmt.Sprintf("resv-%d-%d", userID, at.UTC().UnixNano())
}

// notFoundOr maps a known absent-row sentinel onto ErrNotFound and wraps
// anything else as a persistence failure.
func notFoundOr(err, sentinel error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sentinel) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}
