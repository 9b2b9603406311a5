package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/skilodge/lesson-booking/internal/gateway"
	"github.com/skilodge/lesson-booking/internal/model"
	"github.com/skilodge/lesson-booking/internal/queue"
	"github.com/skilodge/lesson-booking/internal/repository"
	"github.com/skilodge/lesson-booking/internal/service/mocks"
	"github.com/skilodge/lesson-booking/internal/store"
)

type fixture struct {
	gw      *mocks.MockGateway
	pending *mocks.MockPendingStore
	ledger  *mocks.MockLedger
	events  *mocks.MockEvents
	svc     *PaymentService
}

func newFixture(t *testing.T, now time.Time) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		gw:      mocks.NewMockGateway(ctrl),
		pending: mocks.NewMockPendingStore(ctrl),
		ledger:  mocks.NewMockLedger(ctrl),
		events:  mocks.NewMockEvents(ctrl),
	}
	f.svc = NewPaymentService(f.gw, f.pending, f.ledger, f.events)
	f.svc.now = func() time.Time { return now }
	return f
}

func testDraft(userID uint64) model.ReservationDraft {
	return model.ReservationDraft{
		UserID: userID,
		TeamID: 3,
		Students: []model.StudentDescriptor{
			{Name: "Kim", Height: 170, Weight: 60, FootSize: 260, Experience: "beginner"},
			{Name: "Lee", Height: 165, Weight: 55, FootSize: 250, Experience: "advanced"},
		},
		LessonDate:      time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		Duration:        2,
		LessonType:      "group",
		BasicFee:        8000,
		DesignatedFee:   1000,
		PeopleOptionFee: 500,
		LevelOptionFee:  500,
	}
}

func TestPreparePaymentQuotesExactTotal(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	ctx := context.Background()
	draft := testDraft(9)

	f.ledger.EXPECT().TeamByID(ctx, uint64(3)).Return(&repository.TeamRecord{ID: 3, OwnerID: 1, Name: "Alpine"}, nil)
	f.ledger.EXPECT().UserByID(ctx, uint64(9)).Return(&model.User{ID: 9, Name: "Park"}, nil)

	var captured gateway.PrepareRequest
	f.gw.EXPECT().Prepare(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req gateway.PrepareRequest) (*gateway.PrepareResponse, error) {
			captured = req
			return &gateway.PrepareResponse{TID: "T100", NextRedirectPCURL: "https://pay.example/redirect"}, nil
		})
	f.pending.EXPECT().Put(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p store.PendingPayment) error {
			if p.TID != "T100" {
				t.Fatalf("staged under tid %q, want T100", p.TID)
			}
			if p.Breakdown.Total() != 10000 {
				t.Fatalf("staged breakdown total %d, want 10000", p.Breakdown.Total())
			}
			return nil
		})

	resp, err := f.svc.Prepare(ctx, 9, draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.TID != "T100" {
		t.Fatalf("tid %q, want T100", resp.TID)
	}
	if captured.TotalAmount != 10000 {
		t.Fatalf("quoted total %d, want exact fee sum 10000", captured.TotalAmount)
	}
	if captured.PartnerUserID != "9" {
		t.Fatalf("partner user id %q, want 9", captured.PartnerUserID)
	}
}

func TestPrepareUnknownTeam(t *testing.T) {
	f := newFixture(t, time.Now())
	ctx := context.Background()

	f.ledger.EXPECT().TeamByID(ctx, uint64(3)).Return(nil, repository.ErrTeamNotFound)

	_, err := f.svc.Prepare(ctx, 9, testDraft(9))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPrepareGatewayFailureLeavesNothingStaged(t *testing.T) {
	f := newFixture(t, time.Now())
	ctx := context.Background()

	f.ledger.EXPECT().TeamByID(ctx, uint64(3)).Return(&repository.TeamRecord{ID: 3, Name: "Alpine"}, nil)
	f.ledger.EXPECT().UserByID(ctx, uint64(9)).Return(&model.User{ID: 9, Name: "Park"}, nil)
	f.gw.EXPECT().Prepare(ctx, gomock.Any()).Return(nil, &gateway.Error{Op: "ready", Status: 500})
	// No Put expectation: a failed quote must not stage a pending payment.

	_, err := f.svc.Prepare(ctx, 9, testDraft(9))
	if !errors.Is(err, ErrGateway) {
		t.Fatalf("expected ErrGateway, got %v", err)
	}
}

func TestApproveUnknownTID(t *testing.T) {
	f := newFixture(t, time.Now())
	ctx := context.Background()

	f.pending.EXPECT().Claim(ctx, "T404").Return(nil, store.ErrPendingNotFound)

	_, err := f.svc.Approve(ctx, 9, "T404", "pg-token")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApprovePersistsThenConfirmsWithLessonID(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	ctx := context.Background()
	draft := testDraft(9)
	p := store.PendingPayment{TID: "T100", Draft: draft, Breakdown: draft.Breakdown(), ItemName: "Alpine lesson"}

	f.pending.EXPECT().Claim(ctx, "T100").Return(&p, nil)
	f.ledger.EXPECT().SaveApproved(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ar repository.ApprovedReservation) (*model.Lesson, *model.Payment, error) {
			if ar.TID != "T100" {
				t.Fatalf("persisting tid %q, want T100", ar.TID)
			}
			lesson := &model.Lesson{ID: 42, TeamID: draft.TeamID, UserID: draft.UserID, Status: model.LessonStatusCreated}
			payment := &model.Payment{ID: 7, LessonID: 42, TID: "T100", TotalAmount: 10000, ChargeID: model.ChargeTierNone}
			return lesson, payment, nil
		})
	f.gw.EXPECT().Approve(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req gateway.ApproveRequest) (*gateway.ApproveResponse, error) {
			// The order id quoted at approval is the persisted lesson's id.
			if req.PartnerOrderID != "42" {
				t.Fatalf("partner order id %q, want persisted lesson id 42", req.PartnerOrderID)
			}
			if req.TID != "T100" || req.PGToken != "pg-token" {
				t.Fatalf("unexpected approve request %+v", req)
			}
			return &gateway.ApproveResponse{AID: "A1", TID: "T100", Amount: gateway.Amount{Total: 10000}}, nil
		})
	f.events.EXPECT().PaymentApproved(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ev queue.PaymentApprovedEvent) error {
			if ev.LessonID != 42 || ev.PaymentID != 7 || ev.TotalAmount != 10000 {
				t.Fatalf("unexpected approved event %+v", ev)
			}
			return nil
		})

	resp, err := f.svc.Approve(ctx, 9, "T100", "pg-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AID != "A1" {
		t.Fatalf("aid %q, want A1", resp.AID)
	}
}

func TestApproveRestoresPendingOnPersistFailure(t *testing.T) {
	f := newFixture(t, time.Now())
	ctx := context.Background()
	draft := testDraft(9)
	p := store.PendingPayment{TID: "T100", Draft: draft, Breakdown: draft.Breakdown()}

	f.pending.EXPECT().Claim(ctx, "T100").Return(&p, nil)
	f.ledger.EXPECT().SaveApproved(ctx, gomock.Any()).Return(nil, nil, errors.New("deadlock"))
	f.pending.EXPECT().Restore(ctx, p).Return(nil)
	// No gateway call: money must not move for an unpersisted reservation.

	_, err := f.svc.Approve(ctx, 9, "T100", "pg-token")
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestApproveGatewayFailureAfterCommit(t *testing.T) {
	f := newFixture(t, time.Now())
	ctx := context.Background()
	draft := testDraft(9)
	p := store.PendingPayment{TID: "T100", Draft: draft, Breakdown: draft.Breakdown()}
	lesson := &model.Lesson{ID: 42, TeamID: draft.TeamID, UserID: 9}
	payment := &model.Payment{ID: 7, LessonID: 42, TID: "T100", TotalAmount: 10000}

	f.pending.EXPECT().Claim(ctx, "T100").Return(&p, nil)
	f.ledger.EXPECT().SaveApproved(ctx, gomock.Any()).Return(lesson, payment, nil)
	f.gw.EXPECT().Approve(ctx, gomock.Any()).Return(nil, &gateway.Error{Op: "approve", Status: 502})
	f.events.EXPECT().PaymentUnconfirmed(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ev queue.PaymentUnconfirmedEvent) error {
			if ev.PaymentID != 7 || ev.TID != "T100" {
				t.Fatalf("unexpected unconfirmed event %+v", ev)
			}
			return nil
		})

	_, err := f.svc.Approve(ctx, 9, "T100", "pg-token")
	if !errors.Is(err, ErrApprovedUnconfirmed) {
		t.Fatalf("expected ErrApprovedUnconfirmed, got %v", err)
	}
	// The committed state stays; no restore of the pending context.
}

func TestCancelUsesPersistedAmountAndTID(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	ctx := context.Background()

	// Ten days out: full refund tier.
	f.ledger.EXPECT().DetailsByLessonID(ctx, uint64(42)).Return(&model.LessonDetails{
		LessonID:   42,
		LessonDate: now.AddDate(0, 0, 10),
	}, nil)
	f.ledger.EXPECT().PaymentByLessonID(ctx, uint64(42)).Return(&model.Payment{
		ID: 7, LessonID: 42, TID: "T100", TotalAmount: 10000, ChargeID: model.ChargeTierNone,
	}, nil)
	f.ledger.EXPECT().ChargeTierByID(ctx, model.ChargeTierFull).Return(&model.ChargeTier{
		ID: model.ChargeTierFull, StudentChargeRate: 100, OwnerChargeRate: 0,
	}, nil)
	f.gw.EXPECT().Cancel(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req gateway.CancelRequest) (*gateway.CancelResponse, error) {
			if req.TID != "T100" {
				t.Fatalf("refunding tid %q, want persisted T100", req.TID)
			}
			if req.CancelAmount != 10000 {
				t.Fatalf("refund amount %d, want 10000 from the persisted total", req.CancelAmount)
			}
			return &gateway.CancelResponse{TID: "T100", CanceledAmount: gateway.Amount{Total: 10000}}, nil
		})
	f.ledger.EXPECT().RecordCancellation(ctx, uint64(7), uint64(42), model.ChargeTierFull).Return(nil)
	f.events.EXPECT().PaymentCancelled(ctx, gomock.Any()).Return(nil)

	resp, err := f.svc.Cancel(ctx, 9, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.CanceledAmount.Total != 10000 {
		t.Fatalf("canceled amount %d, want 10000", resp.CanceledAmount.Total)
	}
}

func TestCancelPartialTier(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	ctx := context.Background()

	// Five days out: half refund.
	f.ledger.EXPECT().DetailsByLessonID(ctx, uint64(42)).Return(&model.LessonDetails{
		LessonID:   42,
		LessonDate: now.AddDate(0, 0, 5),
	}, nil)
	f.ledger.EXPECT().PaymentByLessonID(ctx, uint64(42)).Return(&model.Payment{
		ID: 7, LessonID: 42, TID: "T100", TotalAmount: 10000,
	}, nil)
	f.ledger.EXPECT().ChargeTierByID(ctx, model.ChargeTierPartial).Return(&model.ChargeTier{
		ID: model.ChargeTierPartial, StudentChargeRate: 50, OwnerChargeRate: 50,
	}, nil)
	f.gw.EXPECT().Cancel(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req gateway.CancelRequest) (*gateway.CancelResponse, error) {
			if req.CancelAmount != 5000 {
				t.Fatalf("refund amount %d, want 5000", req.CancelAmount)
			}
			return &gateway.CancelResponse{TID: "T100", CanceledAmount: gateway.Amount{Total: 5000}}, nil
		})
	f.ledger.EXPECT().RecordCancellation(ctx, uint64(7), uint64(42), model.ChargeTierPartial).Return(nil)
	f.events.EXPECT().PaymentCancelled(ctx, gomock.Any()).Return(nil)

	if _, err := f.svc.Cancel(ctx, 9, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCancelInsideClosedWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	ctx := context.Background()

	f.ledger.EXPECT().DetailsByLessonID(ctx, uint64(42)).Return(&model.LessonDetails{
		LessonID:   42,
		LessonDate: now.AddDate(0, 0, 2),
	}, nil)
	f.ledger.EXPECT().PaymentByLessonID(ctx, uint64(42)).Return(&model.Payment{
		ID: 7, LessonID: 42, TID: "T100", TotalAmount: 10000,
	}, nil)
	// No gateway or ledger mutation calls this close to the lesson.

	_, err := f.svc.Cancel(ctx, 9, 42)
	if !errors.Is(err, ErrRefundWindowClosed) {
		t.Fatalf("expected ErrRefundWindowClosed, got %v", err)
	}
}

func TestOwnerHistoriesRequireTeamOwnership(t *testing.T) {
	f := newFixture(t, time.Now())
	ctx := context.Background()

	f.ledger.EXPECT().TeamsByOwner(ctx, uint64(9)).Return(nil, nil)

	_, err := f.svc.OwnerPaymentHistories(ctx, 9)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
}

func TestTeamHistoriesRejectForeignTeam(t *testing.T) {
	f := newFixture(t, time.Now())
	ctx := context.Background()

	f.ledger.EXPECT().TeamsByOwner(ctx, uint64(9)).Return([]repository.TeamRecord{{ID: 3, OwnerID: 9}}, nil)

	_, err := f.svc.TeamPaymentHistories(ctx, 9, 5)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for foreign team, got %v", err)
	}
}

func TestTeamHistoriesForOwnedTeam(t *testing.T) {
	f := newFixture(t, time.Now())
	ctx := context.Background()

	f.ledger.EXPECT().TeamsByOwner(ctx, uint64(9)).Return([]repository.TeamRecord{{ID: 3, OwnerID: 9}}, nil)
	f.ledger.EXPECT().TeamPaymentHistories(ctx, uint64(3)).Return([]repository.PaymentHistory{{LessonID: 42, TeamID: 3}}, nil)

	items, err := f.svc.TeamPaymentHistories(ctx, 9, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].LessonID != 42 {
		t.Fatalf("unexpected histories %+v", items)
	}
}

func TestBalanceScalesByOwnerRate(t *testing.T) {
	f := newFixture(t, time.Now())
	ctx := context.Background()

	f.ledger.EXPECT().PaymentTotalsByOwner(ctx, uint64(9)).Return([]repository.OwnerPaymentTotal{
		{TotalAmount: 10000, OwnerChargeRate: 90}, // live booking: owner keeps 90%
		{TotalAmount: 10000, OwnerChargeRate: 50}, // partial cancellation: owner keeps 50%
	}, nil)
	f.ledger.EXPECT().SettlementSumByOwner(ctx, uint64(9)).Return(2000, nil)

	balance, err := f.svc.Balance(ctx, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 10000*90/100 + 10000*50/100 - 2000 = 9000 + 5000 - 2000
	if balance != 12000 {
		t.Fatalf("balance %d, want 12000", balance)
	}
}
