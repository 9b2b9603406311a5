package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/skilodge/lesson-booking/internal/gateway"
	"github.com/skilodge/lesson-booking/internal/model"
	"github.com/skilodge/lesson-booking/internal/repository"
	"github.com/skilodge/lesson-booking/internal/service"
)

// stubPayments returns canned results per operation; unset fields yield
// zero values so each test only fills what it exercises.
type stubPayments struct {
	prepareResp *gateway.PrepareResponse
	approveResp *gateway.ApproveResponse
	cancelResp  *gateway.CancelResponse
	histories   []repository.PaymentHistory
	settlements []model.Settlement
	balance     int
	err         error

	gotUserID   uint64
	gotLessonID uint64
}

func (s *stubPayments) Prepare(_ context.Context, userID uint64, _ model.ReservationDraft) (*gateway.PrepareResponse, error) {
	s.gotUserID = userID
	return s.prepareResp, s.err
}
func (s *stubPayments) Approve(_ context.Context, userID uint64, _, _ string) (*gateway.ApproveResponse, error) {
	s.gotUserID = userID
	return s.approveResp, s.err
}
func (s *stubPayments) Cancel(_ context.Context, userID, lessonID uint64) (*gateway.CancelResponse, error) {
	s.gotUserID = userID
	s.gotLessonID = lessonID
	return s.cancelResp, s.err
}
func (s *stubPayments) UserPaymentHistories(context.Context, uint64) ([]repository.PaymentHistory, error) {
	return s.histories, s.err
}
func (s *stubPayments) OwnerPaymentHistories(context.Context, uint64) ([]repository.PaymentHistory, error) {
	return s.histories, s.err
}
func (s *stubPayments) TeamPaymentHistories(context.Context, uint64, uint64) ([]repository.PaymentHistory, error) {
	return s.histories, s.err
}
func (s *stubPayments) Withdrawals(context.Context, uint64) ([]model.Settlement, error) {
	return s.settlements, s.err
}
func (s *stubPayments) Balance(context.Context, uint64) (int, error) {
	return s.balance, s.err
}

func newContext(t *testing.T, method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, rec
}

func TestPrepareRejectsMissingIdentity(t *testing.T) {
	stub := &stubPayments{}
	h := NewPaymentHandler(stub)
	c, rec := newContext(t, http.MethodPost, "/v1/payments/prepare", `{}`, "")

	if err := h.Prepare(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", rec.Code)
	}
}

func TestPrepareRejectsMalformedDraft(t *testing.T) {
	stub := &stubPayments{}
	h := NewPaymentHandler(stub)
	// Empty roster fails draft validation before the service runs.
	body := `{"team_id":3,"students":[],"lesson_date":"2025-03-20","basic_fee":8000}`
	c, rec := newContext(t, http.MethodPost, "/v1/payments/prepare", body, "9")

	if err := h.Prepare(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestPrepareReturnsRedirectPayload(t *testing.T) {
	stub := &stubPayments{prepareResp: &gateway.PrepareResponse{
		TID:               "T100",
		NextRedirectPCURL: "https://pay.example/r/T100",
	}}
	h := NewPaymentHandler(stub)
	body := `{"team_id":3,"students":[{"name":"Kim"}],"lesson_date":"2025-03-20","basic_fee":8000,"designated_fee":1000,"people_option_fee":500,"level_option_fee":500}`
	c, rec := newContext(t, http.MethodPost, "/v1/payments/prepare", body, "9")

	if err := h.Prepare(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if stub.gotUserID != 9 {
		t.Fatalf("service called with user %d, want 9 from token", stub.gotUserID)
	}
	got := rec.Body.String()
	if !strings.Contains(got, `"tid":"T100"`) || !strings.Contains(got, `"total_amount":10000`) {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestApproveRequiresTIDAndToken(t *testing.T) {
	h := NewPaymentHandler(&stubPayments{})
	c, rec := newContext(t, http.MethodPost, "/v1/payments/approve", `{"tid":"T100"}`, "9")

	if err := h.Approve(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestCancelParsesLessonID(t *testing.T) {
	stub := &stubPayments{cancelResp: &gateway.CancelResponse{
		TID:            "T100",
		CanceledAmount: gateway.Amount{Total: 5000},
	}}
	h := NewPaymentHandler(stub)
	c, rec := newContext(t, http.MethodPost, "/v1/lessons/42/cancel", "", "9")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.Cancel(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if stub.gotLessonID != 42 {
		t.Fatalf("cancelled lesson %d, want 42", stub.gotLessonID)
	}
}

func TestServiceErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"forbidden", service.ErrForbidden, http.StatusForbidden},
		{"window closed", service.ErrRefundWindowClosed, http.StatusBadRequest},
		{"invalid operation", service.ErrInvalidOperation, http.StatusBadRequest},
		{"gateway down", service.ErrGateway, http.StatusBadGateway},
		{"approved unconfirmed", service.ErrApprovedUnconfirmed, http.StatusBadGateway},
		{"persistence", service.ErrPersistence, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewPaymentHandler(&stubPayments{err: tc.err})
			c, rec := newContext(t, http.MethodPost, "/v1/lessons/42/cancel", "", "9")
			c.SetParamNames("id")
			c.SetParamValues("42")

			if err := h.Cancel(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tc.wantStatus {
				t.Fatalf("status %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}

func TestUnconfirmedResponseMarksNonRetryable(t *testing.T) {
	h := NewPaymentHandler(&stubPayments{err: service.ErrApprovedUnconfirmed})
	c, rec := newContext(t, http.MethodPost, "/v1/payments/approve", `{"tid":"T100","pg_token":"tok"}`, "9")

	if err := h.Approve(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"retryable":false`) {
		t.Fatalf("unconfirmed response must flag non-retryable: %s", rec.Body.String())
	}
}

func TestBalanceResponds(t *testing.T) {
	h := NewPaymentHandler(&stubPayments{balance: 7000})
	c, rec := newContext(t, http.MethodGet, "/v1/settlements/balance", "", "9")

	if err := h.Balance(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"balance":7000`) {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}
