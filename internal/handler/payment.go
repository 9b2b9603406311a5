package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skilodge/lesson-booking/internal/gateway"
	"github.com/skilodge/lesson-booking/internal/middleware"
	"github.com/skilodge/lesson-booking/internal/model"
	"github.com/skilodge/lesson-booking/internal/repository"
	"github.com/skilodge/lesson-booking/internal/service"
)

// Payments is the slice of the orchestrator the HTTP layer depends on.
type Payments interface {
	Prepare(ctx context.Context, userID uint64, draft model.ReservationDraft) (*gateway.PrepareResponse, error)
	Approve(ctx context.Context, userID uint64, tid, pgToken string) (*gateway.ApproveResponse, error)
	Cancel(ctx context.Context, userID, lessonID uint64) (*gateway.CancelResponse, error)
	UserPaymentHistories(ctx context.Context, userID uint64) ([]repository.PaymentHistory, error)
	OwnerPaymentHistories(ctx context.Context, userID uint64) ([]repository.PaymentHistory, error)
	TeamPaymentHistories(ctx context.Context, userID, teamID uint64) ([]repository.PaymentHistory, error)
	Withdrawals(ctx context.Context, userID uint64) ([]model.Settlement, error)
	Balance(ctx context.Context, userID uint64) (int, error)
}

// PaymentHandler exposes the payment orchestrator over HTTP. All routes
// assume JWTAuth ran first; the user id comes from the token subject, never
// from the request body.
type PaymentHandler struct {
	svc Payments
}

// NewPaymentHandler constructs the handler. svc must be non-nil.
func NewPaymentHandler(svc Payments) *PaymentHandler {
	if svc == nil {
		panic("nil service passed to NewPaymentHandler")
	}
	return &PaymentHandler{svc: svc}
}

// prepareRequest is the body of POST /v1/payments/prepare.
type prepareRequest struct {
	TeamID          uint64                    `json:"team_id"`
	InstructorID    *uint64                   `json:"instructor_id,omitempty"`
	Students        []model.StudentDescriptor `json:"students"`
	LessonDate      string                    `json:"lesson_date"` // YYYY-MM-DD
	StartTime       string                    `json:"start_time"`
	Duration        int                       `json:"duration"`
	LessonType      string                    `json:"lesson_type"`
	BasicFee        int                       `json:"basic_fee"`
	DesignatedFee   int                       `json:"designated_fee"`
	PeopleOptionFee int                       `json:"people_option_fee"`
	LevelOptionFee  int                       `json:"level_option_fee"`
}

// Prepare handles POST /v1/payments/prepare. It validates the reservation
// draft, opens a gateway transaction and returns the tid plus the redirect
// URLs the client forwards the payer to. Nothing durable is written.
func (h *PaymentHandler) Prepare(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body prepareRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	lessonDate, err := time.Parse("2006-01-02", body.LessonDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "lesson_date must be YYYY-MM-DD"})
	}
	draft, err := model.NewReservationDraft(userID, body.TeamID, body.InstructorID, body.Students,
		lessonDate, body.StartTime, body.Duration, body.LessonType,
		body.BasicFee, body.DesignatedFee, body.PeopleOptionFee, body.LevelOptionFee)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	resp, err := h.svc.Prepare(c.Request().Context(), userID, draft)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"tid":                      resp.TID,
		"next_redirect_pc_url":     resp.NextRedirectPCURL,
		"next_redirect_app_url":    resp.NextRedirectAppURL,
		"next_redirect_mobile_url": resp.NextRedirectMobileURL,
		"total_amount":             draft.TotalFee(),
	})
}

// approveRequest is the body of POST /v1/payments/approve.
type approveRequest struct {
	TID     string `json:"tid"`
	PGToken string `json:"pg_token"`
}

// Approve handles POST /v1/payments/approve, invoked after the payer
// authorized the payment and the gateway redirected back with a pg_token.
func (h *PaymentHandler) Approve(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body approveRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.TID == "" || body.PGToken == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tid and pg_token are required"})
	}

	resp, err := h.svc.Approve(c.Request().Context(), userID, body.TID, body.PGToken)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"aid":          resp.AID,
		"tid":          resp.TID,
		"total_amount": resp.Amount.Total,
		"approved_at":  resp.ApprovedAt,
	})
}

// Cancel handles POST /v1/lessons/:id/cancel. The refundable amount is
// derived server-side from the persisted payment and the tier schedule.
func (h *PaymentHandler) Cancel(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	lessonID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || lessonID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid lesson id"})
	}

	resp, err := h.svc.Cancel(c.Request().Context(), userID, lessonID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"tid":             resp.TID,
		"canceled_amount": resp.CanceledAmount.Total,
		"canceled_at":     resp.CanceledAt,
	})
}

// MyHistories handles GET /v1/payments/me: the caller's own bookings.
func (h *PaymentHandler) MyHistories(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.svc.UserPaymentHistories(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// OwnerHistories handles GET /v1/payments/owner: payments across every
// team the caller owns.
func (h *PaymentHandler) OwnerHistories(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.svc.OwnerPaymentHistories(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// TeamHistories handles GET /v1/teams/:id/payments for one owned team.
func (h *PaymentHandler) TeamHistories(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || teamID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid team id"})
	}
	items, err := h.svc.TeamPaymentHistories(c.Request().Context(), userID, teamID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Withdrawals handles GET /v1/settlements: the owner's withdrawal history.
func (h *PaymentHandler) Withdrawals(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.svc.Withdrawals(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Balance handles GET /v1/settlements/balance: the owner's withdrawable
// amount after rate scaling and prior settlements.
func (h *PaymentHandler) Balance(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	balance, err := h.svc.Balance(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"balance": balance})
}

// writeServiceError maps orchestrator error kinds to HTTP statuses. The
// unconfirmed case gets its own status and message because the client must
// not retry it.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrRefundWindowClosed),
		errors.Is(err, service.ErrInvalidOperation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrApprovedUnconfirmed):
		return c.JSON(http.StatusBadGateway, echo.Map{
			"error":     err.Error(),
			"retryable": false,
		})
	case errors.Is(err, service.ErrGateway):
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
