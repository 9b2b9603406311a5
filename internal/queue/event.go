// Package queue defines message payloads exchanged over the message broker
// and the background consumer that follows up on them.
package queue

// Queue names used on the broker. All queues are durable.
const (
	PaymentApprovedQueue    = "payment.approved"
	PaymentUnconfirmedQueue = "payment.unconfirmed"
	PaymentCancelledQueue   = "payment.cancelled"
)

// PaymentApprovedEvent is published after a payment is durably persisted
// and confirmed by the gateway. Downstream consumers can log, notify or
// feed analytics without querying the primary database.
type PaymentApprovedEvent struct {
	LessonID    uint64 `json:"lesson_id"`
	PaymentID   uint64 `json:"payment_id"`
	UserID      uint64 `json:"user_id"`
	TeamID      uint64 `json:"team_id"`
	TID         string `json:"tid"`
	TotalAmount int    `json:"total_amount"`
	ApprovedAt  string `json:"approved_at"`
}

// PaymentUnconfirmedEvent is published when the gateway approve call fails
// after the lesson and payment were already committed. The payment exists
// without gateway confirmation and must be reconciled by an operator;
// retrying the approve automatically would risk a double charge.
type PaymentUnconfirmedEvent struct {
	LessonID    uint64 `json:"lesson_id"`
	PaymentID   uint64 `json:"payment_id"`
	UserID      uint64 `json:"user_id"`
	TID         string `json:"tid"`
	TotalAmount int    `json:"total_amount"`
	Reason      string `json:"reason"`
	FailedAt    string `json:"failed_at"`
}

// PaymentCancelledEvent is published after a successful tiered refund.
type PaymentCancelledEvent struct {
	LessonID    uint64 `json:"lesson_id"`
	PaymentID   uint64 `json:"payment_id"`
	UserID      uint64 `json:"user_id"`
	TID         string `json:"tid"`
	ChargeID    int    `json:"charge_id"`
	Payback     int    `json:"payback"`
	CancelledAt string `json:"cancelled_at"`
}
