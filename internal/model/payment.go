package model

import "time"

// Payment is the durable record of an approved lesson payment, one-to-one
// with LessonPaymentBreakdown. Cancellation reassigns the charge tier
// instead of deleting the row so history queries stay correct.
//
// Fields:
//  ID          – primary key identifier.
//  LessonID    – lesson this payment settles (FK to lesson_payment_breakdown).
//  TID         – gateway transaction id for the prepare/approve/cancel flow.
//  TotalAmount – full charged amount; equals the breakdown's fee sum.
//  ChargeID    – refund tier applied (ChargeTierNone until cancelled).
//  PaymentDate – civil date the payment was approved.
//  CreatedAt   – creation timestamp.
type Payment struct {
	ID          uint64    // payments.id
	LessonID    uint64    // payments.lesson_id
	TID         string    // payments.tid
	TotalAmount int       // payments.total_amount
	ChargeID    int       // payments.charge_id
	PaymentDate time.Time // payments.payment_date
	CreatedAt   time.Time // payments.created_at
}

// ChargeTier maps a tier id to refund and payout percentages. Rows are
// read-only reference data; rates are integer percentages so money math
// stays in integers.
//
//  StudentChargeRate – percentage of the total refunded to the student.
//  OwnerChargeRate   – percentage of the total credited to the owner
//                      when computing balances.
type ChargeTier struct {
	ID                int // charge_tiers.id
	StudentChargeRate int // charge_tiers.student_charge_rate (percent)
	OwnerChargeRate   int // charge_tiers.owner_charge_rate (percent)
}

// Charge tier ids. Tier 0 is the initial, uncancelled state.
const (
	ChargeTierNone    = 0 // payment approved, not cancelled
	ChargeTierFull    = 1 // cancelled > 7 days ahead: full refund
	ChargeTierPartial = 2 // cancelled 3–7 days ahead: partial refund
)

// Settlement records an owner's withdrawal against accumulated payments.
// Read by balance computation; never written by the payment core.
type Settlement struct {
	ID        uint64    // settlements.id
	UserID    uint64    // settlements.user_id (owner)
	Amount    int       // settlements.amount withdrawn
	CreatedAt time.Time // settlements.created_at
}
