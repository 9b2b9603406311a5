// Package store holds the transient payment context between prepare and
// approve. Entries live in Redis so they survive process restarts within
// the gateway's authorization window; the TTL bounds growth from abandoned
// flows.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skilodge/lesson-booking/internal/model"
)

// ErrPendingNotFound is returned when no pending payment exists for a tid:
// it was never prepared, already consumed by an approve, or expired.
var ErrPendingNotFound = errors.New("pending payment not found")

// keyPrefix namespaces pending payment keys inside the shared Redis.
const keyPrefix = "payment:pending:"

// PendingPayment is the full payment context staged between prepare and
// approve, keyed by the gateway transaction id.
type PendingPayment struct {
	TID       string                       `json:"tid"`
	Draft     model.ReservationDraft       `json:"draft"`
	Breakdown model.LessonPaymentBreakdown `json:"breakdown"`
	ItemName  string                       `json:"item_name"`
}

// PaymentStore reads and writes pending payments with a fixed TTL.
type PaymentStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewPaymentStore binds the store to a Redis client. The TTL should match
// the gateway's own authorization window; 15 minutes when non-positive.
func NewPaymentStore(rdb *redis.Client, ttl time.Duration) *PaymentStore {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &PaymentStore{rdb: rdb, ttl: ttl}
}

func key(tid string) string { return keyPrefix + tid }

// Put stages a pending payment under its tid. An existing entry for the
// same tid is overwritten, which only happens when the gateway reissues a
// tid; the TTL restarts either way.
func (s *PaymentStore) Put(ctx context.Context, p PendingPayment) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode pending payment: %w", err)
	}
	if err := s.rdb.Set(ctx, key(p.TID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("store pending payment: %w", err)
	}
	return nil
}

// Claim atomically removes and returns the pending payment for tid.
// GETDEL makes concurrent approvals for the same tid race safely: exactly
// one caller receives the context, everyone else gets ErrPendingNotFound.
// Expired entries are indistinguishable from absent ones.
func (s *PaymentStore) Claim(ctx context.Context, tid string) (*PendingPayment, error) {
	raw, err := s.rdb.GetDel(ctx, key(tid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrPendingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("claim pending payment: %w", err)
	}
	var p PendingPayment
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode pending payment: %w", err)
	}
	return &p, nil
}

// Restore puts a claimed payment back after a failed durable commit so the
// client may retry approve within a fresh TTL window. Only callers that
// hold a claimed context may restore it.
func (s *PaymentStore) Restore(ctx context.Context, p PendingPayment) error {
	return s.Put(ctx, p)
}
