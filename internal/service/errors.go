// Package service contains the payment orchestrator and its business
// rules. This file defines the error kinds surfaced to handlers; each is
// errors.Is-distinguishable so the HTTP layer can map retryable and
// terminal failures to different statuses.
package service

import (
	"errors"
	"fmt"
)

// ErrNotFound covers absent teams, instructors, lessons, payments and
// pending contexts. Detected before any external or durable side effect.
var ErrNotFound = errors.New("not found")

// ErrInvalidOperation is a validation failure on an otherwise well-formed
// request, e.g. a malformed draft.
var ErrInvalidOperation = errors.New("invalid operation")

// ErrForbidden is returned when the requesting user does not own or manage
// the team whose data they asked for.
var ErrForbidden = errors.New("forbidden")

// ErrRefundWindowClosed rejects cancellation two days or less before the
// lesson. No partial or full refund is permitted this close to the date.
// It is an ErrInvalidOperation under errors.Is.
var ErrRefundWindowClosed = fmt.Errorf("%w: refund window closed", ErrInvalidOperation)

// ErrGateway wraps failures of the external payment gateway. Safe to retry
// during prepare because no state was written.
var ErrGateway = errors.New("payment gateway error")

// ErrPersistence wraps durable-write failures. The enclosing transaction
// has been rolled back in full when this is returned.
var ErrPersistence = errors.New("persistence error")

// ErrApprovedUnconfirmed is the one non-idempotent-retry case: the lesson
// and payment were committed but the gateway approve call failed, leaving
// a persisted payment without gateway confirmation. Callers must not
// retry; a reconciliation job follows up on the emitted event.
var ErrApprovedUnconfirmed = errors.New("payment persisted but gateway approval unconfirmed")
