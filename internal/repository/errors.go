// Package repository implements the durable ledger on top of database/sql.
// This file defines sentinel errors shared across repositories so higher
// layers can distinguish failure scenarios with errors.Is instead of
// inspecting driver errors.
package repository

import "errors"

// ErrTeamNotFound is returned when a referenced team row does not exist.
var ErrTeamNotFound = errors.New("team not found")

// ErrInstructorNotFound is returned when a referenced instructor row does
// not exist.
var ErrInstructorNotFound = errors.New("instructor not found")

// ErrLessonNotFound is returned when a lesson or its details row does not
// exist for the given lesson id.
var ErrLessonNotFound = errors.New("lesson not found")

// ErrPaymentNotFound is returned when no payment row exists for a lesson.
var ErrPaymentNotFound = errors.New("payment not found")

// ErrChargeTierNotFound is returned when a charge tier id has no row in
// the reference table. Tier data is seeded, so hitting this usually means
// a misconfigured database.
var ErrChargeTierNotFound = errors.New("charge tier not found")
