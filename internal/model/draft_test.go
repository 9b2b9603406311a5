package model

import (
	"errors"
	"testing"
	"time"
)

func TestNewReservationDraftValidation(t *testing.T) {
	date := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	students := []StudentDescriptor{{Name: "Kim"}}

	t.Run("negative fee", func(t *testing.T) {
		_, err := NewReservationDraft(9, 3, nil, students, date, "10:00", 2, "group", -1, 0, 0, 0)
		if !errors.Is(err, ErrNegativeFee) {
			t.Fatalf("expected ErrNegativeFee, got %v", err)
		}
	})

	t.Run("empty roster", func(t *testing.T) {
		_, err := NewReservationDraft(9, 3, nil, nil, date, "10:00", 2, "group", 8000, 0, 0, 0)
		if !errors.Is(err, ErrEmptyRoster) {
			t.Fatalf("expected ErrEmptyRoster, got %v", err)
		}
	})

	t.Run("missing date", func(t *testing.T) {
		_, err := NewReservationDraft(9, 3, nil, students, time.Time{}, "10:00", 2, "group", 8000, 0, 0, 0)
		if !errors.Is(err, ErrBadLessonDay) {
			t.Fatalf("expected ErrBadLessonDay, got %v", err)
		}
	})
}

func TestDraftTotalIsExactFeeSum(t *testing.T) {
	date := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	d, err := NewReservationDraft(9, 3, nil, []StudentDescriptor{{Name: "Kim"}}, date,
		"10:00", 2, "group", 8000, 1000, 500, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.TotalFee() != 10000 {
		t.Fatalf("total %d, want 10000", d.TotalFee())
	}
	b := d.Breakdown()
	if b.Total() != d.TotalFee() {
		t.Fatalf("breakdown total %d diverges from draft total %d", b.Total(), d.TotalFee())
	}
}
