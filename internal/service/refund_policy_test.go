package service

import (
	"errors"
	"testing"
	"time"

	"github.com/skilodge/lesson-booking/internal/model"
)

func TestRefundTier(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		name     string
		daysOut  int
		wantTier int
		wantErr  error
	}{
		{"one day out is closed", 1, 0, ErrRefundWindowClosed},
		{"two days out is closed", 2, 0, ErrRefundWindowClosed},
		{"three days out is partial", 3, model.ChargeTierPartial, nil},
		{"seven days out is partial", 7, model.ChargeTierPartial, nil},
		{"eight days out is full", 8, model.ChargeTierFull, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lessonDate := now.AddDate(0, 0, tc.daysOut)
			tier, err := RefundTier(lessonDate, now)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tier != tc.wantTier {
				t.Fatalf("expected tier %d, got %d", tc.wantTier, tier)
			}
		})
	}
}

func TestRefundTierIgnoresTimeOfDay(t *testing.T) {
	// Cancelling late at night three days before a morning lesson must
	// still count three whole days.
	now := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	lessonDate := time.Date(2025, 3, 13, 8, 0, 0, 0, time.UTC)
	tier, err := RefundTier(lessonDate, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tier != model.ChargeTierPartial {
		t.Fatalf("expected partial tier, got %d", tier)
	}
}

func TestPaybackAmount(t *testing.T) {
	full := model.ChargeTier{ID: model.ChargeTierFull, StudentChargeRate: 100, OwnerChargeRate: 0}
	partial := model.ChargeTier{ID: model.ChargeTierPartial, StudentChargeRate: 50, OwnerChargeRate: 50}

	if got := PaybackAmount(10000, full); got != 10000 {
		t.Fatalf("full refund of 10000: expected 10000, got %d", got)
	}
	if got := PaybackAmount(10000, partial); got != 5000 {
		t.Fatalf("partial refund of 10000: expected 5000, got %d", got)
	}
	if got := PaybackAmount(0, partial); got != 0 {
		t.Fatalf("refund of zero: expected 0, got %d", got)
	}
}
