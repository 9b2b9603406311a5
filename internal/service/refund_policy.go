package service

import (
	"time"

	"github.com/skilodge/lesson-booking/internal/model"
)

// RefundTier selects the charge tier for cancelling a lesson scheduled on
// lessonDate, judged at now. Both instants are truncated to civil dates in
// UTC before differencing, so the boundary is a whole-day count and does
// not drift with the time of day the cancellation arrives:
//
//	days until lesson <= 2  -> ErrRefundWindowClosed (no refund permitted)
//	days until lesson  > 7  -> ChargeTierFull
//	otherwise (3..7)        -> ChargeTierPartial
func RefundTier(lessonDate, now time.Time) (int, error) {
	days := daysUntil(lessonDate, now)
	if days <= 2 {
		return 0, ErrRefundWindowClosed
	}
	if days > 7 {
		return model.ChargeTierFull, nil
	}
	return model.ChargeTierPartial, nil
}

// PaybackAmount computes the refund for a cancelled payment from the
// persisted total and the tier's student rate. Rates are integer
// percentages, so the math stays exact: 10000 at 100% pays back 10000,
// at 50% pays back 5000.
func PaybackAmount(totalAmount int, tier model.ChargeTier) int {
	return totalAmount * tier.StudentChargeRate / 100
}

// daysUntil counts whole civil days from now to the lesson date in UTC.
func daysUntil(lessonDate, now time.Time) int {
	a := civilDate(now)
	b := civilDate(lessonDate)
	return int(b.Sub(a).Hours() / 24)
}

func civilDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
