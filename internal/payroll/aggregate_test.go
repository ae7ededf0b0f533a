package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func span(start, end time.Time, paid bool) LeaveSpan {
	return LeaveSpan{StartDate: start, EndDate: end, Paid: paid}
}

func TestOverlapLeaveDays(t *testing.T) {
	periodStart := date(2026, 3, 1)
	periodEnd := date(2026, 3, 31)

	t.Run("fully inside the period", func(t *testing.T) {
		paid, unpaid := OverlapLeaveDays([]LeaveSpan{
			span(date(2026, 3, 10), date(2026, 3, 12), true),
			span(date(2026, 3, 20), date(2026, 3, 21), false),
		}, periodStart, periodEnd)

		assert.Equal(t, 3.0, paid)
		assert.Equal(t, 2.0, unpaid)
	})

	t.Run("spans are clipped to the period", func(t *testing.T) {
		paid, unpaid := OverlapLeaveDays([]LeaveSpan{
			// only 2026-03-01..03-03 counts
			span(date(2026, 2, 25), date(2026, 3, 3), false),
			// only 2026-03-30..03-31 counts
			span(date(2026, 3, 30), date(2026, 4, 5), true),
		}, periodStart, periodEnd)

		assert.Equal(t, 2.0, paid)
		assert.Equal(t, 3.0, unpaid)
	})

	t.Run("leave outside the period contributes nothing", func(t *testing.T) {
		paid, unpaid := OverlapLeaveDays([]LeaveSpan{
			span(date(2026, 4, 1), date(2026, 4, 3), true),
		}, periodStart, periodEnd)

		assert.Zero(t, paid)
		assert.Zero(t, unpaid)
	})

	t.Run("no leaves", func(t *testing.T) {
		paid, unpaid := OverlapLeaveDays(nil, periodStart, periodEnd)
		assert.Zero(t, paid)
		assert.Zero(t, unpaid)
	})
}

func TestAnchorLeaveDays(t *testing.T) {
	periodStart := date(2026, 3, 1)
	periodEnd := date(2026, 3, 31)

	t.Run("each paid leave anchored in the period counts one day", func(t *testing.T) {
		paid, unpaid := AnchorLeaveDays([]LeaveSpan{
			// counts 1 despite the 5-day span
			span(date(2026, 3, 10), date(2026, 3, 14), true),
			span(date(2026, 3, 20), date(2026, 3, 20), true),
			// unpaid leaves are not counted directly
			span(date(2026, 3, 25), date(2026, 3, 26), false),
			// anchored before the period
			span(date(2026, 2, 27), date(2026, 3, 2), true),
		}, periodStart, periodEnd, 20)

		assert.Equal(t, 2.0, paid)
		assert.Equal(t, 8.0, unpaid)
	})

	t.Run("unpaid days floor at zero", func(t *testing.T) {
		paid, unpaid := AnchorLeaveDays([]LeaveSpan{
			span(date(2026, 3, 10), date(2026, 3, 10), true),
		}, periodStart, periodEnd, 30)

		assert.Equal(t, 1.0, paid)
		assert.Zero(t, unpaid)
	})

	t.Run("no activity infers a full unpaid month", func(t *testing.T) {
		paid, unpaid := AnchorLeaveDays(nil, periodStart, periodEnd, 0)
		assert.Zero(t, paid)
		assert.Equal(t, 30.0, unpaid)
	})
}
