package payroll

import "time"

// Leave policies. The policy decides how approved leaves map to paid and
// unpaid day counts, and which base a percentage tax applies to.
const (
	PolicyOverlap = "overlap"
	PolicyAnchor  = "anchor"
)

// anchorMonthDays normalizes every period to a 30-day month under the
// anchor policy.
const anchorMonthDays = 30

// LeaveSpan is the slice of an approved leave the aggregators operate on.
type LeaveSpan struct {
	StartDate time.Time
	EndDate   time.Time
	Paid      bool
}

// OverlapLeaveDays clips each leave to [periodStart, periodEnd] and sums
// the inclusive day counts of the clipped spans, paid and unpaid
// separately. Exact but requires per-leave interval math.
func OverlapLeaveDays(leaves []LeaveSpan, periodStart, periodEnd time.Time) (paidDays, unpaidDays float64) {
	for _, l := range leaves {
		s := l.StartDate
		if periodStart.After(s) {
			s = periodStart
		}
		e := l.EndDate
		if periodEnd.Before(e) {
			e = periodEnd
		}
		if e.Before(s) {
			continue
		}

		days := float64(InclusiveDays(s, e))
		if l.Paid {
			paidDays += days
		} else {
			unpaidDays += days
		}
	}
	return paidDays, unpaidDays
}

// AnchorLeaveDays counts each paid leave whose start date falls inside the
// period as exactly one day, regardless of span, and infers unpaid days
// from a normalized 30-day month:
//
//	unpaid = max(0, 30 - (presentDays + paidDays))
//
// An approximation used by simple monthly batch runs.
func AnchorLeaveDays(leaves []LeaveSpan, periodStart, periodEnd time.Time, presentDays float64) (paidDays, unpaidDays float64) {
	for _, l := range leaves {
		if !l.Paid {
			continue
		}
		if l.StartDate.Before(periodStart) || l.StartDate.After(endOfDay(periodEnd)) {
			continue
		}
		paidDays++
	}

	unpaidDays = anchorMonthDays - (presentDays + paidDays)
	if unpaidDays < 0 {
		unpaidDays = 0
	}
	return paidDays, unpaidDays
}
