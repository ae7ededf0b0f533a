package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInclusiveDays(t *testing.T) {
	t.Run("single day counts one", func(t *testing.T) {
		d := date(2026, 3, 10)
		assert.Equal(t, 1, InclusiveDays(d, d))
	})

	t.Run("time of day is stripped", func(t *testing.T) {
		start := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)
		end := time.Date(2026, 3, 3, 0, 15, 0, 0, time.UTC)
		assert.Equal(t, 3, InclusiveDays(start, end))
	})

	t.Run("full month", func(t *testing.T) {
		assert.Equal(t, 31, InclusiveDays(date(2026, 3, 1), date(2026, 3, 31)))
	})

	t.Run("end before start is non-positive", func(t *testing.T) {
		assert.LessOrEqual(t, InclusiveDays(date(2026, 3, 10), date(2026, 3, 8)), 0)
	})
}

func TestWorkingDays(t *testing.T) {
	t.Run("any full week has five", func(t *testing.T) {
		// 2026-03-02 is a Monday; slide the window over each weekday start.
		for offset := 0; offset < 7; offset++ {
			start := date(2026, 3, 2).AddDate(0, 0, offset)
			assert.Equal(t, 5, WorkingDays(start, start.AddDate(0, 0, 6)), "start %s", start.Weekday())
		}
	})

	t.Run("weekend-only period has zero", func(t *testing.T) {
		// 2026-03-07/08 is a Saturday-Sunday pair.
		assert.Equal(t, 0, WorkingDays(date(2026, 3, 7), date(2026, 3, 8)))
	})

	t.Run("march 2026 has twenty-two", func(t *testing.T) {
		assert.Equal(t, 22, WorkingDays(date(2026, 3, 1), date(2026, 3, 31)))
	})
}
