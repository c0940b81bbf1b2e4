package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func TestComputeWorkHours(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		checkIn      time.Time
		checkOut     time.Time
		breakMinutes int
		wantTotal    string
		wantOvertime string
	}{
		{"nine and a half hour day with lunch", at(9, 5), at(18, 40), 30, "9.0833", "1.0833"},
		{"exactly standard day", at(9, 0), at(17, 0), 0, "8", "0"},
		{"short day no overtime", at(9, 0), at(13, 30), 30, "4", "0"},
		{"break exceeds span floors at zero", at(9, 0), at(9, 10), 30, "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, overtime := ComputeWorkHours(tt.checkIn, tt.checkOut, tt.breakMinutes)
			assert.True(t, total.Round(4).Equal(decimal.RequireFromString(tt.wantTotal)),
				"total = %s, want %s", total.Round(4), tt.wantTotal)
			assert.True(t, overtime.Round(4).Equal(decimal.RequireFromString(tt.wantOvertime)),
				"overtime = %s, want %s", overtime.Round(4), tt.wantOvertime)
		})
	}
}

func TestStatusAtCheckIn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StatusPresent, StatusAtCheckIn(at(9, 5)))
	assert.Equal(t, StatusPresent, StatusAtCheckIn(at(9, 59)))
	assert.Equal(t, StatusLate, StatusAtCheckIn(at(10, 0)))
	assert.Equal(t, StatusLate, StatusAtCheckIn(at(14, 30)))
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	hours := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}
	day := func(n int) time.Time { return time.Date(2026, 3, n, 0, 0, 0, 0, time.UTC) }

	records := []DayRecord{
		{Date: day(2), Status: StatusPresent, TotalHours: hours("8")},
		{Date: day(3), Status: StatusLate, TotalHours: hours("7.5")},
		{Date: day(4), Status: StatusHalfDay, TotalHours: hours("4")},
		{Date: day(5), Status: StatusLeave},
		{Date: day(6), Status: StatusAbsent},
		{Date: day(7), Status: StatusWeekend},
	}

	summary := Summarize("emp-1", day(1), day(31), records)

	assert.Equal(t, 1, summary.StatusCounts[StatusPresent])
	assert.Equal(t, 1, summary.StatusCounts[StatusLate])
	assert.Equal(t, 1, summary.StatusCounts[StatusHalfDay])
	assert.Equal(t, 1, summary.StatusCounts[StatusLeave])
	assert.Equal(t, 3, summary.WorkedDays)
	assert.True(t, summary.TotalHours.Equal(decimal.RequireFromString("19.5")), "total = %s", summary.TotalHours)
	assert.True(t, summary.AvgHours.Equal(decimal.RequireFromString("6.5")), "avg = %s", summary.AvgHours)
}

func TestSummarize_NoWorkedDays(t *testing.T) {
	t.Parallel()

	day := func(n int) time.Time { return time.Date(2026, 3, n, 0, 0, 0, 0, time.UTC) }
	summary := Summarize("emp-1", day(1), day(31), []DayRecord{{Date: day(2), Status: StatusAbsent}})

	assert.Equal(t, 0, summary.WorkedDays)
	assert.True(t, summary.AvgHours.IsZero())
}
