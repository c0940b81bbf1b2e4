package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type DayStatus string

const (
	StatusPresent DayStatus = "present"
	StatusAbsent  DayStatus = "absent"
	StatusHalfDay DayStatus = "half-day"
	StatusLeave   DayStatus = "leave"
	StatusHoliday DayStatus = "holiday"
	StatusWeekend DayStatus = "weekend"
	StatusLate    DayStatus = "late"
)

// ManualStatuses are the statuses an administrator may set directly,
// bypassing the check-in/out flow.
var ManualStatuses = []DayStatus{StatusAbsent, StatusLeave, StatusHalfDay, StatusHoliday, StatusWeekend, StatusPresent}

type ClockMethod string

const (
	MethodWeb       ClockMethod = "web"
	MethodMobile    ClockMethod = "mobile"
	MethodBiometric ClockMethod = "biometric"
	MethodManual    ClockMethod = "manual"
)

// LateThresholdHour is the local check-in hour at and after which the
// day is stamped late.
const LateThresholdHour = 10

// StandardWorkHours is the daily baseline before overtime accrues.
var StandardWorkHours = decimal.NewFromInt(8)

// DayRecord - one attendance row per (employee, calendar date). Never
// deleted; checkout and manual marking mutate it in place.
type DayRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time // calendar day, midnight local

	CheckInTime     *time.Time
	CheckInLocation *string
	CheckInMethod   *ClockMethod

	CheckOutTime     *time.Time
	CheckOutLocation *string
	CheckOutMethod   *ClockMethod

	Status        DayStatus
	BreakMinutes  int
	TotalHours    *decimal.Decimal
	OvertimeHours *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}

// StatusAtCheckIn stamps the day from the local check-in clock: late at
// or after the threshold hour, present before it.
func StatusAtCheckIn(checkIn time.Time) DayStatus {
	if checkIn.Hour() >= LateThresholdHour {
		return StatusLate
	}
	return StatusPresent
}

// ComputeWorkHours derives total and overtime hours from the check-in
// and check-out stamps. Break time is subtracted and the result floors
// at zero; overtime is whatever exceeds the standard day.
func ComputeWorkHours(checkIn, checkOut time.Time, breakMinutes int) (total, overtime decimal.Decimal) {
	workedMinutes := int64(checkOut.Sub(checkIn).Minutes()) - int64(breakMinutes)
	if workedMinutes < 0 {
		workedMinutes = 0
	}

	total = decimal.NewFromInt(workedMinutes).Div(decimal.NewFromInt(60))
	overtime = total.Sub(StandardWorkHours)
	if overtime.IsNegative() {
		overtime = decimal.Zero
	}
	return total, overtime
}

// MonthSummary aggregates day records over a date range.
type MonthSummary struct {
	EmployeeID   string
	From         time.Time
	To           time.Time
	StatusCounts map[DayStatus]int
	TotalHours   decimal.Decimal
	AvgHours     decimal.Decimal
	WorkedDays   int
}

// Summarize rolls day records into a summary. AvgHours averages over
// days whose status counts as worked (present, late, half-day).
func Summarize(employeeID string, from, to time.Time, records []DayRecord) MonthSummary {
	summary := MonthSummary{
		EmployeeID:   employeeID,
		From:         from,
		To:           to,
		StatusCounts: make(map[DayStatus]int),
		TotalHours:   decimal.Zero,
		AvgHours:     decimal.Zero,
	}

	for _, rec := range records {
		summary.StatusCounts[rec.Status]++
		if rec.TotalHours != nil {
			summary.TotalHours = summary.TotalHours.Add(*rec.TotalHours)
		}
		switch rec.Status {
		case StatusPresent, StatusLate, StatusHalfDay:
			summary.WorkedDays++
		}
	}

	if summary.WorkedDays > 0 {
		summary.AvgHours = summary.TotalHours.Div(decimal.NewFromInt(int64(summary.WorkedDays)))
	}
	return summary
}
