package attendance

import (
	"context"
	"time"
)

type Service interface {
	// CheckIn opens today's day record. A second check-in on the same
	// date fails with ErrAlreadyCheckedIn and leaves the first record
	// untouched.
	CheckIn(ctx context.Context, employeeID string, body ClockBody) (DayRecordResponse, error)

	// CheckOut stamps the check-out time and derives total and overtime
	// hours for the day.
	CheckOut(ctx context.Context, employeeID string, body ClockBody) (DayRecordResponse, error)

	Today(ctx context.Context, employeeID string) (DayRecordResponse, error)
	History(ctx context.Context, employeeID string, from, to time.Time) ([]DayRecordResponse, error)
	Summary(ctx context.Context, employeeID string, month, year int) (SummaryResponse, error)

	// Mark sets a day's status directly, bypassing the clock flow.
	Mark(ctx context.Context, body MarkBody) (DayRecordResponse, error)

	// MissedCheckoutScan notifies every employee who checked in on the
	// given date but never checked out. Returns how many were notified.
	MissedCheckoutScan(ctx context.Context, date time.Time) (int, error)
}
