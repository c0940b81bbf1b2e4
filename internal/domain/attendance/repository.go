package attendance

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserts a new day record. The storage layer enforces the
	// (employee, date) uniqueness constraint; a violation surfaces as
	// ErrDuplicateDayRecord so concurrent double check-ins lose cleanly.
	Create(ctx context.Context, record DayRecord) (DayRecord, error)

	GetByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (DayRecord, error)
	Update(ctx context.Context, record DayRecord) error
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]DayRecord, error)

	// ListOpenForDate returns records with a check-in but no check-out
	// on the given date, for the missed-checkout scan.
	ListOpenForDate(ctx context.Context, date time.Time) ([]DayRecord, error)
}
