package leave

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type BalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	GetByEmployeeYear(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
	GetByEmployeeCategoryYear(ctx context.Context, employeeID string, category Category, year int) (LeaveBalance, error)

	// Debit adds days to Used behind a conditional update: the write
	// matches only while remaining >= days. A zero-row result means the
	// balance would go negative and surfaces as ErrInsufficientBalance.
	Debit(ctx context.Context, employeeID string, category Category, year int, days decimal.Decimal) error

	// Credit subtracts days from Used, floored at zero.
	Credit(ctx context.Context, employeeID string, category Category, year int, days decimal.Decimal) error
}

type RequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Update(ctx context.Context, req UpdateLeaveRequestRequest) error
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListByStatus(ctx context.Context, status RequestStatus) ([]LeaveRequest, error)

	// FindOverlapping returns the employee's pending/approved requests
	// whose inclusive date range intersects [startDate, endDate].
	FindOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]LeaveRequest, error)
}

// UpdateLeaveRequestRequest mutates status and administrative stamps
// only; the date range is immutable after creation.
type UpdateLeaveRequestRequest struct {
	ID                 string
	Status             *RequestStatus
	ApprovedBy         *string
	ApprovedAt         *time.Time
	RejectedBy         *string
	RejectedAt         *time.Time
	AdminComments      *string
	CancelledAt        *time.Time
	CancellationReason *string
}
