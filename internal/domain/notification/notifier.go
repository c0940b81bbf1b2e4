package notification

import (
	"context"

	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
)

// Notifier is the outbound notification boundary. Every call is
// fire-and-forget: implementations must never block the caller on
// delivery and failures are logged, not returned to core flows.
type Notifier interface {
	LeaveRequested(ctx context.Context, request leave.LeaveRequest, emp employee.Employee)
	LeaveDecided(ctx context.Context, request leave.LeaveRequest, emp employee.Employee, approverName string)
	MissedCheckout(ctx context.Context, emp employee.Employee)
	Birthday(ctx context.Context, emp employee.Employee)
	Anniversary(ctx context.Context, emp employee.Employee, years int)
}
