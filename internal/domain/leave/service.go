package leave

import "context"

type Service interface {
	// CreateRequest files a pending request for the employee after
	// validating the dates and rejecting overlaps with the employee's
	// existing pending or approved requests.
	CreateRequest(ctx context.Context, employeeID string, body CreateLeaveRequestBody) (LeaveRequestResponse, error)

	GetRequest(ctx context.Context, requestID string) (LeaveRequestResponse, error)
	ListMyRequests(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	ListPending(ctx context.Context) ([]LeaveRequestResponse, error)

	// Approve moves pending -> approved and debits the balance ledger in
	// the same transaction. Either both writes land or neither does.
	Approve(ctx context.Context, requestID, approverID string, body DecideLeaveRequestBody) error
	Reject(ctx context.Context, requestID, approverID string, body DecideLeaveRequestBody) error

	// Cancel handles both pending and approved requests; cancelling an
	// approved one credits the debited days back. An empty
	// callerEmployeeID is an administrative cancel and skips the
	// ownership check.
	Cancel(ctx context.Context, requestID, callerEmployeeID string, body CancelLeaveRequestBody) error

	Balances(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error)

	// InitBalances seeds the employee's yearly ledger rows with the
	// default allocations. Called when the employee record is created.
	InitBalances(ctx context.Context, employeeID string, year int) error
}
