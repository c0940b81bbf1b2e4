package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/notification"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrm-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.BalanceRepository
	leave.RequestRepository
	employeeRepo employee.Repository
	notifier     notification.Notifier
	now          func() time.Time
}

func NewLeaveService(
	db *database.DB,
	balanceRepo leave.BalanceRepository,
	requestRepo leave.RequestRepository,
	employeeRepo employee.Repository,
	notifier notification.Notifier,
) leave.Service {
	return &LeaveServiceImpl{
		db:                db,
		BalanceRepository: balanceRepo,
		RequestRepository: requestRepo,
		employeeRepo:      employeeRepo,
		notifier:          notifier,
		now:               time.Now,
	}
}

// withTx joins repository calls made from fn into one transaction. A
// nil db (in-memory repositories) runs fn directly.
func (l *LeaveServiceImpl) withTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if l.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, l.db, fn)
}

// CreateRequest implements leave.Service.
func (l *LeaveServiceImpl) CreateRequest(ctx context.Context, employeeID string, body leave.CreateLeaveRequestBody) (leave.LeaveRequestResponse, error) {
	if err := body.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := l.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", body.StartDate)
	endDate, _ := time.Parse("2006-01-02", body.EndDate)

	conflicts, err := l.RequestRepository.FindOverlapping(ctx, employeeID, startDate, endDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to check overlapping requests: %w", err)
	}
	if len(conflicts) > 0 {
		return leave.LeaveRequestResponse{}, &leave.OverlappingRequestError{
			ConflictingID: conflicts[0].ID,
			Status:        conflicts[0].Status,
		}
	}

	request := leave.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  leave.LeaveType(body.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		IsHalfDay:  body.IsHalfDay,
		TotalDays:  leave.TotalDays(startDate, endDate, body.IsHalfDay),
		Reason:     body.Reason,
		Status:     leave.RequestStatusPending,
	}
	if body.IsHalfDay && body.HalfDayType != nil {
		ht := leave.HalfDayType(*body.HalfDayType)
		request.HalfDayType = &ht
	}

	created, err := l.RequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	created.EmployeeName = &emp.FullName

	l.notifier.LeaveRequested(ctx, created, emp)

	return leave.ToRequestResponse(created), nil
}

// GetRequest implements leave.Service.
func (l *LeaveServiceImpl) GetRequest(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	request, err := l.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.ToRequestResponse(request), nil
}

// ListMyRequests implements leave.Service.
func (l *LeaveServiceImpl) ListMyRequests(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.RequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// ListPending implements leave.Service.
func (l *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.RequestRepository.ListByStatus(ctx, leave.RequestStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// Approve implements leave.Service. The status write and the ledger
// debit share one transaction; an insufficient balance rolls both back.
func (l *LeaveServiceImpl) Approve(ctx context.Context, requestID, approverID string, body leave.DecideLeaveRequestBody) error {
	request, err := l.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if err := leave.CheckTransition(request.Status, leave.RequestStatusApproved); err != nil {
		return err
	}

	category, err := leave.CategoryOf(request.LeaveType)
	if err != nil {
		return err
	}

	err = l.withTx(ctx, func(txCtx context.Context) error {
		// Debit first: a failed debit must leave the request pending.
		if category.Tracked() {
			if err := l.BalanceRepository.Debit(txCtx, request.EmployeeID, category, request.StartDate.Year(), request.TotalDays); err != nil {
				return err
			}
		}

		status := leave.RequestStatusApproved
		approvedAt := l.now()
		if err := l.RequestRepository.Update(txCtx, leave.UpdateLeaveRequestRequest{
			ID:            requestID,
			Status:        &status,
			ApprovedBy:    &approverID,
			ApprovedAt:    &approvedAt,
			AdminComments: body.AdminComments,
		}); err != nil {
			return fmt.Errorf("failed to approve leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.notifyDecision(ctx, requestID, approverID)
	return nil
}

// Reject implements leave.Service.
func (l *LeaveServiceImpl) Reject(ctx context.Context, requestID, approverID string, body leave.DecideLeaveRequestBody) error {
	request, err := l.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if err := leave.CheckTransition(request.Status, leave.RequestStatusRejected); err != nil {
		return err
	}

	status := leave.RequestStatusRejected
	rejectedAt := l.now()
	if err := l.RequestRepository.Update(ctx, leave.UpdateLeaveRequestRequest{
		ID:            requestID,
		Status:        &status,
		RejectedBy:    &approverID,
		RejectedAt:    &rejectedAt,
		AdminComments: body.AdminComments,
	}); err != nil {
		return fmt.Errorf("failed to reject leave request: %w", err)
	}

	l.notifyDecision(ctx, requestID, approverID)
	return nil
}

// Cancel implements leave.Service. Cancelling an approved request
// credits the debited days back inside the same transaction.
func (l *LeaveServiceImpl) Cancel(ctx context.Context, requestID, callerEmployeeID string, body leave.CancelLeaveRequestBody) error {
	request, err := l.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if callerEmployeeID != "" && request.EmployeeID != callerEmployeeID {
		return leave.ErrNotRequestOwner
	}
	if err := leave.CheckTransition(request.Status, leave.RequestStatusCancelled); err != nil {
		return err
	}

	category, err := leave.CategoryOf(request.LeaveType)
	if err != nil {
		return err
	}
	wasApproved := request.Status == leave.RequestStatusApproved

	return l.withTx(ctx, func(txCtx context.Context) error {
		status := leave.RequestStatusCancelled
		cancelledAt := l.now()
		if err := l.RequestRepository.Update(txCtx, leave.UpdateLeaveRequestRequest{
			ID:                 requestID,
			Status:             &status,
			CancelledAt:        &cancelledAt,
			CancellationReason: &body.Reason,
		}); err != nil {
			return fmt.Errorf("failed to cancel leave request: %w", err)
		}

		if wasApproved && category.Tracked() {
			if err := l.BalanceRepository.Credit(txCtx, request.EmployeeID, category, request.StartDate.Year(), request.TotalDays); err != nil {
				return fmt.Errorf("failed to credit leave balance: %w", err)
			}
		}
		return nil
	})
}

// Balances implements leave.Service. Categories come back in display
// order.
func (l *LeaveServiceImpl) Balances(ctx context.Context, employeeID string, year int) ([]leave.BalanceResponse, error) {
	balances, err := l.BalanceRepository.GetByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave balances: %w", err)
	}

	byCategory := make(map[leave.Category]leave.LeaveBalance, len(balances))
	for _, b := range balances {
		byCategory[b.Category] = b
	}

	responses := make([]leave.BalanceResponse, 0, len(balances))
	for _, category := range leave.AllCategories {
		if b, ok := byCategory[category]; ok {
			responses = append(responses, leave.ToBalanceResponse(b))
		}
	}
	return responses, nil
}

// InitBalances implements leave.Service.
func (l *LeaveServiceImpl) InitBalances(ctx context.Context, employeeID string, year int) error {
	for _, category := range leave.AllCategories {
		if !category.Tracked() {
			continue
		}
		_, err := l.BalanceRepository.Create(ctx, leave.LeaveBalance{
			EmployeeID: employeeID,
			Category:   category,
			Year:       year,
			Allocated:  leave.DefaultAllocation(category),
		})
		if err != nil {
			return fmt.Errorf("failed to create %s balance: %w", category, err)
		}
	}
	return nil
}

func (l *LeaveServiceImpl) notifyDecision(ctx context.Context, requestID, approverID string) {
	request, err := l.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return
	}
	emp, err := l.employeeRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return
	}

	approverName := ""
	if approver, err := l.employeeRepo.GetByID(ctx, approverID); err == nil {
		approverName = approver.FullName
	}

	l.notifier.LeaveDecided(ctx, request, emp, approverName)
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToRequestResponse(r))
	}
	return responses
}
