// Package memory holds in-memory repository implementations used by the
// service tests. They honor the same contracts as the postgresql
// implementations, including the conditional-debit semantics.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

type LeaveBalanceRepository struct {
	mu       sync.Mutex
	balances map[string]leave.LeaveBalance
}

func NewLeaveBalanceRepository() *LeaveBalanceRepository {
	return &LeaveBalanceRepository{balances: make(map[string]leave.LeaveBalance)}
}

func balanceKey(employeeID string, category leave.Category, year int) string {
	return employeeID + "|" + string(category) + "|" + time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006")
}

func (r *LeaveBalanceRepository) Create(_ context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	balance.ID = uuid.NewString()
	balance.CreatedAt = time.Now()
	balance.UpdatedAt = balance.CreatedAt
	r.balances[balanceKey(balance.EmployeeID, balance.Category, balance.Year)] = balance
	return balance, nil
}

func (r *LeaveBalanceRepository) GetByEmployeeYear(_ context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]leave.LeaveBalance, 0)
	for _, b := range r.balances {
		if b.EmployeeID == employeeID && b.Year == year {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *LeaveBalanceRepository) GetByEmployeeCategoryYear(_ context.Context, employeeID string, category leave.Category, year int) (leave.LeaveBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.balances[balanceKey(employeeID, category, year)]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	return b, nil
}

func (r *LeaveBalanceRepository) Debit(_ context.Context, employeeID string, category leave.Category, year int, days decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := balanceKey(employeeID, category, year)
	b, ok := r.balances[key]
	if !ok {
		return leave.ErrInsufficientBalance
	}
	if b.Allocated.Sub(b.Used).Sub(days).IsNegative() {
		return leave.ErrInsufficientBalance
	}
	b.Used = b.Used.Add(days)
	b.UpdatedAt = time.Now()
	r.balances[key] = b
	return nil
}

func (r *LeaveBalanceRepository) Credit(_ context.Context, employeeID string, category leave.Category, year int, days decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := balanceKey(employeeID, category, year)
	b, ok := r.balances[key]
	if !ok {
		return leave.ErrBalanceNotFound
	}
	b.Used = b.Used.Sub(days)
	if b.Used.IsNegative() {
		b.Used = decimal.Zero
	}
	b.UpdatedAt = time.Now()
	r.balances[key] = b
	return nil
}

type LeaveRequestRepository struct {
	mu       sync.Mutex
	requests map[string]leave.LeaveRequest
}

func NewLeaveRequestRepository() *LeaveRequestRepository {
	return &LeaveRequestRepository{requests: make(map[string]leave.LeaveRequest)}
}

func (r *LeaveRequestRepository) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request.ID = uuid.NewString()
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	r.requests[request.ID] = request
	return request, nil
}

func (r *LeaveRequestRepository) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r *LeaveRequestRepository) Update(_ context.Context, upd leave.UpdateLeaveRequestRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[upd.ID]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	if upd.Status != nil {
		req.Status = *upd.Status
	}
	if upd.ApprovedBy != nil {
		req.ApprovedBy = upd.ApprovedBy
	}
	if upd.ApprovedAt != nil {
		req.ApprovedAt = upd.ApprovedAt
	}
	if upd.RejectedBy != nil {
		req.RejectedBy = upd.RejectedBy
	}
	if upd.RejectedAt != nil {
		req.RejectedAt = upd.RejectedAt
	}
	if upd.AdminComments != nil {
		req.AdminComments = upd.AdminComments
	}
	if upd.CancelledAt != nil {
		req.CancelledAt = upd.CancelledAt
	}
	if upd.CancellationReason != nil {
		req.CancellationReason = upd.CancellationReason
	}
	req.UpdatedAt = time.Now()
	r.requests[upd.ID] = req
	return nil
}

func (r *LeaveRequestRepository) ListByEmployee(_ context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]leave.LeaveRequest, 0)
	for _, req := range r.requests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *LeaveRequestRepository) ListByStatus(_ context.Context, status leave.RequestStatus) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]leave.LeaveRequest, 0)
	for _, req := range r.requests {
		if req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *LeaveRequestRepository) FindOverlapping(_ context.Context, employeeID string, startDate, endDate time.Time) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]leave.LeaveRequest, 0)
	for _, req := range r.requests {
		if req.EmployeeID != employeeID {
			continue
		}
		if req.Status != leave.RequestStatusPending && req.Status != leave.RequestStatusApproved {
			continue
		}
		if leave.Overlaps(req.StartDate, req.EndDate, startDate, endDate) {
			out = append(out, req)
		}
	}
	return out, nil
}
