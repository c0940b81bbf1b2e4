package leave

import (
	"context"
	"testing"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifier struct {
	requested []string
	decided   []string
}

func (s *stubNotifier) LeaveRequested(_ context.Context, request leave.LeaveRequest, _ employee.Employee) {
	s.requested = append(s.requested, request.ID)
}

func (s *stubNotifier) LeaveDecided(_ context.Context, request leave.LeaveRequest, _ employee.Employee, _ string) {
	s.decided = append(s.decided, request.ID)
}

func (s *stubNotifier) MissedCheckout(context.Context, employee.Employee) {}
func (s *stubNotifier) Birthday(context.Context, employee.Employee)       {}
func (s *stubNotifier) Anniversary(context.Context, employee.Employee, int) {
}

type fixture struct {
	service      leave.Service
	balanceRepo  *memory.LeaveBalanceRepository
	requestRepo  *memory.LeaveRequestRepository
	employeeRepo *memory.EmployeeRepository
	notifier     *stubNotifier
	employeeID   string
	approverID   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	balanceRepo := memory.NewLeaveBalanceRepository()
	requestRepo := memory.NewLeaveRequestRepository()
	employeeRepo := memory.NewEmployeeRepository()
	notifier := &stubNotifier{}

	svc := NewLeaveService(nil, balanceRepo, requestRepo, employeeRepo, notifier)

	emp, err := employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode: "ENG-0001",
		FullName:     "Priya Sharma",
		Email:        "priya@example.com",
		HireDate:     time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:       employee.EmploymentStatusActive,
	})
	require.NoError(t, err)

	approver, err := employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode: "HR-0001",
		FullName:     "Rahul Mehta",
		Email:        "rahul@example.com",
		HireDate:     time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:       employee.EmploymentStatusActive,
	})
	require.NoError(t, err)

	require.NoError(t, svc.InitBalances(ctx, emp.ID, 2026))

	return &fixture{
		service:      svc,
		balanceRepo:  balanceRepo,
		requestRepo:  requestRepo,
		employeeRepo: employeeRepo,
		notifier:     notifier,
		employeeID:   emp.ID,
		approverID:   approver.ID,
	}
}

func (f *fixture) createRequest(t *testing.T, leaveType, start, end string) leave.LeaveRequestResponse {
	t.Helper()
	resp, err := f.service.CreateRequest(context.Background(), f.employeeID, leave.CreateLeaveRequestBody{
		LeaveType: leaveType,
		StartDate: start,
		EndDate:   end,
		Reason:    "family time",
	})
	require.NoError(t, err)
	return resp
}

func (f *fixture) remaining(t *testing.T, category leave.Category) string {
	t.Helper()
	b, err := f.balanceRepo.GetByEmployeeCategoryYear(context.Background(), f.employeeID, category, 2026)
	require.NoError(t, err)
	return b.Remaining().String()
}

func TestCreateRequest(t *testing.T) {
	f := newFixture(t)

	resp := f.createRequest(t, "vacation", "2026-06-01", "2026-06-03")

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "3", resp.TotalDays)
	assert.Len(t, f.notifier.requested, 1)
	// No debit until approval.
	assert.Equal(t, "12", f.remaining(t, leave.CategoryVacation))
}

func TestCreateRequestRejectsOverlap(t *testing.T) {
	f := newFixture(t)
	f.createRequest(t, "vacation", "2026-06-01", "2026-06-05")

	_, err := f.service.CreateRequest(context.Background(), f.employeeID, leave.CreateLeaveRequestBody{
		LeaveType: "sick",
		StartDate: "2026-06-05",
		EndDate:   "2026-06-08",
		Reason:    "fever",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, leave.ErrOverlappingRequest)

	var overlapErr *leave.OverlappingRequestError
	require.ErrorAs(t, err, &overlapErr)
	assert.Equal(t, leave.RequestStatusPending, overlapErr.Status)
}

func TestCreateRequestAllowsAdjacentDates(t *testing.T) {
	f := newFixture(t)
	f.createRequest(t, "vacation", "2026-06-01", "2026-06-03")

	// Starting the day after the previous request ends is not an overlap.
	_, err := f.service.CreateRequest(context.Background(), f.employeeID, leave.CreateLeaveRequestBody{
		LeaveType: "vacation",
		StartDate: "2026-06-04",
		EndDate:   "2026-06-05",
		Reason:    "extended trip",
	})
	assert.NoError(t, err)
}

func TestApproveDebitsBalance(t *testing.T) {
	f := newFixture(t)
	resp := f.createRequest(t, "vacation", "2026-06-01", "2026-06-03")

	err := f.service.Approve(context.Background(), resp.ID, f.approverID, leave.DecideLeaveRequestBody{})
	require.NoError(t, err)

	assert.Equal(t, "9", f.remaining(t, leave.CategoryVacation))

	updated, err := f.requestRepo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.RequestStatusApproved, updated.Status)
	assert.NotNil(t, updated.ApprovedAt)
	assert.Len(t, f.notifier.decided, 1)
}

func TestApproveInsufficientBalanceRollsBack(t *testing.T) {
	f := newFixture(t)
	// Personal allocation is 5 days; ask for 6.
	resp := f.createRequest(t, "personal", "2026-06-01", "2026-06-06")

	err := f.service.Approve(context.Background(), resp.ID, f.approverID, leave.DecideLeaveRequestBody{})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)

	// Balance untouched, request still pending.
	assert.Equal(t, "5", f.remaining(t, leave.CategoryPersonal))
	updated, getErr := f.requestRepo.GetByID(context.Background(), resp.ID)
	require.NoError(t, getErr)
	assert.Equal(t, leave.RequestStatusPending, updated.Status)
}

func TestApproveUnpaidSkipsLedger(t *testing.T) {
	f := newFixture(t)
	resp := f.createRequest(t, "unpaid", "2026-06-01", "2026-06-30")

	err := f.service.Approve(context.Background(), resp.ID, f.approverID, leave.DecideLeaveRequestBody{})
	require.NoError(t, err)

	// Tracked buckets stay full.
	assert.Equal(t, "12", f.remaining(t, leave.CategoryVacation))
	assert.Equal(t, "8", f.remaining(t, leave.CategorySick))
	assert.Equal(t, "5", f.remaining(t, leave.CategoryPersonal))
}

func TestApproveRejectedRequestFails(t *testing.T) {
	f := newFixture(t)
	resp := f.createRequest(t, "vacation", "2026-06-01", "2026-06-03")

	require.NoError(t, f.service.Reject(context.Background(), resp.ID, f.approverID, leave.DecideLeaveRequestBody{}))

	err := f.service.Approve(context.Background(), resp.ID, f.approverID, leave.DecideLeaveRequestBody{})
	assert.ErrorIs(t, err, leave.ErrInvalidTransition)

	var transitionErr *leave.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, leave.RequestStatusRejected, transitionErr.From)
	assert.Equal(t, leave.RequestStatusApproved, transitionErr.To)
}

func TestCancelApprovedCreditsBack(t *testing.T) {
	f := newFixture(t)
	resp := f.createRequest(t, "vacation", "2026-06-01", "2026-06-03")

	require.NoError(t, f.service.Approve(context.Background(), resp.ID, f.approverID, leave.DecideLeaveRequestBody{}))
	assert.Equal(t, "9", f.remaining(t, leave.CategoryVacation))

	err := f.service.Cancel(context.Background(), resp.ID, f.employeeID, leave.CancelLeaveRequestBody{Reason: "plans changed"})
	require.NoError(t, err)

	// Approve then cancel restores the original remaining.
	assert.Equal(t, "12", f.remaining(t, leave.CategoryVacation))
}

func TestCancelPendingLeavesLedgerAlone(t *testing.T) {
	f := newFixture(t)
	resp := f.createRequest(t, "vacation", "2026-06-01", "2026-06-03")

	err := f.service.Cancel(context.Background(), resp.ID, f.employeeID, leave.CancelLeaveRequestBody{Reason: "never mind"})
	require.NoError(t, err)

	assert.Equal(t, "12", f.remaining(t, leave.CategoryVacation))
}

func TestCancelByAnotherEmployee(t *testing.T) {
	f := newFixture(t)
	resp := f.createRequest(t, "vacation", "2026-06-01", "2026-06-03")

	err := f.service.Cancel(context.Background(), resp.ID, f.approverID, leave.CancelLeaveRequestBody{Reason: "not mine"})
	assert.ErrorIs(t, err, leave.ErrNotRequestOwner)
}

func TestCancelledDatesReusable(t *testing.T) {
	f := newFixture(t)
	resp := f.createRequest(t, "vacation", "2026-06-01", "2026-06-03")
	require.NoError(t, f.service.Cancel(context.Background(), resp.ID, f.employeeID, leave.CancelLeaveRequestBody{Reason: "rebooking"}))

	// Cancelled requests no longer block the dates.
	_, err := f.service.CreateRequest(context.Background(), f.employeeID, leave.CreateLeaveRequestBody{
		LeaveType: "vacation",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-03",
		Reason:    "rebooked",
	})
	assert.NoError(t, err)
}

func TestHalfDayRequest(t *testing.T) {
	f := newFixture(t)
	half := "morning"

	resp, err := f.service.CreateRequest(context.Background(), f.employeeID, leave.CreateLeaveRequestBody{
		LeaveType:   "sick",
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-01",
		IsHalfDay:   true,
		HalfDayType: &half,
		Reason:      "doctor visit",
	})
	require.NoError(t, err)
	assert.Equal(t, "0.5", resp.TotalDays)

	require.NoError(t, f.service.Approve(context.Background(), resp.ID, f.approverID, leave.DecideLeaveRequestBody{}))
	assert.Equal(t, "7.5", f.remaining(t, leave.CategorySick))
}

func TestBalancesOrdering(t *testing.T) {
	f := newFixture(t)

	balances, err := f.service.Balances(context.Background(), f.employeeID, 2026)
	require.NoError(t, err)
	require.Len(t, balances, 3)
	assert.Equal(t, "vacation", balances[0].Category)
	assert.Equal(t, "sick", balances[1].Category)
	assert.Equal(t, "personal", balances[2].Category)
	assert.Equal(t, "12", balances[0].Remaining)
}
