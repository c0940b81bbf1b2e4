package employee

import (
	"context"
	"testing"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/repository/memory"
	leaveservice "github.com/peoplecore/hrm-backend-go/internal/service/leave"
	payrollservice "github.com/peoplecore/hrm-backend-go/internal/service/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifier struct {
	birthdays     []string
	anniversaries []int
}

func (s *stubNotifier) LeaveRequested(context.Context, leave.LeaveRequest, employee.Employee) {}
func (s *stubNotifier) LeaveDecided(context.Context, leave.LeaveRequest, employee.Employee, string) {
}
func (s *stubNotifier) MissedCheckout(context.Context, employee.Employee) {}

func (s *stubNotifier) Birthday(_ context.Context, emp employee.Employee) {
	s.birthdays = append(s.birthdays, emp.ID)
}

func (s *stubNotifier) Anniversary(_ context.Context, _ employee.Employee, years int) {
	s.anniversaries = append(s.anniversaries, years)
}

type fixture struct {
	service     employee.Service
	repo        *memory.EmployeeRepository
	balanceRepo *memory.LeaveBalanceRepository
	configRepo  *memory.SalaryConfigRepository
	notifier    *stubNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := memory.NewEmployeeRepository()
	balanceRepo := memory.NewLeaveBalanceRepository()
	configRepo := memory.NewSalaryConfigRepository()
	notifier := &stubNotifier{}

	leaveSvc := leaveservice.NewLeaveService(nil, balanceRepo, memory.NewLeaveRequestRepository(), repo, notifier)
	payrollSvc := payrollservice.NewPayrollService(configRepo, memory.NewPayrollRepository(), repo)
	svc := NewEmployeeService(repo, leaveSvc, payrollSvc, notifier)

	return &fixture{
		service:     svc,
		repo:        repo,
		balanceRepo: balanceRepo,
		configRepo:  configRepo,
		notifier:    notifier,
	}
}

func TestCreateSeedsDependentRecords(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.service.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeCode: "ENG-0004",
		FullName:     "Kavya Nair",
		Email:        "kavya@example.com",
		HireDate:     "2026-01-12",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", resp.Status)

	year := time.Now().Year()
	balances, err := f.balanceRepo.GetByEmployeeYear(ctx, resp.ID, year)
	require.NoError(t, err)
	assert.Len(t, balances, 3)

	cfg, err := f.configRepo.GetCurrent(ctx, resp.ID)
	require.NoError(t, err)
	assert.True(t, cfg.MonthlyWage.IsZero())
	assert.Equal(t, "50", cfg.Percentages.Basic.String())
}

func TestCreateDuplicateCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := employee.CreateEmployeeRequest{
		EmployeeCode: "ENG-0005",
		FullName:     "Dev Kapoor",
		Email:        "dev@example.com",
		HireDate:     "2026-02-01",
	}
	_, err := f.service.Create(ctx, req)
	require.NoError(t, err)

	req.Email = "dev2@example.com"
	_, err = f.service.Create(ctx, req)
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestCelebrationScan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	dob := "1990-06-15"
	_, err := f.service.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeCode: "ENG-0006",
		FullName:     "Birthday Person",
		Email:        "bday@example.com",
		HireDate:     "2024-01-01",
		DateOfBirth:  &dob,
	})
	require.NoError(t, err)

	_, err = f.service.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeCode: "ENG-0007",
		FullName:     "Anniversary Person",
		Email:        "anniv@example.com",
		HireDate:     "2021-06-15",
	})
	require.NoError(t, err)

	count, err := f.service.CelebrationScan(ctx, time.Date(2026, 6, 15, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.Len(t, f.notifier.birthdays, 1)
	assert.Equal(t, []int{5}, f.notifier.anniversaries)
}

func TestCelebrationScanQuietDay(t *testing.T) {
	f := newFixture(t)

	count, err := f.service.CelebrationScan(context.Background(), time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, count)
}
