package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifier struct {
	missedCheckouts []string
}

func (s *stubNotifier) LeaveRequested(context.Context, leave.LeaveRequest, employee.Employee) {}
func (s *stubNotifier) LeaveDecided(context.Context, leave.LeaveRequest, employee.Employee, string) {
}
func (s *stubNotifier) Birthday(context.Context, employee.Employee)         {}
func (s *stubNotifier) Anniversary(context.Context, employee.Employee, int) {}

func (s *stubNotifier) MissedCheckout(_ context.Context, emp employee.Employee) {
	s.missedCheckouts = append(s.missedCheckouts, emp.ID)
}

type fixture struct {
	service    attendance.Service
	impl       *AttendanceServiceImpl
	repo       *memory.AttendanceRepository
	notifier   *stubNotifier
	employeeID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := memory.NewAttendanceRepository()
	employeeRepo := memory.NewEmployeeRepository()
	notifier := &stubNotifier{}

	svc := NewAttendanceService(repo, employeeRepo, notifier)

	emp, err := employeeRepo.Create(context.Background(), employee.Employee{
		EmployeeCode: "ENG-0002",
		FullName:     "Arjun Patel",
		Email:        "arjun@example.com",
		HireDate:     time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		Status:       employee.EmploymentStatusActive,
	})
	require.NoError(t, err)

	return &fixture{
		service:    svc,
		impl:       svc.(*AttendanceServiceImpl),
		repo:       repo,
		notifier:   notifier,
		employeeID: emp.ID,
	}
}

func (f *fixture) at(t time.Time) {
	f.impl.now = func() time.Time { return t }
}

func TestCheckInBeforeThreshold(t *testing.T) {
	f := newFixture(t)
	f.at(time.Date(2026, 6, 1, 9, 5, 0, 0, time.UTC))

	resp, err := f.service.CheckIn(context.Background(), f.employeeID, attendance.ClockBody{Method: "web"})
	require.NoError(t, err)
	assert.Equal(t, "present", resp.Status)
	assert.NotNil(t, resp.CheckInTime)
}

func TestCheckInAtThresholdIsLate(t *testing.T) {
	f := newFixture(t)
	f.at(time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC))

	resp, err := f.service.CheckIn(context.Background(), f.employeeID, attendance.ClockBody{Method: "mobile"})
	require.NoError(t, err)
	assert.Equal(t, "late", resp.Status)
}

func TestDoubleCheckInKeepsFirstRecord(t *testing.T) {
	f := newFixture(t)
	first := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	f.at(first)

	_, err := f.service.CheckIn(context.Background(), f.employeeID, attendance.ClockBody{Method: "web"})
	require.NoError(t, err)

	f.at(first.Add(2 * time.Hour))
	_, err = f.service.CheckIn(context.Background(), f.employeeID, attendance.ClockBody{Method: "web"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	record, err := f.repo.GetByEmployeeDate(context.Background(), f.employeeID, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, record.CheckInTime)
	assert.True(t, record.CheckInTime.Equal(first))
	assert.Equal(t, attendance.StatusPresent, record.Status)
}

func TestCheckOutComputesHours(t *testing.T) {
	f := newFixture(t)
	f.at(time.Date(2026, 6, 1, 9, 5, 0, 0, time.UTC))
	_, err := f.service.CheckIn(context.Background(), f.employeeID, attendance.ClockBody{Method: "web"})
	require.NoError(t, err)

	f.at(time.Date(2026, 6, 1, 18, 40, 0, 0, time.UTC))
	resp, err := f.service.CheckOut(context.Background(), f.employeeID, attendance.ClockBody{Method: "web"})
	require.NoError(t, err)

	require.NotNil(t, resp.TotalHours)
	require.NotNil(t, resp.OvertimeHours)
	assert.Equal(t, "9.5833", *resp.TotalHours)
	assert.Equal(t, "1.5833", *resp.OvertimeHours)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	f := newFixture(t)
	f.at(time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC))

	_, err := f.service.CheckOut(context.Background(), f.employeeID, attendance.ClockBody{Method: "web"})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestDoubleCheckOut(t *testing.T) {
	f := newFixture(t)
	f.at(time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC))
	_, err := f.service.CheckIn(context.Background(), f.employeeID, attendance.ClockBody{Method: "web"})
	require.NoError(t, err)

	f.at(time.Date(2026, 6, 1, 17, 0, 0, 0, time.UTC))
	_, err = f.service.CheckOut(context.Background(), f.employeeID, attendance.ClockBody{Method: "web"})
	require.NoError(t, err)

	f.at(time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC))
	_, err = f.service.CheckOut(context.Background(), f.employeeID, attendance.ClockBody{Method: "web"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestManualMarkThenCheckIn(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Mark(context.Background(), attendance.MarkBody{
		EmployeeID: f.employeeID,
		Date:       "2026-06-01",
		Status:     "holiday",
	})
	require.NoError(t, err)

	f.at(time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC))
	resp, err := f.service.CheckIn(context.Background(), f.employeeID, attendance.ClockBody{Method: "web"})
	require.NoError(t, err)
	assert.Equal(t, "present", resp.Status)
}

func TestMarkRejectsClockOnlyStatus(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Mark(context.Background(), attendance.MarkBody{
		EmployeeID: f.employeeID,
		Date:       "2026-06-01",
		Status:     "late",
	})
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	days := []struct {
		day    int
		out    int
		outMin int
	}{
		{1, 17, 0},
		{2, 18, 30},
		{3, 15, 0},
	}
	for _, d := range days {
		f.at(time.Date(2026, 6, d.day, 9, 0, 0, 0, time.UTC))
		_, err := f.service.CheckIn(ctx, f.employeeID, attendance.ClockBody{Method: "web"})
		require.NoError(t, err)
		f.at(time.Date(2026, 6, d.day, d.out, d.outMin, 0, 0, time.UTC))
		_, err = f.service.CheckOut(ctx, f.employeeID, attendance.ClockBody{Method: "web"})
		require.NoError(t, err)
	}

	_, err := f.service.Mark(ctx, attendance.MarkBody{EmployeeID: f.employeeID, Date: "2026-06-06", Status: "weekend"})
	require.NoError(t, err)

	summary, err := f.service.Summary(ctx, f.employeeID, 6, 2026)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.WorkedDays)
	assert.Equal(t, 3, summary.StatusCounts["present"])
	assert.Equal(t, 1, summary.StatusCounts["weekend"])
	// 8 + 9.5 + 6 hours over 3 worked days.
	assert.Equal(t, "23.5", summary.TotalHours)
	assert.Equal(t, "7.8333", summary.AvgHours)
}

func TestMissedCheckoutScan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.at(time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC))
	_, err := f.service.CheckIn(ctx, f.employeeID, attendance.ClockBody{Method: "web"})
	require.NoError(t, err)

	count, err := f.service.MissedCheckoutScan(ctx, time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{f.employeeID}, f.notifier.missedCheckouts)

	// Checked-out employees are not flagged.
	f.at(time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC))
	_, err = f.service.CheckOut(ctx, f.employeeID, attendance.ClockBody{Method: "web"})
	require.NoError(t, err)

	count, err = f.service.MissedCheckoutScan(ctx, time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
