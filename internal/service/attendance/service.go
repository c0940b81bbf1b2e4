package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/domain/notification"
)

type AttendanceServiceImpl struct {
	attendance.Repository
	employeeRepo employee.Repository
	notifier     notification.Notifier
	now          func() time.Time
}

func NewAttendanceService(
	repo attendance.Repository,
	employeeRepo employee.Repository,
	notifier notification.Notifier,
) attendance.Service {
	return &AttendanceServiceImpl{
		Repository:   repo,
		employeeRepo: employeeRepo,
		notifier:     notifier,
		now:          time.Now,
	}
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn implements attendance.Service. The first check-in of the day
// wins; retries and races both surface ErrAlreadyCheckedIn without
// touching the stored record.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string, body attendance.ClockBody) (attendance.DayRecordResponse, error) {
	if err := body.Validate(); err != nil {
		return attendance.DayRecordResponse{}, err
	}
	if _, err := a.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.DayRecordResponse{}, err
	}

	now := a.now()
	date := dayOf(now)
	method := attendance.ClockMethod(body.Method)

	existing, err := a.Repository.GetByEmployeeDate(ctx, employeeID, date)
	switch {
	case err == nil:
		if existing.CheckInTime != nil {
			return attendance.DayRecordResponse{}, attendance.ErrAlreadyCheckedIn
		}
		// The day was marked manually before the employee clocked in.
		existing.CheckInTime = &now
		existing.CheckInLocation = body.Location
		existing.CheckInMethod = &method
		existing.Status = attendance.StatusAtCheckIn(now)
		if err := a.Repository.Update(ctx, existing); err != nil {
			return attendance.DayRecordResponse{}, fmt.Errorf("failed to update day record: %w", err)
		}
		return attendance.ToDayRecordResponse(existing), nil

	case errors.Is(err, attendance.ErrRecordNotFound):
		record := attendance.DayRecord{
			EmployeeID:      employeeID,
			Date:            date,
			CheckInTime:     &now,
			CheckInLocation: body.Location,
			CheckInMethod:   &method,
			Status:          attendance.StatusAtCheckIn(now),
		}
		created, err := a.Repository.Create(ctx, record)
		if err != nil {
			if errors.Is(err, attendance.ErrDuplicateDayRecord) {
				return attendance.DayRecordResponse{}, attendance.ErrAlreadyCheckedIn
			}
			return attendance.DayRecordResponse{}, fmt.Errorf("failed to create day record: %w", err)
		}
		return attendance.ToDayRecordResponse(created), nil

	default:
		return attendance.DayRecordResponse{}, fmt.Errorf("failed to get day record: %w", err)
	}
}

// CheckOut implements attendance.Service.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string, body attendance.ClockBody) (attendance.DayRecordResponse, error) {
	if err := body.Validate(); err != nil {
		return attendance.DayRecordResponse{}, err
	}

	now := a.now()
	record, err := a.Repository.GetByEmployeeDate(ctx, employeeID, dayOf(now))
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.DayRecordResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.DayRecordResponse{}, fmt.Errorf("failed to get day record: %w", err)
	}
	if record.CheckInTime == nil {
		return attendance.DayRecordResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOutTime != nil {
		return attendance.DayRecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	method := attendance.ClockMethod(body.Method)
	record.CheckOutTime = &now
	record.CheckOutLocation = body.Location
	record.CheckOutMethod = &method

	total, overtime := attendance.ComputeWorkHours(*record.CheckInTime, now, record.BreakMinutes)
	record.TotalHours = &total
	record.OvertimeHours = &overtime

	if err := a.Repository.Update(ctx, record); err != nil {
		return attendance.DayRecordResponse{}, fmt.Errorf("failed to update day record: %w", err)
	}
	return attendance.ToDayRecordResponse(record), nil
}

// Today implements attendance.Service.
func (a *AttendanceServiceImpl) Today(ctx context.Context, employeeID string) (attendance.DayRecordResponse, error) {
	record, err := a.Repository.GetByEmployeeDate(ctx, employeeID, dayOf(a.now()))
	if err != nil {
		return attendance.DayRecordResponse{}, err
	}
	return attendance.ToDayRecordResponse(record), nil
}

// History implements attendance.Service.
func (a *AttendanceServiceImpl) History(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.DayRecordResponse, error) {
	records, err := a.Repository.ListByEmployeeRange(ctx, employeeID, dayOf(from), dayOf(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list day records: %w", err)
	}

	responses := make([]attendance.DayRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToDayRecordResponse(rec))
	}
	return responses, nil
}

// Summary implements attendance.Service.
func (a *AttendanceServiceImpl) Summary(ctx context.Context, employeeID string, month, year int) (attendance.SummaryResponse, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	records, err := a.Repository.ListByEmployeeRange(ctx, employeeID, from, to)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to list day records: %w", err)
	}

	return attendance.ToSummaryResponse(attendance.Summarize(employeeID, from, to, records)), nil
}

// Mark implements attendance.Service. A record for the day is created
// when none exists, updated in place otherwise.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, body attendance.MarkBody) (attendance.DayRecordResponse, error) {
	if err := body.Validate(); err != nil {
		return attendance.DayRecordResponse{}, err
	}
	if _, err := a.employeeRepo.GetByID(ctx, body.EmployeeID); err != nil {
		return attendance.DayRecordResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", body.Date)
	status := attendance.DayStatus(body.Status)

	existing, err := a.Repository.GetByEmployeeDate(ctx, body.EmployeeID, date)
	switch {
	case err == nil:
		existing.Status = status
		if err := a.Repository.Update(ctx, existing); err != nil {
			return attendance.DayRecordResponse{}, fmt.Errorf("failed to update day record: %w", err)
		}
		return attendance.ToDayRecordResponse(existing), nil

	case errors.Is(err, attendance.ErrRecordNotFound):
		method := attendance.MethodManual
		created, err := a.Repository.Create(ctx, attendance.DayRecord{
			EmployeeID:    body.EmployeeID,
			Date:          date,
			Status:        status,
			CheckInMethod: &method,
		})
		if err != nil {
			return attendance.DayRecordResponse{}, fmt.Errorf("failed to create day record: %w", err)
		}
		return attendance.ToDayRecordResponse(created), nil

	default:
		return attendance.DayRecordResponse{}, fmt.Errorf("failed to get day record: %w", err)
	}
}

// MissedCheckoutScan implements attendance.Service.
func (a *AttendanceServiceImpl) MissedCheckoutScan(ctx context.Context, date time.Time) (int, error) {
	open, err := a.Repository.ListOpenForDate(ctx, dayOf(date))
	if err != nil {
		return 0, fmt.Errorf("failed to list open day records: %w", err)
	}

	notified := 0
	for _, rec := range open {
		emp, err := a.employeeRepo.GetByID(ctx, rec.EmployeeID)
		if err != nil {
			continue
		}
		a.notifier.MissedCheckout(ctx, emp)
		notified++
	}
	return notified, nil
}
