package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu      sync.Mutex
	records map[string]attendance.DayRecord
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{records: make(map[string]attendance.DayRecord)}
}

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (r *AttendanceRepository) Create(_ context.Context, record attendance.DayRecord) (attendance.DayRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(record.EmployeeID, record.Date)
	if _, exists := r.records[key]; exists {
		return attendance.DayRecord{}, attendance.ErrDuplicateDayRecord
	}

	record.ID = uuid.NewString()
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	r.records[key] = record
	return record, nil
}

func (r *AttendanceRepository) GetByEmployeeDate(_ context.Context, employeeID string, date time.Time) (attendance.DayRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[dayKey(employeeID, date)]
	if !ok {
		return attendance.DayRecord{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (r *AttendanceRepository) Update(_ context.Context, record attendance.DayRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(record.EmployeeID, record.Date)
	if _, ok := r.records[key]; !ok {
		return attendance.ErrRecordNotFound
	}
	record.UpdatedAt = time.Now()
	r.records[key] = record
	return nil
}

func (r *AttendanceRepository) ListByEmployeeRange(_ context.Context, employeeID string, from, to time.Time) ([]attendance.DayRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]attendance.DayRecord, 0)
	for _, rec := range r.records {
		if rec.EmployeeID != employeeID {
			continue
		}
		if rec.Date.Before(from) || rec.Date.After(to) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *AttendanceRepository) ListOpenForDate(_ context.Context, date time.Time) ([]attendance.DayRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := date.Format("2006-01-02")
	out := make([]attendance.DayRecord, 0)
	for _, rec := range r.records {
		if rec.Date.Format("2006-01-02") != day {
			continue
		}
		if rec.CheckInTime != nil && rec.CheckOutTime == nil {
			out = append(out, rec)
		}
	}
	return out, nil
}
