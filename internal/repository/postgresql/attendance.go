package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

const dayRecordColumns = `
	a.id, a.employee_id, a.date,
	a.check_in_time, a.check_in_location, a.check_in_method,
	a.check_out_time, a.check_out_location, a.check_out_method,
	a.status, a.break_minutes, a.total_hours, a.overtime_hours,
	a.created_at, a.updated_at,
	e.full_name AS employee_name
`

func scanDayRecord(row pgx.Row) (attendance.DayRecord, error) {
	var rec attendance.DayRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date,
		&rec.CheckInTime, &rec.CheckInLocation, &rec.CheckInMethod,
		&rec.CheckOutTime, &rec.CheckOutLocation, &rec.CheckOutMethod,
		&rec.Status, &rec.BreakMinutes, &rec.TotalHours, &rec.OvertimeHours,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)
	return rec, err
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.DayRecord) (attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date,
			check_in_time, check_in_location, check_in_method,
			status, break_minutes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), record.EmployeeID, record.Date,
		record.CheckInTime, record.CheckInLocation, record.CheckInMethod,
		record.Status, record.BreakMinutes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.DayRecord{}, attendance.ErrDuplicateDayRecord
		}
		return attendance.DayRecord{}, err
	}

	return record, nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dayRecordColumns + `
		FROM attendance_records a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.employee_id = $1 AND a.date = $2`

	rec, err := scanDayRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.DayRecord{}, attendance.ErrRecordNotFound
		}
		return attendance.DayRecord{}, err
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, record attendance.DayRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records SET
			check_in_time = $2, check_in_location = $3, check_in_method = $4,
			check_out_time = $5, check_out_location = $6, check_out_method = $7,
			status = $8, break_minutes = $9, total_hours = $10, overtime_hours = $11,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.CheckInTime, record.CheckInLocation, record.CheckInMethod,
		record.CheckOutTime, record.CheckOutLocation, record.CheckOutMethod,
		record.Status, record.BreakMinutes, record.TotalHours, record.OvertimeHours,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

func (r *attendanceRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dayRecordColumns + `
		FROM attendance_records a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.employee_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date`

	return r.queryRecords(ctx, q, query, employeeID, from, to)
}

func (r *attendanceRepositoryImpl) ListOpenForDate(ctx context.Context, date time.Time) ([]attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dayRecordColumns + `
		FROM attendance_records a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.date = $1 AND a.check_in_time IS NOT NULL AND a.check_out_time IS NULL
		ORDER BY a.check_in_time`

	return r.queryRecords(ctx, q, query, date)
}

func (r *attendanceRepositoryImpl) queryRecords(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.DayRecord, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.DayRecord, 0)
	for rows.Next() {
		rec, err := scanDayRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
