package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
	lr.is_half_day, lr.half_day_type, lr.total_days, lr.reason, lr.status,
	lr.approved_by, lr.approved_at, lr.rejected_by, lr.rejected_at, lr.admin_comments,
	lr.cancelled_at, lr.cancellation_reason, lr.created_at, lr.updated_at,
	e.full_name AS employee_name
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
		&req.IsHalfDay, &req.HalfDayType, &req.TotalDays, &req.Reason, &req.Status,
		&req.ApprovedBy, &req.ApprovedAt, &req.RejectedBy, &req.RejectedAt, &req.AdminComments,
		&req.CancelledAt, &req.CancellationReason, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)
	return req, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date,
			is_half_day, half_day_type, total_days, reason, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), request.EmployeeID, request.LeaveType, request.StartDate, request.EndDate,
		request.IsHalfDay, request.HalfDayType, request.TotalDays, request.Reason, request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.id = $1`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, req leave.UpdateLeaveRequestRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.ApprovedBy != nil {
		updates["approved_by"] = *req.ApprovedBy
	}
	if req.ApprovedAt != nil {
		updates["approved_at"] = *req.ApprovedAt
	}
	if req.RejectedBy != nil {
		updates["rejected_by"] = *req.RejectedBy
	}
	if req.RejectedAt != nil {
		updates["rejected_at"] = *req.RejectedAt
	}
	if req.AdminComments != nil {
		updates["admin_comments"] = *req.AdminComments
	}
	if req.CancelledAt != nil {
		updates["cancelled_at"] = *req.CancelledAt
	}
	if req.CancellationReason != nil {
		updates["cancellation_reason"] = *req.CancellationReason
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for leave request update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE leave_requests SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update leave request %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.employee_id = $1
		ORDER BY lr.start_date DESC`

	return r.queryRequests(ctx, q, query, employeeID)
}

func (r *leaveRequestRepositoryImpl) ListByStatus(ctx context.Context, status leave.RequestStatus) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.status = $1
		ORDER BY lr.created_at`

	return r.queryRequests(ctx, q, query, status)
}

// FindOverlapping matches pending/approved requests whose inclusive
// range intersects [startDate, endDate].
func (r *leaveRequestRepositoryImpl) FindOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.employee_id = $1
		AND lr.status IN ($2, $3)
		AND lr.start_date <= $4 AND $5 <= lr.end_date
		ORDER BY lr.start_date`

	return r.queryRequests(ctx, q, query, employeeID,
		leave.RequestStatusPending, leave.RequestStatusApproved, endDate, startDate)
}

func (r *leaveRequestRepositoryImpl) queryRequests(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}
