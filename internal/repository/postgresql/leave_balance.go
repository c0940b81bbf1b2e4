package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (id, employee_id, category, year, allocated, used, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), balance.EmployeeID, balance.Category, balance.Year,
		balance.Allocated, balance.Used,
	).Scan(&balance.ID, &balance.CreatedAt, &balance.UpdatedAt)
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

func (r *leaveBalanceRepositoryImpl) GetByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, category, year, allocated, used, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND year = $2
		ORDER BY category
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make([]leave.LeaveBalance, 0)
	for rows.Next() {
		var b leave.LeaveBalance
		if err := rows.Scan(
			&b.ID, &b.EmployeeID, &b.Category, &b.Year,
			&b.Allocated, &b.Used, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}

	return balances, nil
}

func (r *leaveBalanceRepositoryImpl) GetByEmployeeCategoryYear(ctx context.Context, employeeID string, category leave.Category, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, category, year, allocated, used, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND category = $2 AND year = $3
	`

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, category, year).Scan(
		&b.ID, &b.EmployeeID, &b.Category, &b.Year,
		&b.Allocated, &b.Used, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}

	return b, nil
}

// Debit bumps used behind a remaining-balance predicate. Zero matched
// rows means the debit would drive remaining negative; two concurrent
// approvals cannot both pass the predicate, so the loser surfaces as
// ErrInsufficientBalance instead of silently overdrawing.
func (r *leaveBalanceRepositoryImpl) Debit(ctx context.Context, employeeID string, category leave.Category, year int, days decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET used = used + $1, updated_at = NOW()
		WHERE employee_id = $2 AND category = $3 AND year = $4
		AND allocated - used - $1 >= 0
	`

	result, err := q.Exec(ctx, query, days, employeeID, category, year)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return leave.ErrInsufficientBalance
	}

	return nil
}

// Credit returns days to the balance, never below zero used.
func (r *leaveBalanceRepositoryImpl) Credit(ctx context.Context, employeeID string, category leave.Category, year int, days decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET used = GREATEST(used - $1, 0), updated_at = NOW()
		WHERE employee_id = $2 AND category = $3 AND year = $4
	`

	result, err := q.Exec(ctx, query, days, employeeID, category, year)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}

	return nil
}
