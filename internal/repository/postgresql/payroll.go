package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peoplecore/hrm-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.period_month, p.period_year,
	p.basic_salary, p.hra, p.standard_allowance, p.performance_bonus,
	p.leave_travel_allowance, p.fixed_allowance,
	p.employee_pf, p.employer_pf, p.professional_tax,
	p.gross_salary, p.total_deductions, p.net_salary,
	p.status, p.paid_at, p.paid_by, p.created_at, p.updated_at,
	e.full_name AS employee_name, e.employee_code
`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear,
		&rec.BasicSalary, &rec.HRA, &rec.StandardAllowance, &rec.PerformanceBonus,
		&rec.LeaveTravelAllowance, &rec.FixedAllowance,
		&rec.EmployeePF, &rec.EmployerPF, &rec.ProfessionalTax,
		&rec.GrossSalary, &rec.TotalDeductions, &rec.NetSalary,
		&rec.Status, &rec.PaidAt, &rec.PaidBy, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode,
	)
	return rec, err
}

func (r *payrollRepositoryImpl) Create(ctx context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			id, employee_id, period_month, period_year,
			basic_salary, hra, standard_allowance, performance_bonus,
			leave_travel_allowance, fixed_allowance,
			employee_pf, employer_pf, professional_tax,
			gross_salary, total_deductions, net_salary,
			status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10,
			$11, $12, $13,
			$14, $15, $16,
			$17, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), rec.EmployeeID, rec.PeriodMonth, rec.PeriodYear,
		rec.BasicSalary, rec.HRA, rec.StandardAllowance, rec.PerformanceBonus,
		rec.LeaveTravelAllowance, rec.FixedAllowance,
		rec.EmployeePF, rec.EmployerPF, rec.ProfessionalTax,
		rec.GrossSalary, rec.TotalDeductions, rec.NetSalary,
		rec.Status,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.PayrollRecord{}, payroll.ErrPayrollAlreadyExists
		}
		return payroll.PayrollRecord{}, err
	}

	return rec, nil
}

func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.id = $1`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, err
	}
	return rec, nil
}

func (r *payrollRepositoryImpl) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.employee_id = $1 AND p.period_month = $2 AND p.period_year = $3`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, err
	}
	return rec, nil
}

func (r *payrollRepositoryImpl) ListByPeriod(ctx context.Context, month, year int) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.period_month = $1 AND p.period_year = $2
		ORDER BY e.full_name`

	return r.queryRecords(ctx, q, query, month, year)
}

func (r *payrollRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.employee_id = $1
		ORDER BY p.period_year DESC, p.period_month DESC`

	return r.queryRecords(ctx, q, query, employeeID)
}

func (r *payrollRepositoryImpl) MarkPaid(ctx context.Context, id, paidBy string, paidAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = $1, paid_at = $2, paid_by = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
	`

	tag, err := q.Exec(ctx, query, payroll.PayrollStatusPaid, paidAt, paidBy, id, payroll.PayrollStatusDraft)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollAlreadyPaid
	}
	return nil
}

func (r *payrollRepositoryImpl) queryRecords(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]payroll.PayrollRecord, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]payroll.PayrollRecord, 0)
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
