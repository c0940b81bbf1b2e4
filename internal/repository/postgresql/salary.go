package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrm-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type salaryConfigRepositoryImpl struct {
	db *database.DB
}

func NewSalaryConfigRepository(db *database.DB) payroll.SalaryConfigRepository {
	return &salaryConfigRepositoryImpl{db: db}
}

const salaryConfigColumns = `
	id, employee_id, monthly_wage,
	pct_basic, pct_hra, pct_standard_allowance, pct_performance_bonus, pct_leave_travel_allowance,
	pf_employee_pct, pf_employer_pct, professional_tax,
	effective_from, created_at, updated_at
`

func scanSalaryConfig(row pgx.Row) (payroll.SalaryConfiguration, error) {
	var cfg payroll.SalaryConfiguration
	err := row.Scan(
		&cfg.ID, &cfg.EmployeeID, &cfg.MonthlyWage,
		&cfg.Percentages.Basic, &cfg.Percentages.HRA, &cfg.Percentages.StandardAllowance,
		&cfg.Percentages.PerformanceBonus, &cfg.Percentages.LeaveTravelAllowance,
		&cfg.PFRates.EmployeePct, &cfg.PFRates.EmployerPct, &cfg.ProfessionalTax,
		&cfg.EffectiveFrom, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	return cfg, err
}

// Create appends a new configuration row. Earlier rows are kept as
// history; GetCurrent picks the newest by effective_from.
func (r *salaryConfigRepositoryImpl) Create(ctx context.Context, cfg payroll.SalaryConfiguration) (payroll.SalaryConfiguration, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_configurations (
			id, employee_id, monthly_wage,
			pct_basic, pct_hra, pct_standard_allowance, pct_performance_bonus, pct_leave_travel_allowance,
			pf_employee_pct, pf_employer_pct, professional_tax,
			effective_from, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), cfg.EmployeeID, cfg.MonthlyWage,
		cfg.Percentages.Basic, cfg.Percentages.HRA, cfg.Percentages.StandardAllowance,
		cfg.Percentages.PerformanceBonus, cfg.Percentages.LeaveTravelAllowance,
		cfg.PFRates.EmployeePct, cfg.PFRates.EmployerPct, cfg.ProfessionalTax,
		cfg.EffectiveFrom,
	).Scan(&cfg.ID, &cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		return payroll.SalaryConfiguration{}, err
	}

	return cfg, nil
}

func (r *salaryConfigRepositoryImpl) GetCurrent(ctx context.Context, employeeID string) (payroll.SalaryConfiguration, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryConfigColumns + ` FROM salary_configurations
		WHERE employee_id = $1
		ORDER BY effective_from DESC, created_at DESC
		LIMIT 1`

	cfg, err := scanSalaryConfig(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryConfiguration{}, payroll.ErrSalaryConfigNotFound
		}
		return payroll.SalaryConfiguration{}, err
	}
	return cfg, nil
}

func (r *salaryConfigRepositoryImpl) History(ctx context.Context, employeeID string) ([]payroll.SalaryConfiguration, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryConfigColumns + ` FROM salary_configurations
		WHERE employee_id = $1
		ORDER BY effective_from DESC, created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	configs := make([]payroll.SalaryConfiguration, 0)
	for rows.Next() {
		cfg, err := scanSalaryConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}
