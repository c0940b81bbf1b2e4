package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type SalaryConfigRepository interface {
	Create(ctx context.Context, cfg SalaryConfiguration) (SalaryConfiguration, error)
	// GetCurrent returns the latest configuration for the employee.
	GetCurrent(ctx context.Context, employeeID string) (SalaryConfiguration, error)
	History(ctx context.Context, employeeID string) ([]SalaryConfiguration, error)
}

type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (PayrollRecord, error)
	ListByPeriod(ctx context.Context, month, year int) ([]PayrollRecord, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayrollRecord, error)
	MarkPaid(ctx context.Context, id, paidBy string, paidAt time.Time) error
}

type UpdateSalaryConfigRequest struct {
	EmployeeID      string
	MonthlyWage     *decimal.Decimal
	Percentages     *ComponentPercentages
	PFRates         *PFRates
	ProfessionalTax *decimal.Decimal
}
