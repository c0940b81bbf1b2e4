package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

type Service interface {
	// UpdateSalaryConfig appends a new configuration version for the
	// employee, merging the provided fields over the current one. A
	// configuration whose components exceed the wage is refused.
	UpdateSalaryConfig(ctx context.Context, employeeID string, body UpdateSalaryConfigBody) (BreakdownResponse, error)

	// InitSalaryConfig seeds the default configuration for a new
	// employee.
	InitSalaryConfig(ctx context.Context, employeeID string, monthlyWage decimal.Decimal) error

	GetBreakdown(ctx context.Context, employeeID string) (BreakdownResponse, error)
	ConfigHistory(ctx context.Context, employeeID string) ([]SalaryConfiguration, error)

	// GenerateForPeriod runs payroll for every active employee with a
	// salary configuration, skipping employees whose record for the
	// period already exists. Returns the records created in this run.
	GenerateForPeriod(ctx context.Context, month, year int) ([]PayrollRecordResponse, error)

	GetRecord(ctx context.Context, recordID string) (PayrollRecordResponse, error)
	ListByPeriod(ctx context.Context, month, year int) ([]PayrollRecordResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayrollRecordResponse, error)
	MarkPaid(ctx context.Context, recordID, paidBy string) error

	// Payslip renders the payroll record as a PDF document.
	Payslip(ctx context.Context, recordID string) ([]byte, error)
}
