package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComponentPercentages configures how a monthly wage splits into salary
// components. Basic is a percentage of the wage; every other component
// is a percentage of basic.
type ComponentPercentages struct {
	Basic                decimal.Decimal
	HRA                  decimal.Decimal
	StandardAllowance    decimal.Decimal
	PerformanceBonus     decimal.Decimal
	LeaveTravelAllowance decimal.Decimal
}

// PFRates are the provident fund contribution percentages applied to basic.
type PFRates struct {
	EmployeePct decimal.Decimal
	EmployerPct decimal.Decimal
}

// SalaryConfiguration - per-employee payroll configuration. Created with
// defaults when the employee record is created, superseded on update,
// never deleted.
type SalaryConfiguration struct {
	ID              string
	EmployeeID      string
	MonthlyWage     decimal.Decimal
	Percentages     ComponentPercentages
	PFRates         PFRates
	ProfessionalTax decimal.Decimal
	EffectiveFrom   time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ComponentAmounts is the output of wage decomposition.
type ComponentAmounts struct {
	BasicSalary          decimal.Decimal
	HRA                  decimal.Decimal
	StandardAllowance    decimal.Decimal
	PerformanceBonus     decimal.Decimal
	LeaveTravelAllowance decimal.Decimal
	FixedAllowance       decimal.Decimal

	// OverBudget is set when the configured components exceed the wage
	// and FixedAllowance had to be clamped to zero. Callers must refuse
	// to persist a configuration in this state.
	OverBudget bool
}

// Sum returns the total of all six components.
func (c ComponentAmounts) Sum() decimal.Decimal {
	return c.BasicSalary.
		Add(c.HRA).
		Add(c.StandardAllowance).
		Add(c.PerformanceBonus).
		Add(c.LeaveTravelAllowance).
		Add(c.FixedAllowance)
}

// Deductions is the output of the deduction calculator. EmployerPF is
// informational; it does not reduce net salary.
type Deductions struct {
	EmployeePF      decimal.Decimal
	EmployerPF      decimal.Decimal
	ProfessionalTax decimal.Decimal
	Total           decimal.Decimal
}

// SalaryBreakdown is the full derived result for one payroll run.
type SalaryBreakdown struct {
	Components ComponentAmounts
	Deductions Deductions

	GrossSalary decimal.Decimal
	NetSalary   decimal.Decimal
}

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusDraft PayrollStatus = "draft"
	PayrollStatusPaid  PayrollStatus = "paid"
)

// PayrollRecord - persisted monthly payroll result per employee.
type PayrollRecord struct {
	ID          string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int

	BasicSalary          decimal.Decimal
	HRA                  decimal.Decimal
	StandardAllowance    decimal.Decimal
	PerformanceBonus     decimal.Decimal
	LeaveTravelAllowance decimal.Decimal
	FixedAllowance       decimal.Decimal

	EmployeePF      decimal.Decimal
	EmployerPF      decimal.Decimal
	ProfessionalTax decimal.Decimal

	GrossSalary     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal

	Status PayrollStatus
	PaidAt *time.Time
	PaidBy *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
