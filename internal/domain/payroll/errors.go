package payroll

import "errors"

var (
	ErrNegativeWage         = errors.New("wage and tax amounts must not be negative")
	ErrNegativePercentage   = errors.New("percentages must not be negative")
	ErrComponentsOverBudget = errors.New("salary components exceed the monthly wage")

	ErrInvalidPeriod = errors.New("period month must be between 1 and 12")

	ErrSalaryConfigNotFound  = errors.New("salary configuration not found")
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
	ErrPayrollAlreadyExists  = errors.New("payroll already generated for this period")
	ErrPayrollAlreadyPaid    = errors.New("payroll record already marked paid")
)
