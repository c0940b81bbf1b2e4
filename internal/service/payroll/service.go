package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payroll.SalaryConfigRepository
	payroll.PayrollRepository
	employeeRepo employee.Repository
	now          func() time.Time
}

func NewPayrollService(
	configRepo payroll.SalaryConfigRepository,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.Repository,
) payroll.Service {
	return &PayrollServiceImpl{
		SalaryConfigRepository: configRepo,
		PayrollRepository:      payrollRepo,
		employeeRepo:           employeeRepo,
		now:                    time.Now,
	}
}

// UpdateSalaryConfig implements payroll.Service. Configurations are
// append-only: the merged result is stored as a new version.
func (p *PayrollServiceImpl) UpdateSalaryConfig(ctx context.Context, employeeID string, body payroll.UpdateSalaryConfigBody) (payroll.BreakdownResponse, error) {
	if err := body.Validate(); err != nil {
		return payroll.BreakdownResponse{}, err
	}
	if _, err := p.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return payroll.BreakdownResponse{}, err
	}

	cfg, err := p.SalaryConfigRepository.GetCurrent(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, payroll.ErrSalaryConfigNotFound) {
			return payroll.BreakdownResponse{}, fmt.Errorf("failed to get salary configuration: %w", err)
		}
		cfg = defaultConfig(employeeID)
	}

	if body.MonthlyWage != nil {
		cfg.MonthlyWage = decimal.RequireFromString(*body.MonthlyWage)
	}
	if body.Percentages != nil {
		cfg.Percentages = payroll.ComponentPercentages{
			Basic:                decimal.RequireFromString(body.Percentages.Basic),
			HRA:                  decimal.RequireFromString(body.Percentages.HRA),
			StandardAllowance:    decimal.RequireFromString(body.Percentages.StandardAllowance),
			PerformanceBonus:     decimal.RequireFromString(body.Percentages.PerformanceBonus),
			LeaveTravelAllowance: decimal.RequireFromString(body.Percentages.LeaveTravelAllowance),
		}
	}
	if body.PFEmployeePct != nil {
		cfg.PFRates.EmployeePct = decimal.RequireFromString(*body.PFEmployeePct)
	}
	if body.PFEmployerPct != nil {
		cfg.PFRates.EmployerPct = decimal.RequireFromString(*body.PFEmployerPct)
	}
	if body.ProfessionalTax != nil {
		cfg.ProfessionalTax = decimal.RequireFromString(*body.ProfessionalTax)
	}

	// Refuse to persist a configuration that cannot produce a breakdown.
	breakdown, err := payroll.BuildBreakdown(cfg)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	cfg.EffectiveFrom = p.now()
	if _, err := p.SalaryConfigRepository.Create(ctx, cfg); err != nil {
		return payroll.BreakdownResponse{}, fmt.Errorf("failed to create salary configuration: %w", err)
	}

	return payroll.ToBreakdownResponse(breakdown), nil
}

// InitSalaryConfig implements payroll.Service.
func (p *PayrollServiceImpl) InitSalaryConfig(ctx context.Context, employeeID string, monthlyWage decimal.Decimal) error {
	cfg := defaultConfig(employeeID)
	cfg.MonthlyWage = monthlyWage
	cfg.EffectiveFrom = p.now()

	if _, err := p.SalaryConfigRepository.Create(ctx, cfg); err != nil {
		return fmt.Errorf("failed to create salary configuration: %w", err)
	}
	return nil
}

// GetBreakdown implements payroll.Service.
func (p *PayrollServiceImpl) GetBreakdown(ctx context.Context, employeeID string) (payroll.BreakdownResponse, error) {
	cfg, err := p.SalaryConfigRepository.GetCurrent(ctx, employeeID)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	breakdown, err := payroll.BuildBreakdown(cfg)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}
	return payroll.ToBreakdownResponse(breakdown), nil
}

// ConfigHistory implements payroll.Service.
func (p *PayrollServiceImpl) ConfigHistory(ctx context.Context, employeeID string) ([]payroll.SalaryConfiguration, error) {
	return p.SalaryConfigRepository.History(ctx, employeeID)
}

// GenerateForPeriod implements payroll.Service. Employees without a
// salary configuration and employees already processed for the period
// are skipped, not failed.
func (p *PayrollServiceImpl) GenerateForPeriod(ctx context.Context, month, year int) ([]payroll.PayrollRecordResponse, error) {
	if month < 1 || month > 12 {
		return nil, payroll.ErrInvalidPeriod
	}

	status := employee.EmploymentStatusActive
	employees, _, err := p.employeeRepo.List(ctx, employee.ListFilter{Status: &status, Page: 1, Limit: 10000})
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]payroll.PayrollRecordResponse, 0, len(employees))
	for _, emp := range employees {
		cfg, err := p.SalaryConfigRepository.GetCurrent(ctx, emp.ID)
		if err != nil {
			if errors.Is(err, payroll.ErrSalaryConfigNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to get salary configuration for %s: %w", emp.ID, err)
		}

		breakdown, err := payroll.BuildBreakdown(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to build breakdown for %s: %w", emp.ID, err)
		}

		record := payroll.PayrollRecord{
			EmployeeID:  emp.ID,
			PeriodMonth: month,
			PeriodYear:  year,

			BasicSalary:          breakdown.Components.BasicSalary,
			HRA:                  breakdown.Components.HRA,
			StandardAllowance:    breakdown.Components.StandardAllowance,
			PerformanceBonus:     breakdown.Components.PerformanceBonus,
			LeaveTravelAllowance: breakdown.Components.LeaveTravelAllowance,
			FixedAllowance:       breakdown.Components.FixedAllowance,

			EmployeePF:      breakdown.Deductions.EmployeePF,
			EmployerPF:      breakdown.Deductions.EmployerPF,
			ProfessionalTax: breakdown.Deductions.ProfessionalTax,

			GrossSalary:     breakdown.GrossSalary,
			TotalDeductions: breakdown.Deductions.Total,
			NetSalary:       breakdown.NetSalary,

			Status: payroll.PayrollStatusDraft,
		}

		created, err := p.PayrollRepository.Create(ctx, record)
		if err != nil {
			if errors.Is(err, payroll.ErrPayrollAlreadyExists) {
				continue
			}
			return nil, fmt.Errorf("failed to create payroll record for %s: %w", emp.ID, err)
		}
		created.EmployeeName = &emp.FullName
		created.EmployeeCode = &emp.EmployeeCode
		responses = append(responses, payroll.ToRecordResponse(created))
	}

	return responses, nil
}

// GetRecord implements payroll.Service.
func (p *PayrollServiceImpl) GetRecord(ctx context.Context, recordID string) (payroll.PayrollRecordResponse, error) {
	record, err := p.PayrollRepository.GetByID(ctx, recordID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return payroll.ToRecordResponse(record), nil
}

// ListByPeriod implements payroll.Service.
func (p *PayrollServiceImpl) ListByPeriod(ctx context.Context, month, year int) ([]payroll.PayrollRecordResponse, error) {
	records, err := p.PayrollRepository.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	return toRecordResponses(records), nil
}

// ListByEmployee implements payroll.Service.
func (p *PayrollServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRecordResponse, error) {
	records, err := p.PayrollRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	return toRecordResponses(records), nil
}

// MarkPaid implements payroll.Service.
func (p *PayrollServiceImpl) MarkPaid(ctx context.Context, recordID, paidBy string) error {
	return p.PayrollRepository.MarkPaid(ctx, recordID, paidBy, p.now())
}

func defaultConfig(employeeID string) payroll.SalaryConfiguration {
	return payroll.SalaryConfiguration{
		EmployeeID:      employeeID,
		MonthlyWage:     decimal.Zero,
		Percentages:     payroll.DefaultPercentages(),
		PFRates:         payroll.DefaultPFRates(),
		ProfessionalTax: decimal.Zero,
	}
}

func toRecordResponses(records []payroll.PayrollRecord) []payroll.PayrollRecordResponse {
	responses := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, payroll.ToRecordResponse(r))
	}
	return responses
}
