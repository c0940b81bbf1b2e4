package payroll

import (
	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpdateSalaryConfigBody struct {
	MonthlyWage     *string               `json:"monthly_wage,omitempty"`
	Percentages     *ComponentPercentBody `json:"percentages,omitempty"`
	PFEmployeePct   *string               `json:"pf_employee_pct,omitempty"`
	PFEmployerPct   *string               `json:"pf_employer_pct,omitempty"`
	ProfessionalTax *string               `json:"professional_tax,omitempty"`
}

type ComponentPercentBody struct {
	Basic                string `json:"basic"`
	HRA                  string `json:"hra"`
	StandardAllowance    string `json:"standard_allowance"`
	PerformanceBonus     string `json:"performance_bonus"`
	LeaveTravelAllowance string `json:"leave_travel_allowance"`
}

func (b UpdateSalaryConfigBody) Validate() error {
	var errs validator.ValidationErrors

	checkDecimal := func(field string, v *string) {
		if v == nil {
			return
		}
		d, err := decimal.NewFromString(*v)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: field, Message: "Invalid decimal value"})
			return
		}
		if d.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "Must not be negative"})
		}
	}

	checkDecimal("monthly_wage", b.MonthlyWage)
	checkDecimal("pf_employee_pct", b.PFEmployeePct)
	checkDecimal("pf_employer_pct", b.PFEmployerPct)
	checkDecimal("professional_tax", b.ProfessionalTax)
	if b.Percentages != nil {
		checkDecimal("percentages.basic", &b.Percentages.Basic)
		checkDecimal("percentages.hra", &b.Percentages.HRA)
		checkDecimal("percentages.standard_allowance", &b.Percentages.StandardAllowance)
		checkDecimal("percentages.performance_bonus", &b.Percentages.PerformanceBonus)
		checkDecimal("percentages.leave_travel_allowance", &b.Percentages.LeaveTravelAllowance)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BreakdownResponse rounds to two places at the presentation boundary.
type BreakdownResponse struct {
	BasicSalary          string `json:"basic_salary"`
	HRA                  string `json:"hra"`
	StandardAllowance    string `json:"standard_allowance"`
	PerformanceBonus     string `json:"performance_bonus"`
	LeaveTravelAllowance string `json:"leave_travel_allowance"`
	FixedAllowance       string `json:"fixed_allowance"`
	EmployeePF           string `json:"employee_pf"`
	EmployerPF           string `json:"employer_pf"`
	ProfessionalTax      string `json:"professional_tax"`
	GrossSalary          string `json:"gross_salary"`
	TotalDeductions      string `json:"total_deductions"`
	NetSalary            string `json:"net_salary"`
}

func ToBreakdownResponse(b SalaryBreakdown) BreakdownResponse {
	money := func(d decimal.Decimal) string { return d.Round(2).StringFixed(2) }
	return BreakdownResponse{
		BasicSalary:          money(b.Components.BasicSalary),
		HRA:                  money(b.Components.HRA),
		StandardAllowance:    money(b.Components.StandardAllowance),
		PerformanceBonus:     money(b.Components.PerformanceBonus),
		LeaveTravelAllowance: money(b.Components.LeaveTravelAllowance),
		FixedAllowance:       money(b.Components.FixedAllowance),
		EmployeePF:           money(b.Deductions.EmployeePF),
		EmployerPF:           money(b.Deductions.EmployerPF),
		ProfessionalTax:      money(b.Deductions.ProfessionalTax),
		GrossSalary:          money(b.GrossSalary),
		TotalDeductions:      money(b.Deductions.Total),
		NetSalary:            money(b.NetSalary),
	}
}

type PayrollRecordResponse struct {
	ID           string            `json:"id"`
	EmployeeID   string            `json:"employee_id"`
	EmployeeName *string           `json:"employee_name,omitempty"`
	EmployeeCode *string           `json:"employee_code,omitempty"`
	PeriodMonth  int               `json:"period_month"`
	PeriodYear   int               `json:"period_year"`
	Breakdown    BreakdownResponse `json:"breakdown"`
	Status       string            `json:"status"`
	PaidAt       *string           `json:"paid_at,omitempty"`
}

func ToRecordResponse(r PayrollRecord) PayrollRecordResponse {
	resp := PayrollRecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		EmployeeCode: r.EmployeeCode,
		PeriodMonth:  r.PeriodMonth,
		PeriodYear:   r.PeriodYear,
		Breakdown: ToBreakdownResponse(SalaryBreakdown{
			Components: ComponentAmounts{
				BasicSalary:          r.BasicSalary,
				HRA:                  r.HRA,
				StandardAllowance:    r.StandardAllowance,
				PerformanceBonus:     r.PerformanceBonus,
				LeaveTravelAllowance: r.LeaveTravelAllowance,
				FixedAllowance:       r.FixedAllowance,
			},
			Deductions: Deductions{
				EmployeePF:      r.EmployeePF,
				EmployerPF:      r.EmployerPF,
				ProfessionalTax: r.ProfessionalTax,
				Total:           r.TotalDeductions,
			},
			GrossSalary: r.GrossSalary,
			NetSalary:   r.NetSalary,
		}),
		Status: string(r.Status),
	}
	if r.PaidAt != nil {
		paidAt := r.PaidAt.Format("2006-01-02 15:04:05")
		resp.PaidAt = &paidAt
	}
	return resp
}
