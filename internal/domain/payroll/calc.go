package payroll

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Decompose splits a monthly wage into absolute component amounts.
// Basic is a percentage of the wage; the secondary components are
// percentages of basic. FixedAllowance absorbs the remainder and is
// clamped at zero, flagging the result over-budget, when the configured
// components already exceed the wage.
//
// No rounding happens here. Amounts stay at full decimal precision and
// are rounded at presentation time only.
func Decompose(monthlyWage decimal.Decimal, pct ComponentPercentages) (ComponentAmounts, error) {
	if monthlyWage.IsNegative() {
		return ComponentAmounts{}, ErrNegativeWage
	}
	for _, p := range []decimal.Decimal{pct.Basic, pct.HRA, pct.StandardAllowance, pct.PerformanceBonus, pct.LeaveTravelAllowance} {
		if p.IsNegative() {
			return ComponentAmounts{}, ErrNegativePercentage
		}
	}

	basic := monthlyWage.Mul(pct.Basic).Div(hundred)

	amounts := ComponentAmounts{
		BasicSalary:          basic,
		HRA:                  basic.Mul(pct.HRA).Div(hundred),
		StandardAllowance:    basic.Mul(pct.StandardAllowance).Div(hundred),
		PerformanceBonus:     basic.Mul(pct.PerformanceBonus).Div(hundred),
		LeaveTravelAllowance: basic.Mul(pct.LeaveTravelAllowance).Div(hundred),
	}

	allocated := amounts.BasicSalary.
		Add(amounts.HRA).
		Add(amounts.StandardAllowance).
		Add(amounts.PerformanceBonus).
		Add(amounts.LeaveTravelAllowance)

	remainder := monthlyWage.Sub(allocated)
	if remainder.IsNegative() {
		amounts.FixedAllowance = decimal.Zero
		amounts.OverBudget = true
	} else {
		amounts.FixedAllowance = remainder
	}

	return amounts, nil
}

// ComputeDeductions derives provident fund contributions and total
// deductions from the basic salary. Professional tax is a fixed amount,
// not a percentage.
func ComputeDeductions(basicSalary decimal.Decimal, rates PFRates, professionalTax decimal.Decimal) (Deductions, error) {
	if basicSalary.IsNegative() || professionalTax.IsNegative() {
		return Deductions{}, ErrNegativeWage
	}
	if rates.EmployeePct.IsNegative() || rates.EmployerPct.IsNegative() {
		return Deductions{}, ErrNegativePercentage
	}

	d := Deductions{
		EmployeePF:      basicSalary.Mul(rates.EmployeePct).Div(hundred),
		EmployerPF:      basicSalary.Mul(rates.EmployerPct).Div(hundred),
		ProfessionalTax: professionalTax,
	}
	// Employer PF never reduces net salary.
	d.Total = d.EmployeePF.Add(d.ProfessionalTax)
	return d, nil
}

// BuildBreakdown runs decomposition and deduction calculation for one
// configuration. Gross salary equals the monthly wage by definition.
func BuildBreakdown(cfg SalaryConfiguration) (SalaryBreakdown, error) {
	components, err := Decompose(cfg.MonthlyWage, cfg.Percentages)
	if err != nil {
		return SalaryBreakdown{}, err
	}
	if components.OverBudget {
		return SalaryBreakdown{}, ErrComponentsOverBudget
	}

	deductions, err := ComputeDeductions(components.BasicSalary, cfg.PFRates, cfg.ProfessionalTax)
	if err != nil {
		return SalaryBreakdown{}, err
	}

	gross := cfg.MonthlyWage
	return SalaryBreakdown{
		Components:  components,
		Deductions:  deductions,
		GrossSalary: gross,
		NetSalary:   gross.Sub(deductions.Total),
	}, nil
}

// DefaultPercentages mirrors the configuration new employees start with:
// basic 50% of wage, HRA 50% of basic, standard allowance 16.67%,
// performance bonus and LTA 8.33% each.
func DefaultPercentages() ComponentPercentages {
	return ComponentPercentages{
		Basic:                decimal.NewFromInt(50),
		HRA:                  decimal.NewFromInt(50),
		StandardAllowance:    decimal.RequireFromString("16.67"),
		PerformanceBonus:     decimal.RequireFromString("8.33"),
		LeaveTravelAllowance: decimal.RequireFromString("8.33"),
	}
}

// DefaultPFRates are the statutory 12% employee / 12% employer split.
func DefaultPFRates() PFRates {
	return PFRates{
		EmployeePct: decimal.NewFromInt(12),
		EmployerPct: decimal.NewFromInt(12),
	}
}
