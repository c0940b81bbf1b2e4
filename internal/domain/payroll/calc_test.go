package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDecompose_DefaultPercentages(t *testing.T) {
	t.Parallel()

	amounts, err := Decompose(d("50000"), DefaultPercentages())
	require.NoError(t, err)

	assert.True(t, amounts.BasicSalary.Equal(d("25000")), "basic = %s", amounts.BasicSalary)
	assert.True(t, amounts.HRA.Equal(d("12500")), "hra = %s", amounts.HRA)
	assert.True(t, amounts.StandardAllowance.Equal(d("4167.5")), "standard = %s", amounts.StandardAllowance)
	assert.True(t, amounts.PerformanceBonus.Equal(d("2082.5")), "bonus = %s", amounts.PerformanceBonus)
	assert.True(t, amounts.LeaveTravelAllowance.Equal(d("2082.5")), "lta = %s", amounts.LeaveTravelAllowance)
	assert.True(t, amounts.FixedAllowance.Equal(d("4167.5")), "fixed = %s", amounts.FixedAllowance)
	assert.False(t, amounts.OverBudget)
}

func TestDecompose_ComponentsSumToWage(t *testing.T) {
	t.Parallel()

	wages := []string{"0", "1", "999.99", "30000", "50000", "123456.78", "1000000"}
	for _, w := range wages {
		wage := d(w)
		amounts, err := Decompose(wage, DefaultPercentages())
		require.NoError(t, err)
		assert.True(t, amounts.Sum().Equal(wage), "wage %s: components sum to %s", wage, amounts.Sum())

		for _, c := range []decimal.Decimal{
			amounts.BasicSalary, amounts.HRA, amounts.StandardAllowance,
			amounts.PerformanceBonus, amounts.LeaveTravelAllowance, amounts.FixedAllowance,
		} {
			assert.False(t, c.IsNegative(), "wage %s produced negative component", wage)
		}
	}
}

func TestDecompose_OverBudget(t *testing.T) {
	t.Parallel()

	// Basic 80% of wage, HRA 50% of basic: 80% + 40% = 120% of wage.
	pct := ComponentPercentages{
		Basic: d("80"),
		HRA:   d("50"),
	}
	amounts, err := Decompose(d("10000"), pct)
	require.NoError(t, err)

	assert.True(t, amounts.OverBudget)
	assert.True(t, amounts.FixedAllowance.IsZero())
}

func TestDecompose_InvalidInputs(t *testing.T) {
	t.Parallel()

	_, err := Decompose(d("-1"), DefaultPercentages())
	assert.ErrorIs(t, err, ErrNegativeWage)

	pct := DefaultPercentages()
	pct.HRA = d("-5")
	_, err = Decompose(d("50000"), pct)
	assert.ErrorIs(t, err, ErrNegativePercentage)
}

func TestComputeDeductions(t *testing.T) {
	t.Parallel()

	deductions, err := ComputeDeductions(d("25000"), DefaultPFRates(), d("200"))
	require.NoError(t, err)

	assert.True(t, deductions.EmployeePF.Equal(d("3000")))
	assert.True(t, deductions.EmployerPF.Equal(d("3000")))
	assert.True(t, deductions.Total.Equal(d("3200")), "employer PF must not count toward total")
}

func TestBuildBreakdown_NetSalaryIdentity(t *testing.T) {
	t.Parallel()

	wages := []string{"18000", "50000", "74999.5", "250000"}
	for _, w := range wages {
		cfg := SalaryConfiguration{
			MonthlyWage:     d(w),
			Percentages:     DefaultPercentages(),
			PFRates:         DefaultPFRates(),
			ProfessionalTax: d("200"),
		}
		breakdown, err := BuildBreakdown(cfg)
		require.NoError(t, err)

		assert.True(t, breakdown.GrossSalary.Equal(cfg.MonthlyWage))

		expectedNet := cfg.MonthlyWage.Sub(breakdown.Deductions.EmployeePF).Sub(cfg.ProfessionalTax)
		assert.True(t, breakdown.NetSalary.Equal(expectedNet),
			"wage %s: net %s != %s", w, breakdown.NetSalary, expectedNet)
	}
}

func TestBuildBreakdown_RejectsOverBudgetConfig(t *testing.T) {
	t.Parallel()

	cfg := SalaryConfiguration{
		MonthlyWage: d("10000"),
		Percentages: ComponentPercentages{Basic: d("90"), HRA: d("40")},
		PFRates:     DefaultPFRates(),
	}
	_, err := BuildBreakdown(cfg)
	assert.ErrorIs(t, err, ErrComponentsOverBudget)
}
