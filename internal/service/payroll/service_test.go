package payroll

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hrm-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	service      payroll.Service
	configRepo   *memory.SalaryConfigRepository
	payrollRepo  *memory.PayrollRepository
	employeeRepo *memory.EmployeeRepository
	employeeID   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	configRepo := memory.NewSalaryConfigRepository()
	payrollRepo := memory.NewPayrollRepository()
	employeeRepo := memory.NewEmployeeRepository()

	svc := NewPayrollService(configRepo, payrollRepo, employeeRepo)

	emp, err := employeeRepo.Create(context.Background(), employee.Employee{
		EmployeeCode: "ENG-0003",
		FullName:     "Sneha Iyer",
		Email:        "sneha@example.com",
		HireDate:     time.Date(2021, 8, 1, 0, 0, 0, 0, time.UTC),
		Status:       employee.EmploymentStatusActive,
	})
	require.NoError(t, err)

	return &fixture{
		service:      svc,
		configRepo:   configRepo,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		employeeID:   emp.ID,
	}
}

func (f *fixture) setWage(t *testing.T, wage string) {
	t.Helper()
	_, err := f.service.UpdateSalaryConfig(context.Background(), f.employeeID, payroll.UpdateSalaryConfigBody{
		MonthlyWage: &wage,
	})
	require.NoError(t, err)
}

func TestUpdateSalaryConfigDefaults(t *testing.T) {
	f := newFixture(t)
	wage := "50000"

	resp, err := f.service.UpdateSalaryConfig(context.Background(), f.employeeID, payroll.UpdateSalaryConfigBody{
		MonthlyWage: &wage,
	})
	require.NoError(t, err)

	assert.Equal(t, "25000.00", resp.BasicSalary)
	assert.Equal(t, "12500.00", resp.HRA)
	assert.Equal(t, "4167.50", resp.StandardAllowance)
	assert.Equal(t, "2082.50", resp.PerformanceBonus)
	assert.Equal(t, "2082.50", resp.LeaveTravelAllowance)
	assert.Equal(t, "4167.50", resp.FixedAllowance)
	assert.Equal(t, "3000.00", resp.EmployeePF)
	assert.Equal(t, "50000.00", resp.GrossSalary)
	assert.Equal(t, "47000.00", resp.NetSalary)
}

func TestUpdateSalaryConfigAppendsVersion(t *testing.T) {
	f := newFixture(t)
	f.setWage(t, "50000")
	f.setWage(t, "60000")

	history, err := f.service.ConfigHistory(context.Background(), f.employeeID)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	current, err := f.configRepo.GetCurrent(context.Background(), f.employeeID)
	require.NoError(t, err)
	assert.Equal(t, "60000", current.MonthlyWage.String())
}

func TestUpdateSalaryConfigRejectsOverBudget(t *testing.T) {
	f := newFixture(t)
	wage := "50000"
	// HRA alone exceeds what remains after basic.
	body := payroll.UpdateSalaryConfigBody{
		MonthlyWage: &wage,
		Percentages: &payroll.ComponentPercentBody{
			Basic:                "60",
			HRA:                  "80",
			StandardAllowance:    "20",
			PerformanceBonus:     "10",
			LeaveTravelAllowance: "10",
		},
	}

	_, err := f.service.UpdateSalaryConfig(context.Background(), f.employeeID, body)
	assert.ErrorIs(t, err, payroll.ErrComponentsOverBudget)

	// Nothing persisted.
	_, err = f.configRepo.GetCurrent(context.Background(), f.employeeID)
	assert.ErrorIs(t, err, payroll.ErrSalaryConfigNotFound)
}

func TestGenerateForPeriod(t *testing.T) {
	f := newFixture(t)
	f.setWage(t, "50000")

	records, err := f.service.GenerateForPeriod(context.Background(), 6, 2026)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "draft", records[0].Status)
	assert.Equal(t, "47000.00", records[0].Breakdown.NetSalary)

	// A second run for the same period creates nothing new.
	records, err = f.service.GenerateForPeriod(context.Background(), 6, 2026)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGenerateForPeriodSkipsUnconfigured(t *testing.T) {
	f := newFixture(t)
	// No salary configuration exists yet.
	records, err := f.service.GenerateForPeriod(context.Background(), 6, 2026)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGenerateForPeriodInvalidMonth(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.GenerateForPeriod(context.Background(), 13, 2026)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestMarkPaid(t *testing.T) {
	f := newFixture(t)
	f.setWage(t, "50000")

	records, err := f.service.GenerateForPeriod(context.Background(), 6, 2026)
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.NoError(t, f.service.MarkPaid(context.Background(), records[0].ID, "admin-1"))

	record, err := f.service.GetRecord(context.Background(), records[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", record.Status)
	assert.NotNil(t, record.PaidAt)

	err = f.service.MarkPaid(context.Background(), records[0].ID, "admin-1")
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyPaid)
}

func TestPayslip(t *testing.T) {
	f := newFixture(t)
	f.setWage(t, "50000")

	records, err := f.service.GenerateForPeriod(context.Background(), 6, 2026)
	require.NoError(t, err)
	require.Len(t, records, 1)

	pdf, err := f.service.Payslip(context.Background(), records[0].ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}
