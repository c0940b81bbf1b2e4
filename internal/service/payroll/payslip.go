package payroll

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// Payslip implements payroll.Service.
func (p *PayrollServiceImpl) Payslip(ctx context.Context, recordID string) ([]byte, error) {
	record, err := p.PayrollRepository.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	emp, err := p.employeeRepo.GetByID(ctx, record.EmployeeID)
	if err != nil {
		return nil, err
	}

	period := time.Date(record.PeriodYear, time.Month(record.PeriodMonth), 1, 0, 0, 0, 0, time.UTC)
	money := func(d decimal.Decimal) string { return d.Round(2).StringFixed(2) }

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", emp.FullName, emp.EmployeeCode))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period.Format("January 2006")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", record.Status))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line := func(label, amount string) {
		pdf.Cell(110, 7, label)
		pdf.CellFormat(40, 7, amount, "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}
	line("Basic Salary", money(record.BasicSalary))
	line("House Rent Allowance", money(record.HRA))
	line("Standard Allowance", money(record.StandardAllowance))
	line("Performance Bonus", money(record.PerformanceBonus))
	line("Leave Travel Allowance", money(record.LeaveTravelAllowance))
	line("Fixed Allowance", money(record.FixedAllowance))
	pdf.SetFont("Helvetica", "B", 11)
	line("Gross Salary", money(record.GrossSalary))
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line("Employee PF", money(record.EmployeePF))
	line("Professional Tax", money(record.ProfessionalTax))
	line("Employer PF (informational)", money(record.EmployerPF))
	pdf.SetFont("Helvetica", "B", 11)
	line("Total Deductions", money(record.TotalDeductions))
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 13)
	line("Net Salary", money(record.NetSalary))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}
