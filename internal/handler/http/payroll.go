package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/peoplecore/hrm-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	UpdateSalaryConfig(w http.ResponseWriter, r *http.Request)
	GetMyBreakdown(w http.ResponseWriter, r *http.Request)
	GetBreakdown(w http.ResponseWriter, r *http.Request)
	ConfigHistory(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	ListByPeriod(w http.ResponseWriter, r *http.Request)
	ListMyRecords(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// UpdateSalaryConfig implements PayrollHandler.
func (p *PayrollHandlerImpl) UpdateSalaryConfig(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var body payroll.UpdateSalaryConfigBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("UpdateSalaryConfig decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	breakdown, err := p.payrollService.UpdateSalaryConfig(r.Context(), employeeID, body)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary configuration updated successfully", breakdown)
}

// GetMyBreakdown implements PayrollHandler.
func (p *PayrollHandlerImpl) GetMyBreakdown(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok || claims.EmployeeID == "" {
		response.Unauthorized(w, "No employee linked to this account")
		return
	}

	breakdown, err := p.payrollService.GetBreakdown(r.Context(), claims.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, breakdown)
}

// GetBreakdown implements PayrollHandler.
func (p *PayrollHandlerImpl) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	breakdown, err := p.payrollService.GetBreakdown(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, breakdown)
}

// ConfigHistory implements PayrollHandler.
func (p *PayrollHandlerImpl) ConfigHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	history, err := p.payrollService.ConfigHistory(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

type generatePayrollBody struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Generate implements PayrollHandler.
func (p *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var body generatePayrollBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("Generate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if body.Year == 0 {
		body.Year = time.Now().Year()
	}

	records, err := p.payrollService.GenerateForPeriod(r.Context(), body.Month, body.Year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll generated successfully", records)
}

// GetRecord implements PayrollHandler. Employees only see their own
// records.
func (p *PayrollHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	recordID := chi.URLParam(r, "id")
	if recordID == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	record, err := p.payrollService.GetRecord(r.Context(), recordID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !claims.canViewAll(user.PermissionPayrollViewAll) && record.EmployeeID != claims.EmployeeID {
		response.HandleError(w, payroll.ErrPayrollRecordNotFound)
		return
	}

	response.Success(w, record)
}

// ListByPeriod implements PayrollHandler.
func (p *PayrollHandlerImpl) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	records, err := p.payrollService.ListByPeriod(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListMyRecords implements PayrollHandler.
func (p *PayrollHandlerImpl) ListMyRecords(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok || claims.EmployeeID == "" {
		response.Unauthorized(w, "No employee linked to this account")
		return
	}

	records, err := p.payrollService.ListByEmployee(r.Context(), claims.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// MarkPaid implements PayrollHandler.
func (p *PayrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	recordID := chi.URLParam(r, "id")
	if recordID == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	if err := p.payrollService.MarkPaid(r.Context(), recordID, claims.UserID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record marked as paid", nil)
}

// Payslip implements PayrollHandler. Responds with the rendered PDF
// instead of the JSON envelope.
func (p *PayrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	recordID := chi.URLParam(r, "id")
	if recordID == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	record, err := p.payrollService.GetRecord(r.Context(), recordID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !claims.canViewAll(user.PermissionPayrollViewAll) && record.EmployeeID != claims.EmployeeID {
		response.HandleError(w, payroll.ErrPayrollRecordNotFound)
		return
	}

	pdf, err := p.payrollService.Payslip(r.Context(), recordID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="payslip-`+recordID+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		slog.Error("Payslip write error", "error", err)
	}
}
