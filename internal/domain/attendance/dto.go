package attendance

import (
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

type ClockBody struct {
	Location *string `json:"location,omitempty"`
	Method   string  `json:"method"`
}

func (b ClockBody) Validate() error {
	var errs validator.ValidationErrors

	switch ClockMethod(b.Method) {
	case MethodWeb, MethodMobile, MethodBiometric:
	default:
		errs = append(errs, validator.ValidationError{Field: "method", Message: "Must be web, mobile or biometric"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkBody struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (b MarkBody) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(b.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Invalid employee ID"})
	}
	if _, ok := validator.IsValidDate(b.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "Invalid date, expected YYYY-MM-DD"})
	}

	valid := false
	for _, s := range ManualStatuses {
		if s == DayStatus(b.Status) {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Status cannot be set manually"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

type DayRecordResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	Date          string  `json:"date"`
	CheckInTime   *string `json:"check_in_time,omitempty"`
	CheckOutTime  *string `json:"check_out_time,omitempty"`
	Status        string  `json:"status"`
	BreakMinutes  int     `json:"break_minutes"`
	TotalHours    *string `json:"total_hours,omitempty"`
	OvertimeHours *string `json:"overtime_hours,omitempty"`
}

func ToDayRecordResponse(r DayRecord) DayRecordResponse {
	resp := DayRecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Date:         r.Date.Format("2006-01-02"),
		CheckInTime:  timePtrToString(r.CheckInTime),
		CheckOutTime: timePtrToString(r.CheckOutTime),
		Status:       string(r.Status),
		BreakMinutes: r.BreakMinutes,
	}
	if r.TotalHours != nil {
		hours := r.TotalHours.Round(4).String()
		resp.TotalHours = &hours
	}
	if r.OvertimeHours != nil {
		hours := r.OvertimeHours.Round(4).String()
		resp.OvertimeHours = &hours
	}
	return resp
}

type SummaryResponse struct {
	EmployeeID   string         `json:"employee_id"`
	From         string         `json:"from"`
	To           string         `json:"to"`
	StatusCounts map[string]int `json:"status_counts"`
	WorkedDays   int            `json:"worked_days"`
	TotalHours   string         `json:"total_hours"`
	AvgHours     string         `json:"avg_hours"`
}

func ToSummaryResponse(s MonthSummary) SummaryResponse {
	counts := make(map[string]int, len(s.StatusCounts))
	for status, n := range s.StatusCounts {
		counts[string(status)] = n
	}
	return SummaryResponse{
		EmployeeID:   s.EmployeeID,
		From:         s.From.Format("2006-01-02"),
		To:           s.To.Format("2006-01-02"),
		StatusCounts: counts,
		WorkedDays:   s.WorkedDays,
		TotalHours:   s.TotalHours.Round(4).String(),
		AvgHours:     s.AvgHours.Round(4).String(),
	}
}
