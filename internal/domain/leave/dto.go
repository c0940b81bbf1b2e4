package leave

import (
	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestBody struct {
	LeaveType   string  `json:"leave_type"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	IsHalfDay   bool    `json:"is_half_day"`
	HalfDayType *string `json:"half_day_type,omitempty"`
	Reason      string  `json:"reason"`
}

func (b CreateLeaveRequestBody) Validate() error {
	var errs validator.ValidationErrors

	if _, err := CategoryOf(LeaveType(b.LeaveType)); err != nil {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "Unknown leave type"})
	}

	start, okStart := validator.IsValidDate(b.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Invalid date, expected YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(b.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "Invalid date, expected YYYY-MM-DD"})
	}
	if okStart && okEnd && start.After(end) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must not be after end date"})
	}

	if b.IsHalfDay {
		if b.HalfDayType == nil {
			errs = append(errs, validator.ValidationError{Field: "half_day_type", Message: "Required for half-day leave"})
		} else if ht := HalfDayType(*b.HalfDayType); ht != HalfDayMorning && ht != HalfDayAfternoon {
			errs = append(errs, validator.ValidationError{Field: "half_day_type", Message: "Must be morning or afternoon"})
		}
		if okStart && okEnd && !start.Equal(end) {
			errs = append(errs, validator.ValidationError{Field: "is_half_day", Message: "Half-day leave must cover a single date"})
		}
	}

	if validator.IsEmpty(b.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideLeaveRequestBody struct {
	AdminComments *string `json:"admin_comments,omitempty"`
}

type CancelLeaveRequestBody struct {
	Reason string `json:"reason"`
}

type LeaveRequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	LeaveType     string  `json:"leave_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	IsHalfDay     bool    `json:"is_half_day"`
	HalfDayType   *string `json:"half_day_type,omitempty"`
	TotalDays     string  `json:"total_days"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	AdminComments *string `json:"admin_comments,omitempty"`
}

func ToRequestResponse(r LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		LeaveType:     string(r.LeaveType),
		StartDate:     r.StartDate.Format("2006-01-02"),
		EndDate:       r.EndDate.Format("2006-01-02"),
		IsHalfDay:     r.IsHalfDay,
		TotalDays:     r.TotalDays.String(),
		Reason:        r.Reason,
		Status:        string(r.Status),
		AdminComments: r.AdminComments,
	}
	if r.HalfDayType != nil {
		ht := string(*r.HalfDayType)
		resp.HalfDayType = &ht
	}
	return resp
}

type BalanceResponse struct {
	Category  string `json:"category"`
	Allocated string `json:"allocated"`
	Used      string `json:"used"`
	Remaining string `json:"remaining"`
}

func ToBalanceResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		Category:  string(b.Category),
		Allocated: b.Allocated.String(),
		Used:      b.Used.String(),
		Remaining: b.Remaining().String(),
	}
}
