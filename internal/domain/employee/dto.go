package employee

import (
	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	Position     *string `json:"position,omitempty"`
	Department   *string `json:"department,omitempty"`
	HireDate     string  `json:"hire_date"`
	DateOfBirth  *string `json:"date_of_birth,omitempty"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "Employee code is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "Full name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email address"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "Invalid date, expected YYYY-MM-DD"})
	}
	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "Invalid date, expected YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	Position     *string `json:"position,omitempty"`
	Department   *string `json:"department,omitempty"`
	HireDate     string  `json:"hire_date"`
	DateOfBirth  *string `json:"date_of_birth,omitempty"`
	Status       string  `json:"status"`
}

func ToResponse(emp Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		FullName:     emp.FullName,
		Email:        emp.Email,
		Phone:        emp.Phone,
		Position:     emp.Position,
		Department:   emp.Department,
		HireDate:     emp.HireDate.Format("2006-01-02"),
		Status:       string(emp.Status),
	}
	if emp.DateOfBirth != nil {
		dob := emp.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}
	return resp
}
