package employee

import "time"

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusInactive EmploymentStatus = "inactive"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	Phone        *string
	Position     *string
	Department   *string
	HireDate     time.Time
	DateOfBirth  *time.Time
	Status       EmploymentStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TenureYears is the number of completed service years at the given date.
func (e Employee) TenureYears(at time.Time) int {
	years := at.Year() - e.HireDate.Year()
	anniversary := e.HireDate.AddDate(years, 0, 0)
	if anniversary.After(at) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}
