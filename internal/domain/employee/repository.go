package employee

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error

	// Celebration scans. Both match on month/day of the given date.
	ListBirthdays(ctx context.Context, on time.Time) ([]Employee, error)
	ListAnniversaries(ctx context.Context, on time.Time) ([]Employee, error)
}

type ListFilter struct {
	Department *string
	Status     *EmploymentStatus
	Search     *string
	Page       int
	Limit      int
}

type UpdateEmployeeRequest struct {
	ID         string            `json:"-"`
	FullName   *string           `json:"full_name,omitempty"`
	Phone      *string           `json:"phone,omitempty"`
	Position   *string           `json:"position,omitempty"`
	Department *string           `json:"department,omitempty"`
	Status     *EmploymentStatus `json:"status,omitempty"`
}
