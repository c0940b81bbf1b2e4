package employee

import (
	"context"
	"time"
)

type Service interface {
	// Create persists the employee and seeds the dependent records: the
	// yearly leave balances and the default salary configuration.
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter ListFilter) (ListResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error

	// CelebrationScan notifies birthdays and work anniversaries falling
	// on the given date. Returns how many notifications went out.
	CelebrationScan(ctx context.Context, on time.Time) (int, error)
}

type ListResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Employees  []EmployeeResponse `json:"employees"`
}
