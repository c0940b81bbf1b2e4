package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu        sync.Mutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee)}
}

func (r *EmployeeRepository) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.employees {
		if existing.EmployeeCode == emp.EmployeeCode {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
	}

	emp.ID = uuid.NewString()
	emp.CreatedAt = time.Now()
	emp.UpdatedAt = emp.CreatedAt
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *EmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *EmployeeRepository) GetByCode(_ context.Context, code string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, emp := range r.employees {
		if emp.EmployeeCode == code {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) List(_ context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]employee.Employee, 0)
	for _, emp := range r.employees {
		if filter.Department != nil && (emp.Department == nil || *emp.Department != *filter.Department) {
			continue
		}
		if filter.Status != nil && emp.Status != *filter.Status {
			continue
		}
		if filter.Search != nil {
			needle := strings.ToLower(*filter.Search)
			if !strings.Contains(strings.ToLower(emp.FullName), needle) &&
				!strings.Contains(strings.ToLower(emp.EmployeeCode), needle) {
				continue
			}
		}
		out = append(out, emp)
	}
	return out, int64(len(out)), nil
}

func (r *EmployeeRepository) Update(_ context.Context, req employee.UpdateEmployeeRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	emp, ok := r.employees[req.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	if req.Status != nil {
		emp.Status = *req.Status
	}
	emp.UpdatedAt = time.Now()
	r.employees[req.ID] = emp
	return nil
}

func (r *EmployeeRepository) ListBirthdays(_ context.Context, on time.Time) ([]employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]employee.Employee, 0)
	for _, emp := range r.employees {
		if emp.Status != employee.EmploymentStatusActive || emp.DateOfBirth == nil {
			continue
		}
		if emp.DateOfBirth.Month() == on.Month() && emp.DateOfBirth.Day() == on.Day() {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (r *EmployeeRepository) ListAnniversaries(_ context.Context, on time.Time) ([]employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]employee.Employee, 0)
	for _, emp := range r.employees {
		if emp.Status != employee.EmploymentStatusActive {
			continue
		}
		if emp.HireDate.Month() == on.Month() && emp.HireDate.Day() == on.Day() && emp.HireDate.Year() < on.Year() {
			out = append(out, emp)
		}
	}
	return out, nil
}
