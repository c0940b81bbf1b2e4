package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/notification"
	"github.com/peoplecore/hrm-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employee.Repository
	leaveService   leave.Service
	payrollService payroll.Service
	notifier       notification.Notifier
	now            func() time.Time
}

func NewEmployeeService(
	repo employee.Repository,
	leaveService leave.Service,
	payrollService payroll.Service,
	notifier notification.Notifier,
) employee.Service {
	return &EmployeeServiceImpl{
		Repository:     repo,
		leaveService:   leaveService,
		payrollService: payrollService,
		notifier:       notifier,
		now:            time.Now,
	}
}

// Create implements employee.Service. The new employee starts with the
// default leave allocations for the current year and a zero-wage salary
// configuration awaiting HR input.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)
	emp := employee.Employee{
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     req.Position,
		Department:   req.Department,
		HireDate:     hireDate,
		Status:       employee.EmploymentStatusActive,
	}
	if req.DateOfBirth != nil {
		dob, _ := time.Parse("2006-01-02", *req.DateOfBirth)
		emp.DateOfBirth = &dob
	}

	created, err := e.Repository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := e.leaveService.InitBalances(ctx, created.ID, e.now().Year()); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to seed leave balances: %w", err)
	}
	if err := e.payrollService.InitSalaryConfig(ctx, created.ID, decimal.Zero); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to seed salary configuration: %w", err)
	}

	return employee.ToResponse(created), nil
}

// Get implements employee.Service.
func (e *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.Repository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.Service.
func (e *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) (employee.ListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	employees, total, err := e.Repository.List(ctx, filter)
	if err != nil {
		return employee.ListResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return employee.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Employees:  responses,
	}, nil
}

// Update implements employee.Service.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return e.Repository.Update(ctx, req)
}

// CelebrationScan implements employee.Service.
func (e *EmployeeServiceImpl) CelebrationScan(ctx context.Context, on time.Time) (int, error) {
	notified := 0

	birthdays, err := e.Repository.ListBirthdays(ctx, on)
	if err != nil {
		return 0, fmt.Errorf("failed to list birthdays: %w", err)
	}
	for _, emp := range birthdays {
		e.notifier.Birthday(ctx, emp)
		notified++
	}

	anniversaries, err := e.Repository.ListAnniversaries(ctx, on)
	if err != nil {
		return notified, fmt.Errorf("failed to list anniversaries: %w", err)
	}
	for _, emp := range anniversaries {
		e.notifier.Anniversary(ctx, emp, emp.TenureYears(on))
		notified++
	}

	return notified, nil
}
