package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peoplecore/hrm-backend-go/internal/domain/payroll"
)

type SalaryConfigRepository struct {
	mu      sync.Mutex
	configs map[string][]payroll.SalaryConfiguration
}

func NewSalaryConfigRepository() *SalaryConfigRepository {
	return &SalaryConfigRepository{configs: make(map[string][]payroll.SalaryConfiguration)}
}

func (r *SalaryConfigRepository) Create(_ context.Context, cfg payroll.SalaryConfiguration) (payroll.SalaryConfiguration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg.ID = uuid.NewString()
	cfg.CreatedAt = time.Now()
	cfg.UpdatedAt = cfg.CreatedAt
	r.configs[cfg.EmployeeID] = append(r.configs[cfg.EmployeeID], cfg)
	return cfg, nil
}

func (r *SalaryConfigRepository) GetCurrent(_ context.Context, employeeID string) (payroll.SalaryConfiguration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	versions := r.configs[employeeID]
	if len(versions) == 0 {
		return payroll.SalaryConfiguration{}, payroll.ErrSalaryConfigNotFound
	}

	current := versions[0]
	for _, v := range versions[1:] {
		if v.EffectiveFrom.After(current.EffectiveFrom) {
			current = v
		}
	}
	return current, nil
}

func (r *SalaryConfigRepository) History(_ context.Context, employeeID string) ([]payroll.SalaryConfiguration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	versions := append([]payroll.SalaryConfiguration(nil), r.configs[employeeID]...)
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].EffectiveFrom.After(versions[j].EffectiveFrom)
	})
	return versions, nil
}

type PayrollRepository struct {
	mu      sync.Mutex
	records map[string]payroll.PayrollRecord
}

func NewPayrollRepository() *PayrollRepository {
	return &PayrollRepository{records: make(map[string]payroll.PayrollRecord)}
}

func periodKey(employeeID string, month, year int) string {
	return employeeID + "|" + time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

func (r *PayrollRepository) Create(_ context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if existing.EmployeeID == record.EmployeeID &&
			existing.PeriodMonth == record.PeriodMonth && existing.PeriodYear == record.PeriodYear {
			return payroll.PayrollRecord{}, payroll.ErrPayrollAlreadyExists
		}
	}

	record.ID = uuid.NewString()
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	r.records[record.ID] = record
	return record, nil
}

func (r *PayrollRepository) GetByID(_ context.Context, id string) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return rec, nil
}

func (r *PayrollRepository) GetByEmployeePeriod(_ context.Context, employeeID string, month, year int) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if periodKey(rec.EmployeeID, rec.PeriodMonth, rec.PeriodYear) == periodKey(employeeID, month, year) {
			return rec, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (r *PayrollRepository) ListByPeriod(_ context.Context, month, year int) ([]payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]payroll.PayrollRecord, 0)
	for _, rec := range r.records {
		if rec.PeriodMonth == month && rec.PeriodYear == year {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *PayrollRepository) ListByEmployee(_ context.Context, employeeID string) ([]payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]payroll.PayrollRecord, 0)
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *PayrollRepository) MarkPaid(_ context.Context, id, paidBy string, paidAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return payroll.ErrPayrollRecordNotFound
	}
	if rec.Status == payroll.PayrollStatusPaid {
		return payroll.ErrPayrollAlreadyPaid
	}
	rec.Status = payroll.PayrollStatusPaid
	rec.PaidAt = &paidAt
	rec.PaidBy = &paidBy
	rec.UpdatedAt = time.Now()
	r.records[id] = rec
	return nil
}
