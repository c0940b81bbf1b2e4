package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaveType is what the employee picks when applying.
type LeaveType string

const (
	LeaveTypePaid        LeaveType = "paid"
	LeaveTypeVacation    LeaveType = "vacation"
	LeaveTypeAnnual      LeaveType = "annual"
	LeaveTypeSick        LeaveType = "sick"
	LeaveTypePersonal    LeaveType = "personal"
	LeaveTypeCasual      LeaveType = "casual"
	LeaveTypeUnpaid      LeaveType = "unpaid"
	LeaveTypeMaternity   LeaveType = "maternity"
	LeaveTypePaternity   LeaveType = "paternity"
	LeaveTypeBereavement LeaveType = "bereavement"
	LeaveTypeOther       LeaveType = "other"
)

// AllLeaveTypes lists every accepted leave type. Used by validation and
// by the mapping exhaustiveness test.
var AllLeaveTypes = []LeaveType{
	LeaveTypePaid, LeaveTypeVacation, LeaveTypeAnnual, LeaveTypeSick,
	LeaveTypePersonal, LeaveTypeCasual, LeaveTypeUnpaid, LeaveTypeMaternity,
	LeaveTypePaternity, LeaveTypeBereavement, LeaveTypeOther,
}

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

type HalfDayType string

const (
	HalfDayMorning   HalfDayType = "morning"
	HalfDayAfternoon HalfDayType = "afternoon"
)

// LeaveRequest entity. The date range is immutable after creation; only
// status and the administrative stamps mutate.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType

	StartDate time.Time
	EndDate   time.Time

	IsHalfDay   bool
	HalfDayType *HalfDayType
	TotalDays   decimal.Decimal

	Reason string
	Status RequestStatus

	ApprovedBy    *string
	ApprovedAt    *time.Time
	RejectedBy    *string
	RejectedAt    *time.Time
	AdminComments *string

	CancelledAt        *time.Time
	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}

// LeaveBalance - per employee, per category, per year ledger row.
type LeaveBalance struct {
	ID         string
	EmployeeID string
	Category   Category
	Year       int

	Allocated decimal.Decimal
	Used      decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Remaining is always derived, never stored.
func (b LeaveBalance) Remaining() decimal.Decimal {
	return b.Allocated.Sub(b.Used)
}

// TotalDays computes the billed day count for a request: the inclusive
// calendar span, or 0.5 for a single half day.
func TotalDays(startDate, endDate time.Time, isHalfDay bool) decimal.Decimal {
	days := daysInclusive(startDate, endDate)
	if isHalfDay && days == 1 {
		return decimal.RequireFromString("0.5")
	}
	return decimal.NewFromInt(int64(days))
}

func daysInclusive(startDate, endDate time.Time) int {
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

// Overlaps reports whether two inclusive date ranges intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}
