package leave

import "github.com/shopspring/decimal"

// Category is the ledger bucket a leave type debits.
type Category string

const (
	CategoryVacation Category = "vacation"
	CategorySick     Category = "sick"
	CategoryPersonal Category = "personal"
	CategoryUnpaid   Category = "unpaid"
)

// AllCategories in ledger display order.
var AllCategories = []Category{CategoryVacation, CategorySick, CategoryPersonal, CategoryUnpaid}

// leaveTypeCategories is a total mapping: every LeaveType must have an
// entry. Adding a new leave type without one fails the exhaustiveness
// test in category_test.go.
var leaveTypeCategories = map[LeaveType]Category{
	LeaveTypePaid:        CategoryVacation,
	LeaveTypeVacation:    CategoryVacation,
	LeaveTypeAnnual:      CategoryVacation,
	LeaveTypeSick:        CategorySick,
	LeaveTypeCasual:      CategoryPersonal,
	LeaveTypePersonal:    CategoryPersonal,
	LeaveTypeMaternity:   CategoryUnpaid,
	LeaveTypePaternity:   CategoryUnpaid,
	LeaveTypeUnpaid:      CategoryUnpaid,
	LeaveTypeBereavement: CategoryUnpaid,
	LeaveTypeOther:       CategoryUnpaid,
}

// CategoryOf resolves the ledger category for a leave type.
func CategoryOf(t LeaveType) (Category, error) {
	c, ok := leaveTypeCategories[t]
	if !ok {
		return "", ErrUnknownLeaveType
	}
	return c, nil
}

// Tracked reports whether the category consumes balance. The unpaid
// bucket is unlimited and never debited.
func (c Category) Tracked() bool {
	return c != CategoryUnpaid
}

// DefaultAllocation is the yearly day allocation a new employee starts
// with per category.
func DefaultAllocation(c Category) decimal.Decimal {
	switch c {
	case CategoryVacation:
		return decimal.NewFromInt(12)
	case CategorySick:
		return decimal.NewFromInt(8)
	case CategoryPersonal:
		return decimal.NewFromInt(5)
	default:
		return decimal.Zero
	}
}
