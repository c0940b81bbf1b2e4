package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every leave type must resolve to a category. A new type added without
// a mapping entry fails here, forcing an explicit decision.
func TestCategoryOf_Exhaustive(t *testing.T) {
	t.Parallel()

	for _, lt := range AllLeaveTypes {
		c, err := CategoryOf(lt)
		require.NoError(t, err, "leave type %q has no category mapping", lt)
		assert.Contains(t, AllCategories, c)
	}

	_, err := CategoryOf(LeaveType("sabbatical"))
	assert.ErrorIs(t, err, ErrUnknownLeaveType)
}

func TestCategoryOf_FixedLookup(t *testing.T) {
	t.Parallel()

	expect := map[LeaveType]Category{
		LeaveTypePaid:      CategoryVacation,
		LeaveTypeAnnual:    CategoryVacation,
		LeaveTypeVacation:  CategoryVacation,
		LeaveTypeSick:      CategorySick,
		LeaveTypeCasual:    CategoryPersonal,
		LeaveTypePersonal:  CategoryPersonal,
		LeaveTypeMaternity: CategoryUnpaid,
		LeaveTypePaternity: CategoryUnpaid,
		LeaveTypeUnpaid:    CategoryUnpaid,
	}
	for lt, want := range expect {
		got, err := CategoryOf(lt)
		require.NoError(t, err)
		assert.Equal(t, want, got, "leave type %q", lt)
	}
}

func TestCategoryTracked(t *testing.T) {
	t.Parallel()

	assert.True(t, CategoryVacation.Tracked())
	assert.True(t, CategorySick.Tracked())
	assert.True(t, CategoryPersonal.Tracked())
	assert.False(t, CategoryUnpaid.Tracked(), "unpaid category is never debited")
}
