package leave

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition_AllowedSet(t *testing.T) {
	t.Parallel()

	allowed := map[[2]RequestStatus]bool{
		{RequestStatusPending, RequestStatusApproved}:   true,
		{RequestStatusPending, RequestStatusRejected}:   true,
		{RequestStatusPending, RequestStatusCancelled}:  true,
		{RequestStatusApproved, RequestStatusCancelled}: true,
	}

	statuses := []RequestStatus{
		RequestStatusPending, RequestStatusApproved,
		RequestStatusRejected, RequestStatusCancelled,
	}

	// Every pair outside the allowed set must be rejected.
	for _, from := range statuses {
		for _, to := range statuses {
			got := CanTransition(from, to)
			want := allowed[[2]RequestStatus{from, to}]
			assert.Equal(t, want, got, "%s -> %s", from, to)

			err := CheckTransition(from, to)
			if want {
				assert.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidTransition)
				var invalid *InvalidTransitionError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, from, invalid.From)
				assert.Equal(t, to, invalid.To)
			}
		}
	}
}

func TestTotalDays(t *testing.T) {
	t.Parallel()

	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name      string
		start     string
		end       string
		isHalfDay bool
		want      string
	}{
		{"single day", "2026-03-02", "2026-03-02", false, "1"},
		{"half day", "2026-03-02", "2026-03-02", true, "0.5"},
		{"inclusive span", "2026-03-02", "2026-03-06", false, "5"},
		{"across month boundary", "2026-03-30", "2026-04-02", false, "4"},
		{"half day flag ignored on multi-day span", "2026-03-02", "2026-03-03", true, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalDays(day(tt.start), day(tt.end), tt.isHalfDay)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	day := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}

	assert.True(t, Overlaps(day("2026-03-01"), day("2026-03-05"), day("2026-03-05"), day("2026-03-08")), "shared boundary day overlaps")
	assert.True(t, Overlaps(day("2026-03-01"), day("2026-03-10"), day("2026-03-04"), day("2026-03-05")), "containment overlaps")
	assert.False(t, Overlaps(day("2026-03-01"), day("2026-03-04"), day("2026-03-05"), day("2026-03-08")), "adjacent ranges do not overlap")
}
