package leave

import (
	"errors"
	"fmt"
)

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrBalanceNotFound      = errors.New("leave balance not found")
	ErrUnknownLeaveType     = errors.New("unknown leave type")
	ErrInvalidDateRange     = errors.New("start date must not be after end date")
	ErrInvalidTransition    = errors.New("invalid leave status transition")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrOverlappingRequest   = errors.New("overlapping leave request")
	ErrNotRequestOwner      = errors.New("leave request belongs to another employee")
)

// OverlappingRequestError names the conflicting request.
type OverlappingRequestError struct {
	ConflictingID string
	Status        RequestStatus
}

func (e *OverlappingRequestError) Error() string {
	return fmt.Sprintf("dates overlap with %s leave request %s", e.Status, e.ConflictingID)
}

func (e *OverlappingRequestError) Unwrap() error {
	return ErrOverlappingRequest
}
