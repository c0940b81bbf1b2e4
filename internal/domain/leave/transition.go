package leave

import "fmt"

// validTransitions is the full lifecycle: pending is the only
// non-terminal origin, plus cancellation after approval.
var validTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:  {RequestStatusApproved, RequestStatusRejected, RequestStatusCancelled},
	RequestStatusApproved: {RequestStatusCancelled},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to RequestStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition returns an InvalidTransitionError naming both states
// when the change is not allowed.
func CheckTransition(from, to RequestStatus) error {
	if !CanTransition(from, to) {
		return &InvalidTransitionError{From: from, To: to}
	}
	return nil
}

// InvalidTransitionError carries the offending states.
type InvalidTransitionError struct {
	From RequestStatus
	To   RequestStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid leave status transition from %q to %q", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
