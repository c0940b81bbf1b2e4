package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in/out flow errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")

	// General errors
	ErrRecordNotFound      = errors.New("attendance record not found")
	ErrInvalidManualStatus = errors.New("status cannot be set manually")
	ErrDuplicateDayRecord  = errors.New("attendance record already exists for this date")
)
