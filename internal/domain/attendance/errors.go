package attendance

import "errors"

// Attendance domain errors
var (
	// Clock errors
	ErrAlreadyClockedIn = errors.New("already clocked in")
	ErrNotClockedIn     = errors.New("not clocked in")
	ErrAlreadyClosed    = errors.New("attendance record is already closed")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
