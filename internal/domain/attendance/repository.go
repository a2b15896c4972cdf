package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new open record
	Create(ctx context.Context, record Record) (Record, error)

	// Close sets clock_out and total_hours only if the record is still open.
	// Returns ErrAlreadyClosed when another writer closed it first.
	Close(ctx context.Context, record Record) (Record, error)

	// GetOpenSession returns the employee's open record or ErrRecordNotFound
	GetOpenSession(ctx context.Context, employeeID string) (Record, error)

	// ListByEmployee returns all records of an employee, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)

	// ListStaleSessions returns open records whose clock_in is before the cutoff
	ListStaleSessions(ctx context.Context, cutoff time.Time) ([]Record, error)
}
