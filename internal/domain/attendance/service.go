package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn opens a new session for the employee
	ClockIn(ctx context.Context, req ClockRequest) (RecordResponse, error)

	// ClockOut closes the employee's open session
	ClockOut(ctx context.Context, req ClockRequest) (RecordResponse, error)

	// GetEmployeeRecords lists every record of an employee with a summary
	GetEmployeeRecords(ctx context.Context, employeeID string) (EmployeeRecordsResponse, error)

	GetStatus(ctx context.Context, employeeID string) (StatusResponse, error)

	// GetMonthlyStats returns the adjusted monthly statistics under the current working-day config
	GetMonthlyStats(ctx context.Context, query MonthQuery) (MonthlyStatsResponse, error)

	GetDailyHours(ctx context.Context, query DailyHoursQuery) (DailyHoursResponse, error)

	// CloseStaleSessions closes sessions open for longer than maxOpen at clock_in + maxOpen
	CloseStaleSessions(ctx context.Context, maxOpen time.Duration) (int, error)
}

// EventPublisher receives clock events for the admin live feed.
type EventPublisher interface {
	PublishClockEvent(event ClockEvent)
}
