package employee

import "time"

// Employee is an account that can clock in. ID is the caller-chosen employee
// code (e.g. EMP001) used to log in.
type Employee struct {
	ID           string
	Name         string
	Email        string
	Department   string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CurrentStatus string

const (
	CurrentStatusClockedIn  CurrentStatus = "clocked-in"
	CurrentStatusClockedOut CurrentStatus = "clocked-out"
	CurrentStatusUnknown    CurrentStatus = "unknown"
)

type ActivityStatus string

const (
	ActivityStatusActive   ActivityStatus = "active"
	ActivityStatusInactive ActivityStatus = "inactive"
)

// ActiveWindow is how recent the last clock event must be for an employee to count as active.
const ActiveWindow = 30 * 24 * time.Hour

// Activity is the per-employee clock summary shown in admin listings.
type Activity struct {
	Employee
	TotalRecords int
	LastActive   *time.Time
	HasOpen      bool
}

func (a Activity) CurrentStatus() CurrentStatus {
	switch {
	case a.HasOpen:
		return CurrentStatusClockedIn
	case a.TotalRecords > 0:
		return CurrentStatusClockedOut
	default:
		return CurrentStatusUnknown
	}
}

func (a Activity) Status(now time.Time) ActivityStatus {
	if a.LastActive != nil && now.Sub(*a.LastActive) <= ActiveWindow {
		return ActivityStatusActive
	}
	return ActivityStatusInactive
}
