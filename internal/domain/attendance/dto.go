package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// CLOCK DTOs
// ========================================

type ClockRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID                  string           `json:"id"`
	EmployeeID          string           `json:"employee_id"`
	ClockIn             time.Time        `json:"clock_in"`
	ClockOut            *time.Time       `json:"clock_out"`
	TotalHours          *decimal.Decimal `json:"total_hours"`
	TotalHoursFormatted *string          `json:"total_hours_formatted"`
}

// ========================================
// QUERY DTOs
// ========================================

// MonthQuery selects one employee-month. Month is 1-based.
type MonthQuery struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (q *MonthQuery) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if q.Year < 2000 || q.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 9999",
		})
	}
	if !validator.IsValidMonth(q.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DailyHoursQuery struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
}

func (q *DailyHoursQuery) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(q.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(q.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSE DTOs
// ========================================

type EmployeeHeader struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

type RecordsSummary struct {
	TotalRecords        int             `json:"total_records"`
	ActiveRecord        *RecordResponse `json:"active_record"`
	CompletedRecords    int             `json:"completed_records"`
	TotalHoursWorked    decimal.Decimal `json:"total_hours_worked"`
	TotalHoursFormatted string          `json:"total_hours_formatted"`
}

type EmployeeRecordsResponse struct {
	Employee EmployeeHeader   `json:"employee"`
	Records  []RecordResponse `json:"records"`
	Summary  RecordsSummary   `json:"summary"`
}

type StatusResponse struct {
	EmployeeID          string          `json:"employee_id"`
	ClockedIn           bool            `json:"clocked_in"`
	OpenRecord          *RecordResponse `json:"open_record"`
	TodayHours          decimal.Decimal `json:"today_hours"`
	TodayHoursFormatted string          `json:"today_hours_formatted"`
}

type MonthlyStatsResponse struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	AdjustedStats
	CumulativeExtraDays  int             `json:"cumulative_extra_days"`
	HoursWorked          decimal.Decimal `json:"hours_worked"`
	HoursWorkedFormatted string          `json:"hours_worked_formatted"`
}

type DailyHoursResponse struct {
	EmployeeID     string          `json:"employee_id"`
	Date           string          `json:"date"`
	Hours          decimal.Decimal `json:"hours"`
	HoursFormatted string          `json:"hours_formatted"`
}

// ========================================
// LIVE EVENTS
// ========================================

const (
	EventClockIn  = "clock_in"
	EventClockOut = "clock_out"
)

// ClockEvent is pushed to admin live-feed subscribers on every clock change.
type ClockEvent struct {
	Type         string           `json:"type"`
	EmployeeID   string           `json:"employee_id"`
	EmployeeName string           `json:"employee_name"`
	RecordID     string           `json:"record_id"`
	At           time.Time        `json:"at"`
	TotalHours   *decimal.Decimal `json:"total_hours,omitempty"`
	Automatic    bool             `json:"automatic,omitempty"`
}
