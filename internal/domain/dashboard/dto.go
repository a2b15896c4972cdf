package dashboard

import (
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== SYSTEM STATS ==========

const (
	SystemStatusOperational = "operational"
	SystemStatusDegraded    = "degraded"
)

// SystemStatsResponse is the admin overview of the whole installation
type SystemStatsResponse struct {
	TotalEmployees  int64  `json:"total_employees"`
	ActiveEmployees int64  `json:"active_employees"` // clocked in within 30 days
	TotalRecords    int64  `json:"total_records"`
	TodayRecords    int64  `json:"today_records"`
	OpenSessions    int64  `json:"open_sessions"`
	SystemStatus    string `json:"system_status"`
	UpdatedAt       string `json:"updated_at"`
}

// ========== MONTHLY REPORT ==========

// MonthlyReportQuery selects the report month. Month is 1-based.
type MonthlyReportQuery struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (q *MonthlyReportQuery) Validate() error {
	var errs validator.ValidationErrors

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

// EmployeeMonthlyReport is one row of the monthly report
type EmployeeMonthlyReport struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	attendance.AdjustedStats
	HoursWorked          decimal.Decimal `json:"hours_worked"`
	HoursWorkedFormatted string          `json:"hours_worked_formatted"`
}

// MonthlyReportTotals sums the report rows
type MonthlyReportTotals struct {
	PresentDays        int             `json:"present_days"`
	AbsentDays         int             `json:"absent_days"`
	AdjustedAbsentDays int             `json:"adjusted_absent_days"`
	ExtraDays          int             `json:"extra_days"`
	HoursWorked        decimal.Decimal `json:"hours_worked"`
}

type MonthlyReportResponse struct {
	Year        int                     `json:"year"`
	Month       int                     `json:"month"`
	WorkingDays int                     `json:"working_days"`
	Employees   []EmployeeMonthlyReport `json:"employees"`
	Totals      MonthlyReportTotals     `json:"totals"`
}
