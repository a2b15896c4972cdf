package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one clock session. ClockOut and TotalHours are nil while the
// session is open and are set together, once, when it closes.
type Record struct {
	ID         string
	EmployeeID string
	ClockIn    time.Time
	ClockOut   *time.Time
	TotalHours *decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOpen reports whether the employee is still clocked in on this record.
func (r Record) IsOpen() bool {
	return r.ClockOut == nil
}

// Close stamps the clock-out time and the session length in hours,
// rounded to two decimal places.
func (r *Record) Close(at time.Time) {
	at = at.UTC()
	hours := SessionHours(r.ClockIn, at)
	r.ClockOut = &at
	r.TotalHours = &hours
}

// SessionHours returns (out - in) in hours rounded to two decimal places.
func SessionHours(in, out time.Time) decimal.Decimal {
	elapsed := decimal.NewFromInt(out.Sub(in).Nanoseconds())
	return elapsed.Div(decimal.NewFromInt(int64(time.Hour))).Round(2)
}

// MonthlyStats is the attendance summary of one employee for one month.
type MonthlyStats struct {
	PresentDays           int `json:"present_days"`
	AbsentDays            int `json:"absent_days"`
	WorkingDays           int `json:"working_days"`
	ExtraDays             int `json:"extra_days"`
	WorkingDayPresentDays int `json:"working_day_present_days"`
	OffDayPresentDays     int `json:"off_day_present_days"`
}

// AdjustedStats extends MonthlyStats with the extra-day credit applied
// against the month's absences.
type AdjustedStats struct {
	MonthlyStats
	AdjustedAbsentDays int `json:"adjusted_absent_days"`
	ExtraDaysUsed      int `json:"extra_days_used"`
	RemainingExtraDays int `json:"remaining_extra_days"`
}
