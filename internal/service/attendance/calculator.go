package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/workday"
	"github.com/shopspring/decimal"
)

// YearMonth identifies a calendar month. Month is 1-based.
type YearMonth struct {
	Year  int
	Month time.Month
}

func (m YearMonth) index() int {
	return m.Year*12 + int(m.Month) - 1
}

// ExtraDaysEpoch is the first month whose extra days are banked as credit.
var ExtraDaysEpoch = YearMonth{Year: 2024, Month: time.January}

// Calculator turns attendance records and a working-day config into
// monthly statistics. Every timestamp is bucketed into a calendar day in
// the calculator's location. It holds no other state and is safe for
// concurrent use.
type Calculator struct {
	loc *time.Location
}

// NewCalculator returns a calculator bucketing days in loc (UTC when nil).
func NewCalculator(loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.UTC
	}
	return &Calculator{loc: loc}
}

func (c *Calculator) Location() *time.Location {
	return c.loc
}

// LocalDate converts t to the calculator's location.
func (c *Calculator) LocalDate(t time.Time) time.Time {
	return t.In(c.loc)
}

// DateKey returns the YYYY-MM-DD calendar day of t in the calculator's location.
func (c *Calculator) DateKey(t time.Time) string {
	return workday.DateKey(t.In(c.loc))
}

// WorkingDaysInMonth counts the working days of the month under cfg.
func (c *Calculator) WorkingDaysInMonth(year int, month time.Month, cfg workday.Config) int {
	count := 0
	for _, day := range workday.DaysInMonth(year, month, c.loc) {
		if cfg.IsWorkingDay(day) {
			count++
		}
	}
	return count
}

// AttendanceStats computes the month's attendance. Several sessions on the
// same calendar day count as one present day.
func (c *Calculator) AttendanceStats(records []attendance.Record, year int, month time.Month, cfg workday.Config) attendance.MonthlyStats {
	present := c.presentDates(records, YearMonth{Year: year, Month: month}, YearMonth{Year: year, Month: month})

	var workingPresent, offPresent int
	for _, day := range present {
		if cfg.IsWorkingDay(day) {
			workingPresent++
		} else {
			offPresent++
		}
	}

	workingDays := c.WorkingDaysInMonth(year, month, cfg)

	return attendance.MonthlyStats{
		PresentDays:           len(present),
		AbsentDays:            max(0, workingDays-workingPresent),
		WorkingDays:           workingDays,
		ExtraDays:             offPresent,
		WorkingDayPresentDays: workingPresent,
		OffDayPresentDays:     offPresent,
	}
}

// CumulativeExtraDays sums the extra days of every month from ExtraDaysEpoch
// through the given month, inclusive.
func (c *Calculator) CumulativeExtraDays(records []attendance.Record, year int, month time.Month, cfg workday.Config) int {
	upto := YearMonth{Year: year, Month: month}
	if upto.index() < ExtraDaysEpoch.index() {
		return 0
	}

	total := 0
	for _, day := range c.presentDates(records, ExtraDaysEpoch, upto) {
		if cfg.IsOffDay(day) {
			total++
		}
	}
	return total
}

// AdjustedAttendanceStats offsets the month's absences with all extra-day
// credit banked up to and including that month.
func (c *Calculator) AdjustedAttendanceStats(records []attendance.Record, year int, month time.Month, cfg workday.Config) attendance.AdjustedStats {
	basic := c.AttendanceStats(records, year, month, cfg)
	cumulative := c.CumulativeExtraDays(records, year, month, cfg)

	used := min(basic.AbsentDays, cumulative)

	return attendance.AdjustedStats{
		MonthlyStats:       basic,
		AdjustedAbsentDays: max(0, basic.AbsentDays-cumulative),
		ExtraDaysUsed:      used,
		RemainingExtraDays: cumulative - used,
	}
}

// HoursForDate sums the closed-session hours of records clocked in on the
// calendar day of date. The day is read from date's own wall clock.
func (c *Calculator) HoursForDate(records []attendance.Record, date time.Time) decimal.Decimal {
	key := workday.DateKey(date)

	total := decimal.Zero
	for _, r := range records {
		if r.TotalHours == nil || c.DateKey(r.ClockIn) != key {
			continue
		}
		total = total.Add(*r.TotalHours)
	}
	return total
}

// HoursInMonth sums the closed-session hours of records clocked in during the month.
func (c *Calculator) HoursInMonth(records []attendance.Record, year int, month time.Month) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.TotalHours == nil {
			continue
		}
		local := r.ClockIn.In(c.loc)
		if local.Year() == year && local.Month() == month {
			total = total.Add(*r.TotalHours)
		}
	}
	return total
}

// presentDates returns one local midnight per distinct clock-in day whose
// month lies in [from, to].
func (c *Calculator) presentDates(records []attendance.Record, from, to YearMonth) map[string]time.Time {
	lo, hi := from.index(), to.index()

	dates := make(map[string]time.Time)
	for _, r := range records {
		local := r.ClockIn.In(c.loc)
		idx := YearMonth{Year: local.Year(), Month: local.Month()}.index()
		if idx < lo || idx > hi {
			continue
		}
		key := workday.DateKey(local)
		if _, seen := dates[key]; seen {
			continue
		}
		dates[key] = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
	}
	return dates
}
