package attendance

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/workday"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func closedRecord(id, clockIn, hours string) attendance.Record {
	in := at(clockIn)
	h := decimal.RequireFromString(hours)
	out := in.Add(time.Duration(h.Mul(decimal.NewFromInt(int64(time.Hour))).IntPart()))
	return attendance.Record{ID: id, EmployeeID: "EMP001", ClockIn: in, ClockOut: &out, TotalHours: &h}
}

func openRecord(id, clockIn string) attendance.Record {
	return attendance.Record{ID: id, EmployeeID: "EMP001", ClockIn: at(clockIn)}
}

func fridaysOnly() workday.Config {
	return workday.Config{
		FixedHolidays:  []int{int(time.Friday)},
		CustomHolidays: []string{},
	}
}

// Test the regression baseline for the default policy
func TestCalculator_WorkingDaysInMonth_DefaultConfig(t *testing.T) {
	calc := NewCalculator(time.UTC)

	// 31 days, 4 Fridays, Saturdays 13th and 27th off
	assert.Equal(t, 25, calc.WorkingDaysInMonth(2024, time.January, workday.DefaultConfig()))
	// 29 days, 4 Fridays, Saturdays 10th and 24th off
	assert.Equal(t, 23, calc.WorkingDaysInMonth(2024, time.February, workday.DefaultConfig()))
}

func TestCalculator_WorkingDaysInMonth(t *testing.T) {
	calc := NewCalculator(time.UTC)

	customWeeks := func(weeks []int) workday.Config {
		cfg := fridaysOnly()
		cfg.AlternateDays = workday.AlternateDays{
			Enabled:     true,
			DayOfWeek:   int(time.Saturday),
			Pattern:     workday.PatternCustom,
			CustomWeeks: weeks,
		}
		return cfg
	}

	tests := []struct {
		name   string
		config workday.Config
		want   int
	}{
		{"fridays only", fridaysOnly(), 27},
		{"custom weeks 1 and 2", customWeeks([]int{1, 2}), 25},
		{"custom weeks absent", customWeeks(nil), 27},
		{"custom weeks empty", customWeeks([]int{}), 23},
		{
			name: "custom holidays",
			config: workday.Config{
				FixedHolidays:  []int{int(time.Friday)},
				CustomHolidays: []string{"2024-01-01", "2024-01-05", "2024-02-01"},
			},
			// the 5th is already a Friday and February is outside the month
			want: 26,
		},
		{
			name:   "no holidays",
			config: workday.Config{FixedHolidays: []int{}, CustomHolidays: []string{}},
			want:   31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.WorkingDaysInMonth(2024, time.January, tt.config))
		})
	}
}

func TestCalculator_AttendanceStats_NoRecords(t *testing.T) {
	calc := NewCalculator(time.UTC)

	stats := calc.AttendanceStats(nil, 2024, time.January, workday.DefaultConfig())

	assert.Equal(t, 0, stats.PresentDays)
	assert.Equal(t, 0, stats.ExtraDays)
	assert.Equal(t, 25, stats.WorkingDays)
	assert.Equal(t, stats.WorkingDays, stats.AbsentDays)
}

func TestCalculator_AttendanceStats(t *testing.T) {
	calc := NewCalculator(time.UTC)
	records := []attendance.Record{
		closedRecord("1", "2024-01-02T09:00:00Z", "3"),   // Tuesday
		closedRecord("2", "2024-01-02T14:00:00Z", "2.5"), // same Tuesday
		closedRecord("3", "2024-01-05T09:00:00Z", "4"),   // Friday, off
		closedRecord("4", "2024-01-06T09:00:00Z", "4"),   // Saturday week 1, working
		closedRecord("5", "2024-01-13T23:59:00Z", "0.5"), // Saturday week 2, off
		closedRecord("6", "2024-02-01T09:00:00Z", "8"),   // next month
		openRecord("7", "2023-12-31T10:00:00Z"),          // previous month
	}

	stats := calc.AttendanceStats(records, 2024, time.January, workday.DefaultConfig())

	assert.Equal(t, attendance.MonthlyStats{
		PresentDays:           4,
		AbsentDays:            23,
		WorkingDays:           25,
		ExtraDays:             2,
		WorkingDayPresentDays: 2,
		OffDayPresentDays:     2,
	}, stats)
}

func TestCalculator_AttendanceStats_SameDayCountsOnce(t *testing.T) {
	calc := NewCalculator(time.UTC)
	records := []attendance.Record{
		closedRecord("1", "2024-01-03T08:00:00Z", "1"),
		closedRecord("2", "2024-01-03T12:00:00Z", "1"),
		openRecord("3", "2024-01-03T18:00:00Z"),
	}

	stats := calc.AttendanceStats(records, 2024, time.January, workday.DefaultConfig())

	assert.Equal(t, 1, stats.PresentDays)
	assert.Equal(t, 1, stats.WorkingDayPresentDays)
	assert.Equal(t, 24, stats.AbsentDays)
}

func TestCalculator_AttendanceStats_AbsentNeverNegative(t *testing.T) {
	calc := NewCalculator(time.UTC)
	cfg := workday.Config{FixedHolidays: []int{}, CustomHolidays: []string{}}

	var records []attendance.Record
	for _, day := range workday.DaysInMonth(2024, time.February, time.UTC) {
		records = append(records, attendance.Record{ID: day.Format(time.DateOnly), ClockIn: day.Add(9 * time.Hour)})
	}

	stats := calc.AttendanceStats(records, 2024, time.February, cfg)

	assert.Equal(t, 29, stats.PresentDays)
	assert.Equal(t, 0, stats.AbsentDays)
}

func TestCalculator_AttendanceStats_UsesLocation(t *testing.T) {
	// 20:00 UTC on January 31st is already February 1st in UTC+7
	records := []attendance.Record{openRecord("1", "2024-01-31T20:00:00Z")}
	cfg := workday.DefaultConfig()

	utc := NewCalculator(time.UTC)
	assert.Equal(t, 1, utc.AttendanceStats(records, 2024, time.January, cfg).PresentDays)
	assert.Equal(t, 0, utc.AttendanceStats(records, 2024, time.February, cfg).PresentDays)

	wib := NewCalculator(time.FixedZone("WIB", 7*60*60))
	assert.Equal(t, 0, wib.AttendanceStats(records, 2024, time.January, cfg).PresentDays)
	assert.Equal(t, 1, wib.AttendanceStats(records, 2024, time.February, cfg).PresentDays)
}

func TestCalculator_CumulativeExtraDays(t *testing.T) {
	calc := NewCalculator(time.UTC)
	cfg := workday.DefaultConfig()
	records := []attendance.Record{
		closedRecord("1", "2023-12-29T09:00:00Z", "4"), // Friday before the epoch
		closedRecord("2", "2024-01-05T09:00:00Z", "4"), // Friday
		closedRecord("3", "2024-01-05T15:00:00Z", "1"), // same Friday
		closedRecord("4", "2024-01-13T09:00:00Z", "4"), // off Saturday
		closedRecord("5", "2024-01-15T09:00:00Z", "8"), // Monday
		closedRecord("6", "2024-02-02T09:00:00Z", "4"), // Friday
		closedRecord("7", "2024-04-05T09:00:00Z", "4"), // Friday
	}

	assert.Equal(t, 0, calc.CumulativeExtraDays(records, 2023, time.December, cfg))
	assert.Equal(t, 2, calc.CumulativeExtraDays(records, 2024, time.January, cfg))
	assert.Equal(t, 3, calc.CumulativeExtraDays(records, 2024, time.February, cfg))
	assert.Equal(t, 3, calc.CumulativeExtraDays(records, 2024, time.March, cfg))
	assert.Equal(t, 4, calc.CumulativeExtraDays(records, 2025, time.January, cfg))
}

func TestCalculator_CumulativeExtraDays_MatchesMonthlySum(t *testing.T) {
	calc := NewCalculator(time.UTC)
	cfg := workday.DefaultConfig()

	var records []attendance.Record
	start := at("2024-01-01T10:00:00Z")
	for i := 0; i < 200; i += 3 {
		records = append(records, openRecord("r", start.AddDate(0, 0, i).Format(time.RFC3339)))
	}

	sum := 0
	for month := time.January; month <= time.June; month++ {
		sum += calc.AttendanceStats(records, 2024, month, cfg).ExtraDays
	}

	assert.Equal(t, sum, calc.CumulativeExtraDays(records, 2024, time.June, cfg))
}

func TestCalculator_AdjustedAttendanceStats(t *testing.T) {
	calc := NewCalculator(time.UTC)
	records := []attendance.Record{
		closedRecord("1", "2024-01-02T09:00:00Z", "8"),
		closedRecord("2", "2024-01-05T09:00:00Z", "4"),
		closedRecord("3", "2024-01-13T09:00:00Z", "4"),
	}

	stats := calc.AdjustedAttendanceStats(records, 2024, time.January, workday.DefaultConfig())

	assert.Equal(t, 24, stats.AbsentDays)
	assert.Equal(t, 2, stats.ExtraDays)
	assert.Equal(t, 2, stats.ExtraDaysUsed)
	assert.Equal(t, 22, stats.AdjustedAbsentDays)
	assert.Equal(t, 0, stats.RemainingExtraDays)
}

func TestCalculator_AdjustedAttendanceStats_CreditCoversAbsences(t *testing.T) {
	calc := NewCalculator(time.UTC)
	// Mondays are the only working days: January 2024 has five
	cfg := workday.Config{
		FixedHolidays:  []int{0, 2, 3, 4, 5, 6},
		CustomHolidays: []string{},
	}
	records := []attendance.Record{
		closedRecord("1", "2024-01-01T09:00:00Z", "8"),
		closedRecord("2", "2024-01-08T09:00:00Z", "8"),
		closedRecord("3", "2024-01-02T09:00:00Z", "8"),
		closedRecord("4", "2024-01-03T09:00:00Z", "8"),
		closedRecord("5", "2024-01-04T09:00:00Z", "8"),
		closedRecord("6", "2024-01-05T09:00:00Z", "8"),
	}

	stats := calc.AdjustedAttendanceStats(records, 2024, time.January, cfg)

	assert.Equal(t, 5, stats.WorkingDays)
	assert.Equal(t, 3, stats.AbsentDays)
	assert.Equal(t, 4, stats.ExtraDays)
	assert.Equal(t, 0, stats.AdjustedAbsentDays)
	assert.Equal(t, stats.AbsentDays, stats.ExtraDaysUsed)
	assert.Equal(t, 1, stats.RemainingExtraDays)
}

func TestCalculator_AdjustedAttendanceStats_CarriesEarlierCredit(t *testing.T) {
	calc := NewCalculator(time.UTC)
	cfg := workday.DefaultConfig()
	records := []attendance.Record{
		closedRecord("1", "2024-01-05T09:00:00Z", "4"),
		closedRecord("2", "2024-01-12T09:00:00Z", "4"),
		closedRecord("3", "2024-01-19T09:00:00Z", "4"),
	}

	stats := calc.AdjustedAttendanceStats(records, 2024, time.February, cfg)

	assert.Equal(t, 0, stats.ExtraDays)
	assert.Equal(t, 23, stats.AbsentDays)
	assert.Equal(t, 3, stats.ExtraDaysUsed)
	assert.Equal(t, 20, stats.AdjustedAbsentDays)
}

func TestCalculator_StatsAreIdempotent(t *testing.T) {
	calc := NewCalculator(time.UTC)
	cfg := workday.DefaultConfig()
	records := []attendance.Record{
		closedRecord("1", "2024-03-01T09:00:00Z", "8"),
		closedRecord("2", "2024-03-04T09:00:00Z", "7.25"),
	}

	first := calc.AdjustedAttendanceStats(records, 2024, time.March, cfg)
	second := calc.AdjustedAttendanceStats(records, 2024, time.March, cfg)

	assert.Equal(t, first, second)
}

func TestCalculator_HoursForDate(t *testing.T) {
	calc := NewCalculator(time.UTC)
	records := []attendance.Record{
		closedRecord("1", "2024-01-02T08:00:00Z", "1.5"),
		closedRecord("2", "2024-01-02T13:00:00Z", "2.25"),
		openRecord("3", "2024-01-02T18:00:00Z"),
		closedRecord("4", "2024-01-03T08:00:00Z", "4"),
	}

	date, _ := time.Parse(time.DateOnly, "2024-01-02")
	assert.True(t, decimal.RequireFromString("3.75").Equal(calc.HoursForDate(records, date)))

	empty, _ := time.Parse(time.DateOnly, "2024-01-10")
	assert.True(t, decimal.Zero.Equal(calc.HoursForDate(records, empty)))
}

func TestCalculator_HoursInMonth(t *testing.T) {
	calc := NewCalculator(time.UTC)
	records := []attendance.Record{
		closedRecord("1", "2024-01-02T08:00:00Z", "1.5"),
		closedRecord("2", "2024-01-31T13:00:00Z", "2.25"),
		openRecord("3", "2024-01-20T18:00:00Z"),
		closedRecord("4", "2024-02-01T08:00:00Z", "4"),
	}

	assert.True(t, decimal.RequireFromString("3.75").Equal(calc.HoursInMonth(records, 2024, time.January)))
}
