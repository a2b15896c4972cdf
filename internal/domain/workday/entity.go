package workday

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"slices"
	"time"
)

// DateLayout is the calendar-date key used for custom holidays.
const DateLayout = "2006-01-02"

type Pattern string

const (
	PatternAlternate Pattern = "alternate" // odd weeks of the month are working days
	PatternCustom    Pattern = "custom"    // CustomWeeks lists the working weeks
)

// AlternateDays governs one weekday that is off on some weeks of the month.
type AlternateDays struct {
	Enabled   bool    `json:"enabled"`
	DayOfWeek int     `json:"dayOfWeek"`
	Pattern   Pattern `json:"pattern"`
	// nil means no list was given; an empty slice means no working weeks.
	CustomWeeks []int `json:"customWeeks"`
}

// Value implements driver.Valuer for database storage
func (a AlternateDays) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner for database retrieval
func (a *AlternateDays) Scan(value interface{}) error {
	if value == nil {
		*a = AlternateDays{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("failed to scan AlternateDays: invalid type")
	}

	*a = AlternateDays{}
	return json.Unmarshal(data, a)
}

// Config is the organization-wide working-day policy. It is a plain value:
// callers pass it explicitly to every calculation.
type Config struct {
	FixedHolidays  []int         `json:"fixedHolidays"`
	AlternateDays  AlternateDays `json:"alternateDays"`
	CustomHolidays []string      `json:"customHolidays"`
}

// DefaultConfig returns Fridays off and every other Saturday off.
func DefaultConfig() Config {
	return Config{
		FixedHolidays: []int{int(time.Friday)},
		AlternateDays: AlternateDays{
			Enabled:   true,
			DayOfWeek: int(time.Saturday),
			Pattern:   PatternAlternate,
		},
		CustomHolidays: []string{},
	}
}

// DateKey returns the calendar date of t in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekOfMonth maps a day of month to its 1-based week: 1-7 is week 1, 8-14 week 2.
func WeekOfMonth(dayOfMonth int) int {
	return (dayOfMonth + 6) / 7
}

// DaysInMonth returns midnight of every calendar day of the month in loc.
// Month is 1-based.
func DaysInMonth(year int, month time.Month, loc *time.Location) []time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	days := make([]time.Time, 0, last)
	for d := 1; d <= last; d++ {
		days = append(days, time.Date(year, month, d, 0, 0, 0, 0, loc))
	}
	return days
}

// IsWorkingDay reports whether the calendar date of t is a working day.
// The date is read from t's own wall clock; normalise t to the reference
// location before calling.
//
// Precedence: custom holiday, fixed weekday holiday, alternate-day rule.
func (c Config) IsWorkingDay(t time.Time) bool {
	if slices.Contains(c.CustomHolidays, DateKey(t)) {
		return false
	}

	weekday := int(t.Weekday())
	if slices.Contains(c.FixedHolidays, weekday) {
		return false
	}

	alt := c.AlternateDays
	if alt.Enabled && weekday == alt.DayOfWeek {
		week := WeekOfMonth(t.Day())
		switch alt.Pattern {
		case PatternAlternate:
			return week%2 == 1
		case PatternCustom:
			if alt.CustomWeeks == nil {
				return true
			}
			return slices.Contains(alt.CustomWeeks, week)
		}
		return true
	}

	return true
}

// IsOffDay is the negation of IsWorkingDay.
func (c Config) IsOffDay(t time.Time) bool {
	return !c.IsWorkingDay(t)
}

// Normalize sorts and de-duplicates the list fields in place.
func (c *Config) Normalize() {
	c.FixedHolidays = sortedUnique(c.FixedHolidays)
	c.CustomHolidays = sortedUnique(c.CustomHolidays)
	if c.CustomHolidays == nil {
		c.CustomHolidays = []string{}
	}
	if c.FixedHolidays == nil {
		c.FixedHolidays = []int{}
	}
	if c.AlternateDays.CustomWeeks != nil {
		c.AlternateDays.CustomWeeks = sortedUnique(c.AlternateDays.CustomWeeks)
	}
}

// Clone returns a deep copy so callers may mutate it freely.
func (c Config) Clone() Config {
	out := c
	out.FixedHolidays = slices.Clone(c.FixedHolidays)
	out.CustomHolidays = slices.Clone(c.CustomHolidays)
	out.AlternateDays.CustomWeeks = slices.Clone(c.AlternateDays.CustomWeeks)
	return out
}

func sortedUnique[T int | string](in []T) []T {
	if in == nil {
		return nil
	}
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}
