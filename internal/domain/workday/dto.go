package workday

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
)

// ========================================
// CONFIGURATION DTOs
// ========================================

// UpdateConfigRequest replaces the whole configuration.
type UpdateConfigRequest struct {
	Config
}

func (r *UpdateConfigRequest) Validate() error {
	var errs validator.ValidationErrors
	errs = append(errs, validateFixedHolidays(r.FixedHolidays)...)
	errs = append(errs, validateAlternateDays(r.AlternateDays)...)

	for i, date := range r.CustomHolidays {
		if _, valid := validator.IsValidDate(date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("customHolidays[%d]", i),
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetFixedHolidaysRequest struct {
	FixedHolidays []int `json:"fixedHolidays"`
}

func (r *SetFixedHolidaysRequest) Validate() error {
	if errs := validateFixedHolidays(r.FixedHolidays); len(errs) > 0 {
		return errs
	}
	return nil
}

type SetAlternateDaysRequest struct {
	AlternateDays
}

func (r *SetAlternateDaysRequest) Validate() error {
	if errs := validateAlternateDays(r.AlternateDays); len(errs) > 0 {
		return errs
	}
	return nil
}

type CustomHolidayRequest struct {
	Date string `json:"date"`
}

func (r *CustomHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
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

// PreviewQuery selects the month rendered by PreviewMonth. Month is 1-based.
type PreviewQuery struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (q *PreviewQuery) Validate() error {
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

type DayPreview struct {
	Date        string `json:"date"`
	Weekday     string `json:"weekday"`
	WeekOfMonth int    `json:"week_of_month"`
	Working     bool   `json:"working"`
}

type MonthPreviewResponse struct {
	Year        int          `json:"year"`
	Month       int          `json:"month"`
	WorkingDays int          `json:"working_days"`
	OffDays     int          `json:"off_days"`
	Days        []DayPreview `json:"days"`
}

func validateFixedHolidays(days []int) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for i, day := range days {
		if !validator.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("fixedHolidays[%d]", i),
				Message: "weekday must be between 0 (Sunday) and 6 (Saturday)",
			})
		}
	}
	return errs
}

func validateAlternateDays(alt AlternateDays) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !alt.Enabled {
		return errs
	}

	if !validator.IsValidWeekday(alt.DayOfWeek) {
		errs = append(errs, validator.ValidationError{
			Field:   "alternateDays.dayOfWeek",
			Message: "weekday must be between 0 (Sunday) and 6 (Saturday)",
		})
	}

	if !validator.IsInSlice(string(alt.Pattern), []string{string(PatternAlternate), string(PatternCustom)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "alternateDays.pattern",
			Message: "pattern must be one of: alternate, custom",
		})
	}

	for i, week := range alt.CustomWeeks {
		if week < 1 || week > 5 {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("alternateDays.customWeeks[%d]", i),
				Message: "week of month must be between 1 and 5",
			})
		}
	}

	return errs
}
