package workday

import "context"

// ConfigService manages the admin-owned working-day policy.
type ConfigService interface {
	// GetConfig returns the stored configuration, or DefaultConfig when none was saved
	GetConfig(ctx context.Context) (Config, error)

	UpdateConfig(ctx context.Context, req UpdateConfigRequest) (Config, error)
	SetFixedHolidays(ctx context.Context, req SetFixedHolidaysRequest) (Config, error)
	SetAlternateDays(ctx context.Context, req SetAlternateDaysRequest) (Config, error)

	GetCustomHolidays(ctx context.Context) ([]string, error)
	AddCustomHoliday(ctx context.Context, req CustomHolidayRequest) (Config, error)
	RemoveCustomHoliday(ctx context.Context, date string) (Config, error)

	// PreviewMonth classifies every day of a month under the current configuration
	PreviewMonth(ctx context.Context, query PreviewQuery) (MonthPreviewResponse, error)
}
