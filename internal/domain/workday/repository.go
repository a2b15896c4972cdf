package workday

import "context"

// ConfigRepository persists the singleton working-day configuration.
type ConfigRepository interface {
	// Get returns ErrConfigNotFound when nothing has been saved yet
	Get(ctx context.Context) (Config, error)

	// Save replaces the stored configuration wholesale
	Save(ctx context.Context, config Config) error

	AddCustomHoliday(ctx context.Context, date string) error
	RemoveCustomHoliday(ctx context.Context, date string) error
}
