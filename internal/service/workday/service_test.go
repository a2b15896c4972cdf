package workday

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/workday"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfigRepository struct {
	config *workday.Config
	saves  int
	err    error
}

func (f *fakeConfigRepository) Get(ctx context.Context) (workday.Config, error) {
	if f.err != nil {
		return workday.Config{}, f.err
	}
	if f.config == nil {
		return workday.Config{}, workday.ErrConfigNotFound
	}
	return f.config.Clone(), nil
}

func (f *fakeConfigRepository) Save(ctx context.Context, config workday.Config) error {
	f.saves++
	stored := config.Clone()
	f.config = &stored
	return nil
}

func (f *fakeConfigRepository) AddCustomHoliday(ctx context.Context, date string) error {
	if !slices.Contains(f.config.CustomHolidays, date) {
		f.config.CustomHolidays = append(f.config.CustomHolidays, date)
		slices.Sort(f.config.CustomHolidays)
	}
	return nil
}

func (f *fakeConfigRepository) RemoveCustomHoliday(ctx context.Context, date string) error {
	f.config.CustomHolidays = slices.DeleteFunc(f.config.CustomHolidays, func(d string) bool { return d == date })
	return nil
}

func TestConfigService_GetConfig_DefaultWhenMissing(t *testing.T) {
	svc := NewConfigService(&fakeConfigRepository{}, time.UTC)

	cfg, err := svc.GetConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, workday.DefaultConfig(), cfg)
}

func TestConfigService_GetConfig_RepositoryError(t *testing.T) {
	svc := NewConfigService(&fakeConfigRepository{err: errors.New("connection refused")}, time.UTC)

	_, err := svc.GetConfig(context.Background())

	assert.Error(t, err)
}

func TestConfigService_UpdateConfig(t *testing.T) {
	repo := &fakeConfigRepository{}
	svc := NewConfigService(repo, time.UTC)

	cfg, err := svc.UpdateConfig(context.Background(), workday.UpdateConfigRequest{Config: workday.Config{
		FixedHolidays: []int{6, 0, 0},
		AlternateDays: workday.AlternateDays{
			Enabled:     true,
			DayOfWeek:   5,
			Pattern:     workday.PatternCustom,
			CustomWeeks: []int{3, 1},
		},
		CustomHolidays: []string{"2024-12-25", "2024-01-01"},
	}})

	require.NoError(t, err)
	assert.Equal(t, []int{0, 6}, cfg.FixedHolidays)
	assert.Equal(t, []int{1, 3}, cfg.AlternateDays.CustomWeeks)
	assert.Equal(t, []string{"2024-01-01", "2024-12-25"}, cfg.CustomHolidays)
	assert.Equal(t, cfg, *repo.config)
}

func TestConfigService_UpdateConfig_ValidationError(t *testing.T) {
	repo := &fakeConfigRepository{}
	svc := NewConfigService(repo, time.UTC)

	_, err := svc.UpdateConfig(context.Background(), workday.UpdateConfigRequest{Config: workday.Config{
		FixedHolidays: []int{7},
		AlternateDays: workday.AlternateDays{
			Enabled:     true,
			DayOfWeek:   -1,
			Pattern:     "weekly",
			CustomWeeks: []int{0, 6},
		},
		CustomHolidays: []string{"25-12-2024"},
	}})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	fields := validationErrs.ToMap()
	assert.Contains(t, fields, "fixedHolidays[0]")
	assert.Contains(t, fields, "alternateDays.dayOfWeek")
	assert.Contains(t, fields, "alternateDays.pattern")
	assert.Contains(t, fields, "alternateDays.customWeeks[0]")
	assert.Contains(t, fields, "alternateDays.customWeeks[1]")
	assert.Contains(t, fields, "customHolidays[0]")
	assert.Zero(t, repo.saves)
}

func TestConfigService_UpdateConfig_DisabledAlternateSkipsRuleValidation(t *testing.T) {
	svc := NewConfigService(&fakeConfigRepository{}, time.UTC)

	_, err := svc.UpdateConfig(context.Background(), workday.UpdateConfigRequest{Config: workday.Config{
		FixedHolidays: []int{5},
		AlternateDays: workday.AlternateDays{Enabled: false},
	}})

	assert.NoError(t, err)
}

func TestConfigService_SetFixedHolidays(t *testing.T) {
	repo := &fakeConfigRepository{}
	svc := NewConfigService(repo, time.UTC)

	cfg, err := svc.SetFixedHolidays(context.Background(), workday.SetFixedHolidaysRequest{FixedHolidays: []int{0, 6}})

	require.NoError(t, err)
	assert.Equal(t, []int{0, 6}, cfg.FixedHolidays)
	// the rest of the default is kept
	assert.Equal(t, workday.DefaultConfig().AlternateDays, cfg.AlternateDays)
	assert.Equal(t, 1, repo.saves)
}

func TestConfigService_SetAlternateDays(t *testing.T) {
	stored := workday.DefaultConfig()
	stored.CustomHolidays = []string{"2024-08-17"}
	repo := &fakeConfigRepository{config: &stored}
	svc := NewConfigService(repo, time.UTC)

	cfg, err := svc.SetAlternateDays(context.Background(), workday.SetAlternateDaysRequest{AlternateDays: workday.AlternateDays{
		Enabled:     true,
		DayOfWeek:   6,
		Pattern:     workday.PatternCustom,
		CustomWeeks: []int{},
	}})

	require.NoError(t, err)
	assert.Equal(t, workday.PatternCustom, cfg.AlternateDays.Pattern)
	assert.NotNil(t, cfg.AlternateDays.CustomWeeks)
	assert.Equal(t, []string{"2024-08-17"}, cfg.CustomHolidays)
}

func TestConfigService_CustomHolidays(t *testing.T) {
	repo := &fakeConfigRepository{}
	svc := NewConfigService(repo, time.UTC)
	ctx := context.Background()

	cfg, err := svc.AddCustomHoliday(ctx, workday.CustomHolidayRequest{Date: "2024-08-17"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-08-17"}, cfg.CustomHolidays)

	// adding twice is a no-op
	_, err = svc.AddCustomHoliday(ctx, workday.CustomHolidayRequest{Date: "2024-08-17"})
	require.NoError(t, err)
	_, err = svc.AddCustomHoliday(ctx, workday.CustomHolidayRequest{Date: "2024-01-01"})
	require.NoError(t, err)

	holidays, err := svc.GetCustomHolidays(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01", "2024-08-17"}, holidays)

	cfg, err = svc.RemoveCustomHoliday(ctx, "2024-08-17")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01"}, cfg.CustomHolidays)

	// removing a missing date is a no-op
	_, err = svc.RemoveCustomHoliday(ctx, "2024-08-17")
	assert.NoError(t, err)
}

func TestConfigService_AddCustomHoliday_InvalidDate(t *testing.T) {
	svc := NewConfigService(&fakeConfigRepository{}, time.UTC)

	_, err := svc.AddCustomHoliday(context.Background(), workday.CustomHolidayRequest{Date: "2024-02-30"})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestConfigService_PreviewMonth(t *testing.T) {
	svc := NewConfigService(&fakeConfigRepository{}, time.UTC)

	preview, err := svc.PreviewMonth(context.Background(), workday.PreviewQuery{Year: 2024, Month: 1})

	require.NoError(t, err)
	assert.Equal(t, 25, preview.WorkingDays)
	assert.Equal(t, 6, preview.OffDays)
	require.Len(t, preview.Days, 31)
	assert.Equal(t, workday.DayPreview{Date: "2024-01-13", Weekday: "Saturday", WeekOfMonth: 2, Working: false}, preview.Days[12])
	assert.Equal(t, workday.DayPreview{Date: "2024-01-20", Weekday: "Saturday", WeekOfMonth: 3, Working: true}, preview.Days[19])
}

func TestConfigService_PreviewMonth_InvalidMonth(t *testing.T) {
	svc := NewConfigService(&fakeConfigRepository{}, time.UTC)

	_, err := svc.PreviewMonth(context.Background(), workday.PreviewQuery{Year: 2024, Month: 13})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}
