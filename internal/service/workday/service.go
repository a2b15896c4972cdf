package workday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/workday"
)

type ConfigServiceImpl struct {
	workday.ConfigRepository
	loc *time.Location
}

// NewConfigService returns the working-day config service. loc is the zone
// PreviewMonth lays the calendar out in.
func NewConfigService(configRepository workday.ConfigRepository, loc *time.Location) workday.ConfigService {
	if loc == nil {
		loc = time.UTC
	}
	return &ConfigServiceImpl{
		ConfigRepository: configRepository,
		loc:              loc,
	}
}

// GetConfig implements workday.ConfigService.
func (s *ConfigServiceImpl) GetConfig(ctx context.Context) (workday.Config, error) {
	cfg, err := s.ConfigRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, workday.ErrConfigNotFound) {
			return workday.DefaultConfig(), nil
		}
		return workday.Config{}, fmt.Errorf("failed to get working day config: %w", err)
	}
	return cfg, nil
}

// ensureStored persists the default config on the first write so that
// per-holiday updates always have a row to attach to.
func (s *ConfigServiceImpl) ensureStored(ctx context.Context) error {
	_, err := s.ConfigRepository.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, workday.ErrConfigNotFound) {
		return fmt.Errorf("failed to get working day config: %w", err)
	}
	if err := s.ConfigRepository.Save(ctx, workday.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to save default working day config: %w", err)
	}
	return nil
}

func (s *ConfigServiceImpl) save(ctx context.Context, cfg workday.Config) (workday.Config, error) {
	cfg.Normalize()
	if err := s.ConfigRepository.Save(ctx, cfg); err != nil {
		return workday.Config{}, fmt.Errorf("failed to save working day config: %w", err)
	}
	return cfg, nil
}

// UpdateConfig implements workday.ConfigService.
func (s *ConfigServiceImpl) UpdateConfig(ctx context.Context, req workday.UpdateConfigRequest) (workday.Config, error) {
	if err := req.Validate(); err != nil {
		return workday.Config{}, err
	}
	return s.save(ctx, req.Config.Clone())
}

// SetFixedHolidays implements workday.ConfigService.
func (s *ConfigServiceImpl) SetFixedHolidays(ctx context.Context, req workday.SetFixedHolidaysRequest) (workday.Config, error) {
	if err := req.Validate(); err != nil {
		return workday.Config{}, err
	}

	cfg, err := s.GetConfig(ctx)
	if err != nil {
		return workday.Config{}, err
	}
	cfg.FixedHolidays = req.FixedHolidays

	return s.save(ctx, cfg)
}

// SetAlternateDays implements workday.ConfigService.
func (s *ConfigServiceImpl) SetAlternateDays(ctx context.Context, req workday.SetAlternateDaysRequest) (workday.Config, error) {
	if err := req.Validate(); err != nil {
		return workday.Config{}, err
	}

	cfg, err := s.GetConfig(ctx)
	if err != nil {
		return workday.Config{}, err
	}
	cfg.AlternateDays = req.AlternateDays

	return s.save(ctx, cfg)
}

// GetCustomHolidays implements workday.ConfigService.
func (s *ConfigServiceImpl) GetCustomHolidays(ctx context.Context) ([]string, error) {
	cfg, err := s.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	return cfg.CustomHolidays, nil
}

// AddCustomHoliday implements workday.ConfigService.
func (s *ConfigServiceImpl) AddCustomHoliday(ctx context.Context, req workday.CustomHolidayRequest) (workday.Config, error) {
	if err := req.Validate(); err != nil {
		return workday.Config{}, err
	}
	if err := s.ensureStored(ctx); err != nil {
		return workday.Config{}, err
	}

	if err := s.ConfigRepository.AddCustomHoliday(ctx, req.Date); err != nil {
		return workday.Config{}, fmt.Errorf("failed to add custom holiday: %w", err)
	}

	return s.GetConfig(ctx)
}

// RemoveCustomHoliday implements workday.ConfigService.
func (s *ConfigServiceImpl) RemoveCustomHoliday(ctx context.Context, date string) (workday.Config, error) {
	req := workday.CustomHolidayRequest{Date: date}
	if err := req.Validate(); err != nil {
		return workday.Config{}, err
	}
	if err := s.ensureStored(ctx); err != nil {
		return workday.Config{}, err
	}

	if err := s.ConfigRepository.RemoveCustomHoliday(ctx, req.Date); err != nil {
		return workday.Config{}, fmt.Errorf("failed to remove custom holiday: %w", err)
	}

	return s.GetConfig(ctx)
}

// PreviewMonth implements workday.ConfigService.
func (s *ConfigServiceImpl) PreviewMonth(ctx context.Context, query workday.PreviewQuery) (workday.MonthPreviewResponse, error) {
	if err := query.Validate(); err != nil {
		return workday.MonthPreviewResponse{}, err
	}

	cfg, err := s.GetConfig(ctx)
	if err != nil {
		return workday.MonthPreviewResponse{}, err
	}

	days := workday.DaysInMonth(query.Year, time.Month(query.Month), s.loc)
	resp := workday.MonthPreviewResponse{
		Year:  query.Year,
		Month: query.Month,
		Days:  make([]workday.DayPreview, 0, len(days)),
	}
	for _, day := range days {
		working := cfg.IsWorkingDay(day)
		if working {
			resp.WorkingDays++
		} else {
			resp.OffDays++
		}
		resp.Days = append(resp.Days, workday.DayPreview{
			Date:        workday.DateKey(day),
			Weekday:     day.Weekday().String(),
			WeekOfMonth: workday.WeekOfMonth(day.Day()),
			Working:     working,
		})
	}

	return resp, nil
}
