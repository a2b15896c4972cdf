package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/workday"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// configRowID is the primary key of the only working_day_configs row.
const configRowID = 1

type workingDayConfigRepository struct {
	db *database.DB
}

func NewWorkingDayConfigRepository(db *database.DB) workday.ConfigRepository {
	return &workingDayConfigRepository{db: db}
}

func parseHolidayDate(date string) (time.Time, error) {
	t, err := time.Parse(workday.DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid holiday date %q: %w", date, err)
	}
	return t, nil
}

// Get implements workday.ConfigRepository.
func (r *workingDayConfigRepository) Get(ctx context.Context) (workday.Config, error) {
	q := GetQuerier(ctx, r.db)

	var cfg workday.Config
	err := q.QueryRow(ctx, `
		SELECT fixed_holidays, alternate_days
		FROM working_day_configs
		WHERE id = $1
	`, configRowID).Scan(&cfg.FixedHolidays, &cfg.AlternateDays)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workday.Config{}, workday.ErrConfigNotFound
		}
		return workday.Config{}, fmt.Errorf("failed to get working day config: %w", err)
	}

	rows, err := q.Query(ctx, `SELECT holiday_date FROM custom_holidays ORDER BY holiday_date ASC`)
	if err != nil {
		return workday.Config{}, fmt.Errorf("failed to list custom holidays: %w", err)
	}
	defer rows.Close()

	cfg.CustomHolidays = []string{}
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return workday.Config{}, fmt.Errorf("failed to scan custom holiday: %w", err)
		}
		cfg.CustomHolidays = append(cfg.CustomHolidays, date.Format(workday.DateLayout))
	}
	if err := rows.Err(); err != nil {
		return workday.Config{}, fmt.Errorf("failed to iterate custom holidays: %w", err)
	}

	if cfg.FixedHolidays == nil {
		cfg.FixedHolidays = []int{}
	}
	return cfg, nil
}

// Save implements workday.ConfigRepository.
func (r *workingDayConfigRepository) Save(ctx context.Context, config workday.Config) error {
	dates := make([]time.Time, 0, len(config.CustomHolidays))
	for _, d := range config.CustomHolidays {
		t, err := parseHolidayDate(d)
		if err != nil {
			return err
		}
		dates = append(dates, t)
	}

	fixed := config.FixedHolidays
	if fixed == nil {
		fixed = []int{}
	}

	return WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO working_day_configs (id, fixed_holidays, alternate_days, updated_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (id) DO UPDATE
			SET fixed_holidays = EXCLUDED.fixed_holidays,
				alternate_days = EXCLUDED.alternate_days,
				updated_at = NOW()
		`, configRowID, fixed, config.AlternateDays)
		if err != nil {
			return fmt.Errorf("failed to upsert working day config: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM custom_holidays`); err != nil {
			return fmt.Errorf("failed to clear custom holidays: %w", err)
		}

		if len(dates) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, d := range dates {
			batch.Queue(`INSERT INTO custom_holidays (holiday_date) VALUES ($1) ON CONFLICT DO NOTHING`, d)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert custom holidays: %w", err)
		}
		return nil
	})
}

// AddCustomHoliday implements workday.ConfigRepository.
func (r *workingDayConfigRepository) AddCustomHoliday(ctx context.Context, date string) error {
	q := GetQuerier(ctx, r.db)

	t, err := parseHolidayDate(date)
	if err != nil {
		return err
	}

	_, err = q.Exec(ctx, `
		INSERT INTO custom_holidays (holiday_date)
		VALUES ($1)
		ON CONFLICT (holiday_date) DO NOTHING
	`, t)
	if err != nil {
		return fmt.Errorf("failed to add custom holiday: %w", err)
	}
	return nil
}

// RemoveCustomHoliday implements workday.ConfigRepository.
func (r *workingDayConfigRepository) RemoveCustomHoliday(ctx context.Context, date string) error {
	q := GetQuerier(ctx, r.db)

	t, err := parseHolidayDate(date)
	if err != nil {
		return err
	}

	if _, err := q.Exec(ctx, `DELETE FROM custom_holidays WHERE holiday_date = $1`, t); err != nil {
		return fmt.Errorf("failed to remove custom holiday: %w", err)
	}
	return nil
}
