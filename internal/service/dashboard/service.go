package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/workday"
	attendanceService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/attendance"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// reportConcurrency bounds the per-employee record loads of a monthly report
const reportConcurrency = 8

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	configService  workday.ConfigService
	calculator     *attendanceService.Calculator
	now            func() time.Time
}

func NewDashboardService(
	repo dashboard.DashboardRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	configService workday.ConfigService,
	calculator *attendanceService.Calculator,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		employeeRepo:        employeeRepo,
		attendanceRepo:      attendanceRepo,
		configService:       configService,
		calculator:          calculator,
		now:                 time.Now,
	}
}

// GetSystemStats returns installation-wide counts using parallel goroutines
func (s *DashboardServiceImpl) GetSystemStats(ctx context.Context) (*dashboard.SystemStatsResponse, error) {
	now := s.now()
	since := now.Add(-employee.ActiveWindow)

	local := s.calculator.LocalDate(now)
	todayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.calculator.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)

	var stats dashboard.SystemStatsResponse

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.CountEmployees(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		stats.TotalEmployees = count
		return nil
	})

	g.Go(func() error {
		count, err := s.CountActiveEmployees(gCtx, since)
		if err != nil {
			return fmt.Errorf("failed to count active employees: %w", err)
		}
		stats.ActiveEmployees = count
		return nil
	})

	g.Go(func() error {
		count, err := s.CountRecords(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count records: %w", err)
		}
		stats.TotalRecords = count
		return nil
	})

	g.Go(func() error {
		count, err := s.CountRecordsBetween(gCtx, todayStart, todayEnd)
		if err != nil {
			return fmt.Errorf("failed to count today's records: %w", err)
		}
		stats.TodayRecords = count
		return nil
	})

	g.Go(func() error {
		count, err := s.CountOpenSessions(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count open sessions: %w", err)
		}
		stats.OpenSessions = count
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("Failed to load system stats", "error", err)
		return nil, err
	}

	stats.SystemStatus = dashboard.SystemStatusOperational
	stats.UpdatedAt = now.UTC().Format(time.RFC3339)

	return &stats, nil
}

// GetMonthlyReport computes adjusted stats for every employee concurrently
func (s *DashboardServiceImpl) GetMonthlyReport(ctx context.Context, query dashboard.MonthlyReportQuery) (*dashboard.MonthlyReportResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cfg, err := s.configService.GetConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get working day config: %w", err)
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	month := time.Month(query.Month)
	rows := make([]dashboard.EmployeeMonthlyReport, len(employees))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(reportConcurrency)

	for i, emp := range employees {
		g.Go(func() error {
			records, err := s.attendanceRepo.ListByEmployee(gCtx, emp.ID)
			if err != nil {
				return fmt.Errorf("failed to list records of %s: %w", emp.ID, err)
			}

			hours := s.calculator.HoursInMonth(records, query.Year, month)
			rows[i] = dashboard.EmployeeMonthlyReport{
				EmployeeID:           emp.ID,
				Name:                 emp.Name,
				Department:           emp.Department,
				AdjustedStats:        s.calculator.AdjustedAttendanceStats(records, query.Year, month, cfg),
				HoursWorked:          hours,
				HoursWorkedFormatted: attendanceService.FormatHoursToHoursMinutes(hours),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	totals := dashboard.MonthlyReportTotals{HoursWorked: decimal.Zero}
	for _, row := range rows {
		totals.PresentDays += row.PresentDays
		totals.AbsentDays += row.AbsentDays
		totals.AdjustedAbsentDays += row.AdjustedAbsentDays
		totals.ExtraDays += row.ExtraDays
		totals.HoursWorked = totals.HoursWorked.Add(row.HoursWorked)
	}

	return &dashboard.MonthlyReportResponse{
		Year:        query.Year,
		Month:       query.Month,
		WorkingDays: s.calculator.WorkingDaysInMonth(query.Year, month, cfg),
		Employees:   rows,
		Totals:      totals,
	}, nil
}
