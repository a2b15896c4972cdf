package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/workday"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	configService workday.ConfigService
	calculator    *Calculator
	publisher     attendance.EventPublisher
	now           func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	configService workday.ConfigService,
	calculator *Calculator,
	publisher attendance.EventPublisher,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		configService:        configService,
		calculator:           calculator,
		publisher:            publisher,
		now:                  time.Now,
	}
}

func (s *AttendanceServiceImpl) publish(event attendance.ClockEvent) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishClockEvent(event)
}

func toRecordResponse(r attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		ClockIn:    r.ClockIn,
		ClockOut:   r.ClockOut,
		TotalHours: r.TotalHours,
	}
	if r.TotalHours != nil {
		formatted := FormatHoursToHoursMinutes(*r.TotalHours)
		resp.TotalHoursFormatted = &formatted
	}
	return resp
}

func (s *AttendanceServiceImpl) getEmployee(ctx context.Context, employeeID string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.getEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	_, err = s.AttendanceRepository.GetOpenSession(ctx, emp.ID)
	if err == nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyClockedIn
	}
	if !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.RecordResponse{}, fmt.Errorf("failed to check open session: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to generate record id: %w", err)
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Record{
		ID:         id.String(),
		EmployeeID: emp.ID,
		ClockIn:    s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyClockedIn) {
			return attendance.RecordResponse{}, err
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	s.publish(attendance.ClockEvent{
		Type:         attendance.EventClockIn,
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		RecordID:     created.ID,
		At:           created.ClockIn,
	})

	return toRecordResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.getEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	open, err := s.AttendanceRepository.GetOpenSession(ctx, emp.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}

	open.Close(s.now())
	closed, err := s.AttendanceRepository.Close(ctx, open)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyClosed) {
			return attendance.RecordResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to close attendance record: %w", err)
	}

	s.publish(attendance.ClockEvent{
		Type:         attendance.EventClockOut,
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		RecordID:     closed.ID,
		At:           *closed.ClockOut,
		TotalHours:   closed.TotalHours,
	})

	return toRecordResponse(closed), nil
}

// GetEmployeeRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeRecords(ctx context.Context, employeeID string) (attendance.EmployeeRecordsResponse, error) {
	emp, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return attendance.EmployeeRecordsResponse{}, err
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return attendance.EmployeeRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	summary := attendance.RecordsSummary{
		TotalRecords:     len(records),
		TotalHoursWorked: decimal.Zero,
	}
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		resp := toRecordResponse(r)
		responses = append(responses, resp)

		if r.IsOpen() {
			if summary.ActiveRecord == nil {
				summary.ActiveRecord = &resp
			}
			continue
		}
		summary.CompletedRecords++
		if r.TotalHours != nil {
			summary.TotalHoursWorked = summary.TotalHoursWorked.Add(*r.TotalHours)
		}
	}
	summary.TotalHoursWorked = summary.TotalHoursWorked.Round(2)
	summary.TotalHoursFormatted = FormatHoursToHoursMinutes(summary.TotalHoursWorked)

	return attendance.EmployeeRecordsResponse{
		Employee: attendance.EmployeeHeader{
			ID:         emp.ID,
			Name:       emp.Name,
			Department: emp.Department,
		},
		Records: responses,
		Summary: summary,
	}, nil
}

// GetStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetStatus(ctx context.Context, employeeID string) (attendance.StatusResponse, error) {
	emp, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	status := attendance.StatusResponse{EmployeeID: emp.ID}
	for _, r := range records {
		if r.IsOpen() {
			resp := toRecordResponse(r)
			status.ClockedIn = true
			status.OpenRecord = &resp
			break
		}
	}

	status.TodayHours = s.calculator.HoursForDate(records, s.calculator.LocalDate(s.now()))
	status.TodayHoursFormatted = FormatHoursToHoursMinutes(status.TodayHours)

	return status, nil
}

// GetMonthlyStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthlyStats(ctx context.Context, query attendance.MonthQuery) (attendance.MonthlyStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return attendance.MonthlyStatsResponse{}, err
	}

	emp, err := s.getEmployee(ctx, query.EmployeeID)
	if err != nil {
		return attendance.MonthlyStatsResponse{}, err
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return attendance.MonthlyStatsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	cfg, err := s.configService.GetConfig(ctx)
	if err != nil {
		return attendance.MonthlyStatsResponse{}, fmt.Errorf("failed to get working day config: %w", err)
	}

	month := time.Month(query.Month)
	stats := s.calculator.AdjustedAttendanceStats(records, query.Year, month, cfg)
	hours := s.calculator.HoursInMonth(records, query.Year, month)

	return attendance.MonthlyStatsResponse{
		EmployeeID:           emp.ID,
		Year:                 query.Year,
		Month:                query.Month,
		AdjustedStats:        stats,
		CumulativeExtraDays:  stats.ExtraDaysUsed + stats.RemainingExtraDays,
		HoursWorked:          hours,
		HoursWorkedFormatted: FormatHoursToHoursMinutes(hours),
	}, nil
}

// GetDailyHours implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDailyHours(ctx context.Context, query attendance.DailyHoursQuery) (attendance.DailyHoursResponse, error) {
	if err := query.Validate(); err != nil {
		return attendance.DailyHoursResponse{}, err
	}

	emp, err := s.getEmployee(ctx, query.EmployeeID)
	if err != nil {
		return attendance.DailyHoursResponse{}, err
	}

	date, err := time.ParseInLocation(workday.DateLayout, query.Date, s.calculator.Location())
	if err != nil {
		return attendance.DailyHoursResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return attendance.DailyHoursResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	hours := s.calculator.HoursForDate(records, date)

	return attendance.DailyHoursResponse{
		EmployeeID:     emp.ID,
		Date:           query.Date,
		Hours:          hours,
		HoursFormatted: FormatHoursToHoursMinutes(hours),
	}, nil
}

// CloseStaleSessions implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CloseStaleSessions(ctx context.Context, maxOpen time.Duration) (int, error) {
	if maxOpen <= 0 {
		return 0, nil
	}

	stale, err := s.AttendanceRepository.ListStaleSessions(ctx, s.now().Add(-maxOpen))
	if err != nil {
		return 0, fmt.Errorf("failed to list stale sessions: %w", err)
	}

	closedCount := 0
	for _, record := range stale {
		record.Close(record.ClockIn.Add(maxOpen))

		closed, err := s.AttendanceRepository.Close(ctx, record)
		if err != nil {
			if errors.Is(err, attendance.ErrAlreadyClosed) {
				continue
			}
			slog.Error("Failed to auto close attendance", "record_id", record.ID, "error", err)
			continue
		}
		closedCount++

		event := attendance.ClockEvent{
			Type:       attendance.EventClockOut,
			EmployeeID: closed.EmployeeID,
			RecordID:   closed.ID,
			At:         *closed.ClockOut,
			TotalHours: closed.TotalHours,
			Automatic:  true,
		}
		if emp, err := s.EmployeeRepository.GetByID(ctx, closed.EmployeeID); err == nil {
			event.EmployeeName = emp.Name
		}
		s.publish(event)
	}

	return closedCount, nil
}
