package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
)

// AttendanceJobs holds the attendance housekeeping jobs.
type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	maxOpen           time.Duration
	interval          time.Duration
}

// NewAttendanceJobs closes sessions left open longer than maxOpen, checking every interval.
func NewAttendanceJobs(attendanceService attendance.AttendanceService, maxOpen, interval time.Duration) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceService: attendanceService,
		maxOpen:           maxOpen,
		interval:          interval,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	if j.maxOpen <= 0 {
		slog.Info("Cron: stale session auto-close disabled")
		return
	}
	scheduler.AddJob("auto_close_stale_sessions", j.interval, j.AutoCloseStaleSessions)
}

func (j *AttendanceJobs) AutoCloseStaleSessions(ctx context.Context) error {
	closed, err := j.attendanceService.CloseStaleSessions(ctx, j.maxOpen)
	if err != nil {
		return fmt.Errorf("failed to close stale sessions: %w", err)
	}

	if closed > 0 {
		slog.Info("Cron: Auto-closed stale sessions", "count", closed, "max_open", j.maxOpen)
	}
	return nil
}
