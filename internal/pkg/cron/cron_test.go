package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceService struct {
	attendance.AttendanceService
	calls   int
	maxOpen time.Duration
	closed  int
	err     error
}

func (s *stubAttendanceService) CloseStaleSessions(ctx context.Context, maxOpen time.Duration) (int, error) {
	s.calls++
	s.maxOpen = maxOpen
	return s.closed, s.err
}

func TestScheduler_AddJobIgnoresNonPositiveInterval(t *testing.T) {
	s := NewScheduler()
	s.AddJob("never", 0, func(ctx context.Context) error { return nil })
	s.AddJob("hourly", time.Hour, func(ctx context.Context) error { return nil })

	jobs := s.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "hourly", jobs[0].Name)
}

func TestScheduler_RunOnceRunsEveryJob(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddJob("a", time.Hour, func(ctx context.Context) error { runs.Add(1); return nil })
	s.AddJob("b", time.Hour, func(ctx context.Context) error { runs.Add(1); return errors.New("boom") })

	s.RunOnce(context.Background())

	assert.EqualValues(t, 2, runs.Load())
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	ran := make(chan struct{}, 1)
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start(context.Background())
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
}

func TestAttendanceJobs_RegisterJobs(t *testing.T) {
	svc := &stubAttendanceService{}

	s := NewScheduler()
	NewAttendanceJobs(svc, 0, time.Minute).RegisterJobs(s)
	assert.Empty(t, s.Jobs())

	s = NewScheduler()
	NewAttendanceJobs(svc, 14*time.Hour, time.Minute).RegisterJobs(s)
	require.Len(t, s.Jobs(), 1)
	assert.Equal(t, time.Minute, s.Jobs()[0].Interval)
}

func TestAttendanceJobs_AutoCloseStaleSessions(t *testing.T) {
	svc := &stubAttendanceService{closed: 3}
	jobs := NewAttendanceJobs(svc, 14*time.Hour, time.Minute)

	require.NoError(t, jobs.AutoCloseStaleSessions(context.Background()))
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, 14*time.Hour, svc.maxOpen)

	svc.err = errors.New("db down")
	assert.Error(t, jobs.AutoCloseStaleSessions(context.Background()))
}
