package dashboard

import (
	"context"
	"time"
)

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int64, error)

	// CountActiveEmployees counts employees with a clock-in at or after since
	CountActiveEmployees(ctx context.Context, since time.Time) (int64, error)

	CountRecords(ctx context.Context) (int64, error)

	// CountRecordsBetween counts records clocked in within [from, to)
	CountRecordsBetween(ctx context.Context, from, to time.Time) (int64, error)

	CountOpenSessions(ctx context.Context) (int64, error)
}
