package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetSystemStats returns installation-wide counts fetched concurrently
	GetSystemStats(ctx context.Context) (*SystemStatsResponse, error)

	// GetMonthlyReport returns the adjusted monthly stats of every employee
	GetMonthlyReport(ctx context.Context, query MonthlyReportQuery) (*MonthlyReportResponse, error)
}
