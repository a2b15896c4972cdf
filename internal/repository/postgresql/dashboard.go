package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) count(ctx context.Context, name, query string, args ...any) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", name, err)
	}
	return n, nil
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	return r.count(ctx, "employees", `SELECT COUNT(*) FROM employees`)
}

// CountActiveEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountActiveEmployees(ctx context.Context, since time.Time) (int64, error) {
	return r.count(ctx, "active employees", `
		SELECT COUNT(DISTINCT employee_id)
		FROM attendance_records
		WHERE clock_in >= $1
	`, since)
}

// CountRecords implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountRecords(ctx context.Context) (int64, error) {
	return r.count(ctx, "attendance records", `SELECT COUNT(*) FROM attendance_records`)
}

// CountRecordsBetween implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountRecordsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return r.count(ctx, "attendance records in range", `
		SELECT COUNT(*)
		FROM attendance_records
		WHERE clock_in >= $1 AND clock_in < $2
	`, from, to)
}

// CountOpenSessions implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountOpenSessions(ctx context.Context) (int64, error) {
	return r.count(ctx, "open sessions", `SELECT COUNT(*) FROM attendance_records WHERE clock_out IS NULL`)
}
