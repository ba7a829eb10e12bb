package postgresql

import (
	"context"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/holiday"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountActiveEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountActiveEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE status = $1`, employee.StatusActive).Scan(&count)
	return count, err
}

// CountOnLeave implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountOnLeave(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT employee_id)
		FROM holidays
		WHERE status = $1 AND start_date <= $2 AND end_date >= $2
	`

	var count int64
	err := q.QueryRow(ctx, query, holiday.StatusApproved, date).Scan(&count)
	return count, err
}

// CountClockedIn implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountClockedIn(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT employee_id)
		FROM time_entries
		WHERE entry_date = $1 AND clock_out IS NULL
	`

	var count int64
	err := q.QueryRow(ctx, query, date).Scan(&count)
	return count, err
}
