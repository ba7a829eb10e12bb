package dashboard

import (
	"context"
	"time"
)

type DashboardRepository interface {
	CountActiveEmployees(ctx context.Context) (int64, error)
	CountOnLeave(ctx context.Context, date time.Time) (int64, error)
	CountClockedIn(ctx context.Context, date time.Time) (int64, error)
}
