package dashboard

import (
	"context"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	Stats(ctx context.Context) (dashboard.Stats, error)
}

type DashboardServiceImpl struct {
	dashboard.DashboardRepository

	// now is swappable for tests.
	now func() time.Time
}

func NewDashboardService(repository dashboard.DashboardRepository) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		DashboardRepository: repository,
		now:                 time.Now,
	}
}

// Stats implements DashboardService. The two today-bound counts are
// independent reads and run concurrently.
func (s *DashboardServiceImpl) Stats(ctx context.Context) (dashboard.Stats, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var stats dashboard.Stats

	active, err := s.DashboardRepository.CountActiveEmployees(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}
	stats.ActiveEmployees = active

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.DashboardRepository.CountOnLeave(gCtx, today)
		if err != nil {
			return err
		}
		stats.OnLeaveToday = count
		return nil
	})
	g.Go(func() error {
		count, err := s.DashboardRepository.CountClockedIn(gCtx, today)
		if err != nil {
			return err
		}
		stats.ClockedIn = count
		return nil
	})
	if err := g.Wait(); err != nil {
		return dashboard.Stats{}, err
	}

	return stats, nil
}
