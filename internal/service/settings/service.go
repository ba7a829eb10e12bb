package settings

import (
	"context"

	"github.com/staffhub/staffhub-backend-go/internal/domain/settings"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type SettingsService interface {
	Get(ctx context.Context) (settings.Settings, error)
	Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.Settings, error)
}

type SettingsServiceImpl struct {
	db *database.DB
	settings.SettingsRepository
}

func NewSettingsService(db *database.DB, settingsRepository settings.SettingsRepository) SettingsService {
	return &SettingsServiceImpl{
		db:                 db,
		SettingsRepository: settingsRepository,
	}
}

// Get implements SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.Settings, error) {
	return s.SettingsRepository.Get(ctx)
}

// Update implements SettingsService. The singleton row is created lazily on
// the first write.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.Settings, error) {
	if err := req.Validate(); err != nil {
		return settings.Settings{}, err
	}

	current, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.Settings{}, err
	}

	if req.CompanyName != nil {
		current.CompanyName = *req.CompanyName
	}
	if req.WorkingHoursPerDay != nil {
		current.WorkingHoursPerDay = *req.WorkingHoursPerDay
	}

	return s.SettingsRepository.Upsert(ctx, current)
}
