package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/settings"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Get implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_name, working_hours_per_day, updated_at
		FROM settings
		ORDER BY id
		LIMIT 1
	`

	var s settings.Settings
	err := q.QueryRow(ctx, query).Scan(&s.ID, &s.CompanyName, &s.WorkingHoursPerDay, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Defaults(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return s, nil
}

// Upsert implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Upsert(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == 0 {
		query := `
			INSERT INTO settings (company_name, working_hours_per_day)
			VALUES ($1, $2)
			RETURNING id, company_name, working_hours_per_day, updated_at
		`
		var created settings.Settings
		err := q.QueryRow(ctx, query, s.CompanyName, s.WorkingHoursPerDay).Scan(
			&created.ID, &created.CompanyName, &created.WorkingHoursPerDay, &created.UpdatedAt,
		)
		if err != nil {
			return settings.Settings{}, fmt.Errorf("failed to create settings: %w", err)
		}
		return created, nil
	}

	query := `
		UPDATE settings
		SET company_name = $1, working_hours_per_day = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, company_name, working_hours_per_day, updated_at
	`
	var updated settings.Settings
	err := q.QueryRow(ctx, query, s.CompanyName, s.WorkingHoursPerDay, s.ID).Scan(
		&updated.ID, &updated.CompanyName, &updated.WorkingHoursPerDay, &updated.UpdatedAt,
	)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}
	return updated, nil
}
