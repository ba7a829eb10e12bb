package settings

import "context"

type SettingsRepository interface {
	// Get returns the singleton row, or Defaults() when none exists yet.
	Get(ctx context.Context) (Settings, error)
	// Upsert creates the singleton on first write and updates it in place
	// afterwards.
	Upsert(ctx context.Context, s Settings) (Settings, error)
}
