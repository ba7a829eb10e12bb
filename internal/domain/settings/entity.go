package settings

import "time"

const DefaultWorkingHoursPerDay = 8

// Settings is a singleton row, created lazily on first write.
type Settings struct {
	ID                 int64
	CompanyName        string
	WorkingHoursPerDay int
	UpdatedAt          time.Time
}

func Defaults() Settings {
	return Settings{
		WorkingHoursPerDay: DefaultWorkingHoursPerDay,
	}
}
