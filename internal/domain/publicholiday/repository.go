package publicholiday

import "context"

type PublicHolidayRepository interface {
	// Get returns the singleton list; an empty List with the configured
	// country when none exists yet.
	Get(ctx context.Context) (List, error)
	// Replace writes the whole list back, creating the row lazily.
	Replace(ctx context.Context, l List) (List, error)
}
