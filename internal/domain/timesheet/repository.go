package timesheet

import (
	"context"
	"time"
)

type TimeEntryRepository interface {
	Create(ctx context.Context, e TimeEntry) (TimeEntry, error)
	GetByID(ctx context.Context, id int64) (TimeEntry, error)
	// GetOpenEntry returns the open entry (clock_out IS NULL) for the
	// employee on the given date, or ErrEntryNotFound.
	GetOpenEntry(ctx context.Context, employeeID int64, date time.Time) (TimeEntry, error)
	List(ctx context.Context, filter ListFilter) ([]TimeEntry, error)
	Update(ctx context.Context, e TimeEntry) (TimeEntry, error)
	Delete(ctx context.Context, id int64) error
}
