package holiday

import "context"

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id int64) (Holiday, error)
	List(ctx context.Context, employeeID *int64) ([]Holiday, error)
	// ListApprovedAnnual returns approved annual requests whose start date
	// falls within year, for the leave-balance computation.
	ListApprovedAnnual(ctx context.Context, employeeID int64, year int) ([]Holiday, error)
	Update(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id int64) error
}
