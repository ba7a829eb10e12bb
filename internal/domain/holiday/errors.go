package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("leave request not found")
	ErrNotOwner        = errors.New("leave request belongs to another employee")
)
