package timesheet

import "errors"

var (
	ErrEntryNotFound     = errors.New("time entry not found")
	ErrAlreadyClockedIn  = errors.New("an open time entry already exists for today")
	ErrNotClockedIn      = errors.New("no open time entry exists for today")
	ErrNoLinkedEmployee  = errors.New("user account has no linked employee profile")
	ErrInvalidTimeFormat = errors.New("time must be HH:MM")
)
