package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/settings"
	"github.com/staffhub/staffhub-backend-go/internal/domain/timesheet"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub/staffhub-backend-go/internal/repository/postgresql"
)

type TimesheetService interface {
	ClockIn(ctx context.Context, req timesheet.ClockInRequest) (timesheet.TimeEntry, error)
	ClockOut(ctx context.Context, req timesheet.ClockOutRequest) (timesheet.TimeEntry, error)
	CreateEntry(ctx context.Context, req timesheet.CreateEntryRequest) (timesheet.TimeEntry, error)
	List(ctx context.Context, filter timesheet.ListFilter) ([]timesheet.TimeEntry, error)
	Delete(ctx context.Context, id int64) error
}

type TimesheetServiceImpl struct {
	db *database.DB
	timesheet.TimeEntryRepository
	employee.EmployeeRepository
	settings.SettingsRepository

	// now is swappable for tests.
	now func() time.Time
}

func NewTimesheetService(
	db *database.DB,
	timeEntryRepository timesheet.TimeEntryRepository,
	employeeRepository employee.EmployeeRepository,
	settingsRepository settings.SettingsRepository,
) *TimesheetServiceImpl {
	return &TimesheetServiceImpl{
		db:                  db,
		TimeEntryRepository: timeEntryRepository,
		EmployeeRepository:  employeeRepository,
		SettingsRepository:  settingsRepository,
		now:                 time.Now,
	}
}

func (s *TimesheetServiceImpl) workingHours(ctx context.Context) int {
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil || cfg.WorkingHoursPerDay <= 0 {
		return settings.DefaultWorkingHoursPerDay
	}
	return cfg.WorkingHoursPerDay
}

func (s *TimesheetServiceImpl) callerEmployee(ctx context.Context) (int64, error) {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return 0, err
	}
	if identity.EmployeeID == nil {
		return 0, timesheet.ErrNoLinkedEmployee
	}
	return *identity.EmployeeID, nil
}

// ClockIn implements TimesheetService. The check and the insert run in one
// transaction; the partial unique index backs the check under concurrency.
func (s *TimesheetServiceImpl) ClockIn(ctx context.Context, req timesheet.ClockInRequest) (timesheet.TimeEntry, error) {
	employeeID, err := s.callerEmployee(ctx)
	if err != nil {
		return timesheet.TimeEntry{}, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var created timesheet.TimeEntry
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		_, err := s.TimeEntryRepository.GetOpenEntry(txCtx, employeeID, today)
		if err == nil {
			return timesheet.ErrAlreadyClockedIn
		}
		if !errors.Is(err, timesheet.ErrEntryNotFound) {
			return err
		}

		created, err = s.TimeEntryRepository.Create(txCtx, timesheet.TimeEntry{
			EmployeeID: employeeID,
			Date:       today,
			ClockIn:    now.Format("15:04"),
			Notes:      req.Notes,
		})
		return err
	})
	if err != nil {
		return timesheet.TimeEntry{}, err
	}
	return created, nil
}

// ClockOut implements TimesheetService.
func (s *TimesheetServiceImpl) ClockOut(ctx context.Context, req timesheet.ClockOutRequest) (timesheet.TimeEntry, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimeEntry{}, err
	}

	employeeID, err := s.callerEmployee(ctx)
	if err != nil {
		return timesheet.TimeEntry{}, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	entry, err := s.TimeEntryRepository.GetOpenEntry(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, timesheet.ErrEntryNotFound) {
			return timesheet.TimeEntry{}, timesheet.ErrNotClockedIn
		}
		return timesheet.TimeEntry{}, err
	}

	clockOut := now.Format("15:04")
	totalHours, overtimeHours, err := ComputeTotals(entry.ClockIn, clockOut, req.BreakMinutes, s.workingHours(ctx))
	if err != nil {
		return timesheet.TimeEntry{}, err
	}

	entry.ClockOut = &clockOut
	entry.BreakMinutes = req.BreakMinutes
	entry.TotalHours = &totalHours
	entry.OvertimeHours = &overtimeHours
	if req.Notes != "" {
		entry.Notes = req.Notes
	}

	return s.TimeEntryRepository.Update(ctx, entry)
}

// CreateEntry implements TimesheetService (privileged manual entry).
func (s *TimesheetServiceImpl) CreateEntry(ctx context.Context, req timesheet.CreateEntryRequest) (timesheet.TimeEntry, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimeEntry{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return timesheet.TimeEntry{}, err
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return timesheet.TimeEntry{}, fmt.Errorf("failed to parse date: %w", err)
	}

	entry := timesheet.TimeEntry{
		EmployeeID:   req.EmployeeID,
		Date:         date,
		ClockIn:      req.ClockIn,
		ClockOut:     req.ClockOut,
		BreakMinutes: req.BreakMinutes,
		Notes:        req.Notes,
	}

	if req.ClockOut != nil {
		totalHours, overtimeHours, err := ComputeTotals(req.ClockIn, *req.ClockOut, req.BreakMinutes, s.workingHours(ctx))
		if err != nil {
			return timesheet.TimeEntry{}, err
		}
		entry.TotalHours = &totalHours
		entry.OvertimeHours = &overtimeHours
	}

	return s.TimeEntryRepository.Create(ctx, entry)
}

// List implements TimesheetService. Non-privileged callers only see their
// own entries.
func (s *TimesheetServiceImpl) List(ctx context.Context, filter timesheet.ListFilter) ([]timesheet.TimeEntry, error) {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if !identity.Privileged() {
		if identity.EmployeeID == nil {
			return []timesheet.TimeEntry{}, nil
		}
		filter.EmployeeID = identity.EmployeeID
	}

	return s.TimeEntryRepository.List(ctx, filter)
}

// Delete implements TimesheetService.
func (s *TimesheetServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.TimeEntryRepository.Delete(ctx, id)
}
