package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/staffhub-backend-go/internal/domain/timesheet"
	"github.com/staffhub/staffhub-backend-go/internal/repository/postgresql"
	timesheetService "github.com/staffhub/staffhub-backend-go/internal/service/timesheet"
)

func TestClockInTwiceSameDay(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	employeeID := createTestEmployee(t, db, "Ada Lovelace", "ada@example.com")
	ctx := identityContext(t, 1, employeeID, "employee")

	svc := timesheetService.NewTimesheetService(
		db,
		postgresql.NewTimeEntryRepository(db),
		postgresql.NewEmployeeRepository(db),
		postgresql.NewSettingsRepository(db),
	)

	first, err := svc.ClockIn(ctx, timesheet.ClockInRequest{})
	require.NoError(t, err)
	assert.Equal(t, employeeID, first.EmployeeID)
	assert.True(t, first.Open())

	_, err = svc.ClockIn(ctx, timesheet.ClockInRequest{})
	assert.ErrorIs(t, err, timesheet.ErrAlreadyClockedIn)
}

func TestClockInAfterClockOutSucceeds(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	employeeID := createTestEmployee(t, db, "Grace Hopper", "grace@example.com")
	ctx := identityContext(t, 1, employeeID, "employee")

	svc := timesheetService.NewTimesheetService(
		db,
		postgresql.NewTimeEntryRepository(db),
		postgresql.NewEmployeeRepository(db),
		postgresql.NewSettingsRepository(db),
	)

	_, err := svc.ClockIn(ctx, timesheet.ClockInRequest{})
	require.NoError(t, err)

	closed, err := svc.ClockOut(ctx, timesheet.ClockOutRequest{})
	require.NoError(t, err)
	assert.False(t, closed.Open())

	// With the day's entry closed a fresh clock-in is allowed again.
	second, err := svc.ClockIn(ctx, timesheet.ClockInRequest{})
	require.NoError(t, err)
	assert.NotEqual(t, closed.ID, second.ID)
}

func TestOpenEntryIndexRejectsDuplicate(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	employeeID := createTestEmployee(t, db, "Alan Turing", "alan@example.com")
	repo := postgresql.NewTimeEntryRepository(db)
	ctx := context.Background()
	today := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, timesheet.TimeEntry{
		EmployeeID: employeeID,
		Date:       today,
		ClockIn:    "09:00",
	})
	require.NoError(t, err)

	// A second open entry for the same employee and date hits
	// time_entries_open_unique and surfaces as the same conflict the
	// in-transaction check reports.
	_, err = repo.Create(ctx, timesheet.TimeEntry{
		EmployeeID: employeeID,
		Date:       today,
		ClockIn:    "09:05",
	})
	assert.ErrorIs(t, err, timesheet.ErrAlreadyClockedIn)

	// A closed entry on the same date is fine.
	clockOut := "17:00"
	_, err = repo.Create(ctx, timesheet.TimeEntry{
		EmployeeID: employeeID,
		Date:       today,
		ClockIn:    "12:00",
		ClockOut:   &clockOut,
	})
	assert.NoError(t, err)
}
