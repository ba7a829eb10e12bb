package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/timesheet"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timesheet.TimeEntryRepository {
	return &timeEntryRepositoryImpl{db: db}
}

// Create implements timesheet.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Create(ctx context.Context, e timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (
			employee_id, entry_date, clock_in, clock_out, break_minutes,
			total_hours, overtime_hours, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, entry_date, clock_in, clock_out, break_minutes,
			total_hours, overtime_hours, notes, created_at
	`

	var created timesheet.TimeEntry
	err := q.QueryRow(ctx, query,
		e.EmployeeID, e.Date, e.ClockIn, e.ClockOut, e.BreakMinutes,
		e.TotalHours, e.OvertimeHours, e.Notes,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.ClockIn,
		&created.ClockOut, &created.BreakMinutes, &created.TotalHours,
		&created.OvertimeHours, &created.Notes, &created.CreatedAt,
	)
	if err != nil {
		// The partial unique index rejects a second open entry for the day.
		if IsUniqueViolation(err, "time_entries_open_unique") {
			return timesheet.TimeEntry{}, timesheet.ErrAlreadyClockedIn
		}
		return timesheet.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}
	return created, nil
}

// GetByID implements timesheet.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) GetByID(ctx context.Context, id int64) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.entry_date, t.clock_in, t.clock_out,
			t.break_minutes, t.total_hours, t.overtime_hours, t.notes, t.created_at,
			e.name AS employee_name
		FROM time_entries t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.id = $1
	`

	var entry timesheet.TimeEntry
	err := q.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.ClockIn, &entry.ClockOut,
		&entry.BreakMinutes, &entry.TotalHours, &entry.OvertimeHours, &entry.Notes,
		&entry.CreatedAt, &entry.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.TimeEntry{}, timesheet.ErrEntryNotFound
		}
		return timesheet.TimeEntry{}, fmt.Errorf("failed to get time entry by id: %w", err)
	}
	return entry, nil
}

// GetOpenEntry implements timesheet.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) GetOpenEntry(ctx context.Context, employeeID int64, date time.Time) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.entry_date, t.clock_in, t.clock_out,
			t.break_minutes, t.total_hours, t.overtime_hours, t.notes, t.created_at,
			NULL AS employee_name
		FROM time_entries t
		WHERE t.employee_id = $1 AND t.entry_date = $2 AND t.clock_out IS NULL
	`

	var entry timesheet.TimeEntry
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.ClockIn, &entry.ClockOut,
		&entry.BreakMinutes, &entry.TotalHours, &entry.OvertimeHours, &entry.Notes,
		&entry.CreatedAt, &entry.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.TimeEntry{}, timesheet.ErrEntryNotFound
		}
		return timesheet.TimeEntry{}, fmt.Errorf("failed to get open time entry: %w", err)
	}
	return entry, nil
}

// List implements timesheet.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) List(ctx context.Context, filter timesheet.ListFilter) ([]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.entry_date, t.clock_in, t.clock_out,
			t.break_minutes, t.total_hours, t.overtime_hours, t.notes, t.created_at,
			e.name AS employee_name
		FROM time_entries t
		JOIN employees e ON e.id = t.employee_id
		WHERE 1=1
	`
	args := []interface{}{}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND t.employee_id = $%d", len(args))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		query += fmt.Sprintf(" AND t.entry_date = $%d", len(args))
	}
	query += ` ORDER BY t.entry_date DESC, t.clock_in DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []timesheet.TimeEntry
	for rows.Next() {
		var entry timesheet.TimeEntry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.Date, &entry.ClockIn, &entry.ClockOut,
			&entry.BreakMinutes, &entry.TotalHours, &entry.OvertimeHours, &entry.Notes,
			&entry.CreatedAt, &entry.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Update implements timesheet.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Update(ctx context.Context, e timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET clock_in = $1, clock_out = $2, break_minutes = $3,
			total_hours = $4, overtime_hours = $5, notes = $6
		WHERE id = $7
		RETURNING id, employee_id, entry_date, clock_in, clock_out, break_minutes,
			total_hours, overtime_hours, notes, created_at
	`

	var updated timesheet.TimeEntry
	err := q.QueryRow(ctx, query,
		e.ClockIn, e.ClockOut, e.BreakMinutes,
		e.TotalHours, e.OvertimeHours, e.Notes, e.ID,
	).Scan(
		&updated.ID, &updated.EmployeeID, &updated.Date, &updated.ClockIn,
		&updated.ClockOut, &updated.BreakMinutes, &updated.TotalHours,
		&updated.OvertimeHours, &updated.Notes, &updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.TimeEntry{}, timesheet.ErrEntryNotFound
		}
		return timesheet.TimeEntry{}, fmt.Errorf("failed to update time entry: %w", err)
	}
	return updated, nil
}

// Delete implements timesheet.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrEntryNotFound
	}
	return nil
}
