package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/holiday"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (employee_id, start_date, end_date, days, type, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, start_date, end_date, days, type, notes, status, created_at
	`

	var created holiday.Holiday
	err := q.QueryRow(ctx, query,
		h.EmployeeID, h.StartDate, h.EndDate, h.Days, h.Type, h.Notes, h.Status,
	).Scan(
		&created.ID, &created.EmployeeID, &created.StartDate, &created.EndDate,
		&created.Days, &created.Type, &created.Notes, &created.Status, &created.CreatedAt,
	)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id int64) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT h.id, h.employee_id, h.start_date, h.end_date, h.days, h.type,
			h.notes, h.status, h.created_at, e.name AS employee_name
		FROM holidays h
		JOIN employees e ON e.id = h.employee_id
		WHERE h.id = $1
	`

	var h holiday.Holiday
	err := q.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.EmployeeID, &h.StartDate, &h.EndDate, &h.Days, &h.Type,
		&h.Notes, &h.Status, &h.CreatedAt, &h.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to get leave request by id: %w", err)
	}
	return h, nil
}

// List implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) List(ctx context.Context, employeeID *int64) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT h.id, h.employee_id, h.start_date, h.end_date, h.days, h.type,
			h.notes, h.status, h.created_at, e.name AS employee_name
		FROM holidays h
		JOIN employees e ON e.id = h.employee_id
	`
	args := []interface{}{}
	if employeeID != nil {
		query += ` WHERE h.employee_id = $1`
		args = append(args, *employeeID)
	}
	query += ` ORDER BY h.start_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// ListApprovedAnnual implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) ListApprovedAnnual(ctx context.Context, employeeID int64, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT h.id, h.employee_id, h.start_date, h.end_date, h.days, h.type,
			h.notes, h.status, h.created_at, NULL AS employee_name
		FROM holidays h
		WHERE h.employee_id = $1
			AND h.status = $2
			AND h.type = $3
			AND EXTRACT(YEAR FROM h.start_date) = $4
		ORDER BY h.start_date
	`

	rows, err := q.Query(ctx, query, employeeID, holiday.StatusApproved, holiday.TypeAnnual, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// Update implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Update(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holidays
		SET start_date = $1, end_date = $2, days = $3, type = $4, notes = $5, status = $6
		WHERE id = $7
		RETURNING id, employee_id, start_date, end_date, days, type, notes, status, created_at
	`

	var updated holiday.Holiday
	err := q.QueryRow(ctx, query,
		h.StartDate, h.EndDate, h.Days, h.Type, h.Notes, h.Status, h.ID,
	).Scan(
		&updated.ID, &updated.EmployeeID, &updated.StartDate, &updated.EndDate,
		&updated.Days, &updated.Type, &updated.Notes, &updated.Status, &updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return updated, nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

func scanHolidays(rows pgx.Rows) ([]holiday.Holiday, error) {
	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		err := rows.Scan(
			&h.ID, &h.EmployeeID, &h.StartDate, &h.EndDate, &h.Days, &h.Type,
			&h.Notes, &h.Status, &h.CreatedAt, &h.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
