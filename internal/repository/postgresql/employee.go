package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func mapEmployeeUniqueViolation(err error) error {
	switch {
	case IsUniqueViolation(err, "employees_email_key"):
		return employee.ErrEmailExists
	case IsUniqueViolation(err, "employees_employee_number_key"):
		return employee.ErrEmployeeNumberExists
	}
	return nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_number, name, email, department_id, job_title, start_date,
			salary, holiday_allowance, phone, address,
			emergency_contact_name, emergency_contact_phone, status
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13
		)
		RETURNING id, employee_number, name, email, department_id, job_title, start_date,
			salary, holiday_allowance, phone, address,
			emergency_contact_name, emergency_contact_phone, status, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		e.EmployeeNumber, e.Name, e.Email, e.DepartmentID, e.JobTitle, e.StartDate,
		e.Salary, e.HolidayAllowance, e.Phone, e.Address,
		e.EmergencyContactName, e.EmergencyContactPhone, e.Status,
	).Scan(
		&created.ID, &created.EmployeeNumber, &created.Name, &created.Email,
		&created.DepartmentID, &created.JobTitle, &created.StartDate,
		&created.Salary, &created.HolidayAllowance, &created.Phone, &created.Address,
		&created.EmergencyContactName, &created.EmergencyContactPhone, &created.Status,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if mapped := mapEmployeeUniqueViolation(err); mapped != nil {
			return employee.Employee{}, mapped
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.employee_number, e.name, e.email, e.department_id, e.job_title,
			e.start_date, e.salary, e.holiday_allowance, e.phone, e.address,
			e.emergency_contact_name, e.emergency_contact_phone, e.status,
			e.created_at, e.updated_at, d.name AS department_name
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.EmployeeNumber, &emp.Name, &emp.Email, &emp.DepartmentID,
		&emp.JobTitle, &emp.StartDate, &emp.Salary, &emp.HolidayAllowance,
		&emp.Phone, &emp.Address, &emp.EmergencyContactName, &emp.EmergencyContactPhone,
		&emp.Status, &emp.CreatedAt, &emp.UpdatedAt, &emp.DepartmentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.employee_number, e.name, e.email, e.department_id, e.job_title,
			e.start_date, e.salary, e.holiday_allowance, e.phone, e.address,
			e.emergency_contact_name, e.emergency_contact_phone, e.status,
			e.created_at, e.updated_at, d.name AS department_name
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.EmployeeNumber, &emp.Name, &emp.Email, &emp.DepartmentID,
			&emp.JobTitle, &emp.StartDate, &emp.Salary, &emp.HolidayAllowance,
			&emp.Phone, &emp.Address, &emp.EmergencyContactName, &emp.EmergencyContactPhone,
			&emp.Status, &emp.CreatedAt, &emp.UpdatedAt, &emp.DepartmentName,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET employee_number = $1, name = $2, email = $3, department_id = $4,
			job_title = $5, start_date = $6, salary = $7, holiday_allowance = $8,
			phone = $9, address = $10, emergency_contact_name = $11,
			emergency_contact_phone = $12, status = $13, updated_at = NOW()
		WHERE id = $14
		RETURNING id, employee_number, name, email, department_id, job_title, start_date,
			salary, holiday_allowance, phone, address,
			emergency_contact_name, emergency_contact_phone, status, created_at, updated_at
	`

	var updated employee.Employee
	err := q.QueryRow(ctx, query,
		e.EmployeeNumber, e.Name, e.Email, e.DepartmentID,
		e.JobTitle, e.StartDate, e.Salary, e.HolidayAllowance,
		e.Phone, e.Address, e.EmergencyContactName,
		e.EmergencyContactPhone, e.Status, e.ID,
	).Scan(
		&updated.ID, &updated.EmployeeNumber, &updated.Name, &updated.Email,
		&updated.DepartmentID, &updated.JobTitle, &updated.StartDate,
		&updated.Salary, &updated.HolidayAllowance, &updated.Phone, &updated.Address,
		&updated.EmergencyContactName, &updated.EmergencyContactPhone, &updated.Status,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if mapped := mapEmployeeUniqueViolation(err); mapped != nil {
			return employee.Employee{}, mapped
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
// Leave requests and time entries cascade via foreign keys.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
