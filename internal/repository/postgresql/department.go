package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/department"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (name, manager_id)
		VALUES ($1, $2)
		RETURNING id, name, manager_id, created_at, updated_at
	`

	var created department.Department
	err := q.QueryRow(ctx, query, d.Name, d.ManagerID).Scan(
		&created.ID, &created.Name, &created.ManagerID, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return created, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id int64) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.manager_id, d.created_at, d.updated_at,
			m.name AS manager_name,
			(SELECT COUNT(*) FROM employees e WHERE e.department_id = d.id) AS employee_count
		FROM departments d
		LEFT JOIN employees m ON m.id = d.manager_id
		WHERE d.id = $1
	`

	var d department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.ManagerID, &d.CreatedAt, &d.UpdatedAt,
		&d.ManagerName, &d.EmployeeCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by id: %w", err)
	}
	return d, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.manager_id, d.created_at, d.updated_at,
			m.name AS manager_name,
			(SELECT COUNT(*) FROM employees e WHERE e.department_id = d.id) AS employee_count
		FROM departments d
		LEFT JOIN employees m ON m.id = d.manager_id
		ORDER BY d.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		err := rows.Scan(
			&d.ID, &d.Name, &d.ManagerID, &d.CreatedAt, &d.UpdatedAt,
			&d.ManagerName, &d.EmployeeCount,
		)
		if err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $1, manager_id = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, manager_id, created_at, updated_at
	`

	var updated department.Department
	err := q.QueryRow(ctx, query, d.Name, d.ManagerID, d.ID).Scan(
		&updated.ID, &updated.Name, &updated.ManagerID, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to update department: %w", err)
	}
	return updated, nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

// EmployeeCount implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) EmployeeCount(ctx context.Context, id int64) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE department_id = $1`, id).Scan(&count)
	return count, err
}
