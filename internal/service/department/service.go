package department

import (
	"context"

	"github.com/staffhub/staffhub-backend-go/internal/domain/department"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type DepartmentService interface {
	Create(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error)
	Get(ctx context.Context, id int64) (department.Department, error)
	List(ctx context.Context) ([]department.Department, error)
	Update(ctx context.Context, id int64, req department.UpdateDepartmentRequest) (department.Department, error)
	Delete(ctx context.Context, id int64) error
}

type DepartmentServiceImpl struct {
	db *database.DB
	department.DepartmentRepository
}

func NewDepartmentService(db *database.DB, departmentRepository department.DepartmentRepository) DepartmentService {
	return &DepartmentServiceImpl{
		db:                   db,
		DepartmentRepository: departmentRepository,
	}
}

// Create implements DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}

	return s.DepartmentRepository.Create(ctx, department.Department{
		Name:      req.Name,
		ManagerID: req.ManagerID,
	})
}

// Get implements DepartmentService.
func (s *DepartmentServiceImpl) Get(ctx context.Context, id int64) (department.Department, error) {
	return s.DepartmentRepository.GetByID(ctx, id)
}

// List implements DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.Department, error) {
	return s.DepartmentRepository.List(ctx)
}

// Update implements DepartmentService.
func (s *DepartmentServiceImpl) Update(ctx context.Context, id int64, req department.UpdateDepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}

	d, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.Department{}, err
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.ManagerID != nil {
		d.ManagerID = req.ManagerID
	}

	return s.DepartmentRepository.Update(ctx, d)
}

// Delete implements DepartmentService. Deletion is blocked while employees
// still reference the department.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, id int64) error {
	count, err := s.DepartmentRepository.EmployeeCount(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return department.ErrDepartmentInUse
	}

	return s.DepartmentRepository.Delete(ctx, id)
}
