package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type EmployeeService interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error)
	Get(ctx context.Context, id int64) (employee.Employee, error)
	List(ctx context.Context) ([]employee.Employee, error)
	Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepository employee.EmployeeRepository) EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
	}
}

// Create implements EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp := employee.Employee{
		EmployeeNumber:        req.EmployeeNumber,
		Name:                  req.Name,
		Email:                 req.Email,
		DepartmentID:          req.DepartmentID,
		JobTitle:              req.JobTitle,
		Salary:                req.Salary,
		HolidayAllowance:      employee.DefaultHolidayAllowance,
		Phone:                 req.Phone,
		Address:               req.Address,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		Status:                employee.StatusActive,
	}

	if req.HolidayAllowance != nil {
		emp.HolidayAllowance = *req.HolidayAllowance
	}
	if req.Status != "" {
		emp.Status = employee.Status(req.Status)
	}
	if req.StartDate != "" {
		startDate, err := time.Parse(time.DateOnly, req.StartDate)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to parse start date: %w", err)
		}
		emp.StartDate = &startDate
	}

	return s.EmployeeRepository.Create(ctx, emp)
}

// Get implements EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id int64) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

// List implements EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return s.EmployeeRepository.List(ctx)
}

// Update implements EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.EmployeeNumber != nil {
		emp.EmployeeNumber = req.EmployeeNumber
	}
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = req.DepartmentID
	}
	if req.JobTitle != nil {
		emp.JobTitle = *req.JobTitle
	}
	if req.StartDate != nil {
		if *req.StartDate == "" {
			emp.StartDate = nil
		} else {
			startDate, err := time.Parse(time.DateOnly, *req.StartDate)
			if err != nil {
				return employee.Employee{}, fmt.Errorf("failed to parse start date: %w", err)
			}
			emp.StartDate = &startDate
		}
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}
	if req.HolidayAllowance != nil {
		emp.HolidayAllowance = *req.HolidayAllowance
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Address != nil {
		emp.Address = *req.Address
	}
	if req.EmergencyContactName != nil {
		emp.EmergencyContactName = *req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		emp.EmergencyContactPhone = *req.EmergencyContactPhone
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}

	return s.EmployeeRepository.Update(ctx, emp)
}

// Delete implements EmployeeService. Leave and time rows cascade in the
// database.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.EmployeeRepository.Delete(ctx, id)
}
