package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/holiday"
	"github.com/staffhub/staffhub-backend-go/internal/domain/publicholiday"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type HolidayService interface {
	Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error)
	Get(ctx context.Context, id int64) (holiday.Holiday, error)
	List(ctx context.Context, filter holiday.ListFilter) ([]holiday.Holiday, error)
	Update(ctx context.Context, id int64, req holiday.UpdateHolidayRequest) (holiday.Holiday, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context, employeeID int64, year int) (holiday.Summary, error)
	Calendar(ctx context.Context, year, month int) (Calendar, error)
}

type HolidayServiceImpl struct {
	db *database.DB
	holiday.HolidayRepository
	employee.EmployeeRepository
	publicholiday.PublicHolidayRepository
}

func NewHolidayService(
	db *database.DB,
	holidayRepository holiday.HolidayRepository,
	employeeRepository employee.EmployeeRepository,
	publicHolidayRepository publicholiday.PublicHolidayRepository,
) HolidayService {
	return &HolidayServiceImpl{
		db:                      db,
		HolidayRepository:       holidayRepository,
		EmployeeRepository:      employeeRepository,
		PublicHolidayRepository: publicHolidayRepository,
	}
}

// excludedDates loads the current public-holiday snapshot as a date set.
func (s *HolidayServiceImpl) excludedDates(ctx context.Context) (map[string]struct{}, error) {
	list, err := s.PublicHolidayRepository.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load public holidays: %w", err)
	}
	return list.Entries.DateSet(), nil
}

// resolveTarget enforces the ownership rule: non-privileged callers may only
// act on their own linked employee.
func resolveTarget(identity auth.Identity, employeeID int64) (int64, error) {
	if identity.Privileged() {
		return employeeID, nil
	}
	if identity.EmployeeID == nil {
		return 0, employee.ErrNoLinkedEmployee
	}
	if employeeID != 0 && employeeID != *identity.EmployeeID {
		return 0, holiday.ErrNotOwner
	}
	return *identity.EmployeeID, nil
}

// Create implements HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return holiday.Holiday{}, err
	}

	targetID, err := resolveTarget(identity, req.EmployeeID)
	if err != nil {
		return holiday.Holiday{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, targetID); err != nil {
		return holiday.Holiday{}, err
	}

	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	excluded, err := s.excludedDates(ctx)
	if err != nil {
		return holiday.Holiday{}, err
	}

	leaveType := req.Type
	if leaveType == "" {
		leaveType = holiday.TypeAnnual
	}

	h := holiday.Holiday{
		EmployeeID: targetID,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       CountWorkingDays(startDate, endDate, excluded),
		Type:       leaveType,
		Notes:      req.Notes,
		Status:     holiday.StatusApproved,
	}

	return s.HolidayRepository.Create(ctx, h)
}

// Get implements HolidayService.
func (s *HolidayServiceImpl) Get(ctx context.Context, id int64) (holiday.Holiday, error) {
	return s.HolidayRepository.GetByID(ctx, id)
}

// List implements HolidayService. The employee filter is pushed into the
// query; year and month are matched here against the derived calendar
// fields of each request's start date, zero-padded for months.
func (s *HolidayServiceImpl) List(ctx context.Context, filter holiday.ListFilter) ([]holiday.Holiday, error) {
	holidays, err := s.HolidayRepository.List(ctx, filter.EmployeeID)
	if err != nil {
		return nil, err
	}

	if filter.Year == "" && filter.Month == "" {
		return holidays, nil
	}

	filtered := make([]holiday.Holiday, 0, len(holidays))
	for _, h := range holidays {
		if filter.Year != "" && h.StartDate.Format("2006") != filter.Year {
			continue
		}
		if filter.Month != "" && h.StartDate.Format("01") != filter.Month {
			continue
		}
		filtered = append(filtered, h)
	}
	return filtered, nil
}

// Update implements HolidayService.
func (s *HolidayServiceImpl) Update(ctx context.Context, id int64, req holiday.UpdateHolidayRequest) (holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return holiday.Holiday{}, err
	}

	h, err := s.HolidayRepository.GetByID(ctx, id)
	if err != nil {
		return holiday.Holiday{}, err
	}

	if _, err := resolveTarget(identity, h.EmployeeID); err != nil {
		return holiday.Holiday{}, err
	}

	datesChanged := false
	if req.StartDate != nil {
		startDate, err := time.Parse(time.DateOnly, *req.StartDate)
		if err != nil {
			return holiday.Holiday{}, fmt.Errorf("failed to parse start date: %w", err)
		}
		h.StartDate = startDate
		datesChanged = true
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(time.DateOnly, *req.EndDate)
		if err != nil {
			return holiday.Holiday{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		h.EndDate = endDate
		datesChanged = true
	}
	if req.Type != nil {
		h.Type = *req.Type
	}
	if req.Notes != nil {
		h.Notes = *req.Notes
	}

	if datesChanged {
		excluded, err := s.excludedDates(ctx)
		if err != nil {
			return holiday.Holiday{}, err
		}
		h.Days = CountWorkingDays(h.StartDate, h.EndDate, excluded)
	}

	return s.HolidayRepository.Update(ctx, h)
}

// Delete implements HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id int64) error {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return err
	}

	h, err := s.HolidayRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := resolveTarget(identity, h.EmployeeID); err != nil {
		return err
	}

	return s.HolidayRepository.Delete(ctx, id)
}

// Summary implements HolidayService.
func (s *HolidayServiceImpl) Summary(ctx context.Context, employeeID int64, year int) (holiday.Summary, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return holiday.Summary{}, err
	}

	approved, err := s.HolidayRepository.ListApprovedAnnual(ctx, employeeID, year)
	if err != nil {
		return holiday.Summary{}, err
	}

	return Summarize(emp.HolidayAllowance, employeeID, year, approved), nil
}

// Summarize computes the balance from an allowance and the year's approved
// annual requests. Remaining may go negative; that is surfaced, not an error.
func Summarize(allowance int, employeeID int64, year int, approved []holiday.Holiday) holiday.Summary {
	used := 0
	for _, h := range approved {
		used += h.Days
	}
	return holiday.Summary{
		EmployeeID: employeeID,
		Year:       year,
		Allowance:  allowance,
		Used:       used,
		Remaining:  allowance - used,
	}
}
