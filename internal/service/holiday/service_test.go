package holiday

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/holiday"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

type fakeHolidayRepository struct {
	holiday.HolidayRepository
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepository) List(ctx context.Context, employeeID *int64) ([]holiday.Holiday, error) {
	if employeeID == nil {
		return f.holidays, nil
	}
	var filtered []holiday.Holiday
	for _, h := range f.holidays {
		if h.EmployeeID == *employeeID {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}

func TestListYearMonthFilter(t *testing.T) {
	repo := &fakeHolidayRepository{holidays: []holiday.Holiday{
		{ID: 1, EmployeeID: 1, StartDate: date("2025-01-06")},
		{ID: 2, EmployeeID: 1, StartDate: date("2025-11-03")},
		{ID: 3, EmployeeID: 2, StartDate: date("2024-11-04")},
	}}
	svc := &HolidayServiceImpl{HolidayRepository: repo}
	ctx := context.Background()

	t.Run("no filter returns everything", func(t *testing.T) {
		got, err := svc.List(ctx, holiday.ListFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("year filter", func(t *testing.T) {
		got, err := svc.List(ctx, holiday.ListFilter{Year: "2025"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("month filter is zero padded", func(t *testing.T) {
		got, err := svc.List(ctx, holiday.ListFilter{Month: "01"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("unpadded month matches nothing", func(t *testing.T) {
		got, err := svc.List(ctx, holiday.ListFilter{Month: "1"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("year and month combine", func(t *testing.T) {
		got, err := svc.List(ctx, holiday.ListFilter{Year: "2024", Month: "11"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(3), got[0].ID)
	})

	t.Run("employee filter pushed to repository", func(t *testing.T) {
		employeeID := int64(2)
		got, err := svc.List(ctx, holiday.ListFilter{EmployeeID: &employeeID})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(3), got[0].ID)
	})
}

func TestSummarize(t *testing.T) {
	approved := []holiday.Holiday{
		{EmployeeID: 7, Days: 5},
		{EmployeeID: 7, Days: 3},
		{EmployeeID: 7, Days: 1},
	}

	summary := Summarize(25, 7, 2025, approved)

	assert.Equal(t, int64(7), summary.EmployeeID)
	assert.Equal(t, 2025, summary.Year)
	assert.Equal(t, 25, summary.Allowance)
	assert.Equal(t, 9, summary.Used)
	assert.Equal(t, 16, summary.Remaining)
}

func TestSummarizeNoRequests(t *testing.T) {
	summary := Summarize(25, 7, 2025, nil)

	assert.Equal(t, 0, summary.Used)
	assert.Equal(t, 25, summary.Remaining)
}

func TestSummarizeOverdrawn(t *testing.T) {
	approved := []holiday.Holiday{{EmployeeID: 7, Days: 30}}

	summary := Summarize(25, 7, 2025, approved)

	assert.Equal(t, 30, summary.Used)
	assert.Equal(t, -5, summary.Remaining)
}

func TestResolveTarget(t *testing.T) {
	employeeID := int64(4)
	admin := auth.Identity{UserID: 1, Role: user.RoleAdmin}
	linked := auth.Identity{UserID: 2, Role: user.RoleEmployee, EmployeeID: &employeeID}
	unlinked := auth.Identity{UserID: 3, Role: user.RoleEmployee}

	t.Run("privileged picks any target", func(t *testing.T) {
		got, err := resolveTarget(admin, 9)
		assert.NoError(t, err)
		assert.Equal(t, int64(9), got)
	})

	t.Run("employee defaults to own record", func(t *testing.T) {
		got, err := resolveTarget(linked, 0)
		assert.NoError(t, err)
		assert.Equal(t, employeeID, got)
	})

	t.Run("employee may name own record", func(t *testing.T) {
		got, err := resolveTarget(linked, employeeID)
		assert.NoError(t, err)
		assert.Equal(t, employeeID, got)
	})

	t.Run("employee cannot target another record", func(t *testing.T) {
		_, err := resolveTarget(linked, 9)
		assert.ErrorIs(t, err, holiday.ErrNotOwner)
	})

	t.Run("unlinked employee is rejected", func(t *testing.T) {
		_, err := resolveTarget(unlinked, 0)
		assert.ErrorIs(t, err, employee.ErrNoLinkedEmployee)
	})
}
