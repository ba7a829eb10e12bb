package publicholiday

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/staffhub-backend-go/internal/domain/publicholiday"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/nager"
)

type fakeRepository struct {
	list     publicholiday.List
	getErr   error
	replaced *publicholiday.List
}

func (f *fakeRepository) Get(ctx context.Context) (publicholiday.List, error) {
	return f.list, f.getErr
}

func (f *fakeRepository) Replace(ctx context.Context, list publicholiday.List) (publicholiday.List, error) {
	f.replaced = &list
	return list, nil
}

type fakeSource struct {
	holidays map[int][]nager.PublicHoliday
	err      error
}

func (f *fakeSource) PublicHolidays(ctx context.Context, year int, countryCode string) ([]nager.PublicHoliday, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.holidays[year], nil
}

func newTestService(repo *fakeRepository, source *fakeSource) *PublicHolidayServiceImpl {
	svc := NewPublicHolidayService(nil, repo, source, "GB")
	svc.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestRefreshReplacesEntries(t *testing.T) {
	repo := &fakeRepository{list: publicholiday.List{
		ID:      1,
		Country: "GB",
		Entries: publicholiday.Entries{{Date: "2024-01-01", Name: "Stale"}},
	}}
	source := &fakeSource{holidays: map[int][]nager.PublicHoliday{
		2025: {
			{Date: "2025-12-25", Name: "Christmas Day"},
			{Date: "2025-01-01", Name: "New Year's Day"},
		},
		2026: {
			{Date: "2026-01-01", Name: "New Year's Day"},
		},
	}}
	svc := newTestService(repo, source)

	list, err := svc.Refresh(context.Background(), publicholiday.RefreshRequest{})
	require.NoError(t, err)

	// Default years are the current and next; result is sorted by date.
	require.Len(t, list.Entries, 3)
	assert.Equal(t, "2025-01-01", list.Entries[0].Date)
	assert.Equal(t, "2025-12-25", list.Entries[1].Date)
	assert.Equal(t, "2026-01-01", list.Entries[2].Date)
	require.NotNil(t, list.RefreshedAt)
	assert.Equal(t, 2025, list.RefreshedAt.Year())
}

func TestRefreshFailureLeavesListUntouched(t *testing.T) {
	repo := &fakeRepository{list: publicholiday.List{
		ID:      1,
		Country: "GB",
		Entries: publicholiday.Entries{{Date: "2025-01-01", Name: "New Year's Day"}},
	}}
	source := &fakeSource{err: errors.New("upstream unavailable")}
	svc := newTestService(repo, source)

	_, err := svc.Refresh(context.Background(), publicholiday.RefreshRequest{Years: []int{2025}})
	assert.ErrorIs(t, err, publicholiday.ErrRefreshFailed)
	assert.Nil(t, repo.replaced)
}

func TestAddEntryKeepsOrder(t *testing.T) {
	repo := &fakeRepository{list: publicholiday.List{
		ID:      1,
		Country: "GB",
		Entries: publicholiday.Entries{
			{Date: "2025-01-01", Name: "New Year's Day"},
			{Date: "2025-12-25", Name: "Christmas Day"},
		},
	}}
	svc := newTestService(repo, &fakeSource{})

	list, err := svc.AddEntry(context.Background(), publicholiday.AddEntryRequest{
		Date: "2025-05-05",
		Name: "Early May Bank Holiday",
	})
	require.NoError(t, err)

	require.Len(t, list.Entries, 3)
	assert.Equal(t, "2025-05-05", list.Entries[1].Date)
}

func TestDeleteEntriesRemovesAllOnDate(t *testing.T) {
	repo := &fakeRepository{list: publicholiday.List{
		ID:      1,
		Country: "GB",
		Entries: publicholiday.Entries{
			{Date: "2025-01-01", Name: "New Year's Day"},
			{Date: "2025-01-01", Name: "Duplicate"},
			{Date: "2025-12-25", Name: "Christmas Day"},
		},
	}}
	svc := newTestService(repo, &fakeSource{})

	list, err := svc.DeleteEntries(context.Background(), "2025-01-01")
	require.NoError(t, err)

	require.Len(t, list.Entries, 1)
	assert.Equal(t, "2025-12-25", list.Entries[0].Date)
}
